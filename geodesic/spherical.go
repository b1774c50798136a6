package geodesic

import (
	"github.com/golang/geo/s2"
)

// SphericalDistance returns the great-circle distance between two points on
// a sphere of the given radius, using golang/geo's s2.LatLng.Distance.
//
// Grounded on tzneal-coordconv/transversemercator.go's use of s2.LatLng as
// its geodetic coordinate carrier type (convertFromGeodetic/
// convertToGeodetic both take/return one); used here as a cheap spherical
// sanity check against Inverse's ellipsoidal result -- the two should agree
// to within the ellipsoid's flattening, and a large disagreement points at
// a coefficient bug rather than expected ellipsoidal/spherical divergence.
func SphericalDistance(lat1, lon1, lat2, lon2, radiusMetres float64) float64 {
	a := s2.LatLngFromDegrees(lat1, lon1)
	b := s2.LatLngFromDegrees(lat2, lon2)
	return a.Distance(b).Radians() * radiusMetres
}
