package opfinder

import (
	"math"

	"github.com/go-crs/crs/ellipsoid"
	"github.com/go-crs/crs/transform"
)

const arcSecondToRadian = math.Pi / (180 * 3600)

// positionVectorTransform evaluates the 7-parameter Helmert (Position
// Vector convention) similarity transform EPSG uses for an approximate
// geocentric datum shift: scale in parts-per-million, rotations in
// arc-seconds, exactly the parameter layout of ellipsoid.BursaWolf.
func positionVectorTransform(shift ellipsoid.BursaWolf) func(x, y, z float64) (float64, float64, float64) {
	s := 1 + shift.S*1e-6
	rx := shift.Rx * arcSecondToRadian
	ry := shift.Ry * arcSecondToRadian
	rz := shift.Rz * arcSecondToRadian
	return func(x, y, z float64) (float64, float64, float64) {
		nx := shift.Tx + s*(x-rz*y+ry*z)
		ny := shift.Ty + s*(rz*x+y-rx*z)
		nz := shift.Tz + s*(-ry*x+rx*y+z)
		return nx, ny, nz
	}
}

// geodeticDatumShiftTransform builds the MathTransform for a full Geodetic
// -> Geodetic datum shift: geodetic (lat,lon,h radians/metres) -> geocentric
// XYZ on the source ellipsoid -> Position Vector shift -> geocentric XYZ on
// the target ellipsoid -> geodetic (lat,lon,h). Operates on the internal
// (lat,lon,h) convention; callers wrap with axis-change steps for the CRS's
// own axis order and units.
func geodeticDatumShiftTransform(sourceE, targetE *ellipsoid.Ellipsoid, shift ellipsoid.BursaWolf) transform.MathTransform {
	fwdShift := positionVectorTransform(shift)
	invShift := positionVectorTransform(shift.Inverse())

	fwd := func(in []float64) ([]float64, error) {
		lat, lon, h := in[0], in[1], in[2]
		x, y, z := sourceE.ToGeocentric(lat, lon, h)
		x, y, z = fwdShift(x, y, z)
		lat2, lon2, h2 := targetE.FromGeocentric(x, y, z)
		return []float64{lat2, lon2, h2}, nil
	}
	inv := func(in []float64) ([]float64, error) {
		lat, lon, h := in[0], in[1], in[2]
		x, y, z := targetE.ToGeocentric(lat, lon, h)
		x, y, z = invShift(x, y, z)
		lat2, lon2, h2 := sourceE.FromGeocentric(x, y, z)
		return []float64{lat2, lon2, h2}, nil
	}
	return transform.NewFunc(3, 3, fwd, inv, nil)
}
