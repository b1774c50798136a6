package geodesic

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-crs/crs/crserr"
	"github.com/go-crs/crs/ellipsoid"
)

func wgs84() *Geodesic {
	return New(ellipsoid.WellKnown["WGS84"])
}

func toRad(deg float64) float64 { return deg * ellipsoid.ToRadians }
func toDeg(rad float64) float64 { return rad * ellipsoid.ToDegrees }

func TestDirectInverseRoundTrip(t *testing.T) {
	g := wgs84()

	lat1, lon1 := toRad(50.0), toRad(-4.0)
	azi1 := toRad(70.0)
	s12 := 150000.0

	lat2, lon2, _, err := g.Direct(lat1, lon1, azi1, s12)
	require.NoError(t, err)

	s12Back, azi1Back, _, err := g.Inverse(lat1, lon1, lat2, lon2)
	require.NoError(t, err)

	assert.InDelta(t, s12, s12Back, 1e-5)
	assert.InDelta(t, azi1, azi1Back, 1e-9)
	_ = lon2
}

func TestInverseNearlyAntipodalConverges(t *testing.T) {
	g := wgs84()
	s12, _, _, err := g.Inverse(toRad(-30), toRad(0), toRad(29.9), toRad(179.8))
	require.NoError(t, err)
	assert.Greater(t, s12, 19000000.0)
}

func TestInverseEquatorialAntipodalIsError(t *testing.T) {
	g := wgs84()
	_, _, _, err := g.Inverse(0, toRad(0), 0, toRad(179))
	require.Error(t, err)
	var antipodal *crserr.AntipodalOnEquator
	assert.ErrorAs(t, err, &antipodal)
}

func TestInverseEquatorialSymmetry(t *testing.T) {
	g := wgs84()
	s12, azi1, _, err := g.Inverse(0, toRad(0), 0, toRad(90))
	require.NoError(t, err)
	assert.InDelta(t, math.Pi/2, azi1, 1e-9)
	assert.Greater(t, s12, 9000000.0)
}

func TestDirectZeroDistanceIsIdentity(t *testing.T) {
	g := wgs84()
	lat1, lon1 := toRad(10), toRad(20)
	lat2, lon2, _, err := g.Direct(lat1, lon1, toRad(45), 0)
	require.NoError(t, err)
	assert.InDelta(t, lat1, lat2, 1e-12)
	assert.InDelta(t, lon1, lon2, 1e-12)
}

func TestInverseSamePointIsZero(t *testing.T) {
	g := wgs84()
	s12, _, _, err := g.Inverse(toRad(10), toRad(20), toRad(10), toRad(20))
	require.NoError(t, err)
	assert.InDelta(t, 0, s12, 1e-6)
}
