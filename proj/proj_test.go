package proj

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-crs/crs/ellipsoid"
)

func wgs84Ellipsoid() ellipsoid.Ellipsoid {
	return ellipsoid.WellKnown["WGS84"]
}

func TestMercatorSphericalRoundTrip(t *testing.T) {
	m := NewMercator(0)
	assert.True(t, m.Spherical())

	lambda, phi := 0.3, 0.6
	x, y, err := m.Forward(lambda, phi)
	require.NoError(t, err)

	gotLambda, gotPhi, err := m.Inverse(x, y)
	require.NoError(t, err)
	assert.InDelta(t, lambda, gotLambda, 1e-9)
	assert.InDelta(t, phi, gotPhi, 1e-9)
}

func TestMercatorEllipsoidalRoundTrip(t *testing.T) {
	e := wgs84Ellipsoid()
	m := NewMercator(e.E())
	assert.False(t, m.Spherical())

	lambda, phi := -1.2, 0.8
	x, y, err := m.Forward(lambda, phi)
	require.NoError(t, err)

	gotLambda, gotPhi, err := m.Inverse(x, y)
	require.NoError(t, err)
	assert.InDelta(t, lambda, gotLambda, 1e-9)
	assert.InDelta(t, phi, gotPhi, 1e-9)
}

func TestTransverseMercatorRoundTrip(t *testing.T) {
	tm := NewTransverseMercator(wgs84Ellipsoid())
	lambda, phi := 0.01, 0.9 // a couple of degrees off the central meridian, near 51N
	x, y, err := tm.Forward(lambda, phi)
	require.NoError(t, err)

	gotLambda, gotPhi, err := tm.Inverse(x, y)
	require.NoError(t, err)
	assert.InDelta(t, lambda, gotLambda, 1e-9)
	assert.InDelta(t, phi, gotPhi, 1e-9)
}

func TestTransverseMercatorPoleIsSpecialCased(t *testing.T) {
	tm := NewTransverseMercator(wgs84Ellipsoid())
	x, y, err := tm.Forward(0, math.Pi/2)
	require.NoError(t, err)
	assert.Equal(t, 0.0, x)
	assert.Greater(t, y, 0.0)
}

func TestSinusoidalRoundTrip(t *testing.T) {
	s := NewSinusoidal(wgs84Ellipsoid())
	lambda, phi := 0.5, 0.4
	x, y, err := s.Forward(lambda, phi)
	require.NoError(t, err)

	gotLambda, gotPhi, err := s.Inverse(x, y)
	require.NoError(t, err)
	assert.InDelta(t, lambda, gotLambda, 1e-7)
	assert.InDelta(t, phi, gotPhi, 1e-7)
}

func TestPolyconicRoundTrip(t *testing.T) {
	p := NewPolyconic(wgs84Ellipsoid())
	lambda, phi := 0.2, 0.7
	x, y, err := p.Forward(lambda, phi)
	require.NoError(t, err)

	gotLambda, gotPhi, err := p.Inverse(x, y)
	require.NoError(t, err)
	assert.InDelta(t, lambda, gotLambda, 1e-7)
	assert.InDelta(t, phi, gotPhi, 1e-7)
}

func TestPolyconicEquatorDegenerateCase(t *testing.T) {
	p := NewPolyconic(wgs84Ellipsoid())
	x, y, err := p.Forward(0.4, 0)
	require.NoError(t, err)
	assert.InDelta(t, 0.4, x, 1e-12)
	assert.InDelta(t, 0, y, 1e-12)
}

func TestMeridianArcZeroAtEquator(t *testing.T) {
	e := wgs84Ellipsoid()
	assert.InDelta(t, 0, MeridianArc(&e, 0), 1e-12)
}

func TestNewDispatchesByMethod(t *testing.T) {
	e := wgs84Ellipsoid()
	p, err := New(MethodMercator, e, true, Params{})
	require.NoError(t, err)
	_, ok := p.(*Mercator)
	assert.True(t, ok)

	_, err = New(Method("bogus"), e, true, Params{})
	assert.Error(t, err)
}

func TestEquirectangularPlateCarreeRoundTrip(t *testing.T) {
	eq := NewEquirectangular(0)
	assert.True(t, eq.Spherical())

	lambda, phi := 0.4, 0.6
	x, y, err := eq.Forward(lambda, phi)
	require.NoError(t, err)
	assert.Equal(t, lambda, x)
	assert.Equal(t, phi, y)

	gotLambda, gotPhi, err := eq.Inverse(x, y)
	require.NoError(t, err)
	assert.InDelta(t, lambda, gotLambda, 1e-12)
	assert.InDelta(t, phi, gotPhi, 1e-12)
}

func TestEquirectangularStandardParallelScalesEasting(t *testing.T) {
	eq := NewEquirectangular(60 * ellipsoid.ToRadians)
	x, y, err := eq.Forward(1.0, 0.3)
	require.NoError(t, err)
	assert.InDelta(t, math.Cos(60*ellipsoid.ToRadians), x, 1e-12)
	assert.Equal(t, 0.3, y)

	gotLambda, gotPhi, err := eq.Inverse(x, y)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, gotLambda, 1e-9)
	assert.InDelta(t, 0.3, gotPhi, 1e-9)
}

func TestNewDispatchesEquirectangularWithStandardParallel(t *testing.T) {
	e := wgs84Ellipsoid()
	p, err := New(MethodEquirectangular, e, true, Params{StandardParallel1Rad: 30 * ellipsoid.ToRadians})
	require.NoError(t, err)
	eq, ok := p.(*Equirectangular)
	require.True(t, ok)
	assert.InDelta(t, math.Cos(30*ellipsoid.ToRadians), eq.cosPhi1, 1e-12)
}

func TestMathTransformAppliesNormalizationAndDenormalization(t *testing.T) {
	e := wgs84Ellipsoid()
	tm := NewTransverseMercator(e)
	params := Params{
		CentralMeridianRad: -2 * ellipsoid.ToRadians,
		LatitudeOfOriginRad: 49 * ellipsoid.ToRadians,
		FalseEasting:        400000,
		FalseNorthing:       -100000,
	}
	mt, err := NewMathTransform(tm, e.A(), 0.9996012717, params)
	require.NoError(t, err)

	out, err := mt.Forward([]float64{-2 * ellipsoid.ToRadians, 49 * ellipsoid.ToRadians})
	require.NoError(t, err)
	// at the true origin, easting/northing collapse to the false origin.
	assert.InDelta(t, 400000, out[0], 1e-6)
	assert.InDelta(t, -100000, out[1], 1e-6)

	back, err := mt.Inverse(out)
	require.NoError(t, err)
	assert.InDelta(t, -2*ellipsoid.ToRadians, back[0], 1e-9)
	assert.InDelta(t, 49*ellipsoid.ToRadians, back[1], 1e-9)
}

func TestPolarStereographicNorthRoundTrip(t *testing.T) {
	e := wgs84Ellipsoid()
	p := NewPolarStereographic(e, true)
	lambda, phi := 1.1, 85*ellipsoid.ToRadians
	x, y, err := p.Forward(lambda, phi)
	require.NoError(t, err)

	gotLambda, gotPhi, err := p.Inverse(x, y)
	require.NoError(t, err)
	assert.InDelta(t, lambda, gotLambda, 1e-9)
	assert.InDelta(t, phi, gotPhi, 1e-9)
}

func TestPolarStereographicSouthRoundTrip(t *testing.T) {
	e := wgs84Ellipsoid()
	p := NewPolarStereographic(e, false)
	lambda, phi := -2.0, -85*ellipsoid.ToRadians
	x, y, err := p.Forward(lambda, phi)
	require.NoError(t, err)

	gotLambda, gotPhi, err := p.Inverse(x, y)
	require.NoError(t, err)
	assert.InDelta(t, lambda, gotLambda, 1e-9)
	assert.InDelta(t, phi, gotPhi, 1e-9)
}

func TestPolarStereographicPoleMapsToOrigin(t *testing.T) {
	e := wgs84Ellipsoid()
	p := NewPolarStereographic(e, true)
	_, phi, err := p.Inverse(0, 0)
	require.NoError(t, err)
	assert.InDelta(t, math.Pi/2, phi, 1e-12)
}

func TestUniversalZoneSelection(t *testing.T) {
	z := Universal(51.5, -0.1) // London
	assert.Equal(t, SystemUTM, z.System)
	assert.Equal(t, 30, z.Zone)
	assert.True(t, z.North)

	south := Universal(-33.9, 151.2) // Sydney
	assert.Equal(t, SystemUTM, south.System)
	assert.False(t, south.North)
}

func TestUniversalNorwayCarveOut(t *testing.T) {
	z := Universal(60.0, 5.0) // inside the widened zone 32
	assert.Equal(t, SystemUTM, z.System)
	assert.Equal(t, 32, z.Zone)
}

func TestUniversalSvalbardCarveOut(t *testing.T) {
	z := Universal(78.0, 10.0)
	assert.Equal(t, SystemUTM, z.System)
	assert.Equal(t, 33, z.Zone)
}

func TestUniversalPolarCaps(t *testing.T) {
	north := Universal(85.0, 0.0)
	assert.Equal(t, SystemUPS, north.System)
	assert.True(t, north.North)

	south := Universal(-85.0, 0.0)
	assert.Equal(t, SystemUPS, south.System)
	assert.False(t, south.North)
}

func TestCentralMeridian(t *testing.T) {
	assert.InDelta(t, -3*ellipsoid.ToRadians, CentralMeridian(30), 1e-12)
}

func TestUTMFalseNorthingByHemisphere(t *testing.T) {
	assert.Equal(t, 0.0, UTMFalseNorthing(true))
	assert.Equal(t, 10000000.0, UTMFalseNorthing(false))
}
