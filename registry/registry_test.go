package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-crs/crs/crsmodel"
)

func TestCRSLookupEPSG4326AndCRS84(t *testing.T) {
	r := New()

	geo, err := r.CRS("EPSG:4326")
	require.NoError(t, err)
	assert.Equal(t, 2, geo.Dimension())
	assert.Equal(t, "Latitude", geo.CoordinateSystem().Axes[0].Name)

	crs84, err := r.CRS("CRS:84")
	require.NoError(t, err)
	assert.Equal(t, "Longitude", crs84.CoordinateSystem().Axes[0].Name)
}

func TestCRSLookupAcceptsURNAndSlashForms(t *testing.T) {
	r := New()

	byURN, err := r.CRS("urn:ogc:def:crs:EPSG::4326")
	require.NoError(t, err)

	bySlash, err := r.CRS("http://www.opengis.net/def/crs/EPSG/0/4326")
	require.NoError(t, err)

	assert.Equal(t, byURN.CRSName(), bySlash.CRSName())
}

func TestCRSLookupDoubleColonForm(t *testing.T) {
	r := New()
	c, err := r.CRS("EPSG::4326")
	require.NoError(t, err)
	assert.Equal(t, "WGS 84", c.CRSName())
}

func TestCRSLookupUnknownCodeFails(t *testing.T) {
	r := New()
	_, err := r.CRS("EPSG:999999")
	assert.Error(t, err)
}

func TestCompositeCRSResolvesToCompound(t *testing.T) {
	r := New()
	c, err := r.CRS("urn:ogc:def:crs,crs:EPSG::4326,crs:EPSG::5714")
	require.NoError(t, err)

	compound, ok := c.(crsmodel.CompoundCRS)
	require.True(t, ok)
	assert.Len(t, compound.Components, 2)
	assert.Equal(t, 3, compound.Dimension())
}

func TestUTMZoneLookupCoversNorwayAndSvalbard(t *testing.T) {
	r := New()

	_, err := r.CRS("EPSG:32632") // zone 32 north, widened for Norway
	require.NoError(t, err)

	_, err = r.CRS("EPSG:32631") // zone 31 north, Svalbard carve-out
	require.NoError(t, err)

	_, err = r.CRS("EPSG:32760") // zone 60 south
	require.NoError(t, err)
}

func TestUPSCapLookup(t *testing.T) {
	r := New()
	_, err := r.CRS("EPSG:32661")
	require.NoError(t, err)
	_, err = r.CRS("EPSG:32761")
	require.NoError(t, err)
}

func TestAutoUTMBuildsZoneForCoordinate(t *testing.T) {
	r := New()
	crs, err := r.CRS("AUTO:42001,1,10.5,60.2")
	require.NoError(t, err)

	projected, ok := crs.(crsmodel.ProjectedCRS)
	require.True(t, ok)
	assert.Equal(t, "TransverseMercator", projected.Conversion.Method)
}

func TestAutoTransverseMercatorCentersOnGivenLongitude(t *testing.T) {
	r := New()
	crs, err := r.CRS("AUTO2:42002,1,-73,40")
	require.NoError(t, err)

	projected := crs.(crsmodel.ProjectedCRS)
	cm, ok := projected.Conversion.Parameters.Get("central_meridian")
	require.True(t, ok)
	assert.InDelta(t, -73.0*0.017453292519943295, cm.Value, 1e-9)
}

func TestAutoUnsupportedProjectionFamilyErrors(t *testing.T) {
	r := New()
	_, err := r.CRS("AUTO:42003,1,0,0")
	assert.Error(t, err)

	_, err = r.CRS("AUTO:42005,1,0,0")
	assert.Error(t, err)
}

func TestAutoEquirectangularBuildsProjection(t *testing.T) {
	r := New()
	crs, err := r.CRS("AUTO:42004,1,-73,40")
	require.NoError(t, err)

	projected, ok := crs.(crsmodel.ProjectedCRS)
	require.True(t, ok)
	assert.Equal(t, "Equirectangular", projected.Conversion.Method)

	sp, ok := projected.Conversion.Parameters.Get("standard_parallel_1")
	require.True(t, ok)
	assert.InDelta(t, 40.0*0.017453292519943295, sp.Value, 1e-9)
}

func TestAutoUnknownCodeErrors(t *testing.T) {
	r := New()
	_, err := r.CRS("AUTO:99999,1,0,0")
	assert.Error(t, err)
}

func TestEllipsoidAndDatumLookup(t *testing.T) {
	r := New()

	e, err := r.Ellipsoid("WGS84")
	require.NoError(t, err)
	assert.InDelta(t, 6378137.0, e.A(), 1e-6)

	d, err := r.Datum("WGS84")
	require.NoError(t, err)
	assert.Equal(t, "WGS84", d.Name)

	_, err = r.Ellipsoid("does-not-exist")
	assert.Error(t, err)
}

func TestVerticalAndTemporalFallbackLookup(t *testing.T) {
	r := New()

	_, err := r.CRS("EPSG:5714")
	require.NoError(t, err)

	_, err = r.CRS("OGC:UNIX_TIME")
	require.NoError(t, err)
}
