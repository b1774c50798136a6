package crsmodel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-crs/crs/axis"
	"github.com/go-crs/crs/ellipsoid"
)

func wgs84() GeodeticCRS {
	return GeodeticCRS{
		Name: "WGS 84",
		Datum: ellipsoid.GeodeticDatum{
			Name:          "WGS84",
			Ellipsoid:     ellipsoid.WellKnownDatums["WGS84"].Ellipsoid,
			PrimeMeridian: ellipsoid.Greenwich,
		},
		CS: axis.NewGeographicLatLon2D(),
	}
}

func TestParameterValueGroupGetAndGetOr(t *testing.T) {
	g := NewParameterValueGroup(
		ParameterValue{Name: "scale_factor", Value: 0.9996},
		ParameterValue{Name: "false_easting", Value: 500000, Unit: axis.Metre},
	)
	v, ok := g.Get("scale_factor")
	require.True(t, ok)
	assert.Equal(t, 0.9996, v.Value)

	_, ok = g.Get("missing")
	assert.False(t, ok)

	assert.Equal(t, float64(500000), g.GetOr("false_easting", 0))
	assert.Equal(t, 123.0, g.GetOr("missing", 123))
}

func TestGeodeticCRSDimensionAndCS(t *testing.T) {
	c := wgs84()
	assert.Equal(t, "WGS 84", c.CRSName())
	assert.Equal(t, 2, c.Dimension())
}

func TestCompoundCRSFlattensNesting(t *testing.T) {
	vertical := VerticalCRS{Name: "MSL height", Datum: VerticalDatum{Name: "MSL"}, CS: axis.CoordinateSystem{
		Axes: []axis.Axis{{Name: "Height", Direction: axis.Up, Unit: axis.Metre}},
	}}
	inner, err := NewCompoundCRS("inner", wgs84(), vertical)
	require.NoError(t, err)

	outer, err := NewCompoundCRS("outer", inner)
	require.NoError(t, err)

	// nesting must flatten to the two original leaves, not retain the inner compound.
	require.Len(t, outer.Components, 2)
	assert.Equal(t, 3, outer.Dimension())
}

func TestCompoundCRSCoordinateSystemConcatenatesAxes(t *testing.T) {
	vertical := VerticalCRS{Name: "MSL height", Datum: VerticalDatum{Name: "MSL"}, CS: axis.CoordinateSystem{
		Axes: []axis.Axis{{Name: "Height", Direction: axis.Up, Unit: axis.Metre}},
	}}
	c, err := NewCompoundCRS("compound", wgs84(), vertical)
	require.NoError(t, err)
	assert.Len(t, c.CoordinateSystem().Axes, 3)
}

func TestMetadataEqual(t *testing.T) {
	a := wgs84()
	b := wgs84()
	assert.True(t, MetadataEqual(a, b))

	c := GeodeticCRS{Name: "NAD83", Datum: a.Datum, CS: a.CS}
	assert.False(t, MetadataEqual(a, c))

	proj := ProjectedCRS{Name: "WGS 84", Base: a, CS: axis.NewCartesian2D()}
	assert.False(t, MetadataEqual(a, proj))
}

func TestHasBaseCRS(t *testing.T) {
	base := wgs84()
	proj := ProjectedCRS{
		Name:       "Pseudo Mercator",
		Base:       base,
		Conversion: Conversion{Method: "mercator"},
		CS:         axis.NewCartesian2D(),
	}
	var hb HasBaseCRS = proj
	assert.Equal(t, "WGS 84", hb.BaseCRS().CRSName())
	assert.Equal(t, "mercator", hb.DefiningConversion().Method)
}
