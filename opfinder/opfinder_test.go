package opfinder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-crs/crs/axis"
	"github.com/go-crs/crs/crserr"
	"github.com/go-crs/crs/crsmodel"
	"github.com/go-crs/crs/ellipsoid"
	"github.com/go-crs/crs/proj"
	"github.com/go-crs/crs/registry"
	"github.com/go-crs/crs/transform"
)

// pseudoMercator builds a Web Mercator-style ProjectedCRS (spherical
// formulas on the WGS 84 semi-major axis, as EPSG:3857 defines it) over the
// given geographic base, for scenarios the fallback table does not carry.
func pseudoMercator(base crsmodel.GeodeticCRS) crsmodel.ProjectedCRS {
	return crsmodel.ProjectedCRS{
		Name: "WGS 84 / Pseudo-Mercator",
		Base: crsmodel.GeodeticCRS{
			Name:  base.Name,
			Datum: ellipsoid.GeodeticDatum{Name: base.Datum.Name, Ellipsoid: ellipsoid.FromSemiMinor("Sphere", 6378137, 6378137)},
			CS:    base.CS,
		},
		Conversion: crsmodel.Conversion{
			Method: string(proj.MethodMercator),
			Parameters: crsmodel.NewParameterValueGroup(
				crsmodel.ParameterValue{Name: "central_meridian", Value: 0, Unit: axis.Radian},
				crsmodel.ParameterValue{Name: "false_easting", Value: 0, Unit: axis.Metre},
				crsmodel.ParameterValue{Name: "false_northing", Value: 0, Unit: axis.Metre},
			),
		},
		CS: axis.NewCartesian2D(),
	}
}

func TestAxisSwapBetweenEPSG4326AndCRS84(t *testing.T) {
	reg := registry.New()
	epsg4326, err := reg.CRS("EPSG:4326")
	require.NoError(t, err)
	crs84, err := reg.CRS("CRS:84")
	require.NoError(t, err)

	op, err := New().CreateOperation(epsg4326, crs84)
	require.NoError(t, err)

	m, ok := transform.AsAffine(op.MathTransform())
	require.True(t, ok)
	assert.InDelta(t, 0, m.At(0, 0), 1e-12)
	assert.InDelta(t, 1, m.At(0, 1), 1e-12)
	assert.InDelta(t, 1, m.At(1, 0), 1e-12)
	assert.InDelta(t, 0, m.At(1, 1), 1e-12)

	out, err := op.MathTransform().Forward([]float64{51.5, -0.1})
	require.NoError(t, err)
	assert.InDelta(t, -0.1, out[0], 1e-9)
	assert.InDelta(t, 51.5, out[1], 1e-9)
}

func TestPseudoMercatorProjection(t *testing.T) {
	reg := registry.New()
	base, err := reg.CRS("EPSG:4326")
	require.NoError(t, err)
	target := pseudoMercator(base.(crsmodel.GeodeticCRS))

	op, err := New().CreateOperation(base, target)
	require.NoError(t, err)

	origin, err := op.MathTransform().Forward([]float64{0, 0})
	require.NoError(t, err)
	assert.InDelta(t, 0, origin[0], 1e-6)
	assert.InDelta(t, 0, origin[1], 1e-6)

	at45, err := op.MathTransform().Forward([]float64{45, 0})
	require.NoError(t, err)
	assert.InDelta(t, 5621521.486, at45[1], 1e-2)
}

func TestCompoundToGeodetic3D(t *testing.T) {
	reg := registry.New()
	epsg4326, err := reg.CRS("EPSG:4326")
	require.NoError(t, err)
	epsg5714, err := reg.CRS("EPSG:5714")
	require.NoError(t, err)
	epsg4979, err := reg.CRS("EPSG:4979")
	require.NoError(t, err)

	compound, err := crsmodel.NewCompoundCRS("WGS 84 + MSL height", epsg4326, epsg5714)
	require.NoError(t, err)

	op, err := New().CreateOperation(compound, epsg4979)
	require.NoError(t, err)

	out, err := op.MathTransform().Forward([]float64{51.5, -0.1, 12.3})
	require.NoError(t, err)
	assert.InDelta(t, 51.5, out[0], 1e-9)
	assert.InDelta(t, -0.1, out[1], 1e-9)
	assert.InDelta(t, 12.3, out[2], 0.01)
}

func TestRecursionGuard(t *testing.T) {
	a := crsmodel.GeodeticCRS{Name: "A", Datum: ellipsoid.GeodeticDatum{Name: "A Datum", Ellipsoid: ellipsoid.FromSemiMinor("Sphere", 6378137, 6378137)}, CS: axis.NewGeographicLatLon2D()}
	f := New()
	f.visiting[pairKey{source: describeCRS(a), target: describeCRS(a)}] = true

	_, err := f.CreateOperations(a, a)
	require.Error(t, err)
	var recursive *crserr.RecursiveCreate
	assert.ErrorAs(t, err, &recursive)
}

func TestGeodeticToGeodeticRejectsMismatchedEpochs(t *testing.T) {
	source := crsmodel.GeodeticCRS{
		Name: "ITRF2014 @ 2010.0",
		Datum: ellipsoid.GeodeticDatum{
			Name: "ITRF2014", Ellipsoid: ellipsoid.WellKnown["GRS80"], Epoch: 2010.0,
		},
		CS: axis.NewGeographicLatLon2D(),
	}
	target := crsmodel.GeodeticCRS{
		Name: "ITRF2014 @ 2020.0",
		Datum: ellipsoid.GeodeticDatum{
			Name: "ITRF2014", Ellipsoid: ellipsoid.WellKnown["GRS80"], Epoch: 2020.0,
		},
		CS: axis.NewGeographicLatLon2D(),
	}

	f := New()
	_, err := f.CreateOperations(source, target)
	require.Error(t, err)
	var epochErr *crserr.UnsupportedEpochShift
	assert.ErrorAs(t, err, &epochErr)
}

func TestGeodeticToGeodeticAllowsMatchingEpochs(t *testing.T) {
	source := crsmodel.GeodeticCRS{
		Name: "ITRF2014 @ 2010.0",
		Datum: ellipsoid.GeodeticDatum{
			Name: "ITRF2014", Ellipsoid: ellipsoid.WellKnown["GRS80"], Epoch: 2010.0,
		},
		CS: axis.NewGeographicLatLon2D(),
	}
	target := crsmodel.GeodeticCRS{
		Name: "ITRF2014 @ 2010.0 (3D)",
		Datum: ellipsoid.GeodeticDatum{
			Name: "ITRF2014", Ellipsoid: ellipsoid.WellKnown["GRS80"], Epoch: 2010.0,
		},
		CS: internalGeographic3D(),
	}

	f := New()
	_, err := f.CreateOperations(source, target)
	require.NoError(t, err)
}

func TestPipelineSimplificationIsIdempotent(t *testing.T) {
	reg := registry.New()
	epsg4326, err := reg.CRS("EPSG:4326")
	require.NoError(t, err)
	crs84, err := reg.CRS("CRS:84")
	require.NoError(t, err)

	op1, err := New().CreateOperation(epsg4326, crs84)
	require.NoError(t, err)
	op2, err := New().CreateOperation(epsg4326, crs84)
	require.NoError(t, err)

	p1, err := op1.MathTransform().Forward([]float64{12.3, 45.6})
	require.NoError(t, err)
	p2, err := op2.MathTransform().Forward([]float64{12.3, 45.6})
	require.NoError(t, err)
	assert.Equal(t, p1, p2)
}
