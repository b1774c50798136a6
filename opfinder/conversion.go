package opfinder

import (
	"github.com/go-crs/crs/axis"
	"github.com/go-crs/crs/crserr"
	"github.com/go-crs/crs/crsmodel"
	"github.com/go-crs/crs/proj"
	"github.com/go-crs/crs/transform"
)

// conversionMathTransform evaluates c's defining conversion (its Method and
// Parameters, per SPEC_FULL.md §4.D) as a MathTransform from c's base CRS
// to c itself, surrounded by the axis-change steps that translate between
// each CRS's own axis order/unit and the projection's internal (radians in,
// metres out) convention -- the normalise/project/denormalise decomposition
// SPEC_FULL.md §4.F requires. Only a geodetic base is supported; a
// non-geodetic base (e.g. a derived engineering CRS) has no ellipsoid to
// project from and is rejected.
func conversionMathTransform(c crsmodel.CRS, hb crsmodel.HasBaseCRS) (transform.MathTransform, error) {
	baseGeo, ok := hb.BaseCRS().(crsmodel.GeodeticCRS)
	if !ok {
		return nil, &crserr.OperationNotFound{Source: hb.BaseCRS().CRSName(), Target: c.CRSName(), Reason: "base CRS is not geodetic"}
	}
	conv := hb.DefiningConversion()
	e := baseGeo.Datum.Ellipsoid
	north := conv.Parameters.GetOr("hemisphere_north", 1) != 0

	method := proj.Method(conv.Method)
	params := proj.Params{
		CentralMeridianRad:   conv.Parameters.GetOr("central_meridian", 0),
		LatitudeOfOriginRad:  conv.Parameters.GetOr("latitude_of_origin", 0),
		ScaleFactor:          conv.Parameters.GetOr("scale_factor", 1),
		FalseEasting:         conv.Parameters.GetOr("false_easting", 0),
		FalseNorthing:        conv.Parameters.GetOr("false_northing", 0),
		StandardParallel1Rad: conv.Parameters.GetOr("standard_parallel_1", 0),
		StandardParallel2Rad: conv.Parameters.GetOr("standard_parallel_2", 0),
	}

	projection, err := proj.New(method, e, north, params)
	if err != nil {
		return nil, err
	}

	projMT, err := proj.NewMathTransform(projection, e.A(), params.ScaleFactor, params)
	if err != nil {
		return nil, err
	}

	baseNorm, err := axis.NormalizationMatrix(baseGeo.CS)
	if err != nil {
		return nil, err
	}
	targetNorm, err := axis.NormalizationMatrix(c.CoordinateSystem())
	if err != nil {
		return nil, err
	}
	targetNormInv, err := targetNorm.Invert()
	if err != nil {
		return nil, err
	}

	return transform.NewConcatenated(
		transform.FromAffine(baseNorm),
		projMT,
		transform.FromAffine(targetNormInv),
	)
}
