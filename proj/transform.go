package proj

import (
	"github.com/go-crs/crs/crserr"
	"github.com/go-crs/crs/ellipsoid"
	"github.com/go-crs/crs/matrix"
	"github.com/go-crs/crs/transform"
)

// Method names the projection families the operation finder and the
// authority registry's AUTO-code parser select by.
type Method string

const (
	MethodPolyconic           Method = "Polyconic"
	MethodSinusoidal          Method = "Sinusoidal"
	MethodMercator            Method = "Mercator"
	MethodTransverseMercator  Method = "TransverseMercator"
	MethodPolarStereographic  Method = "PolarStereographic"
	MethodEquirectangular     Method = "Equirectangular"
)

// New builds a Projection for the named method and ellipsoid. params is
// consulted only by methods whose raw (pre-normalization) shape depends on a
// defining value rather than a pure central-meridian/false-origin shift --
// currently just Equirectangular's standard parallel.
func New(method Method, e ellipsoid.Ellipsoid, north bool, params Params) (Projection, error) {
	switch method {
	case MethodPolyconic:
		return NewPolyconic(e), nil
	case MethodSinusoidal:
		return NewSinusoidal(e), nil
	case MethodMercator:
		return NewMercator(e.E()), nil
	case MethodTransverseMercator:
		return NewTransverseMercator(e), nil
	case MethodPolarStereographic:
		return NewPolarStereographic(e, north), nil
	case MethodEquirectangular:
		return NewEquirectangular(params.StandardParallel1Rad), nil
	default:
		return nil, &crserr.IllegalProperty{Key: "method", Value: string(method)}
	}
}

// projMathTransform adapts a Projection plus its surrounding
// normalization/denormalization matrices to the transform.MathTransform
// contract, realising the mandatory decomposition of SPEC_FULL.md §4.F:
// normalise -> project -> denormalise.
type projMathTransform struct {
	proj   Projection
	a      float64 // ellipsoid semi-major axis, for scaling the projection's ellipsoid-radius output to metres
	k0     float64
	norm   *matrix.Affine
	denorm *matrix.Affine
}

// NewMathTransform builds the full forward MathTransform for a projection:
// (lambda, phi) radians -> (easting, northing) metres.
func NewMathTransform(proj Projection, a, k0 float64, params Params) (transform.MathTransform, error) {
	norm, err := normalization(params)
	if err != nil {
		return nil, err
	}
	// The latitude of origin enters as a northing offset: the projected
	// northing of (central meridian, latitude of origin) is subtracted so
	// that this point lands on the false origin.
	if params.LatitudeOfOriginRad != 0 {
		_, y0, err := proj.Forward(0, params.LatitudeOfOriginRad)
		if err != nil {
			return nil, err
		}
		params.FalseNorthing -= a * k0 * y0
	}
	denorm, err := denormalization(a, k0, params)
	if err != nil {
		return nil, err
	}
	pt := &projMathTransform{proj: proj, a: a, k0: k0, norm: norm, denorm: denorm}
	return transform.NewFunc(2, 2, pt.forward, pt.inverse, pt.jacobian), nil
}

func (p *projMathTransform) forward(in []float64) ([]float64, error) {
	normed, err := p.norm.Multiply(in)
	if err != nil {
		return nil, err
	}
	x, y, err := p.proj.Forward(normed[0], normed[1])
	if err != nil {
		return nil, err
	}
	return p.denorm.Multiply([]float64{x, y})
}

func (p *projMathTransform) inverse(in []float64) ([]float64, error) {
	denormInv, err := p.denorm.Invert()
	if err != nil {
		return nil, err
	}
	xy, err := denormInv.Multiply(in)
	if err != nil {
		return nil, err
	}
	lambda, phi, err := p.proj.Inverse(xy[0], xy[1])
	if err != nil {
		return nil, err
	}
	normInv, err := p.norm.Invert()
	if err != nil {
		return nil, err
	}
	return normInv.Multiply([]float64{lambda, phi})
}

func (p *projMathTransform) jacobian(in []float64) (*matrix.Affine, error) {
	normed, err := p.norm.Multiply(in)
	if err != nil {
		return nil, err
	}
	j, err := p.proj.Jacobian(normed[0], normed[1])
	if err != nil {
		return nil, err
	}
	rows := [][]float64{
		{p.a * p.k0 * j[0][0], p.a * p.k0 * j[0][1], 0},
		{p.a * p.k0 * j[1][0], p.a * p.k0 * j[1][1], 0},
		{0, 0, 1},
	}
	return matrix.NewFromRows(rows)
}
