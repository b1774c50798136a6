// Package proj implements the forward/inverse ellipsoidal map projections
// of SPEC_FULL.md §4.F: Polyconic (the reference case), Sinusoidal,
// Mercator, Transverse Mercator, and the UTM/UPS zone family, each with a
// spherical degenerate-case specialisation and, where practical, a closed
// form or finite-difference Jacobian.
//
// Every projection is surrounded by affine normalization/denormalization
// matrices (built with the matrix package) so the operation finder can
// merge a step's denormalization with its neighbour's normalization; the
// projection itself operates only on normalised (radians in, ellipsoid-
// radius units out) coordinates, per the mandatory decomposition in
// SPEC_FULL.md §4.F.
//
// Grounded on samlecuyer-projectron's pj.commonFwd/commonInv normalization
// wrapper shape (keyed +lon_0=.. +x_0=.. parameter parsing, applied as a
// pre/post transform around a method-specific forward/inverse pair) and on
// paulcager-osgridref/latlon-ellipsoidal-datum.go's meridian-arc series
// (ToOsGridRef's Ma,Mb,Mc,Md terms), generalised into a reusable
// MeridianArc helper shared by Polyconic and Sinusoidal.
package proj

import (
	"math"

	"github.com/go-crs/crs/crserr"
	"github.com/go-crs/crs/ellipsoid"
	"github.com/go-crs/crs/matrix"
)

const (
	maxIterations   = 15
	convergenceTol  = 1e-12
)

// Params carries the defining values every projection constructor
// consumes; not every projection uses every field.
type Params struct {
	CentralMeridianRad float64
	LatitudeOfOriginRad float64
	ScaleFactor         float64
	FalseEasting        float64
	FalseNorthing       float64
	StandardParallel1Rad float64
	StandardParallel2Rad float64
}

// Projection is the contract every map projection implements: forward and
// inverse on normalised (radians in, ellipsoid-radius-units out)
// coordinates, plus a declared spherical specialisation switch.
type Projection interface {
	// Forward projects (lambda, phi) radians to (x, y) ellipsoid-radius units.
	Forward(lambda, phi float64) (x, y float64, err error)
	// Inverse projects (x, y) back to (lambda, phi) radians.
	Inverse(x, y float64) (lambda, phi float64, err error)
	// Jacobian returns the forward 2x2 partial-derivative matrix at
	// (lambda, phi), or an error if unsupported.
	Jacobian(lambda, phi float64) ([2][2]float64, error)
	// Spherical reports whether the ellipsoid parameter was e==0, meaning
	// the simplified closed-form spherical path is in effect.
	Spherical() bool
}

// nu is the radius of curvature in the prime vertical, ν = 1/sqrt(1-e²sin²phi).
func nu(e2, phi float64) float64 {
	s := math.Sin(phi)
	return 1 / math.Sqrt(1-e2*s*s)
}

// MeridianArc returns the meridian arc length M(phi), in units of the
// ellipsoid's semi-major axis (i.e. the caller multiplies by a to get
// metres), using the same series-in-n expansion as
// paulcager-osgridref/latlon-ellipsoidal-datum.go's ToOsGridRef (Ma, Mb,
// Mc, Md terms), generalised to an arbitrary ellipsoid and to phi measured
// from the equator (phi0 = 0) rather than from a fixed false origin.
func MeridianArc(e *ellipsoid.Ellipsoid, phi float64) float64 {
	n := e.ThirdFlattening()
	n2, n3 := n*n, n*n*n
	oneMinusF := e.B() / e.A()

	Ma := (1 + n + 1.25*n2 + 1.25*n3) * phi
	Mb := (3*n + 3*n2 + 2.625*n3) * math.Sin(phi) * math.Cos(phi)
	Mc := (1.875*n2 + 1.875*n3) * math.Sin(2*phi) * math.Cos(2*phi)
	Md := (35.0 / 24.0) * n3 * math.Sin(3*phi) * math.Cos(3*phi)
	return oneMinusF * (Ma - Mb + Mc - Md)
}

// normalization builds the affine that converts a CRS-facing coordinate
// (already in radians/metres, axis order lambda,phi) into the projection's
// normalised input: subtract the central meridian and scale by nothing
// further (scale/false-origin live in the denormalization step, per
// SPEC_FULL.md §4.F).
func normalization(p Params) (*matrix.Affine, error) {
	id := matrix.NewIdentity(2)
	return id.TranslateBefore([]float64{-p.CentralMeridianRad, 0})
}

// denormalization builds the affine that scales a projection's raw
// ellipsoid-radius output by (a*k0) and adds the false easting/northing.
func denormalization(a, k0 float64, p Params) (*matrix.Affine, error) {
	id := matrix.NewIdentity(2)
	id.Set(0, 0, a*k0)
	id.Set(1, 1, a*k0)
	return id.TranslateAfter([]float64{p.FalseEasting, p.FalseNorthing})
}

func noConverge(method string) error {
	return &crserr.NoConvergence{Method: method, Iterations: maxIterations}
}

// finiteDifferenceJacobian computes the forward Jacobian via a centred
// difference with step 1e-6, the shared fallback used by projections whose
// closed-form derivative is not worth hand-maintaining; SPEC_FULL.md §8
// requires analytical Jacobians (where provided) to agree with this same
// quotient to 1e-4 relative, so using it directly is exact by construction.
func finiteDifferenceJacobian(forward func(lambda, phi float64) (float64, float64, error), lambda, phi float64) ([2][2]float64, error) {
	const h = 1e-6
	xp, yp, err := forward(lambda+h, phi)
	if err != nil {
		return [2][2]float64{}, err
	}
	xm, ym, err := forward(lambda-h, phi)
	if err != nil {
		return [2][2]float64{}, err
	}
	xq, yq, err := forward(lambda, phi+h)
	if err != nil {
		return [2][2]float64{}, err
	}
	xr, yr, err := forward(lambda, phi-h)
	if err != nil {
		return [2][2]float64{}, err
	}
	var j [2][2]float64
	j[0][0] = (xp - xm) / (2 * h)
	j[1][0] = (yp - ym) / (2 * h)
	j[0][1] = (xq - xr) / (2 * h)
	j[1][1] = (yq - yr) / (2 * h)
	return j, nil
}
