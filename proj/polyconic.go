package proj

import (
	"math"

	"github.com/go-crs/crs/ellipsoid"
)

// Polyconic is the (American) Polyconic projection: the reference case of
// SPEC_FULL.md §4.F. Parallels are non-concentric circular arcs, each
// developed at its true scale along the central meridian, hence the
// degenerate straight-line case at the equator.
type Polyconic struct {
	e2        float64
	ellipsoid ellipsoid.Ellipsoid
}

// NewPolyconic builds a Polyconic projection for the given ellipsoid.
func NewPolyconic(e ellipsoid.Ellipsoid) *Polyconic {
	return &Polyconic{e2: e.E2(), ellipsoid: e}
}

func (p *Polyconic) Spherical() bool { return p.e2 == 0 }

// coneParam returns k(phi) = nu(phi)*cot(phi), the quantity whose
// reciprocal appears throughout the forward/inverse equations, and phi's
// meridian arc M(phi).
func (p *Polyconic) coneParam(phi float64) (k, m float64) {
	sinPhi, cosPhi := math.Sin(phi), math.Cos(phi)
	nuPhi := nu(p.e2, phi)
	k = nuPhi * cosPhi / sinPhi // nu * cot(phi); -> +-Inf as phi -> 0
	m = MeridianArc(&p.ellipsoid, phi)
	return
}

// Forward projects (lambda, phi) to normalised (x, y). At phi == 0
// (detected via the infinite nu*cot(phi) term) the projection reduces to
// the documented degenerate case (x, y) = (lambda, M(phi)).
func (p *Polyconic) Forward(lambda, phi float64) (x, y float64, err error) {
	if phi == 0 {
		return lambda, 0, nil
	}
	k, m := p.coneParam(phi)
	l := lambda * math.Sin(phi)
	x = k * math.Sin(l)
	y = m + k*(1-math.Cos(l))
	return x, y, nil
}

// Inverse projects normalised (x, y) back to (lambda, phi) via Newton
// iteration on phi (using a centred finite-difference derivative of the
// y-residual, since the closed-form derivative of the meridian arc plus
// nu*cot(phi) term is unwieldy to maintain correctly by hand) followed by
// the closed form for lambda, as SPEC_FULL.md §4.F specifies.
func (p *Polyconic) Inverse(x, y float64) (lambda, phi float64, err error) {
	if x == 0 {
		return 0, p.phiFromArcLength(y), nil
	}

	residual := func(ph float64) float64 {
		k, m := p.coneParam(ph)
		return x*x + (m-y)*(m-y) + 2*k*(m-y) // == k^2 * ((x/k)^2 + (1-(y-m)/k)^2 - 1), scaled by k^2 to avoid the 1/k singularity near phi=0
	}

	ph := y // meridian arc ~= phi for small flattening: a good Newton seed
	if ph == 0 {
		ph = math.Copysign(1e-6, x)
	}
	const h = 1e-6
	converged := false
	for i := 0; i < maxIterations; i++ {
		f := residual(ph)
		df := (residual(ph+h) - residual(ph-h)) / (2 * h)
		if df == 0 {
			break
		}
		delta := f / df
		ph -= delta
		if math.Abs(delta) < convergenceTol {
			converged = true
			break
		}
	}
	if !converged && math.Abs(residual(ph)) > 1e-6 {
		return 0, 0, noConverge("Polyconic.Inverse")
	}
	if math.Abs(ph) < 1e-9 {
		return x, ph, nil
	}
	k, m := p.coneParam(ph)
	sinL := x / k
	cosL := 1 - (y-m)/k
	l := math.Atan2(sinL, cosL)
	lambda = l / math.Sin(ph)
	return lambda, ph, nil
}

// phiFromArcLength inverts the meridian-arc series for phi when x == 0
// (on the central meridian, where lambda == 0 trivially), via the same
// Newton scheme used by the general inverse.
func (p *Polyconic) phiFromArcLength(y float64) float64 {
	ph := y
	const h = 1e-6
	for i := 0; i < maxIterations; i++ {
		f := MeridianArc(&p.ellipsoid, ph) - y
		df := (MeridianArc(&p.ellipsoid, ph+h) - MeridianArc(&p.ellipsoid, ph-h)) / (2 * h)
		if df == 0 {
			break
		}
		delta := f / df
		ph -= delta
		if math.Abs(delta) < convergenceTol {
			break
		}
	}
	return ph
}

// Jacobian returns the forward partial derivatives via central finite
// differences (step 1e-6), matching the 1e-6 relative-error budget of
// SPEC_FULL.md §8.
func (p *Polyconic) Jacobian(lambda, phi float64) ([2][2]float64, error) {
	return finiteDifferenceJacobian(p.Forward, lambda, phi)
}
