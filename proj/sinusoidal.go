package proj

import (
	"math"

	"github.com/go-crs/crs/ellipsoid"
)

// Sinusoidal is the equal-area pseudo-cylindrical projection: parallels
// are equally spaced straight horizontal lines true to scale, and the
// central meridian is a straight vertical line true to scale; other
// meridians are sinusoidal curves. SPEC_FULL.md §4.F notes the spherical
// and ellipsoidal paths "share identical inversion logic" -- here that
// falls out because both forward equations invert by solving
// lambda = x / cos(phi) once phi is known from the meridian arc, for
// either e == 0 or e != 0.
type Sinusoidal struct {
	e2        float64
	ellipsoid ellipsoid.Ellipsoid
}

// NewSinusoidal builds a Sinusoidal projection for the given ellipsoid.
func NewSinusoidal(e ellipsoid.Ellipsoid) *Sinusoidal {
	return &Sinusoidal{e2: e.E2(), ellipsoid: e}
}

func (s *Sinusoidal) Spherical() bool { return s.e2 == 0 }

// Forward projects (lambda, phi) to normalised (x, y) = (lambda*cos(phi), M(phi)).
func (s *Sinusoidal) Forward(lambda, phi float64) (x, y float64, err error) {
	x = lambda * math.Cos(phi)
	y = MeridianArc(&s.ellipsoid, phi)
	return x, y, nil
}

// Inverse recovers phi from the meridian-arc series (Newton iteration,
// shared with Polyconic.phiFromArcLength's scheme) and then lambda in
// closed form.
func (s *Sinusoidal) Inverse(x, y float64) (lambda, phi float64, err error) {
	phi = s.phiFromArcLength(y)
	cosPhi := math.Cos(phi)
	if cosPhi == 0 {
		return 0, phi, nil
	}
	return x / cosPhi, phi, nil
}

func (s *Sinusoidal) phiFromArcLength(y float64) float64 {
	ph := y
	const h = 1e-6
	for i := 0; i < maxIterations; i++ {
		f := MeridianArc(&s.ellipsoid, ph) - y
		df := (MeridianArc(&s.ellipsoid, ph+h) - MeridianArc(&s.ellipsoid, ph-h)) / (2 * h)
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

func (s *Sinusoidal) Jacobian(lambda, phi float64) ([2][2]float64, error) {
	return finiteDifferenceJacobian(s.Forward, lambda, phi)
}
