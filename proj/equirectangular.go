package proj

import "math"

// Equirectangular is the plate-carrée family: meridians and parallels are
// equally spaced straight lines, scaled true along a chosen standard
// parallel. Forward and inverse are both closed-form linear maps, so no
// iteration or ellipsoidal correction is needed -- a spherical approximation
// is used regardless of the base ellipsoid, matching the AUTO:42004
// definition OGC's AUTO CRS table gives it.
type Equirectangular struct {
	cosPhi1 float64
}

// NewEquirectangular builds an Equirectangular projection true to scale
// along standardParallelRad (0 for the plate-carrée special case).
func NewEquirectangular(standardParallelRad float64) *Equirectangular {
	return &Equirectangular{cosPhi1: math.Cos(standardParallelRad)}
}

func (eq *Equirectangular) Spherical() bool { return true }

// Forward projects (lambda, phi) to normalised (x, y) = (lambda*cos(phi1), phi).
func (eq *Equirectangular) Forward(lambda, phi float64) (x, y float64, err error) {
	return lambda * eq.cosPhi1, phi, nil
}

// Inverse is Forward's exact algebraic inverse.
func (eq *Equirectangular) Inverse(x, y float64) (lambda, phi float64, err error) {
	if eq.cosPhi1 == 0 {
		return 0, y, nil
	}
	return x / eq.cosPhi1, y, nil
}

func (eq *Equirectangular) Jacobian(lambda, phi float64) ([2][2]float64, error) {
	return [2][2]float64{{eq.cosPhi1, 0}, {0, 1}}, nil
}
