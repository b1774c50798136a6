package proj

import "math"

// Mercator is the conformal cylindrical projection, covering both the
// ellipsoidal case and its spherical degenerate (Web/Pseudo-Mercator)
// specialisation, selected automatically by e == 0.
type Mercator struct {
	e float64
}

// NewMercator builds a Mercator projection with first eccentricity e.
func NewMercator(e float64) *Mercator { return &Mercator{e: e} }

func (m *Mercator) Spherical() bool { return m.e == 0 }

// Forward computes x = lambda, y = ln(tan(pi/4+phi/2)) for the spherical
// case, generalised to the standard isometric-latitude correction for the
// ellipsoidal case.
func (m *Mercator) Forward(lambda, phi float64) (x, y float64, err error) {
	x = lambda
	if m.e == 0 {
		y = math.Log(math.Tan(math.Pi/4 + phi/2))
		return x, y, nil
	}
	esinPhi := m.e * math.Sin(phi)
	y = math.Log(math.Tan(math.Pi/4+phi/2)) - (m.e/2)*math.Log((1+esinPhi)/(1-esinPhi))
	return x, y, nil
}

// Inverse recovers (lambda, phi) from (x, y). The ellipsoidal path iterates
// on the conformal-latitude relation (Snyder 1987 eq. 7-9), capped at
// maxIterations with the shared 1e-12 radian tolerance.
func (m *Mercator) Inverse(x, y float64) (lambda, phi float64, err error) {
	lambda = x
	t := math.Exp(-y)
	if m.e == 0 {
		phi = math.Pi/2 - 2*math.Atan(t)
		return lambda, phi, nil
	}
	ph := math.Pi/2 - 2*math.Atan(t)
	for i := 0; i < maxIterations; i++ {
		esinPhi := m.e * math.Sin(ph)
		next := math.Pi/2 - 2*math.Atan(t*math.Pow((1-esinPhi)/(1+esinPhi), m.e/2))
		if math.Abs(next-ph) < convergenceTol {
			ph = next
			return lambda, ph, nil
		}
		ph = next
	}
	return 0, 0, noConverge("Mercator.Inverse")
}

func (m *Mercator) Jacobian(lambda, phi float64) ([2][2]float64, error) {
	return finiteDifferenceJacobian(m.Forward, lambda, phi)
}
