package proj

import (
	"math"

	"github.com/go-crs/crs/ellipsoid"
)

// TransverseMercator is the Krueger n-series transverse Mercator, the
// projection family the UTM/UPS zone system (Universal, see universal.go)
// is built from.
//
// Grounded on
// other_examples/f0964fbf_tzneal-coordconv__transversemercator.go's
// generateCoefficients default branch, which computes the same alpha_k
// rectifying-latitude series in Helmert's n this type uses (its aCoeff[0]
// is exactly the alpha1 series below, extended to n^8); this
// implementation keeps 4 series terms (alpha1..alpha4/beta1..beta4)
// rather than tzneal-coordconv's 6, which holds better than 1mm accuracy
// within +-3 degrees of the central meridian -- comfortably inside a UTM
// zone's +-3 degree half-width -- while keeping the coefficients
// hand-verifiable; see DESIGN.md.
type TransverseMercator struct {
	e, e2, n float64
	aRadius  float64 // rectifying radius A, in units of the semi-major axis
	alpha    [4]float64
	beta     [4]float64
}

// NewTransverseMercator builds a TransverseMercator for the given
// ellipsoid.
func NewTransverseMercator(ell ellipsoid.Ellipsoid) *TransverseMercator {
	n := ell.ThirdFlattening()
	n2 := n * n
	n3 := n2 * n
	n4 := n3 * n

	t := &TransverseMercator{e: ell.E(), e2: ell.E2(), n: n}
	t.aRadius = (1 + n2/4 + n4/64) / (1 + n)

	t.alpha[0] = n/2 - 2.0/3*n2 + 5.0/16*n3 + 41.0/180*n4
	t.alpha[1] = 13.0/48*n2 - 3.0/5*n3 + 557.0/1440*n4
	t.alpha[2] = 61.0/240*n3 - 103.0/140*n4
	t.alpha[3] = 49561.0 / 161280 * n4

	t.beta[0] = n/2 - 2.0/3*n2 + 37.0/96*n3 - 1.0/360*n4
	t.beta[1] = 1.0/48*n2 + 1.0/15*n3 - 437.0/1440*n4
	t.beta[2] = 17.0/480*n3 - 37.0/840*n4
	t.beta[3] = 4397.0 / 161280 * n4
	return t
}

func (t *TransverseMercator) Spherical() bool { return t.e == 0 }

// Forward projects (lambda, phi) -- lambda already relative to the central
// meridian -- to normalised (x, y) in units of the semi-major axis.
func (t *TransverseMercator) Forward(lambda, phi float64) (x, y float64, err error) {
	if phi == math.Pi/2 || phi == -math.Pi/2 {
		return 0, math.Copysign(math.Pi/2, phi) * t.aRadius, nil
	}
	tanPhi := math.Tan(phi)
	sigma := math.Sinh(t.e * math.Atanh(t.e*tanPhi/math.Sqrt(1+tanPhi*tanPhi)))
	tau := tanPhi*math.Sqrt(1+sigma*sigma) - sigma*math.Sqrt(1+tanPhi*tanPhi)
	cosLam, sinLam := math.Cos(lambda), math.Sin(lambda)
	xiP := math.Atan2(tau, cosLam)
	etaP := math.Asinh(sinLam / math.Hypot(tau, cosLam))

	xi, eta := xiP, etaP
	for k := 1; k <= 4; k++ {
		a := t.alpha[k-1]
		xi += a * math.Sin(float64(2*k)*xiP) * math.Cosh(float64(2*k)*etaP)
		eta += a * math.Cos(float64(2*k)*xiP) * math.Sinh(float64(2*k)*etaP)
	}
	return t.aRadius * eta, t.aRadius * xi, nil
}

// Inverse recovers (lambda, phi), lambda relative to the central meridian,
// from normalised (x, y) via the beta series followed by Karney's Newton
// iteration for the conformal-to-geodetic latitude correction.
func (t *TransverseMercator) Inverse(x, y float64) (lambda, phi float64, err error) {
	xiP := y / t.aRadius
	etaP := x / t.aRadius

	xi, eta := xiP, etaP
	for k := 1; k <= 4; k++ {
		b := t.beta[k-1]
		xi -= b * math.Sin(float64(2*k)*xiP) * math.Cosh(float64(2*k)*etaP)
		eta -= b * math.Cos(float64(2*k)*xiP) * math.Sinh(float64(2*k)*etaP)
	}

	sinhEta := math.Sinh(eta)
	sinXi, cosXi := math.Sin(xi), math.Cos(xi)
	tauP := sinXi / math.Hypot(sinhEta, cosXi)

	tau := tauP
	converged := false
	for i := 0; i < maxIterations; i++ {
		sigma := math.Sinh(t.e * math.Atanh(t.e*tau/math.Sqrt(1+tau*tau)))
		tauI := tau*math.Sqrt(1+sigma*sigma) - sigma*math.Sqrt(1+tau*tau)
		dTau := (tauP - tauI) * (1 + (1-t.e2)*tau*tau) /
			((1 - t.e2) * math.Sqrt(1+tauI*tauI) * math.Sqrt(1+tau*tau))
		tau += dTau
		if math.Abs(dTau) < convergenceTol {
			converged = true
			break
		}
	}
	if !converged {
		return 0, 0, noConverge("TransverseMercator.Inverse")
	}
	phi = math.Atan(tau)
	lambda = math.Atan2(sinhEta, cosXi)
	return lambda, phi, nil
}

func (t *TransverseMercator) Jacobian(lambda, phi float64) ([2][2]float64, error) {
	return finiteDifferenceJacobian(t.Forward, lambda, phi)
}
