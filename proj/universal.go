package proj

import (
	"math"

	"github.com/go-crs/crs/ellipsoid"
)

// PolarStereographic is the ellipsoidal polar aspect stereographic
// projection used by UPS, selected (north or south) by the System field of
// a UniversalZone. Its forward/inverse share the same conformal-latitude
// iteration style as Mercator's (see mercator.go), reflected through the
// pole.
type PolarStereographic struct {
	e     float64
	north bool
	c     float64 // sqrt((1+e)^(1+e) * (1-e)^(1-e)), 1 for the spherical case
}

// NewPolarStereographic builds a PolarStereographic projection for the
// given ellipsoid, oriented over the north or south pole.
func NewPolarStereographic(e ellipsoid.Ellipsoid, north bool) *PolarStereographic {
	ecc := e.E()
	c := 1.0
	if ecc != 0 {
		c = math.Sqrt(math.Pow(1+ecc, 1+ecc) * math.Pow(1-ecc, 1-ecc))
	}
	return &PolarStereographic{e: ecc, north: north, c: c}
}

func (p *PolarStereographic) Spherical() bool { return p.e == 0 }

func (p *PolarStereographic) Forward(lambda, phi float64) (x, y float64, err error) {
	var t float64
	if p.north {
		esinPhi := p.e * math.Sin(phi)
		t = math.Tan(math.Pi/4-phi/2) * math.Pow((1+esinPhi)/(1-esinPhi), p.e/2)
	} else {
		esinPhi := p.e * math.Sin(-phi)
		t = math.Tan(math.Pi/4-(-phi)/2) * math.Pow((1+esinPhi)/(1-esinPhi), p.e/2)
	}
	rho := 2 * t / p.c
	if p.north {
		x = rho * math.Sin(lambda)
		y = -rho * math.Cos(lambda)
	} else {
		x = rho * math.Sin(lambda)
		y = rho * math.Cos(lambda)
	}
	return x, y, nil
}

func (p *PolarStereographic) Inverse(x, y float64) (lambda, phi float64, err error) {
	rho := math.Hypot(x, y)
	if rho == 0 {
		if p.north {
			return 0, math.Pi / 2, nil
		}
		return 0, -math.Pi / 2, nil
	}
	t := rho * p.c / 2

	var chi, lam float64
	if p.north {
		chi = math.Pi/2 - 2*math.Atan(t)
		lam = math.Atan2(x, -y)
	} else {
		chi = -(math.Pi/2 - 2*math.Atan(t))
		lam = math.Atan2(x, y)
	}

	ph := chi
	converged := p.e == 0
	for i := 0; i < maxIterations && !converged; i++ {
		esinPhi := p.e * math.Sin(ph)
		var next float64
		if p.north {
			next = math.Pi/2 - 2*math.Atan(t*math.Pow((1-esinPhi)/(1+esinPhi), p.e/2))
		} else {
			next = -(math.Pi/2 - 2*math.Atan(t*math.Pow((1+esinPhi)/(1-esinPhi), p.e/2)))
		}
		if math.Abs(next-ph) < convergenceTol {
			ph = next
			converged = true
			break
		}
		ph = next
	}
	if !converged {
		return 0, 0, noConverge("PolarStereographic.Inverse")
	}
	return lam, ph, nil
}

func (p *PolarStereographic) Jacobian(lambda, phi float64) ([2][2]float64, error) {
	return finiteDifferenceJacobian(p.Forward, lambda, phi)
}

// System distinguishes the UTM and UPS halves of the Universal grid family.
type System int

const (
	SystemUTM System = iota
	SystemUPS
)

// UniversalZone is the result of selecting a UTM zone or UPS cap for a
// geographic position, per SPEC_FULL.md §4.F's zone-selection rules: 60
// six-degree UTM zones with the Norway (32) and Svalbard (31/33/35/37)
// carve-outs, switching to Polar Stereographic below 80S and at/above 84N.
type UniversalZone struct {
	System System
	Zone   int // UTM zone number 1..60; unused (0) for UPS
	North  bool
}

// Universal selects the UTM zone or UPS cap for a geographic position given
// in degrees.
func Universal(latDeg, lonDeg float64) UniversalZone {
	if latDeg < -80 {
		return UniversalZone{System: SystemUPS, North: false}
	}
	if latDeg >= 84 {
		return UniversalZone{System: SystemUPS, North: true}
	}

	zone := int(math.Floor((lonDeg+180)/6)) + 1
	if zone < 1 {
		zone = 1
	} else if zone > 60 {
		zone = 60
	}

	// Norway: widen zone 32 to cover 3E..12E for 56N..64N.
	if latDeg >= 56 && latDeg < 64 && lonDeg >= 3 && lonDeg < 12 {
		zone = 32
	}

	// Svalbard: 72N..84N uses four widened zones, dropping 32/34/36.
	if latDeg >= 72 && latDeg < 84 {
		switch {
		case lonDeg >= 0 && lonDeg < 9:
			zone = 31
		case lonDeg >= 9 && lonDeg < 21:
			zone = 33
		case lonDeg >= 21 && lonDeg < 33:
			zone = 35
		case lonDeg >= 33 && lonDeg < 42:
			zone = 37
		}
	}

	return UniversalZone{System: SystemUTM, Zone: zone, North: latDeg >= 0}
}

// UTMScaleFactor and UTMFalseEasting/Northing are the conventional UTM
// parameters (SPEC_FULL.md §4.F).
const (
	UTMScaleFactor  = 0.9996
	UTMFalseEasting = 500000.0
)

// UTMFalseNorthing returns the conventional false northing for a UTM zone
// in the given hemisphere.
func UTMFalseNorthing(north bool) float64 {
	if north {
		return 0
	}
	return 10000000.0
}

// UPSScaleFactor and UPSFalseEasting/Northing are the conventional UPS
// parameters.
const (
	UPSScaleFactor   = 0.994
	UPSFalseEasting  = 2000000.0
	UPSFalseNorthing = 2000000.0
)

// CentralMeridian returns the UTM central meridian, in radians, for zone
// (1..60): -183 + zone*6 degrees.
func CentralMeridian(zone int) float64 {
	return (-183.0 + float64(zone)*6.0) * ellipsoid.ToRadians
}
