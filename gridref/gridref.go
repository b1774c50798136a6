// Package gridref implements the Ordnance Survey National Grid's compact
// letter-pair string encoding of an (easting, northing) pair, and its
// conversion to/from geographic coordinates.
//
// Grounded on paulcager-osgridref/osgridref.go's OsGridRef: the grid-letter
// codec (ParseGridRef/String/StringN/NumericString) is kept close to the
// original, since it is a presentation-layer detail the CRS model has no
// stake in. What's replaced is the coordinate math: osgridref.go hard-codes
// its own Redfearn-series Transverse Mercator and an OSGB36->WGS84
// Bursa-Wolf call; this version resolves EPSG:27700 from registry.Registry
// and hands the conversion to opfinder.Finder, so it is exercised by (and
// stays consistent with) the operation finder's own projection and datum
// shift code rather than a second, parallel implementation.
package gridref

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-crs/crs/crserr"
	"github.com/go-crs/crs/opfinder"
	"github.com/go-crs/crs/registry"
)

// GridRef is an Ordnance Survey National Grid reference: whole-metre
// easting/northing from the grid's false origin (SW corner of grid square
// SV).
type GridRef struct {
	Easting, Northing int
}

var (
	commaSeparatedFormat = regexp.MustCompile(`^(\d+),\s*(\d+)$`)
	gridRefFormat        = regexp.MustCompile(`^[A-Z]{2}[0-9]+$`)
)

// ParseGridRef accepts a comma-separated numeric easting/northing pair
// ("651409, 313177") or a letter-pair grid reference ("TG 51409 13177",
// spaces optional, odd digit counts not allowed).
func ParseGridRef(s string) (GridRef, error) {
	s = strings.ToUpper(strings.ReplaceAll(s, " ", ""))

	if m := commaSeparatedFormat.FindStringSubmatch(s); m != nil {
		e, err1 := strconv.ParseFloat(m[1], 64)
		n, err2 := strconv.ParseFloat(m[2], 64)
		if err1 != nil || err2 != nil {
			return GridRef{}, &crserr.IllegalProperty{Key: "gridref", Value: s}
		}
		return GridRef{Easting: int(e), Northing: int(n)}, nil
	}

	if gridRefFormat.FindString(s) == "" {
		return GridRef{}, &crserr.IllegalProperty{Key: "gridref", Value: s}
	}
	if s[0] == 'I' || s[1] == 'I' {
		return GridRef{}, &crserr.IllegalProperty{Key: "gridref", Value: s}
	}

	l1 := int(s[0] - 'A')
	l2 := int(s[1] - 'A')
	if l1 > 7 {
		l1--
	}
	if l2 > 7 {
		l2--
	}
	if l1 < 8 || l1 > 18 {
		return GridRef{}, &crserr.IllegalProperty{Key: "gridref", Value: s}
	}

	e100km := ((l1-2)%5)*5 + (l2 % 5)
	n100km := (19 - (l1/5)*5) - (l2 / 5)

	digits := s[2:]
	e, n := digits[:len(digits)/2], digits[len(digits)/2:]
	if len(e) != len(n) {
		return GridRef{}, &crserr.IllegalProperty{Key: "gridref", Value: s}
	}
	e = (e + "00000")[:5]
	n = (n + "00000")[:5]

	easting, err1 := strconv.ParseInt(e, 10, 32)
	northing, err2 := strconv.ParseInt(n, 10, 32)
	if err1 != nil || err2 != nil {
		return GridRef{}, &crserr.IllegalProperty{Key: "gridref", Value: s}
	}
	return GridRef{Easting: e100km*100000 + int(easting), Northing: n100km*100000 + int(northing)}, nil
}

// Valid reports whether g falls within the grid's defined extent.
func (g GridRef) Valid() bool {
	return g.Easting >= 0 && g.Easting <= 700_000 && g.Northing >= 0 && g.Northing <= 1_300_000
}

// String formats g as an 8-digit (10 m precision) grid reference.
func (g GridRef) String() string { return g.StringN(8) }

// StringN formats g as a digits-digit grid reference (digits must be even,
// 2..10), letter pair then space-separated easting/northing.
func (g GridRef) StringN(digits int) string { return g.stringN(digits, true) }

// StringNCompact is StringN without the separating spaces.
func (g GridRef) StringNCompact(digits int) string { return g.stringN(digits, false) }

func (g GridRef) stringN(digits int, spaces bool) string {
	e, n := g.Easting, g.Northing
	e100km := e / 100_000
	n100km := n / 100_000

	l1 := (19 - n100km) - (19-n100km)%5 + (e100km+10)/5
	l2 := (19-n100km)*5%25 + e100km%5
	if l1 > 7 {
		l1++
	}
	if l2 > 7 {
		l2++
	}
	letterPair := string([]byte{byte(l1 + 'A'), byte(l2 + 'A')})

	pow := 1
	for i := 0; i < 5-digits/2; i++ {
		pow *= 10
	}
	e = (e % 100_000) / pow
	n = (n % 100_000) / pow

	if spaces {
		return fmt.Sprintf("%s %0*d %0*d", letterPair, digits/2, e, digits/2, n)
	}
	return fmt.Sprintf("%s%0*d%0*d", letterPair, digits/2, e, digits/2, n)
}

// NumericString formats g as a bare comma-separated easting,northing pair.
func (g GridRef) NumericString() string {
	return fmt.Sprintf("%d,%d", g.Easting, g.Northing)
}

// ToLatLon resolves EPSG:27700 and EPSG:4326 from reg and converts g to a
// WGS 84 (lat, lon) pair via opfinder, composing the National Grid's
// Transverse Mercator projection with the OSGB36->WGS84 datum shift in one
// pass.
func (g GridRef) ToLatLon(reg *registry.Registry) (lat, lon float64, err error) {
	source, err := reg.CRS("EPSG:27700")
	if err != nil {
		return 0, 0, err
	}
	target, err := reg.CRS("EPSG:4326")
	if err != nil {
		return 0, 0, err
	}
	op, err := opfinder.New().CreateOperation(source, target)
	if err != nil {
		return 0, 0, err
	}
	out, err := op.MathTransform().Forward([]float64{float64(g.Easting), float64(g.Northing)})
	if err != nil {
		return 0, 0, err
	}
	return out[0], out[1], nil
}

// FromLatLon is ToLatLon's inverse: converts a WGS 84 (lat, lon) pair to
// the nearest whole-metre National Grid reference.
func FromLatLon(reg *registry.Registry, lat, lon float64) (GridRef, error) {
	source, err := reg.CRS("EPSG:4326")
	if err != nil {
		return GridRef{}, err
	}
	target, err := reg.CRS("EPSG:27700")
	if err != nil {
		return GridRef{}, err
	}
	op, err := opfinder.New().CreateOperation(source, target)
	if err != nil {
		return GridRef{}, err
	}
	out, err := op.MathTransform().Forward([]float64{lat, lon})
	if err != nil {
		return GridRef{}, err
	}
	return GridRef{Easting: int(out[0] + 0.5), Northing: int(out[1] + 0.5)}, nil
}
