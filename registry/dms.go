/* - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - -  */
/* Geodesy representation conversion functions                        (c) Chris Veness 2002-2020  */
/*                                                                                   MIT Licence  */
/* www.movable-type.co.uk/scripts/latlong.html                                                    */
/* www.movable-type.co.uk/scripts/js/geodesy/geodesy-library.html#dms                             */
/* - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - -  */

package registry

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/go-crs/crs/crserr"
)

var dmsSeparatorChars = regexp.MustCompile(`[^0-9.]+`)

func invalidDegrees(s string) error {
	return &crserr.IllegalProperty{Key: "degrees", Value: s}
}

// parseDegrees parses a string representing degrees, or degrees/minutes/
// seconds, into decimal degrees. It accepts signed decimal degrees or
// deg-min-sec optionally suffixed by a compass direction (NSEW), with a
// variety of separators: -3.62, "3 37 12W", "3°37′12″W". Used by ParseAuto
// to accept the AUTO/AUTO2 lon/lat parameters in either decimal or
// sexagesimal form.
func parseDegrees(s string) (float64, error) {
	orig := s
	s = strings.TrimSpace(s)
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f, nil
	}
	if len(s) == 0 {
		return 0, invalidDegrees(orig)
	}

	negative := s[0] == '-'
	if s[0] == '-' || s[0] == '+' {
		s = s[1:]
	}
	s = strings.TrimSpace(s)
	if len(s) == 0 {
		return 0, invalidDegrees(orig)
	}

	switch s[len(s)-1] {
	case 'S', 'W':
		negative = true
		s = s[:len(s)-1]
	case 'N', 'E':
		s = s[:len(s)-1]
	}
	s = strings.TrimSpace(s)

	parts := dmsSeparatorChars.Split(s, -1)
	if parts[0] == "" {
		return 0, invalidDegrees(orig)
	}
	if parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}

	multiplier := 1.0
	sum := 0.0
	for _, p := range parts {
		f, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return 0, invalidDegrees(orig)
		}
		sum += f * multiplier
		multiplier /= 60.0
	}
	if negative {
		sum = -sum
	}
	return sum, nil
}
