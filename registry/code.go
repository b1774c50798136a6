// Package registry resolves authority codes (EPSG:4326, CRS:84, AUTO:42001,...)
// to concrete ellipsoids, datums and CRSs, falling back to a compact
// hard-coded table when no external data source is configured.
//
// Grounded on paulcager-osgridref/latlon-ellipsoidal-datum.go's
// map[string]T fallback-table shape, generalised into a typed, code-keyed
// store; the AUTO parameter grammar is grounded on
// samlecuyer-projectron/projection.go's NewProjection "+key=val" parser,
// adapted to the comma-separated AUTO:code,unit,lon,lat form of
// SPEC_FULL.md §6.F.
package registry

import (
	"strconv"
	"strings"

	"github.com/go-crs/crs/crserr"
)

// Code is a resolved authority identifier: an authority name (EPSG, CRS,
// OGC, AUTO, AUTO2, ...) and the code/parameter string within it.
type Code struct {
	Authority string
	Code      string
}

// ParseCode accepts any of the single-code forms of SPEC_FULL.md §6.F:
// AUTHORITY:CODE, AUTHORITY::CODE, urn:ogc:def:TYPE:AUTHORITY:VERSION:CODE,
// http://www.opengis.net/def/TYPE/AUTHORITY/VERSION/CODE and
// .../gml/srs/epsg.xml#CODE. Composite urn:ogc:def:crs,... forms are
// handled by ParseComposite, not here.
func ParseCode(s string) (Code, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Code{}, &crserr.IllegalProperty{Key: "code", Value: s}
	}

	lower := strings.ToLower(s)
	switch {
	case strings.HasPrefix(lower, "http://www.opengis.net/def/"):
		return parseSlashForm(s[len("http://www.opengis.net/def/"):])
	case strings.Contains(lower, "/gml/srs/"):
		return parseGMLSRS(s)
	case strings.HasPrefix(lower, "urn:ogc:def:"):
		return parseURNDef(s[len("urn:ogc:def:"):])
	default:
		return parseAuthorityCode(s)
	}
}

// parseAuthorityCode handles AUTHORITY:CODE and AUTHORITY::CODE (the
// doubled colon denoting an elided version): split on the first colon,
// then strip one more leading colon if present.
func parseAuthorityCode(s string) (Code, error) {
	idx := strings.Index(s, ":")
	if idx < 0 {
		return Code{}, &crserr.AuthorityCodeUnknown{Authority: "", Code: s}
	}
	authority := s[:idx]
	rest := strings.TrimPrefix(s[idx+1:], ":")
	return Code{Authority: strings.ToUpper(authority), Code: rest}, nil
}

// parseSlashForm handles the path segments after
// "http://www.opengis.net/def/", namely TYPE/AUTHORITY/VERSION/CODE.
func parseSlashForm(rest string) (Code, error) {
	parts := strings.Split(rest, "/")
	if len(parts) < 4 {
		return Code{}, &crserr.IllegalProperty{Key: "code", Value: rest}
	}
	return Code{Authority: strings.ToUpper(parts[1]), Code: parts[3]}, nil
}

// parseURNDef handles the colon-separated segments after "urn:ogc:def:",
// namely TYPE:AUTHORITY:VERSION:CODE.
func parseURNDef(rest string) (Code, error) {
	parts := strings.Split(rest, ":")
	if len(parts) < 4 {
		return Code{}, &crserr.IllegalProperty{Key: "code", Value: rest}
	}
	return Code{Authority: strings.ToUpper(parts[1]), Code: parts[3]}, nil
}

// parseGMLSRS handles "*/gml/srs/epsg.xml#CODE"-style references.
func parseGMLSRS(s string) (Code, error) {
	idx := strings.LastIndex(s, "/")
	seg := s
	if idx >= 0 {
		seg = s[idx+1:]
	}
	parts := strings.SplitN(seg, "#", 2)
	if len(parts) != 2 {
		return Code{}, &crserr.IllegalProperty{Key: "code", Value: s}
	}
	authority := strings.TrimSuffix(parts[0], ".xml")
	return Code{Authority: strings.ToUpper(authority), Code: parts[1]}, nil
}

// IsComposite reports whether s is a composite CRS URN
// (urn:ogc:def:crs,crs:A::X,crs:B::Y).
func IsComposite(s string) bool {
	lower := strings.ToLower(strings.TrimSpace(s))
	return strings.HasPrefix(lower, "urn:ogc:def:crs,")
}

// ParseComposite splits a composite CRS URN into its component codes.
func ParseComposite(s string) ([]Code, error) {
	s = strings.TrimSpace(s)
	lower := strings.ToLower(s)
	const prefix = "urn:ogc:def:crs,"
	if !strings.HasPrefix(lower, prefix) {
		return nil, &crserr.IllegalProperty{Key: "code", Value: s}
	}
	rest := s[len(prefix):]
	parts := strings.Split(rest, ",")
	codes := make([]Code, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimPrefix(p, "crs:")
		c, err := parseAuthorityCode(p)
		if err != nil {
			return nil, err
		}
		codes = append(codes, c)
	}
	return codes, nil
}

// AutoParams is the parsed parameter list of an AUTO/AUTO2 code:
// AUTO[12]:CODE,[unit,]lon,lat.
type AutoParams struct {
	ProjectionCode int
	UnitToMetres   float64 // 1 if no unit parameter was given
	Lon, Lat       float64 // degrees
}

// ParseAuto parses an AUTO code's parameter string (the Code field of a
// Code whose Authority is AUTO, AUTO1 or AUTO2), comma-separated with optional
// whitespace, decimal '.' separators and '+'/'-' signs.
func ParseAuto(params string) (AutoParams, error) {
	fields := strings.Split(params, ",")
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}
	if len(fields) < 3 {
		return AutoParams{}, &crserr.IllegalProperty{Key: "auto", Value: params}
	}

	code, err := strconv.Atoi(fields[0])
	if err != nil {
		return AutoParams{}, &crserr.IllegalProperty{Key: "auto.code", Value: fields[0]}
	}

	unit := 1.0
	rest := fields[1:]
	if len(rest) == 3 {
		unit, err = strconv.ParseFloat(rest[0], 64)
		if err != nil {
			return AutoParams{}, &crserr.IllegalProperty{Key: "auto.unit", Value: rest[0]}
		}
		rest = rest[1:]
	}
	if len(rest) != 2 {
		return AutoParams{}, &crserr.IllegalProperty{Key: "auto", Value: params}
	}
	// lon/lat accept either decimal degrees or sexagesimal DMS (e.g.
	// "51°28'40.37\"N"), per parseDegrees.
	lon, err := parseDegrees(rest[0])
	if err != nil {
		return AutoParams{}, &crserr.IllegalProperty{Key: "auto.lon", Value: rest[0]}
	}
	lat, err := parseDegrees(rest[1])
	if err != nil {
		return AutoParams{}, &crserr.IllegalProperty{Key: "auto.lat", Value: rest[1]}
	}

	return AutoParams{ProjectionCode: code, UnitToMetres: unit, Lon: lon, Lat: lat}, nil
}
