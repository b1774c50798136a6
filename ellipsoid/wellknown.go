package ellipsoid

// WellKnown mirrors the small sample of ellipsoids
// paulcager-osgridref/latlon-ellipsoidal-datum.go ships as
// `ellipsoids = map[string]Ellipseoid{...}`, extended with the additional
// ellipsoids the registry's fallback table (SPEC_FULL.md §4.H) needs:
// the GRS80-based modern frames plus the IUGG authalic sphere used for
// equal-area/spherical degenerate projection paths.
var WellKnown = map[string]Ellipsoid{
	"WGS84":         FromSemiMinor("WGS84", 6378137, 6356752.314245),
	"WGS72":         FromSemiMinor("WGS72", 6378135, 6356750.5),
	"GRS80":         FromSemiMinor("GRS80", 6378137, 6356752.314140),
	"Airy1830":      FromSemiMinor("Airy1830", 6377563.396, 6356256.909),
	"AiryModified":  FromSemiMinor("AiryModified", 6377340.189, 6356034.448),
	"Bessel1841":    FromSemiMinor("Bessel1841", 6377397.155, 6356078.962818),
	"Clarke1866":    FromSemiMinor("Clarke1866", 6378206.4, 6356583.8),
	"Clarke1880IGN": FromSemiMinor("Clarke1880IGN", 6378249.2, 6356515.0),
	"Intl1924":      FromSemiMinor("Intl1924", 6378388, 6356911.946),
	"Authalic":      FromSemiMinor("Authalic", 6371000, 6371000),
}

// WellKnownDatums mirrors paulcager-osgridref/latlon-ellipsoidal-datum.go's
// Datums map: name -> (ellipsoid, Bursa-Wolf parameters relative to WGS84).
// The registry's fallback table (SPEC_FULL.md §4.H) consumes these to build
// GeodeticDatum + BursaWolf pairs for EPSG codes it has no external source
// for.
var WellKnownDatums = map[string]struct {
	Ellipsoid Ellipsoid
	ToWGS84   BursaWolf
}{
	"WGS84": {WellKnown["WGS84"], BursaWolf{}},
	"ED50": {WellKnown["Intl1924"], BursaWolf{
		Tx: 89.5, Ty: 93.8, Tz: 123.1, S: -1.2, Rx: 0, Ry: 0, Rz: 0.156,
	}},
	"ETRS89": {WellKnown["GRS80"], BursaWolf{}},
	"Irl1975": {WellKnown["AiryModified"], BursaWolf{
		Tx: -482.530, Ty: 130.596, Tz: -564.557, S: -8.150, Rx: 1.042, Ry: 0.214, Rz: 0.631,
	}},
	"NAD27": {WellKnown["Clarke1866"], BursaWolf{Tx: 8, Ty: -160, Tz: -176}},
	"NAD83": {WellKnown["GRS80"], BursaWolf{
		Tx: 0.9956, Ty: -1.9103, Tz: -0.5215, S: -0.00062, Rx: 0.025915, Ry: 0.009426, Rz: 0.011599,
	}},
	"OSGB36": {WellKnown["Airy1830"], BursaWolf{
		Tx: -446.448, Ty: 125.157, Tz: -542.060, S: 20.4894, Rx: -0.1502, Ry: -0.2470, Rz: -0.8421,
	}},
	"WGS72": {WellKnown["WGS72"], BursaWolf{Tz: -4.5, S: -0.22, Rz: 0.554}},
}
