package registry

import (
	"fmt"

	"github.com/go-crs/crs/axis"
	"github.com/go-crs/crs/crsmodel"
	"github.com/go-crs/crs/ellipsoid"
	"github.com/go-crs/crs/proj"
)

// populate fills the compact hard-coded fallback table described in
// SPEC_FULL.md §4.H: a handful of well-known geodetic CRSs, the full UTM
// zone set and UPS caps on WGS84, three vertical CRSs and a set of
// temporal CRSs.
func (r *Registry) populate() {
	r.ellipsoids = make(map[string]ellipsoid.Ellipsoid, len(ellipsoid.WellKnown))
	for name, e := range ellipsoid.WellKnown {
		r.ellipsoids[name] = e
	}

	r.datums = make(map[string]ellipsoid.GeodeticDatum, len(ellipsoid.WellKnownDatums))
	for name, d := range ellipsoid.WellKnownDatums {
		r.datums[name] = ellipsoid.GeodeticDatum{Name: name, Ellipsoid: d.Ellipsoid, PrimeMeridian: ellipsoid.Greenwich}
	}

	r.crsTable = make(map[string]crsmodel.CRS)

	wgs84 := r.datums["WGS84"]
	r.crsTable["EPSG:4326"] = crsmodel.GeodeticCRS{Name: "WGS 84", Datum: wgs84, CS: axis.NewGeographicLatLon2D()}
	r.crsTable["EPSG:4979"] = crsmodel.GeodeticCRS{Name: "WGS 84 (3D)", Datum: wgs84, CS: axis.NewGeographic3D()}
	r.crsTable["CRS:84"] = crsmodel.GeodeticCRS{Name: "WGS 84 (CRS:84)", Datum: wgs84, CS: axis.NewGeographic2D()}

	if nad27, ok := r.datums["NAD27"]; ok {
		r.crsTable["CRS:27"] = crsmodel.GeodeticCRS{Name: "NAD27", Datum: nad27, CS: axis.NewGeographic2D()}
	}
	if nad83, ok := r.datums["NAD83"]; ok {
		r.crsTable["CRS:83"] = crsmodel.GeodeticCRS{Name: "NAD83", Datum: nad83, CS: axis.NewGeographic2D()}
	}
	if etrs89, ok := r.datums["ETRS89"]; ok {
		r.crsTable["EPSG:4258"] = crsmodel.GeodeticCRS{Name: "ETRS89", Datum: etrs89, CS: axis.NewGeographicLatLon2D()}
	}
	if ed50, ok := r.datums["ED50"]; ok {
		r.crsTable["EPSG:4230"] = crsmodel.GeodeticCRS{Name: "ED50", Datum: ed50, CS: axis.NewGeographicLatLon2D()}
	}
	if wgs72, ok := r.datums["WGS72"]; ok {
		r.crsTable["EPSG:4322"] = crsmodel.GeodeticCRS{Name: "WGS 72", Datum: wgs72, CS: axis.NewGeographicLatLon2D()}
	}
	if osgb36, ok := r.datums["OSGB36"]; ok {
		base := crsmodel.GeodeticCRS{Name: "OSGB36", Datum: osgb36, CS: axis.NewGeographicLatLon2D()}
		r.crsTable["EPSG:27700"] = nationalGridCRS(base)
	}

	wgs84Geo := r.crsTable["EPSG:4326"].(crsmodel.GeodeticCRS)
	for zone := 1; zone <= 60; zone++ {
		r.crsTable[fmt.Sprintf("EPSG:%d", 32600+zone)] = utmCRS(wgs84Geo, zone, true)
		r.crsTable[fmt.Sprintf("EPSG:%d", 32700+zone)] = utmCRS(wgs84Geo, zone, false)
	}
	r.crsTable["EPSG:32661"] = upsCRS(wgs84Geo, true)
	r.crsTable["EPSG:32761"] = upsCRS(wgs84Geo, false)

	r.crsTable["EPSG:5714"] = verticalCRS("MSL height", axis.Up)
	r.crsTable["EPSG:5715"] = verticalCRS("MSL depth", axis.Down)
	r.crsTable["EPSG:5703"] = verticalCRS("NAVD88 height", axis.Up)
	r.crsTable["CRS:88"] = r.crsTable["EPSG:5703"]

	for key, t := range temporalFallback() {
		r.crsTable[key] = t
	}
}

func utmCRS(base crsmodel.GeodeticCRS, zone int, north bool) crsmodel.ProjectedCRS {
	params := crsmodel.NewParameterValueGroup(
		crsmodel.ParameterValue{Name: "central_meridian", Value: proj.CentralMeridian(zone), Unit: axis.Radian},
		crsmodel.ParameterValue{Name: "latitude_of_origin", Value: 0, Unit: axis.Radian},
		crsmodel.ParameterValue{Name: "scale_factor", Value: proj.UTMScaleFactor},
		crsmodel.ParameterValue{Name: "false_easting", Value: proj.UTMFalseEasting, Unit: axis.Metre},
		crsmodel.ParameterValue{Name: "false_northing", Value: proj.UTMFalseNorthing(north), Unit: axis.Metre},
	)
	hemi := "N"
	if !north {
		hemi = "S"
	}
	return crsmodel.ProjectedCRS{
		Name: fmt.Sprintf("WGS 84 / UTM zone %d%s", zone, hemi),
		Base: base,
		Conversion: crsmodel.Conversion{
			Method:     string(proj.MethodTransverseMercator),
			Parameters: params,
		},
		CS: axis.NewCartesian2D(),
	}
}

// nationalGridCRS builds EPSG:27700, the Ordnance Survey National Grid for
// Great Britain: Transverse Mercator on OSGB36/Airy1830, true origin
// 49°N,2°W, grounded on the false easting/northing and scale factor
// paulcager-osgridref/osgridref.go hard-codes as untyped constants (E0, N0,
// F0, φ0, λ0).
func nationalGridCRS(base crsmodel.GeodeticCRS) crsmodel.ProjectedCRS {
	params := crsmodel.NewParameterValueGroup(
		crsmodel.ParameterValue{Name: "central_meridian", Value: -2 * ellipsoid.ToRadians, Unit: axis.Radian},
		crsmodel.ParameterValue{Name: "latitude_of_origin", Value: 49 * ellipsoid.ToRadians, Unit: axis.Radian},
		crsmodel.ParameterValue{Name: "scale_factor", Value: 0.9996012717},
		crsmodel.ParameterValue{Name: "false_easting", Value: 400000, Unit: axis.Metre},
		crsmodel.ParameterValue{Name: "false_northing", Value: -100000, Unit: axis.Metre},
	)
	return crsmodel.ProjectedCRS{
		Name: "OSGB36 / British National Grid",
		Base: base,
		Conversion: crsmodel.Conversion{
			Method:     string(proj.MethodTransverseMercator),
			Parameters: params,
		},
		CS: axis.NewCartesian2D(),
	}
}

func upsCRS(base crsmodel.GeodeticCRS, north bool) crsmodel.ProjectedCRS {
	falseNorthing := proj.UPSFalseNorthing
	name := "WGS 84 / UPS North"
	if !north {
		name = "WGS 84 / UPS South"
	}
	hemisphereNorth := 0.0
	if north {
		hemisphereNorth = 1.0
	}
	params := crsmodel.NewParameterValueGroup(
		crsmodel.ParameterValue{Name: "latitude_of_origin", Value: 0, Unit: axis.Radian},
		crsmodel.ParameterValue{Name: "scale_factor", Value: proj.UPSScaleFactor},
		crsmodel.ParameterValue{Name: "false_easting", Value: proj.UPSFalseEasting, Unit: axis.Metre},
		crsmodel.ParameterValue{Name: "false_northing", Value: falseNorthing, Unit: axis.Metre},
		crsmodel.ParameterValue{Name: "hemisphere_north", Value: hemisphereNorth},
	)
	return crsmodel.ProjectedCRS{
		Name: name,
		Base: base,
		Conversion: crsmodel.Conversion{
			Method:     string(proj.MethodPolarStereographic),
			Parameters: params,
		},
		CS: axis.NewCartesian2D(),
	}
}

func verticalCRS(name string, dir axis.Direction) crsmodel.VerticalCRS {
	return crsmodel.VerticalCRS{
		Name:  name,
		Datum: crsmodel.VerticalDatum{Name: name},
		CS: axis.CoordinateSystem{Axes: []axis.Axis{
			{Name: name, Direction: dir, Unit: axis.Metre},
		}},
	}
}

// temporalFallback builds the set of temporal CRSs SPEC_FULL.md §4.H
// names, each anchored to its epoch expressed as a Julian day number so
// that converting between them reduces to subtraction (registry keys are
// this package's own, there being no single authority that registers all
// of these).
func temporalFallback() map[string]crsmodel.TemporalCRS {
	day := axis.Unit{Name: "day", ToSIFactor: 86400}
	mk := func(name string, originJulian float64, unit axis.Unit) crsmodel.TemporalCRS {
		return crsmodel.TemporalCRS{
			Name:  name,
			Datum: crsmodel.TemporalDatum{Name: name, OriginJulian: originJulian},
			CS: axis.CoordinateSystem{Axes: []axis.Axis{
				{Name: name, Direction: axis.Future, Unit: unit},
			}},
		}
	}
	return map[string]crsmodel.TemporalCRS{
		"OGC:JULIAN":         mk("Julian Date", 0, day),
		"OGC:MODIFIED_JULIAN": mk("Modified Julian Date", 2400000.5, day),
		"OGC:TRUNCATED_JULIAN": mk("Truncated Julian Day", 2440000.5, day),
		"OGC:DUBLIN_JULIAN":  mk("Dublin Julian Day", 2415020.0, day),
		"OGC:TROPICAL_YEAR":  mk("Tropical year", 2440587.5, axis.Unit{Name: "tropical_year", ToSIFactor: 365.24219 * 86400}),
		"OGC:UNIX_TIME":      mk("Unix time", 2440587.5, axis.Unit{Name: "second", ToSIFactor: 1}),
		"OGC:JAVA_TIME":      mk("Java time", 2440587.5, axis.Unit{Name: "millisecond", ToSIFactor: 0.001}),
	}
}
