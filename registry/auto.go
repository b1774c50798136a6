package registry

import (
	"fmt"

	"github.com/go-crs/crs/axis"
	"github.com/go-crs/crs/crserr"
	"github.com/go-crs/crs/crsmodel"
	"github.com/go-crs/crs/ellipsoid"
	"github.com/go-crs/crs/proj"
)

// OGC AUTO/AUTO2 projection codes (SPEC_FULL.md §6.F). Equirectangular is
// realised with proj.Equirectangular; Orthographic and Mollweide have no
// proj implementation and are recognised but rejected -- see buildAuto.
const (
	autoUTM               = 42001
	autoTransverseMercator = 42002
	autoOrthographic       = 42003
	autoEquirectangular    = 42004
	autoMollweide          = 42005
	autoMercator           = 42100
)

// buildAuto constructs the ProjectedCRS an AUTO/AUTO2 code names, centred on
// the supplied longitude/latitude (SPEC_FULL.md §6.F: the projection origin
// is not fixed in the code itself but carried alongside it as parameters).
func (r *Registry) buildAuto(params string) (crsmodel.CRS, error) {
	p, err := ParseAuto(params)
	if err != nil {
		return nil, err
	}

	wgs84, ok := r.datums["WGS84"]
	if !ok {
		return nil, &crserr.AuthorityCodeUnknown{Authority: "DATUM", Code: "WGS84"}
	}
	base := crsmodel.GeodeticCRS{Name: "WGS 84", Datum: wgs84, CS: axis.NewGeographicLatLon2D()}

	switch p.ProjectionCode {
	case autoUTM:
		zone := proj.Universal(p.Lat, p.Lon)
		if zone.System == proj.SystemUPS {
			return upsCRS(base, zone.North), nil
		}
		return utmCRS(base, zone.Zone, zone.North), nil

	case autoTransverseMercator:
		return crsmodel.ProjectedCRS{
			Name: fmt.Sprintf("WGS 84 / Auto Transverse Mercator (%g, %g)", p.Lon, p.Lat),
			Base: base,
			Conversion: crsmodel.Conversion{
				Method: string(proj.MethodTransverseMercator),
				Parameters: crsmodel.NewParameterValueGroup(
					crsmodel.ParameterValue{Name: "central_meridian", Value: p.Lon * ellipsoid.ToRadians, Unit: axis.Radian},
					crsmodel.ParameterValue{Name: "latitude_of_origin", Value: 0, Unit: axis.Radian},
					crsmodel.ParameterValue{Name: "scale_factor", Value: 0.9996},
					crsmodel.ParameterValue{Name: "false_easting", Value: 500000, Unit: axis.Metre},
					crsmodel.ParameterValue{Name: "false_northing", Value: 0, Unit: axis.Metre},
				),
			},
			CS: axis.NewCartesian2D(),
		}, nil

	case autoMercator:
		return crsmodel.ProjectedCRS{
			Name: fmt.Sprintf("WGS 84 / Auto Mercator (%g, %g)", p.Lon, p.Lat),
			Base: base,
			Conversion: crsmodel.Conversion{
				Method: string(proj.MethodMercator),
				Parameters: crsmodel.NewParameterValueGroup(
					crsmodel.ParameterValue{Name: "central_meridian", Value: p.Lon * ellipsoid.ToRadians, Unit: axis.Radian},
					crsmodel.ParameterValue{Name: "false_easting", Value: 0, Unit: axis.Metre},
					crsmodel.ParameterValue{Name: "false_northing", Value: 0, Unit: axis.Metre},
				),
			},
			CS: axis.NewCartesian2D(),
		}, nil

	case autoEquirectangular:
		return crsmodel.ProjectedCRS{
			Name: fmt.Sprintf("WGS 84 / Auto Equirectangular (%g, %g)", p.Lon, p.Lat),
			Base: base,
			Conversion: crsmodel.Conversion{
				Method: string(proj.MethodEquirectangular),
				Parameters: crsmodel.NewParameterValueGroup(
					crsmodel.ParameterValue{Name: "central_meridian", Value: p.Lon * ellipsoid.ToRadians, Unit: axis.Radian},
					crsmodel.ParameterValue{Name: "standard_parallel_1", Value: p.Lat * ellipsoid.ToRadians, Unit: axis.Radian},
					crsmodel.ParameterValue{Name: "false_easting", Value: 0, Unit: axis.Metre},
					crsmodel.ParameterValue{Name: "false_northing", Value: 0, Unit: axis.Metre},
				),
			},
			CS: axis.NewCartesian2D(),
		}, nil

	case autoOrthographic, autoMollweide:
		return nil, &crserr.OperationNotFound{Source: "AUTO:" + params, Target: "projection"}

	default:
		return nil, &crserr.IllegalProperty{Key: "auto.code", Value: fmt.Sprintf("%d", p.ProjectionCode)}
	}
}
