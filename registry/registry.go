package registry

import (
	"strings"
	"sync"

	"github.com/go-crs/crs/crserr"
	"github.com/go-crs/crs/crsmodel"
	"github.com/go-crs/crs/ellipsoid"
)

// Registry is a strongly typed, code-keyed store: lookup yields a concrete
// CRS, datum or ellipsoid. Entries are created lazily at first use and
// shared afterwards (SPEC_FULL.md §5); a Registry is safe for concurrent
// use once constructed.
type Registry struct {
	once       sync.Once
	ellipsoids map[string]ellipsoid.Ellipsoid
	datums     map[string]ellipsoid.GeodeticDatum
	crsTable   map[string]crsmodel.CRS
}

// New builds an empty Registry; its fallback table is populated lazily on
// first lookup.
func New() *Registry {
	return &Registry{}
}

func (r *Registry) ensure() {
	r.once.Do(r.populate)
}

// Ellipsoid resolves a well-known ellipsoid by name (e.g. "WGS84", "GRS80",
// "Authalic"), case-sensitive to match the fallback table's own keys.
func (r *Registry) Ellipsoid(name string) (ellipsoid.Ellipsoid, error) {
	r.ensure()
	if e, ok := r.ellipsoids[name]; ok {
		return e, nil
	}
	return ellipsoid.Ellipsoid{}, &crserr.AuthorityCodeUnknown{Authority: "ELLIPSOID", Code: name}
}

// Datum resolves a well-known geodetic datum by name (e.g. "WGS84", "OSGB36").
func (r *Registry) Datum(name string) (ellipsoid.GeodeticDatum, error) {
	r.ensure()
	if d, ok := r.datums[name]; ok {
		return d, nil
	}
	return ellipsoid.GeodeticDatum{}, &crserr.AuthorityCodeUnknown{Authority: "DATUM", Code: name}
}

// CRS resolves an authority code string, in any of the forms ParseCode or
// ParseComposite accept, to a concrete CRS.
func (r *Registry) CRS(code string) (crsmodel.CRS, error) {
	r.ensure()

	if IsComposite(code) {
		codes, err := ParseComposite(code)
		if err != nil {
			return nil, err
		}
		components := make([]crsmodel.CRS, 0, len(codes))
		for _, c := range codes {
			comp, err := r.crsByCode(c)
			if err != nil {
				return nil, err
			}
			components = append(components, comp)
		}
		return crsmodel.NewCompoundCRS("composite", components...)
	}

	c, err := ParseCode(code)
	if err != nil {
		return nil, err
	}
	return r.crsByCode(c)
}

func (r *Registry) crsByCode(c Code) (crsmodel.CRS, error) {
	switch strings.ToUpper(c.Authority) {
	case "AUTO", "AUTO1", "AUTO2":
		return r.buildAuto(c.Code)
	default:
		key := strings.ToUpper(c.Authority) + ":" + c.Code
		if crs, ok := r.crsTable[key]; ok {
			return crs, nil
		}
		return nil, &crserr.AuthorityCodeUnknown{Authority: c.Authority, Code: c.Code}
	}
}
