// Package crsmodel implements the CRS tagged union of SPEC_FULL.md §3/§4.D:
// Geodetic, Projected, Vertical, Temporal, Engineering, Compound and
// Derived coordinate reference systems, plus the parameter-value-group type
// that backs projected/derived defining conversions.
//
// New relative to paulcager-osgridref, which has no CRS abstraction (it
// hard-codes a lat/lon/height LatLon struct tied to one datum at a time);
// grounded in
// shape on oahumap-proj's core/support package split (CRS-adjacent
// metadata objects kept separate from the operation-level code) and on the
// general Geodetic/Projected vocabulary all the pack's geodesy examples
// share.
package crsmodel

import (
	"fmt"

	"github.com/go-crs/crs/axis"
	"github.com/go-crs/crs/crserr"
	"github.com/go-crs/crs/ellipsoid"
)

// CRS is the capability every CRS variant implements.
type CRS interface {
	CRSName() string
	CoordinateSystem() axis.CoordinateSystem
	Dimension() int
}

// HasBaseCRS is implemented only by CRS kinds that carry a base CRS and a
// defining conversion: ProjectedCRS and DerivedCRS. Kept as a capability
// trait rather than folded into the CRS hierarchy, per the design note in
// SPEC_FULL.md §9.
type HasBaseCRS interface {
	BaseCRS() CRS
	DefiningConversion() Conversion
}

// ParameterValue is one named, unit-tagged value within a
// ParameterValueGroup.
type ParameterValue struct {
	Name  string
	Value float64
	Unit  axis.Unit
}

// ParameterValueGroup is an ordered set of named parameter values
// describing a projection's defining values (central meridian, scale
// factor, false easting/northing, standard parallels, etc). The by-name
// index is built once at construction and is intended for WKT-style import,
// not for the hot forward/inverse path (SPEC_FULL.md §9).
type ParameterValueGroup struct {
	Values []ParameterValue
	byName map[string]int
}

// NewParameterValueGroup builds a group and its by-name index.
func NewParameterValueGroup(values ...ParameterValue) ParameterValueGroup {
	byName := make(map[string]int, len(values))
	for i, v := range values {
		byName[v.Name] = i
	}
	return ParameterValueGroup{Values: values, byName: byName}
}

// Get looks up a parameter by name.
func (g ParameterValueGroup) Get(name string) (ParameterValue, bool) {
	i, ok := g.byName[name]
	if !ok {
		return ParameterValue{}, false
	}
	return g.Values[i], true
}

// GetOr looks up a parameter by name, returning def if absent.
func (g ParameterValueGroup) GetOr(name string, def float64) float64 {
	if v, ok := g.Get(name); ok {
		return v.Value
	}
	return def
}

// Conversion names the projection method and carries its parameter values;
// it describes a defining conversion but is not itself evaluable (that is
// the job of the transform package, which builds a MathTransform from a
// Conversion's Method and Parameters).
type Conversion struct {
	Method     string
	Parameters ParameterValueGroup
}

// GeodeticCRS is a Geographic (ellipsoidal CS) or Geocentric
// (Cartesian/Spherical CS) CRS tied to a geodetic datum.
type GeodeticCRS struct {
	Name  string
	Datum ellipsoid.GeodeticDatum
	CS    axis.CoordinateSystem
}

func (c GeodeticCRS) CRSName() string                    { return c.Name }
func (c GeodeticCRS) CoordinateSystem() axis.CoordinateSystem { return c.CS }
func (c GeodeticCRS) Dimension() int                      { return c.CS.Dimension() }

// ProjectedCRS is a projected (2D Cartesian CS) CRS, defined by projecting a
// base geographic CRS with Conversion.
type ProjectedCRS struct {
	Name       string
	Base       GeodeticCRS
	Conversion Conversion
	CS         axis.CoordinateSystem
}

func (c ProjectedCRS) CRSName() string                    { return c.Name }
func (c ProjectedCRS) CoordinateSystem() axis.CoordinateSystem { return c.CS }
func (c ProjectedCRS) Dimension() int                      { return c.CS.Dimension() }
func (c ProjectedCRS) BaseCRS() CRS                        { return c.Base }
func (c ProjectedCRS) DefiningConversion() Conversion      { return c.Conversion }

// DatumKind distinguishes the single-CRS variants that are not geodetic.
type DatumKind int

const (
	VerticalDatumKind DatumKind = iota
	TemporalDatumKind
	EngineeringDatumKind
)

// VerticalDatum identifies a vertical reference surface (e.g. mean sea
// level) by name.
type VerticalDatum struct {
	Name string
}

// VerticalCRS is a 1D vertical CRS (height or depth).
type VerticalCRS struct {
	Name  string
	Datum VerticalDatum
	CS    axis.CoordinateSystem
}

func (c VerticalCRS) CRSName() string                    { return c.Name }
func (c VerticalCRS) CoordinateSystem() axis.CoordinateSystem { return c.CS }
func (c VerticalCRS) Dimension() int                      { return c.CS.Dimension() }

// TemporalDatum anchors a temporal CRS's origin epoch, expressed as a
// Julian day number so epoch differences reduce to subtraction.
type TemporalDatum struct {
	Name          string
	OriginJulian  float64
}

// TemporalCRS is a 1D temporal CRS.
type TemporalCRS struct {
	Name  string
	Datum TemporalDatum
	CS    axis.CoordinateSystem
}

func (c TemporalCRS) CRSName() string                    { return c.Name }
func (c TemporalCRS) CoordinateSystem() axis.CoordinateSystem { return c.CS }
func (c TemporalCRS) Dimension() int                      { return c.CS.Dimension() }

// EngineeringDatum identifies a local, non-geodetic origin (e.g. a site
// datum) by name.
type EngineeringDatum struct {
	Name string
}

// EngineeringCRS is a local CRS tied to an engineering datum.
type EngineeringCRS struct {
	Name  string
	Datum EngineeringDatum
	CS    axis.CoordinateSystem
}

func (c EngineeringCRS) CRSName() string                    { return c.Name }
func (c EngineeringCRS) CoordinateSystem() axis.CoordinateSystem { return c.CS }
func (c EngineeringCRS) Dimension() int                      { return c.CS.Dimension() }

// DerivedCRS is a general base CRS plus a defining Conversion, for CRS
// kinds not covered by ProjectedCRS (e.g. a derived engineering CRS).
type DerivedCRS struct {
	Name       string
	Base       CRS
	Conversion Conversion
	CS         axis.CoordinateSystem
}

func (c DerivedCRS) CRSName() string                    { return c.Name }
func (c DerivedCRS) CoordinateSystem() axis.CoordinateSystem { return c.CS }
func (c DerivedCRS) Dimension() int                      { return c.CS.Dimension() }
func (c DerivedCRS) BaseCRS() CRS                        { return c.Base }
func (c DerivedCRS) DefiningConversion() Conversion      { return c.Conversion }

// CompoundCRS is an ordered list of single CRSs; its dimension is the sum
// of its components'. Construction always flattens any compound-of-compound
// so the operation finder can assume at most one level of nesting
// (SPEC_FULL.md §9).
type CompoundCRS struct {
	Name       string
	Components []CRS
}

// NewCompoundCRS builds a CompoundCRS, flattening any nested CompoundCRS
// components and rejecting a CRS that would contain itself transitively.
func NewCompoundCRS(name string, components ...CRS) (CompoundCRS, error) {
	flat := make([]CRS, 0, len(components))
	for _, c := range components {
		if err := flattenInto(&flat, c, 0); err != nil {
			return CompoundCRS{}, err
		}
	}
	return CompoundCRS{Name: name, Components: flat}, nil
}

func flattenInto(flat *[]CRS, c CRS, depth int) error {
	if depth > 8 {
		return &crserr.IllegalProperty{Key: "compound", Value: "self-referential nesting"}
	}
	if cc, ok := c.(CompoundCRS); ok {
		for _, sub := range cc.Components {
			if err := flattenInto(flat, sub, depth+1); err != nil {
				return err
			}
		}
		return nil
	}
	*flat = append(*flat, c)
	return nil
}

func (c CompoundCRS) CRSName() string { return c.Name }

// CoordinateSystem concatenates the component axes in order; callers that
// need the per-component boundaries should use Components directly.
func (c CompoundCRS) CoordinateSystem() axis.CoordinateSystem {
	var axes []axis.Axis
	for _, comp := range c.Components {
		axes = append(axes, comp.CoordinateSystem().Axes...)
	}
	return axis.CoordinateSystem{Axes: axes}
}

func (c CompoundCRS) Dimension() int {
	n := 0
	for _, comp := range c.Components {
		n += comp.Dimension()
	}
	return n
}

// MetadataEqual reports whether two CRSs describe the same coordinate
// space for the purposes of operation-finder rule 1 (SPEC_FULL.md §4.I):
// same Go type, same name, same dimension. This is intentionally coarser
// than full ISO 19111 equality (out of scope per spec.md §1).
func MetadataEqual(a, b CRS) bool {
	if fmt.Sprintf("%T", a) != fmt.Sprintf("%T", b) {
		return false
	}
	return a.CRSName() == b.CRSName() && a.Dimension() == b.Dimension()
}
