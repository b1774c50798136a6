// Package axis models coordinate system axes and their classification, and
// derives the normalization affine matrices the operation finder and the
// map-projection package rely on.
//
// New relative to paulcager-osgridref, which hard-codes a fixed
// lat/lon/height ordering; grounded in shape on tzneal-coordconv's
// explicit easting/northing vs. latitude/longitude framing and on
// oahumap-proj's core package, generalised into an explicit axis list per
// SPEC_FULL.md §4.C.
package axis

import "github.com/go-crs/crs/matrix"

// Direction is the sense in which an axis's coordinate increases.
type Direction int

const (
	East Direction = iota
	West
	North
	South
	Up
	Down
	Future
	Past
	DisplayRight
	DisplayDown
	Column
	Row
	Other
)

// RangeMeaning distinguishes an axis whose range is an exact bound from one
// that wraps around (e.g. longitude at +-180).
type RangeMeaning int

const (
	Exact RangeMeaning = iota
	Wraparound
)

// Unit is a named unit of measure with its conversion factor to the SI base
// unit for its quantity (radians for angle, metres for length, seconds for
// time).
type Unit struct {
	Name       string
	ToSIFactor float64
}

var (
	Radian = Unit{"radian", 1}
	Degree = Unit{"degree", 0.017453292519943295}
	Metre  = Unit{"metre", 1}
	Second = Unit{"second", 1}
)

// Axis describes one dimension of a coordinate system.
type Axis struct {
	Name         string
	Direction    Direction
	Unit         Unit
	Min, Max     float64
	RangeMeaning RangeMeaning
}

// Kind classifies a CoordinateSystem by its overall shape.
type Kind int

const (
	Ellipsoidal2D Kind = iota
	Ellipsoidal3D
	Cartesian2D
	Cartesian3D
	Spherical
	Vertical1D
	Time1D
	Parametric1D
	OtherKind
)

// CoordinateSystem is an ordered list of axes.
type CoordinateSystem struct {
	Axes []Axis
}

// Dimension returns the number of axes.
func (cs CoordinateSystem) Dimension() int { return len(cs.Axes) }

// Classify returns the CS's Kind, inferred from axis count and direction.
func (cs CoordinateSystem) Classify() Kind {
	n := len(cs.Axes)
	hasDir := func(d Direction) bool {
		for _, a := range cs.Axes {
			if a.Direction == d {
				return true
			}
		}
		return false
	}
	switch {
	case n == 1 && hasDir(Up) || n == 1 && hasDir(Down):
		return Vertical1D
	case n == 1 && hasDir(Future) || n == 1 && hasDir(Past):
		return Time1D
	case n == 1:
		return Parametric1D
	case (n == 2 || n == 3) && hasDir(East) && hasDir(North):
		if n == 2 {
			if cs.Axes[0].Unit == Degree || cs.Axes[1].Unit == Degree {
				return Ellipsoidal2D
			}
			return Cartesian2D
		}
		if cs.Axes[0].Unit == Degree {
			return Ellipsoidal3D
		}
		return Cartesian3D
	case n == 3 && hasDir(Other):
		return Spherical
	default:
		return OtherKind
	}
}

// NewGeographic2D builds the conventional (longitude-East, latitude-North)
// 2D ellipsoidal coordinate system, in degrees.
func NewGeographic2D() CoordinateSystem {
	return CoordinateSystem{Axes: []Axis{
		{Name: "Longitude", Direction: East, Unit: Degree, Min: -180, Max: 180, RangeMeaning: Wraparound},
		{Name: "Latitude", Direction: North, Unit: Degree, Min: -90, Max: 90, RangeMeaning: Exact},
	}}
}

// NewGeographicLatLon2D builds the EPSG convention (latitude-North,
// longitude-East) 2D ellipsoidal coordinate system, in degrees --
// EPSG:4326's native axis order, as opposed to NewGeographic2D's
// OGC CRS:84 (longitude, latitude) order.
func NewGeographicLatLon2D() CoordinateSystem {
	return CoordinateSystem{Axes: []Axis{
		{Name: "Latitude", Direction: North, Unit: Degree, Min: -90, Max: 90, RangeMeaning: Exact},
		{Name: "Longitude", Direction: East, Unit: Degree, Min: -180, Max: 180, RangeMeaning: Wraparound},
	}}
}

// NewGeographic3D adds an ellipsoidal-height axis to NewGeographic2D.
func NewGeographic3D() CoordinateSystem {
	cs := NewGeographic2D()
	cs.Axes = append(cs.Axes, Axis{Name: "Ellipsoidal height", Direction: Up, Unit: Metre})
	return cs
}

// NewCartesian2D builds a conventional (Easting, Northing) projected CS, in
// metres.
func NewCartesian2D() CoordinateSystem {
	return CoordinateSystem{Axes: []Axis{
		{Name: "Easting", Direction: East, Unit: Metre},
		{Name: "Northing", Direction: North, Unit: Metre},
	}}
}

// NewGeocentric3D builds the conventional (X, Y, Z) geocentric Cartesian CS,
// in metres.
func NewGeocentric3D() CoordinateSystem {
	return CoordinateSystem{Axes: []Axis{
		{Name: "Geocentric X", Direction: Other, Unit: Metre},
		{Name: "Geocentric Y", Direction: Other, Unit: Metre},
		{Name: "Geocentric Z", Direction: Other, Unit: Metre},
	}}
}

// NormalizationMatrix derives the affine that reorders and rescales cs's
// axes into the internal convention a map projection (or the operation
// finder's axis-change step) expects: longitude/easting first, in radians
// or metres, then latitude/northing, then any remaining axes in order.
//
// This is the decomposition SPEC_FULL.md §4.F calls mandatory: projections
// operate on normalised coordinates, surrounded by the normalization and
// denormalization matrices this function builds.
func NormalizationMatrix(cs CoordinateSystem) (*matrix.Affine, error) {
	n := cs.Dimension()
	perm := make([]int, n)
	scales := make([]float64, n)

	firstIdx, secondIdx := -1, -1
	for i, a := range cs.Axes {
		switch a.Direction {
		case East, Column:
			firstIdx = i
		case North, Row:
			secondIdx = i
		}
	}
	order := make([]int, 0, n)
	if firstIdx >= 0 {
		order = append(order, firstIdx)
	}
	if secondIdx >= 0 {
		order = append(order, secondIdx)
	}
	for i := range cs.Axes {
		if i != firstIdx && i != secondIdx {
			order = append(order, i)
		}
	}
	for outRow, srcIdx := range order {
		perm[outRow] = srcIdx
		scales[outRow] = cs.Axes[srcIdx].Unit.ToSIFactor
		if scales[outRow] == 0 {
			scales[outRow] = 1
		}
	}
	return matrix.NewAxisChanges(perm, scales)
}
