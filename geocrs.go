// Package crs is the root façade SPEC_FULL.md §1.F calls for: resolve an
// authority code to a CRS, find the operation between two CRSs, and walk a
// flat point array through it. It wires registry.Registry (code resolution)
// to opfinder.Finder (operation construction) the way
// ed4b11da_oahumap-proj__Convert.go wires its own registry and conversion
// builder behind a two-function Convert/Inverse façade -- generalised here
// into ForCode/FindOperation/TransformPoints so callers never touch the
// registry or finder types directly for the common path.
package crs

import (
	"github.com/go-crs/crs/crsmodel"
	"github.com/go-crs/crs/opfinder"
	"github.com/go-crs/crs/registry"
	"github.com/go-crs/crs/transform"
)

// DefaultRegistry is shared by the package-level convenience functions.
// Construct a registry.Registry directly for an isolated instance.
var DefaultRegistry = registry.New()

// ForCode resolves an authority code (any grammar registry.ParseCode or
// registry.ParseComposite accepts: AUTHORITY:CODE, a URN, a slash URL, or a
// composite urn:ogc:def:crs,crs,...) to a concrete CRS.
func ForCode(code string) (crsmodel.CRS, error) {
	return DefaultRegistry.CRS(code)
}

// FindOperation builds the coordinate operation from source to target using
// a fresh opfinder.Finder, per SPEC_FULL.md §4.I's single-use-planner
// contract.
func FindOperation(source, target crsmodel.CRS) (transform.CoordinateOperation, error) {
	return opfinder.New().CreateOperation(source, target)
}

// TransformPoints resolves sourceCode and targetCode, finds the operation
// between them, and walks the flat point array through it in place of a
// caller needing the full source/target CRS objects.
func TransformPoints(sourceCode, targetCode string, src []float64, srcOff int, dst []float64, dstOff int, count int) error {
	source, err := ForCode(sourceCode)
	if err != nil {
		return err
	}
	target, err := ForCode(targetCode)
	if err != nil {
		return err
	}
	op, err := FindOperation(source, target)
	if err != nil {
		return err
	}
	return op.MathTransform().TransformPoints(src, srcOff, dst, dstOff, count)
}
