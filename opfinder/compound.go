package opfinder

import (
	"github.com/go-crs/crs/crsmodel"
	"github.com/go-crs/crs/transform"
)

// flattenComponents returns c's component CRSs if c is compound, or the
// single-element slice []crsmodel.CRS{c} otherwise -- CompoundCRS itself
// already flattens compound-of-compound at construction (SPEC_FULL.md §3),
// so this never needs to recurse.
func flattenComponents(c crsmodel.CRS) []crsmodel.CRS {
	if cc, ok := c.(crsmodel.CompoundCRS); ok {
		return cc.Components
	}
	return []crsmodel.CRS{c}
}

// compoundOperation implements SPEC_FULL.md §4.I's rule for any pair with a
// Compound on either side. When both sides are compound with the same
// component count, each component pairs with its same-index counterpart and
// recurses, with the result wrapped in a pass-through at the matching
// leading/trailing dimension offset. Otherwise (a Compound paired with a
// non-compound CRS whose axes already align component-for-component, e.g.
// SPEC_FULL.md §8 scenario 3's CompoundCRS(4326+5714) -> EPSG:4979) it falls
// back to matching axes by direction/unit across the whole flattened
// coordinate system -- exact whenever, as in that scenario, every component
// is already expressed in convertible axis kinds, but it cannot re-project a
// component that differs in CRS kind (e.g. a Projected component needing
// inversion) from its counterpart; that case is out of scope here (no
// information distinguishes "component boundary" from "axis" once one side
// has been reduced to a flat CS) and is noted in DESIGN.md.
func (f *Finder) compoundOperation(source, target crsmodel.CRS) (transform.CoordinateOperation, error) {
	sourceComps := flattenComponents(source)
	targetComps := flattenComponents(target)

	if len(sourceComps) == len(targetComps) && len(sourceComps) > 1 {
		return f.compoundComponentwise(source, sourceComps, target, targetComps)
	}

	m, err := buildAxisChangeMatrix(source.CoordinateSystem(), target.CoordinateSystem())
	if err != nil {
		return nil, err
	}
	return transform.NewConversionOp("Compound axis changes", source, target, transform.FromAffine(m)), nil
}

func (f *Finder) compoundComponentwise(source crsmodel.CRS, sourceComps []crsmodel.CRS, target crsmodel.CRS, targetComps []crsmodel.CRS) (transform.CoordinateOperation, error) {
	ops := make([]transform.CoordinateOperation, len(sourceComps))
	offset := 0
	totalDim := target.Dimension()
	for i := range sourceComps {
		op, err := f.CreateOperation(sourceComps[i], targetComps[i])
		if err != nil {
			return nil, err
		}
		pt, err := transform.NewPassThroughOp(source, target, offset, totalDim, op)
		if err != nil {
			return nil, err
		}
		ops[i] = pt
		offset += sourceComps[i].Dimension()
	}
	return transform.NewConcatenatedOp("Compound decomposition", ops...)
}
