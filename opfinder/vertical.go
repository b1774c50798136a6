package opfinder

import (
	"github.com/go-crs/crs/crserr"
	"github.com/go-crs/crs/crsmodel"
	"github.com/go-crs/crs/transform"
)

// verticalToVertical implements SPEC_FULL.md §4.I's Vertical -> Vertical
// rule: an axis+unit change if the datums are equivalent, otherwise not
// found. VerticalDatum carries only a name (no numeric parameters to
// compare within tolerance, unlike GeodeticDatum), so equivalence here is
// name equality.
func (f *Finder) verticalToVertical(source, target crsmodel.VerticalCRS) (transform.CoordinateOperation, error) {
	if source.Datum.Name != target.Datum.Name {
		return nil, &crserr.OperationNotFound{
			Source: source.CRSName(), Target: target.CRSName(),
			Reason: "vertical datums are not equivalent",
		}
	}
	m, err := buildAxisChangeMatrix(source.CS, target.CS)
	if err != nil {
		return nil, err
	}
	return transform.NewConversionOp("Axis changes", source, target, transform.FromAffine(m)), nil
}
