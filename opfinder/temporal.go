package opfinder

import (
	"github.com/go-crs/crs/crsmodel"
	"github.com/go-crs/crs/transform"
)

// temporalToTemporal implements SPEC_FULL.md §4.I's Temporal -> Temporal
// rule: compute the epoch shift (source origin minus target origin, in
// target units) and combine it with the axis+unit change matrix, so a
// single affine both re-bases the epoch and rescales the unit (e.g. Julian
// days to Unix seconds).
func (f *Finder) temporalToTemporal(source, target crsmodel.TemporalCRS) (transform.CoordinateOperation, error) {
	m, err := buildAxisChangeMatrix(source.CS, target.CS)
	if err != nil {
		return nil, err
	}

	targetUnit := target.CS.Axes[0].Unit.ToSIFactor
	if targetUnit == 0 {
		targetUnit = 1
	}
	epochShiftDays := source.Datum.OriginJulian - target.Datum.OriginJulian
	epochShiftTargetUnits := epochShiftDays * secondsPerDay / targetUnit

	shifted, err := m.TranslateAfter([]float64{epochShiftTargetUnits})
	if err != nil {
		return nil, err
	}
	return transform.NewConversionOp("Epoch shift", source, target, transform.FromAffine(shifted)), nil
}

const secondsPerDay = 86400.0
