package opfinder

import (
	"github.com/go-crs/crs/crsmodel"
	"github.com/go-crs/crs/transform"
)

// derivedToDerived implements SPEC_FULL.md §4.I's Derived -> Derived rule:
// invert source's defining conversion to reach source's base, recurse
// between the two base CRSs, then apply target's defining conversion;
// concatenate the three steps.
func (f *Finder) derivedToDerived(source crsmodel.CRS, sourceHB crsmodel.HasBaseCRS, target crsmodel.CRS, targetHB crsmodel.HasBaseCRS) (transform.CoordinateOperation, error) {
	sourceConvMT, err := conversionMathTransform(source, sourceHB)
	if err != nil {
		return nil, err
	}
	sourceConvInv, err := sourceConvMT.Inverse()
	if err != nil {
		return nil, err
	}
	toBase := transform.NewConversionOp("Inverse "+source.CRSName()+" conversion", source, sourceHB.BaseCRS(), sourceConvInv)

	middle, err := f.CreateOperation(sourceHB.BaseCRS(), targetHB.BaseCRS())
	if err != nil {
		return nil, err
	}

	targetConvMT, err := conversionMathTransform(target, targetHB)
	if err != nil {
		return nil, err
	}
	fromBase := transform.NewConversionOp(target.CRSName()+" conversion", targetHB.BaseCRS(), target, targetConvMT)

	return transform.NewConcatenatedOp(source.CRSName()+" -> "+target.CRSName(), toBase, middle, fromBase)
}

// derivedToSingle implements Derived -> Single: invert source's defining
// conversion to reach its base, then recurse from there to target.
func (f *Finder) derivedToSingle(source crsmodel.CRS, sourceHB crsmodel.HasBaseCRS, target crsmodel.CRS) (transform.CoordinateOperation, error) {
	sourceConvMT, err := conversionMathTransform(source, sourceHB)
	if err != nil {
		return nil, err
	}
	sourceConvInv, err := sourceConvMT.Inverse()
	if err != nil {
		return nil, err
	}
	toBase := transform.NewConversionOp("Inverse "+source.CRSName()+" conversion", source, sourceHB.BaseCRS(), sourceConvInv)

	rest, err := f.CreateOperation(sourceHB.BaseCRS(), target)
	if err != nil {
		return nil, err
	}
	return transform.NewConcatenatedOp(source.CRSName()+" -> "+target.CRSName(), toBase, rest)
}

// singleToDerived implements Single -> Derived: recurse from source to
// target's base, then apply target's defining conversion.
func (f *Finder) singleToDerived(source, target crsmodel.CRS, targetHB crsmodel.HasBaseCRS) (transform.CoordinateOperation, error) {
	first, err := f.CreateOperation(source, targetHB.BaseCRS())
	if err != nil {
		return nil, err
	}

	targetConvMT, err := conversionMathTransform(target, targetHB)
	if err != nil {
		return nil, err
	}
	fromBase := transform.NewConversionOp(target.CRSName()+" conversion", targetHB.BaseCRS(), target, targetConvMT)

	return transform.NewConcatenatedOp(source.CRSName()+" -> "+target.CRSName(), first, fromBase)
}
