package transform

import "github.com/go-crs/crs/crsmodel"

// CoordinateOperation is the SPEC_FULL.md §3 tagged union: every variant
// carries its source/target CRS and an addressable MathTransform.
type CoordinateOperation interface {
	SourceCRS() crsmodel.CRS
	TargetCRS() crsmodel.CRS
	MathTransform() MathTransform
	Name() string
}

type opBase struct {
	name          string
	source, target crsmodel.CRS
	mt            MathTransform
}

func (o opBase) SourceCRS() crsmodel.CRS   { return o.source }
func (o opBase) TargetCRS() crsmodel.CRS   { return o.target }
func (o opBase) MathTransform() MathTransform { return o.mt }
func (o opBase) Name() string               { return o.name }

// IdentityOp is the no-op operation between metadata-equal CRSs with
// compatible axes (beyond a pure axis change).
type IdentityOp struct{ opBase }

// NewIdentityOp builds an IdentityOp.
func NewIdentityOp(source, target crsmodel.CRS, mt MathTransform) IdentityOp {
	return IdentityOp{opBase{name: "Identity", source: source, target: target, mt: mt}}
}

// ConversionOp is a lossless operation between CRSs sharing a datum (axis
// change, unit change, map projection, or their inverse).
type ConversionOp struct{ opBase }

// NewConversionOp builds a ConversionOp.
func NewConversionOp(name string, source, target crsmodel.CRS, mt MathTransform) ConversionOp {
	return ConversionOp{opBase{name: name, source: source, target: target, mt: mt}}
}

// TransformationOp is a datum-shift operation; it carries an approximate
// positional accuracy in metres (0 when unknown).
type TransformationOp struct {
	opBase
	AccuracyMetres float64
}

// NewTransformationOp builds a TransformationOp.
func NewTransformationOp(name string, source, target crsmodel.CRS, mt MathTransform, accuracyMetres float64) TransformationOp {
	return TransformationOp{opBase: opBase{name: name, source: source, target: target, mt: mt}, AccuracyMetres: accuracyMetres}
}

// ConcatenatedOp is an ordered list of coordinate operations, composed end
// to end; its MathTransform is their composition, simplified per
// transform.NewConcatenated.
type ConcatenatedOp struct {
	opBase
	Steps []CoordinateOperation
}

// NewConcatenatedOp composes steps into a single operation. If the merged
// math-transform chain collapses to the identity but any step is a
// TransformationOp, the concatenation's classification is preserved as a
// TransformationOp rather than demoted to ConversionOp/IdentityOp -- per
// SPEC_FULL.md §4.I's concatenation-simplification rule.
func NewConcatenatedOp(name string, steps ...CoordinateOperation) (CoordinateOperation, error) {
	if len(steps) == 0 {
		return nil, errNoSteps
	}
	mts := make([]MathTransform, len(steps))
	hasTransformation := false
	for i, s := range steps {
		mts[i] = s.MathTransform()
		if _, ok := s.(TransformationOp); ok {
			hasTransformation = true
		}
		if cop, ok := s.(*ConcatenatedOp); ok {
			for _, inner := range cop.Steps {
				if _, ok := inner.(TransformationOp); ok {
					hasTransformation = true
				}
			}
		}
	}
	merged, err := NewConcatenated(mts...)
	if err != nil {
		return nil, err
	}
	source := steps[0].SourceCRS()
	target := steps[len(steps)-1].TargetCRS()
	if len(steps) == 1 {
		return steps[0], nil
	}
	if hasTransformation {
		return TransformationOp{opBase: opBase{name: name, source: source, target: target, mt: merged}}, nil
	}
	return &ConcatenatedOp{opBase: opBase{name: name, source: source, target: target, mt: merged}, Steps: steps}, nil
}

var errNoSteps = &emptyStepsErr{}

type emptyStepsErr struct{}

func (e *emptyStepsErr) Error() string { return "concatenated operation requires at least one step" }

// PassThroughOp applies Inner to a contiguous slice of dimensions.
type PassThroughOp struct {
	opBase
	FirstAffected int
	Inner         CoordinateOperation
}

// NewPassThroughOp builds a PassThroughOp.
func NewPassThroughOp(source, target crsmodel.CRS, firstAffected, totalDim int, inner CoordinateOperation) (*PassThroughOp, error) {
	pt, err := NewPassThrough(firstAffected, totalDim, inner.MathTransform())
	if err != nil {
		return nil, err
	}
	return &PassThroughOp{
		opBase:        opBase{name: "PassThrough[" + inner.Name() + "]", source: source, target: target, mt: pt},
		FirstAffected: firstAffected,
		Inner:         inner,
	}, nil
}
