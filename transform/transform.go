// Package transform implements the evaluable core of SPEC_FULL.md §3/§4.E:
// MathTransform (the n->m function, with optional inverse and Jacobian) and
// CoordinateOperation (Identity, Conversion, Transformation, Concatenated,
// Pass-through), plus the point-array transform contract of §6.
package transform

import (
	"github.com/go-crs/crs/crserr"
	"github.com/go-crs/crs/matrix"
)

// MathTransform is a function on R^n -> R^m, possibly with a closed-form
// inverse and Jacobian.
type MathTransform interface {
	InputDimension() int
	OutputDimension() int
	// Forward transforms one point.
	Forward(src []float64) ([]float64, error)
	// TransformPoints implements the flat-array contract of SPEC_FULL.md
	// §6.F: src/dst are laid out [x0,y0,(z0,)x1,y1,(z1,)...], and src==dst
	// (in whole or in part) must be handled correctly.
	TransformPoints(src []float64, srcOff int, dst []float64, dstOff int, count int) error
	// Inverse returns the inverse transform, or crserr.NonInvertibleOperation.
	Inverse() (MathTransform, error)
	// Jacobian returns the output/input partial derivative matrix at
	// point, or crserr.NonInvertibleOperation{"jacobian"} if unsupported.
	Jacobian(point []float64) (*matrix.Affine, error)
}

// copyPoints implements the overlap-safe point-array walk every leaf
// transform delegates to: it walks forward when output dimension <= input
// dimension and the destination run starts no later than the source run (so
// writes never outrun unread input), and via an internal scratch buffer
// otherwise, as SPEC_FULL.md §6.F describes.
func copyPoints(n, m, count int, src []float64, srcOff int, dst []float64, dstOff int, f func(in []float64) ([]float64, error)) error {
	in := make([]float64, n)
	if m <= n && dstOff <= srcOff {
		for i := 0; i < count; i++ {
			so := srcOff + i*n
			do := dstOff + i*m
			copy(in, src[so:so+n])
			out, err := f(in)
			if err != nil {
				return err
			}
			copy(dst[do:do+m], out)
		}
		return nil
	}
	// m > n, or the destination starts after the source: writing in
	// increasing index order could clobber not-yet-read source when
	// src==dst. Buffer the whole run first.
	scratch := make([]float64, count*m)
	for i := 0; i < count; i++ {
		so := srcOff + i*n
		copy(in, src[so:so+n])
		out, err := f(in)
		if err != nil {
			return err
		}
		copy(scratch[i*m:i*m+m], out)
	}
	copy(dst[dstOff:dstOff+count*m], scratch)
	return nil
}

// base implements the MathTransform plumbing (dimension checks,
// TransformPoints) around a pure per-point forward/inverse pair, so each
// leaf transform only has to supply fwd/inv/jac.
type base struct {
	n, m int
	fwd  func(in []float64) ([]float64, error)
	inv  func(in []float64) ([]float64, error)
	jac  func(in []float64) (*matrix.Affine, error)
}

func (b *base) InputDimension() int  { return b.n }
func (b *base) OutputDimension() int { return b.m }

func (b *base) Forward(src []float64) ([]float64, error) {
	if len(src) != b.n {
		return nil, &crserr.MismatchedDimensions{Expected: b.n, Actual: len(src)}
	}
	return b.fwd(src)
}

func (b *base) TransformPoints(src []float64, srcOff int, dst []float64, dstOff int, count int) error {
	return copyPoints(b.n, b.m, count, src, srcOff, dst, dstOff, b.fwd)
}

func (b *base) Inverse() (MathTransform, error) {
	if b.inv == nil {
		return nil, &crserr.NonInvertibleOperation{What: "transform has no declared inverse"}
	}
	return &base{n: b.m, m: b.n, fwd: b.inv, inv: b.fwd, jac: nil}, nil
}

func (b *base) Jacobian(point []float64) (*matrix.Affine, error) {
	if b.jac == nil {
		return nil, &crserr.NonInvertibleOperation{What: "transform has no declared jacobian"}
	}
	return b.jac(point)
}

// NewFunc builds a MathTransform from plain forward/inverse/jacobian
// functions, the common case for map projections and the geodesic package.
func NewFunc(n, m int, fwd, inv func(in []float64) ([]float64, error), jac func(in []float64) (*matrix.Affine, error)) MathTransform {
	return &base{n: n, m: m, fwd: fwd, inv: inv, jac: jac}
}

// Identity is the dimension-n identity MathTransform, the unit of
// composition.
func Identity(n int) MathTransform {
	return NewFunc(n, n,
		func(in []float64) ([]float64, error) { out := make([]float64, n); copy(out, in); return out, nil },
		func(in []float64) ([]float64, error) { out := make([]float64, n); copy(out, in); return out, nil },
		func(in []float64) (*matrix.Affine, error) { return matrix.NewIdentity(n), nil },
	)
}

// FromAffine wraps a matrix.Affine as a MathTransform.
func FromAffine(a *matrix.Affine) MathTransform {
	fwd := func(in []float64) ([]float64, error) { return a.Multiply(in) }
	return &affineTransform{a: a, fwd: fwd}
}

type affineTransform struct {
	a   *matrix.Affine
	fwd func(in []float64) ([]float64, error)
}

func (t *affineTransform) InputDimension() int  { return t.a.InputDimension() }
func (t *affineTransform) OutputDimension() int { return t.a.OutputDimension() }

func (t *affineTransform) Forward(src []float64) ([]float64, error) {
	if len(src) != t.InputDimension() {
		return nil, &crserr.MismatchedDimensions{Expected: t.InputDimension(), Actual: len(src)}
	}
	return t.fwd(src)
}

func (t *affineTransform) TransformPoints(src []float64, srcOff int, dst []float64, dstOff int, count int) error {
	return copyPoints(t.InputDimension(), t.OutputDimension(), count, src, srcOff, dst, dstOff, t.fwd)
}

func (t *affineTransform) Inverse() (MathTransform, error) {
	inv, err := t.a.Invert()
	if err != nil {
		return nil, err
	}
	return FromAffine(inv), nil
}

func (t *affineTransform) Jacobian(point []float64) (*matrix.Affine, error) {
	return t.a, nil
}

// Matrix returns the underlying affine matrix, used by the operation
// finder's concatenation-simplification pass to detect and merge adjacent
// affine steps.
func (t *affineTransform) Matrix() *matrix.Affine { return t.a }

// AsAffine reports whether mt is (or wraps) an affine transform, returning
// its matrix.
func AsAffine(mt MathTransform) (*matrix.Affine, bool) {
	if t, ok := mt.(*affineTransform); ok {
		return t.a, true
	}
	return nil, false
}

// Concatenated composes a list of MathTransforms left to right: point flows
// through steps[0] then steps[1] ... then steps[len-1].
type Concatenated struct {
	Steps []MathTransform
}

// NewConcatenated builds a Concatenated transform, folding adjacent affine
// steps together immediately so the visible chain matches the
// concatenation-simplification rule of SPEC_FULL.md §4.I.
func NewConcatenated(steps ...MathTransform) (MathTransform, error) {
	merged := make([]MathTransform, 0, len(steps))
	for _, s := range steps {
		if len(merged) > 0 {
			if a1, ok1 := AsAffine(merged[len(merged)-1]); ok1 {
				if a2, ok2 := AsAffine(s); ok2 {
					m, err := matrix.Concat(a2, a1)
					if err != nil {
						return nil, err
					}
					merged[len(merged)-1] = FromAffine(m)
					continue
				}
			}
		}
		merged = append(merged, s)
	}
	if len(merged) == 1 {
		return merged[0], nil
	}
	if err := checkChain(merged); err != nil {
		return nil, err
	}
	return &Concatenated{Steps: merged}, nil
}

func checkChain(steps []MathTransform) error {
	for i := 1; i < len(steps); i++ {
		if steps[i-1].OutputDimension() != steps[i].InputDimension() {
			return &crserr.MismatchedDimensions{Expected: steps[i-1].OutputDimension(), Actual: steps[i].InputDimension()}
		}
	}
	return nil
}

func (c *Concatenated) InputDimension() int  { return c.Steps[0].InputDimension() }
func (c *Concatenated) OutputDimension() int { return c.Steps[len(c.Steps)-1].OutputDimension() }

func (c *Concatenated) Forward(src []float64) ([]float64, error) {
	cur := src
	var err error
	for _, s := range c.Steps {
		cur, err = s.Forward(cur)
		if err != nil {
			return nil, err
		}
	}
	return cur, nil
}

func (c *Concatenated) TransformPoints(src []float64, srcOff int, dst []float64, dstOff int, count int) error {
	return copyPoints(c.InputDimension(), c.OutputDimension(), count, src, srcOff, dst, dstOff, c.Forward)
}

func (c *Concatenated) Inverse() (MathTransform, error) {
	inv := make([]MathTransform, len(c.Steps))
	for i, s := range c.Steps {
		is, err := s.Inverse()
		if err != nil {
			return nil, err
		}
		inv[len(c.Steps)-1-i] = is
	}
	return NewConcatenated(inv...)
}

func (c *Concatenated) Jacobian(point []float64) (*matrix.Affine, error) {
	return nil, &crserr.NonInvertibleOperation{What: "jacobian of concatenated transform not supported"}
}

// PassThrough applies an inner transform to a contiguous slice of
// dimensions [FirstAffected, FirstAffected+inner.InputDimension()), leaving
// the rest of each point unchanged.
type PassThrough struct {
	FirstAffected int
	TotalDim      int
	Inner         MathTransform
}

// NewPassThrough builds a PassThrough transform. totalDim is the full input
// dimension; the output dimension is totalDim minus the inner transform's
// input dimension plus its output dimension.
func NewPassThrough(firstAffected, totalDim int, inner MathTransform) (*PassThrough, error) {
	if firstAffected < 0 || firstAffected+inner.InputDimension() > totalDim {
		return nil, &crserr.MismatchedDimensions{Expected: totalDim, Actual: firstAffected + inner.InputDimension()}
	}
	return &PassThrough{FirstAffected: firstAffected, TotalDim: totalDim, Inner: inner}, nil
}

func (p *PassThrough) InputDimension() int { return p.TotalDim - p.Inner.InputDimension() + p.Inner.InputDimension() }
func (p *PassThrough) OutputDimension() int {
	return p.TotalDim - p.Inner.InputDimension() + p.Inner.OutputDimension()
}

func (p *PassThrough) Forward(src []float64) ([]float64, error) {
	if len(src) != p.TotalDim {
		return nil, &crserr.MismatchedDimensions{Expected: p.TotalDim, Actual: len(src)}
	}
	n := p.Inner.InputDimension()
	inner, err := p.Inner.Forward(src[p.FirstAffected : p.FirstAffected+n])
	if err != nil {
		return nil, err
	}
	out := make([]float64, 0, p.OutputDimension())
	out = append(out, src[:p.FirstAffected]...)
	out = append(out, inner...)
	out = append(out, src[p.FirstAffected+n:]...)
	return out, nil
}

func (p *PassThrough) TransformPoints(src []float64, srcOff int, dst []float64, dstOff int, count int) error {
	return copyPoints(p.InputDimension(), p.OutputDimension(), count, src, srcOff, dst, dstOff, p.Forward)
}

func (p *PassThrough) Inverse() (MathTransform, error) {
	inv, err := p.Inner.Inverse()
	if err != nil {
		return nil, err
	}
	return NewPassThrough(p.FirstAffected, p.TotalDim-p.Inner.InputDimension()+p.Inner.OutputDimension(), inv)
}

func (p *PassThrough) Jacobian(point []float64) (*matrix.Affine, error) {
	return nil, &crserr.NonInvertibleOperation{What: "jacobian of pass-through transform not supported"}
}
