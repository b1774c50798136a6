// Package interp1d implements the 1D piecewise-linear transform used as a
// building block for irregularly spaced axes (vertical CRS sample grids,
// time-series axes with unevenly spaced epochs).
//
// Grounded on the constant-increment optimisation and strictly-decreasing
// reflection described in SPEC_FULL.md §4.J; it realises transform.MathTransform
// directly, the way proj's projections realise it via proj.NewMathTransform,
// so the operation finder can treat an interpolator like any other
// elementary step.
package interp1d

import (
	"math"
	"sort"

	"github.com/go-crs/crs/crserr"
	"github.com/go-crs/crs/matrix"
	"github.com/go-crs/crs/transform"
)

// relTol is the relative tolerance constant-increment detection uses when
// comparing consecutive differences of v.
const relTol = 1e-9

// New builds a 1D MathTransform from values v (length >= 2), representing
// y = f(x) at integer x = 0..len(v)-1, linearly interpolated between
// breakpoints and extrapolated past the ends with the first/last
// segment's slope. If preimage is non-nil (same length as v, strictly
// monotonic), the transform realises preimage⁻¹ ∘ values.
//
// When v has a constant increment within relTol and no preimage is given,
// New returns the equivalent affine transform instead of a piecewise one.
func New(v []float64, preimage []float64) (transform.MathTransform, error) {
	if len(v) < 2 {
		return nil, &crserr.IllegalProperty{Key: "v", Value: "length < 2"}
	}
	if preimage != nil && len(preimage) != len(v) {
		return nil, &crserr.MismatchedDimensions{Expected: len(v), Actual: len(preimage)}
	}

	values := make([]float64, len(v))
	copy(values, v)
	reversed := isStrictlyDecreasing(values)
	if reversed {
		for i := range values {
			values[i] = -values[i]
		}
	}

	if preimage == nil {
		if inc, ok := constantIncrement(values); ok {
			sign := 1.0
			if reversed {
				sign = -1.0
			}
			rows := [][]float64{
				{sign * inc, sign * values[0]},
				{0, 1},
			}
			m, err := matrix.NewFromRows(rows)
			if err != nil {
				return nil, err
			}
			return transform.FromAffine(m), nil
		}
	}

	var pre []float64
	if preimage != nil {
		pre = make([]float64, len(preimage))
		copy(pre, preimage)
	}

	p := &piecewise{v: values, preimage: pre, reversed: reversed}
	return transform.NewFunc(1, 1, p.forward, p.inverse, nil), nil
}

type piecewise struct {
	v        []float64
	preimage []float64
	reversed bool
}

func isStrictlyDecreasing(v []float64) bool {
	for i := 1; i < len(v); i++ {
		if v[i] >= v[i-1] {
			return false
		}
	}
	return true
}

func isStrictlyIncreasing(v []float64) bool {
	for i := 1; i < len(v); i++ {
		if v[i] <= v[i-1] {
			return false
		}
	}
	return true
}

// constantIncrement reports whether v's consecutive differences agree
// within relTol, and if so returns that common increment.
func constantIncrement(v []float64) (increment float64, ok bool) {
	first := v[1] - v[0]
	for i := 2; i < len(v); i++ {
		d := v[i] - v[i-1]
		scale := math.Max(math.Abs(first), math.Abs(d))
		if scale == 0 {
			continue
		}
		if math.Abs(d-first)/scale > relTol {
			return 0, false
		}
	}
	return first, true
}

func (p *piecewise) segmentCount() int { return len(p.v) - 1 }

func (p *piecewise) forward(in []float64) ([]float64, error) {
	x := in[0]
	seg := int(math.Floor(x))
	if seg < 0 {
		seg = 0
	} else if seg > p.segmentCount()-1 {
		seg = p.segmentCount() - 1
	}
	v0, v1 := p.v[seg], p.v[seg+1]
	y := v0 + (x-float64(seg))*(v1-v0)
	if p.reversed {
		y = -y
	}
	if p.preimage == nil {
		return []float64{y}, nil
	}
	py, err := interpolateMonotonic(p.preimage, y)
	if err != nil {
		return nil, err
	}
	return []float64{py}, nil
}

// inverse is only reachable when v (after any reflection) is strictly
// increasing; it locates the bracketing segment via binary search over v,
// then solves the linear equation for x, per SPEC_FULL.md §4.J.
func (p *piecewise) inverse(in []float64) ([]float64, error) {
	if p.preimage != nil {
		return nil, &crserr.NonInvertibleOperation{What: "interp1d: preimage composition has no declared inverse"}
	}
	if !isStrictlyIncreasing(p.v) {
		return nil, &crserr.NonInvertibleOperation{What: "interp1d: v is not strictly increasing"}
	}
	y := in[0]
	if p.reversed {
		y = -y
	}
	x, err := interpolateMonotonic(p.v, y)
	if err != nil {
		return nil, err
	}
	return []float64{x}, nil
}

// interpolateMonotonic recovers x from a strictly monotonic sample table
// (table[k] = y at integer x = k) and a target y, via binary search to
// locate the bracketing segment followed by linear interpolation.
func interpolateMonotonic(table []float64, y float64) (float64, error) {
	increasing := table[len(table)-1] >= table[0]
	idx := sort.Search(len(table), func(k int) bool {
		if increasing {
			return table[k] >= y
		}
		return table[k] <= y
	})
	if idx <= 0 {
		idx = 1
	} else if idx >= len(table) {
		idx = len(table) - 1
	}
	x0, x1 := float64(idx-1), float64(idx)
	y0, y1 := table[idx-1], table[idx]
	if y1 == y0 {
		return x0, nil
	}
	return x0 + (y-y0)*(x1-x0)/(y1-y0), nil
}
