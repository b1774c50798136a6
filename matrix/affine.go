// Package matrix provides the dense, small (<=5x5) row-major matrices the
// operation finder uses to represent affine coordinate changes: axis swap,
// scale, translation, and the concatenation of elementary steps.
//
// Grounded on gonum.org/v1/gonum/mat (retrieved from gonum-gonum, whose
// blas.go is the BLAS/matrix domain this package exercises) for storage and
// inversion; the Affine wrapper itself, and the AXIS_CHANGES / IDENTITY
// naming, follow SPEC_FULL.md §4.E.
package matrix

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"

	"github.com/go-crs/crs/crserr"
)

// Kind tags the elementary, named primitives the operation finder's
// concatenation-simplification pass recognises.
type Kind int

const (
	// KindGeneral is any affine matrix without a distinguished role.
	KindGeneral Kind = iota
	// KindIdentity is the n x n identity.
	KindIdentity
	// KindAxisChanges is a square matrix that only reorders and/or scales
	// dimensions (no translation), produced by axis normalization.
	KindAxisChanges
)

// Affine is an (n+1) x (m+1) homogeneous-coordinate matrix: the last row is
// always [0 ... 0 1], so point transformation is `dst = M * [src; 1]`.
type Affine struct {
	dense *mat.Dense
	kind  Kind
}

// NewIdentity returns the (n+1)x(n+1) identity affine, the neutral element
// of concatenation.
func NewIdentity(n int) *Affine {
	d := mat.NewDense(n+1, n+1, nil)
	for i := 0; i <= n; i++ {
		d.Set(i, i, 1)
	}
	return &Affine{dense: d, kind: KindIdentity}
}

// NewFromRows builds an Affine from an explicit row-major list of rows,
// each of length cols. Rows must include the trailing homogeneous row.
func NewFromRows(rows [][]float64) (*Affine, error) {
	if len(rows) == 0 {
		return nil, errors.New("matrix: no rows")
	}
	r := len(rows)
	c := len(rows[0])
	flat := make([]float64, 0, r*c)
	for _, row := range rows {
		if len(row) != c {
			return nil, &crserr.MismatchedDimensions{Expected: c, Actual: len(row)}
		}
		flat = append(flat, row...)
	}
	return &Affine{dense: mat.NewDense(r, c, flat), kind: KindGeneral}, nil
}

// NewAxisChanges builds a square Affine representing a pure axis
// reorder+scale (no translation): row i of the output is
// `scales[i] * src[perm[i]]`. perm and scales must have equal length n; the
// resulting matrix is (n+1)x(n+1) in homogeneous form.
func NewAxisChanges(perm []int, scales []float64) (*Affine, error) {
	n := len(perm)
	if len(scales) != n {
		return nil, &crserr.MismatchedDimensions{Expected: n, Actual: len(scales)}
	}
	d := mat.NewDense(n+1, n+1, nil)
	for i := 0; i < n; i++ {
		d.Set(i, perm[i], scales[i])
	}
	d.Set(n, n, 1)
	return &Affine{dense: d, kind: KindAxisChanges}, nil
}

// Rows returns the number of output rows, including the homogeneous row.
func (a *Affine) Rows() int { r, _ := a.dense.Dims(); return r }

// Cols returns the number of input columns, including the homogeneous
// column.
func (a *Affine) Cols() int { _, c := a.dense.Dims(); return c }

// InputDimension is Cols()-1, the number of real (non-homogeneous)
// coordinates consumed.
func (a *Affine) InputDimension() int { return a.Cols() - 1 }

// OutputDimension is Rows()-1, the number of real coordinates produced.
func (a *Affine) OutputDimension() int { return a.Rows() - 1 }

// Kind reports the matrix's recognised role, if any.
func (a *Affine) Kind() Kind { return a.kind }

// At returns the element at (row, col).
func (a *Affine) At(row, col int) float64 { return a.dense.At(row, col) }

// Set assigns the element at (row, col); invalidates the recognised Kind.
func (a *Affine) Set(row, col int, v float64) {
	a.dense.Set(row, col, v)
	a.kind = KindGeneral
}

// Clone returns a deep copy.
func (a *Affine) Clone() *Affine {
	d := mat.NewDense(0, 0, nil)
	d.CloneFrom(a.dense)
	return &Affine{dense: d, kind: a.kind}
}

// Multiply applies the matrix to a homogeneous point (length
// InputDimension(), the trailing 1 implicit) and returns the real part of
// the result (length OutputDimension()).
func (a *Affine) Multiply(point []float64) ([]float64, error) {
	n := a.InputDimension()
	if len(point) != n {
		return nil, &crserr.MismatchedDimensions{Expected: n, Actual: len(point)}
	}
	homog := mat.NewVecDense(n+1, nil)
	for i := 0; i < n; i++ {
		homog.SetVec(i, point[i])
	}
	homog.SetVec(n, 1)
	var out mat.VecDense
	out.MulVec(a.dense, homog)
	m := a.OutputDimension()
	res := make([]float64, m)
	for i := 0; i < m; i++ {
		res[i] = out.AtVec(i)
	}
	return res, nil
}

// Concat returns a*b (apply b first, then a) as a new Affine, the
// composition order the operation finder uses when merging adjacent
// elementary steps.
func Concat(a, b *Affine) (*Affine, error) {
	if a.Cols() != b.Rows() {
		return nil, &crserr.MismatchedDimensions{Expected: a.Cols(), Actual: b.Rows()}
	}
	var out mat.Dense
	out.Mul(a.dense, b.dense)
	kind := KindGeneral
	if a.kind == KindIdentity {
		kind = b.kind
	} else if b.kind == KindIdentity {
		kind = a.kind
	}
	return &Affine{dense: &out, kind: kind}, nil
}

// Invert returns the matrix inverse, or crserr.NonInvertibleMatrix if the
// matrix is singular.
func (a *Affine) Invert() (*Affine, error) {
	r, c := a.dense.Dims()
	if r != c {
		return nil, &crserr.NonInvertibleMatrix{Reason: "not square"}
	}
	var inv mat.Dense
	if err := inv.Inverse(a.dense); err != nil {
		return nil, &crserr.NonInvertibleMatrix{Reason: err.Error()}
	}
	kind := KindGeneral
	if a.kind == KindIdentity {
		kind = KindIdentity
	} else if a.kind == KindAxisChanges {
		kind = KindAxisChanges
	}
	return &Affine{dense: &inv, kind: kind}, nil
}

// IsIdentity reports whether the matrix equals the identity within tol,
// componentwise.
func (a *Affine) IsIdentity(tol float64) bool {
	r, c := a.dense.Dims()
	if r != c {
		return false
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			want := 0.0
			if i == j {
				want = 1.0
			}
			if math.Abs(a.dense.At(i, j)-want) > tol {
				return false
			}
		}
	}
	return true
}

// TranslateBefore returns a new matrix equal to a applied after translating
// the input by offset (pre-translation), used by a projection's
// normalization matrix to fold in a central-meridian/false-origin shift.
func (a *Affine) TranslateBefore(offset []float64) (*Affine, error) {
	n := a.InputDimension()
	if len(offset) != n {
		return nil, &crserr.MismatchedDimensions{Expected: n, Actual: len(offset)}
	}
	t, err := translation(n, offset)
	if err != nil {
		return nil, err
	}
	return Concat(a, t)
}

// TranslateAfter returns a new matrix equal to a with the output translated
// by offset (post-translation), used to fold false easting/northing into a
// projection's denormalization matrix.
func (a *Affine) TranslateAfter(offset []float64) (*Affine, error) {
	m := a.OutputDimension()
	if len(offset) != m {
		return nil, &crserr.MismatchedDimensions{Expected: m, Actual: len(offset)}
	}
	t, err := translation(m, offset)
	if err != nil {
		return nil, err
	}
	return Concat(t, a)
}

func translation(n int, offset []float64) (*Affine, error) {
	id := NewIdentity(n)
	for i := 0; i < n; i++ {
		id.dense.Set(i, n, offset[i])
	}
	id.kind = KindGeneral
	return id, nil
}
