package opfinder

import (
	"github.com/go-crs/crs/axis"
	"github.com/go-crs/crs/crsmodel"
	"github.com/go-crs/crs/matrix"
	"github.com/go-crs/crs/transform"
)

// directionCategory groups an axis direction into an opposing-sign pair
// (East/West, North/South, Up/Down, Future/Past) so two axes can be matched
// regardless of which member of the pair either CS happens to use; Column
// and Row are folded into the East/North groups per axis.NormalizationMatrix's
// own convention. Direction Other (geocentric X/Y/Z, engineering axes) has
// no group and is matched positionally instead.
func directionCategory(d axis.Direction) (group int, sign float64) {
	switch d {
	case axis.East, axis.Column:
		return 0, 1
	case axis.West:
		return 0, -1
	case axis.North, axis.Row:
		return 1, 1
	case axis.South:
		return 1, -1
	case axis.Up:
		return 2, 1
	case axis.Down:
		return 2, -1
	case axis.Future:
		return 3, 1
	case axis.Past:
		return 3, -1
	default:
		return -1, 1
	}
}

// buildAxisChangeMatrix derives the affine mapping source's native axis
// order/units onto target's, matching axes by direction category (so a
// lat/lon CS and a lon/lat CS of the same kind produce a pure permutation,
// per SPEC_FULL.md §8 scenario 1) and by unit ratio (so a degree/radian or
// foot/metre difference becomes a scale). Unlike axis.NormalizationMatrix
// (which assumes equal dimension, both CSs already reduced to the internal
// convention), this additionally handles a dimension change: a target axis
// with no source counterpart defaults to 0 (e.g. injecting an ellipsoidal
// height when going 2D -> 3D); a source axis with no target counterpart is
// simply dropped (3D -> 2D).
func buildAxisChangeMatrix(source, target axis.CoordinateSystem) (*matrix.Affine, error) {
	sn, tn := source.Dimension(), target.Dimension()
	rows := make([][]float64, tn+1)
	for j := range rows {
		rows[j] = make([]float64, sn+1)
	}
	rows[tn][sn] = 1

	used := make([]bool, sn)
	for j, ta := range target.Axes {
		group, tsign := directionCategory(ta.Direction)
		matched := -1
		if group >= 0 {
			for i, sa := range source.Axes {
				if used[i] {
					continue
				}
				sg, _ := directionCategory(sa.Direction)
				if sg == group {
					matched = i
					break
				}
			}
		} else if j < sn && !used[j] {
			matched = j
		}
		if matched < 0 {
			continue
		}
		used[matched] = true

		_, ssign := directionCategory(source.Axes[matched].Direction)
		srcToSI := source.Axes[matched].Unit.ToSIFactor
		tgtToSI := ta.Unit.ToSIFactor
		if srcToSI == 0 {
			srcToSI = 1
		}
		if tgtToSI == 0 {
			tgtToSI = 1
		}
		rows[j][matched] = tsign * ssign * srcToSI / tgtToSI
	}
	return matrix.NewFromRows(rows)
}

// axisChangeOperation builds the rule-1 operation between two metadata-equal
// CRSs: a pure axis-change affine, classified Identity when it reduces to
// the dimension-preserving identity matrix, Conversion otherwise.
func (f *Finder) axisChangeOperation(source, target crsmodel.CRS) (transform.CoordinateOperation, error) {
	m, err := buildAxisChangeMatrix(source.CoordinateSystem(), target.CoordinateSystem())
	if err != nil {
		return nil, err
	}
	mt := transform.FromAffine(m)
	if m.IsIdentity(1e-12) {
		return transform.NewIdentityOp(source, target, mt), nil
	}
	return transform.NewConversionOp("Axis changes", source, target, mt), nil
}
