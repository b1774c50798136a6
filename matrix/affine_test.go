package matrix

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentityMultiplyIsNoop(t *testing.T) {
	m := NewIdentity(3)
	out, err := m.Multiply([]float64{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3}, out)
	assert.True(t, m.IsIdentity(1e-12))
}

func TestAxisChangesSwapAndScale(t *testing.T) {
	m, err := NewAxisChanges([]int{1, 0}, []float64{1, 2})
	require.NoError(t, err)
	out, err := m.Multiply([]float64{3, 5})
	require.NoError(t, err)
	assert.Equal(t, []float64{5, 6}, out)
}

func TestConcatComposesRightToLeft(t *testing.T) {
	scale, err := NewAxisChanges([]int{0, 1}, []float64{2, 2})
	require.NoError(t, err)
	swap, err := NewAxisChanges([]int{1, 0}, []float64{1, 1})
	require.NoError(t, err)

	composed, err := Concat(swap, scale)
	require.NoError(t, err)
	out, err := composed.Multiply([]float64{3, 5})
	require.NoError(t, err)
	// scale first: (6,10), then swap: (10,6)
	assert.Equal(t, []float64{10, 6}, out)
}

func TestInvertRoundTrips(t *testing.T) {
	m, err := NewFromRows([][]float64{
		{2, 0, 10},
		{0, 4, -5},
		{0, 0, 1},
	})
	require.NoError(t, err)
	inv, err := m.Invert()
	require.NoError(t, err)

	point := []float64{3, 7}
	out, err := m.Multiply(point)
	require.NoError(t, err)
	back, err := inv.Multiply(out)
	require.NoError(t, err)
	assert.InDeltaSlice(t, point, back, 1e-9)
}

func TestInvertSingularFails(t *testing.T) {
	m, err := NewFromRows([][]float64{
		{1, 1, 0},
		{1, 1, 0},
		{0, 0, 1},
	})
	require.NoError(t, err)
	_, err = m.Invert()
	assert.Error(t, err)
}

func TestTranslateAfterFoldsIntoConcat(t *testing.T) {
	m := NewIdentity(2)
	shifted, err := m.TranslateAfter([]float64{100, -50})
	require.NoError(t, err)
	out, err := shifted.Multiply([]float64{1, 1})
	require.NoError(t, err)
	assert.Equal(t, []float64{101, -49}, out)
}

func TestTranslateBeforeShiftsInput(t *testing.T) {
	m := NewIdentity(2)
	shifted, err := m.TranslateBefore([]float64{10, 10})
	require.NoError(t, err)
	out, err := shifted.Multiply([]float64{1, 1})
	require.NoError(t, err)
	assert.Equal(t, []float64{11, 11}, out)
}

func TestMismatchedDimensionsRejected(t *testing.T) {
	m := NewIdentity(3)
	_, err := m.Multiply([]float64{1, 2})
	assert.Error(t, err)
}
