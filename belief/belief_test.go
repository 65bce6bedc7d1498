// Package belief_test contains unit tests for the Belief type.
package belief_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/histloc/belief"
)

// TestUniform checks that every cell receives 1/(h·w) and mass sums to 1.
func TestUniform(t *testing.T) {
	b, err := belief.Uniform(4, 5)
	require.NoError(t, err)

	require.Equal(t, 4, b.Height())
	require.Equal(t, 5, b.Width())
	require.Equal(t, 20, b.Len())
	for i := 0; i < b.Len(); i++ {
		require.Equal(t, 0.05, b.Value(i))
	}
	assert.InDelta(t, 1.0, b.Sum(), 1e-12)
	assert.True(t, b.IsNormalized(1e-9))
}

// TestUniformInvalidDimensions ensures Uniform rejects non-positive dimensions.
func TestUniformInvalidDimensions(t *testing.T) {
	_, err := belief.Uniform(0, 5)
	require.ErrorIs(t, err, belief.ErrBadShape)

	_, err = belief.Uniform(3, -1)
	require.ErrorIs(t, err, belief.ErrBadShape)
}

// TestFromFlatValidation covers the shape and numeric guards.
func TestFromFlatValidation(t *testing.T) {
	_, err := belief.FromFlat(2, 2, []float64{0.25, 0.25, 0.5})
	require.ErrorIs(t, err, belief.ErrBadShape)

	_, err = belief.FromFlat(1, 2, []float64{math.NaN(), 1})
	require.ErrorIs(t, err, belief.ErrNaNInf)

	_, err = belief.FromFlat(1, 2, []float64{math.Inf(1), 0})
	require.ErrorIs(t, err, belief.ErrNaNInf)

	_, err = belief.FromFlat(1, 2, []float64{-0.1, 1.1})
	require.ErrorIs(t, err, belief.ErrNegative)

	b, err := belief.FromFlat(1, 2, []float64{0.3, 0.7})
	require.NoError(t, err)
	assert.InDelta(t, 1.0, b.Sum(), 1e-15)
}

// TestFromRows covers jagged and empty inputs and verifies the deep copy.
func TestFromRows(t *testing.T) {
	_, err := belief.FromRows(nil)
	require.ErrorIs(t, err, belief.ErrBadShape)

	_, err = belief.FromRows([][]float64{{0.5, 0.5}, {0}})
	require.ErrorIs(t, err, belief.ErrNonRectangular)

	rows := [][]float64{{0.1, 0.2}, {0.3, 0.4}}
	b, err := belief.FromRows(rows)
	require.NoError(t, err)
	rows[0][0] = 9

	v, err := b.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 0.1, v)

	if diff := cmp.Diff([][]float64{{0.1, 0.2}, {0.3, 0.4}}, b.Rows()); diff != "" {
		t.Errorf("Rows() mismatch (-want +got):\n%s", diff)
	}
}

// TestAtOutOfRange ensures At returns ErrOutOfRange on invalid access.
func TestAtOutOfRange(t *testing.T) {
	b, err := belief.Uniform(2, 2)
	require.NoError(t, err)

	_, err = b.At(-1, 0)
	require.ErrorIs(t, err, belief.ErrOutOfRange)
	_, err = b.At(0, 2)
	require.ErrorIs(t, err, belief.ErrOutOfRange)
}

// TestDataIsCopy ensures Data and Rows never expose the backing store.
func TestDataIsCopy(t *testing.T) {
	b, err := belief.FromFlat(1, 2, []float64{0.25, 0.75})
	require.NoError(t, err)

	d := b.Data()
	d[0] = 1
	rows := b.Rows()
	rows[0][1] = 1

	require.Equal(t, 0.25, b.Value(0))
	require.Equal(t, 0.75, b.Value(1))
}

// TestMaxCellAndEntropy checks the summary numerics.
func TestMaxCellAndEntropy(t *testing.T) {
	b, err := belief.FromRows([][]float64{
		{0.1, 0.2, 0.1},
		{0.05, 0.5, 0.05},
	})
	require.NoError(t, err)

	r, c, p := b.MaxCell()
	assert.Equal(t, 1, r)
	assert.Equal(t, 1, c)
	assert.Equal(t, 0.5, p)

	u, err := belief.Uniform(4, 5)
	require.NoError(t, err)
	assert.InDelta(t, math.Log(20), u.Entropy(), 1e-12)

	point, err := belief.FromFlat(1, 3, []float64{0, 1, 0})
	require.NoError(t, err)
	assert.Equal(t, 0.0, point.Entropy())
}

// TestDenseExport verifies the gonum export is an independent copy.
func TestDenseExport(t *testing.T) {
	b, err := belief.FromRows([][]float64{{0.1, 0.2}, {0.3, 0.4}})
	require.NoError(t, err)

	d := b.Dense()
	r, c := d.Dims()
	require.Equal(t, 2, r)
	require.Equal(t, 2, c)
	require.Equal(t, 0.3, d.At(1, 0))

	d.Set(1, 0, 0)
	v, _ := b.At(1, 0)
	require.Equal(t, 0.3, v)
}

// TestEqualityHelpers covers Equal, ApproxEqual and MaxAbsDiff.
func TestEqualityHelpers(t *testing.T) {
	a, _ := belief.FromFlat(2, 2, []float64{0.1, 0.2, 0.3, 0.4})
	b, _ := belief.FromFlat(2, 2, []float64{0.1, 0.2, 0.3005, 0.4})
	c, _ := belief.FromFlat(1, 4, []float64{0.1, 0.2, 0.3, 0.4})

	assert.True(t, a.Equal(a))
	assert.False(t, a.Equal(b))
	assert.False(t, a.Equal(c), "shape must match")
	assert.False(t, a.Equal(nil))

	assert.True(t, a.ApproxEqual(b, 1e-3))
	assert.False(t, a.ApproxEqual(b, 1e-4))
	assert.False(t, a.ApproxEqual(c, 1))

	diff, r, col, err := a.MaxAbsDiff(b)
	require.NoError(t, err)
	assert.InDelta(t, 5e-4, diff, 1e-12)
	assert.Equal(t, 1, r)
	assert.Equal(t, 0, col)

	_, _, _, err = a.MaxAbsDiff(c)
	assert.ErrorIs(t, err, belief.ErrBadShape)

	opt := cmpopts.EquateApprox(0, 1e-3)
	assert.True(t, cmp.Equal(a.Rows(), b.Rows(), opt))
}

// TestFormat checks the fixed-precision layout.
func TestFormat(t *testing.T) {
	b, err := belief.FromRows([][]float64{
		{0.011054, 0.5},
		{0.25, 0.238946},
	})
	require.NoError(t, err)

	assert.Equal(t, "[[0.01105,0.50000],\n [0.25000,0.23895]]", b.String())
	assert.Equal(t, "[[0.01,0.50],\n [0.25,0.24]]", b.Format(2))
	assert.Equal(t, b.String(), b.Format(-1))
}
