// File: grid/grid_test.go
package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/histloc/grid"
)

// TestFrom2D_InvalidRects ensures From2D rejects empty and jagged inputs.
func TestFrom2D_InvalidRects(t *testing.T) {
	_, err := grid.From2D[string](nil)
	require.ErrorIs(t, err, grid.ErrEmptyGrid)

	_, err = grid.From2D([][]string{{}})
	require.ErrorIs(t, err, grid.ErrEmptyGrid)

	_, err = grid.From2D([][]string{{"R", "G"}, {"R"}})
	require.ErrorIs(t, err, grid.ErrNonRectangular)
}

// TestFrom2D_DeepCopy verifies that mutating the source rows after
// construction does not change the map.
func TestFrom2D_DeepCopy(t *testing.T) {
	rows := [][]string{
		{"R", "G"},
		{"G", "R"},
	}
	m, err := grid.From2D(rows)
	require.NoError(t, err)

	rows[0][0] = "X"

	got, err := m.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, "R", got)
	assert.Equal(t, [][]string{{"R", "G"}, {"G", "R"}}, m.Rows())
}

// TestMap_Accessors checks dimensions, bounds and row-major layout.
func TestMap_Accessors(t *testing.T) {
	m, err := grid.From2D([][]int{
		{1, 2, 3},
		{4, 5, 6},
	})
	require.NoError(t, err)

	assert.Equal(t, 2, m.Height())
	assert.Equal(t, 3, m.Width())
	assert.Equal(t, 6, m.Len())

	v, err := m.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 6, v)
	assert.Equal(t, 6, m.Label(grid.Index(1, 2, m.Width())))

	_, err = m.At(2, 0)
	assert.ErrorIs(t, err, grid.ErrOutOfRange)
	_, err = m.At(0, -1)
	assert.ErrorIs(t, err, grid.ErrOutOfRange)

	assert.True(t, m.InBounds(0, 0))
	assert.False(t, m.InBounds(-1, 0))
}

// TestMap_LabelsAndCount covers the label inventory helpers.
func TestMap_LabelsAndCount(t *testing.T) {
	m, err := grid.From2D([][]string{
		{"R", "G", "G"},
		{"B", "R", "G"},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"R", "G", "B"}, m.Labels())
	assert.Equal(t, 3, m.Count("G"))
	assert.Equal(t, 0, m.Count("Y"))

	cells := m.Cells("R")
	require.Len(t, cells, 2)
	assert.Equal(t, grid.Cell[string]{Row: 0, Col: 0, Label: "R"}, cells[0])
	assert.Equal(t, grid.Cell[string]{Row: 1, Col: 1, Label: "R"}, cells[1])
}

// TestIndexCoordinate_RoundTrip walks every offset of a 4×5 grid.
func TestIndexCoordinate_RoundTrip(t *testing.T) {
	const h, w = 4, 5
	for idx := 0; idx < h*w; idx++ {
		r, c := grid.Coordinate(idx, w)
		require.Equal(t, idx, grid.Index(r, c, w))
	}
}

// TestWrap checks the non-negative modulo used for toroidal motion.
func TestWrap(t *testing.T) {
	cases := []struct {
		i, n, want int
	}{
		{0, 5, 0},
		{4, 5, 4},
		{5, 5, 0},
		{7, 5, 2},
		{-1, 5, 4},
		{-5, 5, 0},
		{-6, 5, 4},
		{-11, 4, 1},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, grid.Wrap(tc.i, tc.n), "Wrap(%d,%d)", tc.i, tc.n)
	}
}
