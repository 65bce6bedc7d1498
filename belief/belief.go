// SPDX-License-Identifier: MIT

package belief

import (
	"fmt"
	"math"
)

// Belief is a discrete probability distribution over the cells of an
// H×W grid. data holds height*width values in row-major order.
type Belief struct {
	height, width int       // grid dimensions, fixed at construction
	data          []float64 // flat backing storage, length == height*width
}

// beliefErrorf wraps an underlying error with Belief method context.
func beliefErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Belief.%s(%d,%d): %w", method, row, col, err)
}

// Uniform creates an h×w Belief with every cell equal to 1/(h·w).
// Stage 1 (Validate): ensure h and w > 0.
// Stage 2 (Prepare): allocate and fill the flat slice.
// Complexity: O(h*w) time and memory.
func Uniform(h, w int) (*Belief, error) {
	if h <= 0 || w <= 0 {
		return nil, fmt.Errorf("Uniform(%d,%d): %w", h, w, ErrBadShape)
	}
	p := 1.0 / float64(h) / float64(w)
	data := make([]float64, h*w)
	for i := range data {
		data[i] = p
	}

	return &Belief{height: h, width: w, data: data}, nil
}

// FromFlat builds an h×w Belief over data, which must be in row-major
// order. The Belief takes ownership of data: the caller must not modify
// the slice afterwards. Values are validated (finite, non-negative) but
// not renormalized.
// Complexity: O(h*w).
func FromFlat(h, w int, data []float64) (*Belief, error) {
	if h <= 0 || w <= 0 || len(data) != h*w {
		return nil, fmt.Errorf("FromFlat(%d,%d) with %d values: %w", h, w, len(data), ErrBadShape)
	}
	if err := validateValues(data, w); err != nil {
		return nil, err
	}

	return &Belief{height: h, width: w, data: data}, nil
}

// FromRows deep-copies a rectangular nested slice into a Belief.
// Returns ErrBadShape on empty input and ErrNonRectangular on jagged rows.
// Complexity: O(h*w).
func FromRows(rows [][]float64) (*Belief, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("FromRows: %w", ErrBadShape)
	}
	h, w := len(rows), len(rows[0])
	data := make([]float64, 0, h*w)
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("FromRows: row %d has %d cells, want %d: %w", y, len(row), w, ErrNonRectangular)
		}
		data = append(data, row...)
	}

	return FromFlat(h, w, data)
}

// validateValues rejects NaN, ±Inf and negative entries, reporting the
// offending cell.
func validateValues(data []float64, w int) error {
	for i, v := range data {
		switch {
		case math.IsNaN(v) || math.IsInf(v, 0):
			return beliefErrorf("validate", i/w, i%w, ErrNaNInf)
		case v < 0:
			return beliefErrorf("validate", i/w, i%w, ErrNegative)
		}
	}

	return nil
}

// Height returns the number of rows.
// Complexity: O(1).
func (b *Belief) Height() int { return b.height }

// Width returns the number of columns.
// Complexity: O(1).
func (b *Belief) Width() int { return b.width }

// Len returns Height()*Width().
func (b *Belief) Len() int { return len(b.data) }

// SameShape reports whether b and other have identical dimensions.
func (b *Belief) SameShape(other *Belief) bool {
	return other != nil && b.height == other.height && b.width == other.width
}

// At retrieves the probability at (row, col) or ErrOutOfRange.
// Complexity: O(1).
func (b *Belief) At(row, col int) (float64, error) {
	if row < 0 || row >= b.height || col < 0 || col >= b.width {
		return 0, beliefErrorf("At", row, col, ErrOutOfRange)
	}

	return b.data[row*b.width+col], nil
}

// Value returns the probability at row-major offset idx.
// Kernels iterating 0..Len()-1 use it instead of At.
func (b *Belief) Value(idx int) float64 {
	return b.data[idx]
}

// Data returns a copy of the row-major backing values.
// Complexity: O(h*w).
func (b *Belief) Data() []float64 {
	out := make([]float64, len(b.data))
	copy(out, b.data)

	return out
}

// Rows returns a deep copy of the belief as a nested slice.
// Complexity: O(h*w).
func (b *Belief) Rows() [][]float64 {
	out := make([][]float64, b.height)
	for y := range out {
		out[y] = make([]float64, b.width)
		copy(out[y], b.data[y*b.width:(y+1)*b.width])
	}

	return out
}
