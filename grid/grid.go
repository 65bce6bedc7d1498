package grid

import "fmt"

// From2D constructs a Map from a non-empty, rectangular 2D slice.
// It deep-copies the input so later changes to rows do not leak in.
// Returns ErrEmptyGrid if rows has no rows or no columns,
// ErrNonRectangular if any row length differs from the first.
// Complexity: O(W×H) time and memory.
func From2D[L comparable](rows [][]L) (*Map[L], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("row %d has %d cells, want %d: %w", y, len(row), w, ErrNonRectangular)
		}
	}
	cells := make([]L, 0, h*w)
	for _, row := range rows {
		cells = append(cells, row...)
	}

	return &Map[L]{height: h, width: w, cells: cells}, nil
}

// Height returns the number of rows.
func (m *Map[L]) Height() int { return m.height }

// Width returns the number of columns.
func (m *Map[L]) Width() int { return m.width }

// Len returns Height()*Width().
func (m *Map[L]) Len() int { return len(m.cells) }

// InBounds reports whether (row, col) lies within the map.
// Complexity: O(1).
func (m *Map[L]) InBounds(row, col int) bool {
	return row >= 0 && row < m.height && col >= 0 && col < m.width
}

// At returns the label at (row, col) or ErrOutOfRange.
// Complexity: O(1).
func (m *Map[L]) At(row, col int) (L, error) {
	if !m.InBounds(row, col) {
		var zero L
		return zero, fmt.Errorf("Map.At(%d,%d): %w", row, col, ErrOutOfRange)
	}

	return m.cells[Index(row, col, m.width)], nil
}

// Label returns the label at row-major offset idx without a bounds check
// beyond the one the runtime performs. Kernels iterating 0..Len()-1 use it.
func (m *Map[L]) Label(idx int) L {
	return m.cells[idx]
}

// Rows returns a deep copy of the map as a nested slice.
// Complexity: O(W×H).
func (m *Map[L]) Rows() [][]L {
	out := make([][]L, m.height)
	for y := range out {
		out[y] = make([]L, m.width)
		copy(out[y], m.cells[y*m.width:(y+1)*m.width])
	}

	return out
}

// Labels returns the distinct labels present in the map, in first-seen
// row-major order.
// Complexity: O(W×H) time, O(k) memory for k distinct labels.
func (m *Map[L]) Labels() []L {
	seen := make(map[L]struct{})
	var out []L
	for _, l := range m.cells {
		if _, ok := seen[l]; ok {
			continue
		}
		seen[l] = struct{}{}
		out = append(out, l)
	}

	return out
}

// Count returns how many cells carry the given label.
func (m *Map[L]) Count(label L) int {
	n := 0
	for _, l := range m.cells {
		if l == label {
			n++
		}
	}

	return n
}

// Cells returns every cell matching label, in row-major order.
func (m *Map[L]) Cells(label L) []Cell[L] {
	var out []Cell[L]
	for i, l := range m.cells {
		if l != label {
			continue
		}
		r, c := Coordinate(i, m.width)
		out = append(out, Cell[L]{Row: r, Col: c, Label: l})
	}

	return out
}
