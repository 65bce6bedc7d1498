package grid

// Index maps (row, col) to a row-major offset: row*width + col.
// Complexity: O(1).
func Index(row, col, width int) int {
	return row*width + col
}

// Coordinate converts a row-major offset back to (row, col).
// Complexity: O(1).
func Coordinate(idx, width int) (row, col int) {
	return idx / width, idx % width
}

// Wrap returns i modulo n in the range [0, n) for any sign of i.
// n must be positive.
//
//	Wrap(-1, 5) == 4
//	Wrap(7, 5)  == 2
func Wrap(i, n int) int {
	r := i % n
	if r < 0 {
		r += n
	}

	return r
}
