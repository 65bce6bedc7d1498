// Package grid defines the environment map type and its sentinel errors
// for the grid subpackage of github.com/katalvlaran/histloc.
package grid

// Map is an immutable H×W array of cell labels. Cells are stored in
// row-major order: the label of (row, col) lives at row*Width + col.
// Height and width are fixed for the lifetime of the map.
type Map[L comparable] struct {
	height, width int
	cells         []L
}

// Cell pairs a grid coordinate with its label.
type Cell[L comparable] struct {
	Row, Col int // coordinates within the grid
	Label    L   // label stored at (Row, Col)
}
