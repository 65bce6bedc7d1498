// Package grid holds the immutable environment map of a histogram filter:
// a rectangular H×W array of cell labels stored in flat row-major order.
//
// What:
//
//   - Map[L] wraps a rectangular [][]L grid; L is any comparable label
//     type (a two-letter color palette, an enum, a string token...).
//   - Index / Coordinate convert between (row, col) and row-major offsets.
//   - Wrap implements the toroidal topology used by motion updates: moving
//     past an edge re-enters from the opposite edge.
//
// Why:
//
//   - Sensor updates compare a measurement against every cell label.
//   - Motion updates need a modulo that stays non-negative for negative
//     displacements (Go's % truncates toward zero).
//
// Complexity:
//
//   - From2D:     O(W×H) time and memory (deep copy).
//   - At / Label: O(1).
//   - Labels:     O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrOutOfRange: (row, col) outside the map.
package grid
