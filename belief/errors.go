// SPDX-License-Identifier: MIT
// Package belief: sentinel error set.
// Constructors and accessors return these sentinels (possibly wrapped with
// fmt.Errorf("ctx: %w", ErrX)); callers match them with errors.Is.

package belief

import "errors"

var (
	// ErrBadShape is returned when requested dimensions are non-positive or
	// the backing slice length does not equal rows*cols.
	ErrBadShape = errors.New("belief: invalid shape")

	// ErrNonRectangular indicates nested rows of differing lengths.
	ErrNonRectangular = errors.New("belief: all rows must have the same length")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("belief: index out of range")

	// ErrNaNInf signals a NaN or ±Inf cell value.
	ErrNaNInf = errors.New("belief: NaN or Inf encountered")

	// ErrNegative signals a cell holding negative probability mass.
	ErrNegative = errors.New("belief: negative probability")
)
