// SPDX-License-Identifier: MIT

package belief

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Sum returns the total probability mass.
// Complexity: O(h*w).
func (b *Belief) Sum() float64 {
	return floats.Sum(b.data)
}

// IsNormalized reports whether the total mass is within tol of 1.
func (b *Belief) IsNormalized(tol float64) bool {
	return math.Abs(b.Sum()-1) <= tol
}

// MaxCell returns the most likely cell and its probability.
// Ties resolve to the first cell in row-major order.
// Complexity: O(h*w).
func (b *Belief) MaxCell() (row, col int, p float64) {
	idx := floats.MaxIdx(b.data)
	return idx / b.width, idx % b.width, b.data[idx]
}

// Entropy returns the Shannon entropy of the belief in nats.
// A uniform h×w belief has entropy ln(h·w); a point mass has 0.
// Complexity: O(h*w).
func (b *Belief) Entropy() float64 {
	return stat.Entropy(b.data)
}

// Dense exports the belief as a gonum *mat.Dense backed by a copy of the
// data, for callers that continue with linear algebra.
// Complexity: O(h*w).
func (b *Belief) Dense() *mat.Dense {
	return mat.NewDense(b.height, b.width, b.Data())
}

// Equal reports whether b and other have the same shape and bit-identical
// values.
func (b *Belief) Equal(other *Belief) bool {
	return b.SameShape(other) && floats.Equal(b.data, other.data)
}

// ApproxEqual reports whether b and other have the same shape and every
// pair of cells differs by at most tol.
func (b *Belief) ApproxEqual(other *Belief, tol float64) bool {
	if !b.SameShape(other) {
		return false
	}

	return floats.Distance(b.data, other.data, math.Inf(1)) <= tol
}

// MaxAbsDiff returns the largest absolute cell difference between b and
// other together with the cell where it occurs. The shapes must match.
func (b *Belief) MaxAbsDiff(other *Belief) (diff float64, row, col int, err error) {
	if !b.SameShape(other) {
		return 0, 0, 0, ErrBadShape
	}
	worst := 0
	for i := range b.data {
		d := math.Abs(b.data[i] - other.data[i])
		if d > diff {
			diff, worst = d, i
		}
	}

	return diff, worst / b.width, worst % b.width, nil
}
