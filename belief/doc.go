// Package belief provides the probability grid a histogram filter
// carries from step to step.
//
// A Belief is an H×W array of non-negative float64 values stored in a
// flat, row-major slice. After every filter update the values sum to 1
// (within floating-point tolerance). Beliefs are values: nothing in this
// module mutates one after construction, and every update produces a new
// Belief backed by a fresh buffer, so a Belief can be shared freely
// between goroutines.
//
// The package provides:
//
//   - Uniform, FromRows and FromFlat constructors with shape and
//     numeric validation (no NaN, no ±Inf, no negative mass).
//   - Read accessors (At, Value, Rows, Data) that never expose the
//     backing storage.
//   - Summary numerics backed by gonum: Sum, MaxCell, Entropy and an
//     export to *mat.Dense for further linear algebra.
//   - Fixed-precision text rendering (Format, String).
package belief
