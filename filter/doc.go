// Package filter implements a discrete Bayesian histogram filter (grid
// Markov localization) over a toroidal H×W world.
//
// What:
//
//   - Move:     motion (prediction) update. Each cell mixes "the commanded
//     motion failed and the robot stayed" with "the motion succeeded and
//     the robot arrived from the inverse-displaced source cell".
//   - Sense:    measurement (correction) update. Each cell is weighted by
//     sensorRight on a label match and 1-sensorRight otherwise, then the
//     whole grid is renormalized.
//   - Localize: starts from a uniform belief and alternates Move → Sense
//     once per timestep.
//
// Topology:
//
//	Row and column arithmetic wraps around (torus). A robot moving right
//	from the last column re-enters at column 0. There are no clipped
//	boundaries.
//
// Update rules for cell (r, c) on an H×W grid:
//
//	Move:  B′[r][c] = (1-pMove)·B[r][c] + pMove·B[(r-dy) mod H][(c-dx) mod W]
//	Sense: B′[r][c] = B[r][c]·w(r,c) / Σ B·w,  w = sensorRight on hit, 1-sensorRight on miss
//
// Complexity:
//
//	Move, Sense: O(H·W) time, one fresh H·W buffer per call.
//	Localize:    O(N·H·W) for N timesteps.
//
// Errors:
//
//   - ErrArityMismatch:       measurements and motions differ in length.
//   - ErrInvalidParameter:    sensorRight or pMove outside [0,1].
//   - ErrInvalidDistribution: Sense normalizer is zero, tiny or non-finite.
//   - ErrDimensionMismatch:   belief and map (or prior) shapes differ.
//   - ErrNilBelief, ErrNilMap: nil inputs.
//   - ErrOptionViolation:     an Option was given a nonsensical value.
//
// Failures inside Localize / Localizer.Run come wrapped in *StepError,
// which names the timestep and phase; errors.Is still matches the
// sentinel. A failed run never returns a partial belief.
//
// Concurrency:
//
//	Every update reads the prior belief and writes a new buffer; nothing
//	is modified in place. A Localizer holds only immutable configuration,
//	so independent runs may execute in parallel.
package filter
