package filter

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/histloc/belief"
	"github.com/katalvlaran/histloc/grid"
)

// Sense applies the measurement update for observation z with hit
// probability sensorRight and returns a new, renormalized belief.
//
// Each cell is scaled by sensorRight when world's label equals z and by
// 1-sensorRight otherwise; the grid is then divided by its total mass.
// A total at or below the minimum mass (see WithMinMass) or a non-finite
// total yields ErrInvalidDistribution instead of NaN cells.
//
// Errors: ErrNilBelief, ErrNilMap, ErrDimensionMismatch,
// ErrInvalidParameter, ErrInvalidDistribution, ErrOptionViolation.
// Complexity: O(H·W) time and memory.
func Sense[L comparable](b *belief.Belief, world *grid.Map[L], z L, sensorRight float64, opts ...Option) (*belief.Belief, error) {
	o, err := gatherOptions(opts...)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, ErrNilBelief
	}
	if world == nil {
		return nil, ErrNilMap
	}
	if b.Height() != world.Height() || b.Width() != world.Width() {
		return nil, fmt.Errorf("belief %dx%d, map %dx%d: %w",
			b.Height(), b.Width(), world.Height(), world.Width(), ErrDimensionMismatch)
	}
	if err = checkProbability("sensor_right", sensorRight); err != nil {
		return nil, err
	}

	return sense(b, world, z, sensorRight, o.minMass)
}

// sense is the validated kernel shared by Sense and Localizer.
func sense[L comparable](b *belief.Belief, world *grid.Map[L], z L, sensorRight, minMass float64) (*belief.Belief, error) {
	hit, miss := sensorRight, 1-sensorRight
	out := make([]float64, b.Len())
	for i := range out {
		wgt := miss
		if world.Label(i) == z {
			wgt = hit
		}
		out[i] = b.Value(i) * wgt
	}

	s := floats.Sum(out)
	// !(s > minMass) also rejects NaN.
	if !(s > minMass) || math.IsInf(s, 0) {
		return nil, fmt.Errorf("normalizer %g: %w", s, ErrInvalidDistribution)
	}
	for i := range out {
		out[i] /= s
	}

	return belief.FromFlat(b.Height(), b.Width(), out)
}
