package filter

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/histloc/belief"
	"github.com/katalvlaran/histloc/grid"
)

// Localizer holds a validated histogram-filter configuration for one
// environment map. It carries no per-run state, so Run may be called
// concurrently from several goroutines.
type Localizer[L comparable] struct {
	world       *grid.Map[L]
	sensorRight float64
	pMove       float64
	opts        options
}

// NewLocalizer validates the map, both probabilities and the options
// before any computation takes place.
//
// Errors: ErrNilMap, ErrInvalidParameter, ErrOptionViolation,
// ErrDimensionMismatch (prior shape differs from the map),
// ErrInvalidDistribution (prior does not sum to 1 within PriorTolerance).
func NewLocalizer[L comparable](world *grid.Map[L], sensorRight, pMove float64, opts ...Option) (*Localizer[L], error) {
	o, err := gatherOptions(opts...)
	if err != nil {
		return nil, err
	}
	if world == nil {
		return nil, ErrNilMap
	}
	if err = checkProbability("sensor_right", sensorRight); err != nil {
		return nil, err
	}
	if err = checkProbability("p_move", pMove); err != nil {
		return nil, err
	}
	if o.prior != nil && (o.prior.Height() != world.Height() || o.prior.Width() != world.Width()) {
		return nil, fmt.Errorf("prior %dx%d, map %dx%d: %w",
			o.prior.Height(), o.prior.Width(), world.Height(), world.Width(), ErrDimensionMismatch)
	}
	if o.prior != nil && !o.prior.IsNormalized(PriorTolerance) {
		return nil, fmt.Errorf("prior sums to %g: %w", o.prior.Sum(), ErrInvalidDistribution)
	}

	return &Localizer[L]{world: world, sensorRight: sensorRight, pMove: pMove, opts: o}, nil
}

// Initial returns the belief a run starts from: the prior given with
// WithPrior, or the uniform distribution over the map.
func (l *Localizer[L]) Initial() (*belief.Belief, error) {
	if l.opts.prior != nil {
		return l.opts.prior, nil
	}

	return belief.Uniform(l.world.Height(), l.world.Width())
}

// Step performs one timestep: Move by m, then Sense z.
// Errors from either half are returned unwrapped.
func (l *Localizer[L]) Step(b *belief.Belief, m Motion, z L) (*belief.Belief, error) {
	moved, err := l.move(b, m)
	if err != nil {
		return nil, err
	}

	return l.sense(moved, z)
}

// move is Move with the Localizer's shape check.
func (l *Localizer[L]) move(b *belief.Belief, m Motion) (*belief.Belief, error) {
	if b == nil {
		return nil, ErrNilBelief
	}
	if b.Height() != l.world.Height() || b.Width() != l.world.Width() {
		return nil, fmt.Errorf("belief %dx%d, map %dx%d: %w",
			b.Height(), b.Width(), l.world.Height(), l.world.Width(), ErrDimensionMismatch)
	}

	return Move(b, m, l.pMove)
}

// sense runs the kernel with the Localizer's validated parameters.
func (l *Localizer[L]) sense(b *belief.Belief, z L) (*belief.Belief, error) {
	return sense(b, l.world, z, l.sensorRight, l.opts.minMass)
}

// Run drives the initial belief through one Move → Sense pair per
// timestep and returns the final belief.
//
// Stage 1 (Validate): len(measurements) must equal len(motions).
// Stage 2 (Init):     uniform belief, or the configured prior.
// Stage 3 (Loop):     for i in 0..N-1, Move(motions[i]) then Sense(measurements[i]).
// Stage 4 (Finalize): return the last belief.
//
// A failure at step i is returned as *StepError{Step: i, Phase: ...};
// no partial belief is returned. With N == 0 the initial belief is the
// result.
// Complexity: O(N·H·W) time, O(H·W) live memory.
func (l *Localizer[L]) Run(measurements []L, motions []Motion) (*belief.Belief, error) {
	if len(measurements) != len(motions) {
		return nil, fmt.Errorf("%d measurements, %d motions: %w", len(measurements), len(motions), ErrArityMismatch)
	}
	b, err := l.Initial()
	if err != nil {
		return nil, err
	}

	log := l.opts.logger
	for i := range measurements {
		if b, err = l.move(b, motions[i]); err != nil {
			return nil, &StepError{Step: i, Phase: PhaseMove, Err: err}
		}
		if err = l.opts.onStep(i, PhaseMove, b); err != nil {
			return nil, &StepError{Step: i, Phase: PhaseMove, Err: err}
		}

		if b, err = l.sense(b, measurements[i]); err != nil {
			return nil, &StepError{Step: i, Phase: PhaseSense, Err: err}
		}
		if err = l.opts.onStep(i, PhaseSense, b); err != nil {
			return nil, &StepError{Step: i, Phase: PhaseSense, Err: err}
		}

		if ce := log.Check(zap.DebugLevel, "filter step"); ce != nil {
			r, c, p := b.MaxCell()
			ce.Write(
				zap.Int("step", i),
				zap.Stringer("motion", motions[i]),
				zap.Any("measurement", measurements[i]),
				zap.Int("best_row", r),
				zap.Int("best_col", c),
				zap.Float64("best_p", p),
				zap.Float64("entropy", b.Entropy()),
			)
		}
	}

	return b, nil
}

// Localize computes the final belief for world after the given sequence
// of motions and measurements, starting from a uniform belief.
//
// Measurements and motions must have equal length (ErrArityMismatch);
// sensorRight and pMove must be in [0,1] (ErrInvalidParameter). Both are
// checked before any computation. See Localizer.Run for the algorithm.
//
// Example:
//
//	world, _ := grid.From2D([][]string{{"R", "G"}, {"G", "R"}})
//	b, err := filter.Localize(world, []string{"G"}, []filter.Motion{filter.Right}, 0.7, 0.8)
func Localize[L comparable](world *grid.Map[L], measurements []L, motions []Motion, sensorRight, pMove float64, opts ...Option) (*belief.Belief, error) {
	l, err := NewLocalizer(world, sensorRight, pMove, opts...)
	if err != nil {
		return nil, err
	}

	return l.Run(measurements, motions)
}
