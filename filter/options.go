// SPDX-License-Identifier: MIT

// Package filter: functional configuration for the histogram filter.
// Invalid values are recorded while options are applied and surfaced as
// ErrOptionViolation by the entry point that consumes them.
package filter

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/histloc/belief"
)

// DefaultMinMass is the smallest normalizer Sense accepts. Anything at or
// below it (including exactly zero) is reported as ErrInvalidDistribution.
const DefaultMinMass = 1e-300

// StepFunc observes the belief produced by each update of a run. Returning
// a non-nil error aborts the run; the error is wrapped in *StepError.
type StepFunc func(step int, phase Phase, b *belief.Belief) error

// Option configures filter behavior via functional arguments.
type Option func(*options)

// options stores the effective configuration after applying Option setters.
type options struct {
	minMass float64        // DefaultMinMass
	logger  *zap.Logger    // zap.NewNop() unless WithLogger
	onStep  StepFunc       // no-op unless WithOnStep
	prior   *belief.Belief // nil means uniform
	err     error          // first violation recorded while applying options
}

// defaultOptions returns the zero-configuration state.
func defaultOptions() options {
	return options{
		minMass: DefaultMinMass,
		logger:  zap.NewNop(),
		onStep:  func(int, Phase, *belief.Belief) error { return nil },
	}
}

// gatherOptions applies opts in order over the defaults and reports the
// first recorded violation.
func gatherOptions(opts ...Option) (options, error) {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.err != nil {
		return o, o.err
	}

	return o, nil
}

// violate records the first option violation.
func (o *options) violate(format string, args ...any) {
	if o.err == nil {
		o.err = fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrOptionViolation)
	}
}

// WithMinMass sets the threshold at or below which a sensor normalizer is
// treated as zero. eps must be finite and non-negative.
func WithMinMass(eps float64) Option {
	return func(o *options) {
		if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
			o.violate("WithMinMass(%g)", eps)
			return
		}
		o.minMass = eps
	}
}

// WithLogger routes per-step debug logs to l. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithOnStep installs a hook called after every Move and Sense of a run.
func WithOnStep(fn StepFunc) Option {
	return func(o *options) {
		if fn != nil {
			o.onStep = fn
		}
	}
}

// PriorTolerance is how far the mass of a WithPrior belief may stray
// from 1.
const PriorTolerance = 1e-9

// WithPrior starts runs from b instead of the uniform belief. The shape
// must match the map and the mass must be 1 within PriorTolerance; both
// are checked when the Localizer is built.
func WithPrior(b *belief.Belief) Option {
	return func(o *options) {
		o.prior = b
	}
}
