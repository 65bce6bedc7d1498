package filter

import (
	"errors"
	"fmt"
)

// Sentinel errors for filter execution.
var (
	// ErrArityMismatch is returned when measurements and motions differ in length.
	ErrArityMismatch = errors.New("filter: measurements and motions must have equal length")

	// ErrInvalidParameter is returned when sensorRight or pMove lies outside [0,1].
	ErrInvalidParameter = errors.New("filter: probability parameter must be in [0,1]")

	// ErrInvalidDistribution is returned when a sensor update cannot be
	// renormalized (total mass zero, below the minimum mass, or non-finite).
	ErrInvalidDistribution = errors.New("filter: belief cannot be normalized")

	// ErrDimensionMismatch is returned when a belief and the map disagree in shape.
	ErrDimensionMismatch = errors.New("filter: belief and map dimensions differ")

	// ErrNilBelief is returned if a nil belief is passed.
	ErrNilBelief = errors.New("filter: belief is nil")

	// ErrNilMap is returned if a nil environment map is passed.
	ErrNilMap = errors.New("filter: map is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("filter: invalid option supplied")
)

// StepError reports the timestep and phase at which a localization run
// failed. It unwraps to the underlying cause.
type StepError struct {
	Step  int   // zero-based timestep index
	Phase Phase // update that failed
	Err   error // underlying cause
}

// Error implements the error interface.
func (e *StepError) Error() string {
	return fmt.Sprintf("filter: step %d (%s): %v", e.Step, e.Phase, e.Err)
}

// Unwrap returns the underlying cause so errors.Is / errors.As see through.
func (e *StepError) Unwrap() error {
	return e.Err
}
