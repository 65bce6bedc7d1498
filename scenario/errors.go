package scenario

import "errors"

var (
	// ErrInvalidScenario marks a structural problem in a scenario file.
	ErrInvalidScenario = errors.New("scenario: invalid scenario")

	// ErrNoExpectation is returned by Check when the scenario has no expected grid.
	ErrNoExpectation = errors.New("scenario: no expected belief")

	// ErrMismatch is returned by Check when a cell differs by more than the tolerance.
	ErrMismatch = errors.New("scenario: belief differs from expected")
)
