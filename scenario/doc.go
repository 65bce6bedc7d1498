// Package scenario loads localization runs from YAML files.
//
// A scenario names the environment map, the measurement and motion
// sequences, both filter probabilities and, optionally, the belief the
// run is expected to produce:
//
//	name: corridor
//	world:
//	  - [R, G, G, R, R]
//	  - [R, R, G, R, R]
//	measurements: [G, G]
//	motions: [[0, 0], right]     # [dy, dx] pairs or stay/up/down/left/right
//	sensor_right: 0.7
//	p_move: 0.8
//	expected:                    # optional
//	  - [0.1, 0.2, 0.3, 0.1, 0.1]
//	  - [0.05, 0.05, 0.05, 0.025, 0.025]
//	tolerance: 0.001             # optional, DefaultTolerance
//
// Parse and Load report every problem found in a file at once (the
// returned error combines them with go.uber.org/multierr); each problem
// matches ErrInvalidScenario under errors.Is.
package scenario
