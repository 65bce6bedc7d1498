// Package histloc estimates where a robot is on a discrete 2D map from
// noisy color readings and unreliable motion commands.
//
// It implements a histogram filter (grid Markov localization): the
// robot's position is a probability distribution over the cells of an
// H×W world whose edges wrap around. Each timestep the distribution is
// first diffused by the commanded motion, then sharpened by the
// measurement.
//
// Packages:
//
//	grid/        immutable environment map of comparable labels, row-major indexing, toroidal Wrap
//	belief/      probability grid: constructors, validation, gonum-backed stats, text rendering
//	filter/      Move, Sense, Localize and the reusable Localizer
//	scenario/    YAML scenario files with validation and expected-result checks
//	cmd/histloc  command-line runner
//
// Quick example:
//
//	world, _ := grid.From2D([][]string{
//		{"R", "G", "G", "R", "R"},
//		{"R", "R", "G", "R", "R"},
//	})
//	b, err := filter.Localize(world,
//		[]string{"G", "G"},
//		[]filter.Motion{filter.Stay, filter.Right},
//		0.7, 0.8)
//
//	go get github.com/katalvlaran/histloc
package histloc
