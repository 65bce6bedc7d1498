package scenario

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/histloc/belief"
	"github.com/katalvlaran/histloc/filter"
	"github.com/katalvlaran/histloc/grid"
)

// DefaultTolerance is the per-cell tolerance Check uses when a scenario
// does not set one.
const DefaultTolerance = 1e-3

//go:embed canonical.yaml
var canonicalYAML []byte

// Scenario is a validated localization run.
type Scenario struct {
	Name         string
	World        *grid.Map[string]
	Measurements []string
	Motions      []filter.Motion
	SensorRight  float64
	PMove        float64
	Expected     *belief.Belief // nil when the file has no expected grid
	Tolerance    float64
}

// file is the YAML document layout.
type file struct {
	Name         string        `yaml:"name"`
	World        [][]string    `yaml:"world"`
	Measurements []string      `yaml:"measurements"`
	Motions      []motionEntry `yaml:"motions"`
	SensorRight  *float64      `yaml:"sensor_right"`
	PMove        *float64      `yaml:"p_move"`
	Expected     [][]float64   `yaml:"expected,omitempty"`
	Tolerance    *float64      `yaml:"tolerance,omitempty"`
}

// invalid builds one validation problem.
func invalid(field, format string, args ...any) error {
	return fmt.Errorf("%s: %s: %w", field, fmt.Sprintf(format, args...), ErrInvalidScenario)
}

// Load reads and parses the scenario at path.
func Load(path string) (*Scenario, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read scenario %s", path)
	}
	s, err := Parse(b)
	if err != nil {
		return nil, errors.Wrapf(err, "scenario %s", path)
	}
	if s.Name == "" {
		s.Name = path
	}

	return s, nil
}

// Canonical returns the built-in 4×5 red/green corridor scenario.
func Canonical() (*Scenario, error) {
	return Parse(canonicalYAML)
}

// Parse decodes a YAML scenario and validates it. Unknown keys are
// rejected. All validation problems are reported together.
func Parse(b []byte) (*Scenario, error) {
	var f file
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, invalid("document", "empty")
		}
		return nil, errors.Wrap(err, "decode scenario")
	}

	return f.toScenario()
}

// toScenario validates the document and maps it onto a Scenario.
func (f *file) toScenario() (*Scenario, error) {
	s := &Scenario{Name: f.Name, Measurements: f.Measurements, Tolerance: DefaultTolerance}
	var errs error

	world, err := grid.From2D(f.World)
	if err != nil {
		errs = multierr.Append(errs, invalid("world", "%v", err))
	}
	s.World = world

	s.Motions = make([]filter.Motion, len(f.Motions))
	for i, m := range f.Motions {
		if m.err != nil {
			errs = multierr.Append(errs, invalid(fmt.Sprintf("motions[%d]", i), "line %d: %v", m.line, m.err))
		}
		s.Motions[i] = m.motion
	}
	if len(f.Measurements) != len(f.Motions) {
		errs = multierr.Append(errs, invalid("measurements",
			"%d measurements but %d motions", len(f.Measurements), len(f.Motions)))
	}

	s.SensorRight, err = probability("sensor_right", f.SensorRight)
	errs = multierr.Append(errs, err)
	s.PMove, err = probability("p_move", f.PMove)
	errs = multierr.Append(errs, err)

	if f.Tolerance != nil {
		if t := *f.Tolerance; math.IsNaN(t) || math.IsInf(t, 0) || t < 0 {
			errs = multierr.Append(errs, invalid("tolerance", "must be finite and non-negative, got %g", t))
		} else {
			s.Tolerance = t
		}
	}

	if len(f.Expected) > 0 {
		exp, err := belief.FromRows(f.Expected)
		switch {
		case err != nil:
			errs = multierr.Append(errs, invalid("expected", "%v", err))
		case world != nil && (exp.Height() != world.Height() || exp.Width() != world.Width()):
			errs = multierr.Append(errs, invalid("expected", "grid is %dx%d, world is %dx%d",
				exp.Height(), exp.Width(), world.Height(), world.Width()))
		default:
			s.Expected = exp
		}
	}

	if errs != nil {
		return nil, errs
	}

	return s, nil
}

// probability checks a required [0,1] field.
func probability(field string, v *float64) (float64, error) {
	if v == nil {
		return 0, invalid(field, "required")
	}
	if math.IsNaN(*v) || *v < 0 || *v > 1 {
		return 0, invalid(field, "must be in [0,1], got %g", *v)
	}

	return *v, nil
}

// Run localizes the scenario with the given filter options.
func (s *Scenario) Run(opts ...filter.Option) (*belief.Belief, error) {
	b, err := filter.Localize(s.World, s.Measurements, s.Motions, s.SensorRight, s.PMove, opts...)
	if err != nil {
		return nil, errors.Wrapf(err, "run %s", s.Name)
	}

	return b, nil
}

// Check compares b with the expected grid cell by cell.
// Returns ErrNoExpectation when there is nothing to compare with and an
// error matching ErrMismatch naming the worst cell otherwise.
func (s *Scenario) Check(b *belief.Belief) error {
	if s.Expected == nil {
		return ErrNoExpectation
	}
	diff, r, c, err := s.Expected.MaxAbsDiff(b)
	if err != nil {
		return errors.Wrapf(ErrMismatch, "shape %dx%d, want %dx%d", b.Height(), b.Width(), s.Expected.Height(), s.Expected.Width())
	}
	if diff > s.Tolerance {
		got, _ := b.At(r, c)
		want, _ := s.Expected.At(r, c)
		return errors.Wrapf(ErrMismatch, "cell (%d,%d) = %.5f, want %.5f (|diff| %.2g > %.2g)",
			r, c, got, want, diff, s.Tolerance)
	}

	return nil
}

// Marshal renders s back to YAML. With b non-nil, b replaces the
// expected grid, which turns a run into a regression fixture.
func (s *Scenario) Marshal(b *belief.Belief) ([]byte, error) {
	sr, pm, tol := s.SensorRight, s.PMove, s.Tolerance
	f := file{
		Name:         s.Name,
		World:        s.World.Rows(),
		Measurements: s.Measurements,
		Motions:      make([]motionEntry, len(s.Motions)),
		SensorRight:  &sr,
		PMove:        &pm,
		Tolerance:    &tol,
	}
	for i, m := range s.Motions {
		f.Motions[i] = motionEntry{motion: m}
	}
	switch {
	case b != nil:
		f.Expected = b.Rows()
	case s.Expected != nil:
		f.Expected = s.Expected.Rows()
	}

	out, err := yaml.Marshal(&f)
	if err != nil {
		return nil, errors.Wrap(err, "encode scenario")
	}

	return out, nil
}
