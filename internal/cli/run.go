package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/histloc/belief"
	"github.com/katalvlaran/histloc/filter"
	"github.com/katalvlaran/histloc/scenario"
)

func (a *app) runCmd() *cobra.Command {
	var (
		sensorRight   float64
		pMove         float64
		precision     int
		trace         bool
		check         bool
		writeExpected string
	)

	c := &cobra.Command{
		Use:   "run [scenario.yaml]",
		Short: "Localize a scenario (the built-in corridor when no file is given)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if precision < 0 {
				precision = belief.DefaultPrecision
			}
			s, err := loadScenario(args)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("sensor-right") {
				s.SensorRight = sensorRight
			}
			if cmd.Flags().Changed("p-move") {
				s.PMove = pMove
			}

			out := cmd.OutOrStdout()
			opts := []filter.Option{filter.WithLogger(a.logger.Named("filter"))}
			if trace {
				opts = append(opts, filter.WithOnStep(traceStep(out, precision)))
			}

			a.logger.Info("localizing",
				zap.String("scenario", s.Name),
				zap.Int("height", s.World.Height()),
				zap.Int("width", s.World.Width()),
				zap.Int("steps", len(s.Motions)),
				zap.Float64("sensor_right", s.SensorRight),
				zap.Float64("p_move", s.PMove),
			)
			b, err := s.Run(opts...)
			if err != nil {
				return err
			}

			report(out, s, b, precision)

			if writeExpected != "" {
				data, err := s.Marshal(b)
				if err != nil {
					return err
				}
				if err := os.WriteFile(writeExpected, data, 0o644); err != nil {
					return errors.Wrapf(err, "write %s", writeExpected)
				}
				fmt.Fprintf(out, "fixture: %s\n", writeExpected)
			}

			if check {
				if err := s.Check(b); err != nil {
					return err
				}
				fmt.Fprintln(out, "check: ok")
			}
			return nil
		},
	}

	c.Flags().Float64Var(&sensorRight, "sensor-right", 0, "override the probability that a measurement is correct")
	c.Flags().Float64Var(&pMove, "p-move", 0, "override the probability that a motion succeeds")
	c.Flags().IntVarP(&precision, "precision", "p", belief.DefaultPrecision, "decimals printed per cell (negative means the default)")
	c.Flags().BoolVar(&trace, "trace", false, "print the belief after every move and sense update")
	c.Flags().BoolVar(&check, "check", false, "compare the result with the scenario's expected grid")
	c.Flags().StringVar(&writeExpected, "write-expected", "", "write the scenario with the result as its expected grid")
	return c
}

// loadScenario reads the scenario named by args, or the built-in one.
func loadScenario(args []string) (*scenario.Scenario, error) {
	if len(args) == 0 {
		return scenario.Canonical()
	}
	return scenario.Load(args[0])
}

// traceStep prints every intermediate belief.
func traceStep(w io.Writer, precision int) filter.StepFunc {
	return func(step int, phase filter.Phase, b *belief.Belief) error {
		_, err := fmt.Fprintf(w, "step %d %s:\n%s\n", step, phase, b.Format(precision))
		return err
	}
}

// report prints the final belief and its summary.
func report(w io.Writer, s *scenario.Scenario, b *belief.Belief, precision int) {
	r, c, p := b.MaxCell()
	fmt.Fprintf(w, "scenario: %s (%dx%d, %d steps)\n", s.Name, b.Height(), b.Width(), len(s.Motions))
	fmt.Fprintln(w, b.Format(precision))
	fmt.Fprintf(w, "most likely: (%d,%d) p=%.*f\n", r, c, precision, p)
	fmt.Fprintf(w, "entropy: %.4f nats\n", b.Entropy())
}
