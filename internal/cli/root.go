// Package cli wires the histloc commands.
package cli

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// app carries state shared by the subcommands.
type app struct {
	debug  bool
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}

	cmd := &cobra.Command{
		Use:          "histloc",
		Short:        "Grid localization with a histogram filter",
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			l, err := newLogger(a.debug)
			if err != nil {
				return err
			}
			a.logger = l
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			_ = a.logger.Sync()
		},
	}

	cmd.PersistentFlags().BoolVar(&a.debug, "debug", false, "enable development logging with per-step filter output")
	cmd.AddCommand(a.runCmd(), a.validateCmd())
	return cmd
}

// newLogger builds a production logger, or a development logger at
// debug level when debug is set. Both write to stderr.
func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	return cfg.Build()
}
