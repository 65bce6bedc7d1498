package cli

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/katalvlaran/histloc/scenario"
)

func (a *app) validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <scenario.yaml>...",
		Short: "Parse and validate scenario files without running them",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			var errs error
			for _, path := range args {
				s, err := scenario.Load(path)
				if err != nil {
					a.logger.Warn("invalid scenario", zap.String("path", path), zap.Error(err))
					fmt.Fprintf(out, "FAIL %s\n", path)
					for _, e := range multierr.Errors(errors.Cause(err)) {
						fmt.Fprintf(out, "  %v\n", e)
					}
					errs = multierr.Append(errs, err)
					continue
				}
				fmt.Fprintf(out, "OK   %s (%dx%d, %d steps)\n", path, s.World.Height(), s.World.Width(), len(s.Motions))
			}
			return errs
		},
	}
}
