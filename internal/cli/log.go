package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"qit.dev/qit/internal/actions"
	"qit.dev/qit/internal/cli/helpers"
	qiterrors "qit.dev/qit/internal/errors"
	"qit.dev/qit/internal/runtime"
)

// newLogCmd creates the log command
func newLogCmd() *cobra.Command {
	var (
		short    bool
		maxCount int
	)

	cmd := &cobra.Command{
		Use:          "log",
		Aliases:      []string{"l"},
		Short:        "Show the commit history",
		Args:         helpers.UsageArgs(cobra.NoArgs),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if maxCount < 0 {
				return qiterrors.NewUsageError(fmt.Errorf("--max-count must not be negative, got %d", maxCount))
			}
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				return actions.LogAction(ctx, actions.LogOptions{
					Short:    short,
					MaxCount: maxCount,
				})
			})
		},
	}

	cmd.Flags().BoolVarP(&short, "short", "s", false, "Show one line per commit")
	cmd.Flags().IntVarP(&maxCount, "max-count", "m", 0, "Limit the number of commits shown")

	return cmd
}
