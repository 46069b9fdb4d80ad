package cli

import (
	"github.com/spf13/cobra"

	"qit.dev/qit/internal/actions"
	"qit.dev/qit/internal/cli/helpers"
	"qit.dev/qit/internal/runtime"
)

// newSwitchCmd creates the switch command
func newSwitchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "switch <branch>",
		Aliases:           []string{"s"},
		Short:             "Switch to a branch, creating it if it does not exist",
		Args:              helpers.UsageArgs(cobra.ExactArgs(1)),
		ValidArgsFunction: helpers.CompleteBranches,
		SilenceUsage:      true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				return actions.SwitchAction(ctx, actions.SwitchOptions{BranchName: args[0]})
			})
		},
	}

	return cmd
}
