package cli

import (
	"github.com/spf13/cobra"

	"qit.dev/qit/internal/actions"
	"qit.dev/qit/internal/cli/helpers"
	"qit.dev/qit/internal/runtime"
)

// newStatusCmd creates the status command
func newStatusCmd() *cobra.Command {
	var list bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Print the number of uncommitted changes",
		Long: `Print the number of uncommitted changes in the working tree.

This is the same count push uses to decide whether the tree is clean.
Untracked files count, ignored files do not.`,
		Args:         helpers.UsageArgs(cobra.NoArgs),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				return actions.StatusAction(ctx, actions.StatusOptions{List: list})
			})
		},
	}

	cmd.Flags().BoolVarP(&list, "list", "l", false, "List each change with its status code")

	return cmd
}
