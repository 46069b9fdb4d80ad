package cli

import (
	"github.com/spf13/cobra"

	"qit.dev/qit/internal/actions"
	"qit.dev/qit/internal/cli/helpers"
	"qit.dev/qit/internal/runtime"
)

// newPushCmd creates the push command
func newPushCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:     "push",
		Aliases: []string{"p"},
		Short:   "Push the current branch, refusing when there are uncommitted changes",
		Long: `Push the current branch to its upstream.

The push is refused while the working tree has uncommitted changes, counting
untracked files that are not ignored. --force skips that check and force pushes.`,
		Args:         helpers.UsageArgs(cobra.NoArgs),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				return actions.PushAction(ctx, actions.PushOptions{Force: force})
			})
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Push even with uncommitted changes, overwriting the remote branch")

	return cmd
}
