package cli

import (
	"github.com/spf13/cobra"

	"qit.dev/qit/internal/actions"
	"qit.dev/qit/internal/cli/helpers"
)

// newUndoCmd creates the undo command
func newUndoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "undo",
		Aliases: []string{"u"},
		Short:   "Undo the last commit, keeping its changes staged",
		Long: `Undo the last commit with a soft reset to its parent.

The changes from the undone commit stay staged. There is no confirmation prompt.`,
		Args:         helpers.UsageArgs(cobra.NoArgs),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return helpers.Run(cmd, actions.UndoAction)
		},
	}

	return cmd
}
