package helpers

import (
	"github.com/spf13/cobra"

	"qit.dev/qit/internal/git"
	"qit.dev/qit/internal/message"
)

// CompleteBranches is a helper for cobra.ValidArgsFunction that returns all
// local branch names in the repository.
func CompleteBranches(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	branches, err := git.NewStatusChecker(".").BranchNames()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	return branches, cobra.ShellCompDirectiveNoFileComp
}

// CompleteCommitTypes completes the first positional argument with the
// commit types and their descriptions.
func CompleteCommitTypes(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	var completions []string
	for _, t := range message.AllTypes() {
		completions = append(completions, t.String()+"\t"+t.Description())
	}
	return completions, cobra.ShellCompDirectiveNoFileComp
}
