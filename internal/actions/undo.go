package actions

import (
	"qit.dev/qit/internal/git"
	"qit.dev/qit/internal/runtime"
)

// UndoAction removes the last commit from the current branch and keeps its
// changes staged in the working tree
func UndoAction(ctx *runtime.Context) error {
	return ctx.Git.SoftReset(ctx.Context, git.PreviousCommit)
}
