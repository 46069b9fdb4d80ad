package actions

import (
	"errors"
	"strings"

	qiterrors "qit.dev/qit/internal/errors"
	"qit.dev/qit/internal/runtime"
	"qit.dev/qit/internal/tui"
)

// SwitchOptions contains options for the switch command
type SwitchOptions struct {
	BranchName string
}

// SwitchAction checks out an existing branch, or creates it when the
// checkout fails.
//
// The checkout attempt runs silently; only the create step shows git's output.
func SwitchAction(ctx *runtime.Context, opts SwitchOptions) error {
	branchName := opts.BranchName
	if strings.TrimSpace(branchName) == "" {
		return qiterrors.NewUsageError(errors.New("branch name must not be empty"))
	}

	err := ctx.Git.CheckoutBranch(ctx.Context, branchName)
	if err == nil {
		ctx.Splog.Info("Switched to branch %s.", tui.ColorCyan(branchName))
		return nil
	}
	ctx.Splog.Debug("Checkout of %s failed, creating it: %v", branchName, err)

	return ctx.Git.CreateAndCheckoutBranch(ctx.Context, branchName)
}
