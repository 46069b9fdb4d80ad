package actions

import (
	qiterrors "qit.dev/qit/internal/errors"
	"qit.dev/qit/internal/runtime"
)

// PushOptions contains options for the push command
type PushOptions struct {
	Force bool
}

// PushAction pushes the current branch. Unless forced, it refuses to push
// while the working tree has pending changes.
//
// If the pending changes cannot be counted the push goes ahead as if the
// tree were clean; the failure is only recorded at debug level.
func PushAction(ctx *runtime.Context, opts PushOptions) error {
	count, err := ctx.Status.PendingChanges()
	if err != nil {
		ctx.Splog.Debug("Could not check for uncommitted changes, pushing anyway: %v", err)
		count = 0
	}

	if count > 0 && !opts.Force {
		return qiterrors.NewUncommittedChangesError(count)
	}
	if count > 0 {
		ctx.Splog.Warn("Force pushing with %d uncommitted changes left behind", count)
	}

	return ctx.Git.Push(ctx.Context, opts.Force)
}
