package actions

import (
	qiterrors "qit.dev/qit/internal/errors"
	"qit.dev/qit/internal/git"
	"qit.dev/qit/internal/message"
	"qit.dev/qit/internal/runtime"
)

// CommitOptions contains options for the commit command
type CommitOptions struct {
	Type     message.Type
	Area     string
	Message  string
	NoVerify bool
}

// CommitAction stages every change in the working tree and commits it with a
// formatted message. Nothing is committed if staging fails.
func CommitAction(ctx *runtime.Context, opts CommitOptions) error {
	formatted, err := message.Format(
		message.Options{DisableEmojis: ctx.Config.DisableEmojis},
		message.Message{Type: opts.Type, Area: opts.Area, Text: opts.Message},
	)
	if err != nil {
		return qiterrors.NewUsageError(err)
	}

	ctx.Splog.Debug("Staging all changes")
	if err := ctx.Git.StageAll(ctx.Context); err != nil {
		return err
	}

	ctx.Splog.Debug("Committing %q", formatted)
	return ctx.Git.Commit(ctx.Context, git.CommitOptions{
		Message:  formatted,
		NoVerify: opts.NoVerify,
	})
}
