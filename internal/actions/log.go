package actions

import (
	"qit.dev/qit/internal/git"
	"qit.dev/qit/internal/runtime"
)

// LogOptions contains options for the log command
type LogOptions struct {
	Short    bool
	MaxCount int
}

// LogAction streams the commit history through git log unmodified
func LogAction(ctx *runtime.Context, opts LogOptions) error {
	return ctx.Git.Log(ctx.Context, git.LogOptions{
		Short:    opts.Short,
		MaxCount: opts.MaxCount,
	})
}
