package runtime

import (
	"context"
	"errors"
	"io"
	"os"

	"qit.dev/qit/internal/config"
	"qit.dev/qit/internal/git"
	"qit.dev/qit/internal/tui"
)

// StatusSource answers pending-change queries
type StatusSource interface {
	PendingEntries() ([]git.StatusEntry, error)
	PendingChanges() (int, error)
}

// Context provides access to git, configuration and output for actions
type Context struct {
	Context context.Context
	Git     *git.Client
	Status  StatusSource
	Config  *config.Config
	Splog   *tui.Splog
	// Stdout receives command results such as the status count
	Stdout io.Writer
}

// NewContext creates a context that spawns real git processes and queries
// the repository containing the current working directory.
func NewContext(ctx context.Context, cfg *config.Config, splog *tui.Splog) *Context {
	if ctx == nil {
		ctx = context.Background()
	}
	if cfg == nil {
		cfg = &config.Config{}
	}
	if splog == nil {
		splog = tui.NewSplog()
	}
	return &Context{
		Context: ctx,
		Git:     git.NewClient(git.NewExecRunner()),
		Status:  git.NewStatusChecker("."),
		Config:  cfg,
		Splog:   splog,
		Stdout:  os.Stdout,
	}
}

type contextKey struct{}

// WithContext returns a copy of parent carrying rc
func WithContext(parent context.Context, rc *Context) context.Context {
	return context.WithValue(parent, contextKey{}, rc)
}

// GetContext returns the runtime context stored in ctx by WithContext
func GetContext(ctx context.Context) (*Context, error) {
	if ctx == nil {
		return nil, errors.New("no runtime context")
	}
	rc, ok := ctx.Value(contextKey{}).(*Context)
	if !ok || rc == nil {
		return nil, errors.New("no runtime context")
	}
	return rc, nil
}
