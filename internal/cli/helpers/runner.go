// Package helpers provides shared helper functions for CLI commands.
package helpers

import (
	"github.com/spf13/cobra"

	qiterrors "qit.dev/qit/internal/errors"
	"qit.dev/qit/internal/runtime"
)

// Run is a helper that provides a runtime context to a command's execution function
func Run(cmd *cobra.Command, fn func(ctx *runtime.Context) error) error {
	ctx, err := runtime.GetContext(cmd.Context())
	if err != nil {
		return err
	}
	return fn(ctx)
}

// UsageArgs wraps a positional argument validator so its failures are reported as usage errors
func UsageArgs(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		return qiterrors.NewUsageError(validate(cmd, args))
	}
}
