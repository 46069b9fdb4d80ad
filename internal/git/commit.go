package git

import (
	"context"
	"fmt"
)

// CommitOptions contains options for creating a commit
type CommitOptions struct {
	Message string
	// NoVerify skips the pre-commit and commit-msg hooks
	NoVerify bool
}

// Commit commits all staged and tracked changes with the given message
func (c *Client) Commit(ctx context.Context, opts CommitOptions) error {
	if opts.Message == "" {
		return fmt.Errorf("failed to commit: empty commit message")
	}

	args := []string{"commit", "-a", "-m", opts.Message}
	if opts.NoVerify {
		args = append(args, "--no-verify")
	}

	if err := c.run(ctx, args...); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	return nil
}
