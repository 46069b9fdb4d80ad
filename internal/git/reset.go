package git

import (
	"context"
	"fmt"
)

// PreviousCommit is the revision of the parent of HEAD
const PreviousCommit = "HEAD~1"

// SoftReset moves the current branch to revision, keeping the changes staged
func (c *Client) SoftReset(ctx context.Context, revision string) error {
	if err := c.run(ctx, "reset", "--soft", revision); err != nil {
		return fmt.Errorf("failed to soft reset to %s: %w", revision, err)
	}
	return nil
}
