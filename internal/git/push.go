package git

import (
	"context"
	"fmt"
)

// Push pushes the current branch to its upstream.
// If force is true, uses --force (overwrites remote).
func (c *Client) Push(ctx context.Context, force bool) error {
	args := []string{"push"}
	if force {
		args = append(args, "--force")
	}

	if err := c.run(ctx, args...); err != nil {
		return fmt.Errorf("failed to push: %w", err)
	}
	return nil
}
