package git

import (
	"context"
	"fmt"
)

// StageAll stages every change in the working tree, including new and deleted files
func (c *Client) StageAll(ctx context.Context) error {
	if err := c.run(ctx, "add", "-A"); err != nil {
		return fmt.Errorf("failed to stage all changes: %w", err)
	}
	return nil
}
