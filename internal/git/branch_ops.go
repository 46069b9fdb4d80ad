package git

import (
	"context"
	"fmt"
)

// CheckoutBranch checks out an existing branch without printing anything.
// The trailing "--" stops git from treating the name as a path to restore.
func (c *Client) CheckoutBranch(ctx context.Context, branchName string) error {
	if err := c.runQuiet(ctx, "checkout", branchName, "--"); err != nil {
		return fmt.Errorf("failed to checkout branch %s: %w", branchName, err)
	}
	return nil
}

// CreateAndCheckoutBranch creates and checks out a new branch
func (c *Client) CreateAndCheckoutBranch(ctx context.Context, branchName string) error {
	if err := c.run(ctx, "checkout", "-b", branchName); err != nil {
		return fmt.Errorf("failed to create and checkout branch %s: %w", branchName, err)
	}
	return nil
}
