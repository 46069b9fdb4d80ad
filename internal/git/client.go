package git

import (
	"context"
)

// Client composes git argument lists and hands them to a Runner
type Client struct {
	runner Runner
}

// NewClient creates a new Client. A nil runner means NewExecRunner().
func NewClient(runner Runner) *Client {
	if runner == nil {
		runner = NewExecRunner()
	}
	return &Client{runner: runner}
}

func (c *Client) run(ctx context.Context, args ...string) error {
	return c.runner.Run(ctx, Command{Args: args})
}

func (c *Client) runQuiet(ctx context.Context, args ...string) error {
	return c.runner.Run(ctx, Command{Args: args, Quiet: true})
}
