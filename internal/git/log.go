package git

import (
	"context"
	"fmt"
	"strconv"
)

// LogOptions contains options for showing history
type LogOptions struct {
	// Short renders one line per commit
	Short bool
	// MaxCount limits the number of commits; zero means no limit
	MaxCount int
}

// Log streams the commit history to the runner's output unmodified
func (c *Client) Log(ctx context.Context, opts LogOptions) error {
	args := []string{"log"}
	if opts.Short {
		args = append(args, "--oneline")
	}
	if opts.MaxCount > 0 {
		args = append(args, "-n", strconv.Itoa(opts.MaxCount))
	}

	if err := c.run(ctx, args...); err != nil {
		return fmt.Errorf("failed to show log: %w", err)
	}
	return nil
}
