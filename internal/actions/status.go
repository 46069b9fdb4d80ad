package actions

import (
	"fmt"

	"qit.dev/qit/internal/runtime"
	"qit.dev/qit/internal/tui"
)

// StatusOptions contains options for the status command
type StatusOptions struct {
	// List prints each pending entry after the count
	List bool
}

// StatusAction prints the number of pending changes in the working tree
func StatusAction(ctx *runtime.Context, opts StatusOptions) error {
	entries, err := ctx.Status.PendingEntries()
	if err != nil {
		return err
	}

	fmt.Fprintln(ctx.Stdout, len(entries))
	if opts.List {
		for _, e := range entries {
			fmt.Fprintf(ctx.Stdout, "%s %s\n", tui.ColorStatusCode(e.Code()), e.Path)
		}
	}
	return nil
}
