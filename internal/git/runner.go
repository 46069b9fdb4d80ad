package git

import (
	"context"
	"io"
	"os"
	"os/exec"
	"strings"

	qiterrors "qit.dev/qit/internal/errors"
)

// Command describes a single git invocation
type Command struct {
	Args []string
	// Quiet discards the process output instead of passing it through
	Quiet bool
}

// String returns the command line as a user would type it
func (c Command) String() string {
	return "git " + strings.Join(c.Args, " ")
}

// Runner executes git commands. Run returns nil only if the process was
// spawned and exited with status zero.
type Runner interface {
	Run(ctx context.Context, cmd Command) error
}

// ExecRunner runs commands by spawning the git binary and waiting for it to exit.
// Output is streamed straight to the configured writers; nothing is captured.
type ExecRunner struct {
	// Binary defaults to "git"
	Binary string
	// Dir defaults to the process working directory
	Dir    string
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewExecRunner returns a runner attached to the process's standard streams
func NewExecRunner() *ExecRunner {
	return &ExecRunner{
		Binary: "git",
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// Run implements Runner
func (r *ExecRunner) Run(ctx context.Context, c Command) error {
	if ctx == nil {
		ctx = context.Background()
	}

	binary := r.Binary
	if binary == "" {
		binary = "git"
	}

	cmd := exec.CommandContext(ctx, binary, c.Args...)
	if r.Dir != "" {
		cmd.Dir = r.Dir
	}
	if !c.Quiet {
		cmd.Stdin = r.Stdin
		cmd.Stdout = r.Stdout
		cmd.Stderr = r.Stderr
	}

	if err := cmd.Run(); err != nil {
		return qiterrors.NewGitCommandError(binary, c.Args, err)
	}
	return nil
}
