package cli_test

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"qit.dev/qit/internal/cli"
	"qit.dev/qit/internal/config"
	"qit.dev/qit/internal/git"
	"qit.dev/qit/internal/runtime"
	"qit.dev/qit/internal/tui"
	"qit.dev/qit/testhelpers"
)

type result struct {
	code   int
	stdout string
	stderr string
	runner *testhelpers.FakeRunner
}

// runQit executes the command tree in process against a recording runner.
func runQit(t *testing.T, status *testhelpers.FakeStatus, args ...string) result {
	t.Helper()
	return runQitWithEnv(t, status, nil, "", args...)
}

// runQitWithEnv is runQit with extra environment variables applied over the
// defaults and stdin attached to the command.
func runQitWithEnv(t *testing.T, status *testhelpers.FakeStatus, env map[string]string, stdin string, args ...string) result {
	t.Helper()
	t.Setenv("QIT_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("QIT_DISABLE_EMOJIS", "")
	t.Setenv("QIT_NON_INTERACTIVE", "1")
	for k, v := range env {
		t.Setenv(k, v)
	}

	if status == nil {
		status = testhelpers.NewFakeStatusWithCount(0)
	}
	runner := testhelpers.NewFakeRunner()
	var stdout, stderr bytes.Buffer

	root := cli.NewRootCmdWithOptions(cli.RootOptions{
		Stderr: &stderr,
		NewContext: func(ctx context.Context, cfg *config.Config, splog *tui.Splog) *runtime.Context {
			return &runtime.Context{
				Context: ctx,
				Git:     git.NewClient(runner),
				Status:  status,
				Config:  cfg,
				Splog:   splog,
				Stdout:  &stdout,
			}
		},
	})
	root.SetOut(&stdout)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)

	code := cli.Execute(root)
	return result{code: code, stdout: stdout.String(), stderr: stderr.String(), runner: runner}
}

func TestUsageErrorsRunNothing(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "unknown subcommand", args: []string{"bogus"}},
		{name: "unknown commit type", args: []string{"commit", "feat", "Add thing"}},
		{name: "missing commit message", args: []string{"commit", "feature"}},
		{name: "too many commit arguments", args: []string{"commit", "feature", "a", "b"}},
		{name: "unknown flag", args: []string{"push", "--frce"}},
		{name: "switch without branch", args: []string{"switch"}},
		{name: "push with argument", args: []string{"push", "origin"}},
		{name: "negative max count", args: []string{"log", "--max-count=-1"}},
		{name: "interactive without a terminal", args: []string{"commit", "-i"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := runQit(t, nil, tt.args...)

			require.Equal(t, 1, res.code)
			require.Contains(t, res.stderr, "💥 Unable to run command:")
			require.Contains(t, res.stderr, "Usage:")
			require.Empty(t, res.runner.Calls())
		})
	}
}

func TestCommitCommand(t *testing.T) {
	t.Run("formats the message with emoji", func(t *testing.T) {
		res := runQit(t, nil, "commit", "feature", "Add thing")

		require.Equal(t, 0, res.code, res.stderr)
		require.Equal(t, [][]string{
			{"add", "-A"},
			{"commit", "-a", "-m", "✨ feature: Add thing"},
		}, res.runner.CallArgs())
	})

	t.Run("alias with area and no-verify", func(t *testing.T) {
		res := runQit(t, nil, "c", "fix", "Fix bug", "-a", "cli", "-n")

		require.Equal(t, 0, res.code, res.stderr)
		require.Equal(t, []string{"commit", "-a", "-m", "🐛 fix(cli): Fix bug", "--no-verify"}, res.runner.CallArgs()[1])
	})

	t.Run("emoji can be disabled from the environment", func(t *testing.T) {
		res := runQitWithEnv(t, nil, map[string]string{"QIT_DISABLE_EMOJIS": "true"}, "", "commit", "fix", "Fix bug", "--area", "cli")

		require.Equal(t, 0, res.code, res.stderr)
		require.Equal(t, []string{"commit", "-a", "-m", "fix(cli): Fix bug"}, res.runner.CallArgs()[1])
	})

	t.Run("interactive with every argument given does not prompt", func(t *testing.T) {
		res := runQit(t, nil, "commit", "-i", "doc", "Update readme")

		require.Equal(t, 0, res.code, res.stderr)
		require.Equal(t, []string{"commit", "-a", "-m", "📝 doc: Update readme"}, res.runner.CallArgs()[1])
	})

	t.Run("message from stdin", func(t *testing.T) {
		res := runQitWithEnv(t, nil, nil, "Bump cobra\n", "commit", "deps", "-")

		require.Equal(t, 0, res.code, res.stderr)
		require.Equal(t, []string{"commit", "-a", "-m", "📦 deps: Bump cobra"}, res.runner.CallArgs()[1])
	})

	t.Run("only the first line of stdin is used", func(t *testing.T) {
		res := runQitWithEnv(t, nil, nil, "\n  Bump cobra \n\nChangelog follows\n", "commit", "deps", "-")

		require.Equal(t, 0, res.code, res.stderr)
		require.Equal(t, []string{"commit", "-a", "-m", "📦 deps: Bump cobra"}, res.runner.CallArgs()[1])
	})

	t.Run("empty stdin is a usage error", func(t *testing.T) {
		res := runQitWithEnv(t, nil, nil, "", "commit", "deps", "-")

		require.Equal(t, 1, res.code)
		require.Contains(t, res.stderr, "no message on standard input")
		require.Empty(t, res.runner.Calls())
	})

	t.Run("help lists the commit types", func(t *testing.T) {
		res := runQit(t, nil, "commit", "--help")

		require.Equal(t, 0, res.code)
		for _, name := range []string{"chore", "feature", "refactor", "fix", "test", "style", "doc", "deps", "deploy", "wip"} {
			require.Contains(t, res.stdout, name)
		}
		require.Empty(t, res.runner.Calls())
	})
}

func TestPushCommand(t *testing.T) {
	t.Run("clean tree", func(t *testing.T) {
		res := runQit(t, testhelpers.NewFakeStatusWithCount(0), "push")

		require.Equal(t, 0, res.code, res.stderr)
		require.Equal(t, [][]string{{"push"}}, res.runner.CallArgs())
	})

	t.Run("dirty tree is refused", func(t *testing.T) {
		res := runQit(t, testhelpers.NewFakeStatusWithCount(3), "p")

		require.Equal(t, 1, res.code)
		require.Contains(t, res.stderr, "3 uncommitted changes")
		require.NotContains(t, res.stderr, "Usage:")
		require.Empty(t, res.runner.Calls())
	})

	t.Run("force", func(t *testing.T) {
		res := runQit(t, testhelpers.NewFakeStatusWithCount(3), "push", "-f")

		require.Equal(t, 0, res.code, res.stderr)
		require.Equal(t, [][]string{{"push", "--force"}}, res.runner.CallArgs())
	})
}

func TestOtherCommands(t *testing.T) {
	t.Run("undo", func(t *testing.T) {
		res := runQit(t, nil, "u")
		require.Equal(t, 0, res.code, res.stderr)
		require.Equal(t, [][]string{{"reset", "--soft", "HEAD~1"}}, res.runner.CallArgs())
	})

	t.Run("log", func(t *testing.T) {
		res := runQit(t, nil, "l", "--short", "--max-count", "5")
		require.Equal(t, 0, res.code, res.stderr)
		require.Equal(t, [][]string{{"log", "--oneline", "-n", "5"}}, res.runner.CallArgs())
	})

	t.Run("switch", func(t *testing.T) {
		res := runQit(t, nil, "s", "feature")
		require.Equal(t, 0, res.code, res.stderr)
		require.Equal(t, [][]string{{"checkout", "feature", "--"}}, res.runner.CallArgs())
	})

	t.Run("status", func(t *testing.T) {
		res := runQit(t, testhelpers.NewFakeStatusWithCount(2), "status")
		require.Equal(t, 0, res.code, res.stderr)
		require.Equal(t, "2\n", res.stdout)
	})

	t.Run("debug logging goes to stderr", func(t *testing.T) {
		res := runQit(t, nil, "--debug", "undo")
		require.Equal(t, 0, res.code, res.stderr)
		require.Contains(t, res.stderr, "Running qit undo")
	})
}
