package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"qit.dev/qit/internal/config"
	qiterrors "qit.dev/qit/internal/errors"
	"qit.dev/qit/internal/runtime"
	"qit.dev/qit/internal/tui"
)

// ContextFactory builds the runtime context for one invocation
type ContextFactory func(ctx context.Context, cfg *config.Config, splog *tui.Splog) *runtime.Context

// RootOptions customises the root command
type RootOptions struct {
	Version string
	Commit  string
	Date    string

	// NewContext defaults to runtime.NewContext
	NewContext ContextFactory
	// Stderr receives log output and the failure report. Defaults to os.Stderr.
	Stderr io.Writer
}

// NewRootCmd creates the root cobra command
func NewRootCmd(version, commit, date string) *cobra.Command {
	return NewRootCmdWithOptions(RootOptions{Version: version, Commit: commit, Date: date})
}

// NewRootCmdWithOptions creates the root cobra command with a custom context factory
func NewRootCmdWithOptions(opts RootOptions) *cobra.Command {
	if opts.NewContext == nil {
		opts.NewContext = runtime.NewContext
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}

	var (
		debug   bool
		noColor bool
		splog   *tui.Splog
	)

	rootCmd := &cobra.Command{
		Use:   "qit",
		Short: "Qit is a small git wrapper for conventional, emoji prefixed commits",
		Long: `Qit is a small git wrapper for conventional, emoji prefixed commits.

It stages and commits everything in one step, refuses to push a dirty working
tree unless forced, and switches to branches, creating them when they do not exist.

Set QIT_DISABLE_EMOJIS=true to leave the emoji out of commit messages.`,
		Version:       fmt.Sprintf("%s (commit %s, built %s)", versionOr(opts.Version), opts.Commit, opts.Date),
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if debug {
				cfg.Debug = true
			}

			tui.ConfigureColor(noColor, os.Stdout)

			splog, err = tui.NewSplogWithOptions(tui.SplogOptions{
				Writer:        opts.Stderr,
				Debug:         cfg.Debug,
				LogFile:       cfg.LogFile,
				LogMaxSize:    cfg.LogMaxSize,
				LogMaxBackups: cfg.LogMaxBackups,
				LogMaxAge:     cfg.LogMaxAge,
			})
			if err != nil {
				return err
			}
			splog.Debug("Running %s", cmd.CommandPath())

			ctx := opts.NewContext(cmd.Context(), cfg, splog)
			cmd.SetContext(runtime.WithContext(cmd.Context(), ctx))
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			if splog == nil {
				return nil
			}
			return splog.Close()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return qiterrors.NewUsageError(fmt.Errorf("unknown command %q for %q", args[0], cmd.CommandPath()))
			}
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Write debug output to the console")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.SetErr(opts.Stderr)
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return qiterrors.NewUsageError(err)
	})

	rootCmd.AddCommand(
		newCommitCmd(),
		newPushCmd(),
		newUndoCmd(),
		newLogCmd(),
		newSwitchCmd(),
		newStatusCmd(),
	)

	return rootCmd
}

func versionOr(version string) string {
	if version == "" {
		return "dev"
	}
	return version
}

// Execute runs the command tree and reports any failure on stderr.
// It returns the process exit code.
func Execute(rootCmd *cobra.Command) int {
	cmd, err := rootCmd.ExecuteC()
	if err == nil {
		return 0
	}

	stderr := rootCmd.ErrOrStderr()
	fmt.Fprintln(stderr, tui.ColorRed("💥 Unable to run command:"))
	fmt.Fprintln(stderr, err)
	if errors.Is(err, qiterrors.ErrUsage) && cmd != nil {
		fmt.Fprintln(stderr)
		fmt.Fprint(stderr, cmd.UsageString())
	}
	return 1
}
