package tui_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"qit.dev/qit/internal/tui"
)

func TestSplogConsole(t *testing.T) {
	t.Run("info and warn are always shown", func(t *testing.T) {
		var buf bytes.Buffer
		splog, err := tui.NewSplogWithOptions(tui.SplogOptions{Writer: &buf})
		require.NoError(t, err)

		splog.Info("pushed %d commits", 2)
		splog.Warn("careful")
		splog.Debug("hidden")

		require.Equal(t, "pushed 2 commits\n⚠️  careful\n", buf.String())
	})

	t.Run("debug mode shows debug messages", func(t *testing.T) {
		var buf bytes.Buffer
		splog, err := tui.NewSplogWithOptions(tui.SplogOptions{Writer: &buf, Debug: true})
		require.NoError(t, err)

		splog.Debug("running %s", "git push")
		require.Equal(t, "running git push\n", buf.String())
	})

	t.Run("percent signs without args are kept", func(t *testing.T) {
		var buf bytes.Buffer
		splog, err := tui.NewSplogWithOptions(tui.SplogOptions{Writer: &buf})
		require.NoError(t, err)

		splog.Info("100%")
		require.Equal(t, "100%\n", buf.String())
	})
}

func TestSplogFile(t *testing.T) {
	var console bytes.Buffer
	logFile := filepath.Join(t.TempDir(), "logs", "qit.log")

	splog, err := tui.NewSplogWithOptions(tui.SplogOptions{
		Writer:        &console,
		LogFile:       logFile,
		LogMaxSize:    1,
		LogMaxBackups: 1,
		LogMaxAge:     1,
	})
	require.NoError(t, err)

	splog.Debug("file only")
	splog.Info("both")
	require.NoError(t, splog.Close())

	require.Equal(t, "both\n", console.String())

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	require.Contains(t, string(data), "level=DEBUG")
	require.Contains(t, string(data), `msg="file only"`)
	require.Contains(t, string(data), "msg=both")
}
