package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	"qit.dev/qit/internal/config"
)

// isolate points QIT_CONFIG at a file that does not exist so the
// developer's own config never leaks into a test.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("QIT_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))
	for _, key := range []string{"QIT_DISABLE_EMOJIS", "QIT_LOG_FILE", "QIT_DEBUG", "QIT_LOG_MAX_SIZE"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	cfg, err := config.Load()
	require.NoError(t, err)
	require.False(t, cfg.DisableEmojis)
	require.False(t, cfg.Debug)
	require.Empty(t, cfg.LogFile)
	require.Equal(t, 1, cfg.LogMaxSize)
	require.Equal(t, 2, cfg.LogMaxBackups)
	require.Equal(t, 30, cfg.LogMaxAge)
}

func TestDisableEmojisRequiresLiteralTrue(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{value: "true", want: true},
		{value: "TRUE", want: false},
		{value: "1", want: false},
		{value: "yes", want: false},
		{value: "false", want: false},
		{value: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			isolate(t)
			t.Setenv("QIT_DISABLE_EMOJIS", tt.value)

			cfg, err := config.Load()
			require.NoError(t, err)
			require.Equal(t, tt.want, cfg.DisableEmojis)
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	t.Run("file values are used", func(t *testing.T) {
		isolate(t)
		path := writeConfig(t, "disable_emojis: true\nlog_file: /tmp/qit.log\nlog_max_backups: 5\ndebug: true\n")

		cfg, err := config.LoadWith(viper.New(), path)
		require.NoError(t, err)
		require.True(t, cfg.DisableEmojis)
		require.True(t, cfg.Debug)
		require.Equal(t, "/tmp/qit.log", cfg.LogFile)
		require.Equal(t, 5, cfg.LogMaxBackups)
	})

	t.Run("environment wins over file", func(t *testing.T) {
		isolate(t)
		path := writeConfig(t, "disable_emojis: true\n")
		t.Setenv("QIT_DISABLE_EMOJIS", "false")

		cfg, err := config.LoadWith(viper.New(), path)
		require.NoError(t, err)
		require.False(t, cfg.DisableEmojis)
	})

	t.Run("QIT_CONFIG selects the file", func(t *testing.T) {
		isolate(t)
		t.Setenv("QIT_CONFIG", writeConfig(t, "log_file: from-env-path.log\n"))

		cfg, err := config.Load()
		require.NoError(t, err)
		require.Equal(t, "from-env-path.log", cfg.LogFile)
	})

	t.Run("invalid file is an error", func(t *testing.T) {
		isolate(t)
		path := writeConfig(t, "disable_emojis: [unclosed\n")

		_, err := config.LoadWith(viper.New(), path)
		require.Error(t, err)
		require.Contains(t, err.Error(), path)
	})
}

func TestNonPositiveLogSettingsFallBack(t *testing.T) {
	isolate(t)
	t.Setenv("QIT_LOG_MAX_SIZE", "-4")

	cfg, err := config.Load()
	require.NoError(t, err)
	require.Equal(t, 1, cfg.LogMaxSize)
}
