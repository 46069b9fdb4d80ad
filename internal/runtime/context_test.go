package runtime_test

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"qit.dev/qit/internal/config"
	"qit.dev/qit/internal/runtime"
	"qit.dev/qit/internal/tui"
)

func TestGetContext(t *testing.T) {
	t.Run("round trips through a context", func(t *testing.T) {
		splog, err := tui.NewSplogWithOptions(tui.SplogOptions{Writer: io.Discard})
		require.NoError(t, err)
		rc := runtime.NewContext(context.Background(), &config.Config{DisableEmojis: true}, splog)

		got, err := runtime.GetContext(runtime.WithContext(context.Background(), rc))
		require.NoError(t, err)
		require.Same(t, rc, got)
		require.True(t, got.Config.DisableEmojis)
	})

	t.Run("missing context is an error", func(t *testing.T) {
		_, err := runtime.GetContext(context.Background())
		require.Error(t, err)
	})

	t.Run("defaults are filled in", func(t *testing.T) {
		//nolint:staticcheck // nil context is accepted
		rc := runtime.NewContext(nil, nil, nil)
		require.NotNil(t, rc.Context)
		require.NotNil(t, rc.Config)
		require.NotNil(t, rc.Splog)
		require.NotNil(t, rc.Git)
		require.NotNil(t, rc.Status)
	})
}
