package actions_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"qit.dev/qit/internal/actions"
	"qit.dev/qit/testhelpers"
)

func TestLogAction(t *testing.T) {
	tests := []struct {
		name string
		opts actions.LogOptions
		want []string
	}{
		{name: "full", want: []string{"log"}},
		{name: "short", opts: actions.LogOptions{Short: true}, want: []string{"log", "--oneline"}},
		{name: "limited", opts: actions.LogOptions{MaxCount: 3}, want: []string{"log", "-n", "3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, runner, stdout := newFakeContext(t, testhelpers.NewFakeStatusWithCount(0))

			require.NoError(t, actions.LogAction(ctx, tt.opts))
			require.Equal(t, [][]string{tt.want}, runner.CallArgs())
			require.False(t, runner.Calls()[0].Quiet)
			require.Empty(t, stdout.String())
		})
	}
}
