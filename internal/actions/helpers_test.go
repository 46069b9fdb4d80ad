package actions_test

import (
	"bytes"
	"context"
	"io"
	"testing"

	"qit.dev/qit/internal/config"
	"qit.dev/qit/internal/git"
	"qit.dev/qit/internal/runtime"
	"qit.dev/qit/internal/tui"
	"qit.dev/qit/testhelpers"
)

// newFakeContext returns a context backed by a recording runner and a canned status.
func newFakeContext(t *testing.T, status runtime.StatusSource) (*runtime.Context, *testhelpers.FakeRunner, *bytes.Buffer) {
	t.Helper()

	runner := testhelpers.NewFakeRunner()
	splog, err := tui.NewSplogWithOptions(tui.SplogOptions{Writer: io.Discard, Debug: true})
	if err != nil {
		t.Fatalf("failed to create splog: %v", err)
	}

	var stdout bytes.Buffer
	return &runtime.Context{
		Context: context.Background(),
		Git:     git.NewClient(runner),
		Status:  status,
		Config:  &config.Config{},
		Splog:   splog,
		Stdout:  &stdout,
	}, runner, &stdout
}

// newSceneContext returns a context that runs real git inside scene.
func newSceneContext(t *testing.T, scene *testhelpers.Scene) *runtime.Context {
	t.Helper()

	runner := &git.ExecRunner{Dir: scene.Dir, Stdout: io.Discard, Stderr: io.Discard}
	return &runtime.Context{
		Context: context.Background(),
		Git:     git.NewClient(runner),
		Status:  git.NewStatusChecker(scene.Dir),
		Config:  &config.Config{DisableEmojis: true},
		Splog:   testhelpers.Must(tui.NewSplogWithOptions(tui.SplogOptions{Writer: io.Discard})),
		Stdout:  io.Discard,
	}
}
