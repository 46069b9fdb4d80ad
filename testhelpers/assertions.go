// Package testhelpers provides testing utilities for the qit CLI,
// including a scene system, Git repository helpers, a recording git runner,
// and custom assertions.
package testhelpers

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Must is a generic helper function that panics if err is not nil,
// otherwise returns the value. This is useful for test setup code
// where errors are not expected and should halt execution immediately.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// ExpectCommits asserts that the newest commit subjects on the current
// branch match expected, newest first.
func ExpectCommits(t *testing.T, repo *GitRepo, expected []string) {
	t.Helper()

	messages, err := repo.ListCurrentBranchCommitMessages()
	require.NoError(t, err, "Failed to list commit messages")

	if len(messages) < len(expected) {
		require.Fail(t, "Not enough commits", "Expected %d commits, got %d", len(expected), len(messages))
		return
	}

	require.Equal(t, expected, messages[:len(expected)], "Commits do not match")
}

// ExpectBranch asserts that the repository has expected checked out.
func ExpectBranch(t *testing.T, repo *GitRepo, expected string) {
	t.Helper()

	branch, err := repo.CurrentBranchName()
	require.NoError(t, err)
	require.Equal(t, expected, branch)
}
