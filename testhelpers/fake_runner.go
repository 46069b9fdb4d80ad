package testhelpers

import (
	"context"
	"strings"
	"sync"

	"qit.dev/qit/internal/git"
)

// FakeRunner is a git.Runner that records every command instead of spawning
// a process. Commands succeed unless a failure was queued with Fail.
type FakeRunner struct {
	mu       sync.Mutex
	failures map[string][]error
	calls    []git.Command
}

// NewFakeRunner creates an empty FakeRunner.
func NewFakeRunner() *FakeRunner {
	return &FakeRunner{failures: make(map[string][]error)}
}

// Fail queues err as the result of the next command with exactly these args.
func (f *FakeRunner) Fail(err error, args ...string) *FakeRunner {
	key := strings.Join(args, " ")
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failures[key] = append(f.failures[key], err)
	return f
}

// Run implements git.Runner.
func (f *FakeRunner) Run(_ context.Context, cmd git.Command) error {
	key := strings.Join(cmd.Args, " ")
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls = append(f.calls, git.Command{Args: append([]string(nil), cmd.Args...), Quiet: cmd.Quiet})
	queue := f.failures[key]
	if len(queue) == 0 {
		return nil
	}
	f.failures[key] = queue[1:]
	return queue[0]
}

// Calls returns every recorded command in order.
func (f *FakeRunner) Calls() []git.Command {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]git.Command(nil), f.calls...)
}

// CallArgs returns the args of every recorded command in order.
func (f *FakeRunner) CallArgs() [][]string {
	calls := f.Calls()
	args := make([][]string, 0, len(calls))
	for _, c := range calls {
		args = append(args, c.Args)
	}
	return args
}

// CallsFor returns how many times a command with exactly these args ran.
func (f *FakeRunner) CallsFor(args ...string) int {
	key := strings.Join(args, " ")
	count := 0
	for _, c := range f.Calls() {
		if strings.Join(c.Args, " ") == key {
			count++
		}
	}
	return count
}

// FakeStatus is a canned answer to pending-change queries.
type FakeStatus struct {
	Entries []git.StatusEntry
	Err     error
	Queries int
}

// NewFakeStatusWithCount returns a FakeStatus reporting count modified files.
func NewFakeStatusWithCount(count int) *FakeStatus {
	entries := make([]git.StatusEntry, 0, count)
	for i := 0; i < count; i++ {
		entries = append(entries, git.StatusEntry{
			Path:     "file" + string(rune('a'+i%26)) + ".txt",
			Staging:  ' ',
			Worktree: 'M',
		})
	}
	return &FakeStatus{Entries: entries}
}

// PendingEntries returns the canned entries.
func (s *FakeStatus) PendingEntries() ([]git.StatusEntry, error) {
	s.Queries++
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Entries, nil
}

// PendingChanges returns the number of canned entries.
func (s *FakeStatus) PendingChanges() (int, error) {
	entries, err := s.PendingEntries()
	if err != nil {
		return 0, err
	}
	return len(entries), nil
}
