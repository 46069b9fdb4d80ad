// Package errors provides sentinel errors and custom error types for the qit application.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// Sentinel errors for common conditions
var (
	// ErrUncommittedChanges indicates that a non-forced push was blocked by pending changes
	ErrUncommittedChanges = errors.New("there are uncommitted changes")

	// ErrNotARepository indicates that the directory is not inside a git repository
	ErrNotARepository = errors.New("not a git repository")

	// ErrUnknownCommitType indicates a commit type outside the supported set
	ErrUnknownCommitType = errors.New("unknown commit type")

	// ErrUsage indicates the command line could not be parsed
	ErrUsage = errors.New("usage error")
)

// UncommittedChangesError carries the number of pending entries that blocked a push
type UncommittedChangesError struct {
	Count int
}

func (e *UncommittedChangesError) Error() string {
	if e.Count == 1 {
		return "there is 1 uncommitted change; commit it or push with --force"
	}
	return fmt.Sprintf("there are %d uncommitted changes; commit them or push with --force", e.Count)
}

// Is returns true if the target error is ErrUncommittedChanges
func (e *UncommittedChangesError) Is(target error) bool {
	return target == ErrUncommittedChanges
}

// NewUncommittedChangesError creates a new UncommittedChangesError
func NewUncommittedChangesError(count int) *UncommittedChangesError {
	return &UncommittedChangesError{Count: count}
}

// NotARepositoryError represents a failure to open a directory as a repository
type NotARepositoryError struct {
	Dir string
	Err error
}

func (e *NotARepositoryError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s is not a git repository (or any of the parent directories): %v", e.Dir, e.Err)
	}
	return fmt.Sprintf("%s is not a git repository (or any of the parent directories)", e.Dir)
}

// Is returns true if the target error is ErrNotARepository
func (e *NotARepositoryError) Is(target error) bool {
	return target == ErrNotARepository
}

func (e *NotARepositoryError) Unwrap() error {
	return e.Err
}

// NewNotARepositoryError creates a new NotARepositoryError
func NewNotARepositoryError(dir string, err error) *NotARepositoryError {
	return &NotARepositoryError{Dir: dir, Err: err}
}

// UsageError represents a command line that was rejected before anything ran
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string {
	return e.Err.Error()
}

// Is returns true if the target error is ErrUsage
func (e *UsageError) Is(target error) bool {
	return target == ErrUsage
}

func (e *UsageError) Unwrap() error {
	return e.Err
}

// NewUsageError wraps err as a usage error. A nil err stays nil.
func NewUsageError(err error) error {
	if err == nil {
		return nil
	}
	var usageErr *UsageError
	if errors.As(err, &usageErr) {
		return err
	}
	return &UsageError{Err: err}
}

// GitCommandError represents an error from a git command execution
type GitCommandError struct {
	Command string
	Args    []string
	Err     error
}

func (e *GitCommandError) Error() string {
	msg := fmt.Sprintf("%s %s failed", e.Command, strings.Join(e.Args, " "))
	if code := e.ExitCode(); code >= 0 {
		msg += fmt.Sprintf(" with exit code %d", code)
	} else if e.Err != nil {
		msg += fmt.Sprintf(": %v", e.Err)
	}
	return msg
}

func (e *GitCommandError) Unwrap() error {
	return e.Err
}

// ExitCode returns the process exit code, or -1 if the process never exited normally
func (e *GitCommandError) ExitCode() int {
	var exitErr *exec.ExitError
	if errors.As(e.Err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}

// NewGitCommandError creates a new GitCommandError
func NewGitCommandError(command string, args []string, err error) *GitCommandError {
	return &GitCommandError{
		Command: command,
		Args:    append([]string(nil), args...),
		Err:     err,
	}
}
