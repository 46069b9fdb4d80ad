package git

import (
	"fmt"
	"sort"
	"strings"

	"github.com/go-git/go-billy/v5/osfs"
	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/format/gitignore"
)

// StatusEntry is the status of a single path in the working tree
type StatusEntry struct {
	Path     string
	Staging  gogit.StatusCode
	Worktree gogit.StatusCode
	// Ignored is set for untracked paths matched by a .gitignore pattern
	Ignored bool
}

// Code returns the two letter porcelain status code, e.g. "M " or "??"
func (e StatusEntry) Code() string {
	return string([]rune{rune(e.Staging), rune(e.Worktree)})
}

// IsUntracked reports whether the path is not known to the index
func (e StatusEntry) IsUntracked() bool {
	return e.Staging == gogit.Untracked || e.Worktree == gogit.Untracked
}

// Pending reports whether the entry counts as an uncommitted change:
// modified, added, deleted, renamed, copied, unmerged or untracked, and not ignored.
func (e StatusEntry) Pending() bool {
	if e.Ignored {
		return false
	}
	return isChange(e.Staging) || isChange(e.Worktree)
}

func isChange(code gogit.StatusCode) bool {
	switch code {
	case gogit.Modified, gogit.Added, gogit.Deleted, gogit.Renamed,
		gogit.Copied, gogit.UpdatedButUnmerged, gogit.Untracked:
		return true
	default:
		return false
	}
}

// CountPending returns the number of pending entries
func CountPending(entries []StatusEntry) int {
	count := 0
	for _, e := range entries {
		if e.Pending() {
			count++
		}
	}
	return count
}

// FilterPending returns only the pending entries, preserving order
func FilterPending(entries []StatusEntry) []StatusEntry {
	var pending []StatusEntry
	for _, e := range entries {
		if e.Pending() {
			pending = append(pending, e)
		}
	}
	return pending
}

// Status returns the status of every changed path, sorted by path.
// It only reads repository state.
func (r *Repository) Status() ([]StatusEntry, error) {
	worktree, err := r.Worktree()
	if err != nil {
		return nil, fmt.Errorf("failed to get worktree: %w", err)
	}

	status, err := worktree.Status()
	if err != nil {
		return nil, fmt.Errorf("failed to get status: %w", err)
	}

	patterns, err := gitignore.ReadPatterns(worktree.Filesystem, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to read ignore patterns: %w", err)
	}
	patterns = append(patterns, worktree.Excludes...)

	// core.excludesfile from the user and system git config
	rootFS := osfs.New("/")
	global, err := gitignore.LoadGlobalPatterns(rootFS)
	if err != nil {
		return nil, fmt.Errorf("failed to read global ignore patterns: %w", err)
	}
	system, err := gitignore.LoadSystemPatterns(rootFS)
	if err != nil {
		return nil, fmt.Errorf("failed to read system ignore patterns: %w", err)
	}
	// Lowest precedence first: the matcher lets later patterns win.
	patterns = append(append(system, global...), patterns...)
	matcher := gitignore.NewMatcher(patterns)

	entries := make([]StatusEntry, 0, len(status))
	for path, fileStatus := range status {
		entry := StatusEntry{
			Path:     path,
			Staging:  fileStatus.Staging,
			Worktree: fileStatus.Worktree,
		}
		if entry.IsUntracked() {
			entry.Ignored = matcher.Match(strings.Split(path, "/"), false)
		}
		entries = append(entries, entry)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Path < entries[j].Path
	})
	return entries, nil
}

// StatusChecker answers pending-change queries for a directory.
// The repository is reopened on every call so results always reflect the
// current on-disk state.
type StatusChecker struct {
	Dir string
}

// NewStatusChecker creates a StatusChecker for dir
func NewStatusChecker(dir string) *StatusChecker {
	return &StatusChecker{Dir: dir}
}

// PendingEntries returns the pending entries of the repository containing Dir
func (s *StatusChecker) PendingEntries() ([]StatusEntry, error) {
	repo, err := OpenRepository(s.Dir)
	if err != nil {
		return nil, err
	}
	entries, err := repo.Status()
	if err != nil {
		return nil, err
	}
	return FilterPending(entries), nil
}

// PendingChanges returns the number of pending entries
func (s *StatusChecker) PendingChanges() (int, error) {
	entries, err := s.PendingEntries()
	if err != nil {
		return 0, err
	}
	return len(entries), nil
}

// BranchNames returns the local branch names of the repository containing Dir
func (s *StatusChecker) BranchNames() ([]string, error) {
	repo, err := OpenRepository(s.Dir)
	if err != nil {
		return nil, err
	}
	return repo.GetBranchNames()
}
