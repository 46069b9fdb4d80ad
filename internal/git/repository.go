package git

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	qiterrors "qit.dev/qit/internal/errors"
)

// Repository wraps a go-git repository
type Repository struct {
	*gogit.Repository
}

// OpenRepository opens the git repository containing path.
// Parent directories are searched for a .git entry.
func OpenRepository(path string) (*Repository, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path: %w", err)
	}

	repo, err := gogit.PlainOpenWithOptions(absPath, &gogit.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		if errors.Is(err, gogit.ErrRepositoryNotExists) {
			return nil, qiterrors.NewNotARepositoryError(absPath, err)
		}
		return nil, fmt.Errorf("failed to open repository: %w", err)
	}

	return &Repository{Repository: repo}, nil
}

// GetBranchNames returns all local branch names, sorted
func (r *Repository) GetBranchNames() ([]string, error) {
	branches, err := r.Branches()
	if err != nil {
		return nil, fmt.Errorf("failed to get branches: %w", err)
	}

	var names []string
	err = branches.ForEach(func(ref *plumbing.Reference) error {
		if ref.Name().IsBranch() {
			names = append(names, ref.Name().Short())
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to iterate branches: %w", err)
	}

	sort.Strings(names)
	return names, nil
}
