package testhelpers

import (
	"os"
	"path/filepath"
	"testing"
)

// Scene represents a test scene with a temporary directory and Git repository.
type Scene struct {
	Dir  string
	Repo *GitRepo
}

// SceneSetup is a function type for setting up a scene.
type SceneSetup func(*Scene) error

// NewScene creates a new test scene with a temporary directory and Git repository.
// The scene never changes the process working directory, so it is safe to
// use from parallel tests. Cleanup is registered with t.Cleanup().
func NewScene(t *testing.T, setup SceneSetup) *Scene {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "qit-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	// Resolve symlinks so paths compare equal on macOS (/var -> /private/var)
	if resolved, err := filepath.EvalSymlinks(tmpDir); err == nil {
		tmpDir = resolved
	}

	t.Cleanup(func() {
		if os.Getenv("DEBUG") == "" {
			_ = os.RemoveAll(tmpDir)
			_ = os.RemoveAll(tmpDir + "-origin.git")
		}
	})

	repo, err := NewGitRepo(tmpDir)
	if err != nil {
		t.Fatalf("Failed to create Git repo: %v", err)
	}

	scene := &Scene{
		Dir:  tmpDir,
		Repo: repo,
	}

	if setup != nil {
		if err := setup(scene); err != nil {
			t.Fatalf("Setup failed: %v", err)
		}
	}

	return scene
}

// BasicSceneSetup is a setup function that creates a basic scene with a single commit.
func BasicSceneSetup(scene *Scene) error {
	return scene.Repo.CreateChangeAndCommit("1", "1")
}

// RemoteSceneSetup creates a single commit and pushes main to a bare "origin" remote.
func RemoteSceneSetup(scene *Scene) error {
	if err := BasicSceneSetup(scene); err != nil {
		return err
	}
	if _, err := scene.Repo.CreateBareRemote("origin"); err != nil {
		return err
	}
	return scene.Repo.PushBranch("origin", "main")
}
