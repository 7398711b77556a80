// Package gitops shells out to git so the data directory can be kept
// under version control. Every successful mutation becomes a commit,
// which doubles as a change history for the wallet files.
package gitops

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// IsRepo reports whether dir is a git repository root.
func IsRepo(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, ".git"))
	return err == nil
}

// EnsureRepo initializes a git repository at dir unless one exists.
func EnsureRepo(dir string) error {
	if IsRepo(dir) {
		return nil
	}
	cmd := exec.Command("git", "init", "--quiet")
	cmd.Dir = dir
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("git init: %s: %w", strings.TrimSpace(string(out)), err)
	}
	return nil
}

// CommitAll stages everything under dir and commits it. When the work
// tree is clean the call is a no-op and returns an empty hash.
func CommitAll(dir, message, authorName, authorEmail string) (string, error) {
	add := exec.Command("git", "add", "-A")
	add.Dir = dir
	if out, err := add.CombinedOutput(); err != nil {
		return "", fmt.Errorf("git add: %s: %w", strings.TrimSpace(string(out)), err)
	}

	status := exec.Command("git", "status", "--porcelain")
	status.Dir = dir
	out, err := status.Output()
	if err != nil {
		return "", fmt.Errorf("git status: %w", err)
	}
	if len(strings.TrimSpace(string(out))) == 0 {
		return "", nil
	}

	commit := exec.Command("git", "commit", "--quiet", "-m", message,
		"--author", fmt.Sprintf("%s <%s>", authorName, authorEmail))
	commit.Dir = dir
	commit.Env = append(os.Environ(),
		"GIT_COMMITTER_NAME="+authorName,
		"GIT_COMMITTER_EMAIL="+authorEmail,
	)
	if out, err := commit.CombinedOutput(); err != nil {
		return "", fmt.Errorf("git commit: %s: %w", strings.TrimSpace(string(out)), err)
	}

	rev := exec.Command("git", "rev-parse", "--short", "HEAD")
	rev.Dir = dir
	hash, err := rev.Output()
	if err != nil {
		return "", fmt.Errorf("git rev-parse: %w", err)
	}
	return strings.TrimSpace(string(hash)), nil
}
