package gitops

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireGit(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}
}

func TestEnsureRepo(t *testing.T) {
	requireGit(t)
	dir := t.TempDir()

	assert.False(t, IsRepo(dir))
	require.NoError(t, EnsureRepo(dir))
	assert.True(t, IsRepo(dir))

	// Idempotent.
	require.NoError(t, EnsureRepo(dir))
}

func TestCommitAll(t *testing.T) {
	requireGit(t)
	dir := t.TempDir()
	require.NoError(t, EnsureRepo(dir))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "ivan.json"), []byte("{}\n"), 0o644))

	hash, err := CommitAll(dir, "expense add Food 500", "finman", "finman@localhost")
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
}

func TestCommitAll_CleanTreeIsNoOp(t *testing.T) {
	requireGit(t)
	dir := t.TempDir()
	require.NoError(t, EnsureRepo(dir))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "ivan.json"), []byte("{}\n"), 0o644))
	_, err := CommitAll(dir, "first", "finman", "finman@localhost")
	require.NoError(t, err)

	hash, err := CommitAll(dir, "nothing changed", "finman", "finman@localhost")
	require.NoError(t, err)
	assert.Empty(t, hash)
}
