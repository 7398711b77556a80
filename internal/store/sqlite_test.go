package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := NewSQLiteStore(filepath.Join(t.TempDir(), "finman.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSQLiteStore_GetOrCreate_Empty(t *testing.T) {
	s := newTestSQLiteStore(t)

	w, err := s.GetOrCreate("ivan")
	require.NoError(t, err)
	assert.Equal(t, "ivan", w.Owner())
	assert.Empty(t, w.Categories())
}

func TestSQLiteStore_SaveLoadRoundTrip(t *testing.T) {
	s := newTestSQLiteStore(t)
	w := sampleWallet("ivan")

	require.NoError(t, s.Save(w))

	got, err := s.GetOrCreate("ivan")
	require.NoError(t, err)
	assertSameWallet(t, w, got)

	// Transaction IDs survive a SQLite round-trip.
	assert.Equal(t, w.Transactions()[0].ID, got.Transactions()[0].ID)
}

func TestSQLiteStore_SaveIsWholesale(t *testing.T) {
	s := newTestSQLiteStore(t)
	w := sampleWallet("ivan")
	require.NoError(t, s.Save(w))

	w.AddCategory("Transport")
	require.NoError(t, s.Save(w))

	got, err := s.GetOrCreate("ivan")
	require.NoError(t, err)
	assert.Equal(t, []string{"Food", "Salary", "Transport"}, got.Categories())
	assert.Len(t, got.Transactions(), 2, "re-saving must not duplicate rows")
}

func TestSQLiteStore_AccountsAreIsolated(t *testing.T) {
	s := newTestSQLiteStore(t)
	require.NoError(t, s.Save(sampleWallet("ivan")))

	other, err := s.GetOrCreate("maria")
	require.NoError(t, err)
	assert.Empty(t, other.Transactions())
}
