package store

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/finman-cli/finman/internal/errs"
	"github.com/finman-cli/finman/internal/model"
)

// FileStore keeps one pretty-printed JSON snapshot per account at
// <dir>/<login>.json.
type FileStore struct {
	dir string
}

// NewFileStore creates a FileStore rooted at dir.
func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

// GetOrCreate implements WalletStore. A missing file yields a fresh
// empty wallet; it is not written until the first Save.
func (s *FileStore) GetOrCreate(login string) (*model.Wallet, error) {
	path := s.walletPath(login)
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return model.NewWallet(login), nil
	}
	if err != nil {
		return nil, errs.Wrap(errs.KindIOFailure, err, "reading wallet %s", path)
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, errs.Wrap(errs.KindIOFailure, err, "parsing wallet %s", path)
	}
	return snap.Restore(login)
}

// Save implements WalletStore.
func (s *FileStore) Save(w *model.Wallet) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return errs.Wrap(errs.KindIOFailure, err, "creating data dir")
	}
	return writeSnapshot(s.walletPath(w.Owner()), TakeSnapshot(w))
}

// ExportSnapshot writes a wallet snapshot to an arbitrary path,
// creating parent directories. Transaction IDs are stripped: an
// exported snapshot is a portable document that may be imported under
// another account, where reused IDs would collide.
func ExportSnapshot(path string, w *model.Wallet) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errs.Wrap(errs.KindIOFailure, err, "creating snapshot dir")
		}
	}
	snap := TakeSnapshot(w)
	for i := range snap.Transactions {
		snap.Transactions[i].ID = ""
	}
	return writeSnapshot(path, snap)
}

// ImportSnapshot reads a snapshot file and rebuilds it as a wallet
// owned by login, regardless of the owner recorded in the file.
func ImportSnapshot(path, login string) (*model.Wallet, error) {
	login = strings.TrimSpace(login)
	if login == "" {
		return nil, errs.New(errs.KindEmptyField, "login must not be empty")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errs.Wrap(errs.KindIOFailure, err, "reading snapshot %s", path)
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, errs.Wrap(errs.KindIOFailure, err, "parsing snapshot %s", path)
	}
	return snap.Restore(login)
}

func (s *FileStore) walletPath(login string) string {
	return filepath.Join(s.dir, login+".json")
}

func writeSnapshot(path string, snap Snapshot) error {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return errs.Wrap(errs.KindIOFailure, err, "encoding snapshot")
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return errs.Wrap(errs.KindIOFailure, err, "writing snapshot %s", path)
	}
	return nil
}
