package auth

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/finman-cli/finman/internal/errs"
)

// FileUserStore keeps all users in a single users.json document in the
// data directory.
type FileUserStore struct {
	path string
}

// NewFileUserStore creates a store writing to <dir>/users.json.
func NewFileUserStore(dir string) *FileUserStore {
	return &FileUserStore{path: filepath.Join(dir, "users.json")}
}

// Exists implements UserStore.
func (s *FileUserStore) Exists(login string) (bool, error) {
	u, err := s.Find(login)
	return u != nil, err
}

// Find implements UserStore.
func (s *FileUserStore) Find(login string) (*User, error) {
	users, err := s.load()
	if err != nil {
		return nil, err
	}
	if u, ok := users[login]; ok {
		return &u, nil
	}
	return nil, nil
}

// Save implements UserStore.
func (s *FileUserStore) Save(u User) error {
	users, err := s.load()
	if err != nil {
		return err
	}
	users[u.Login] = u

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return errs.Wrap(errs.KindIOFailure, err, "creating data dir")
	}
	data, err := json.MarshalIndent(users, "", "  ")
	if err != nil {
		return errs.Wrap(errs.KindIOFailure, err, "encoding users")
	}
	if err := os.WriteFile(s.path, append(data, '\n'), 0o600); err != nil {
		return errs.Wrap(errs.KindIOFailure, err, "writing users file")
	}
	return nil
}

func (s *FileUserStore) load() (map[string]User, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return make(map[string]User), nil
	}
	if err != nil {
		return nil, errs.Wrap(errs.KindIOFailure, err, "reading users file")
	}
	var users map[string]User
	if err := json.Unmarshal(data, &users); err != nil {
		return nil, errs.Wrap(errs.KindIOFailure, err, "parsing users file")
	}
	if users == nil {
		users = make(map[string]User)
	}
	return users, nil
}

// MemoryUserStore is an in-memory UserStore for tests.
type MemoryUserStore struct {
	mu    sync.RWMutex
	users map[string]User
}

// NewMemoryUserStore creates an empty MemoryUserStore.
func NewMemoryUserStore() *MemoryUserStore {
	return &MemoryUserStore{users: make(map[string]User)}
}

// Exists implements UserStore.
func (s *MemoryUserStore) Exists(login string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.users[login]
	return ok, nil
}

// Find implements UserStore.
func (s *MemoryUserStore) Find(login string) (*User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if u, ok := s.users[login]; ok {
		return &u, nil
	}
	return nil, nil
}

// Save implements UserStore.
func (s *MemoryUserStore) Save(u User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[u.Login] = u
	return nil
}
