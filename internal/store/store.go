// Package store persists wallets and user credentials. Backends share
// the WalletStore interface so the wallet service never knows whether
// it is writing JSON files or SQLite rows.
package store

import (
	"sync"

	"github.com/finman-cli/finman/internal/model"
)

// WalletStore loads and persists wallets keyed by account login.
type WalletStore interface {
	// GetOrCreate returns the wallet for login, creating an empty one
	// on first access.
	GetOrCreate(login string) (*model.Wallet, error)
	// Save persists the wallet's current state.
	Save(w *model.Wallet) error
}

// MemoryStore is a mutex-guarded in-memory WalletStore, used by tests
// and as a session-scoped cache.
type MemoryStore struct {
	mu      sync.RWMutex
	wallets map[string]*model.Wallet
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{wallets: make(map[string]*model.Wallet)}
}

// GetOrCreate implements WalletStore.
func (s *MemoryStore) GetOrCreate(login string) (*model.Wallet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	w, ok := s.wallets[login]
	if !ok {
		w = model.NewWallet(login)
		s.wallets[login] = w
	}
	return w, nil
}

// Save implements WalletStore.
func (s *MemoryStore) Save(w *model.Wallet) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.wallets[w.Owner()] = w
	return nil
}
