// Package auth handles account registration and login. Credentials are
// stored as-is; this is a single-user local tool, not a hardened
// authentication system.
package auth

import (
	"strings"

	"github.com/finman-cli/finman/internal/errs"
)

// User is a registered account.
type User struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

// UserStore persists registered users.
type UserStore interface {
	Exists(login string) (bool, error)
	// Find returns nil when the login is unknown.
	Find(login string) (*User, error)
	Save(u User) error
}

// Service validates credentials against a UserStore.
type Service struct {
	users UserStore
}

// NewService creates an auth Service.
func NewService(users UserStore) *Service {
	return &Service{users: users}
}

// Register creates a new account. The login must be non-empty, contain
// no spaces or path characters, and not collide with an existing account.
func (s *Service) Register(login, password string) (User, error) {
	login = strings.TrimSpace(login)
	password = strings.TrimSpace(password)
	if err := validateCredentials(login, password); err != nil {
		return User{}, err
	}

	exists, err := s.users.Exists(login)
	if err != nil {
		return User{}, err
	}
	if exists {
		return User{}, errs.New(errs.KindDuplicateAccount, "account %q already exists", login)
	}

	u := User{Login: login, Password: password}
	if err := s.users.Save(u); err != nil {
		return User{}, err
	}
	return u, nil
}

// Login checks credentials against the store.
func (s *Service) Login(login, password string) (User, error) {
	login = strings.TrimSpace(login)
	password = strings.TrimSpace(password)
	if err := validateCredentials(login, password); err != nil {
		return User{}, err
	}

	u, err := s.users.Find(login)
	if err != nil {
		return User{}, err
	}
	if u == nil {
		return User{}, errs.New(errs.KindAuthFailed, "unknown login %q", login)
	}
	if u.Password != password {
		return User{}, errs.New(errs.KindAuthFailed, "wrong password")
	}
	return *u, nil
}

func validateCredentials(login, password string) error {
	if login == "" {
		return errs.New(errs.KindEmptyField, "login must not be empty")
	}
	if strings.ContainsAny(login, " \t") {
		return errs.New(errs.KindEmptyField, "login must not contain spaces")
	}
	// The login names files in the data directory.
	if strings.ContainsAny(login, `/\`) || strings.Contains(login, "..") {
		return errs.New(errs.KindEmptyField, "login must not contain path characters")
	}
	if password == "" {
		return errs.New(errs.KindEmptyField, "password must not be empty")
	}
	return nil
}
