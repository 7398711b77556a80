package auth

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/finman-cli/finman/internal/errs"
)

// sessionFile records which account the one-shot CLI commands act on.
// login/register write it, logout removes it.
const sessionFile = "session.yaml"

type session struct {
	Login string `yaml:"login"`
}

// SaveSession records login as the active account.
func SaveSession(dir, login string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errs.Wrap(errs.KindIOFailure, err, "creating data dir")
	}
	data, err := yaml.Marshal(session{Login: login})
	if err != nil {
		return errs.Wrap(errs.KindIOFailure, err, "encoding session")
	}
	if err := os.WriteFile(filepath.Join(dir, sessionFile), data, 0o600); err != nil {
		return errs.Wrap(errs.KindIOFailure, err, "writing session")
	}
	return nil
}

// CurrentLogin returns the active account login, or "" when nobody is
// logged in.
func CurrentLogin(dir string) (string, error) {
	data, err := os.ReadFile(filepath.Join(dir, sessionFile))
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", errs.Wrap(errs.KindIOFailure, err, "reading session")
	}
	var s session
	if err := yaml.Unmarshal(data, &s); err != nil {
		return "", errs.Wrap(errs.KindIOFailure, err, "parsing session")
	}
	return strings.TrimSpace(s.Login), nil
}

// RequireLogin returns the active account or an auth error when no
// session exists.
func RequireLogin(dir string) (string, error) {
	login, err := CurrentLogin(dir)
	if err != nil {
		return "", err
	}
	if login == "" {
		return "", errs.New(errs.KindAuthFailed, "not logged in; run 'finman login' first")
	}
	return login, nil
}

// ClearSession logs the active account out.
func ClearSession(dir string) error {
	err := os.Remove(filepath.Join(dir, sessionFile))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return errs.Wrap(errs.KindIOFailure, err, "removing session")
	}
	return nil
}
