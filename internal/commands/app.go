package commands

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finman-cli/finman/internal/advisor"
	"github.com/finman-cli/finman/internal/auth"
	"github.com/finman-cli/finman/internal/config"
	"github.com/finman-cli/finman/internal/gitops"
	"github.com/finman-cli/finman/internal/log"
	"github.com/finman-cli/finman/internal/stats"
	"github.com/finman-cli/finman/internal/store"
	"github.com/finman-cli/finman/internal/wallet"
)

// app bundles the services every command needs, wired from the data
// directory's configuration.
type app struct {
	home    string
	cfg     *config.Config
	wallets store.WalletStore
	svc     *wallet.Service
	auth    *auth.Service
	log     *slog.Logger
	close   func() error
}

// openApp resolves the data directory and constructs the service stack.
// homeFlag, when non-empty, wins over FINMAN_HOME and the default.
func openApp(homeFlag string) (*app, error) {
	home := homeFlag
	if home == "" {
		var err error
		home, err = config.Home()
		if err != nil {
			return nil, err
		}
	}

	cfg, err := config.LoadOrDefault(home)
	if err != nil {
		return nil, err
	}

	logger := log.New("finman")

	var wallets store.WalletStore
	closeFn := func() error { return nil }
	switch cfg.Storage.Backend {
	case config.BackendSQLite:
		s, err := store.NewSQLiteStore(filepath.Join(home, "finman.db"))
		if err != nil {
			return nil, err
		}
		wallets = s
		closeFn = s.Close
	case config.BackendJSON, "":
		wallets = store.NewFileStore(home)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}

	return &app{
		home:    home,
		cfg:     cfg,
		wallets: wallets,
		svc:     wallet.NewService(wallets, advisor.NewWithRatio(cfg.Thresholds.BudgetWarn), logger),
		auth:    auth.NewService(auth.NewFileUserStore(home)),
		log:     logger,
		close:   closeFn,
	}, nil
}

// Close releases backend resources.
func (a *app) Close() {
	if err := a.close(); err != nil {
		a.log.Warn("closing store", "err", err)
	}
}

// requireLogin returns the active account from the session file.
func (a *app) requireLogin() (string, error) {
	return auth.RequireLogin(a.home)
}

// autoCommit versions the data directory when git integration is on.
// Failures are logged, never fatal: the mutation itself already succeeded.
func (a *app) autoCommit(message string) {
	if !a.cfg.Git.AutoCommit {
		return
	}
	if err := gitops.EnsureRepo(a.home); err != nil {
		a.log.Warn("git init failed", "err", err)
		return
	}
	hash, err := gitops.CommitAll(a.home, message, a.cfg.Git.AuthorName, a.cfg.Git.AuthorEmail)
	if err != nil {
		a.log.Warn("git commit failed", "err", err)
		return
	}
	if hash != "" {
		a.log.Debug("data dir committed", "hash", hash)
	}
}

// parseAmount parses a positive decimal CLI argument.
func parseAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q", s)
	}
	return d, nil
}

// parseDate parses a YYYY-MM-DD CLI argument.
func parseDate(s string) (time.Time, error) {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", s)
	}
	return d, nil
}

// rangeFromFlags builds a stats.Range from optional --from/--to values.
func rangeFromFlags(from, to string) (stats.Range, error) {
	var r stats.Range
	if from != "" {
		d, err := parseDate(from)
		if err != nil {
			return r, err
		}
		r.From = &d
	}
	if to != "" {
		d, err := parseDate(to)
		if err != nil {
			return r, err
		}
		r.To = &d
	}
	return r, nil
}

// printWarnings renders advisory warnings beneath a command's output.
func printWarnings(p printer, warnings []string) {
	for _, w := range warnings {
		p.Printf("warning: %s\n", w)
	}
}

// printer is the subset of cobra.Command used for output, kept as an
// interface so tests can capture it.
type printer interface {
	Printf(format string, args ...any)
	Println(args ...any)
}
