// Package wallet is the state-changing front door of the ledger. Every
// mutation is validated here, applied to the wallet, and persisted
// before control returns to the caller; a failed validation leaves the
// stored state untouched.
package wallet

import (
	"log/slog"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finman-cli/finman/internal/advisor"
	"github.com/finman-cli/finman/internal/errs"
	"github.com/finman-cli/finman/internal/model"
	"github.com/finman-cli/finman/internal/store"
)

// Service validates and applies wallet mutations.
type Service struct {
	wallets store.WalletStore
	advisor *advisor.Advisor
	log     *slog.Logger
}

// NewService creates a wallet Service.
func NewService(wallets store.WalletStore, adv *advisor.Advisor, logger *slog.Logger) *Service {
	return &Service{wallets: wallets, advisor: adv, log: logger}
}

// Wallet returns the account's wallet, creating an empty one on first
// access.
func (s *Service) Wallet(login string) (*model.Wallet, error) {
	return s.wallets.GetOrCreate(login)
}

// AddCategory registers a category on the account. Re-adding an
// existing category is a no-op.
func (s *Service) AddCategory(login, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.New(errs.KindEmptyField, "category must not be empty")
	}

	w, err := s.wallets.GetOrCreate(login)
	if err != nil {
		return err
	}
	w.AddCategory(name)
	if err := s.wallets.Save(w); err != nil {
		return err
	}
	s.log.Info("category added", "login", login, "category", name)
	return nil
}

// SetBudget assigns a spending limit to an already-registered category.
func (s *Service) SetBudget(login, category string, limit decimal.Decimal) error {
	category = strings.TrimSpace(category)
	if category == "" {
		return errs.New(errs.KindEmptyField, "category must not be empty")
	}
	if limit.IsNegative() {
		return errs.New(errs.KindInvalidAmount, "budget limit must not be negative")
	}

	w, err := s.wallets.GetOrCreate(login)
	if err != nil {
		return err
	}
	if !w.HasCategory(category) {
		return errs.New(errs.KindUnknownCategory, "category not found: %s", category)
	}

	w.SetBudget(category, limit)
	if err := s.wallets.Save(w); err != nil {
		return err
	}
	s.log.Info("budget set", "login", login, "category", category, "limit", limit)
	return nil
}

// AddParams holds the optional parts of a transaction insertion.
// A nil Date means today.
type AddParams struct {
	Category string
	Amount   decimal.Decimal
	Date     *time.Time
	Comment  string
}

// AddIncome appends an income transaction. An unknown category is
// created on the fly. Returns advisory warnings.
func (s *Service) AddIncome(login string, p AddParams) ([]string, error) {
	return s.addOperation(login, model.KindIncome, p)
}

// AddExpense appends an expense transaction. Unlike income, an unknown
// category is an error: spending must land in a category the user
// explicitly created. Returns advisory warnings.
func (s *Service) AddExpense(login string, p AddParams) ([]string, error) {
	return s.addOperation(login, model.KindExpense, p)
}

func (s *Service) addOperation(login string, kind model.Kind, p AddParams) ([]string, error) {
	category := strings.TrimSpace(p.Category)
	if category == "" {
		return nil, errs.New(errs.KindEmptyField, "category must not be empty")
	}
	if !p.Amount.IsPositive() {
		return nil, errs.New(errs.KindInvalidAmount, "amount must be greater than 0")
	}

	day := time.Now()
	if p.Date != nil {
		day = *p.Date
	}

	w, err := s.wallets.GetOrCreate(login)
	if err != nil {
		return nil, err
	}

	if !w.HasCategory(category) {
		if kind != model.KindIncome {
			return nil, errs.New(errs.KindUnknownCategory, "category not found: %s", category)
		}
		w.AddCategory(category)
	}

	tx := model.NewTransaction(kind, category, p.Amount, day, strings.TrimSpace(p.Comment))
	w.AddTransaction(tx)
	if err := s.wallets.Save(w); err != nil {
		return nil, err
	}

	s.log.Info("transaction added",
		"login", login, "kind", kind, "category", category,
		"amount", p.Amount, "date", tx.Date.Format("2006-01-02"))

	return s.advisor.Evaluate(w, category), nil
}
