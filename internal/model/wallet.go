package model

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// Wallet owns a single account's categories, budgets, and transactions.
// It holds no validation logic of its own; the wallet service enforces
// category existence and amount rules before mutating it.
type Wallet struct {
	owner        string
	categories   map[string]struct{}
	budgets      map[string]decimal.Decimal
	transactions []Transaction
}

// NewWallet creates an empty wallet for the given account login.
func NewWallet(owner string) *Wallet {
	return &Wallet{
		owner:      owner,
		categories: make(map[string]struct{}),
		budgets:    make(map[string]decimal.Decimal),
	}
}

// Owner returns the account login this wallet belongs to.
func (w *Wallet) Owner() string {
	return w.owner
}

// AddCategory inserts a category by trimmed name. Blank names are
// ignored; re-adding an existing category is a no-op.
func (w *Wallet) AddCategory(name string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return
	}
	w.categories[name] = struct{}{}
}

// HasCategory reports whether the exact category name is registered.
func (w *Wallet) HasCategory(name string) bool {
	_, ok := w.categories[name]
	return ok
}

// Categories returns the registered category names sorted ascending.
func (w *Wallet) Categories() []string {
	out := make([]string, 0, len(w.categories))
	for c := range w.categories {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// SetBudget assigns a spending limit to a category, replacing any prior
// value. Category existence is checked one layer up.
func (w *Wallet) SetBudget(category string, limit decimal.Decimal) {
	w.budgets[category] = limit
}

// Budget returns the limit for a category, if one is set.
func (w *Wallet) Budget(category string) (decimal.Decimal, bool) {
	limit, ok := w.budgets[category]
	return limit, ok
}

// Budgets returns a copy of the category -> limit map.
func (w *Wallet) Budgets() map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal, len(w.budgets))
	for c, l := range w.budgets {
		out[c] = l
	}
	return out
}

// AddTransaction appends a transaction. Insertion order is preserved
// for iteration but carries no meaning beyond that.
func (w *Wallet) AddTransaction(tx Transaction) {
	w.transactions = append(w.transactions, tx)
}

// Transactions returns a copy of the transaction list.
func (w *Wallet) Transactions() []Transaction {
	out := make([]Transaction, len(w.transactions))
	copy(out, w.transactions)
	return out
}

// Balance recomputes income minus expense over all transactions.
// The wallet never caches this; personal-scale data keeps the scan cheap.
func (w *Wallet) Balance() decimal.Decimal {
	balance := decimal.Zero
	for _, tx := range w.transactions {
		switch tx.Kind {
		case KindIncome:
			balance = balance.Add(tx.Amount)
		case KindExpense:
			balance = balance.Sub(tx.Amount)
		}
	}
	return balance
}
