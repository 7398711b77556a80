// Package stats computes totals, per-category breakdowns, and budget
// status over a wallet. All functions are pure reads; they never mutate
// the wallet.
package stats

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finman-cli/finman/internal/errs"
	"github.com/finman-cli/finman/internal/model"
)

// Range bounds an inclusive calendar-date interval. A nil bound leaves
// that side open.
type Range struct {
	From *time.Time
	To   *time.Time
}

// IsOpen reports whether neither bound is set.
func (r Range) IsOpen() bool {
	return r.From == nil && r.To == nil
}

func (r Range) validate() error {
	if r.From != nil && r.To != nil && r.From.After(*r.To) {
		return errs.New(errs.KindInvalidDateRange, "invalid date range: from %s is after to %s",
			r.From.Format("2006-01-02"), r.To.Format("2006-01-02"))
	}
	return nil
}

func (r Range) contains(d time.Time) bool {
	if r.From != nil && d.Before(*r.From) {
		return false
	}
	if r.To != nil && d.After(*r.To) {
		return false
	}
	return true
}

// Filter restricts an aggregation to a date range and, optionally, to a
// subset of categories. Category entries are trimmed and blanks dropped
// before use; every remaining entry must exist in the wallet.
type Filter struct {
	Range
	Categories []string
}

// BudgetStatus describes one budgeted category: its limit, the expenses
// charged against it, and what is left.
type BudgetStatus struct {
	Limit     decimal.Decimal
	Spent     decimal.Decimal
	Remaining decimal.Decimal
}

// Total sums the amounts of transactions matching kind and filter.
func Total(w *model.Wallet, kind model.Kind, f Filter) (decimal.Decimal, error) {
	if err := f.Range.validate(); err != nil {
		return decimal.Zero, err
	}
	cats, err := normalizeCategories(w, f.Categories)
	if err != nil {
		return decimal.Zero, err
	}

	sum := decimal.Zero
	for _, tx := range w.Transactions() {
		if tx.Kind != kind || !f.Range.contains(tx.Date) {
			continue
		}
		if cats != nil {
			if _, ok := cats[tx.Category]; !ok {
				continue
			}
		}
		sum = sum.Add(tx.Amount)
	}
	return sum, nil
}

// TotalIncome sums income within the range.
func TotalIncome(w *model.Wallet, r Range) (decimal.Decimal, error) {
	return Total(w, model.KindIncome, Filter{Range: r})
}

// TotalExpense sums expenses within the range.
func TotalExpense(w *model.Wallet, r Range) (decimal.Decimal, error) {
	return Total(w, model.KindExpense, Filter{Range: r})
}

// ByCategory sums matching transactions per category. Categories with
// no matching transaction are absent from the result.
func ByCategory(w *model.Wallet, kind model.Kind, r Range) (map[string]decimal.Decimal, error) {
	if err := r.validate(); err != nil {
		return nil, err
	}

	out := make(map[string]decimal.Decimal)
	for _, tx := range w.Transactions() {
		if tx.Kind != kind || !r.contains(tx.Date) {
			continue
		}
		out[tx.Category] = out[tx.Category].Add(tx.Amount)
	}
	return out, nil
}

// Budgets reports the status of every budgeted category, whether or not
// it has transactions. The range scopes spending only; the limit always
// applies as-is. Categories without a budget entry are omitted even if
// they have expenses.
func Budgets(w *model.Wallet, r Range) (map[string]BudgetStatus, error) {
	if err := r.validate(); err != nil {
		return nil, err
	}

	spentByCat := make(map[string]decimal.Decimal)
	for _, tx := range w.Transactions() {
		if tx.Kind != model.KindExpense || !r.contains(tx.Date) {
			continue
		}
		spentByCat[tx.Category] = spentByCat[tx.Category].Add(tx.Amount)
	}

	out := make(map[string]BudgetStatus)
	for category, limit := range w.Budgets() {
		spent := spentByCat[category] // zero value when no expenses
		out[category] = BudgetStatus{
			Limit:     limit,
			Spent:     spent,
			Remaining: limit.Sub(spent),
		}
	}
	return out, nil
}

// normalizeCategories trims entries, drops blanks, and verifies the rest
// against the wallet's category set. Returns nil when no filter applies.
// Missing categories are reported deduplicated, in first-occurrence order.
func normalizeCategories(w *model.Wallet, categories []string) (map[string]struct{}, error) {
	if len(categories) == 0 {
		return nil, nil
	}

	set := make(map[string]struct{}, len(categories))
	var missing []string
	seen := make(map[string]struct{})
	for _, c := range categories {
		c = strings.TrimSpace(c)
		if c == "" {
			continue
		}
		set[c] = struct{}{}
		if !w.HasCategory(c) {
			if _, dup := seen[c]; !dup {
				seen[c] = struct{}{}
				missing = append(missing, c)
			}
		}
	}

	if len(missing) > 0 {
		return nil, errs.New(errs.KindCategoriesNotFound, "categories not found: %s", strings.Join(missing, ", "))
	}
	if len(set) == 0 {
		// Every entry was blank; treat as no filter.
		return nil, nil
	}
	return set, nil
}
