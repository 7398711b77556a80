// Package advisor produces spending warnings after a transaction lands
// in a wallet. Warnings are advisory only; the mutation has already
// succeeded by the time they are computed.
package advisor

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/finman-cli/finman/internal/model"
)

// DefaultWarnRatio is the budget share at which a near-limit warning fires.
const DefaultWarnRatio = 0.8

// Advisor evaluates a wallet's state after an insertion.
type Advisor struct {
	warnRatio decimal.Decimal
}

// New creates an Advisor with the default near-limit threshold.
func New() *Advisor {
	return NewWithRatio(DefaultWarnRatio)
}

// NewWithRatio creates an Advisor warning once spending reaches
// ratio x limit. Ratios outside (0,1] fall back to the default.
func NewWithRatio(ratio float64) *Advisor {
	if ratio <= 0 || ratio > 1 {
		ratio = DefaultWarnRatio
	}
	return &Advisor{warnRatio: decimal.NewFromFloat(ratio)}
}

// Evaluate inspects the wallet right after a transaction was appended to
// the given category and returns zero or more warnings, ordered: the
// category's budget concern first (near-limit or over-budget, mutually
// exclusive), then the overall expenses-exceed-income concern.
//
// Budget checks run against lifetime totals, never a date window. This
// matches the interactive flow: the warning reacts to the operation just
// made, not to a report scope.
func (a *Advisor) Evaluate(w *model.Wallet, category string) []string {
	var warnings []string

	if limit, ok := w.Budget(category); ok {
		spent := decimal.Zero
		for _, tx := range w.Transactions() {
			if tx.Kind == model.KindExpense && tx.Category == category {
				spent = spent.Add(tx.Amount)
			}
		}
		remaining := limit.Sub(spent)

		if limit.IsPositive() {
			threshold := limit.Mul(a.warnRatio)
			if spent.GreaterThanOrEqual(threshold) && spent.LessThan(limit) {
				pct := spent.Div(limit).Mul(decimal.NewFromInt(100)).Round(0)
				warnings = append(warnings, fmt.Sprintf(
					"you have used %s%% of the '%s' budget; remaining: %s",
					pct, category, remaining.StringFixed(1)))
			}
		}

		if remaining.IsNegative() {
			warnings = append(warnings, fmt.Sprintf(
				"budget for '%s' exceeded by %s",
				category, remaining.Neg().StringFixed(1)))
		}
	}

	totalIncome := decimal.Zero
	totalExpense := decimal.Zero
	for _, tx := range w.Transactions() {
		switch tx.Kind {
		case model.KindIncome:
			totalIncome = totalIncome.Add(tx.Amount)
		case model.KindExpense:
			totalExpense = totalExpense.Add(tx.Amount)
		}
	}
	if totalExpense.GreaterThan(totalIncome) {
		warnings = append(warnings, fmt.Sprintf(
			"expenses exceed income (%s > %s)",
			totalExpense.StringFixed(1), totalIncome.StringFixed(1)))
	}

	return warnings
}
