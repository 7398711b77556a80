// Package report renders a wallet into the multi-section text report
// shown by the stats command and written by the report command.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finman-cli/finman/internal/errs"
	"github.com/finman-cli/finman/internal/model"
	"github.com/finman-cli/finman/internal/stats"
)

const dateFormat = "2006-01-02"

// Build renders the full report for a wallet, optionally scoped to a
// date range. The balance line is always the lifetime balance; only the
// totals, category breakdowns, and budget spending honor the range.
func Build(w *model.Wallet, r stats.Range) (string, error) {
	totalIncome, err := stats.TotalIncome(w, r)
	if err != nil {
		return "", err
	}
	totalExpense, err := stats.TotalExpense(w, r)
	if err != nil {
		return "", err
	}
	incomeByCat, err := stats.ByCategory(w, model.KindIncome, r)
	if err != nil {
		return "", err
	}
	expenseByCat, err := stats.ByCategory(w, model.KindExpense, r)
	if err != nil {
		return "", err
	}
	budgets, err := stats.Budgets(w, r)
	if err != nil {
		return "", err
	}

	var b strings.Builder

	if !r.IsOpen() {
		fmt.Fprintf(&b, "Period: %s — %s\n\n", formatBound(r.From), formatBound(r.To))
	}

	fmt.Fprintf(&b, "Total income: %s\n", FormatMoney(totalIncome))
	b.WriteString("Income by category:\n")
	writeCategoryLines(&b, incomeByCat)

	fmt.Fprintf(&b, "\nTotal expense: %s\n", FormatMoney(totalExpense))
	b.WriteString("Expense by category:\n")
	writeCategoryLines(&b, expenseByCat)

	b.WriteString("\nBudget by category:\n")
	if len(budgets) == 0 {
		b.WriteString("- (no budgets set)\n")
	} else {
		for _, category := range sortedKeys(budgets) {
			st := budgets[category]
			fmt.Fprintf(&b, "- %s: %s, remaining: %s", category, FormatMoney(st.Limit), FormatMoney(st.Remaining))
			if st.Remaining.IsNegative() {
				b.WriteString(" (EXCEEDED)")
			}
			b.WriteString("\n")
		}
	}

	fmt.Fprintf(&b, "\nBalance: %s\n", FormatMoney(w.Balance()))

	if totalExpense.GreaterThan(totalIncome) {
		fmt.Fprintf(&b, "\nWARNING: expenses exceed income (%s > %s)\n",
			FormatMoney(totalExpense), FormatMoney(totalIncome))
	}

	return b.String(), nil
}

// SaveToFile writes a report to path, creating parent directories.
func SaveToFile(path, content string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errs.Wrap(errs.KindIOFailure, err, "creating report dir")
		}
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return errs.Wrap(errs.KindIOFailure, err, "writing report %s", path)
	}
	return nil
}

// FormatMoney renders an amount with thousands separators and exactly
// one decimal digit, e.g. 63000 -> "63,000.0".
func FormatMoney(d decimal.Decimal) string {
	s := d.StringFixed(1)

	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	dot := strings.IndexByte(s, '.')
	intPart, fracPart := s[:dot], s[dot:]

	var grouped strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			grouped.WriteByte(',')
		}
		grouped.WriteRune(r)
	}

	out := grouped.String() + fracPart
	if neg {
		out = "-" + out
	}
	return out
}

func writeCategoryLines(b *strings.Builder, byCat map[string]decimal.Decimal) {
	if len(byCat) == 0 {
		b.WriteString("- (no data)\n")
		return
	}
	for _, category := range sortedKeys(byCat) {
		fmt.Fprintf(b, "- %s: %s\n", category, FormatMoney(byCat[category]))
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// formatBound renders a range bound, using an ellipsis for an open side.
func formatBound(t *time.Time) string {
	if t == nil {
		return "..."
	}
	return t.Format(dateFormat)
}
