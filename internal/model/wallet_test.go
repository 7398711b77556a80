package model

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func date(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

func TestAddCategory_TrimsAndDeduplicates(t *testing.T) {
	w := NewWallet("ivan")

	w.AddCategory("  Food ")
	w.AddCategory("Food")
	w.AddCategory("")
	w.AddCategory("   ")

	assert.Equal(t, []string{"Food"}, w.Categories())
	assert.True(t, w.HasCategory("Food"))
	assert.False(t, w.HasCategory("food"), "lookup is case-sensitive")
}

func TestSetBudget_ReplacesPriorValue(t *testing.T) {
	w := NewWallet("ivan")
	w.AddCategory("Food")

	w.SetBudget("Food", dec("4000"))
	w.SetBudget("Food", dec("2500"))

	limit, ok := w.Budget("Food")
	require.True(t, ok)
	assert.True(t, limit.Equal(dec("2500")))

	_, ok = w.Budget("Rent")
	assert.False(t, ok)
}

func TestBalance_EmptyWallet(t *testing.T) {
	w := NewWallet("ivan")
	assert.True(t, w.Balance().IsZero())
}

func TestBalance_IncomeMinusExpense(t *testing.T) {
	w := NewWallet("ivan")
	w.AddCategory("Salary")
	w.AddCategory("Food")

	w.AddTransaction(NewTransaction(KindIncome, "Salary", dec("20000"), date(2025, 12, 1), ""))
	w.AddTransaction(NewTransaction(KindExpense, "Food", dec("300"), date(2025, 12, 1), ""))
	w.AddTransaction(NewTransaction(KindExpense, "Food", dec("500"), date(2025, 12, 2), "coffee"))

	assert.True(t, w.Balance().Equal(dec("19200")))
}

func TestNewTransaction_UniqueIDsAndDateTruncation(t *testing.T) {
	ts := time.Date(2025, 12, 1, 15, 42, 7, 0, time.UTC)

	a := NewTransaction(KindExpense, "Food", dec("10"), ts, "")
	b := NewTransaction(KindExpense, "Food", dec("10"), ts, "")

	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, date(2025, 12, 1), a.Date)
}

func TestTransactions_ReturnsCopy(t *testing.T) {
	w := NewWallet("ivan")
	w.AddCategory("Food")
	w.AddTransaction(NewTransaction(KindExpense, "Food", dec("10"), date(2025, 1, 1), ""))

	txs := w.Transactions()
	txs[0].Category = "Tampered"

	assert.Equal(t, "Food", w.Transactions()[0].Category)
}
