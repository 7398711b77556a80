package stats

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finman-cli/finman/internal/errs"
	"github.com/finman-cli/finman/internal/model"
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

func datePtr(year, month, day int) *time.Time {
	d := date(year, month, day)
	return &d
}

func testWallet() *model.Wallet {
	w := model.NewWallet("ivan")
	w.AddCategory("Food")
	w.AddCategory("Salary")
	w.AddCategory("Transport")
	w.AddTransaction(model.NewTransaction(model.KindExpense, "Food", dec("300"), date(2025, 12, 1), ""))
	w.AddTransaction(model.NewTransaction(model.KindExpense, "Food", dec("500"), date(2025, 12, 2), "coffee"))
	w.AddTransaction(model.NewTransaction(model.KindIncome, "Salary", dec("20000"), date(2025, 12, 1), ""))
	return w
}

func TestTotal_NoFilter(t *testing.T) {
	w := testWallet()

	income, err := Total(w, model.KindIncome, Filter{})
	require.NoError(t, err)
	assert.True(t, income.Equal(dec("20000")))

	expense, err := Total(w, model.KindExpense, Filter{})
	require.NoError(t, err)
	assert.True(t, expense.Equal(dec("800")))
}

func TestTotal_DateRangeInclusive(t *testing.T) {
	w := testWallet()

	// Bounds land exactly on transaction dates; both ends are inclusive.
	expense, err := Total(w, model.KindExpense, Filter{Range: Range{From: datePtr(2025, 12, 2), To: datePtr(2025, 12, 2)}})
	require.NoError(t, err)
	assert.True(t, expense.Equal(dec("500")))

	expense, err = Total(w, model.KindExpense, Filter{Range: Range{From: datePtr(2025, 12, 1), To: datePtr(2025, 12, 2)}})
	require.NoError(t, err)
	assert.True(t, expense.Equal(dec("800")))
}

func TestTotal_OpenBounds(t *testing.T) {
	w := testWallet()

	expense, err := Total(w, model.KindExpense, Filter{Range: Range{From: datePtr(2025, 12, 2)}})
	require.NoError(t, err)
	assert.True(t, expense.Equal(dec("500")))

	expense, err = Total(w, model.KindExpense, Filter{Range: Range{To: datePtr(2025, 12, 1)}})
	require.NoError(t, err)
	assert.True(t, expense.Equal(dec("300")))
}

func TestTotal_InvalidRange(t *testing.T) {
	w := testWallet()

	_, err := Total(w, model.KindExpense, Filter{Range: Range{From: datePtr(2025, 12, 31), To: datePtr(2025, 12, 1)}})
	require.Error(t, err)
	assert.True(t, errs.IsKind(err, errs.KindInvalidDateRange))
}

func TestTotal_CategoryFilter(t *testing.T) {
	w := testWallet()

	expense, err := Total(w, model.KindExpense, Filter{Categories: []string{" Food "}})
	require.NoError(t, err)
	assert.True(t, expense.Equal(dec("800")))

	// Registered category with no expenses sums to zero.
	expense, err = Total(w, model.KindExpense, Filter{Categories: []string{"Transport"}})
	require.NoError(t, err)
	assert.True(t, expense.IsZero())
}

func TestTotal_CategoriesNotFound(t *testing.T) {
	w := testWallet()

	_, err := Total(w, model.KindExpense, Filter{Categories: []string{"Pets", "Food", "Pets", "Travel"}})
	require.Error(t, err)
	assert.True(t, errs.IsKind(err, errs.KindCategoriesNotFound))
	// Missing names deduplicated, first-occurrence order.
	assert.Contains(t, err.Error(), "Pets, Travel")
}

func TestTotal_BlankCategoriesIgnored(t *testing.T) {
	w := testWallet()

	expense, err := Total(w, model.KindExpense, Filter{Categories: []string{"", "   "}})
	require.NoError(t, err)
	assert.True(t, expense.Equal(dec("800")), "all-blank filter means no filter")
}

func TestByCategory(t *testing.T) {
	w := testWallet()

	byCat, err := ByCategory(w, model.KindExpense, Range{})
	require.NoError(t, err)
	require.Len(t, byCat, 1)
	assert.True(t, byCat["Food"].Equal(dec("800")))

	// Transport has no transactions: absent, not zero.
	_, ok := byCat["Transport"]
	assert.False(t, ok)
}

func TestByCategory_DateScoped(t *testing.T) {
	w := testWallet()

	byCat, err := ByCategory(w, model.KindExpense, Range{To: datePtr(2025, 12, 1)})
	require.NoError(t, err)
	assert.True(t, byCat["Food"].Equal(dec("300")))
}

func TestBudgets(t *testing.T) {
	w := testWallet()
	w.SetBudget("Food", dec("4000"))

	status, err := Budgets(w, Range{})
	require.NoError(t, err)
	require.Len(t, status, 1)

	food := status["Food"]
	assert.True(t, food.Limit.Equal(dec("4000")))
	assert.True(t, food.Spent.Equal(dec("800")))
	assert.True(t, food.Remaining.Equal(dec("3200")))
}

func TestBudgets_CategoryWithoutTransactions(t *testing.T) {
	w := testWallet()
	w.SetBudget("Transport", dec("1000"))

	status, err := Budgets(w, Range{})
	require.NoError(t, err)

	tr, ok := status["Transport"]
	require.True(t, ok, "budgeted categories appear even without transactions")
	assert.True(t, tr.Spent.IsZero())
	assert.True(t, tr.Remaining.Equal(dec("1000")))
}

func TestBudgets_RangeScopesSpendingOnly(t *testing.T) {
	w := testWallet()
	w.SetBudget("Food", dec("4000"))

	status, err := Budgets(w, Range{From: datePtr(2025, 12, 2)})
	require.NoError(t, err)

	food := status["Food"]
	assert.True(t, food.Limit.Equal(dec("4000")), "limit is never date-scoped")
	assert.True(t, food.Spent.Equal(dec("500")))
	assert.True(t, food.Remaining.Equal(dec("3500")))
}

func TestBalanceMatchesTotals(t *testing.T) {
	w := testWallet()

	income, err := TotalIncome(w, Range{})
	require.NoError(t, err)
	expense, err := TotalExpense(w, Range{})
	require.NoError(t, err)

	assert.True(t, w.Balance().Equal(income.Sub(expense)))
}

func TestEmptyWallet(t *testing.T) {
	w := model.NewWallet("ivan")

	income, err := TotalIncome(w, Range{})
	require.NoError(t, err)
	assert.True(t, income.IsZero())

	byCat, err := ByCategory(w, model.KindExpense, Range{})
	require.NoError(t, err)
	assert.Empty(t, byCat)

	status, err := Budgets(w, Range{})
	require.NoError(t, err)
	assert.Empty(t, status)
}
