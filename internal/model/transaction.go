package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Kind classifies a transaction as money coming in or going out.
type Kind string

const (
	KindIncome  Kind = "income"
	KindExpense Kind = "expense"
)

// Transaction is one immutable ledger operation. Records are never
// edited or deleted after creation.
type Transaction struct {
	ID       string
	Kind     Kind
	Category string
	Amount   decimal.Decimal // strictly positive
	Date     time.Time       // calendar date at midnight UTC
	Comment  string
}

// NewTransaction creates a transaction with a fresh unique ID.
func NewTransaction(kind Kind, category string, amount decimal.Decimal, date time.Time, comment string) Transaction {
	return Transaction{
		ID:       uuid.NewString(),
		Kind:     kind,
		Category: category,
		Amount:   amount,
		Date:     Day(date),
		Comment:  comment,
	}
}

// Day truncates a timestamp to its calendar date at midnight UTC.
// All date comparisons in the ledger operate on whole days.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
