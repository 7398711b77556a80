package store

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finman-cli/finman/internal/errs"
	"github.com/finman-cli/finman/internal/model"
)

const dateFormat = "2006-01-02"

// Snapshot is the serialized, self-contained form of a wallet. It is
// what the JSON store writes per account and what snapshot export and
// import exchange.
type Snapshot struct {
	Owner        string                     `json:"owner"`
	Categories   []string                   `json:"categories"`
	Budgets      map[string]decimal.Decimal `json:"budgets"`
	Transactions []TransactionSnapshot      `json:"transactions"`
}

// TransactionSnapshot is one transaction inside a Snapshot. The wallet
// store keeps the ID so identities survive reloads; exported snapshots
// strip it and an import mints fresh ones.
type TransactionSnapshot struct {
	ID       string          `json:"id,omitempty"`
	Kind     model.Kind      `json:"kind"`
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
	Date     string          `json:"date"`
	Comment  string          `json:"comment,omitempty"`
}

// TakeSnapshot captures a wallet's full state.
func TakeSnapshot(w *model.Wallet) Snapshot {
	txs := w.Transactions()
	snap := Snapshot{
		Owner:        w.Owner(),
		Categories:   w.Categories(),
		Budgets:      w.Budgets(),
		Transactions: make([]TransactionSnapshot, 0, len(txs)),
	}
	for _, tx := range txs {
		snap.Transactions = append(snap.Transactions, TransactionSnapshot{
			ID:       tx.ID,
			Kind:     tx.Kind,
			Category: tx.Category,
			Amount:   tx.Amount,
			Date:     tx.Date.Format(dateFormat),
			Comment:  tx.Comment,
		})
	}
	return snap
}

// Restore rebuilds a wallet for the given login from a snapshot.
// Transactions keep their recorded ID; entries without one get a fresh
// ID. Absent collections load as empty; blank category names and budget
// entries without a category are dropped.
func (s Snapshot) Restore(login string) (*model.Wallet, error) {
	w := model.NewWallet(login)

	for _, c := range s.Categories {
		w.AddCategory(c)
	}
	for category, limit := range s.Budgets {
		if category == "" {
			continue
		}
		w.SetBudget(category, limit)
	}
	for i, ts := range s.Transactions {
		day, err := time.Parse(dateFormat, ts.Date)
		if err != nil {
			return nil, errs.Wrap(errs.KindIOFailure, err, "snapshot transaction %d: bad date %q", i, ts.Date)
		}
		tx := model.NewTransaction(ts.Kind, ts.Category, ts.Amount, day, ts.Comment)
		if ts.ID != "" {
			tx.ID = ts.ID
		}
		w.AddTransaction(tx)
	}
	return w, nil
}
