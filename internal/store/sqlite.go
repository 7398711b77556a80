package store

import (
	"database/sql"
	"embed"
	"os"
	"path/filepath"
	"time"

	"github.com/golang-migrate/migrate/v4"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/shopspring/decimal"
	_ "modernc.org/sqlite"

	"github.com/finman-cli/finman/internal/errs"
	"github.com/finman-cli/finman/internal/model"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// SQLiteStore is a WalletStore backed by a single SQLite database.
// Save rewrites the wallet wholesale inside one transaction, which
// keeps the contract identical to the JSON store at personal-data scale.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (or creates) the database at dbPath and applies
// pending schema migrations.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, errs.Wrap(errs.KindIOFailure, err, "creating db dir")
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errs.Wrap(errs.KindIOFailure, err, "opening sqlite database")
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, errs.Wrap(errs.KindIOFailure, err, "pinging sqlite database")
	}

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, err
	}
	return &SQLiteStore{db: db}, nil
}

// Close releases the database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// GetOrCreate implements WalletStore.
func (s *SQLiteStore) GetOrCreate(login string) (*model.Wallet, error) {
	w := model.NewWallet(login)

	rows, err := s.db.Query(`SELECT name FROM categories WHERE owner = ?`, login)
	if err != nil {
		return nil, errs.Wrap(errs.KindIOFailure, err, "loading categories")
	}
	defer rows.Close()
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, errs.Wrap(errs.KindIOFailure, err, "scanning category")
		}
		w.AddCategory(name)
	}
	if err := rows.Err(); err != nil {
		return nil, errs.Wrap(errs.KindIOFailure, err, "loading categories")
	}

	budgetRows, err := s.db.Query(`SELECT category, limit_amount FROM budgets WHERE owner = ?`, login)
	if err != nil {
		return nil, errs.Wrap(errs.KindIOFailure, err, "loading budgets")
	}
	defer budgetRows.Close()
	for budgetRows.Next() {
		var category, raw string
		if err := budgetRows.Scan(&category, &raw); err != nil {
			return nil, errs.Wrap(errs.KindIOFailure, err, "scanning budget")
		}
		limit, err := decimal.NewFromString(raw)
		if err != nil {
			return nil, errs.Wrap(errs.KindIOFailure, err, "budget %q: bad limit %q", category, raw)
		}
		w.SetBudget(category, limit)
	}
	if err := budgetRows.Err(); err != nil {
		return nil, errs.Wrap(errs.KindIOFailure, err, "loading budgets")
	}

	txRows, err := s.db.Query(
		`SELECT id, kind, category, amount, tx_date, comment
		   FROM transactions WHERE owner = ? ORDER BY seq`, login)
	if err != nil {
		return nil, errs.Wrap(errs.KindIOFailure, err, "loading transactions")
	}
	defer txRows.Close()
	for txRows.Next() {
		var id, kind, category, rawAmount, rawDate, comment string
		if err := txRows.Scan(&id, &kind, &category, &rawAmount, &rawDate, &comment); err != nil {
			return nil, errs.Wrap(errs.KindIOFailure, err, "scanning transaction")
		}
		amount, err := decimal.NewFromString(rawAmount)
		if err != nil {
			return nil, errs.Wrap(errs.KindIOFailure, err, "transaction %s: bad amount %q", id, rawAmount)
		}
		day, err := time.Parse(dateFormat, rawDate)
		if err != nil {
			return nil, errs.Wrap(errs.KindIOFailure, err, "transaction %s: bad date %q", id, rawDate)
		}
		w.AddTransaction(model.Transaction{
			ID:       id,
			Kind:     model.Kind(kind),
			Category: category,
			Amount:   amount,
			Date:     day,
			Comment:  comment,
		})
	}
	if err := txRows.Err(); err != nil {
		return nil, errs.Wrap(errs.KindIOFailure, err, "loading transactions")
	}

	return w, nil
}

// Save implements WalletStore.
func (s *SQLiteStore) Save(w *model.Wallet) error {
	tx, err := s.db.Begin()
	if err != nil {
		return errs.Wrap(errs.KindIOFailure, err, "beginning save")
	}
	defer tx.Rollback()

	owner := w.Owner()
	for _, stmt := range []string{
		`DELETE FROM transactions WHERE owner = ?`,
		`DELETE FROM budgets WHERE owner = ?`,
		`DELETE FROM categories WHERE owner = ?`,
		`DELETE FROM wallets WHERE owner = ?`,
	} {
		if _, err := tx.Exec(stmt, owner); err != nil {
			return errs.Wrap(errs.KindIOFailure, err, "clearing wallet rows")
		}
	}

	if _, err := tx.Exec(`INSERT INTO wallets (owner) VALUES (?)`, owner); err != nil {
		return errs.Wrap(errs.KindIOFailure, err, "inserting wallet")
	}
	for _, name := range w.Categories() {
		if _, err := tx.Exec(`INSERT INTO categories (owner, name) VALUES (?, ?)`, owner, name); err != nil {
			return errs.Wrap(errs.KindIOFailure, err, "inserting category %q", name)
		}
	}
	for category, limit := range w.Budgets() {
		if _, err := tx.Exec(
			`INSERT INTO budgets (owner, category, limit_amount) VALUES (?, ?, ?)`,
			owner, category, limit.String()); err != nil {
			return errs.Wrap(errs.KindIOFailure, err, "inserting budget %q", category)
		}
	}
	for seq, t := range w.Transactions() {
		if _, err := tx.Exec(
			`INSERT INTO transactions (id, owner, seq, kind, category, amount, tx_date, comment)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			t.ID, owner, seq, string(t.Kind), t.Category, t.Amount.String(),
			t.Date.Format(dateFormat), t.Comment); err != nil {
			return errs.Wrap(errs.KindIOFailure, err, "inserting transaction %s", t.ID)
		}
	}

	if err := tx.Commit(); err != nil {
		return errs.Wrap(errs.KindIOFailure, err, "committing save")
	}
	return nil
}

func runMigrations(db *sql.DB) error {
	driver, err := migratesqlite.WithInstance(db, &migratesqlite.Config{})
	if err != nil {
		return errs.Wrap(errs.KindIOFailure, err, "creating migration driver")
	}
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return errs.Wrap(errs.KindIOFailure, err, "loading migrations")
	}
	m, err := migrate.NewWithInstance("iofs", src, "sqlite", driver)
	if err != nil {
		return errs.Wrap(errs.KindIOFailure, err, "creating migrator")
	}
	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return errs.Wrap(errs.KindIOFailure, err, "applying migrations")
	}
	return nil
}
