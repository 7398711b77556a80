package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finman-cli/finman/internal/model"
)

// LedgerParser parses finman's own export format:
// date,kind,category,amount,comment with a header row.
type LedgerParser struct{}

const (
	ledgerDateFormat = "2006-01-02"
	ledgerNumFields  = 5
	ledgerColDate    = 0
	ledgerColKind    = 1
	ledgerColCat     = 2
	ledgerColAmount  = 3
	ledgerColComment = 4
)

// Format returns the parser name.
func (p *LedgerParser) Format() string { return "ledger" }

// Parse reads a ledger CSV and returns Rows.
func (p *LedgerParser) Parse(r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = ledgerNumFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading ledger CSV: %w", err)
	}
	if len(records) <= 1 {
		return nil, nil
	}

	var rows []Row
	for i, rec := range records[1:] {
		row, err := parseLedgerRow(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func parseLedgerRow(rec []string) (Row, error) {
	date, err := time.Parse(ledgerDateFormat, rec[ledgerColDate])
	if err != nil {
		return Row{}, fmt.Errorf("parsing date %q: %w", rec[ledgerColDate], err)
	}

	var kind model.Kind
	switch strings.ToLower(strings.TrimSpace(rec[ledgerColKind])) {
	case "income":
		kind = model.KindIncome
	case "expense":
		kind = model.KindExpense
	default:
		return Row{}, fmt.Errorf("unknown kind %q", rec[ledgerColKind])
	}

	amount, err := decimal.NewFromString(rec[ledgerColAmount])
	if err != nil {
		return Row{}, fmt.Errorf("parsing amount %q: %w", rec[ledgerColAmount], err)
	}

	return Row{
		Date:     date,
		Kind:     kind,
		Category: strings.TrimSpace(rec[ledgerColCat]),
		Amount:   amount,
		Comment:  strings.TrimSpace(rec[ledgerColComment]),
	}, nil
}
