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

// BankParser parses bank statement exports of the shape
// date,description,amount,category. Negative amounts are expenses,
// positive amounts income; the description becomes the comment.
type BankParser struct{}

const (
	bankDateFormat = "01/02/2006"
	bankNumFields  = 4
	bankColDate    = 0
	bankColDesc    = 1
	bankColAmount  = 2
	bankColCat     = 3
)

// Format returns the parser name.
func (p *BankParser) Format() string { return "bank" }

// Parse reads a bank CSV and returns Rows.
func (p *BankParser) Parse(r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = bankNumFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading bank CSV: %w", err)
	}
	if len(records) <= 1 {
		return nil, nil
	}

	var rows []Row
	for i, rec := range records[1:] {
		row, err := parseBankRow(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func parseBankRow(rec []string) (Row, error) {
	date, err := time.Parse(bankDateFormat, rec[bankColDate])
	if err != nil {
		return Row{}, fmt.Errorf("parsing date %q: %w", rec[bankColDate], err)
	}

	amount, err := decimal.NewFromString(rec[bankColAmount])
	if err != nil {
		return Row{}, fmt.Errorf("parsing amount %q: %w", rec[bankColAmount], err)
	}
	if amount.IsZero() {
		return Row{}, fmt.Errorf("zero amount")
	}

	kind := model.KindIncome
	if amount.IsNegative() {
		kind = model.KindExpense
		amount = amount.Neg()
	}

	return Row{
		Date:     date,
		Kind:     kind,
		Category: strings.TrimSpace(rec[bankColCat]),
		Amount:   amount,
		Comment:  strings.TrimSpace(rec[bankColDesc]),
	}, nil
}
