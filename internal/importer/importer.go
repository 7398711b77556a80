// Package importer parses CSV statements into ledger rows. Parsed rows
// are replayed through the wallet service, so imports obey the exact
// same validation and warning policy as hand-entered operations.
package importer

import (
	"io"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finman-cli/finman/internal/model"
)

// Row is one parsed statement line, ready to insert.
type Row struct {
	Date     time.Time
	Kind     model.Kind
	Category string
	Amount   decimal.Decimal // always positive; Kind carries the sign
	Comment  string
}

// Parser converts a CSV statement into Rows.
type Parser interface {
	Parse(r io.Reader) ([]Row, error)
	Format() string
}

// Registry holds named parsers.
type Registry struct {
	parsers map[string]Parser
}

// NewRegistry creates an empty parser registry.
func NewRegistry() *Registry {
	return &Registry{parsers: make(map[string]Parser)}
}

// Register adds a parser. Panics on duplicate format.
func (r *Registry) Register(p Parser) {
	key := strings.ToLower(p.Format())
	if _, ok := r.parsers[key]; ok {
		panic("duplicate parser format: " + key)
	}
	r.parsers[key] = p
}

// Get returns the parser for format, or nil.
func (r *Registry) Get(format string) Parser {
	return r.parsers[strings.ToLower(format)]
}

// Formats returns the registered format names, sorted.
func (r *Registry) Formats() []string {
	out := make([]string, 0, len(r.parsers))
	for k := range r.parsers {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// DefaultRegistry returns a registry with all built-in parsers.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(&LedgerParser{})
	r.Register(&BankParser{})
	return r
}
