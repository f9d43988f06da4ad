// Package bank reads bank export files into normalized transaction rows.
//
// Each supported bank format is a self-contained adapter behind the Adapter
// interface, selected by its format tag. Adding a bank means adding one
// adapter and one registry entry; the ledger core never branches on formats.
package bank

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/jvogel/banklet/date"
	"github.com/shopspring/decimal"
)

// ErrUnsupported reports a bank format tag that has no registered adapter.
var ErrUnsupported = errors.New("unsupported bank format")

// ErrEmptyExport reports an export file that parsed to zero transactions.
var ErrEmptyExport = errors.New("export contains no transactions")

// Row is one normalized transaction from a bank export.
type Row struct {
	Date      date.Date
	Recipient string
	Amount    decimal.Decimal
}

// Metadata holds the account facts derived from one export.
type Metadata struct {
	StartingBalance decimal.Decimal
	Format          string
}

// Adapter extracts normalized data from one bank's export format.
type Adapter interface {
	// Transactions parses all transaction rows from the raw export.
	Transactions(data []byte) ([]Row, error)
	// EndBalance parses the account balance declared by the export, if any.
	// ok is false when the format carries no balance.
	EndBalance(data []byte) (balance decimal.Decimal, ok bool, err error)
}

var adapters = map[string]Adapter{
	"dkb": dkbAdapter{},
	"sp":  spAdapter{},
}

// Formats lists all supported bank format tags in stable order.
func Formats() []string {
	return slices.Sorted(maps.Keys(adapters))
}

// For returns the adapter registered for the given format tag.
func For(format string) (Adapter, error) {
	a, ok := adapters[format]
	if !ok {
		return nil, fmt.Errorf("%w: %q (supported: %v)", ErrUnsupported, format, Formats())
	}
	return a, nil
}

// Transactions parses all transaction rows from a raw export in the given format.
// It fails with ErrEmptyExport when the export holds no transactions.
func Transactions(format string, data []byte) ([]Row, error) {
	a, err := For(format)
	if err != nil {
		return nil, err
	}
	rows, err := a.Transactions(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s export: %w", format, err)
	}
	if len(rows) == 0 {
		return nil, ErrEmptyExport
	}
	return rows, nil
}

// ParseMetadata derives account metadata from a raw export.
//
// When the format declares an end balance, the starting balance is that end
// balance minus the sum of all parsed amounts. Formats without a balance
// yield a starting balance of zero.
func ParseMetadata(format string, data []byte) (Metadata, error) {
	a, err := For(format)
	if err != nil {
		return Metadata{}, err
	}
	end, ok, err := a.EndBalance(data)
	if err != nil {
		return Metadata{}, fmt.Errorf("parsing %s balance: %w", format, err)
	}
	start := decimal.Zero
	if ok {
		rows, err := Transactions(format, data)
		if err != nil {
			return Metadata{}, err
		}
		sum := decimal.Zero
		for _, r := range rows {
			sum = sum.Add(r.Amount)
		}
		start = end.Sub(sum)
	}
	return Metadata{StartingBalance: start, Format: format}, nil
}
