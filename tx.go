package banklet

import (
	"github.com/jvogel/banklet/date"
	"github.com/shopspring/decimal"
)

// Transaction is one financial movement in the ledger.
//
// The mapped fields are always rebuilt wholesale from the mapping table
// during reconciliation; a transaction never remembers a stale mapped value
// across runs. The custom fields are user-authored overrides, persisted per
// row and never touched by reconciliation. Nullable columns are pointers so
// that a present zero still counts as a value when coalescing.
type Transaction struct {
	Date      date.Date
	Amount    decimal.Decimal // signed; positive income, negative expense
	Recipient string          // raw counterparty name, join key into the mapping table

	// Mapped fields, derived from the mapping table.
	RecipientClean *string
	Label1         *string
	Label2         *string
	Label3         *string
	Occurrence     *int

	// Custom overrides.
	DateCustom           *date.Date
	AmountCustom         *decimal.Decimal
	RecipientCleanCustom *string
	Label1Custom         *string
	Label2Custom         *string
	Label3Custom         *string
	OccurrenceCustom     *int
}

// Mapping is the user-curated classification for one recipient.
//
// Rows are created the first time a recipient appears and are never
// deleted, even when no transaction references the recipient anymore.
type Mapping struct {
	Recipient      string // unique key
	RecipientClean *string
	Label1         *string
	Label2         *string
	Label3         *string
	// Occurrence encodes recurring spread: 0 one-off, +N spread forward
	// over N months from the date, -N spread over N months ending at it.
	Occurrence int
}

// Classified reports whether the user has curated this mapping row: any
// clean name or label counts, a row with only a label2 or label3 is not
// blank.
func (m Mapping) Classified() bool {
	return m.RecipientClean != nil || m.Label1 != nil || m.Label2 != nil || m.Label3 != nil
}

// Metadata is the singleton account record. The starting balance is
// computed once at first import and read back ever after; recomputing it
// would double-count already merged history.
type Metadata struct {
	StartingBalance decimal.Decimal
	Bank            string
}

// Coalesced is one row of the derived view where each field is the user's
// custom value when present, else the base or mapped value. The recipient
// column holds the mapped clean name, not the raw counterparty.
type Coalesced struct {
	Date       date.Date
	Amount     decimal.Decimal
	Recipient  *string
	Label1     *string
	Label2     *string
	Label3     *string
	Occurrence *int
}

// HistoryEntry is one day of the balance history: the net amount moved that
// day and the cumulative balance including the starting balance.
type HistoryEntry struct {
	Date    date.Date
	Amount  decimal.Decimal
	Balance decimal.Decimal
}

// small pointer helpers used when building rows and tests.

func ptr[T any](v T) *T { return &v }

func derefEq[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
