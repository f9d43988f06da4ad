package banklet

import (
	"fmt"
	"log"

	"github.com/jvogel/banklet/bank"
	"github.com/shopspring/decimal"
)

// Ledger aggregates the persisted ground-truth tables and the views
// derived from them. It is loaded wholesale from an output directory,
// mutated in memory, and written back wholesale; there is no incremental
// persistence and no locking, the tool owns the directory for the length
// of one invocation.
type Ledger struct {
	dir  string
	bank string

	Transactions []Transaction
	Mappings     []Mapping
	Metadata     *Metadata // nil until bootstrapped from a first import

	// Derived views, rebuilt by Update.
	Coalesced   []Coalesced
	Distributed []Coalesced
	History     []HistoryEntry
}

// Open loads a ledger from dir. Missing files mean an empty (bootstrap)
// ledger, not an error; structurally broken files are fatal.
//
// bankFormat selects the export adapter for subsequent imports. It may be
// empty when the persisted metadata already records the bank; with neither
// Open fails with ErrNoMetadata.
func Open(dir, bankFormat string) (*Ledger, error) {
	l := &Ledger{dir: dir}
	if err := l.readExisting(); err != nil {
		return nil, err
	}

	if bankFormat == "" {
		if l.Metadata == nil {
			return nil, ErrNoMetadata
		}
		bankFormat = l.Metadata.Bank
	}
	if _, err := bank.For(bankFormat); err != nil {
		return nil, err
	}
	l.bank = bankFormat
	return l, nil
}

// Dir returns the output directory the ledger was opened from.
func (l *Ledger) Dir() string { return l.dir }

// Bank returns the bank format the ledger operates with.
func (l *Ledger) Bank() string { return l.bank }

// Import parses a raw export and merges it into the ledger: rows are
// appended verbatim and, on the very first import, the account metadata is
// bootstrapped from the export. It does not derive the views; call Update.
//
// The transaction table is left untouched when parsing fails, so a bad or
// empty export never half-merges.
func (l *Ledger) Import(data []byte) error {
	rows, err := bank.Transactions(l.bank, data)
	if err != nil {
		return err
	}

	if l.Metadata == nil {
		// Bootstrap: the starting balance is derived exactly once, from
		// this export. Deriving it again later would double-count the
		// history already merged.
		md, err := bank.ParseMetadata(l.bank, data)
		if err != nil {
			return err
		}
		l.Metadata = &Metadata{StartingBalance: md.StartingBalance, Bank: md.Format}
		log.Printf("bootstrapped %s metadata: starting balance %s", md.Format, md.StartingBalance.StringFixed(2))
	}

	l.appendRows(rows)
	return nil
}

// Update runs the full derivation pipeline: mapping growth, the wholesale
// remap join, and the three derived views. All views are recomputed from
// the complete current state on every call.
func (l *Ledger) Update() {
	l.growMapping()
	l.remap()
	l.Coalesced = Coalesce(l.Transactions)
	l.Distributed = Distribute(l.Coalesced)
	l.History = BuildHistory(l.Transactions, l.startingBalance())
}

func (l *Ledger) startingBalance() decimal.Decimal {
	if l.Metadata == nil {
		return decimal.Zero
	}
	return l.Metadata.StartingBalance
}

// Write persists all six tables to the output directory, rewriting the
// derived ones in full. Writes are per-file; a crash mid-write can leave
// the directory inconsistent, there is no multi-file commit.
func (l *Ledger) Write() error {
	if err := l.write(); err != nil {
		return fmt.Errorf("writing ledger to %s: %w", l.dir, err)
	}
	return nil
}
