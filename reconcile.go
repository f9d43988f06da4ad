package banklet

import (
	"slices"
	"strings"

	"github.com/jvogel/banklet/bank"
)

// appendRows appends freshly parsed export rows to the transaction table.
//
// Rows are appended verbatim, with no deduplication against existing rows:
// importing the same export twice duplicates its transactions. That is the
// documented contract, not an accident; a fingerprint-based dedup would
// also swallow legitimate same-day same-amount movements.
func (l *Ledger) appendRows(rows []bank.Row) {
	for _, r := range rows {
		l.Transactions = append(l.Transactions, Transaction{
			Date:      r.Date,
			Amount:    r.Amount,
			Recipient: r.Recipient,
		})
	}
}

// growMapping creates a blank mapping row for every distinct recipient in
// the transaction table that has none yet. Existing rows are never touched
// and never removed, even when their recipient no longer appears in any
// transaction: manually curated classification survives data pruning.
// The table is kept sorted by recipient for stable output.
func (l *Ledger) growMapping() {
	known := make(map[string]struct{}, len(l.Mappings))
	for _, m := range l.Mappings {
		known[m.Recipient] = struct{}{}
	}
	for _, tx := range l.Transactions {
		if _, ok := known[tx.Recipient]; ok {
			continue
		}
		known[tx.Recipient] = struct{}{}
		l.Mappings = append(l.Mappings, Mapping{Recipient: tx.Recipient})
	}
	slices.SortFunc(l.Mappings, func(a, b Mapping) int {
		return strings.Compare(a.Recipient, b.Recipient)
	})
}

// remap replaces every transaction's mapped fields by a left join against
// the mapping table on recipient. The join is redone from scratch on every
// pass; mapped fields are never incrementally patched, so re-running with
// an unchanged mapping table is idempotent. Transactions without a mapping
// row get nil mapped fields.
func (l *Ledger) remap() {
	byRecipient := make(map[string]Mapping, len(l.Mappings))
	for _, m := range l.Mappings {
		byRecipient[m.Recipient] = m
	}
	for i := range l.Transactions {
		tx := &l.Transactions[i]
		m, ok := byRecipient[tx.Recipient]
		if !ok {
			tx.RecipientClean = nil
			tx.Label1, tx.Label2, tx.Label3 = nil, nil, nil
			tx.Occurrence = nil
			continue
		}
		tx.RecipientClean = copyPtr(m.RecipientClean)
		tx.Label1 = copyPtr(m.Label1)
		tx.Label2 = copyPtr(m.Label2)
		tx.Label3 = copyPtr(m.Label3)
		tx.Occurrence = ptr(m.Occurrence)
	}
}

// copyPtr clones an optional value so a transaction never aliases the
// mapping table's memory.
func copyPtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
