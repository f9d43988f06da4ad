package banklet

import (
	"maps"
	"slices"

	"github.com/jvogel/banklet/date"
	"github.com/shopspring/decimal"
)

// BuildHistory derives the daily balance series from the base transaction
// table: transactions grouped by date, amounts summed per day, and a
// cumulative balance seeded with the starting balance.
//
// The history is always rebuilt from the full base table. Only the base
// table corresponds 1:1 to money that actually moved; coalescing and
// distributing re-date and synthesize rows, so a cumulative sum over them
// would be wrong. And a cumulative sum cannot be resumed from a snapshot,
// so there is no incremental variant.
func BuildHistory(txs []Transaction, startingBalance decimal.Decimal) []HistoryEntry {
	daily := make(map[date.Date]decimal.Decimal)
	for _, tx := range txs {
		daily[tx.Date] = daily[tx.Date].Add(tx.Amount)
	}

	days := slices.Collect(maps.Keys(daily))
	slices.SortFunc(days, func(a, b date.Date) int {
		switch {
		case a.Before(b):
			return -1
		case a.After(b):
			return 1
		default:
			return 0
		}
	})

	entries := make([]HistoryEntry, 0, len(days))
	balance := startingBalance
	for _, on := range days {
		balance = balance.Add(daily[on])
		entries = append(entries, HistoryEntry{Date: on, Amount: daily[on], Balance: balance})
	}
	return entries
}
