package renderer

import (
	"slices"
	"strings"

	"github.com/jvogel/banklet"
)

// HistoryReport is the view data for the balance history report.
type HistoryReport struct {
	Currency string
	Entries  []historyRow
	Labels   []labelRow
}

type historyRow struct {
	Date    string
	Amount  string
	Balance string
}

type labelRow struct {
	Name  string
	Total string
}

// History renders the balance history and a per-label total of the
// coalesced view as a markdown report.
func History(entries []banklet.HistoryEntry, coalesced []banklet.Coalesced, currency string) string {
	r := HistoryReport{Currency: currency}

	for _, e := range entries {
		r.Entries = append(r.Entries, historyRow{
			Date:    e.Date.String(),
			Amount:  banklet.M(e.Amount, currency).SignedString(),
			Balance: banklet.M(e.Balance, currency).String(),
		})
	}
	r.Labels = labelTotals(coalesced, currency)

	partials := map[string]string{
		"history_labels": "templates/history_labels.md",
	}
	return renderTemplate("history", "templates/history.md", partials, &r)
}

// labelTotals sums the coalesced amounts per label1, rows without a label
// grouped under "(unmapped)". Rows are sorted by label for stable output.
func labelTotals(coalesced []banklet.Coalesced, currency string) []labelRow {
	byLabel := make(map[string][]banklet.Coalesced)
	for _, c := range coalesced {
		name := "(unmapped)"
		if c.Label1 != nil && *c.Label1 != "" {
			name = *c.Label1
		}
		byLabel[name] = append(byLabel[name], c)
	}

	names := make([]string, 0, len(byLabel))
	for name := range byLabel {
		names = append(names, name)
	}
	slices.SortFunc(names, strings.Compare)

	rows := make([]labelRow, 0, len(names))
	for _, name := range names {
		total := byLabel[name][0].Amount
		for _, c := range byLabel[name][1:] {
			total = total.Add(c.Amount)
		}
		rows = append(rows, labelRow{Name: name, Total: banklet.M(total, currency).SignedString()})
	}
	return rows
}
