package banklet

import (
	"github.com/jvogel/banklet/date"
	"github.com/shopspring/decimal"
)

// Distribute expands recurring rows of the coalesced view into monthly
// installments.
//
// Rows with a nil occurrence or one in [-1, 1] pass through unchanged.
// Every other row becomes |occurrence| rows on consecutive month starts,
// each carrying amount/|occurrence|, with occurrence rewritten to ±1: the
// magnitude is consumed by the expansion. A positive occurrence anchors
// the series at the row's date going forward; a negative one ends the
// series at the row's date. Pass-through rows come first in the output,
// then the expanded ones.
func Distribute(rows []Coalesced) []Coalesced {
	out := make([]Coalesced, 0, len(rows))
	var expanded []Coalesced
	for _, r := range rows {
		if r.Occurrence == nil || (*r.Occurrence >= -1 && *r.Occurrence <= 1) {
			out = append(out, r)
			continue
		}
		expanded = append(expanded, expand(r)...)
	}
	return append(out, expanded...)
}

func expand(r Coalesced) []Coalesced {
	n := *r.Occurrence
	count := n
	sign := 1
	if n < 0 {
		count = -n
		sign = -1
	}
	amount := r.Amount.Div(decimal.NewFromInt(int64(count)))

	out := make([]Coalesced, 0, count)
	for on := range date.MonthStarts(r.Date, count, n > 0) {
		installment := r
		installment.Date = on
		installment.Amount = amount
		installment.Occurrence = ptr(sign)
		// each installment gets its own copies of the optional columns
		installment.Recipient = copyPtr(r.Recipient)
		installment.Label1 = copyPtr(r.Label1)
		installment.Label2 = copyPtr(r.Label2)
		installment.Label3 = copyPtr(r.Label3)
		out = append(out, installment)
	}
	return out
}
