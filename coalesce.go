package banklet

// Coalesce derives the override-resolved view of the transaction table.
//
// For each of the seven paired columns the custom value wins when present,
// else the base or mapped value is kept. Presence means non-nil: a custom
// zero amount or occurrence is a value and wins. The recipient pairing is
// special: it chains one level deeper, custom clean name over mapped clean
// name over the raw counterparty, so the derived column is never empty
// even before any curation.
func Coalesce(txs []Transaction) []Coalesced {
	rows := make([]Coalesced, 0, len(txs))
	for _, tx := range txs {
		c := Coalesced{
			Date:       tx.Date,
			Amount:     tx.Amount,
			Recipient:  copyPtr(tx.RecipientClean),
			Label1:     copyPtr(tx.Label1),
			Label2:     copyPtr(tx.Label2),
			Label3:     copyPtr(tx.Label3),
			Occurrence: copyPtr(tx.Occurrence),
		}
		if tx.DateCustom != nil {
			c.Date = *tx.DateCustom
		}
		if tx.AmountCustom != nil {
			c.Amount = *tx.AmountCustom
		}
		if tx.RecipientCleanCustom != nil {
			c.Recipient = copyPtr(tx.RecipientCleanCustom)
		}
		if tx.Label1Custom != nil {
			c.Label1 = copyPtr(tx.Label1Custom)
		}
		if tx.Label2Custom != nil {
			c.Label2 = copyPtr(tx.Label2Custom)
		}
		if tx.Label3Custom != nil {
			c.Label3 = copyPtr(tx.Label3Custom)
		}
		if tx.OccurrenceCustom != nil {
			c.Occurrence = copyPtr(tx.OccurrenceCustom)
		}
		if c.Recipient == nil {
			c.Recipient = ptr(tx.Recipient)
		}
		rows = append(rows, c)
	}
	return rows
}
