package banklet

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"

	"github.com/jvogel/banklet/date"
	"github.com/shopspring/decimal"
)

// Persisted layout: one flat CSV per table, header row, dates as
// YYYY-MM-DD, amounts with two decimal places, empty field for null.
const (
	txFile          = "transactions.csv"
	mappingFile     = "mapping.csv"
	metadataFile    = "metadata.csv"
	historyFile     = "history.csv"
	coalescedFile   = "tx_coalesced.csv"
	distributedFile = "tx_distributed.csv"
)

var (
	txHeader = []string{
		"date", "amount", "recipient",
		"recipient_clean", "label1", "label2", "label3", "occurrence",
		"date_custom", "amount_custom", "recipient_clean_custom",
		"label1_custom", "label2_custom", "label3_custom", "occurrence_custom",
	}
	mappingHeader   = []string{"recipient", "recipient_clean", "label1", "label2", "label3", "occurrence"}
	metadataHeader  = []string{"starting_balance", "bank"}
	historyHeader   = []string{"date", "amount", "balance"}
	coalescedHeader = []string{"date", "amount", "recipient", "label1", "label2", "label3", "occurrence"}
)

func (l *Ledger) write() error {
	txRecords := make([][]string, 0, len(l.Transactions))
	for _, tx := range l.Transactions {
		txRecords = append(txRecords, []string{
			tx.Date.String(), fmtAmount(tx.Amount), tx.Recipient,
			fmtOptString(tx.RecipientClean), fmtOptString(tx.Label1),
			fmtOptString(tx.Label2), fmtOptString(tx.Label3), fmtOptInt(tx.Occurrence),
			fmtOptDate(tx.DateCustom), fmtOptAmount(tx.AmountCustom),
			fmtOptString(tx.RecipientCleanCustom), fmtOptString(tx.Label1Custom),
			fmtOptString(tx.Label2Custom), fmtOptString(tx.Label3Custom),
			fmtOptInt(tx.OccurrenceCustom),
		})
	}

	mappingRecords := make([][]string, 0, len(l.Mappings))
	for _, m := range l.Mappings {
		mappingRecords = append(mappingRecords, []string{
			m.Recipient, fmtOptString(m.RecipientClean), fmtOptString(m.Label1),
			fmtOptString(m.Label2), fmtOptString(m.Label3), strconv.Itoa(m.Occurrence),
		})
	}

	var metadataRecords [][]string
	if l.Metadata != nil {
		metadataRecords = [][]string{{fmtAmount(l.Metadata.StartingBalance), l.Metadata.Bank}}
	}

	historyRecords := make([][]string, 0, len(l.History))
	for _, h := range l.History {
		historyRecords = append(historyRecords, []string{
			h.Date.String(), fmtAmount(h.Amount), fmtAmount(h.Balance),
		})
	}

	tables := []struct {
		file    string
		header  []string
		records [][]string
	}{
		{txFile, txHeader, txRecords},
		{mappingFile, mappingHeader, mappingRecords},
		{metadataFile, metadataHeader, metadataRecords},
		{historyFile, historyHeader, historyRecords},
		{coalescedFile, coalescedHeader, coalescedRecords(l.Coalesced)},
		{distributedFile, coalescedHeader, coalescedRecords(l.Distributed)},
	}
	for _, t := range tables {
		if err := writeTable(filepath.Join(l.dir, t.file), t.header, t.records); err != nil {
			return err
		}
	}
	return nil
}

func coalescedRecords(rows []Coalesced) [][]string {
	records := make([][]string, 0, len(rows))
	for _, c := range rows {
		records = append(records, []string{
			c.Date.String(), fmtAmount(c.Amount), fmtOptString(c.Recipient),
			fmtOptString(c.Label1), fmtOptString(c.Label2), fmtOptString(c.Label3),
			fmtOptInt(c.Occurrence),
		})
	}
	return records
}

func writeTable(path string, header []string, records [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return err
	}
	if err := w.WriteAll(records); err != nil {
		return err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	return f.Close()
}

func fmtAmount(d decimal.Decimal) string { return d.StringFixed(2) }

func fmtOptAmount(d *decimal.Decimal) string {
	if d == nil {
		return ""
	}
	return d.StringFixed(2)
}

func fmtOptDate(d *date.Date) string {
	if d == nil {
		return ""
	}
	return d.String()
}

func fmtOptString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func fmtOptInt(i *int) string {
	if i == nil {
		return ""
	}
	return strconv.Itoa(*i)
}
