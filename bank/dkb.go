package bank

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jvogel/banklet/date"
	"github.com/shopspring/decimal"
)

// dkbAdapter reads DKB checking account exports: latin1, semicolon
// separated, six preamble lines (account, date range, balance) before the
// column header. The preamble declares the end balance, so dkb exports can
// bootstrap a starting balance.
type dkbAdapter struct{}

const dkbPreambleLines = 6

func (dkbAdapter) Transactions(data []byte) ([]Row, error) {
	lines := splitLines(latin1(data))
	if len(lines) <= dkbPreambleLines {
		return nil, fmt.Errorf("dkb export too short: %d lines", len(lines))
	}

	r := csv.NewReader(strings.NewReader(strings.Join(lines[dkbPreambleLines:], "\n")))
	r.Comma = ';'
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	var rows []Row
	header := true
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if header {
			header = false
			continue
		}
		if len(record) == 1 && strings.TrimSpace(record[0]) == "" {
			continue
		}
		if len(record) < 8 {
			return nil, fmt.Errorf("dkb row has %d fields, want at least 8: %v", len(record), record)
		}
		row, err := newRow(record[0], record[3], record[7])
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (dkbAdapter) EndBalance(data []byte) (decimal.Decimal, bool, error) {
	lines := splitLines(latin1(data))
	// The balance line is the 5th preamble line: `"Kontostand vom ...:";"1.234,56 EUR";`.
	if len(lines) < 5 {
		return decimal.Decimal{}, false, fmt.Errorf("dkb export too short for balance header: %d lines", len(lines))
	}
	fields := strings.Split(lines[4], ";")
	if len(fields) < 2 {
		return decimal.Decimal{}, false, fmt.Errorf("dkb balance line malformed: %q", lines[4])
	}
	bal, err := ParseAmount(strings.Trim(fields[1], `"`))
	if err != nil {
		return decimal.Decimal{}, false, err
	}
	return bal, true, nil
}

// newRow builds a normalized Row from raw date, recipient and amount fields.
func newRow(rawDate, recipient, rawAmount string) (Row, error) {
	day, month, year, err := parseDayFirstDate(rawDate)
	if err != nil {
		return Row{}, err
	}
	amount, err := ParseAmount(rawAmount)
	if err != nil {
		return Row{}, err
	}
	return Row{
		Date:      date.New(year, time.Month(month), day),
		Recipient: strings.TrimSpace(recipient),
		Amount:    amount,
	}, nil
}

func splitLines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.TrimRight(s, "\n")
	return strings.Split(s, "\n")
}
