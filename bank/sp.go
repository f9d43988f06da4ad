package bank

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
)

// spAdapter reads Sparkasse exports: latin1, semicolon separated, header on
// the first line, no preamble. The format declares no balance, so sp
// ledgers bootstrap with a starting balance of zero.
type spAdapter struct{}

func (spAdapter) Transactions(data []byte) ([]Row, error) {
	r := csv.NewReader(strings.NewReader(latin1(data)))
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
		if len(record) < 15 {
			return nil, fmt.Errorf("sp row has %d fields, want at least 15: %v", len(record), record)
		}
		row, err := newRow(record[2], record[11], record[14])
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (spAdapter) EndBalance([]byte) (decimal.Decimal, bool, error) {
	return decimal.Decimal{}, false, nil
}
