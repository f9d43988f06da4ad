package banklet

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/jvogel/banklet/date"
	"github.com/shopspring/decimal"
)

// readExisting loads the persisted ground-truth tables. Missing files mean
// a bootstrap ledger and are not an error; anything structurally wrong is
// fatal, there is no auto-repair. The derived tables are never read back,
// they are recomputed on every run.
func (l *Ledger) readExisting() error {
	if err := l.readTransactions(); err != nil {
		return err
	}
	if err := l.readMappings(); err != nil {
		return err
	}
	return l.readMetadata()
}

func (l *Ledger) readTransactions() error {
	t, err := readTable(filepath.Join(l.dir, txFile))
	if err != nil || t == nil {
		return err
	}
	col, err := t.columns(txHeader...)
	if err != nil {
		return err
	}
	for _, rec := range t.records {
		tx := Transaction{Recipient: rec[col["recipient"]]}
		if tx.Date, err = t.date(rec, col["date"]); err != nil {
			return err
		}
		if tx.Amount, err = t.amount(rec, col["amount"]); err != nil {
			return err
		}
		if tx.Occurrence, err = t.optInt(rec, col["occurrence"]); err != nil {
			return err
		}
		tx.RecipientClean = optString(rec[col["recipient_clean"]])
		tx.Label1 = optString(rec[col["label1"]])
		tx.Label2 = optString(rec[col["label2"]])
		tx.Label3 = optString(rec[col["label3"]])
		if tx.DateCustom, err = t.optDate(rec, col["date_custom"]); err != nil {
			return err
		}
		if tx.AmountCustom, err = t.optAmount(rec, col["amount_custom"]); err != nil {
			return err
		}
		tx.RecipientCleanCustom = optString(rec[col["recipient_clean_custom"]])
		tx.Label1Custom = optString(rec[col["label1_custom"]])
		tx.Label2Custom = optString(rec[col["label2_custom"]])
		tx.Label3Custom = optString(rec[col["label3_custom"]])
		if tx.OccurrenceCustom, err = t.optInt(rec, col["occurrence_custom"]); err != nil {
			return err
		}
		l.Transactions = append(l.Transactions, tx)
	}
	return nil
}

func (l *Ledger) readMappings() error {
	t, err := readTable(filepath.Join(l.dir, mappingFile))
	if err != nil || t == nil {
		return err
	}
	col, err := t.columns(mappingHeader...)
	if err != nil {
		return err
	}
	for _, rec := range t.records {
		m := Mapping{
			Recipient:      rec[col["recipient"]],
			RecipientClean: optString(rec[col["recipient_clean"]]),
			Label1:         optString(rec[col["label1"]]),
			Label2:         optString(rec[col["label2"]]),
			Label3:         optString(rec[col["label3"]]),
		}
		occ, err := t.optInt(rec, col["occurrence"])
		if err != nil {
			return err
		}
		if occ != nil {
			m.Occurrence = *occ
		}
		l.Mappings = append(l.Mappings, m)
	}
	return nil
}

func (l *Ledger) readMetadata() error {
	t, err := readTable(filepath.Join(l.dir, metadataFile))
	if err != nil || t == nil {
		return err
	}
	col, err := t.columns(metadataHeader...)
	if err != nil {
		return err
	}
	switch len(t.records) {
	case 0:
		// bootstrap wrote an empty metadata table; still no metadata
		return nil
	case 1:
	default:
		return fmt.Errorf("%w: %s: want a single metadata row, got %d", ErrMalformed, t.path, len(t.records))
	}
	rec := t.records[0]
	balance, err := t.amount(rec, col["starting_balance"])
	if err != nil {
		return err
	}
	l.Metadata = &Metadata{StartingBalance: balance, Bank: rec[col["bank"]]}
	return nil
}

// table is one persisted CSV read wholesale into memory.
type table struct {
	path    string
	header  []string
	records [][]string
}

// readTable reads a persisted table. It returns nil without error when the
// file does not exist.
func readTable(path string) (*table, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	all, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformed, path, err)
	}
	if len(all) == 0 {
		return nil, fmt.Errorf("%w: %s: missing header row", ErrMalformed, path)
	}
	return &table{path: path, header: all[0], records: all[1:]}, nil
}

// columns resolves the named columns into indexes, failing when any
// expected column is absent.
func (t *table) columns(names ...string) (map[string]int, error) {
	idx := make(map[string]int, len(t.header))
	for i, h := range t.header {
		idx[h] = i
	}
	for _, name := range names {
		if _, ok := idx[name]; !ok {
			return nil, fmt.Errorf("%w: %s: missing column %q", ErrMalformed, t.path, name)
		}
	}
	return idx, nil
}

func (t *table) date(rec []string, i int) (date.Date, error) {
	d, err := date.Parse(rec[i])
	if err != nil {
		return date.Date{}, fmt.Errorf("%w: %s: %v", ErrMalformed, t.path, err)
	}
	return d, nil
}

func (t *table) optDate(rec []string, i int) (*date.Date, error) {
	if rec[i] == "" {
		return nil, nil
	}
	d, err := t.date(rec, i)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (t *table) amount(rec []string, i int) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(rec[i])
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %s: invalid amount %q", ErrMalformed, t.path, rec[i])
	}
	return d, nil
}

func (t *table) optAmount(rec []string, i int) (*decimal.Decimal, error) {
	if rec[i] == "" {
		return nil, nil
	}
	d, err := t.amount(rec, i)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (t *table) optInt(rec []string, i int) (*int, error) {
	if rec[i] == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(rec[i])
	if err != nil {
		return nil, fmt.Errorf("%w: %s: invalid integer %q", ErrMalformed, t.path, rec[i])
	}
	return &n, nil
}

func optString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
