package banklet

import (
	"slices"
	"testing"

	"github.com/jvogel/banklet/bank"
	"github.com/jvogel/banklet/date"
	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestAppendRowsVerbatim(t *testing.T) {
	l := &Ledger{}
	rows := []bank.Row{
		{Date: date.MustParse("2021-01-01"), Recipient: "Test", Amount: dec("0.50")},
	}

	l.appendRows(rows)
	l.appendRows(rows) // same export twice: duplicates are the contract

	if len(l.Transactions) != 2 {
		t.Fatalf("got %d transactions want 2 (no dedup)", len(l.Transactions))
	}
	if l.Transactions[0].Recipient != "Test" || !l.Transactions[0].Amount.Equal(dec("0.50")) {
		t.Errorf("row not appended verbatim: %+v", l.Transactions[0])
	}
}

func TestGrowMapping(t *testing.T) {
	l := &Ledger{
		Transactions: []Transaction{
			{Date: date.MustParse("2021-01-01"), Recipient: "Zoo", Amount: dec("-5.00")},
			{Date: date.MustParse("2021-01-02"), Recipient: "Apotheke", Amount: dec("-7.00")},
			{Date: date.MustParse("2021-01-03"), Recipient: "Zoo", Amount: dec("-5.00")},
		},
	}

	l.growMapping()

	if len(l.Mappings) != 2 {
		t.Fatalf("got %d mapping rows want 2", len(l.Mappings))
	}
	// sorted by recipient
	if l.Mappings[0].Recipient != "Apotheke" || l.Mappings[1].Recipient != "Zoo" {
		t.Errorf("mapping not sorted by recipient: %v, %v", l.Mappings[0].Recipient, l.Mappings[1].Recipient)
	}
	// new rows are blank with occurrence 0
	m := l.Mappings[0]
	if m.RecipientClean != nil || m.Label1 != nil || m.Label2 != nil || m.Label3 != nil || m.Occurrence != 0 {
		t.Errorf("new mapping row not blank: %+v", m)
	}

	// growing again adds nothing
	l.growMapping()
	if len(l.Mappings) != 2 {
		t.Errorf("second growMapping added rows: %d", len(l.Mappings))
	}
}

func TestOrphanRetention(t *testing.T) {
	l := &Ledger{
		Transactions: []Transaction{
			{Date: date.MustParse("2021-01-01"), Recipient: "Zoo", Amount: dec("-5.00")},
		},
		Mappings: []Mapping{
			{Recipient: "Vanished", RecipientClean: ptr("Vanished GmbH"), Label1: ptr("rent"), Occurrence: 12},
		},
	}

	l.growMapping()
	l.remap()

	i := slices.IndexFunc(l.Mappings, func(m Mapping) bool { return m.Recipient == "Vanished" })
	if i < 0 {
		t.Fatal("orphan mapping row was dropped")
	}
	orphan := l.Mappings[i]
	if !derefEq(orphan.RecipientClean, ptr("Vanished GmbH")) || !derefEq(orphan.Label1, ptr("rent")) || orphan.Occurrence != 12 {
		t.Errorf("orphan mapping row changed: %+v", orphan)
	}
}

func TestRemapJoinsMappedFields(t *testing.T) {
	l := &Ledger{
		Transactions: []Transaction{
			{Date: date.MustParse("2021-01-01"), Recipient: "Test", Amount: dec("1.00")},
			{Date: date.MustParse("2021-01-02"), Recipient: "Unknown", Amount: dec("2.00")},
		},
		Mappings: []Mapping{
			{
				Recipient:      "Test",
				RecipientClean: ptr("Test_clean"),
				Label1:         ptr("test1"),
				Label2:         ptr("test2"),
				Label3:         ptr("test3"),
				Occurrence:     1000,
			},
		},
	}

	l.remap()

	tx := l.Transactions[0]
	if !derefEq(tx.RecipientClean, ptr("Test_clean")) ||
		!derefEq(tx.Label1, ptr("test1")) ||
		!derefEq(tx.Label2, ptr("test2")) ||
		!derefEq(tx.Label3, ptr("test3")) ||
		!derefEq(tx.Occurrence, ptr(1000)) {
		t.Errorf("mapped fields not joined: %+v", tx)
	}

	// no mapping row: mapped fields are nulls
	tx = l.Transactions[1]
	if tx.RecipientClean != nil || tx.Label1 != nil || tx.Occurrence != nil {
		t.Errorf("unmatched row should have nil mapped fields: %+v", tx)
	}
}

func TestRemapIsIdempotent(t *testing.T) {
	l := &Ledger{
		Transactions: []Transaction{
			{Date: date.MustParse("2021-01-01"), Recipient: "Test", Amount: dec("1.00")},
		},
		Mappings: []Mapping{
			{Recipient: "Test", RecipientClean: ptr("Test_clean"), Occurrence: 3},
		},
	}

	l.remap()
	first := l.Transactions[0]
	l.remap()
	second := l.Transactions[0]

	if !derefEq(first.RecipientClean, second.RecipientClean) ||
		!derefEq(first.Label1, second.Label1) ||
		!derefEq(first.Occurrence, second.Occurrence) {
		t.Errorf("remap not idempotent: %+v vs %+v", first, second)
	}
}

func TestRemapOverwritesStaleValues(t *testing.T) {
	// A transaction never remembers a mapped value once the mapping changed.
	l := &Ledger{
		Transactions: []Transaction{
			{
				Date: date.MustParse("2021-01-01"), Recipient: "Test", Amount: dec("1.00"),
				RecipientClean: ptr("stale"), Label1: ptr("stale"), Occurrence: ptr(99),
			},
		},
		Mappings: []Mapping{
			{Recipient: "Test", RecipientClean: ptr("fresh")},
		},
	}

	l.remap()

	tx := l.Transactions[0]
	if !derefEq(tx.RecipientClean, ptr("fresh")) {
		t.Errorf("recipient_clean = %v want fresh", fmtOptString(tx.RecipientClean))
	}
	if tx.Label1 != nil {
		t.Errorf("label1 = %v want nil (mapping has none)", *tx.Label1)
	}
	if !derefEq(tx.Occurrence, ptr(0)) {
		t.Errorf("occurrence = %v want 0 from mapping", tx.Occurrence)
	}
}

func TestRemapPreservesCustomFields(t *testing.T) {
	l := &Ledger{
		Transactions: []Transaction{
			{
				Date: date.MustParse("2021-01-01"), Recipient: "Test", Amount: dec("1.00"),
				AmountCustom: ptr(dec("9.99")), Label1Custom: ptr("mine"),
			},
		},
	}

	l.growMapping()
	l.remap()

	tx := l.Transactions[0]
	if tx.AmountCustom == nil || !tx.AmountCustom.Equal(dec("9.99")) || !derefEq(tx.Label1Custom, ptr("mine")) {
		t.Errorf("custom fields touched by reconciliation: %+v", tx)
	}
}

func TestMappingClassified(t *testing.T) {
	cases := []struct {
		name string
		m    Mapping
		want bool
	}{
		{name: "blank row", m: Mapping{Recipient: "Test"}, want: false},
		{name: "clean name only", m: Mapping{Recipient: "Test", RecipientClean: ptr("test")}, want: true},
		{name: "label1 only", m: Mapping{Recipient: "Test", Label1: ptr("groceries")}, want: true},
		{name: "label2 only", m: Mapping{Recipient: "Test", Label2: ptr("weekly")}, want: true},
		{name: "label3 only", m: Mapping{Recipient: "Test", Label3: ptr("cash")}, want: true},
		{name: "occurrence alone is not curation", m: Mapping{Recipient: "Test", Occurrence: 3}, want: false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.m.Classified(); got != c.want {
				t.Errorf("Classified() = %v want %v", got, c.want)
			}
		})
	}
}
