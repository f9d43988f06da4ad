package bank

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/jvogel/banklet/date"
)

// dkbSample mirrors a real DKB checking export: six preamble lines with the
// end balance on the fifth, then the column header and rows.
const dkbSample = `"Kontonummer:";"DE00 0000 0000 0000 0000 00 / Girokonto";
"Von:";"01.01.2021";
"Bis:";"31.01.2021";
"";
"Kontostand vom 31.01.2021:";"1.000,01 EUR";
"";
"Buchungstag";"Wertstellung";"Buchungstext";"Auftraggeber / Beguenstigter";"Verwendungszweck";"Kontonummer";"BLZ";"Betrag (EUR)";"Glaeubiger-ID";"Mandatsreferenz";"Kundenreferenz";
"01.01.2021";"01.01.2021";"Gutschrift";"Test";"Zweck";"";"";"0,50";"";"";"";
"02.01.2021";"02.01.2021";"Gutschrift";"Test";"Zweck";"";"";"0,50";"";"";"";
`

const spSample = `"Auftragskonto";"Buchungstag";"Valutadatum";"Buchungstext";"Verwendungszweck";"Glaeubiger ID";"Mandatsreferenz";"Kundenreferenz (End-to-End)";"Sammlerreferenz";"Lastschrift Ursprungsbetrag";"Auslagenersatz Ruecklastschrift";"Beguenstigter/Zahlungspflichtiger";"Kontonummer/IBAN";"BIC (SWIFT-Code)";"Betrag";"Waehrung";"Info"
"DE00";"01.06.2021";"01.06.2021";"Lastschrift";"Einkauf";"";"";"";"";"";"";"Supermarkt";"DE11";"ABC";"-1.234,56";"EUR";"Umsatz gebucht"
`

func TestFormats(t *testing.T) {
	if got := Formats(); !slices.Equal(got, []string{"dkb", "sp"}) {
		t.Errorf("Formats() = %v want [dkb sp]", got)
	}
}

func TestForUnsupported(t *testing.T) {
	if _, err := For("monopoly"); !errors.Is(err, ErrUnsupported) {
		t.Errorf("For(monopoly) = %v want ErrUnsupported", err)
	}
}

func TestDKBTransactions(t *testing.T) {
	rows, err := Transactions("dkb", []byte(dkbSample))
	if err != nil {
		t.Fatalf("Transactions(dkb) error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows want 2", len(rows))
	}
	want := Row{Date: date.MustParse("2021-01-01"), Recipient: "Test"}
	if rows[0].Date != want.Date || rows[0].Recipient != want.Recipient {
		t.Errorf("rows[0] = %+v want date %v recipient %q", rows[0], want.Date, want.Recipient)
	}
	if got := rows[0].Amount.StringFixed(2); got != "0.50" {
		t.Errorf("rows[0].Amount = %v want 0.50", got)
	}
}

func TestSPTransactions(t *testing.T) {
	rows, err := Transactions("sp", []byte(spSample))
	if err != nil {
		t.Fatalf("Transactions(sp) error: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("got %d rows want 1", len(rows))
	}
	if rows[0].Recipient != "Supermarkt" {
		t.Errorf("recipient = %q want Supermarkt", rows[0].Recipient)
	}
	if got := rows[0].Amount.StringFixed(2); got != "-1234.56" {
		t.Errorf("amount = %v want -1234.56", got)
	}
	if rows[0].Date != date.MustParse("2021-06-01") {
		t.Errorf("date = %v want 2021-06-01", rows[0].Date)
	}
}

func TestEmptyExport(t *testing.T) {
	// Preamble and header only, no rows.
	empty := strings.Join(strings.SplitAfter(dkbSample, "\n")[:7], "")
	if _, err := Transactions("dkb", []byte(empty)); !errors.Is(err, ErrEmptyExport) {
		t.Errorf("Transactions(dkb, headers only) = %v want ErrEmptyExport", err)
	}
}

func TestParseMetadata(t *testing.T) {
	// dkb declares an end balance: starting balance is end minus export sum.
	md, err := ParseMetadata("dkb", []byte(dkbSample))
	if err != nil {
		t.Fatalf("ParseMetadata(dkb) error: %v", err)
	}
	if got := md.StartingBalance.StringFixed(2); got != "999.01" {
		t.Errorf("dkb starting balance = %v want 999.01", got)
	}
	if md.Format != "dkb" {
		t.Errorf("format = %q want dkb", md.Format)
	}

	// sp declares no balance: starting balance defaults to zero.
	md, err = ParseMetadata("sp", []byte(spSample))
	if err != nil {
		t.Fatalf("ParseMetadata(sp) error: %v", err)
	}
	if !md.StartingBalance.IsZero() {
		t.Errorf("sp starting balance = %v want 0", md.StartingBalance)
	}
}

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in   string
		want string
		err  bool
	}{
		{in: "0,50", want: "0.50"},
		{in: "-1.234,56", want: "-1234.56"},
		{in: "1.000,01 EUR", want: "1000.01"},
		{in: "  12,00  ", want: "12.00"},
		{in: "", err: true},
		{in: "abc", err: true},
	}
	for _, c := range cases {
		got, err := ParseAmount(c.in)
		if c.err {
			if err == nil {
				t.Errorf("ParseAmount(%q) expected error, got %v", c.in, got)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParseAmount(%q) unexpected error: %v", c.in, err)
		}
		if got.StringFixed(2) != c.want {
			t.Errorf("ParseAmount(%q) = %v want %v", c.in, got, c.want)
		}
	}
}
