package banklet

import (
	"testing"

	"github.com/jvogel/banklet/date"
	"github.com/shopspring/decimal"
)

func TestBuildHistory(t *testing.T) {
	txs := []Transaction{
		{Date: date.MustParse("2021-01-01"), Recipient: "Test", Amount: dec("0.50")},
		{Date: date.MustParse("2021-01-02"), Recipient: "Test", Amount: dec("0.50")},
	}

	history := BuildHistory(txs, dec("999.01"))

	if len(history) != 2 {
		t.Fatalf("got %d entries want 2", len(history))
	}
	if got := history[0].Balance.StringFixed(2); got != "999.51" {
		t.Errorf("first balance = %v want 999.51", got)
	}
	if got := history[1].Balance.StringFixed(2); got != "1000.01" {
		t.Errorf("second balance = %v want 1000.01", got)
	}

	sum := decimal.Zero
	for _, e := range history {
		sum = sum.Add(e.Balance)
	}
	if got := sum.StringFixed(2); got != "1999.52" {
		t.Errorf("sum of balances = %v want 1999.52", got)
	}
}

func TestBuildHistoryGroupsByDate(t *testing.T) {
	txs := []Transaction{
		{Date: date.MustParse("2021-01-02"), Recipient: "b", Amount: dec("-2.00")},
		{Date: date.MustParse("2021-01-01"), Recipient: "a", Amount: dec("10.00")},
		{Date: date.MustParse("2021-01-02"), Recipient: "c", Amount: dec("-3.00")},
	}

	history := BuildHistory(txs, decimal.Zero)

	if len(history) != 2 {
		t.Fatalf("got %d entries want 2", len(history))
	}
	// chronological, regardless of input order
	if history[0].Date != date.MustParse("2021-01-01") {
		t.Errorf("first date = %v want 2021-01-01", history[0].Date)
	}
	if got := history[1].Amount.StringFixed(2); got != "-5.00" {
		t.Errorf("daily net = %v want -5.00", got)
	}
	if got := history[1].Balance.StringFixed(2); got != "5.00" {
		t.Errorf("balance = %v want 5.00", got)
	}
}

func TestBuildHistoryEmpty(t *testing.T) {
	if h := BuildHistory(nil, dec("999.01")); len(h) != 0 {
		t.Errorf("history of empty ledger = %v want empty", h)
	}
}
