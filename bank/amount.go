package bank

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount parses a German-style decimal string ("1.234,56") into a
// decimal, independent of any process locale. Thousands dots are stripped
// and the decimal comma becomes a point. A trailing currency word such as
// "EUR" is tolerated.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, ' '); i >= 0 {
		s = s[:i]
	}
	if s == "" {
		return decimal.Decimal{}, fmt.Errorf("empty amount")
	}
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, ",", ".")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return d, nil
}

// parseDayFirstDate parses a DD.MM.YYYY date as used by German bank exports.
func parseDayFirstDate(s string) (day, month, year int, err error) {
	_, err = fmt.Sscanf(strings.TrimSpace(s), "%d.%d.%d", &day, &month, &year)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid date %q want DD.MM.YYYY: %w", s, err)
	}
	return day, month, year, nil
}

// latin1 decodes an ISO 8859-1 byte stream into a UTF-8 string. Bank exports
// from German institutes still ship latin1; every byte maps 1:1 to the rune
// with the same code point.
func latin1(data []byte) string {
	var b strings.Builder
	b.Grow(len(data))
	for _, c := range data {
		b.WriteRune(rune(c))
	}
	return b.String()
}
