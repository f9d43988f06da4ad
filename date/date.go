// Package date provides a calendar date type with day granularity.
//
// Transactions, mappings and the balance history all carry plain days;
// keeping a dedicated type (instead of time.Time) makes it impossible for a
// derivation pass to silently degrade a date into a raw timestamp.
package date

import (
	"fmt"
	"iter"
	"time"
)

const readDateFormat = "2006-1-2" // Permissive read date format (allows single-digit month/day).

// DateFormat is the format used to represent dates as strings in ISO-8601 format.
const DateFormat = "2006-01-02" // write date format

// Date represents a date with no lower than day granularity.
type Date struct {
	y int
	m time.Month
	d int
}

// time returns a time.Time that is a canonical representation of that day (at midnight UTC).
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// New returns a normalized Date for the given year, month, and day.
func New(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// Before reports whether the day d is before x.
func (d Date) Before(x Date) bool { return d.time().Before(x.time()) }

// After reports whether the day d is after x.
func (d Date) After(x Date) bool { return d.time().After(x.time()) }

// AddMonths returns a new Date with the given number of months added.
// The day of the month is kept and normalized by the calendar, like time.AddDate.
func (d Date) AddMonths(i int) Date { return New(d.y, d.m+time.Month(i), d.d) }

// StartOfMonth returns the first day of d's month.
func (d Date) StartOfMonth() Date { return New(d.y, d.m, 1) }

// IsStartOfMonth reports whether d is the first day of its month.
func (d Date) IsStartOfMonth() bool { return d.d == 1 }

// String formats the date in its standard format.
func (d Date) String() string { return d.time().Format(DateFormat) }

// Parse parses a Date from a string. It is lenient and accepts formats like "2025-7-1".
func Parse(str string) (Date, error) {
	on, err := time.Parse(readDateFormat, str)
	// We use a slightly more permissive format for read, to support 2025-7-1 instead of 2025-07-01
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q want format %q: %w", str, readDateFormat, err)
	}
	return New(on.Date()), nil
}

// MustParse is like Parse but panics on error.
func MustParse(str string) Date {
	d, err := Parse(str)
	if err != nil {
		panic(err.Error())
	}
	return d
}

// MonthStarts returns an iterator over n month-start dates anchored on d.
//
// For a forward series the first element is the first month start on or
// after d. For a backward series (forward=false) the last element is the
// month start of d's month, and the series is still yielded in
// chronological order.
func MonthStarts(d Date, n int, forward bool) iter.Seq[Date] {
	return func(yield func(Date) bool) {
		if n <= 0 {
			return
		}
		var first Date
		if forward {
			first = d.StartOfMonth()
			if !d.IsStartOfMonth() {
				first = first.AddMonths(1)
			}
		} else {
			first = d.StartOfMonth().AddMonths(-(n - 1))
		}
		for i := 0; i < n; i++ {
			if !yield(first.AddMonths(i)) {
				return
			}
		}
	}
}
