// Package dateutil is the single place calendar days are parsed, formatted
// and compared. Days are plain Y-M-D values; converting stored timestamps
// through UTC shifts day boundaries, so local wall-clock components are used
// when deriving "today".
package dateutil

import (
	"time"

	"github.com/Azure/go-autorest/autorest/date"
)

const Layout = "2006-01-02"

// Parse reads a Y-M-D string into a calendar date.
func Parse(s string) (date.Date, error) {
	return date.ParseDate(s)
}

// FromTime drops the time-of-day of t using its own location, keeping the
// wall-clock day.
func FromTime(t time.Time) date.Date {
	y, m, d := t.Date()
	return date.Date{Time: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// Today is the current local calendar day.
func Today() date.Date {
	return FromTime(time.Now())
}

// MonthBounds returns the first and last day of the given month.
func MonthBounds(year int, month time.Month) (date.Date, date.Date) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)

	return date.Date{Time: first}, date.Date{Time: last}
}

// Next returns the calendar day after d.
func Next(d date.Date) date.Date {
	return date.Date{Time: d.AddDate(0, 0, 1)}
}

// Before reports whether a is strictly earlier than b.
func Before(a, b date.Date) bool {
	return a.Time.Before(b.Time)
}

// After reports whether a is strictly later than b.
func After(a, b date.Date) bool {
	return a.Time.After(b.Time)
}

// Max returns the later of two days.
func Max(a, b date.Date) date.Date {
	if After(a, b) {
		return a
	}
	return b
}

// Min returns the earlier of two days.
func Min(a, b date.Date) date.Date {
	if Before(a, b) {
		return a
	}
	return b
}
