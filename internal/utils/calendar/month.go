// Package calendar centralizes YYYY-MM month-key handling so that every
// consumer (aggregator, dashboard, payslips) agrees on month arithmetic,
// including year boundaries.
package calendar

import (
	"regexp"
	"time"
)

const keyLayout = "2006-01"

var keyPattern = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// Key returns the YYYY-MM month key for a point in time.
func Key(t time.Time) string {
	return t.Format(keyLayout)
}

// PreviousKey returns the month key for the calendar month before t. It uses
// month arithmetic anchored to the first of the month, so January correctly
// rolls back to December of the previous year and day-of-month normalization
// cannot skew the result.
func PreviousKey(t time.Time) string {
	year, month, _ := t.Date()
	firstOfMonth := time.Date(year, month, 1, 0, 0, 0, 0, t.Location())
	return firstOfMonth.AddDate(0, -1, 0).Format(keyLayout)
}

// KeyFromDateString extracts the month key from a YYYY-MM-DD date string by
// taking its first seven characters. Historical rows that predate the month
// column rely on exactly this fallback.
func KeyFromDateString(date string) string {
	if len(date) < len(keyLayout) {
		return date
	}
	return date[:len(keyLayout)]
}

// IsValidKey reports whether s is a well-formed YYYY-MM month key.
func IsValidKey(s string) bool {
	return keyPattern.MatchString(s)
}
