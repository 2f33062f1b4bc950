// Package datekey produces the canonical "YYYY-MM-DD" strings every record
// lookup is keyed by. All callers go through this package so that self
// records, admin records and holiday entries always agree on what day a
// value belongs to: keys are formed from local calendar dates, never from
// UTC instants.
package datekey

import (
	"strings"
	"time"

	"github.com/Azure/go-autorest/autorest/date"
)

const Layout = "2006-01-02"

// Of returns the key for a calendar day.
func Of(year int, month time.Month, day int) string {
	return time.Date(year, month, day, 0, 0, 0, 0, time.Local).Format(Layout)
}

// Format returns the key for the local calendar day containing t.
func Format(t time.Time) string {
	return t.Format(Layout)
}

// Parse reads a canonical key back into a civil date.
func Parse(key string) (date.Date, error) {
	return date.ParseDate(key)
}

// Normalize coerces a backend-supplied date value to the canonical key. It
// accepts a bare date or a timestamp whose date part it keeps, and rejects
// anything that does not contain a real calendar day.
func Normalize(value string) (string, error) {
	if i := strings.IndexByte(value, 'T'); i == len(Layout) {
		value = value[:i]
	}
	d, err := date.ParseDate(value)
	if err != nil {
		return "", err
	}
	return d.String(), nil
}

// Clean is the best-effort form of Normalize for ingesting backend data: a
// parseable value comes back canonical, anything else comes back with at
// most the timestamp suffix stripped, so an odd record surfaces as-is
// instead of vanishing.
func Clean(value string) string {
	if i := strings.IndexByte(value, 'T'); i == len(Layout) {
		value = value[:i]
	}
	d, err := date.ParseDate(value)
	if err != nil {
		return value
	}
	return d.String()
}

// DaysInMonth returns the number of days in the given month.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.Local).Day()
}

// Weekday returns the day of week for a calendar day.
func Weekday(year int, month time.Month, day int) time.Weekday {
	return time.Date(year, month, day, 0, 0, 0, 0, time.Local).Weekday()
}

// IsWeekend reports whether a calendar day falls on Saturday or Sunday.
func IsWeekend(year int, month time.Month, day int) bool {
	wd := Weekday(year, month, day)
	return wd == time.Saturday || wd == time.Sunday
}
