// Package datekey converts between local calendar days and the canonical
// YYYY-MM-DD keys used by the ledger and the weight history.
//
// Keys are always derived from the wall-clock date of the time value as given;
// no timezone conversion is performed.
package datekey

import (
	"fmt"
	"time"
)

// Layout is the canonical key layout: zero-padded year, month and day.
const Layout = "2006-01-02"

// Format returns the key for the calendar day of t in t's own location.
func Format(t time.Time) string {
	return fmt.Sprintf("%04d-%02d-%02d", t.Year(), int(t.Month()), t.Day())
}

// Parse parses a canonical key into local midnight of that day.
func Parse(key string) (time.Time, error) {
	t, err := time.ParseInLocation(Layout, key, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date key %q: %w", key, err)
	}
	return t, nil
}

// Valid reports whether key is a canonical date key.
func Valid(key string) bool {
	_, err := Parse(key)
	return err == nil
}

// Midnight truncates t to the start of its calendar day in t's location.
func Midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// AddDays returns the key n calendar days after the day of t.
// Negative n walks backward.
func AddDays(t time.Time, n int) string {
	return Format(Midnight(t).AddDate(0, 0, n))
}
