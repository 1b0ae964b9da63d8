package validation

import "time"

// IsNotPast reports whether date is today or later relative to now.
// Only the calendar date matters; the business runs in a single zone.
func IsNotPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return !dateOnly.Before(nowOnly)
}
