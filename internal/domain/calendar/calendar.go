// internal/domain/calendar/calendar.go
package calendar

import "time"

// DateLayout is the canonical text form of a calendar day (used for dedup_day).
const DateLayout = "2006-01-02"

// Day returns the calendar day of t as observed in loc, normalized to midnight UTC.
// Every date column in the store holds values in this form, so comparing two Days
// never depends on time-of-day or on the server's zone.
func Day(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)
}

// Normalize truncates a stored date to its calendar day without changing zones.
func Normalize(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the number of whole days from 'from' to 'to' (negative if to is earlier).
func DaysBetween(from, to time.Time) int {
	return int(Normalize(to).Sub(Normalize(from)).Hours() / 24)
}

// AddDays shifts a calendar day by n days.
func AddDays(day time.Time, n int) time.Time {
	return Normalize(day).AddDate(0, 0, n)
}

// Format renders a day in the canonical layout.
func Format(day time.Time) string {
	return Normalize(day).Format(DateLayout)
}
