// Package dateutil provides the calendar grid calculations and date
// parsing helpers. All arithmetic is local wall clock; no UTC
// normalization happens anywhere in this package.
package dateutil

import (
	"errors"
	"time"
)

// Validation errors.
var (
	ErrInvalidDateFormat     = errors.New("date must be in YYYY-MM-DD format")
	ErrInvalidDateTimeFormat = errors.New("datetime must be in YYYY-MM-DD HH:MM format")
	ErrEndDateBeforeStart    = errors.New("end date must be on or after start date")
)

// WeekStart is the first weekday of every rendered week.
const WeekStart = time.Sunday

// TruncateToDay returns t with time set to midnight.
func TruncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// StartOfWeek returns midnight of the first day of the week containing t,
// where weeks begin on weekStart.
func StartOfWeek(t time.Time, weekStart time.Weekday) time.Time {
	t = TruncateToDay(t)
	diff := (int(t.Weekday()) - int(weekStart) + 7) % 7
	return t.AddDate(0, 0, -diff)
}

// WeekDays returns the 7 consecutive days of the week containing ref,
// starting from WeekStart.
func WeekDays(ref time.Time) []time.Time {
	start := StartOfWeek(ref, WeekStart)
	days := make([]time.Time, 7)
	for i := range days {
		days[i] = start.AddDate(0, 0, i)
	}
	return days
}

// MonthGrid returns every day cell to render for the month containing
// ref: from the start of the week containing the 1st through the end of
// the week containing the last day, inclusive and chronological. The
// result length is always a multiple of 7 (35 or 42 cells).
func MonthGrid(ref time.Time) []time.Time {
	first := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
	last := first.AddDate(0, 1, -1)

	start := StartOfWeek(first, WeekStart)
	end := StartOfWeek(last, WeekStart).AddDate(0, 0, 6)

	var days []time.Time
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// DateRange represents a validated date range.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// NewDateRange creates a new DateRange with validation.
// startDate can be empty (defaults to today) or in YYYY-MM-DD format.
// endDate can be empty (defaults to startDate) or in YYYY-MM-DD format.
// Returns an error if endDate is before startDate.
func NewDateRange(startDate, endDate string) (*DateRange, error) {
	start, err := ParseDate(startDate)
	if err != nil {
		return nil, err
	}

	var end time.Time
	if endDate == "" {
		end = start
	} else {
		end, err = ParseDate(endDate)
		if err != nil {
			return nil, err
		}
	}

	if end.Before(start) {
		return nil, ErrEndDateBeforeStart
	}

	return &DateRange{Start: start, End: end}, nil
}

// ParseDate parses a date string in YYYY-MM-DD format in local time.
// If the string is empty, returns today's date.
func ParseDate(s string) (time.Time, error) {
	if s == "" {
		return TruncateToDay(time.Now()), nil
	}
	t, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		return time.Time{}, ErrInvalidDateFormat
	}
	return t, nil
}

// ParseDateTime parses "YYYY-MM-DD HH:MM" in local time.
func ParseDateTime(s string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02 15:04", s, time.Local)
	if err != nil {
		return time.Time{}, ErrInvalidDateTimeFormat
	}
	return t, nil
}
