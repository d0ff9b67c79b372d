// Package dateutil provides calendar-day arithmetic for weekday-only
// schedules. All computations are done at UTC midnight so that day
// comparisons are independent of time-of-day and local offsets.
package dateutil

import (
	"fmt"
	"time"
)

// Layout is the wire format for calendar days.
const Layout = "2006-01-02"

// Normalize truncates a time to UTC midnight of the same calendar day.
func Normalize(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Parse parses a YYYY-MM-DD string into a normalized UTC day.
func Parse(s string) (time.Time, error) {
	t, err := time.Parse(Layout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}

// Format renders a time as its YYYY-MM-DD calendar day.
func Format(t time.Time) string {
	return t.UTC().Format(Layout)
}

// IsWeekend reports whether the day falls on Saturday or Sunday.
func IsWeekend(t time.Time) bool {
	wd := t.UTC().Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// SameDay reports whether two times fall on the same calendar day,
// ignoring time-of-day.
func SameDay(a, b time.Time) bool {
	return Normalize(a).Equal(Normalize(b))
}

// PreviousWorkday returns the workday before the given day: Friday when
// the day is a Monday, otherwise the previous calendar day. The input is
// expected to be a workday; weekends are never part of a schedule.
func PreviousWorkday(t time.Time) time.Time {
	day := Normalize(t)
	if day.Weekday() == time.Monday {
		return day.AddDate(0, 0, -3)
	}
	return day.AddDate(0, 0, -1)
}
