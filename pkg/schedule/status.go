package schedule

import (
	"time"

	"github.com/chronos-app/chronos/pkg/dateutil"
)

// ResolveStatus derives the state of a single task relative to "now" at
// calendar-day granularity. The rule order matters: a completed task in
// the past must resolve to completed rather than missed, and today's
// incomplete task must resolve to today rather than missed.
func ResolveStatus(date string, completed bool, now time.Time) TaskStatus {
	day, err := dateutil.Parse(date)
	if err != nil {
		// An unparseable date can never become due.
		return TaskStatusUpcoming
	}

	today := dateutil.Normalize(now)

	switch {
	case day.After(today):
		return TaskStatusUpcoming
	case day.Before(today) && !completed:
		return TaskStatusMissed
	case completed:
		return TaskStatusCompleted
	case day.Equal(today):
		return TaskStatusToday
	default:
		return TaskStatusMissed
	}
}
