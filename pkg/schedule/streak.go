package schedule

import (
	"sort"
	"time"

	"github.com/chronos-app/chronos/pkg/dateutil"
)

// Streak holds the consecutive-workday completion counters.
type Streak struct {
	// Current is the run ending at (or pending into) today
	Current int `json:"currentStreak"`
	// Max is the longest run anywhere in the schedule's history
	Max int `json:"maxStreak"`
}

// ComputeStreak calculates current and maximum completion streaks over the
// tasks whose day is not after today. Weekends never appear in a schedule,
// so Friday and the following Monday count as adjacent workdays.
//
// The current streak starts at today when today is completed. When today is
// still open but the previous workday is completed, today counts as a
// pending day of the ongoing run. Otherwise the current streak is 0.
func ComputeStreak(tasks []Task, now time.Time) Streak {
	today := dateutil.Normalize(now)

	completed := make(map[string]bool)
	for _, task := range tasks {
		if !task.Completed {
			continue
		}
		day, err := task.Day()
		if err != nil {
			continue
		}
		if !day.After(today) {
			completed[dateutil.Format(day)] = true
		}
	}

	var current int
	if completed[dateutil.Format(today)] {
		current = countBack(completed, today)
	} else if last := dateutil.PreviousWorkday(today); completed[dateutil.Format(last)] {
		// Today is still open; the run from the last workday carries
		// forward with today as its pending day.
		current = countBack(completed, last)
	}

	return Streak{Current: current, Max: maxRun(completed)}
}

// countBack counts from day backward through consecutive completed
// workdays, inclusive of day itself.
func countBack(completed map[string]bool, day time.Time) int {
	count := 1
	for {
		prev := dateutil.PreviousWorkday(day)
		if !completed[dateutil.Format(prev)] {
			return count
		}
		count++
		day = prev
	}
}

// maxRun finds the longest run of adjacent completed workdays. Days are
// adjacent when calendar-consecutive, or when a Friday is followed by the
// next Monday (a three-day gap).
func maxRun(completed map[string]bool) int {
	days := make([]time.Time, 0, len(completed))
	for s := range completed {
		day, err := dateutil.Parse(s)
		if err != nil {
			continue
		}
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	longest := 0
	run := 0
	for i, day := range days {
		if i > 0 && adjacentWorkdays(days[i-1], day) {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}
	return longest
}

func adjacentWorkdays(prev, next time.Time) bool {
	gap := next.Sub(prev)
	if next.Weekday() == time.Monday && prev.Weekday() == time.Friday {
		return gap == 3*24*time.Hour
	}
	return gap == 24*time.Hour
}
