package schedule

import (
	"math"
	"time"

	"github.com/chronos-app/chronos/pkg/dateutil"
)

// Summary aggregates a schedule's tasks into the numbers a progress view
// renders. SuccessRate is completed tasks as a rounded percentage of all
// past-due tasks; it is 0 while nothing is past due yet.
type Summary struct {
	CompletedDays int `json:"completedDays"`
	MissedDays    int `json:"missedDays"`
	RemainingDays int `json:"remainingDays"`
	TotalDays     int `json:"totalDays"`
	SuccessRate   int `json:"successRate"`
}

// Summarize buckets every task as completed, missed, or remaining relative
// to "now" at calendar-day granularity. A completed task counts as
// completed no matter when it was dated; incomplete tasks are missed when
// strictly before today and remaining otherwise.
func Summarize(tasks []Task, now time.Time) Summary {
	today := dateutil.Normalize(now)

	sum := Summary{TotalDays: len(tasks)}
	for _, task := range tasks {
		day, err := task.Day()
		switch {
		case task.Completed:
			sum.CompletedDays++
		case err == nil && day.Before(today):
			sum.MissedDays++
		default:
			sum.RemainingDays++
		}
	}

	if due := sum.CompletedDays + sum.MissedDays; due > 0 {
		sum.SuccessRate = int(math.Round(float64(sum.CompletedDays) / float64(due) * 100))
	}

	return sum
}

// CompletionPercent is the share of all days already completed, rounded.
// This backs the overall progress bar, distinct from SuccessRate which
// ignores days not yet due.
func (s Summary) CompletionPercent() int {
	if s.TotalDays == 0 {
		return 0
	}
	return int(math.Round(float64(s.CompletedDays) / float64(s.TotalDays) * 100))
}

// MissedPercent is the share of all days already missed, rounded.
func (s Summary) MissedPercent() int {
	if s.TotalDays == 0 {
		return 0
	}
	return int(math.Round(float64(s.MissedDays) / float64(s.TotalDays) * 100))
}
