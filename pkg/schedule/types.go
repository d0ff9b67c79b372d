// Package schedule implements the study schedule engine: generation of
// weekday-only task plans, per-task status resolution, streak tracking,
// and aggregate progress reporting. Everything here is pure; persistence
// lives behind the repository port.
package schedule

import (
	"time"

	"github.com/chronos-app/chronos/pkg/dateutil"
)

// TaskStatus defines the derived state of a single scheduled task.
type TaskStatus string

const (
	// TaskStatusCompleted indicates the task was marked done
	TaskStatusCompleted TaskStatus = "completed"
	// TaskStatusMissed indicates the task's day passed without completion
	TaskStatusMissed TaskStatus = "missed"
	// TaskStatusToday indicates the task is due today and not yet done
	TaskStatusToday TaskStatus = "today"
	// TaskStatusUpcoming indicates the task's day is still in the future
	TaskStatusUpcoming TaskStatus = "upcoming"
)

// Task is a single study assignment: one subject on one calendar day.
type Task struct {
	// Date is the calendar day in YYYY-MM-DD form
	Date string `json:"date"`
	// Subject is the label chosen for this day
	Subject string `json:"subject"`
	// Completed records whether the user marked the day done
	Completed bool `json:"completed"`
}

// Day returns the task's calendar day normalized to UTC midnight.
func (t Task) Day() (time.Time, error) {
	return dateutil.Parse(t.Date)
}

// Schedule is a persisted study plan: user metadata plus the generated
// weekday-only task sequence. The JSON shape is the on-disk and export
// format, so field names must stay stable.
type Schedule struct {
	// ID uniquely identifies the schedule across the collection
	ID string `json:"id"`
	// Name is the user-supplied display name
	Name string `json:"name"`
	// Subjects is the pool the generator drew from
	Subjects []string `json:"subjects"`
	// StartDate is the first day of the range (YYYY-MM-DD)
	StartDate string `json:"startDate"`
	// EndDate is the last day of the range, inclusive (YYYY-MM-DD)
	EndDate string `json:"endDate"`
	// CreatedAt is set once at save time and never mutated
	CreatedAt time.Time `json:"createdAt"`
	// Tasks is the weekday-only sequence from StartDate to EndDate
	Tasks []Task `json:"scheduleData"`
}

// TaskByDate returns a pointer to the task on the given day, nil when the
// schedule has no task for that date. Dates match exactly on the
// YYYY-MM-DD string, mirroring the stored form.
func (s *Schedule) TaskByDate(date string) *Task {
	for i := range s.Tasks {
		if s.Tasks[i].Date == date {
			return &s.Tasks[i]
		}
	}
	return nil
}

// Clone returns a deep copy so callers can hand out schedules without
// exposing the stored slices to mutation.
func (s *Schedule) Clone() *Schedule {
	if s == nil {
		return nil
	}
	cp := *s
	cp.Subjects = append([]string(nil), s.Subjects...)
	cp.Tasks = append([]Task(nil), s.Tasks...)
	return &cp
}
