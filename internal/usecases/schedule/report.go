package schedule

import (
	"context"
	"math/rand"
	"time"

	portrepos "github.com/chronos-app/chronos/internal/usecases/ports/repositories"
	"github.com/chronos-app/chronos/pkg/schedule"
)

// Report bundles everything the schedule detail view renders: per-task
// status, aggregate counts, streaks, and the motivational blurb.
type Report struct {
	ScheduleID string            `json:"scheduleId"`
	Name       string            `json:"name"`
	Summary    schedule.Summary  `json:"summary"`
	Streak     schedule.Streak   `json:"streak"`
	Statuses   []TaskWithStatus  `json:"tasks"`
	Feedback   schedule.Feedback `json:"feedback"`
	Percent    CompletionPercent `json:"percent"`
}

// TaskWithStatus pairs a stored task with its derived status.
type TaskWithStatus struct {
	schedule.Task
	Status schedule.TaskStatus `json:"status"`
}

// CompletionPercent carries the progress-bar fractions.
type CompletionPercent struct {
	Completed int `json:"completed"`
	Missed    int `json:"missed"`
}

// ReportUseCase derives a full analytics report from a stored schedule.
type ReportUseCase struct {
	repo portrepos.ScheduleRepository
	rng  *rand.Rand

	// Clock supplies "now" and is overridable in tests.
	Clock func() time.Time
}

// NewReportUseCase creates a new ReportUseCase.
func NewReportUseCase(repo portrepos.ScheduleRepository, rng *rand.Rand) *ReportUseCase {
	return &ReportUseCase{repo: repo, rng: rng, Clock: time.Now}
}

// Execute reads the schedule and computes the report. The stored record is
// never mutated; every figure is derived.
func (uc *ReportUseCase) Execute(ctx context.Context, scheduleID string) (*Report, error) {
	s, err := uc.repo.FindByID(ctx, scheduleID)
	if err != nil {
		return nil, err
	}

	now := uc.Clock()
	summary := schedule.Summarize(s.Tasks, now)

	statuses := make([]TaskWithStatus, 0, len(s.Tasks))
	for _, task := range s.Tasks {
		statuses = append(statuses, TaskWithStatus{
			Task:   task,
			Status: schedule.ResolveStatus(task.Date, task.Completed, now),
		})
	}

	return &Report{
		ScheduleID: s.ID,
		Name:       s.Name,
		Summary:    summary,
		Streak:     schedule.ComputeStreak(s.Tasks, now),
		Statuses:   statuses,
		Feedback:   schedule.FeedbackFor(summary.SuccessRate, uc.rng),
		Percent: CompletionPercent{
			Completed: summary.CompletionPercent(),
			Missed:    summary.MissedPercent(),
		},
	}, nil
}
