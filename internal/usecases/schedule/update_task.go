package schedule

import (
	"context"
	"fmt"

	portrepos "github.com/chronos-app/chronos/internal/usecases/ports/repositories"
	"github.com/chronos-app/chronos/pkg/schedule"
)

// UpdateTaskUseCase flips the completed flag on one task of one schedule.
type UpdateTaskUseCase struct {
	repo portrepos.ScheduleRepository
}

// NewUpdateTaskUseCase creates a new UpdateTaskUseCase.
func NewUpdateTaskUseCase(repo portrepos.ScheduleRepository) *UpdateTaskUseCase {
	return &UpdateTaskUseCase{repo: repo}
}

// Execute locates the schedule, then the task by exact date match, sets
// its completed flag, and persists the whole collection. A missing
// schedule or date yields ErrNotFound; applying the same value twice is a
// harmless no-op that still returns the schedule.
func (uc *UpdateTaskUseCase) Execute(ctx context.Context, scheduleID, date string, completed bool) (*schedule.Schedule, error) {
	s, err := uc.repo.FindByID(ctx, scheduleID)
	if err != nil {
		return nil, err
	}

	task := s.TaskByDate(date)
	if task == nil {
		return nil, portrepos.ErrNotFound
	}
	task.Completed = completed

	if err := uc.repo.Update(ctx, s); err != nil {
		return nil, fmt.Errorf("failed to persist task update: %w", err)
	}

	return s, nil
}
