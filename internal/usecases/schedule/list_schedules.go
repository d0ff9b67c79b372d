package schedule

import (
	"context"
	"fmt"

	portrepos "github.com/chronos-app/chronos/internal/usecases/ports/repositories"
	"github.com/chronos-app/chronos/pkg/schedule"
)

// ListSchedulesUseCase returns the persisted collection.
type ListSchedulesUseCase struct {
	repo portrepos.ScheduleRepository
}

// NewListSchedulesUseCase creates a new ListSchedulesUseCase.
func NewListSchedulesUseCase(repo portrepos.ScheduleRepository) *ListSchedulesUseCase {
	return &ListSchedulesUseCase{repo: repo}
}

// Execute lists all schedules in storage order.
func (uc *ListSchedulesUseCase) Execute(ctx context.Context) ([]*schedule.Schedule, error) {
	schedules, err := uc.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list schedules: %w", err)
	}
	return schedules, nil
}

// GetScheduleUseCase looks up a single schedule.
type GetScheduleUseCase struct {
	repo portrepos.ScheduleRepository
}

// NewGetScheduleUseCase creates a new GetScheduleUseCase.
func NewGetScheduleUseCase(repo portrepos.ScheduleRepository) *GetScheduleUseCase {
	return &GetScheduleUseCase{repo: repo}
}

// Execute finds a schedule by ID. Returns ErrNotFound when absent.
func (uc *GetScheduleUseCase) Execute(ctx context.Context, id string) (*schedule.Schedule, error) {
	return uc.repo.FindByID(ctx, id)
}
