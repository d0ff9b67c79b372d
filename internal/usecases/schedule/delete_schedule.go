package schedule

import (
	"context"
	"fmt"

	portrepos "github.com/chronos-app/chronos/internal/usecases/ports/repositories"
)

// DeleteScheduleUseCase removes a schedule from the collection.
type DeleteScheduleUseCase struct {
	repo portrepos.ScheduleRepository
}

// NewDeleteScheduleUseCase creates a new DeleteScheduleUseCase.
func NewDeleteScheduleUseCase(repo portrepos.ScheduleRepository) *DeleteScheduleUseCase {
	return &DeleteScheduleUseCase{repo: repo}
}

// Execute deletes by ID. Deleting an absent ID is not an error.
func (uc *DeleteScheduleUseCase) Execute(ctx context.Context, id string) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete schedule: %w", err)
	}
	return nil
}
