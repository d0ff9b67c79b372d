package schedule

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	portrepos "github.com/chronos-app/chronos/internal/usecases/ports/repositories"
	"github.com/chronos-app/chronos/pkg/schedule"
)

// ErrInvalidImport marks a payload that failed validation, as opposed to a
// storage failure while writing an accepted one. The store is untouched in
// either case.
var ErrInvalidImport = errors.New("invalid import payload")

// ExportUseCase serializes the whole collection for backup.
type ExportUseCase struct {
	repo portrepos.ScheduleRepository
}

// NewExportUseCase creates a new ExportUseCase.
func NewExportUseCase(repo portrepos.ScheduleRepository) *ExportUseCase {
	return &ExportUseCase{repo: repo}
}

// Execute returns the collection as pretty-printed JSON, the same layout
// the store persists.
func (uc *ExportUseCase) Execute(ctx context.Context) ([]byte, error) {
	schedules, err := uc.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read schedules: %w", err)
	}
	if schedules == nil {
		schedules = []*schedule.Schedule{}
	}

	data, err := json.MarshalIndent(schedules, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schedules: %w", err)
	}
	return data, nil
}

// ImportUseCase replaces the collection with an uploaded backup.
type ImportUseCase struct {
	repo portrepos.ScheduleRepository
}

// NewImportUseCase creates a new ImportUseCase.
func NewImportUseCase(repo portrepos.ScheduleRepository) *ImportUseCase {
	return &ImportUseCase{repo: repo}
}

// Execute validates the payload and replaces the entire collection. The
// caller is responsible for having confirmed the overwrite with the user
// before invoking this; validation failures leave the store untouched.
func (uc *ImportUseCase) Execute(ctx context.Context, payload []byte) (int, error) {
	schedules, err := ValidateImport(payload)
	if err != nil {
		return 0, err
	}

	if err := uc.repo.ReplaceAll(ctx, schedules); err != nil {
		return 0, fmt.Errorf("failed to replace schedules: %w", err)
	}
	return len(schedules), nil
}

// ValidateImport checks that a backup payload is a JSON array of objects
// that each carry at least an id. Anything else is rejected with
// ErrInvalidImport.
func ValidateImport(payload []byte) ([]*schedule.Schedule, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(payload, &raw); err != nil {
		return nil, fmt.Errorf("%w: not a JSON array", ErrInvalidImport)
	}

	schedules := make([]*schedule.Schedule, 0, len(raw))
	for i, entry := range raw {
		var probe map[string]json.RawMessage
		if err := json.Unmarshal(entry, &probe); err != nil {
			return nil, fmt.Errorf("%w: element %d is not an object", ErrInvalidImport, i)
		}
		if _, ok := probe["id"]; !ok {
			return nil, fmt.Errorf("%w: element %d has no id", ErrInvalidImport, i)
		}

		var s schedule.Schedule
		if err := json.Unmarshal(entry, &s); err != nil {
			return nil, fmt.Errorf("%w: element %d is not a schedule: %v", ErrInvalidImport, i, err)
		}
		if s.ID == "" {
			return nil, fmt.Errorf("%w: element %d has an empty id", ErrInvalidImport, i)
		}
		schedules = append(schedules, &s)
	}

	return schedules, nil
}
