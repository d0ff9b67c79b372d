// Package schedule contains the application usecases that sit between the
// HTTP/CLI surfaces and the repository port. Validation of user input
// happens here; the engine in pkg/schedule stays permissive and pure.
package schedule

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	portrepos "github.com/chronos-app/chronos/internal/usecases/ports/repositories"
	"github.com/chronos-app/chronos/pkg/dateutil"
	"github.com/chronos-app/chronos/pkg/schedule"
)

// CreateScheduleUseCase persists a newly generated schedule.
type CreateScheduleUseCase struct {
	repo      portrepos.ScheduleRepository
	generator *schedule.Generator
}

// NewCreateScheduleUseCase creates a new CreateScheduleUseCase.
func NewCreateScheduleUseCase(repo portrepos.ScheduleRepository, generator *schedule.Generator) *CreateScheduleUseCase {
	return &CreateScheduleUseCase{repo: repo, generator: generator}
}

// CreateScheduleRequest represents the input for creating a schedule.
// Tasks may carry the plan the user previewed; when empty, a fresh plan is
// generated from the subjects and date range.
type CreateScheduleRequest struct {
	Name      string
	Subjects  []string
	StartDate string
	EndDate   string
	Tasks     []schedule.Task
}

// Execute validates the request, assembles the schedule record, and
// appends it to the collection.
func (uc *CreateScheduleUseCase) Execute(ctx context.Context, req *CreateScheduleRequest) (*schedule.Schedule, error) {
	start, end, err := uc.validate(req)
	if err != nil {
		return nil, fmt.Errorf("invalid request: %w", err)
	}

	tasks := req.Tasks
	if len(tasks) == 0 {
		tasks = uc.generator.Generate(req.Subjects, start, end)
	}

	s := &schedule.Schedule{
		ID:        uuid.New().String(),
		Name:      strings.TrimSpace(req.Name),
		Subjects:  req.Subjects,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		CreatedAt: time.Now().UTC(),
		Tasks:     tasks,
	}

	if err := uc.repo.Save(ctx, s); err != nil {
		return nil, fmt.Errorf("failed to save schedule: %w", err)
	}

	return s, nil
}

func (uc *CreateScheduleUseCase) validate(req *CreateScheduleRequest) (time.Time, time.Time, error) {
	if strings.TrimSpace(req.Name) == "" {
		return time.Time{}, time.Time{}, errors.New("schedule name is required")
	}
	if err := ValidateSubjects(req.Subjects); err != nil {
		return time.Time{}, time.Time{}, err
	}

	start, err := dateutil.Parse(req.StartDate)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := dateutil.Parse(req.EndDate)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, errors.New("end date must not be before start date")
	}

	return start, end, nil
}

// ValidateSubjects checks the subject list the way the input form does:
// at least one subject, none blank, and no case-sensitive duplicates.
func ValidateSubjects(subjects []string) error {
	if len(subjects) == 0 {
		return errors.New("at least one subject is required")
	}

	seen := make(map[string]bool, len(subjects))
	for _, s := range subjects {
		if strings.TrimSpace(s) == "" {
			return errors.New("subjects must not be blank")
		}
		if seen[s] {
			return fmt.Errorf("duplicate subject: %s", s)
		}
		seen[s] = true
	}
	return nil
}
