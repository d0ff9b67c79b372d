package repositories

import (
	"context"
	"errors"

	"github.com/chronos-app/chronos/pkg/schedule"
)

// ErrNotFound is returned when a schedule, or a task date inside one, does
// not exist. Callers branch on it instead of treating the miss as a
// failure.
var ErrNotFound = errors.New("schedule not found")

// ScheduleRepository is the persistence port for the schedule collection.
// Implementations perform whole-collection read-modify-write: there is no
// row-level persistence, and a failed write must leave the previously
// persisted collection intact.
type ScheduleRepository interface {
	// Save appends a new schedule to the collection
	Save(ctx context.Context, s *schedule.Schedule) error

	// FindByID retrieves a schedule by ID, ErrNotFound when absent
	FindByID(ctx context.Context, id string) (*schedule.Schedule, error)

	// FindAll retrieves every schedule in storage order
	FindAll(ctx context.Context) ([]*schedule.Schedule, error)

	// Update replaces an existing schedule, ErrNotFound when absent
	Update(ctx context.Context, s *schedule.Schedule) error

	// Delete removes a schedule by ID; deleting an absent ID is a no-op
	Delete(ctx context.Context, id string) error

	// ReplaceAll swaps the entire collection, used by import
	ReplaceAll(ctx context.Context, schedules []*schedule.Schedule) error

	// Close releases any resources held by the backend
	Close() error
}
