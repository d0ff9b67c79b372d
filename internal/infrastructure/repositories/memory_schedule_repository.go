package repositories

import (
	"context"
	"fmt"
	"sync"

	"github.com/chronos-app/chronos/internal/usecases/ports/repositories"
	"github.com/chronos-app/chronos/pkg/schedule"
)

// MemoryScheduleRepository implements ScheduleRepository with an in-memory
// slice, preserving insertion order the way the persisted JSON array does.
type MemoryScheduleRepository struct {
	mu        sync.RWMutex
	schedules []*schedule.Schedule
}

// NewMemoryScheduleRepository creates a new MemoryScheduleRepository.
func NewMemoryScheduleRepository() *MemoryScheduleRepository {
	return &MemoryScheduleRepository{}
}

// Save appends a schedule to the collection.
func (r *MemoryScheduleRepository) Save(ctx context.Context, s *schedule.Schedule) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if s.ID == "" {
		return fmt.Errorf("schedule ID cannot be empty")
	}
	for _, existing := range r.schedules {
		if existing.ID == s.ID {
			return fmt.Errorf("schedule %s already exists", s.ID)
		}
	}

	r.schedules = append(r.schedules, s.Clone())
	return nil
}

// FindByID retrieves a schedule by its ID.
func (r *MemoryScheduleRepository) FindByID(ctx context.Context, id string) (*schedule.Schedule, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, s := range r.schedules {
		if s.ID == id {
			return s.Clone(), nil
		}
	}
	return nil, repositories.ErrNotFound
}

// FindAll retrieves all schedules in insertion order.
func (r *MemoryScheduleRepository) FindAll(ctx context.Context) ([]*schedule.Schedule, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*schedule.Schedule, 0, len(r.schedules))
	for _, s := range r.schedules {
		result = append(result, s.Clone())
	}
	return result, nil
}

// Update replaces an existing schedule in place.
func (r *MemoryScheduleRepository) Update(ctx context.Context, s *schedule.Schedule) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, existing := range r.schedules {
		if existing.ID == s.ID {
			r.schedules[i] = s.Clone()
			return nil
		}
	}
	return repositories.ErrNotFound
}

// Delete removes a schedule by ID. Absent IDs are a no-op.
func (r *MemoryScheduleRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, s := range r.schedules {
		if s.ID == id {
			r.schedules = append(r.schedules[:i], r.schedules[i+1:]...)
			return nil
		}
	}
	return nil
}

// ReplaceAll swaps the whole collection.
func (r *MemoryScheduleRepository) ReplaceAll(ctx context.Context, schedules []*schedule.Schedule) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	replacement := make([]*schedule.Schedule, 0, len(schedules))
	for _, s := range schedules {
		replacement = append(replacement, s.Clone())
	}
	r.schedules = replacement
	return nil
}

// Close is a no-op for the in-memory backend.
func (r *MemoryScheduleRepository) Close() error {
	return nil
}
