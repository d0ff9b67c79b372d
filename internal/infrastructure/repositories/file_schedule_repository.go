package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/chronos-app/chronos/internal/usecases/ports/repositories"
	"github.com/chronos-app/chronos/pkg/schedule"
)

// FileScheduleRepository persists the collection as a single pretty-printed
// JSON array, the same layout the browser app kept in localStorage and the
// export format reads. Every mutation rewrites the whole file through an
// atomic temp-file rename, so a failed write never corrupts the previous
// state.
type FileScheduleRepository struct {
	mu        sync.RWMutex
	filePath  string
	schedules []*schedule.Schedule
}

// NewFileScheduleRepository creates a repository backed by the given file.
// A missing file starts an empty collection; an unparseable one is treated
// as empty rather than a fatal error.
func NewFileScheduleRepository(filePath string) (*FileScheduleRepository, error) {
	r := &FileScheduleRepository{filePath: filePath}

	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}

	r.loadFromFile()
	return r, nil
}

// Save appends a schedule and rewrites the file.
func (r *FileScheduleRepository) Save(ctx context.Context, s *schedule.Schedule) error {
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

	next := append(append([]*schedule.Schedule(nil), r.schedules...), s.Clone())
	if err := r.syncToFile(next); err != nil {
		return err
	}
	r.schedules = next
	return nil
}

// FindByID retrieves a schedule by its ID.
func (r *FileScheduleRepository) FindByID(ctx context.Context, id string) (*schedule.Schedule, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, s := range r.schedules {
		if s.ID == id {
			return s.Clone(), nil
		}
	}
	return nil, repositories.ErrNotFound
}

// FindAll retrieves all schedules in storage order.
func (r *FileScheduleRepository) FindAll(ctx context.Context) ([]*schedule.Schedule, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*schedule.Schedule, 0, len(r.schedules))
	for _, s := range r.schedules {
		result = append(result, s.Clone())
	}
	return result, nil
}

// Update replaces an existing schedule and rewrites the file.
func (r *FileScheduleRepository) Update(ctx context.Context, s *schedule.Schedule) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, existing := range r.schedules {
		if existing.ID == s.ID {
			next := append([]*schedule.Schedule(nil), r.schedules...)
			next[i] = s.Clone()
			if err := r.syncToFile(next); err != nil {
				return err
			}
			r.schedules = next
			return nil
		}
	}
	return repositories.ErrNotFound
}

// Delete removes a schedule by ID and rewrites the file. Absent IDs are a
// no-op and do not touch the file.
func (r *FileScheduleRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, s := range r.schedules {
		if s.ID == id {
			next := append([]*schedule.Schedule(nil), r.schedules[:i]...)
			next = append(next, r.schedules[i+1:]...)
			if err := r.syncToFile(next); err != nil {
				return err
			}
			r.schedules = next
			return nil
		}
	}
	return nil
}

// ReplaceAll swaps the entire collection and rewrites the file.
func (r *FileScheduleRepository) ReplaceAll(ctx context.Context, schedules []*schedule.Schedule) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := make([]*schedule.Schedule, 0, len(schedules))
	for _, s := range schedules {
		next = append(next, s.Clone())
	}
	if err := r.syncToFile(next); err != nil {
		return err
	}
	r.schedules = next
	return nil
}

// Close performs a final sync.
func (r *FileScheduleRepository) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.syncToFile(r.schedules)
}

// syncToFile writes the collection to disk via a temp file and rename.
func (r *FileScheduleRepository) syncToFile(schedules []*schedule.Schedule) error {
	tempFile := r.filePath + ".tmp"
	file, err := os.Create(tempFile)
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if schedules == nil {
		schedules = []*schedule.Schedule{}
	}
	if err := encoder.Encode(schedules); err != nil {
		os.Remove(tempFile)
		return fmt.Errorf("failed to encode schedules: %w", err)
	}

	if err := file.Sync(); err != nil {
		os.Remove(tempFile)
		return fmt.Errorf("failed to sync file: %w", err)
	}

	if err := os.Rename(tempFile, r.filePath); err != nil {
		os.Remove(tempFile)
		return fmt.Errorf("failed to rename temp file: %w", err)
	}

	return nil
}

// loadFromFile reads the collection from disk. Malformed or missing data
// degrades to an empty collection.
func (r *FileScheduleRepository) loadFromFile() {
	data, err := os.ReadFile(r.filePath)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Failed to read schedule file %s, starting empty: %v", r.filePath, err)
		}
		return
	}

	var schedules []*schedule.Schedule
	if err := json.Unmarshal(data, &schedules); err != nil {
		log.Printf("Malformed schedule file %s, starting empty: %v", r.filePath, err)
		return
	}

	r.schedules = schedules
}
