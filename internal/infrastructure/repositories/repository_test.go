package repositories

import (
	"context"
	"errors"
	"testing"

	portrepos "github.com/chronos-app/chronos/internal/usecases/ports/repositories"
	"github.com/chronos-app/chronos/pkg/schedule"
)

// testRepositoryInterface exercises the ScheduleRepository contract against
// any backend.
func testRepositoryInterface(t *testing.T, repo portrepos.ScheduleRepository) {
	ctx := context.Background()

	first := &schedule.Schedule{
		ID:        "first",
		Name:      "First",
		Subjects:  []string{"math"},
		StartDate: "2024-06-03",
		EndDate:   "2024-06-04",
		Tasks: []schedule.Task{
			{Date: "2024-06-03", Subject: "math"},
			{Date: "2024-06-04", Subject: "math"},
		},
	}
	second := &schedule.Schedule{ID: "second", Name: "Second", Subjects: []string{"art"}}

	// Save and find
	if err := repo.Save(ctx, first); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := repo.Save(ctx, second); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := repo.Save(ctx, &schedule.Schedule{ID: "first"}); err == nil {
		t.Error("Save with duplicate ID should fail")
	}
	if err := repo.Save(ctx, &schedule.Schedule{}); err == nil {
		t.Error("Save with empty ID should fail")
	}

	found, err := repo.FindByID(ctx, "first")
	if err != nil {
		t.Fatalf("FindByID failed: %v", err)
	}
	if found.Name != "First" || len(found.Tasks) != 2 {
		t.Errorf("FindByID returned wrong record: %+v", found)
	}

	if _, err := repo.FindByID(ctx, "missing"); !errors.Is(err, portrepos.ErrNotFound) {
		t.Errorf("FindByID on missing ID: got %v, want ErrNotFound", err)
	}

	// FindAll preserves storage order
	all, err := repo.FindAll(ctx)
	if err != nil {
		t.Fatalf("FindAll failed: %v", err)
	}
	if len(all) != 2 || all[0].ID != "first" || all[1].ID != "second" {
		t.Errorf("FindAll order wrong: %v", all)
	}

	// Returned records are copies, not aliases of stored state
	found.Tasks[0].Completed = true
	refetched, _ := repo.FindByID(ctx, "first")
	if refetched.Tasks[0].Completed {
		t.Error("mutating a returned schedule leaked into the store")
	}

	// Update
	found.Tasks[0].Completed = true
	if err := repo.Update(ctx, found); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	refetched, _ = repo.FindByID(ctx, "first")
	if !refetched.Tasks[0].Completed {
		t.Error("Update did not persist task change")
	}
	if err := repo.Update(ctx, &schedule.Schedule{ID: "missing"}); !errors.Is(err, portrepos.ErrNotFound) {
		t.Errorf("Update on missing ID: got %v, want ErrNotFound", err)
	}

	// Delete is a no-op for missing IDs
	if err := repo.Delete(ctx, "missing"); err != nil {
		t.Errorf("Delete of missing ID should be a no-op, got %v", err)
	}
	if err := repo.Delete(ctx, "second"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	all, _ = repo.FindAll(ctx)
	if len(all) != 1 {
		t.Errorf("expected 1 schedule after delete, got %d", len(all))
	}

	// ReplaceAll swaps the collection wholesale
	if err := repo.ReplaceAll(ctx, []*schedule.Schedule{{ID: "imported"}}); err != nil {
		t.Fatalf("ReplaceAll failed: %v", err)
	}
	all, _ = repo.FindAll(ctx)
	if len(all) != 1 || all[0].ID != "imported" {
		t.Errorf("ReplaceAll result wrong: %v", all)
	}
}

func TestMemoryScheduleRepository(t *testing.T) {
	testRepositoryInterface(t, NewMemoryScheduleRepository())
}
