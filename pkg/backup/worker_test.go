package backup

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	infrarepos "github.com/chronos-app/chronos/internal/infrastructure/repositories"
	usecases "github.com/chronos-app/chronos/internal/usecases/schedule"
	"github.com/chronos-app/chronos/pkg/schedule"
)

func TestValidateCronExpr(t *testing.T) {
	tests := []struct {
		name    string
		expr    string
		wantErr bool
	}{
		{"daily at 3am", "0 3 * * *", false},
		{"every minute", "* * * * *", false},
		{"weekdays", "30 6 * * 1-5", false},
		{"six fields", "0 0 3 * * *", true},
		{"garbage", "not a cron", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCronExpr(tt.expr)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateCronExpr(%q) error = %v, wantErr %v", tt.expr, err, tt.wantErr)
			}
		})
	}
}

func TestRunOnce_WritesImportableFile(t *testing.T) {
	dir := t.TempDir()
	repo := infrarepos.NewMemoryScheduleRepository()

	err := repo.Save(context.Background(), &schedule.Schedule{
		ID:        "sched-1",
		Name:      "June plan",
		Subjects:  []string{"Math"},
		StartDate: "2024-06-10",
		EndDate:   "2024-06-14",
		CreatedAt: time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC),
		Tasks:     []schedule.Task{{Date: "2024-06-10", Subject: "Math", Completed: true}},
	})
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	worker := NewWorker(usecases.NewExportUseCase(repo), WorkerConfig{
		CronExpr: "0 3 * * *",
		Dir:      dir,
		Enabled:  true,
	})

	if err := worker.RunOnce(context.Background()); err != nil {
		t.Fatalf("RunOnce failed: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 backup file, got %d", len(entries))
	}

	name := entries[0].Name()
	if !strings.HasPrefix(name, "chronos-backup-") || !strings.HasSuffix(name, ".json") {
		t.Errorf("unexpected backup file name %q", name)
	}

	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}

	// The file must round-trip through import validation unchanged.
	schedules, err := usecases.ValidateImport(data)
	if err != nil {
		t.Fatalf("backup file failed import validation: %v", err)
	}
	if len(schedules) != 1 || schedules[0].ID != "sched-1" {
		t.Errorf("unexpected backup contents: %+v", schedules)
	}

	var raw []map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("backup is not a JSON array of objects: %v", err)
	}
	for _, key := range []string{"id", "name", "subjects", "startDate", "endDate", "createdAt", "scheduleData"} {
		if _, ok := raw[0][key]; !ok {
			t.Errorf("backup entry missing key %q", key)
		}
	}
}

func TestRunOnce_EmptyCollection(t *testing.T) {
	dir := t.TempDir()
	repo := infrarepos.NewMemoryScheduleRepository()
	worker := NewWorker(usecases.NewExportUseCase(repo), WorkerConfig{CronExpr: "0 3 * * *", Dir: dir})

	if err := worker.RunOnce(context.Background()); err != nil {
		t.Fatalf("RunOnce failed: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 backup file, got %d", len(entries))
	}

	data, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	var schedules []*schedule.Schedule
	if err := json.Unmarshal(data, &schedules); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if len(schedules) != 0 {
		t.Errorf("expected empty backup, got %d schedules", len(schedules))
	}
}

func TestStart_RejectsBadCronExpr(t *testing.T) {
	repo := infrarepos.NewMemoryScheduleRepository()
	worker := NewWorker(usecases.NewExportUseCase(repo), WorkerConfig{
		CronExpr: "every day at 3",
		Dir:      t.TempDir(),
	})

	if err := worker.Start(context.Background()); err == nil {
		t.Error("expected Start to fail with an invalid cron expression")
		worker.Stop()
	}
}

func TestStartStop_Idempotent(t *testing.T) {
	repo := infrarepos.NewMemoryScheduleRepository()
	worker := NewWorker(usecases.NewExportUseCase(repo), WorkerConfig{
		CronExpr: "0 3 * * *",
		Dir:      t.TempDir(),
	})

	ctx := context.Background()
	if err := worker.Start(ctx); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if err := worker.Start(ctx); err != nil {
		t.Fatalf("second Start failed: %v", err)
	}

	worker.Stop()
	worker.Stop()
}
