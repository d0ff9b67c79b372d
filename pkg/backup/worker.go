package backup

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	usecases "github.com/chronos-app/chronos/internal/usecases/schedule"
)

// WorkerConfig contains configuration for the backup worker
type WorkerConfig struct {
	// CronExpr is the standard 5-field cron expression for backup runs
	CronExpr string
	// Dir is the directory backup files are written to
	Dir string
	// Enabled indicates whether the worker should run
	Enabled bool
}

// DefaultWorkerConfig returns the default worker configuration
func DefaultWorkerConfig() WorkerConfig {
	return WorkerConfig{
		CronExpr: "0 3 * * *",
		Dir:      "./backups",
		Enabled:  true,
	}
}

// Worker writes periodic snapshots of the schedule collection to disk.
// Each run produces a standalone JSON file that the import endpoint
// accepts unchanged.
type Worker struct {
	exportUC *usecases.ExportUseCase
	config   WorkerConfig

	cron    *cron.Cron
	running bool
	mu      sync.Mutex
}

// NewWorker creates a new backup worker
func NewWorker(exportUC *usecases.ExportUseCase, config WorkerConfig) *Worker {
	return &Worker{
		exportUC: exportUC,
		config:   config,
	}
}

// ValidateCronExpr checks a 5-field cron expression before the worker
// is started with it.
func ValidateCronExpr(expr string) error {
	parser := cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)
	if _, err := parser.Parse(expr); err != nil {
		return fmt.Errorf("invalid cron expression: %w", err)
	}
	return nil
}

// Start schedules the backup job and begins the cron loop
func (w *Worker) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.running {
		return nil
	}

	if err := ValidateCronExpr(w.config.CronExpr); err != nil {
		return err
	}
	if err := os.MkdirAll(w.config.Dir, 0700); err != nil {
		return fmt.Errorf("failed to create backup directory: %w", err)
	}

	w.cron = cron.New()
	if _, err := w.cron.AddFunc(w.config.CronExpr, func() {
		if err := w.RunOnce(ctx); err != nil {
			log.Printf("[BACKUP_WORKER] Backup failed: %v", err)
		}
	}); err != nil {
		return fmt.Errorf("failed to schedule backup job: %w", err)
	}

	w.cron.Start()
	w.running = true
	log.Printf("[BACKUP_WORKER] Started with schedule %q, writing to %s", w.config.CronExpr, w.config.Dir)
	return nil
}

// Stop stops the cron loop and waits for a running backup to finish
func (w *Worker) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.running {
		return
	}

	<-w.cron.Stop().Done()
	w.running = false
	log.Printf("[BACKUP_WORKER] Stopped")
}

// RunOnce writes a single timestamped backup file.
func (w *Worker) RunOnce(ctx context.Context) error {
	data, err := w.exportUC.Execute(ctx)
	if err != nil {
		return fmt.Errorf("failed to export schedules: %w", err)
	}

	name := fmt.Sprintf("chronos-backup-%s.json", time.Now().UTC().Format("20060102-150405"))
	path := filepath.Join(w.config.Dir, name)

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return fmt.Errorf("failed to write backup file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to finalize backup file: %w", err)
	}

	log.Printf("[BACKUP_WORKER] Wrote backup %s (%d bytes)", path, len(data))
	return nil
}
