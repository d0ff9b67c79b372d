package di

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/chronos-app/chronos/internal/infrastructure/repositories"
	"github.com/chronos-app/chronos/internal/interfaces/controllers"
	repositories_ports "github.com/chronos-app/chronos/internal/usecases/ports/repositories"
	usecases "github.com/chronos-app/chronos/internal/usecases/schedule"
	"github.com/chronos-app/chronos/pkg/backup"
	"github.com/chronos-app/chronos/pkg/config"
	"github.com/chronos-app/chronos/pkg/schedule"
)

// Container holds all dependencies for the application
type Container struct {
	Config *config.Config

	// Repositories
	ScheduleRepo repositories_ports.ScheduleRepository

	// Use Cases
	CreateScheduleUC *usecases.CreateScheduleUseCase
	ListSchedulesUC  *usecases.ListSchedulesUseCase
	GetScheduleUC    *usecases.GetScheduleUseCase
	DeleteScheduleUC *usecases.DeleteScheduleUseCase
	UpdateTaskUC     *usecases.UpdateTaskUseCase
	ReportUC         *usecases.ReportUseCase
	ExportUC         *usecases.ExportUseCase
	ImportUC         *usecases.ImportUseCase

	// Controllers
	ScheduleController *controllers.ScheduleController
	BackupController   *controllers.BackupController
	HealthController   *controllers.HealthController

	// Workers
	BackupWorker *backup.Worker
}

// NewContainer creates a container backed by in-memory storage, suitable
// for tests and ephemeral runs.
func NewContainer() *Container {
	c := &Container{
		Config:       config.DefaultConfig(),
		ScheduleRepo: repositories.NewMemoryScheduleRepository(),
	}
	c.wire()
	return c
}

// NewContainerWithConfig creates a container with the configured storage
// backend.
func NewContainerWithConfig(ctx context.Context, cfg *config.Config) (*Container, error) {
	repo, err := repositories.NewScheduleRepository(ctx, cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	c := &Container{Config: cfg, ScheduleRepo: repo}
	c.wire()
	return c, nil
}

func (c *Container) wire() {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	generator := schedule.NewGeneratorWithSource(rng)

	c.CreateScheduleUC = usecases.NewCreateScheduleUseCase(c.ScheduleRepo, generator)
	c.ListSchedulesUC = usecases.NewListSchedulesUseCase(c.ScheduleRepo)
	c.GetScheduleUC = usecases.NewGetScheduleUseCase(c.ScheduleRepo)
	c.DeleteScheduleUC = usecases.NewDeleteScheduleUseCase(c.ScheduleRepo)
	c.UpdateTaskUC = usecases.NewUpdateTaskUseCase(c.ScheduleRepo)
	c.ReportUC = usecases.NewReportUseCase(c.ScheduleRepo, rng)
	c.ExportUC = usecases.NewExportUseCase(c.ScheduleRepo)
	c.ImportUC = usecases.NewImportUseCase(c.ScheduleRepo)

	c.ScheduleController = controllers.NewScheduleController(
		generator,
		c.CreateScheduleUC,
		c.ListSchedulesUC,
		c.GetScheduleUC,
		c.DeleteScheduleUC,
		c.UpdateTaskUC,
		c.ReportUC,
	)
	c.BackupController = controllers.NewBackupController(c.ExportUC, c.ImportUC)
	c.HealthController = controllers.NewHealthController()

	c.BackupWorker = backup.NewWorker(c.ExportUC, backup.WorkerConfig{
		CronExpr: c.Config.Backup.CronExpr,
		Dir:      c.Config.Backup.Dir,
		Enabled:  c.Config.Backup.Enabled,
	})
}

// Close releases the storage backend.
func (c *Container) Close() error {
	if c.ScheduleRepo == nil {
		return nil
	}
	return c.ScheduleRepo.Close()
}
