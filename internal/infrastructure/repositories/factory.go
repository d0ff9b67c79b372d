package repositories

import (
	"context"
	"fmt"

	"github.com/chronos-app/chronos/internal/usecases/ports/repositories"
	"github.com/chronos-app/chronos/pkg/config"
)

// NewScheduleRepository creates a repository instance for the configured
// storage backend.
func NewScheduleRepository(ctx context.Context, cfg config.StorageConfig) (repositories.ScheduleRepository, error) {
	switch cfg.Type {
	case "memory", "":
		return NewMemoryScheduleRepository(), nil

	case "file":
		path := cfg.FilePath
		if path == "" {
			path = "./schedules.json"
		}
		return NewFileScheduleRepository(path)

	case "s3":
		return NewS3ScheduleRepository(ctx, S3Options{
			Bucket:   cfg.S3Bucket,
			Region:   cfg.S3Region,
			Key:      cfg.S3Key,
			Endpoint: cfg.S3Endpoint,
		})

	default:
		return nil, fmt.Errorf("unknown storage type: %s", cfg.Type)
	}
}
