package cmd

import (
	"context"
	"log"

	"github.com/chronos-app/chronos/internal/di"
	"github.com/chronos-app/chronos/pkg/config"
)

var (
	cfgPath string
	verbose bool
)

// loadConfigOrDefault loads the configuration file, falling back to
// defaults when it is missing or unreadable.
func loadConfigOrDefault(path string) *config.Config {
	cfg, err := config.LoadConfig(path)
	if err != nil {
		log.Printf("Failed to load config from %s, using defaults: %v", path, err)
		cfg = config.DefaultConfig()
	}
	return cfg
}

// buildContainer assembles the dependency container against the
// configured storage backend.
func buildContainer(ctx context.Context, path string) (*di.Container, error) {
	return di.NewContainerWithConfig(ctx, loadConfigOrDefault(path))
}
