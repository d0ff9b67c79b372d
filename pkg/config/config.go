// Package config loads the server configuration from a JSON file with
// sensible defaults for local use.
package config

import (
	"encoding/json"
	"log"
	"os"
)

// StorageConfig selects and configures the schedule storage backend.
type StorageConfig struct {
	// Type is "memory", "file", or "s3"
	Type string `json:"type" mapstructure:"type"`

	// FilePath is the collection file for the file backend
	FilePath string `json:"file_path,omitempty" mapstructure:"file_path"`

	// S3 backend settings
	S3Bucket   string `json:"s3_bucket,omitempty" mapstructure:"s3_bucket"`
	S3Region   string `json:"s3_region,omitempty" mapstructure:"s3_region"`
	S3Key      string `json:"s3_key,omitempty" mapstructure:"s3_key"`
	S3Endpoint string `json:"s3_endpoint,omitempty" mapstructure:"s3_endpoint"`
}

// BackupConfig configures the scheduled export worker.
type BackupConfig struct {
	// Enabled turns the backup worker on
	Enabled bool `json:"enabled" mapstructure:"enabled"`
	// CronExpr is the standard five-field cron expression for backup runs
	CronExpr string `json:"cron_expr" mapstructure:"cron_expr"`
	// Dir is the directory backup files are written to
	Dir string `json:"dir" mapstructure:"dir"`
}

// Config represents the chronos server configuration.
type Config struct {
	// Storage selects the schedule persistence backend
	Storage StorageConfig `json:"storage" mapstructure:"storage"`
	// Backup configures periodic exports of the collection
	Backup BackupConfig `json:"backup" mapstructure:"backup"`
}

// LoadConfig loads configuration from a JSON file.
func LoadConfig(filename string) (*Config, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.Printf("Failed to close config file: %v", err)
		}
	}()

	var config Config
	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&config); err != nil {
		return nil, err
	}

	config.applyDefaults()
	return &config, nil
}

// DefaultConfig returns a default configuration.
func DefaultConfig() *Config {
	config := &Config{}
	config.applyDefaults()
	return config
}

func (c *Config) applyDefaults() {
	if c.Storage.Type == "" {
		c.Storage.Type = "file"
	}
	if c.Storage.Type == "file" && c.Storage.FilePath == "" {
		c.Storage.FilePath = "./schedules.json"
	}
	if c.Backup.CronExpr == "" {
		c.Backup.CronExpr = "0 3 * * *"
	}
	if c.Backup.Dir == "" {
		c.Backup.Dir = "./backups"
	}
}
