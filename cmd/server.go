package cmd

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/chronos-app/chronos/internal/di"
)

var port string

var ServerCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the Chronos API server",
	Long:  "Start the HTTP server that manages study schedules, task completion, and progress reports",
	Run:   runServer,
}

func init() {
	ServerCmd.Flags().StringVarP(&port, "port", "p", "8080", "Port to listen on")
	ServerCmd.Flags().StringVarP(&cfgPath, "config", "c", "config.json", "Configuration file path")
	ServerCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")

	// Bind flags to viper
	if err := viper.BindPFlag("port", ServerCmd.Flags().Lookup("port")); err != nil {
		log.Printf("Failed to bind port flag: %v", err)
	}
	if err := viper.BindPFlag("config", ServerCmd.Flags().Lookup("config")); err != nil {
		log.Printf("Failed to bind config flag: %v", err)
	}
	if err := viper.BindPFlag("verbose", ServerCmd.Flags().Lookup("verbose")); err != nil {
		log.Printf("Failed to bind verbose flag: %v", err)
	}
}

func runServer(cmd *cobra.Command, args []string) {
	if verbose {
		log.SetFlags(log.LstdFlags | log.Lshortfile)
	}

	ctx := context.Background()

	container, err := buildContainer(ctx, cfgPath)
	if err != nil {
		log.Fatalf("Failed to initialize: %v", err)
	}

	// Create Echo instance
	e := echo.New()

	// Add basic middleware
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())

	registerRoutes(e, container)

	if container.Config.Backup.Enabled {
		if err := container.BackupWorker.Start(ctx); err != nil {
			log.Fatalf("Failed to start backup worker: %v", err)
		}
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Starting chronos on port %s", port)
		if err := e.Start(":" + port); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("Shutdown signal received, shutting down gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if container.Config.Backup.Enabled {
		container.BackupWorker.Stop()
	}

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}
	if err := container.Close(); err != nil {
		log.Printf("Storage shutdown error: %v", err)
	}

	log.Printf("Server shutdown complete")
}

func registerRoutes(e *echo.Echo, container *di.Container) {
	container.HealthController.RegisterRoutes(e)
	container.ScheduleController.RegisterRoutes(e)
	container.BackupController.RegisterRoutes(e)
}
