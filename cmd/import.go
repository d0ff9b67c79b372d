package cmd

import (
	"context"
	"errors"
	"log"
	"os"

	"github.com/spf13/cobra"

	usecases "github.com/chronos-app/chronos/internal/usecases/schedule"
)

var (
	importFile    string
	importConfirm bool
)

var ImportCmd = &cobra.Command{
	Use:   "import",
	Short: "Import schedules from a backup file",
	Long:  "Replace the whole schedule collection with the contents of a backup file. This is destructive, so it requires --confirm.",
	Run:   runImport,
}

func init() {
	ImportCmd.Flags().StringVarP(&importFile, "file", "f", "", "Backup file to import (required)")
	ImportCmd.Flags().BoolVar(&importConfirm, "confirm", false, "Confirm replacing every stored schedule")
	ImportCmd.Flags().StringVarP(&cfgPath, "config", "c", "config.json", "Configuration file path")
	if err := ImportCmd.MarkFlagRequired("file"); err != nil {
		log.Printf("Failed to mark file flag required: %v", err)
	}
}

func runImport(cmd *cobra.Command, args []string) {
	ctx := context.Background()

	if !importConfirm {
		log.Fatalf("Import replaces all stored schedules; re-run with --confirm to proceed")
	}

	payload, err := os.ReadFile(importFile)
	if err != nil {
		log.Fatalf("Failed to read %s: %v", importFile, err)
	}

	container, err := buildContainer(ctx, cfgPath)
	if err != nil {
		log.Fatalf("Failed to initialize: %v", err)
	}
	defer func() {
		if err := container.Close(); err != nil {
			log.Printf("Storage shutdown error: %v", err)
		}
	}()

	count, err := container.ImportUC.Execute(ctx, payload)
	if err != nil {
		if errors.Is(err, usecases.ErrInvalidImport) {
			log.Fatalf("Rejected backup file: %v", err)
		}
		log.Fatalf("Failed to import schedules: %v", err)
	}

	log.Printf("Imported %d schedules from %s", count, importFile)
}
