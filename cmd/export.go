package cmd

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
)

var exportOutput string

var ExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all schedules as JSON",
	Long:  "Export the whole schedule collection as a JSON array, to stdout or to a file. The output is accepted unchanged by the import command.",
	Run:   runExport,
}

func init() {
	ExportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file (default stdout)")
	ExportCmd.Flags().StringVarP(&cfgPath, "config", "c", "config.json", "Configuration file path")
}

func runExport(cmd *cobra.Command, args []string) {
	ctx := context.Background()

	container, err := buildContainer(ctx, cfgPath)
	if err != nil {
		log.Fatalf("Failed to initialize: %v", err)
	}
	defer func() {
		if err := container.Close(); err != nil {
			log.Printf("Storage shutdown error: %v", err)
		}
	}()

	data, err := container.ExportUC.Execute(ctx)
	if err != nil {
		log.Fatalf("Failed to export schedules: %v", err)
	}

	if exportOutput == "" {
		fmt.Println(string(data))
		return
	}

	if err := os.WriteFile(exportOutput, data, 0600); err != nil {
		log.Fatalf("Failed to write %s: %v", exportOutput, err)
	}
	log.Printf("Exported %d bytes to %s", len(data), exportOutput)
}
