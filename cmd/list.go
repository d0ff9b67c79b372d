package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored schedules",
	Long:  "List every schedule in the configured storage backend with its date range and task count",
	Run:   runList,
}

func init() {
	ListCmd.Flags().StringVarP(&cfgPath, "config", "c", "config.json", "Configuration file path")
}

func runList(cmd *cobra.Command, args []string) {
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

	schedules, err := container.ListSchedulesUC.Execute(ctx)
	if err != nil {
		log.Fatalf("Failed to list schedules: %v", err)
	}

	if len(schedules) == 0 {
		fmt.Println("No schedules found")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tSTART\tEND\tTASKS")
	for _, s := range schedules {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\n", s.ID, s.Name, s.StartDate, s.EndDate, len(s.Tasks))
	}
	if err := w.Flush(); err != nil {
		log.Printf("Failed to flush output: %v", err)
	}
}
