package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	usecases "github.com/chronos-app/chronos/internal/usecases/schedule"
	"github.com/chronos-app/chronos/pkg/dateutil"
	"github.com/chronos-app/chronos/pkg/schedule"
)

var (
	generateName     string
	generateSubjects []string
	generateStart    string
	generateEnd      string
	generateSave     bool
)

var GenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a weekday study plan",
	Long:  "Generate a randomized weekday study plan for the given subjects and date range, printing it as JSON. With --save the plan is stored in the configured backend.",
	Run:   runGenerate,
}

func init() {
	GenerateCmd.Flags().StringVarP(&generateName, "name", "n", "", "Schedule name (required with --save)")
	GenerateCmd.Flags().StringSliceVarP(&generateSubjects, "subjects", "s", nil, "Comma-separated subject list")
	GenerateCmd.Flags().StringVar(&generateStart, "start", "", "Start date (YYYY-MM-DD)")
	GenerateCmd.Flags().StringVar(&generateEnd, "end", "", "End date (YYYY-MM-DD)")
	GenerateCmd.Flags().BoolVar(&generateSave, "save", false, "Persist the generated schedule")
	GenerateCmd.Flags().StringVarP(&cfgPath, "config", "c", "config.json", "Configuration file path")
}

func runGenerate(cmd *cobra.Command, args []string) {
	ctx := context.Background()

	if err := usecases.ValidateSubjects(generateSubjects); err != nil {
		log.Fatalf("Invalid subjects: %v", err)
	}
	start, err := dateutil.Parse(generateStart)
	if err != nil {
		log.Fatalf("Invalid start date: %v", err)
	}
	end, err := dateutil.Parse(generateEnd)
	if err != nil {
		log.Fatalf("Invalid end date: %v", err)
	}

	if generateSave {
		container, err := buildContainer(ctx, cfgPath)
		if err != nil {
			log.Fatalf("Failed to initialize: %v", err)
		}
		defer func() {
			if err := container.Close(); err != nil {
				log.Printf("Storage shutdown error: %v", err)
			}
		}()

		created, err := container.CreateScheduleUC.Execute(ctx, &usecases.CreateScheduleRequest{
			Name:      generateName,
			Subjects:  generateSubjects,
			StartDate: generateStart,
			EndDate:   generateEnd,
		})
		if err != nil {
			log.Fatalf("Failed to create schedule: %v", err)
		}

		printJSON(created)
		return
	}

	tasks := schedule.NewGenerator().Generate(generateSubjects, start, end)
	printJSON(tasks)
}

func printJSON(v interface{}) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		log.Fatalf("Failed to marshal output: %v", err)
	}
	fmt.Fprintln(os.Stdout, string(data))
}
