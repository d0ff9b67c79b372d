package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/chronos-app/chronos/cmd"
)

var rootCmd = &cobra.Command{
	Use:   "chronos",
	Short: "Chronos Study Planner",
	Long:  "A weekday study schedule planner that generates, tracks, and reports on study plans",
}

func init() {
	rootCmd.AddCommand(cmd.ServerCmd)
	rootCmd.AddCommand(cmd.GenerateCmd)
	rootCmd.AddCommand(cmd.ListCmd)
	rootCmd.AddCommand(cmd.ExportCmd)
	rootCmd.AddCommand(cmd.ImportCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Println(err)
		os.Exit(1)
	}
}
