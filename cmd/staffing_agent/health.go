package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/staffing-engine/internal/health"
	"github.com/jonathan/staffing-engine/internal/observability"
	"github.com/jonathan/staffing-engine/internal/types"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Evaluate project health",
	Long:  "Computes a risk score and categorical health state for a project from its task completion, deadline proximity, and per-assignee workload concentration.",
	RunE:  runHealth,
}

var (
	healthProject string
	healthOutput  string
	healthVerbose bool
)

func init() {
	healthCmd.Flags().StringVarP(&healthProject, "project", "p", "", "Path to input Project JSON file (required)")
	healthCmd.Flags().StringVarP(&healthOutput, "out", "o", "", "Path to output HealthReport JSON file (required)")
	healthCmd.Flags().BoolVarP(&healthVerbose, "verbose", "v", false, "Print a formatted health summary")

	if err := healthCmd.MarkFlagRequired("project"); err != nil {
		panic(fmt.Sprintf("failed to mark project flag as required: %v", err))
	}
	if err := healthCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(healthCmd)
}

func runHealth(_ *cobra.Command, _ []string) error {
	var project types.Project
	if err := loadJSONFile(healthProject, &project); err != nil {
		return err
	}

	report := health.Evaluate(project.Tasks, project.Deadline, project.CreatedAt, time.Now().UTC())

	if err := writeJSONFile(healthOutput, report); err != nil {
		return err
	}

	if healthVerbose {
		observability.NewPrinter(os.Stdout).PrintHealthReport(report)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Project health: %s (risk %d), report written to %s\n",
		report.State, report.RiskScore, healthOutput)
	return nil
}
