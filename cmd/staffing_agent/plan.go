package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/staffing-engine/internal/observability"
	"github.com/jonathan/staffing-engine/internal/planner"
	"github.com/jonathan/staffing-engine/internal/types"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Decompose a project into tasks",
	Long:  "Breaks a project down into specific technical tasks using the LLM planner, falling back to a single generic implementation task when the planner is unavailable.",
	RunE:  runPlan,
}

var (
	planProject string
	planOutput  string
	planAPIKey  string
	planModel   string
	planVerbose bool
)

func init() {
	planCmd.Flags().StringVarP(&planProject, "project", "p", "", "Path to input Project JSON file (required)")
	planCmd.Flags().StringVarP(&planOutput, "out", "o", "", "Path to output Plan JSON file (required)")
	planCmd.Flags().StringVar(&planAPIKey, "api-key", "", "Gemini API key (defaults to GEMINI_API_KEY)")
	planCmd.Flags().StringVar(&planModel, "model", "", "Override the standard-tier LLM model")
	planCmd.Flags().BoolVarP(&planVerbose, "verbose", "v", false, "Print a formatted plan summary")

	if err := planCmd.MarkFlagRequired("project"); err != nil {
		panic(fmt.Sprintf("failed to mark project flag as required: %v", err))
	}
	if err := planCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(planCmd)
}

func runPlan(_ *cobra.Command, _ []string) error {
	var project types.Project
	if err := loadJSONFile(planProject, &project); err != nil {
		return err
	}

	ctx := context.Background()
	client, err := newLLMClient(ctx, planAPIKey, planModel)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}
	if client != nil {
		defer func() { _ = client.Close() }()
	}

	plan := planner.New(client).Decompose(ctx, &project, time.Now().UTC())

	if err := writeJSONFile(planOutput, plan); err != nil {
		return err
	}

	if planVerbose {
		observability.NewPrinter(os.Stdout).PrintPlan(plan)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Successfully planned %d tasks to %s\n", len(plan.Tasks), planOutput)
	return nil
}
