package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/staffing-engine/internal/matching"
	"github.com/jonathan/staffing-engine/internal/observability"
	"github.com/jonathan/staffing-engine/internal/reasoner"
	"github.com/jonathan/staffing-engine/internal/types"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Score candidates against a project",
	Long:  "Scores a candidate pool against a project's requirements and task pool, producing ranked matches. Uses the LLM Reasoner when an API key is available and the deterministic fallback matcher otherwise.",
	RunE:  runMatch,
}

var (
	matchProject    string
	matchCandidates string
	matchTasks      string
	matchOutput     string
	matchAPIKey     string
	matchModel      string
	matchVerbose    bool
)

func init() {
	matchCmd.Flags().StringVarP(&matchProject, "project", "p", "", "Path to input Project JSON file (required)")
	matchCmd.Flags().StringVarP(&matchCandidates, "candidates", "c", "", "Path to input candidate pool JSON file (required)")
	matchCmd.Flags().StringVarP(&matchTasks, "tasks", "t", "", "Path to input task pool JSON file (defaults to the project's tasks)")
	matchCmd.Flags().StringVarP(&matchOutput, "out", "o", "", "Path to output matches JSON file (required)")
	matchCmd.Flags().StringVar(&matchAPIKey, "api-key", "", "Gemini API key (defaults to GEMINI_API_KEY)")
	matchCmd.Flags().StringVar(&matchModel, "model", "", "Override the standard-tier LLM model")
	matchCmd.Flags().BoolVarP(&matchVerbose, "verbose", "v", false, "Print a formatted match summary")

	if err := matchCmd.MarkFlagRequired("project"); err != nil {
		panic(fmt.Sprintf("failed to mark project flag as required: %v", err))
	}
	if err := matchCmd.MarkFlagRequired("candidates"); err != nil {
		panic(fmt.Sprintf("failed to mark candidates flag as required: %v", err))
	}
	if err := matchCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(matchCmd)
}

func runMatch(_ *cobra.Command, _ []string) error {
	var project types.Project
	if err := loadJSONFile(matchProject, &project); err != nil {
		return err
	}

	var candidates []types.Candidate
	if err := loadJSONFile(matchCandidates, &candidates); err != nil {
		return err
	}

	tasks := project.Tasks
	if matchTasks != "" {
		if err := loadJSONFile(matchTasks, &tasks); err != nil {
			return err
		}
	}

	ctx := context.Background()
	client, err := newLLMClient(ctx, matchAPIKey, matchModel)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}
	if client != nil {
		defer func() { _ = client.Close() }()
	}

	var scorer matching.Scorer
	if client != nil {
		scorer = reasoner.New(client)
	}

	result, err := matching.NewEngine(scorer).ScoreAndMatch(ctx, &project, candidates, tasks)
	if err != nil {
		return fmt.Errorf("matching failed: %w", err)
	}

	if err := writeJSONFile(matchOutput, result); err != nil {
		return err
	}

	if matchVerbose {
		observability.NewPrinter(os.Stdout).PrintMatches(result)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Successfully matched %d candidates to %s\n", len(result.Matches), matchOutput)
	return nil
}
