package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/staffing-engine/internal/matching"
	"github.com/jonathan/staffing-engine/internal/observability"
	"github.com/jonathan/staffing-engine/internal/selection"
	"github.com/jonathan/staffing-engine/internal/types"
)

var selectTeamCmd = &cobra.Command{
	Use:   "select-team",
	Short: "Reduce scored matches to a final team",
	Long:  "Deterministically reduces ranked matches to a bounded team. Locked candidates are always kept regardless of score; remaining slots fill greedily by score.",
	RunE:  runSelectTeam,
}

var (
	selectMatches  string
	selectOutput   string
	selectTeamSize int
	selectMode     string
	selectLocked   []string
	selectVerbose  bool
)

func init() {
	selectTeamCmd.Flags().StringVarP(&selectMatches, "matches", "m", "", "Path to input matches JSON file (required)")
	selectTeamCmd.Flags().StringVarP(&selectOutput, "out", "o", "", "Path to output TeamSelectionResult JSON file (required)")
	selectTeamCmd.Flags().IntVarP(&selectTeamSize, "team-size", "s", 0, "Target team size (required)")
	selectTeamCmd.Flags().StringVar(&selectMode, "mode", "auto", "Selection mode: auto or manual")
	selectTeamCmd.Flags().StringSliceVarP(&selectLocked, "lock", "l", nil, "Candidate id to lock into the team (repeatable)")
	selectTeamCmd.Flags().BoolVarP(&selectVerbose, "verbose", "v", false, "Print a formatted team summary")

	if err := selectTeamCmd.MarkFlagRequired("matches"); err != nil {
		panic(fmt.Sprintf("failed to mark matches flag as required: %v", err))
	}
	if err := selectTeamCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}
	if err := selectTeamCmd.MarkFlagRequired("team-size"); err != nil {
		panic(fmt.Sprintf("failed to mark team-size flag as required: %v", err))
	}

	rootCmd.AddCommand(selectTeamCmd)
}

func runSelectTeam(_ *cobra.Command, _ []string) error {
	// Accept either a bare match list or a full matching result
	var matches []types.Match
	if err := loadJSONFile(selectMatches, &matches); err != nil {
		var result matching.Result
		if resultErr := loadJSONFile(selectMatches, &result); resultErr != nil {
			return err
		}
		matches = result.Matches
	}

	result, err := selection.SelectTeam(matches, selection.Options{
		TeamSize:  selectTeamSize,
		Mode:      selection.Mode(selectMode),
		LockedIDs: selectLocked,
	})
	if err != nil {
		return fmt.Errorf("team selection failed: %w", err)
	}

	if err := writeJSONFile(selectOutput, result); err != nil {
		return err
	}

	if selectVerbose {
		observability.NewPrinter(os.Stdout).PrintTeam(result)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Successfully selected %d candidates to %s\n", len(result.Selected), selectOutput)
	return nil
}
