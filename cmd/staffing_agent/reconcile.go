package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/staffing-engine/internal/reconcile"
	"github.com/jonathan/staffing-engine/internal/types"
)

var reconcileCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Reconcile a proposed plan against current tasks",
	Long:  "Diffs a proposed task/assignment set against the project's current tasks: status carries forward by title, reroutes are detected, and the task list is replaced wholesale by the new plan.",
	RunE:  runReconcile,
}

var (
	reconcileProject     string
	reconcileTasks       string
	reconcileAssignments string
	reconcileCandidates  string
	reconcileOutput      string
)

func init() {
	reconcileCmd.Flags().StringVarP(&reconcileProject, "project", "p", "", "Path to input Project JSON file holding the current tasks (required)")
	reconcileCmd.Flags().StringVarP(&reconcileTasks, "tasks", "t", "", "Path to proposed task list JSON file (required)")
	reconcileCmd.Flags().StringVarP(&reconcileAssignments, "assignments", "a", "", "Path to proposed assignments JSON file")
	reconcileCmd.Flags().StringVarP(&reconcileCandidates, "candidates", "c", "", "Path to eligible candidate pool JSON file")
	reconcileCmd.Flags().StringVarP(&reconcileOutput, "out", "o", "", "Path to output reconciliation result JSON file (required)")

	if err := reconcileCmd.MarkFlagRequired("project"); err != nil {
		panic(fmt.Sprintf("failed to mark project flag as required: %v", err))
	}
	if err := reconcileCmd.MarkFlagRequired("tasks"); err != nil {
		panic(fmt.Sprintf("failed to mark tasks flag as required: %v", err))
	}
	if err := reconcileCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(reconcileCmd)
}

func runReconcile(_ *cobra.Command, _ []string) error {
	var project types.Project
	if err := loadJSONFile(reconcileProject, &project); err != nil {
		return err
	}

	var proposed []types.Task
	if err := loadJSONFile(reconcileTasks, &proposed); err != nil {
		return err
	}

	var assignments []types.Assignment
	if reconcileAssignments != "" {
		if err := loadJSONFile(reconcileAssignments, &assignments); err != nil {
			return err
		}
	}

	var pool []types.Candidate
	if reconcileCandidates != "" {
		if err := loadJSONFile(reconcileCandidates, &pool); err != nil {
			return err
		}
	}

	result := reconcile.Apply(project.Tasks, proposed, assignments, pool)

	if err := writeJSONFile(reconcileOutput, result); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(os.Stdout, "Successfully reconciled %d tasks (%d reroutes) to %s\n",
		len(result.Tasks), len(result.Reroutes), reconcileOutput)
	return nil
}
