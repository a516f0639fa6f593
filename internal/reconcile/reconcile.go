// Package reconcile diffs a proposed task/assignment set against the
// current persisted set. Reconciliation is a full replace keyed by task
// title: progress state carries forward, reroutes are detected, and the
// assigned-team set is rebuilt from the new plan.
package reconcile

import (
	"log"

	"github.com/jonathan/staffing-engine/internal/types"
)

// Result holds the outcome of one plan reconciliation. Callers must apply
// Tasks and AssignedTeam as a single atomic update before acting on
// Reroutes.
type Result struct {
	Tasks        []types.Task         `json:"tasks"`
	AssignedTeam []string             `json:"assigned_team"`
	Reroutes     []types.RerouteEvent `json:"reroutes"`
	// Orphans lists assignment candidate ids absent from the eligible
	// pool; their tasks are left unassigned.
	Orphans []string `json:"orphans,omitempty"`
}

// Apply reconciles a proposed plan against the current task list.
// Tasks present before but absent from the proposal are dropped; new
// titles initialize to backlog. A reroute event is emitted per task whose
// assignee changed from one non-empty value to a different non-empty value.
// pool, when non-nil, bounds the ids an assignment may reference.
func Apply(current []types.Task, proposed []types.Task, assignments []types.Assignment, pool []types.Candidate) *Result {
	previous := make(map[string]types.Task, len(current))
	for _, t := range current {
		previous[t.Title] = t
	}

	// First assignment per title wins
	assigneeFor := make(map[string]string, len(assignments))
	for _, a := range assignments {
		if _, exists := assigneeFor[a.TaskTitle]; !exists {
			assigneeFor[a.TaskTitle] = a.CandidateID
		}
	}

	var eligible map[string]bool
	if pool != nil {
		eligible = make(map[string]bool, len(pool))
		for _, c := range pool {
			eligible[c.ID] = true
		}
	}

	result := &Result{
		Tasks:        make([]types.Task, 0, len(proposed)),
		AssignedTeam: make([]string, 0),
	}
	orphaned := make(map[string]bool)
	onTeam := make(map[string]bool)

	for _, task := range proposed {
		oldAssignee := ""
		if prev, existed := previous[task.Title]; existed {
			// Progress survives re-planning
			task.Status = prev.Status
			oldAssignee = prev.AssignedTo
		} else {
			// New titles always start in backlog; a proposed status
			// has no prior progress to carry forward
			task.Status = types.TaskBacklog
		}

		newAssignee := assigneeFor[task.Title]
		if newAssignee != "" && eligible != nil && !eligible[newAssignee] {
			log.Printf("orphaned_assignment: candidate %q for task %q is not in the eligible pool", newAssignee, task.Title)
			if !orphaned[newAssignee] {
				orphaned[newAssignee] = true
				result.Orphans = append(result.Orphans, newAssignee)
			}
			newAssignee = ""
		}
		task.AssignedTo = newAssignee

		if oldAssignee != "" && newAssignee != "" && oldAssignee != newAssignee {
			result.Reroutes = append(result.Reroutes, types.RerouteEvent{
				OldAssignee: oldAssignee,
				TaskTitle:   task.Title,
			})
		}

		if newAssignee != "" && !onTeam[newAssignee] {
			onTeam[newAssignee] = true
			result.AssignedTeam = append(result.AssignedTeam, newAssignee)
		}

		result.Tasks = append(result.Tasks, task)
	}

	return result
}
