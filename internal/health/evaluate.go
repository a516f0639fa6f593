// Package health computes project health reports from current task and
// assignment state. Evaluation is stateless: the same inputs always produce
// the same report, and the health state only escalates within one call.
package health

import (
	"time"

	"github.com/jonathan/staffing-engine/internal/types"
)

const (
	weeklyCapacityHours = 40.0

	scheduleSlackPoints = 15.0

	riskBehindSchedule   = 30
	riskDeadlineOverdue  = 50
	riskDeadlineCritical = 20
	riskDeadlineNear     = 10
	riskUnassignedTasks  = 50
	riskCapacityOverload = 40
	riskCapacityNear     = 15
)

// assigneeLoad accumulates per-assignee active work
type assigneeLoad struct {
	tasks int
	hours float64
}

// Evaluate computes a health report for a project's task list. deadline may
// be nil for projects without a declared deadline; schedule and proximity
// rules are skipped in that case. A project with zero tasks is stable with
// zero risk by convention.
func Evaluate(tasks []types.Task, deadline *time.Time, createdAt time.Time, now time.Time) *types.HealthReport {
	report := &types.HealthReport{
		State:   types.HealthStable,
		Issues:  []string{},
		Metrics: map[string]float64{},
	}
	if len(tasks) == 0 {
		report.Metrics["risk_score"] = 0
		return report
	}

	completed := 0
	inProgress := 0
	backlog := 0
	unassignedActive := 0
	loads := make(map[string]*assigneeLoad)
	for _, task := range tasks {
		switch task.Status {
		case types.TaskCompleted:
			completed++
		case types.TaskInProgress:
			inProgress++
		default:
			backlog++
		}
		if !task.IsActive() {
			continue
		}
		if task.AssignedTo == "" {
			unassignedActive++
			continue
		}
		load, ok := loads[task.AssignedTo]
		if !ok {
			load = &assigneeLoad{}
			loads[task.AssignedTo] = load
		}
		load.tasks++
		load.hours += task.EstimatedHours
	}

	progress := float64(completed) / float64(len(tasks)) * 100

	seen := make(map[string]bool)
	addIssue := func(code string, risk int, state types.HealthState) {
		report.RiskScore += risk
		report.State = report.State.Escalate(state)
		if !seen[code] {
			seen[code] = true
			report.Issues = append(report.Issues, code)
		}
	}

	expectedProgress := 0.0
	daysLeft := 0.0
	if deadline != nil {
		total := deadline.Sub(createdAt)
		if total > 0 {
			expectedProgress = now.Sub(createdAt).Seconds() / total.Seconds() * 100
			if expectedProgress < 0 {
				expectedProgress = 0
			} else if expectedProgress > 100 {
				expectedProgress = 100
			}
		}
		if progress < expectedProgress-scheduleSlackPoints {
			addIssue(types.IssueProgressBehindSchedule, riskBehindSchedule, types.HealthWarning)
		}

		daysLeft = deadline.Sub(now).Hours() / 24
		switch {
		case daysLeft < 0:
			addIssue(types.IssueDeadlineOverdue, riskDeadlineOverdue, types.HealthCritical)
		case daysLeft < 3:
			addIssue(types.IssueDeadlineCritical, riskDeadlineCritical, types.HealthCritical)
		case daysLeft < 7:
			addIssue(types.IssueDeadlineApproaching, riskDeadlineNear, types.HealthWarning)
		}
	}

	if unassignedActive > 0 {
		addIssue(types.IssueUnassignedTasks, riskUnassignedTasks, types.HealthCritical)
	}

	maxTasks := 0
	maxHours := 0.0
	for _, load := range loads {
		if load.tasks > maxTasks {
			maxTasks = load.tasks
		}
		if load.hours > maxHours {
			maxHours = load.hours
		}
		loadPct := load.hours / weeklyCapacityHours * 100
		if loadPct > 90 || load.tasks > 5 {
			addIssue(types.IssueCapacityCriticalOverload, riskCapacityOverload, types.HealthCritical)
		} else if loadPct > 75 || load.tasks > 3 {
			addIssue(types.IssueCapacityNearLimit, riskCapacityNear, types.HealthWarning)
		}
	}

	report.Metrics["progress_pct"] = progress
	report.Metrics["expected_progress_pct"] = expectedProgress
	report.Metrics["days_left"] = daysLeft
	report.Metrics["max_active_tasks"] = float64(maxTasks)
	report.Metrics["max_active_hours"] = maxHours
	report.Metrics["risk_score"] = float64(report.RiskScore)
	report.Metrics["tasks_total"] = float64(len(tasks))
	report.Metrics["tasks_completed"] = float64(completed)
	report.Metrics["tasks_in_progress"] = float64(inProgress)
	report.Metrics["tasks_backlog"] = float64(backlog)
	report.Metrics["tasks_unassigned"] = float64(unassignedActive)

	return report
}
