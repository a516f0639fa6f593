package health

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/staffing-engine/internal/types"
)

func deadlineIn(now time.Time, days float64) *time.Time {
	d := now.Add(time.Duration(days * 24 * float64(time.Hour)))
	return &d
}

func TestEvaluate_NoTasksIsStable(t *testing.T) {
	now := time.Now().UTC()

	report := Evaluate(nil, deadlineIn(now, -10), now.AddDate(0, -1, 0), now)

	assert.Equal(t, types.HealthStable, report.State)
	assert.Zero(t, report.RiskScore)
	assert.Empty(t, report.Issues)
}

func TestEvaluate_OverdueWithUnassignedTaskIsCritical(t *testing.T) {
	now := time.Now().UTC()
	createdAt := now.AddDate(0, 0, -30)
	tasks := []types.Task{
		{Title: "Build API", Status: types.TaskInProgress, EstimatedHours: 8},
	}

	report := Evaluate(tasks, deadlineIn(now, -2), createdAt, now)

	assert.Equal(t, types.HealthCritical, report.State)
	assert.GreaterOrEqual(t, report.RiskScore, 100)
	assert.Contains(t, report.Issues, types.IssueDeadlineOverdue)
	assert.Contains(t, report.Issues, types.IssueUnassignedTasks)
}

func TestEvaluate_BehindScheduleIsWarning(t *testing.T) {
	now := time.Now().UTC()
	createdAt := now.AddDate(0, 0, -15)
	tasks := []types.Task{
		{Title: "A", Status: types.TaskBacklog, AssignedTo: "emp-1", EstimatedHours: 4},
		{Title: "B", Status: types.TaskBacklog, AssignedTo: "emp-2", EstimatedHours: 4},
	}

	// Halfway through a 30-day window with zero completion: expected ~50%,
	// actual 0%, well past the 15-point slack.
	report := Evaluate(tasks, deadlineIn(now, 15), createdAt, now)

	assert.Equal(t, types.HealthWarning, report.State)
	assert.Contains(t, report.Issues, types.IssueProgressBehindSchedule)
	assert.Equal(t, 30, report.RiskScore)
}

func TestEvaluate_DeadlineWithinThreeDaysIsCritical(t *testing.T) {
	now := time.Now().UTC()
	tasks := []types.Task{
		{Title: "A", Status: types.TaskCompleted, AssignedTo: "emp-1"},
	}

	report := Evaluate(tasks, deadlineIn(now, 2), now.AddDate(0, 0, -10), now)

	assert.Equal(t, types.HealthCritical, report.State)
	assert.Contains(t, report.Issues, types.IssueDeadlineCritical)
}

func TestEvaluate_DeadlineApproachingIsWarning(t *testing.T) {
	now := time.Now().UTC()
	tasks := []types.Task{
		{Title: "A", Status: types.TaskCompleted, AssignedTo: "emp-1"},
	}

	report := Evaluate(tasks, deadlineIn(now, 5), now.AddDate(0, 0, -10), now)

	assert.Equal(t, types.HealthWarning, report.State)
	assert.Contains(t, report.Issues, types.IssueDeadlineApproaching)
	assert.Equal(t, 10, report.RiskScore)
}

func TestEvaluate_CapacityOverloadByHours(t *testing.T) {
	now := time.Now().UTC()
	tasks := []types.Task{
		{Title: "A", Status: types.TaskInProgress, AssignedTo: "emp-1", EstimatedHours: 40},
	}

	report := Evaluate(tasks, nil, now.AddDate(0, 0, -5), now)

	assert.Equal(t, types.HealthCritical, report.State)
	assert.Contains(t, report.Issues, types.IssueCapacityCriticalOverload)
}

func TestEvaluate_CapacityOverloadByTaskCount(t *testing.T) {
	now := time.Now().UTC()
	var tasks []types.Task
	for _, title := range []string{"A", "B", "C", "D", "E", "F"} {
		tasks = append(tasks, types.Task{
			Title: title, Status: types.TaskBacklog, AssignedTo: "emp-1", EstimatedHours: 1,
		})
	}

	report := Evaluate(tasks, nil, now.AddDate(0, 0, -5), now)

	assert.Equal(t, types.HealthCritical, report.State)
	assert.Contains(t, report.Issues, types.IssueCapacityCriticalOverload)
}

func TestEvaluate_CapacityNearLimit(t *testing.T) {
	now := time.Now().UTC()
	tasks := []types.Task{
		{Title: "A", Status: types.TaskInProgress, AssignedTo: "emp-1", EstimatedHours: 32},
	}

	report := Evaluate(tasks, nil, now.AddDate(0, 0, -5), now)

	assert.Equal(t, types.HealthWarning, report.State)
	assert.Contains(t, report.Issues, types.IssueCapacityNearLimit)
	assert.Equal(t, 15, report.RiskScore)
}

func TestEvaluate_CompletedTasksDoNotCountTowardLoad(t *testing.T) {
	now := time.Now().UTC()
	tasks := []types.Task{
		{Title: "A", Status: types.TaskCompleted, AssignedTo: "emp-1", EstimatedHours: 100},
		{Title: "B", Status: types.TaskInProgress, AssignedTo: "emp-1", EstimatedHours: 2},
	}

	report := Evaluate(tasks, nil, now.AddDate(0, 0, -5), now)

	assert.NotContains(t, report.Issues, types.IssueCapacityCriticalOverload)
	assert.NotContains(t, report.Issues, types.IssueCapacityNearLimit)
	assert.Equal(t, 2.0, report.Metrics["max_active_hours"])
}

func TestEvaluate_StateNeverDowngrades(t *testing.T) {
	now := time.Now().UTC()
	createdAt := now.AddDate(0, 0, -30)
	// Overdue (critical) followed by a near-limit rule (warning): the
	// later, milder rule must not pull the state back down.
	tasks := []types.Task{
		{Title: "A", Status: types.TaskInProgress, AssignedTo: "emp-1", EstimatedHours: 32},
		{Title: "B", Status: types.TaskCompleted, AssignedTo: "emp-1"},
	}

	report := Evaluate(tasks, deadlineIn(now, -1), createdAt, now)

	assert.Equal(t, types.HealthCritical, report.State)
	assert.Contains(t, report.Issues, types.IssueDeadlineOverdue)
	assert.Contains(t, report.Issues, types.IssueCapacityNearLimit)
}

func TestEvaluate_IssuesAreDeduplicated(t *testing.T) {
	now := time.Now().UTC()
	tasks := []types.Task{
		{Title: "A", Status: types.TaskInProgress, AssignedTo: "emp-1", EstimatedHours: 50},
		{Title: "B", Status: types.TaskInProgress, AssignedTo: "emp-2", EstimatedHours: 50},
	}

	report := Evaluate(tasks, nil, now.AddDate(0, 0, -5), now)

	count := 0
	for _, issue := range report.Issues {
		if issue == types.IssueCapacityCriticalOverload {
			count++
		}
	}
	assert.Equal(t, 1, count)
	// Risk accumulates per assignee even though the issue appears once
	assert.Equal(t, 80, report.RiskScore)
}

func TestEvaluate_MetricsReportTaskCounts(t *testing.T) {
	now := time.Now().UTC()
	tasks := []types.Task{
		{Title: "A", Status: types.TaskCompleted, AssignedTo: "emp-1"},
		{Title: "B", Status: types.TaskInProgress, AssignedTo: "emp-1", EstimatedHours: 2},
		{Title: "C", Status: types.TaskBacklog, AssignedTo: "emp-2", EstimatedHours: 2},
		{Title: "D", Status: types.TaskBacklog, EstimatedHours: 2},
	}

	report := Evaluate(tasks, nil, now.AddDate(0, 0, -5), now)

	require.NotNil(t, report.Metrics)
	assert.Equal(t, 4.0, report.Metrics["tasks_total"])
	assert.Equal(t, 1.0, report.Metrics["tasks_completed"])
	assert.Equal(t, 1.0, report.Metrics["tasks_in_progress"])
	assert.Equal(t, 2.0, report.Metrics["tasks_backlog"])
	assert.Equal(t, 1.0, report.Metrics["tasks_unassigned"])
	assert.Equal(t, 25.0, report.Metrics["progress_pct"])
	assert.Equal(t, float64(report.RiskScore), report.Metrics["risk_score"])
}
