package types

// HealthState represents the categorical health of an active project.
// States only escalate within a single evaluation: stable < warning < critical.
type HealthState string

// Health state constants in escalation order
const (
	HealthStable   HealthState = "stable"
	HealthWarning  HealthState = "warning"
	HealthCritical HealthState = "critical"
)

// rank orders health states for escalation comparison
func (s HealthState) rank() int {
	switch s {
	case HealthWarning:
		return 1
	case HealthCritical:
		return 2
	default:
		return 0
	}
}

// Escalate returns the more severe of the two states. It never downgrades.
func (s HealthState) Escalate(to HealthState) HealthState {
	if to.rank() > s.rank() {
		return to
	}
	return s
}

// Issue codes emitted by health evaluation
const (
	IssueProgressBehindSchedule   = "progress_behind_schedule"
	IssueDeadlineOverdue          = "deadline_overdue"
	IssueDeadlineCritical         = "deadline_critical"
	IssueDeadlineApproaching      = "deadline_approaching"
	IssueUnassignedTasks          = "unassigned_tasks"
	IssueCapacityCriticalOverload = "capacity_critical_overload"
	IssueCapacityNearLimit        = "capacity_near_limit"
	IssueOrphanedAssignment       = "orphaned_assignment"
)

// HealthReport represents the computed health of a project. It is a pure
// function of current task/assignment state and is never persisted as history.
type HealthReport struct {
	State     HealthState        `json:"state"`
	RiskScore int                `json:"risk_score"`
	Issues    []string           `json:"issues"`
	Metrics   map[string]float64 `json:"metrics"`
}
