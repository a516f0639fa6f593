package types

import (
	"time"

	"github.com/google/uuid"
)

// Notification type constants
const (
	NotifyTaskAssigned      = "task_assigned"
	NotifyTaskUpdated       = "task_updated"
	NotifyReplanningApplied = "replanning_applied"
)

// Notification represents a staffing decision to inform an employee.
// The engine only produces these records; delivery is external.
type Notification struct {
	ID         uuid.UUID `json:"id"`
	EmployeeID string    `json:"employee_id"`
	ProjectID  uuid.UUID `json:"project_id"`
	TaskTitle  string    `json:"task_title,omitempty"`
	Type       string    `json:"type"`
	Title      string    `json:"title"`
	Message    string    `json:"message"`
	Read       bool      `json:"read"`
	CreatedAt  time.Time `json:"created_at"`
}

// RerouteEvent records that a task's assignee changed between two
// successive plans.
type RerouteEvent struct {
	OldAssignee string `json:"old_assignee"`
	TaskTitle   string `json:"task_title"`
}
