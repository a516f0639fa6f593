package types

// TaskStatus represents the progress state of a task
type TaskStatus string

// Task progress constants
const (
	TaskBacklog    TaskStatus = "backlog"
	TaskInProgress TaskStatus = "in_progress"
	TaskCompleted  TaskStatus = "completed"
)

// Priority represents the urgency of a task or project
type Priority string

// Priority constants
const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Task represents a unit of decomposed project work. Title is unique within
// a project and is the stable identity key across re-planning.
type Task struct {
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	EstimatedHours float64    `json:"estimated_hours"`
	RequiredSkills []string   `json:"required_skills"`
	Priority       Priority   `json:"priority"`
	Deadline       string     `json:"deadline,omitempty"`
	Status         TaskStatus `json:"status"`
	AssignedTo     string     `json:"assigned_to,omitempty"`
}

// IsActive reports whether the task still requires work.
func (t *Task) IsActive() bool {
	return t.Status != TaskCompleted
}

// Assignment maps a candidate to a task title, as proposed by a matching run.
type Assignment struct {
	CandidateID string `json:"candidate_id"`
	TaskTitle   string `json:"task_title"`
}
