package reconcile

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/staffing-engine/internal/types"
)

// BuildNotifications derives the notification records a reconciliation
// produces: one task_assigned per (assignee, task) in the new plan and one
// replanning_applied per reroute, addressed to the previous assignee.
// Callers send these only after the plan update has been committed.
func BuildNotifications(projectID uuid.UUID, projectTitle string, result *Result) []types.Notification {
	now := time.Now().UTC()
	notifications := make([]types.Notification, 0, len(result.Tasks)+len(result.Reroutes))

	for _, task := range result.Tasks {
		if task.AssignedTo == "" {
			continue
		}
		notifications = append(notifications, types.Notification{
			ID:         uuid.New(),
			EmployeeID: task.AssignedTo,
			ProjectID:  projectID,
			TaskTitle:  task.Title,
			Type:       types.NotifyTaskAssigned,
			Title:      "New Task Assignment",
			Message:    fmt.Sprintf("You have been assigned to %q on project %q.", task.Title, projectTitle),
			CreatedAt:  now,
		})
	}

	for _, reroute := range result.Reroutes {
		notifications = append(notifications, types.Notification{
			ID:         uuid.New(),
			EmployeeID: reroute.OldAssignee,
			ProjectID:  projectID,
			TaskTitle:  reroute.TaskTitle,
			Type:       types.NotifyReplanningApplied,
			Title:      "Task Reassigned",
			Message:    fmt.Sprintf("Task %q on project %q has been rerouted to another team member.", reroute.TaskTitle, projectTitle),
			CreatedAt:  now,
		})
	}

	return notifications
}
