package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jonathan/staffing-engine/internal/types"
)

// ListNotifications returns an employee's notifications, newest first
func (db *DB) ListNotifications(ctx context.Context, employeeID string) ([]types.Notification, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, employee_id, project_id, task_title, type, title, message, read, created_at
		 FROM notifications WHERE employee_id = $1 ORDER BY created_at DESC`,
		employeeID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications for %s: %w", employeeID, err)
	}
	defer rows.Close()

	var notifications []types.Notification
	for rows.Next() {
		var n types.Notification
		if err := rows.Scan(&n.ID, &n.EmployeeID, &n.ProjectID, &n.TaskTitle, &n.Type, &n.Title, &n.Message, &n.Read, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan notification: %w", err)
		}
		notifications = append(notifications, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read notifications: %w", err)
	}
	return notifications, nil
}

// MarkNotificationRead flags a single notification as read
func (db *DB) MarkNotificationRead(ctx context.Context, id uuid.UUID) error {
	tag, err := db.pool.Exec(ctx,
		`UPDATE notifications SET read = true WHERE id = $1`,
		id,
	)
	if err != nil {
		return fmt.Errorf("failed to mark notification %s read: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("notification %s not found", id)
	}
	return nil
}
