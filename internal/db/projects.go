package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/staffing-engine/internal/types"
)

// CreateProject inserts a new draft project and returns its generated id.
// Required skills and tasks are stored as jsonb documents.
func (db *DB) CreateProject(ctx context.Context, p *types.Project) (uuid.UUID, error) {
	skills, err := json.Marshal(p.RequiredSkills)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal required skills: %w", err)
	}
	tasks, err := json.Marshal(p.Tasks)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal tasks: %w", err)
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO projects (title, description, required_skills, team_size, priority, status, deadline, tasks, assigned_team)
		 VALUES ($1, $2, $3, $4, $5, 'draft', $6, $7, $8)
		 RETURNING id`,
		p.Title, p.Description, skills, p.TeamSize, p.Priority, p.Deadline, tasks, p.AssignedTeam,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create project: %w", err)
	}
	return id, nil
}

// GetProject retrieves a project by id. Returns (nil, nil) when no project
// exists with that id.
func (db *DB) GetProject(ctx context.Context, id uuid.UUID) (*types.Project, error) {
	var (
		p      types.Project
		skills []byte
		tasks  []byte
	)
	err := db.pool.QueryRow(ctx,
		`SELECT id, title, description, required_skills, team_size, priority, status, deadline, tasks, assigned_team, created_at, updated_at
		 FROM projects WHERE id = $1`,
		id,
	).Scan(&p.ID, &p.Title, &p.Description, &skills, &p.TeamSize, &p.Priority, &p.Status, &p.Deadline, &tasks, &p.AssignedTeam, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get project %s: %w", id, err)
	}

	if len(skills) > 0 {
		if err := json.Unmarshal(skills, &p.RequiredSkills); err != nil {
			return nil, fmt.Errorf("failed to parse required skills for project %s: %w", id, err)
		}
	}
	if len(tasks) > 0 {
		if err := json.Unmarshal(tasks, &p.Tasks); err != nil {
			return nil, fmt.Errorf("failed to parse tasks for project %s: %w", id, err)
		}
	}
	return &p, nil
}

// UpdateProjectTasks replaces a project's task list
func (db *DB) UpdateProjectTasks(ctx context.Context, id uuid.UUID, tasks []types.Task) error {
	doc, err := json.Marshal(tasks)
	if err != nil {
		return fmt.Errorf("failed to marshal tasks: %w", err)
	}
	_, err = db.pool.Exec(ctx,
		`UPDATE projects SET tasks = $1, updated_at = NOW() WHERE id = $2`,
		doc, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update tasks for project %s: %w", id, err)
	}
	return nil
}

// ApplyReconciliation writes a reconciled plan in one transaction: the new
// task list, the rebuilt assigned-team set, the finalized status, and the
// notification records the plan produced. Either everything lands or
// nothing does.
func (db *DB) ApplyReconciliation(ctx context.Context, id uuid.UUID, tasks []types.Task, assignedTeam []string, notifications []types.Notification) error {
	doc, err := json.Marshal(tasks)
	if err != nil {
		return fmt.Errorf("failed to marshal tasks: %w", err)
	}

	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	tag, err := tx.Exec(ctx,
		`UPDATE projects
		 SET tasks = $1, assigned_team = $2, status = 'finalized', updated_at = NOW()
		 WHERE id = $3`,
		doc, assignedTeam, id,
	)
	if err != nil {
		return fmt.Errorf("failed to apply plan for project %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("project %s not found", id)
	}

	for _, n := range notifications {
		_, err = tx.Exec(ctx,
			`INSERT INTO notifications (id, employee_id, project_id, task_title, type, title, message, read, created_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, false, $8)`,
			n.ID, n.EmployeeID, n.ProjectID, n.TaskTitle, n.Type, n.Title, n.Message, n.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to save notification for %s: %w", n.EmployeeID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit reconciliation for project %s: %w", id, err)
	}
	return nil
}

// SetAssignedTeam saves a finalized team selection for a project
func (db *DB) SetAssignedTeam(ctx context.Context, id uuid.UUID, team []string) error {
	tag, err := db.pool.Exec(ctx,
		`UPDATE projects SET assigned_team = $1, status = 'finalized', updated_at = NOW() WHERE id = $2`,
		team, id,
	)
	if err != nil {
		return fmt.Errorf("failed to set team for project %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("project %s not found", id)
	}
	return nil
}
