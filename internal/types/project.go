package types

import (
	"time"

	"github.com/google/uuid"
)

// ProjectStatus represents the lifecycle state of a project
type ProjectStatus string

// Project lifecycle constants
const (
	ProjectDraft     ProjectStatus = "draft"
	ProjectFinalized ProjectStatus = "finalized"
)

// SkillRequirement represents a required skill for a project.
// Name comparison is case-insensitive across the engine.
type SkillRequirement struct {
	Name  string     `json:"name"`
	Level SkillLevel `json:"level"`
}

// Project represents a staffing project with its requirements, task plan,
// and assigned team.
type Project struct {
	ID             uuid.UUID          `json:"id"`
	Title          string             `json:"title"`
	Description    string             `json:"description"`
	RequiredSkills []SkillRequirement `json:"required_skills"`
	TeamSize       int                `json:"team_size"`
	Priority       Priority           `json:"priority"`
	Status         ProjectStatus      `json:"status"`
	Deadline       *time.Time         `json:"deadline,omitempty"`
	Tasks          []Task             `json:"tasks"`
	AssignedTeam   []string           `json:"assigned_team"`
	CreatedAt      time.Time          `json:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at"`
}

// RequiredSkillNames returns the plain names of the project's required skills.
func (p *Project) RequiredSkillNames() []string {
	names := make([]string, 0, len(p.RequiredSkills))
	for _, s := range p.RequiredSkills {
		names = append(names, s.Name)
	}
	return names
}
