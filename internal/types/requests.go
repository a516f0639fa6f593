package types

import (
	"github.com/go-playground/validator/v10"
)

// CreateProjectRequest represents the request to register a new project.
type CreateProjectRequest struct {
	Title          string             `json:"title" validate:"required,min=1"`
	Description    string             `json:"description" validate:"required,min=1"`
	RequiredSkills []SkillRequirement `json:"required_skills" validate:"required,min=1,dive"`
	TeamSize       int                `json:"team_size" validate:"required,min=1"`
	Priority       Priority           `json:"priority" validate:"omitempty,oneof=high medium low"`
	Deadline       string             `json:"deadline,omitempty"`
}

// SelectTeamRequest represents the request to reduce scored matches to a team.
type SelectTeamRequest struct {
	Matches   []Match  `json:"matches" validate:"required,min=1"`
	TeamSize  int      `json:"team_size" validate:"required,min=1"`
	Mode      string   `json:"mode" validate:"omitempty,oneof=auto manual"`
	LockedIDs []string `json:"locked_ids,omitempty"`
	Priority  Priority `json:"priority" validate:"omitempty,oneof=high medium low"`
}

// ReconcileRequest represents the request to apply a new plan against the
// project's persisted task state.
type ReconcileRequest struct {
	Tasks       []Task       `json:"tasks" validate:"required,min=1,dive"`
	Assignments []Assignment `json:"assignments" validate:"omitempty,dive"`
}

// Validate validates the CreateProjectRequest using the validator.
func (r *CreateProjectRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the SelectTeamRequest using the validator.
func (r *SelectTeamRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the ReconcileRequest using the validator.
func (r *ReconcileRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
