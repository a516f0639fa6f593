// Package planner decomposes a project into concrete tasks using the
// external LLM collaborator, with a deterministic fallback when the
// collaborator is unavailable or returns an invalid plan.
package planner

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/jonathan/staffing-engine/internal/llm"
	"github.com/jonathan/staffing-engine/internal/prompts"
	"github.com/jonathan/staffing-engine/internal/schemas"
	"github.com/jonathan/staffing-engine/internal/types"
)

// defaultTimeout bounds the single decomposition attempt
const defaultTimeout = 60 * time.Second

// Source identifies which branch produced a plan
type Source string

// Plan sources
const (
	SourcePlanner  Source = "planner"
	SourceFallback Source = "fallback"
)

// Plan is a proposed task breakdown for a project. Tasks carry no status
// or assignee; reconciliation fills those in.
type Plan struct {
	Tasks               []types.Task `json:"tasks"`
	TotalEstimatedHours float64      `json:"total_estimated_hours"`
	RecommendedTeamSize int          `json:"recommended_team_size"`
	Source              Source       `json:"source"`
	FallbackReason      string       `json:"fallback_reason,omitempty"`
}

// Planner produces task breakdowns for projects
type Planner struct {
	client  llm.Client
	timeout time.Duration
}

// Option configures a Planner
type Option func(*Planner)

// WithTimeout overrides the per-attempt timeout
func WithTimeout(d time.Duration) Option {
	return func(p *Planner) { p.timeout = d }
}

// New creates a Planner backed by the given LLM client. A nil client is
// allowed and forces the fallback branch.
func New(client llm.Client, opts ...Option) *Planner {
	p := &Planner{client: client, timeout: defaultTimeout}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// wirePlan mirrors the collaborator's response shape
type wirePlan struct {
	Tasks []struct {
		Title          string   `json:"title"`
		Description    string   `json:"description"`
		EstimatedHours float64  `json:"estimated_hours"`
		RequiredSkills []string `json:"required_skills"`
		Priority       string   `json:"priority"`
	} `json:"tasks"`
	TotalEstimatedHours float64 `json:"total_estimated_hours"`
	RecommendedTeamSize int     `json:"recommended_team_size"`
}

// Decompose breaks a project into tasks. The collaborator gets one
// bounded attempt; any failure or contract violation falls back to a
// single generic implementation task so the pipeline can proceed.
func (p *Planner) Decompose(ctx context.Context, project *types.Project, now time.Time) *Plan {
	if project == nil {
		return nil
	}
	if p.client == nil {
		return fallbackPlan(project, "planner not configured")
	}

	plan, err := p.decomposeWithLLM(ctx, project, now)
	if err != nil {
		log.Printf("planner failed for project %s, using fallback: %v", project.ID, err)
		return fallbackPlan(project, err.Error())
	}
	return plan
}

func (p *Planner) decomposeWithLLM(ctx context.Context, project *types.Project, now time.Time) (*Plan, error) {
	prompt, err := buildPrompt(project, now)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	raw, err := p.client.GenerateJSON(ctx, prompt, llm.TierStandard)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("planner timed out after %s: %w", p.timeout, err)
		}
		return nil, fmt.Errorf("planner unavailable: %w", err)
	}

	cleaned := llm.CleanJSONBlock(raw)
	if err := schemas.ValidateJSONString(planResponseSchema, cleaned); err != nil {
		return nil, fmt.Errorf("planner returned invalid plan: %w", err)
	}

	var wire wirePlan
	if err := json.Unmarshal([]byte(cleaned), &wire); err != nil {
		return nil, fmt.Errorf("failed to parse planner response: %w", err)
	}

	plan := &Plan{
		Tasks:               make([]types.Task, 0, len(wire.Tasks)),
		TotalEstimatedHours: wire.TotalEstimatedHours,
		RecommendedTeamSize: wire.RecommendedTeamSize,
		Source:              SourcePlanner,
	}
	seen := make(map[string]bool)
	for _, t := range wire.Tasks {
		if seen[t.Title] {
			return nil, fmt.Errorf("planner returned duplicate task title %q", t.Title)
		}
		seen[t.Title] = true
		plan.Tasks = append(plan.Tasks, types.Task{
			Title:          t.Title,
			Description:    t.Description,
			EstimatedHours: t.EstimatedHours,
			RequiredSkills: t.RequiredSkills,
			Priority:       types.Priority(t.Priority),
			Status:         types.TaskBacklog,
		})
	}
	return plan, nil
}

func buildPrompt(project *types.Project, now time.Time) (string, error) {
	template, err := prompts.Get("planning.json", "decompose")
	if err != nil {
		return "", fmt.Errorf("failed to load planning prompt: %w", err)
	}

	overdueNote := ""
	if project.Deadline != nil && project.Deadline.Before(now) {
		overdueNote, err = prompts.Get("planning.json", "overdue_note")
		if err != nil {
			return "", fmt.Errorf("failed to load overdue note: %w", err)
		}
	}

	return prompts.Format(template, map[string]string{
		"Title":          project.Title,
		"Description":    project.Description,
		"RequiredSkills": strings.Join(project.RequiredSkillNames(), ", "),
		"OverdueNote":    overdueNote,
	}), nil
}

// fallbackPlan builds the minimal viable plan: one generic implementation
// task covering the project's required skills.
func fallbackPlan(project *types.Project, reason string) *Plan {
	task := types.Task{
		Title:          "Project Implementation",
		Description:    fmt.Sprintf("Complete the implementation of %s.", project.Title),
		EstimatedHours: 40,
		RequiredSkills: project.RequiredSkillNames(),
		Priority:       types.PriorityHigh,
		Status:         types.TaskBacklog,
	}
	teamSize := project.TeamSize
	if teamSize <= 0 {
		teamSize = 1
	}
	return &Plan{
		Tasks:               []types.Task{task},
		TotalEstimatedHours: task.EstimatedHours,
		RecommendedTeamSize: teamSize,
		Source:              SourceFallback,
		FallbackReason:      reason,
	}
}
