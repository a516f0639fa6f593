package reasoner

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"time"

	"github.com/jonathan/staffing-engine/internal/llm"
	"github.com/jonathan/staffing-engine/internal/schemas"
	"github.com/jonathan/staffing-engine/internal/types"
)

// backupTask is the generic non-task placeholder given to candidates
// outside the core team.
const backupTask = "Backup Support"

// defaultTimeout bounds the single Reasoner attempt. There is no retry
// loop: one attempt, then the caller falls back.
const defaultTimeout = 60 * time.Second

// Reasoner scores candidates against a project using the external LLM
// collaborator.
type Reasoner struct {
	client  llm.Client
	timeout time.Duration
}

// Option configures a Reasoner
type Option func(*Reasoner)

// WithTimeout overrides the per-attempt timeout
func WithTimeout(d time.Duration) Option {
	return func(r *Reasoner) { r.timeout = d }
}

// New creates a Reasoner backed by the given LLM client.
func New(client llm.Client, opts ...Option) *Reasoner {
	r := &Reasoner{client: client, timeout: defaultTimeout}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// wireMatch mirrors the collaborator's response shape for one candidate.
type wireMatch struct {
	EmployeeID           string   `json:"employee_id"`
	EmployeeName         string   `json:"employee_name"`
	MatchScore           float64  `json:"match_score"`
	MatchedSkills        []string `json:"matched_skills"`
	SuggestedTask        string   `json:"suggested_task"`
	SuggestedDescription string   `json:"suggested_description"`
	SuggestedDeadline    string   `json:"suggested_deadline"`
	EstimatedHours       float64  `json:"estimated_hours"`
	Reasoning            string   `json:"reasoning"`
}

// wireResponse mirrors the collaborator's full response shape.
type wireResponse struct {
	Matches         []wireMatch `json:"matches"`
	TotalCandidates int         `json:"total_candidates"`
}

// ScoreCandidates asks the collaborator to score every candidate against
// the project, then validates the response against the matching contract.
// On any failure the returned error is an *Error with a named reason; no
// partial result is ever returned.
func (r *Reasoner) ScoreCandidates(ctx context.Context, project *types.Project, candidates []types.Candidate, tasks []types.Task) ([]types.Match, error) {
	prompt, err := buildPrompt(project, candidates, tasks)
	if err != nil {
		return nil, &Error{Reason: FailureUnavailable, Cause: err}
	}

	attemptCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	raw, err := r.client.GenerateJSON(attemptCtx, prompt, llm.TierStandard)
	if err != nil {
		reason := FailureUnavailable
		if errors.Is(err, context.DeadlineExceeded) || attemptCtx.Err() != nil {
			reason = FailureTimeout
		}
		return nil, &Error{Reason: reason, Cause: err}
	}

	if err := schemas.ValidateJSONString(matchResponseSchema, raw); err != nil {
		return nil, &Error{Reason: FailureInvalidResponse, Cause: err}
	}

	var resp wireResponse
	if err := json.Unmarshal([]byte(raw), &resp); err != nil {
		return nil, &Error{Reason: FailureInvalidResponse, Cause: err}
	}

	matches := make([]types.Match, 0, len(resp.Matches))
	for _, wm := range resp.Matches {
		score := types.ClampScore(wm.MatchScore)
		matches = append(matches, types.Match{
			CandidateID:          wm.EmployeeID,
			CandidateName:        wm.EmployeeName,
			Score:                score,
			Overlap:              types.ClassifyOverlap(score),
			MatchedSkills:        wm.MatchedSkills,
			SuggestedTask:        wm.SuggestedTask,
			SuggestedDescription: wm.SuggestedDescription,
			SuggestedDeadline:    wm.SuggestedDeadline,
			EstimatedHours:       wm.EstimatedHours,
			Rationale:            wm.Reasoning,
		})
	}

	// Collaborator output is sorted by request, not by guarantee
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	if err := validateContract(matches, project, candidates, tasks); err != nil {
		return nil, &Error{Reason: FailureContractViolation, Cause: err}
	}

	normalizeBackups(matches, project.TeamSize)
	return matches, nil
}

// normalizeBackups forces the generic placeholder on every candidate
// outside the core team, regardless of what the collaborator suggested.
func normalizeBackups(matches []types.Match, teamSize int) {
	for i := range matches {
		if i >= teamSize {
			matches[i].SuggestedTask = backupTask
			matches[i].SuggestedDescription = ""
			matches[i].SuggestedDeadline = ""
			matches[i].EstimatedHours = 0
		}
	}
}
