package matching

import (
	"context"
	"errors"
	"log"

	"github.com/jonathan/staffing-engine/internal/reasoner"
	"github.com/jonathan/staffing-engine/internal/types"
)

// Source names which scoring path produced a result
type Source string

// Scoring path constants
const (
	SourceReasoner Source = "reasoner"
	SourceFallback Source = "fallback"
)

// Scorer is the external Reasoner collaborator interface consumed by the
// engine.
type Scorer interface {
	ScoreCandidates(ctx context.Context, project *types.Project, candidates []types.Candidate, tasks []types.Task) ([]types.Match, error)
}

// Result is the outcome of one matching run. Source records which of the
// two branches executed; FallbackReason is set only when the fallback ran.
type Result struct {
	Matches         []types.Match          `json:"matches"`
	TotalCandidates int                    `json:"total_candidates"`
	Source          Source                 `json:"source"`
	FallbackReason  reasoner.FailureReason `json:"fallback_reason,omitempty"`
}

// Engine orchestrates scoring: one Reasoner attempt, then the
// deterministic fallback. A matching request is never left unanswered by
// an upstream failure.
type Engine struct {
	scorer Scorer
}

// NewEngine creates a matching engine. A nil scorer forces the fallback
// path on every run.
func NewEngine(scorer Scorer) *Engine {
	return &Engine{scorer: scorer}
}

// ScoreAndMatch scores the candidate pool against the project.
// Returns ErrNoCandidates when the pool is empty; upstream failures are
// recovered locally and never surfaced to the caller.
func (e *Engine) ScoreAndMatch(ctx context.Context, project *types.Project, candidates []types.Candidate, tasks []types.Task) (*Result, error) {
	if project == nil {
		return nil, ErrNoProject
	}
	if len(candidates) == 0 {
		return nil, ErrNoCandidates
	}

	if e.scorer != nil {
		matches, err := e.scorer.ScoreCandidates(ctx, project, candidates, tasks)
		if err == nil {
			return &Result{
				Matches:         matches,
				TotalCandidates: len(candidates),
				Source:          SourceReasoner,
			}, nil
		}
		log.Printf("reasoner path failed, using fallback matcher: %v", err)
		return e.fallbackResult(project, candidates, tasks, failureReason(err)), nil
	}

	return e.fallbackResult(project, candidates, tasks, reasoner.FailureUnavailable), nil
}

// fallbackResult runs the deterministic branch.
func (e *Engine) fallbackResult(project *types.Project, candidates []types.Candidate, tasks []types.Task, reason reasoner.FailureReason) *Result {
	return &Result{
		Matches:         FallbackMatch(project, candidates, tasks),
		TotalCandidates: len(candidates),
		Source:          SourceFallback,
		FallbackReason:  reason,
	}
}

// failureReason extracts the named reason from a Reasoner error.
func failureReason(err error) reasoner.FailureReason {
	var re *reasoner.Error
	if errors.As(err, &re) {
		return re.Reason
	}
	return reasoner.FailureUnavailable
}
