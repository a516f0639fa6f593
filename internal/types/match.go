package types

// Score bounds for a candidate/project match
const (
	MinScore = 0.0
	MaxScore = 20.0
)

// OverlapClass classifies how well a candidate's skills cover the
// project requirements.
type OverlapClass string

// Overlap classification constants
const (
	OverlapStrong   OverlapClass = "strong"
	OverlapModerate OverlapClass = "moderate"
	OverlapWeak     OverlapClass = "weak"
	OverlapNone     OverlapClass = "none"
)

// ClassifyOverlap maps a clamped 0-20 score to an overlap class.
func ClassifyOverlap(score float64) OverlapClass {
	switch {
	case score >= 14:
		return OverlapStrong
	case score >= 10:
		return OverlapModerate
	case score > 0:
		return OverlapWeak
	default:
		return OverlapNone
	}
}

// ClampScore bounds a raw score to the valid [0, 20] range.
func ClampScore(score float64) float64 {
	if score < MinScore {
		return MinScore
	}
	if score > MaxScore {
		return MaxScore
	}
	return score
}

// Match represents one candidate scored against a project for one matching
// run. Matches are not persisted independently; they feed team selection.
type Match struct {
	CandidateID          string       `json:"candidate_id"`
	CandidateName        string       `json:"candidate_name"`
	Score                float64      `json:"score"`
	Overlap              OverlapClass `json:"overlap"`
	MatchedSkills        []string     `json:"matched_skills"`
	SuggestedTask        string       `json:"suggested_task"`
	SuggestedDescription string       `json:"suggested_description,omitempty"`
	SuggestedDeadline    string       `json:"suggested_deadline,omitempty"`
	EstimatedHours       float64      `json:"estimated_hours"`
	Rationale            string       `json:"rationale"`
}

// TeamSelectionResult represents a bounded team chosen from scored matches
type TeamSelectionResult struct {
	Selected      []Match `json:"selected"`
	Rationale     string  `json:"rationale"`
	ExceedsTarget bool    `json:"exceeds_target,omitempty"`
}

// CandidateIDs returns the ids of the selected candidates in order.
func (r *TeamSelectionResult) CandidateIDs() []string {
	ids := make([]string, 0, len(r.Selected))
	for _, m := range r.Selected {
		ids = append(ids, m.CandidateID)
	}
	return ids
}
