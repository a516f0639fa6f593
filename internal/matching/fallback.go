// Package matching converts candidate/requirement pairs into comparable
// 0-20 scored matches, delegating to the external Reasoner when available
// and to a deterministic keyword matcher when it is not.
package matching

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jonathan/staffing-engine/internal/types"
)

const (
	// skillMatchPoints is awarded once per required skill found in a
	// candidate's skill list
	skillMatchPoints = 10.0
	// specializationBonus is awarded when the candidate's specialization
	// aligns with the project title or description
	specializationBonus = 3.0
	// fallbackResultLimit caps fallback output; this path carries no
	// externally-imposed completeness guarantee
	fallbackResultLimit = 10
	// placeholderTask is assigned when no task pool exists
	placeholderTask = "Project Implementation"
)

// FallbackScore computes a deterministic keyword-overlap score for one
// candidate. A required skill matches when its name appears as a
// case-insensitive substring anywhere in the candidate's skill summaries.
// Returns the clamped score and the titled names of matched requirements.
func FallbackScore(project *types.Project, candidate *types.Candidate) (float64, []string) {
	candidateSkills := strings.ToLower(strings.Join(candidate.SkillSummaries(), " "))

	score := 0.0
	matched := make([]string, 0)
	for _, req := range project.RequiredSkills {
		name := strings.ToLower(req.Name)
		if name == "" {
			continue
		}
		if strings.Contains(candidateSkills, name) {
			score += skillMatchPoints
			matched = append(matched, titleCase(name))
		}
	}

	// Specialization alignment bonus, substring test in either direction
	title := strings.ToLower(project.Title)
	spec := strings.ToLower(candidate.Specialization)
	desc := strings.ToLower(project.Description)
	if (title != "" && strings.Contains(spec, title)) || (spec != "" && strings.Contains(desc, spec)) {
		score += specializationBonus
	}

	return types.ClampScore(score), matched
}

// FallbackMatch scores every candidate without external dependencies.
// Tasks are assigned round-robin over the task pool in candidate-processing
// order. Output is sorted by score descending and truncated to a fixed
// top-N result size.
func FallbackMatch(project *types.Project, candidates []types.Candidate, tasks []types.Task) []types.Match {
	matches := make([]types.Match, 0, len(candidates))

	for i := range candidates {
		cand := &candidates[i]
		score, matchedSkills := FallbackScore(project, cand)

		match := types.Match{
			CandidateID:   cand.ID,
			CandidateName: cand.DisplayName,
			Score:         score,
			Overlap:       types.ClassifyOverlap(score),
			MatchedSkills: matchedSkills,
			SuggestedTask: placeholderTask,
			Rationale:     fallbackRationale(matchedSkills),
		}

		if len(tasks) > 0 {
			task := tasks[len(matches)%len(tasks)]
			match.SuggestedTask = task.Title
			match.SuggestedDescription = task.Description
			match.SuggestedDeadline = task.Deadline
			match.EstimatedHours = task.EstimatedHours
		}

		matches = append(matches, match)
	}

	// Stable sort keeps input order for equal scores, so output is
	// deterministic given identical input ordering
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	if len(matches) > fallbackResultLimit {
		matches = matches[:fallbackResultLimit]
	}

	return matches
}

// fallbackRationale builds the explanation string for a fallback match.
func fallbackRationale(matchedSkills []string) string {
	if len(matchedSkills) == 0 {
		return "No required skills identified via keyword analysis. (Fallback Mode)"
	}
	return fmt.Sprintf("Matched skills (%s) identified via keyword analysis. (Fallback Mode)", strings.Join(matchedSkills, ", "))
}

// titleCase uppercases the first letter of each space-separated word.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
