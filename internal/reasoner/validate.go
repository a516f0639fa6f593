package reasoner

import (
	"fmt"
	"strings"

	"github.com/jonathan/staffing-engine/internal/types"
)

// validateContract enforces the collaborator contract on an already
// schema-valid response:
//   - every input candidate appears exactly once, no extras;
//   - a score above zero requires at least one overlapping skill name;
//   - the top team_size scorers hold distinct tasks drawn from the pool.
//
// A violation rejects the response whole.
func validateContract(matches []types.Match, project *types.Project, candidates []types.Candidate, tasks []types.Task) error {
	byID := make(map[string]*types.Candidate, len(candidates))
	for i := range candidates {
		byID[candidates[i].ID] = &candidates[i]
	}

	seen := make(map[string]bool, len(matches))
	for _, m := range matches {
		cand, ok := byID[m.CandidateID]
		if !ok {
			return fmt.Errorf("match references unknown candidate %q", m.CandidateID)
		}
		if seen[m.CandidateID] {
			return fmt.Errorf("candidate %q matched more than once", m.CandidateID)
		}
		seen[m.CandidateID] = true

		if m.Score > 0 && !hasSkillOverlap(cand, project.RequiredSkills) {
			return fmt.Errorf("candidate %q scored %.1f with no overlapping skill", m.CandidateID, m.Score)
		}
	}

	if len(seen) != len(candidates) {
		return fmt.Errorf("response covers %d of %d candidates", len(seen), len(candidates))
	}

	if len(tasks) > 0 {
		if err := validateTaskAssignments(matches, project.TeamSize, tasks); err != nil {
			return err
		}
	}

	return nil
}

// validateTaskAssignments checks that core-team candidates hold distinct
// tasks from the task pool.
func validateTaskAssignments(matches []types.Match, teamSize int, tasks []types.Task) error {
	pool := make(map[string]bool, len(tasks))
	for _, t := range tasks {
		pool[strings.ToLower(t.Title)] = true
	}

	assigned := make(map[string]string) // task title -> candidate id
	for i, m := range matches {
		if i >= teamSize {
			break
		}
		title := strings.ToLower(m.SuggestedTask)
		if title == strings.ToLower(backupTask) {
			continue
		}
		if !pool[title] {
			return fmt.Errorf("core-team task %q for candidate %q is not in the task pool", m.SuggestedTask, m.CandidateID)
		}
		if prev, dup := assigned[title]; dup {
			return fmt.Errorf("task %q assigned to both %q and %q", m.SuggestedTask, prev, m.CandidateID)
		}
		assigned[title] = m.CandidateID
	}

	return nil
}

// hasSkillOverlap reports whether any required skill name overlaps a
// candidate skill name, case-insensitively, in either substring direction.
func hasSkillOverlap(cand *types.Candidate, required []types.SkillRequirement) bool {
	for _, req := range required {
		reqName := strings.ToLower(req.Name)
		if reqName == "" {
			continue
		}
		for _, s := range cand.Skills {
			skillName := strings.ToLower(s.Name)
			if skillName == "" {
				continue
			}
			if strings.Contains(skillName, reqName) || strings.Contains(reqName, skillName) {
				return true
			}
		}
	}
	return false
}
