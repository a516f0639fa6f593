package reasoner

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jonathan/staffing-engine/internal/prompts"
	"github.com/jonathan/staffing-engine/internal/types"
)

// buildPrompt assembles the scoring prompt from the embedded template.
func buildPrompt(project *types.Project, candidates []types.Candidate, tasks []types.Task) (string, error) {
	template, err := prompts.Get("matching.json", "score_candidates")
	if err != nil {
		return "", err
	}

	required := make([]string, 0, len(project.RequiredSkills))
	for _, s := range project.RequiredSkills {
		required = append(required, fmt.Sprintf("%s (%s)", s.Name, s.Level))
	}

	return prompts.Format(template, map[string]string{
		"ProjectTitle":       project.Title,
		"ProjectDescription": project.Description,
		"RequiredSkills":     strings.Join(required, ", "),
		"TeamSize":           strconv.Itoa(project.TeamSize),
		"Tasks":              formatTasks(tasks),
		"Candidates":         formatCandidates(candidates),
		"TotalCandidates":    strconv.Itoa(len(candidates)),
	}), nil
}

// formatCandidates renders the candidate pool for the prompt.
func formatCandidates(candidates []types.Candidate) string {
	formatted := make([]string, 0, len(candidates))
	for i := range candidates {
		cand := &candidates[i]
		skills := "No skills listed"
		if len(cand.Skills) > 0 {
			skills = strings.Join(cand.SkillSummaries(), ", ")
		}
		formatted = append(formatted, fmt.Sprintf(
			"%d. %s (ID: %s)\n   Specialization: %s\n   Skills: %s",
			i+1, cand.DisplayName, cand.ID, cand.Specialization, skills))
	}
	return strings.Join(formatted, "\n\n")
}

// formatTasks renders the task pool for the prompt.
func formatTasks(tasks []types.Task) string {
	if len(tasks) == 0 {
		return "No specific tasks generated yet. Assign general roles."
	}
	formatted := make([]string, 0, len(tasks))
	for i, task := range tasks {
		formatted = append(formatted, fmt.Sprintf(
			"%d. %s\n   Description: %s\n   Deadline: %s\n   Estimated Hours: %g\n   Required Skills: %s",
			i+1, task.Title, task.Description, task.Deadline, task.EstimatedHours,
			strings.Join(task.RequiredSkills, ", ")))
	}
	return strings.Join(formatted, "\n\n")
}
