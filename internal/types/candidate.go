// Package types provides type definitions for structured data used throughout the staffing-engine system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "fmt"

// SkillLevel represents the proficiency level of a skill
type SkillLevel string

// Skill level constants ordered from least to most experienced
const (
	LevelJunior SkillLevel = "junior"
	LevelMid    SkillLevel = "mid"
	LevelSenior SkillLevel = "senior"
)

// CandidateSkill represents a single skill held by a candidate
type CandidateSkill struct {
	Name              string     `json:"name"`
	Level             SkillLevel `json:"level"`
	YearsOfExperience float64    `json:"years_of_experience"`
}

// Candidate represents a normalized employee profile eligible for staffing.
// It is constructed once at the collaborator boundary and is immutable for
// the duration of one matching run.
type Candidate struct {
	ID             string           `json:"id"`
	DisplayName    string           `json:"display_name"`
	Specialization string           `json:"specialization,omitempty"`
	Skills         []CandidateSkill `json:"skills"`
}

// SkillSummaries renders the candidate's skills as "Name (level, N years)"
// strings, the form the Reasoner prompt and the FallbackMatcher operate on.
func (c *Candidate) SkillSummaries() []string {
	summaries := make([]string, 0, len(c.Skills))
	for _, s := range c.Skills {
		summaries = append(summaries, fmt.Sprintf("%s (%s, %g years)", s.Name, s.Level, s.YearsOfExperience))
	}
	return summaries
}
