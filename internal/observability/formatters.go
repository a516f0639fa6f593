// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/staffing-engine/internal/matching"
	"github.com/jonathan/staffing-engine/internal/planner"
	"github.com/jonathan/staffing-engine/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintPlan outputs a human-readable summary of a task breakdown.
func (p *Printer) PrintPlan(plan *planner.Plan) {
	if plan == nil || len(plan.Tasks) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Source:   %s\n", plan.Source))
	sb.WriteString(fmt.Sprintf("Tasks:    %d (%.0f hours total)\n\n", len(plan.Tasks), plan.TotalEstimatedHours))

	count := min(len(plan.Tasks), maxItemsToShow)
	for i := 0; i < count; i++ {
		task := plan.Tasks[i]
		sb.WriteString(fmt.Sprintf("• %s\n", task.Title))
		sb.WriteString(fmt.Sprintf("  %.0fh, %s priority\n", task.EstimatedHours, task.Priority))
	}
	if len(plan.Tasks) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("... and %d more tasks\n", len(plan.Tasks)-maxItemsToShow))
	}

	p.printBox("TASK BREAKDOWN", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintMatches outputs the top ranked matches with scores and matched skills.
func (p *Printer) PrintMatches(result *matching.Result) {
	if result == nil || len(result.Matches) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Candidates scored: %d (source: %s)\n\n", result.TotalCandidates, result.Source))

	count := min(len(result.Matches), maxItemsToShow)
	for i := 0; i < count; i++ {
		match := result.Matches[i]
		name := match.CandidateName
		if name == "" {
			name = match.CandidateID
		}
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, name))
		sb.WriteString(fmt.Sprintf("    Score: %.1f (%s)\n", match.Score, match.Overlap))
		if len(match.MatchedSkills) > 0 {
			skills := strings.Join(match.MatchedSkills, ", ")
			if len(skills) > 40 {
				skills = skills[:37] + "..."
			}
			sb.WriteString(fmt.Sprintf("    Skills: %s\n", skills))
		}
		if match.SuggestedTask != "" {
			sb.WriteString(fmt.Sprintf("    Task:   %s\n", match.SuggestedTask))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(result.Matches) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more candidates", len(result.Matches)-maxItemsToShow))
	}

	p.printBox("RANKED MATCHES", sb.String())
}

// PrintTeam outputs a finalized team selection.
func (p *Printer) PrintTeam(result *types.TeamSelectionResult) {
	if result == nil || len(result.Selected) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Team size: %d\n", len(result.Selected)))
	if result.ExceedsTarget {
		sb.WriteString("Note: manual locks exceed the target size\n")
	}
	sb.WriteString("\n")

	for i, match := range result.Selected {
		name := match.CandidateName
		if name == "" {
			name = match.CandidateID
		}
		sb.WriteString(fmt.Sprintf("%d. %s (%.1f)\n", i+1, name, match.Score))
	}
	sb.WriteString("\n")
	sb.WriteString(result.Rationale)

	p.printBox("SELECTED TEAM", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintHealthReport outputs a project health report.
func (p *Printer) PrintHealthReport(report *types.HealthReport) {
	if report == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("State: %s\n", strings.ToUpper(string(report.State))))
	sb.WriteString(fmt.Sprintf("Risk:  %d\n", report.RiskScore))

	if len(report.Issues) > 0 {
		sb.WriteString("\nIssues:\n")
		for _, issue := range report.Issues {
			sb.WriteString(fmt.Sprintf("  • %s\n", issue))
		}
	}

	if progress, ok := report.Metrics["progress_pct"]; ok {
		sb.WriteString(fmt.Sprintf("\nProgress: %.0f%% (expected %.0f%%)\n",
			progress, report.Metrics["expected_progress_pct"]))
	}
	if daysLeft, ok := report.Metrics["days_left"]; ok && daysLeft != 0 {
		sb.WriteString(fmt.Sprintf("Days left: %.1f\n", daysLeft))
	}

	p.printBox("PROJECT HEALTH", strings.TrimSuffix(sb.String(), "\n"))
}
