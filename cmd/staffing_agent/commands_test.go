package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/staffing-engine/internal/planner"
	"github.com/jonathan/staffing-engine/internal/reconcile"
	"github.com/jonathan/staffing-engine/internal/types"
)

func writeFixture(t *testing.T, dir, name string, v any) string {
	t.Helper()
	path := filepath.Join(dir, name)
	content, err := json.MarshalIndent(v, "", "  ")
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, content, 0644))
	return path
}

func readResult(t *testing.T, path string, dst any) {
	t.Helper()
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(content, dst))
}

func TestRunSelectTeam_FileInFileOut(t *testing.T) {
	tmpDir := t.TempDir()
	matches := []types.Match{
		{CandidateID: "emp-1", Score: 18},
		{CandidateID: "emp-2", Score: 12},
		{CandidateID: "emp-3", Score: 6},
	}

	selectMatches = writeFixture(t, tmpDir, "matches.json", matches)
	selectOutput = filepath.Join(tmpDir, "team.json")
	selectTeamSize = 2
	selectMode = "auto"
	selectLocked = nil

	require.NoError(t, runSelectTeam(nil, nil))

	var result types.TeamSelectionResult
	readResult(t, selectOutput, &result)
	require.Len(t, result.Selected, 2)
	assert.Equal(t, "emp-1", result.Selected[0].CandidateID)
	assert.Equal(t, "emp-2", result.Selected[1].CandidateID)
}

func TestRunSelectTeam_LockedCandidates(t *testing.T) {
	tmpDir := t.TempDir()
	matches := []types.Match{
		{CandidateID: "emp-1", Score: 18},
		{CandidateID: "emp-2", Score: 0},
	}

	selectMatches = writeFixture(t, tmpDir, "matches.json", matches)
	selectOutput = filepath.Join(tmpDir, "team.json")
	selectTeamSize = 1
	selectMode = "manual"
	selectLocked = []string{"emp-1", "emp-2"}

	require.NoError(t, runSelectTeam(nil, nil))

	var result types.TeamSelectionResult
	readResult(t, selectOutput, &result)
	assert.Len(t, result.Selected, 2)
	assert.True(t, result.ExceedsTarget)
}

func TestRunSelectTeam_InvalidTeamSize(t *testing.T) {
	tmpDir := t.TempDir()
	selectMatches = writeFixture(t, tmpDir, "matches.json", []types.Match{{CandidateID: "emp-1", Score: 5}})
	selectOutput = filepath.Join(tmpDir, "team.json")
	selectTeamSize = 0
	selectMode = "auto"
	selectLocked = nil

	err := runSelectTeam(nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "team size")
}

func TestRunReconcile_FileInFileOut(t *testing.T) {
	tmpDir := t.TempDir()
	project := types.Project{
		Title: "Analytics Dashboard",
		Tasks: []types.Task{
			{Title: "Build API", Status: types.TaskInProgress, AssignedTo: "emp-1"},
		},
	}
	proposed := []types.Task{{Title: "Build API"}}
	assignments := []types.Assignment{{CandidateID: "emp-2", TaskTitle: "Build API"}}

	reconcileProject = writeFixture(t, tmpDir, "project.json", project)
	reconcileTasks = writeFixture(t, tmpDir, "tasks.json", proposed)
	reconcileAssignments = writeFixture(t, tmpDir, "assignments.json", assignments)
	reconcileCandidates = ""
	reconcileOutput = filepath.Join(tmpDir, "result.json")

	require.NoError(t, runReconcile(nil, nil))

	var result reconcile.Result
	readResult(t, reconcileOutput, &result)
	require.Len(t, result.Tasks, 1)
	assert.Equal(t, types.TaskInProgress, result.Tasks[0].Status)
	assert.Equal(t, "emp-2", result.Tasks[0].AssignedTo)
	require.Len(t, result.Reroutes, 1)
	assert.Equal(t, "emp-1", result.Reroutes[0].OldAssignee)
}

func TestRunHealth_FileInFileOut(t *testing.T) {
	tmpDir := t.TempDir()
	project := types.Project{
		Title: "Analytics Dashboard",
		Tasks: []types.Task{
			{Title: "Build API", Status: types.TaskInProgress, EstimatedHours: 8},
		},
	}

	healthProject = writeFixture(t, tmpDir, "project.json", project)
	healthOutput = filepath.Join(tmpDir, "report.json")
	healthVerbose = false

	require.NoError(t, runHealth(nil, nil))

	var report types.HealthReport
	readResult(t, healthOutput, &report)
	assert.Equal(t, types.HealthCritical, report.State)
	assert.Contains(t, report.Issues, types.IssueUnassignedTasks)
}

func TestRunPlan_FallbackWithoutAPIKey(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	tmpDir := t.TempDir()
	project := types.Project{
		Title:       "Analytics Dashboard",
		Description: "Build a dashboard.",
		RequiredSkills: []types.SkillRequirement{
			{Name: "Python", Level: types.LevelMid},
		},
		TeamSize: 2,
	}

	planProject = writeFixture(t, tmpDir, "project.json", project)
	planOutput = filepath.Join(tmpDir, "plan.json")
	planAPIKey = ""
	planVerbose = false

	require.NoError(t, runPlan(nil, nil))

	var plan planner.Plan
	readResult(t, planOutput, &plan)
	assert.Equal(t, planner.SourceFallback, plan.Source)
	require.Len(t, plan.Tasks, 1)
	assert.Equal(t, "Project Implementation", plan.Tasks[0].Title)
}

func TestLoadJSONFile_MissingFile(t *testing.T) {
	var dst map[string]any
	err := loadJSONFile("/nonexistent/file.json", &dst)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read file")
}
