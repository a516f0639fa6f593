package reasoner

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/staffing-engine/internal/llm"
	"github.com/jonathan/staffing-engine/internal/types"
)

// fakeClient returns a canned response or error, optionally honoring
// context cancellation.
type fakeClient struct {
	response  string
	err       error
	waitOnCtx bool
}

func (f *fakeClient) GenerateJSON(ctx context.Context, _ string, _ llm.ModelTier) (string, error) {
	if f.waitOnCtx {
		<-ctx.Done()
		return "", ctx.Err()
	}
	return f.response, f.err
}

func (f *fakeClient) GetModel(llm.ModelTier) string { return "fake-model" }
func (f *fakeClient) Close() error                  { return nil }

func testProject() *types.Project {
	return &types.Project{
		Title:       "Inventory Platform",
		Description: "Warehouse inventory tracking system",
		RequiredSkills: []types.SkillRequirement{
			{Name: "Go", Level: types.LevelSenior},
			{Name: "PostgreSQL", Level: types.LevelMid},
		},
		TeamSize: 2,
	}
}

func testCandidates() []types.Candidate {
	return []types.Candidate{
		{ID: "emp1", DisplayName: "Dana", Skills: []types.CandidateSkill{{Name: "Go", Level: types.LevelSenior, YearsOfExperience: 6}}},
		{ID: "emp2", DisplayName: "Riley", Skills: []types.CandidateSkill{{Name: "PostgreSQL", Level: types.LevelMid, YearsOfExperience: 3}}},
		{ID: "emp3", DisplayName: "Sam", Skills: []types.CandidateSkill{{Name: "Photoshop", Level: types.LevelJunior, YearsOfExperience: 1}}},
	}
}

func testTasks() []types.Task {
	return []types.Task{
		{Title: "Build Ingestion API", Description: "REST endpoints", EstimatedHours: 20, Deadline: "Week 2"},
		{Title: "Design Schema", Description: "Tables and indexes", EstimatedHours: 12, Deadline: "Week 1"},
	}
}

func validResponse() string {
	resp := wireResponse{
		Matches: []wireMatch{
			{EmployeeID: "emp1", EmployeeName: "Dana", MatchScore: 18, MatchedSkills: []string{"Go"}, SuggestedTask: "Build Ingestion API", SuggestedDeadline: "Week 2", EstimatedHours: 20, Reasoning: "Go depth"},
			{EmployeeID: "emp2", EmployeeName: "Riley", MatchScore: 13, MatchedSkills: []string{"PostgreSQL"}, SuggestedTask: "Design Schema", SuggestedDeadline: "Week 1", EstimatedHours: 12, Reasoning: "Schema work"},
			{EmployeeID: "emp3", EmployeeName: "Sam", MatchScore: 0, MatchedSkills: []string{}, SuggestedTask: "Backup Support", Reasoning: "No overlap"},
		},
		TotalCandidates: 3,
	}
	data, _ := json.Marshal(resp)
	return string(data)
}

func TestScoreCandidates_Success(t *testing.T) {
	r := New(&fakeClient{response: validResponse()})
	matches, err := r.ScoreCandidates(context.Background(), testProject(), testCandidates(), testTasks())
	require.NoError(t, err)
	require.Len(t, matches, 3)

	// Sorted by score descending
	assert.Equal(t, "emp1", matches[0].CandidateID)
	assert.Equal(t, types.OverlapStrong, matches[0].Overlap)
	assert.Equal(t, "emp2", matches[1].CandidateID)
	assert.Equal(t, types.OverlapModerate, matches[1].Overlap)

	// Candidate outside the core team is normalized to the placeholder
	assert.Equal(t, "Backup Support", matches[2].SuggestedTask)
	assert.Equal(t, 0.0, matches[2].EstimatedHours)
	assert.Equal(t, types.OverlapNone, matches[2].Overlap)
}

func TestScoreCandidates_ClientError(t *testing.T) {
	r := New(&fakeClient{err: fmt.Errorf("connection refused")})
	_, err := r.ScoreCandidates(context.Background(), testProject(), testCandidates(), testTasks())
	require.Error(t, err)

	var re *Error
	require.ErrorAs(t, err, &re)
	assert.Equal(t, FailureUnavailable, re.Reason)
}

func TestScoreCandidates_Timeout(t *testing.T) {
	r := New(&fakeClient{waitOnCtx: true}, WithTimeout(10*time.Millisecond))
	_, err := r.ScoreCandidates(context.Background(), testProject(), testCandidates(), testTasks())
	require.Error(t, err)

	var re *Error
	require.ErrorAs(t, err, &re)
	assert.Equal(t, FailureTimeout, re.Reason)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}

func TestScoreCandidates_InvalidJSON(t *testing.T) {
	r := New(&fakeClient{response: "this is not json"})
	_, err := r.ScoreCandidates(context.Background(), testProject(), testCandidates(), testTasks())

	var re *Error
	require.ErrorAs(t, err, &re)
	assert.Equal(t, FailureInvalidResponse, re.Reason)
}

func TestScoreCandidates_SchemaViolation(t *testing.T) {
	// match_score above the allowed maximum
	r := New(&fakeClient{response: `{"matches": [{"employee_id": "emp1", "employee_name": "Dana", "match_score": 99, "matched_skills": [], "suggested_task": "x", "reasoning": ""}], "total_candidates": 1}`})
	_, err := r.ScoreCandidates(context.Background(), testProject(), testCandidates(), testTasks())

	var re *Error
	require.ErrorAs(t, err, &re)
	assert.Equal(t, FailureInvalidResponse, re.Reason)
}

func TestScoreCandidates_IncompleteCoverage(t *testing.T) {
	resp := `{"matches": [{"employee_id": "emp1", "employee_name": "Dana", "match_score": 18, "matched_skills": ["Go"], "suggested_task": "Build Ingestion API", "reasoning": ""}], "total_candidates": 3}`
	r := New(&fakeClient{response: resp})
	_, err := r.ScoreCandidates(context.Background(), testProject(), testCandidates(), testTasks())

	var re *Error
	require.ErrorAs(t, err, &re)
	assert.Equal(t, FailureContractViolation, re.Reason)
}

func TestScoreCandidates_ScoreWithoutOverlap(t *testing.T) {
	// emp3 has no overlapping skill but a positive score
	resp := validResponse()
	resp = replaceScore(t, resp, "emp3", 12)
	r := New(&fakeClient{response: resp})
	_, err := r.ScoreCandidates(context.Background(), testProject(), testCandidates(), testTasks())

	var re *Error
	require.ErrorAs(t, err, &re)
	assert.Equal(t, FailureContractViolation, re.Reason)
}

func TestScoreCandidates_DuplicateCoreTask(t *testing.T) {
	resp := wireResponse{
		Matches: []wireMatch{
			{EmployeeID: "emp1", EmployeeName: "Dana", MatchScore: 18, MatchedSkills: []string{"Go"}, SuggestedTask: "Build Ingestion API", Reasoning: ""},
			{EmployeeID: "emp2", EmployeeName: "Riley", MatchScore: 13, MatchedSkills: []string{"PostgreSQL"}, SuggestedTask: "Build Ingestion API", Reasoning: ""},
			{EmployeeID: "emp3", EmployeeName: "Sam", MatchScore: 0, MatchedSkills: []string{}, SuggestedTask: "Backup Support", Reasoning: ""},
		},
		TotalCandidates: 3,
	}
	data, _ := json.Marshal(resp)
	r := New(&fakeClient{response: string(data)})
	_, err := r.ScoreCandidates(context.Background(), testProject(), testCandidates(), testTasks())

	var re *Error
	require.ErrorAs(t, err, &re)
	assert.Equal(t, FailureContractViolation, re.Reason)
}

// replaceScore rewrites one candidate's score in a serialized response.
func replaceScore(t *testing.T, raw, employeeID string, score float64) string {
	t.Helper()
	var resp wireResponse
	require.NoError(t, json.Unmarshal([]byte(raw), &resp))
	for i := range resp.Matches {
		if resp.Matches[i].EmployeeID == employeeID {
			resp.Matches[i].MatchScore = score
		}
	}
	data, err := json.Marshal(resp)
	require.NoError(t, err)
	return string(data)
}
