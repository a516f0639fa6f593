package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampScore(t *testing.T) {
	assert.Equal(t, 0.0, ClampScore(-5))
	assert.Equal(t, 20.0, ClampScore(33))
	assert.Equal(t, 13.5, ClampScore(13.5))
}

func TestClassifyOverlap(t *testing.T) {
	tests := []struct {
		score float64
		want  OverlapClass
	}{
		{0, OverlapNone},
		{3, OverlapWeak},
		{10, OverlapModerate},
		{13.9, OverlapModerate},
		{14, OverlapStrong},
		{20, OverlapStrong},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ClassifyOverlap(tt.score), "score %v", tt.score)
	}
}

func TestTeamSelectionResult_CandidateIDs(t *testing.T) {
	result := TeamSelectionResult{
		Selected: []Match{
			{CandidateID: "emp1"},
			{CandidateID: "emp2"},
		},
	}
	assert.Equal(t, []string{"emp1", "emp2"}, result.CandidateIDs())
}
