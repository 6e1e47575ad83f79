package matching

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-matcher/internal/types"
)

func TestRecommendations_VerdictAlwaysFirst(t *testing.T) {
	tests := []struct {
		name  string
		score int
		want  string
	}{
		{"poor", 30, verdictPoor},
		{"poor boundary", 59, verdictPoor},
		{"good", 60, verdictGood},
		{"good upper", 79, verdictGood},
		{"excellent", 80, verdictExcellent},
		{"perfect", 100, verdictExcellent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recs := recommendations(tt.score, &types.SkillAnalysis{})
			require.NotEmpty(t, recs)
			assert.Equal(t, tt.want, recs[0])
		})
	}
}

func TestRecommendations_CappedAtFive(t *testing.T) {
	analysis := &types.SkillAnalysis{
		MissingSkills:          []string{"Kafka", "Terraform", "AWS", "Rust", "Scala"},
		UnderrepresentedSkills: []string{"Python", "Docker", "React"},
	}

	recs := recommendations(40, analysis)
	assert.Len(t, recs, maxRecommendations)
}

func TestRecommendations_MissingSkillsBeforeUnderrepresented(t *testing.T) {
	analysis := &types.SkillAnalysis{
		MissingSkills:          []string{"Kafka"},
		UnderrepresentedSkills: []string{"Python"},
	}

	recs := recommendations(40, analysis)
	require.Len(t, recs, 5)

	assert.Contains(t, recs[1], "Kafka")
	assert.Contains(t, recs[1], "Add")
	assert.Contains(t, recs[2], "Python")
	assert.Contains(t, recs[2], "more prominently")
}

func TestRecommendations_TopThreeMissingOnly(t *testing.T) {
	analysis := &types.SkillAnalysis{
		MissingSkills: []string{"First", "Second", "Third", "Fourth"},
	}

	recs := recommendations(40, analysis)
	joined := strings.Join(recs, "\n")
	assert.Contains(t, joined, "First")
	assert.Contains(t, joined, "Second")
	assert.Contains(t, joined, "Third")
	assert.NotContains(t, joined, "Fourth")
}

func TestRecommendations_GenericAdviceFillsShortLists(t *testing.T) {
	recs := recommendations(85, &types.SkillAnalysis{})
	require.Len(t, recs, 3)
	assert.Equal(t, verdictExcellent, recs[0])
	assert.Equal(t, genericAdvice[0], recs[1])
	assert.Equal(t, genericAdvice[1], recs[2])
}

func TestVerdict_Boundaries(t *testing.T) {
	assert.Equal(t, verdictPoor, verdict(0))
	assert.Equal(t, verdictPoor, verdict(59))
	assert.Equal(t, verdictGood, verdict(60))
	assert.Equal(t, verdictGood, verdict(79))
	assert.Equal(t, verdictExcellent, verdict(80))
	assert.Equal(t, verdictExcellent, verdict(100))
}
