package gap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/skillplan/internal/types"
)

func mention(skill string) types.SkillMention {
	return types.SkillMention{Skill: skill, Confidence: 1.0, Source: types.SourceResume, Occurrences: 1}
}

func TestAnalyze_WeightedMatchPercentage(t *testing.T) {
	required := []types.RequiredSkill{
		{Skill: "python", Category: types.CategoryLanguage, Priority: types.PriorityCore, Weight: 1.0},
		{Skill: "docker", Category: types.CategoryTool, Priority: types.PriorityNiceToHave, Weight: 0.4},
	}

	result := Analyze(required, []types.SkillMention{mention("python")})

	// round(100 * 1.0 / 1.4) = 71
	assert.Equal(t, 71, result.MatchPercentage)
	assert.False(t, result.Degraded)
	assert.Equal(t, []string{"python"}, result.Matched)

	require.Len(t, result.Missing, 1)
	missing := result.Missing[0]
	assert.Equal(t, "docker", missing.Skill)
	assert.Equal(t, types.GapMedium, missing.Priority)
	assert.Equal(t, 8, missing.EstimatedHours)
}

func TestAnalyze_PresenceNotStrength(t *testing.T) {
	required := []types.RequiredSkill{
		{Skill: "python", Category: types.CategoryLanguage, Priority: types.PriorityCore, Weight: 1.0},
	}
	weak := types.SkillMention{Skill: "python", Confidence: 0.1, Source: types.SourceProfile}

	result := Analyze(required, []types.SkillMention{weak})

	assert.Equal(t, 100, result.MatchPercentage)
	assert.Empty(t, result.Missing)
}

func TestAnalyze_NoRequiredSkillsIsDegraded(t *testing.T) {
	result := Analyze(nil, []types.SkillMention{mention("python")})

	assert.True(t, result.Degraded)
	assert.Equal(t, 0, result.MatchPercentage)
	assert.Empty(t, result.Matched)
	assert.Empty(t, result.Missing)
}

func TestAnalyze_ZeroWeightRequirementsIsDegraded(t *testing.T) {
	required := []types.RequiredSkill{
		{Skill: "python", Category: types.CategoryLanguage, Priority: types.PriorityCore, Weight: 0},
	}

	result := Analyze(required, nil)

	assert.True(t, result.Degraded)
	assert.Equal(t, 0, result.MatchPercentage)
}

func TestAnalyze_EmptyCandidate(t *testing.T) {
	required := []types.RequiredSkill{
		{Skill: "python", Category: types.CategoryLanguage, Priority: types.PriorityCore, Weight: 1.0},
	}

	result := Analyze(required, nil)

	assert.Equal(t, 0, result.MatchPercentage)
	assert.False(t, result.Degraded)
	require.Len(t, result.Missing, 1)
	assert.Equal(t, types.GapHigh, result.Missing[0].Priority)
	// language base 15h scaled 1.5x for a high-priority gap
	assert.Equal(t, 23, result.Missing[0].EstimatedHours)
}

func TestAnalyze_MatchPercentageBounds(t *testing.T) {
	cases := [][]types.SkillMention{
		nil,
		{mention("python")},
		{mention("python"), mention("docker"), mention("react")},
	}
	required := []types.RequiredSkill{
		{Skill: "python", Category: types.CategoryLanguage, Priority: types.PriorityCore, Weight: 1.0},
		{Skill: "docker", Category: types.CategoryTool, Priority: types.PriorityNiceToHave, Weight: 0.4},
		{Skill: "go", Category: types.CategoryLanguage, Priority: types.PriorityCore, Weight: 0.9},
	}
	for _, candidate := range cases {
		result := Analyze(required, candidate)
		assert.GreaterOrEqual(t, result.MatchPercentage, 0)
		assert.LessOrEqual(t, result.MatchPercentage, 100)
	}
}

func TestAnalyze_MissingOrderIsTotal(t *testing.T) {
	required := []types.RequiredSkill{
		{Skill: "aws", Category: types.CategoryPlatform, Priority: types.PriorityNiceToHave, Weight: 0.5},
		{Skill: "docker", Category: types.CategoryTool, Priority: types.PriorityNiceToHave, Weight: 0.5},
		{Skill: "python", Category: types.CategoryLanguage, Priority: types.PriorityCore, Weight: 1.0},
		{Skill: "react", Category: types.CategoryFramework, Priority: types.PriorityNiceToHave, Weight: 0.6},
	}

	result := Analyze(required, nil)

	// priority desc, weight desc, then first-seen: python (high), react
	// (medium 0.6), then aws before docker (equal weight, aws seen first).
	got := make([]string, len(result.Missing))
	for i, m := range result.Missing {
		got[i] = m.Skill
	}
	assert.Equal(t, []string{"python", "react", "aws", "docker"}, got)
}

func TestAnalyze_Deterministic(t *testing.T) {
	required := []types.RequiredSkill{
		{Skill: "python", Category: types.CategoryLanguage, Priority: types.PriorityCore, Weight: 1.0},
		{Skill: "docker", Category: types.CategoryTool, Priority: types.PriorityNiceToHave, Weight: 0.4},
		{Skill: "react", Category: types.CategoryFramework, Priority: types.PriorityNiceToHave, Weight: 0.4},
	}
	candidate := []types.SkillMention{mention("docker")}

	first := Analyze(required, candidate)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Analyze(required, candidate))
	}
}
