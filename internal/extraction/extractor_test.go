package extraction

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/skillplan/internal/taxonomy"
	"github.com/jonathan/skillplan/internal/types"
)

func testRegistry(t *testing.T) *taxonomy.Registry {
	t.Helper()
	reg, err := taxonomy.NewRegistry([]types.CanonicalSkill{
		{Name: "python", Category: types.CategoryLanguage, Aliases: []string{"py"}, Weight: 1.0},
		{Name: "javascript", Category: types.CategoryLanguage, Aliases: []string{"js"}, Weight: 0.9},
		{Name: "typescript", Category: types.CategoryLanguage, Aliases: []string{"ts"}, Weight: 0.9},
		{Name: "react", Category: types.CategoryFramework, Aliases: []string{"react.js", "reactjs"}, Weight: 0.9},
		{Name: "nodejs", Category: types.CategoryFramework, Aliases: []string{"node.js", "node"}, Weight: 0.9},
		{Name: "docker", Category: types.CategoryTool, Weight: 0.9},
		{Name: "machine learning", Category: types.CategoryDomain, Aliases: []string{"ml"}, Weight: 0.9},
		{Name: "ci/cd", Category: types.CategoryTool, Aliases: []string{"ci/cd pipelines"}, Weight: 0.7},
		{Name: "r", Category: types.CategoryLanguage, Weight: 0.5},
	})
	require.NoError(t, err)
	return reg
}

func mentionSkills(mentions []types.SkillMention) []string {
	names := make([]string, len(mentions))
	for i, m := range mentions {
		names[i] = m.Skill
	}
	return names
}

func TestExtract_SimpleSentence(t *testing.T) {
	e := NewExtractor(testRegistry(t), Weights{})

	mentions := e.Extract("Experience with React, Node.js and TypeScript", types.SourceResume)

	require.Equal(t, []string{"react", "nodejs", "typescript"}, mentionSkills(mentions))
	for _, m := range mentions {
		assert.Equal(t, 1.0, m.Confidence, m.Skill)
		assert.Equal(t, types.SourceResume, m.Source)
	}
}

func TestExtract_EmptyText(t *testing.T) {
	e := NewExtractor(testRegistry(t), Weights{})

	assert.Empty(t, e.Extract("", types.SourceResume))
	assert.Empty(t, e.Extract("   \n\t\n", types.SourceJobDescription))
}

func TestExtract_Idempotent(t *testing.T) {
	e := NewExtractor(testRegistry(t), Weights{})
	text := "Skills: Python, Docker\n\nBuilt ML services with Python and node."

	first := e.Extract(text, types.SourceResume)
	second := e.Extract(text, types.SourceResume)
	assert.Equal(t, first, second)
}

func TestExtract_AliasConfidence(t *testing.T) {
	e := NewExtractor(testRegistry(t), Weights{})

	mentions := e.Extract("Strong js and ts background", types.SourceResume)

	require.Equal(t, []string{"javascript", "typescript"}, mentionSkills(mentions))
	assert.Equal(t, 0.9, mentions[0].Confidence)
	assert.Equal(t, 0.9, mentions[1].Confidence)
}

func TestExtract_SkillsSectionBoost(t *testing.T) {
	e := NewExtractor(testRegistry(t), Weights{})
	text := "Skills:\n- js\n- Docker\n\nExperience\nShipped js tooling."

	mentions := e.Extract(text, types.SourceResume)

	require.Equal(t, []string{"javascript", "docker"}, mentionSkills(mentions))
	// Alias inside the skills section: 0.9 + 0.1, capped at 1.0.
	assert.Equal(t, 1.0, mentions[0].Confidence)
	assert.Equal(t, 1.0, mentions[1].Confidence)
}

func TestExtract_InlineSkillsHeader(t *testing.T) {
	e := NewExtractor(testRegistry(t), Weights{})

	mentions := e.Extract("Skills: js", types.SourceResume)

	require.Len(t, mentions, 1)
	assert.Equal(t, "javascript", mentions[0].Skill)
	assert.Equal(t, 1.0, mentions[0].Confidence)
}

func TestExtract_SectionEndsAtNextHeader(t *testing.T) {
	e := NewExtractor(testRegistry(t), Weights{})
	text := "SKILLS\njs\nEXPERIENCE\nts"

	mentions := e.Extract(text, types.SourceResume)

	require.Equal(t, []string{"javascript", "typescript"}, mentionSkills(mentions))
	assert.Equal(t, 1.0, mentions[0].Confidence, "inside skills section")
	assert.Equal(t, 0.9, mentions[1].Confidence, "after section ended")
}

func TestExtract_WordBoundary(t *testing.T) {
	// "R" must not match inside "Architecture", and "node" must not match
	// inside "nodemon"-like words.
	e := NewExtractor(testRegistry(t), Weights{})

	assert.Empty(t, e.Extract("Designed the Architecture documents", types.SourceResume))

	mentions := e.Extract("Used R for statistics", types.SourceResume)
	require.Len(t, mentions, 1)
	assert.Equal(t, "r", mentions[0].Skill)
}

func TestExtract_MultiWordPhrases(t *testing.T) {
	e := NewExtractor(testRegistry(t), Weights{})

	mentions := e.Extract("Built machine learning models and ci/cd pipelines", types.SourceResume)

	require.Equal(t, []string{"machine learning", "ci/cd"}, mentionSkills(mentions))
	assert.Equal(t, 1.0, mentions[0].Confidence)
	assert.Equal(t, 0.9, mentions[1].Confidence, "matched via the longer alias")
	assert.Equal(t, "ci/cd pipelines", mentions[1].Raw)
}

func TestExtract_LongestMatchConsumesSubSpans(t *testing.T) {
	// "machine learning" must match as one phrase; the inner "learning" (even
	// if it were a skill) and a second lookup of "machine" must not fire.
	e := NewExtractor(testRegistry(t), Weights{})

	mentions := e.Extract("machine learning", types.SourceResume)

	require.Len(t, mentions, 1)
	assert.Equal(t, "machine learning", mentions[0].Skill)
	assert.Equal(t, 1, mentions[0].Occurrences)
}

func TestExtract_DeduplicatesKeepingMaxConfidenceAndEarliestSpan(t *testing.T) {
	e := NewExtractor(testRegistry(t), Weights{})
	// First occurrence is a weaker alias match; the later canonical match
	// raises confidence but the span stays at the first occurrence.
	text := "Shipped js services.\nDeep javascript expertise."

	mentions := e.Extract(text, types.SourceResume)

	require.Len(t, mentions, 1)
	m := mentions[0]
	assert.Equal(t, "javascript", m.Skill)
	assert.Equal(t, 1.0, m.Confidence)
	assert.Equal(t, "js", m.Raw)
	assert.Equal(t, 1, m.Line)
	assert.Equal(t, 2, m.Occurrences)
	assert.Equal(t, strings.Index(text, "js"), m.Span.Start)
}

func TestExtract_OrderedByFirstOccurrence(t *testing.T) {
	e := NewExtractor(testRegistry(t), Weights{})
	text := "docker then python then docker again, then react"

	mentions := e.Extract(text, types.SourceResume)

	assert.Equal(t, []string{"docker", "python", "react"}, mentionSkills(mentions))
}

func TestExtract_SpansMatchRawText(t *testing.T) {
	e := NewExtractor(testRegistry(t), Weights{})
	text := "Experience with React, Node.js and TypeScript"

	for _, m := range e.Extract(text, types.SourceResume) {
		assert.Equal(t, m.Raw, text[m.Span.Start:m.Span.End])
	}
}

func TestExtract_CustomWeights(t *testing.T) {
	e := NewExtractor(testRegistry(t), Weights{Exact: 0.8, Alias: 0.5, SectionBoost: 0.2})

	mentions := e.Extract("python and js", types.SourceResume)

	require.Len(t, mentions, 2)
	assert.Equal(t, 0.8, mentions[0].Confidence)
	assert.Equal(t, 0.5, mentions[1].Confidence)
}

func TestExtract_TrailingPunctuation(t *testing.T) {
	e := NewExtractor(testRegistry(t), Weights{})

	mentions := e.Extract("We use Docker.", types.SourceJobDescription)

	require.Len(t, mentions, 1)
	assert.Equal(t, "docker", mentions[0].Skill)
	assert.Equal(t, "Docker", mentions[0].Raw)
}
