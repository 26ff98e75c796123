package types

import "math"

// Priority classifies how strongly a job requires a skill.
type Priority string

// Requirement priorities.
const (
	PriorityCore       Priority = "core"
	PriorityNiceToHave Priority = "nice_to_have"
)

// Base weights per requirement priority.
const (
	CoreWeight       = 1.0
	NiceToHaveWeight = 0.4
)

// GapPriority ranks a missing skill for scheduling.
type GapPriority string

// Gap priorities, highest first.
const (
	GapHigh   GapPriority = "high"
	GapMedium GapPriority = "medium"
	GapLow    GapPriority = "low"
)

// Weight thresholds for deriving a gap priority from a requirement weight.
const (
	highWeightThreshold   = 0.7
	mediumWeightThreshold = 0.4
)

// highPriorityHourScale inflates hour estimates for high-priority gaps.
const highPriorityHourScale = 1.5

// Rank returns a sortable rank for the priority; higher sorts first.
func (p GapPriority) Rank() int {
	switch p {
	case GapHigh:
		return 3
	case GapMedium:
		return 2
	case GapLow:
		return 1
	default:
		return 0
	}
}

// GapPriorityForWeight derives a gap priority from a requirement weight.
func GapPriorityForWeight(weight float64) GapPriority {
	switch {
	case weight >= highWeightThreshold:
		return GapHigh
	case weight >= mediumWeightThreshold:
		return GapMedium
	default:
		return GapLow
	}
}

// EstimateHours returns the learning-hour estimate for a skill of the given
// category at the given gap priority. High-priority gaps are scaled up.
func EstimateHours(category Category, priority GapPriority) int {
	hours := category.BaseHours()
	if priority == GapHigh {
		hours = int(math.Round(float64(hours) * highPriorityHourScale))
	}
	return hours
}

// RequiredSkill is one job-side requirement with its derived weight.
type RequiredSkill struct {
	Skill    string   `json:"skill"`
	Category Category `json:"category"`
	Priority Priority `json:"priority"`
	Weight   float64  `json:"weight"`
	Trending bool     `json:"trending,omitempty"`
}

// MissingSkill is a required skill absent from the candidate's mentions.
type MissingSkill struct {
	Skill          string      `json:"skill"`
	Category       Category    `json:"category"`
	Priority       GapPriority `json:"priority"`
	Weight         float64     `json:"weight"`
	EstimatedHours int         `json:"estimated_hours"`
}

// SkillGapResult is the output of gap analysis. Degraded marks the
// no-required-skills case, which reports 0% rather than 100%.
type SkillGapResult struct {
	MatchPercentage int            `json:"match_percentage"`
	Degraded        bool           `json:"degraded,omitempty"`
	Matched         []string       `json:"matched_skills"`
	Missing         []MissingSkill `json:"missing_skills"`
}
