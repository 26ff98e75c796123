package gap

import (
	"math"
	"sort"

	"github.com/jonathan/skillplan/internal/types"
)

// Analyze compares the job's requirements against the candidate's mentions.
// A requirement is matched by presence: any candidate mention of the same
// canonical skill counts, whatever its confidence. The match percentage is
// weighted by requirement weight, not a plain count ratio. An empty or
// zero-weight requirement list yields a degraded 0% result, never an error.
func Analyze(required []types.RequiredSkill, candidate []types.SkillMention) types.SkillGapResult {
	result := types.SkillGapResult{
		Matched: []string{},
		Missing: []types.MissingSkill{},
	}
	if len(required) == 0 {
		result.Degraded = true
		return result
	}

	have := make(map[string]bool, len(candidate))
	for _, m := range candidate {
		have[m.Skill] = true
	}

	totalWeight := 0.0
	matchedWeight := 0.0
	for _, req := range required {
		totalWeight += req.Weight
		if have[req.Skill] {
			matchedWeight += req.Weight
			result.Matched = append(result.Matched, req.Skill)
			continue
		}
		priority := types.GapPriorityForWeight(req.Weight)
		result.Missing = append(result.Missing, types.MissingSkill{
			Skill:          req.Skill,
			Category:       req.Category,
			Priority:       priority,
			Weight:         req.Weight,
			EstimatedHours: types.EstimateHours(req.Category, priority),
		})
	}

	if totalWeight <= 0 {
		result.Degraded = true
		return result
	}

	result.MatchPercentage = int(math.Round(100 * matchedWeight / totalWeight))
	SortMissing(result.Missing)
	return result
}

// SortMissing orders missing skills by priority descending, then weight
// descending, then original position. The sort is stable, so equal entries
// keep their first-seen order and the result is a total deterministic order.
func SortMissing(missing []types.MissingSkill) {
	sort.SliceStable(missing, func(i, j int) bool {
		if missing[i].Priority.Rank() != missing[j].Priority.Rank() {
			return missing[i].Priority.Rank() > missing[j].Priority.Rank()
		}
		return missing[i].Weight > missing[j].Weight
	})
}
