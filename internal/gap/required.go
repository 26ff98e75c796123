// Package gap derives job requirements from extracted mentions and compares
// them against a candidate's demonstrated skills.
package gap

import (
	"github.com/jonathan/skillplan/internal/taxonomy"
	"github.com/jonathan/skillplan/internal/types"
)

// Requirement derivation policy. A skill stated plainly (exact canonical
// match) or repeated across the posting reads as a core requirement;
// anything weaker is nice-to-have.
const (
	coreConfidence  = 0.95
	coreOccurrences = 2

	trendingBonus   = 0.1
	repetitionBonus = 0.05
	maxWeight       = 1.0
)

// BuildRequired turns job-description mentions into a weighted requirement
// list. Output order follows the mention order (first occurrence in the job
// text), which downstream ordering uses as the final tie-break.
func BuildRequired(registry *taxonomy.Registry, jobMentions []types.SkillMention) []types.RequiredSkill {
	required := make([]types.RequiredSkill, 0, len(jobMentions))
	for _, m := range jobMentions {
		sk, ok := registry.Lookup(m.Skill)
		if !ok {
			// Mention names a skill the registry no longer knows; skip rather
			// than guess a category.
			continue
		}

		priority := types.PriorityNiceToHave
		if m.Confidence >= coreConfidence || m.Occurrences >= coreOccurrences {
			priority = types.PriorityCore
		}

		weight := types.NiceToHaveWeight
		if priority == types.PriorityCore {
			weight = types.CoreWeight
		}
		if sk.Trending {
			weight += trendingBonus
		}
		if m.Occurrences > 1 {
			weight += repetitionBonus * float64(m.Occurrences-1)
		}
		if weight > maxWeight {
			weight = maxWeight
		}

		required = append(required, types.RequiredSkill{
			Skill:    sk.Name,
			Category: sk.Category,
			Priority: priority,
			Weight:   weight,
			Trending: sk.Trending,
		})
	}
	return required
}
