// Package roadmap packs missing skills into a week-by-week study plan under
// a weekly hour budget.
package roadmap

import (
	"github.com/jonathan/skillplan/internal/gap"
	"github.com/jonathan/skillplan/internal/types"
)

// Schedule builds a learning plan from missing skills under a weekly hour
// budget. It is a greedy packer, not an optimal one: skills are taken in
// priority order, chunks fill the current week, and a chunk that would
// overflow closes the week even when under-filled. The output is fully
// deterministic for a given input. An empty missing list yields an empty
// plan, meaning the candidate is fully qualified; weeklyHours <= 0 is caller
// misuse and returns a BudgetError.
func Schedule(missing []types.MissingSkill, weeklyHours int) ([]types.RoadmapWeek, error) {
	if weeklyHours <= 0 {
		return nil, &BudgetError{WeeklyHours: weeklyHours}
	}

	weeks := []types.RoadmapWeek{}
	if len(missing) == 0 {
		return weeks, nil
	}

	ordered := make([]types.MissingSkill, len(missing))
	copy(ordered, missing)
	gap.SortMissing(ordered)

	categories := make(map[string]types.Category, len(ordered))
	for _, sk := range ordered {
		categories[sk.Skill] = sk.Category
	}

	current := types.RoadmapWeek{Week: 1}
	for _, sk := range ordered {
		chunks := splitChunks(sk.EstimatedHours)
		for ci, hours := range chunks {
			// A chunk larger than the whole budget still gets a week of its
			// own; it is atomic and may not be split further.
			if current.TotalHours > 0 && current.TotalHours+hours > weeklyHours {
				weeks = append(weeks, current)
				current = types.RoadmapWeek{Week: current.Week + 1}
			}
			current.Tasks = append(current.Tasks, chunkTask(sk, hours, ci+1, len(chunks)))
			current.TotalHours += hours
		}
	}
	if len(current.Tasks) > 0 {
		weeks = append(weeks, current)
	}

	for i := range weeks {
		focus := focusSkill(weeks[i].Tasks)
		weeks[i].FocusSkill = focus
		weeks[i].Resources = resourcesFor(focus, categories[focus])
	}
	return weeks, nil
}

// focusSkill picks the skill contributing the most hours to a week; on a tie
// the skill whose task was placed first wins.
func focusSkill(tasks []types.Task) string {
	hours := make(map[string]int, len(tasks))
	order := make([]string, 0, len(tasks))
	for _, task := range tasks {
		if _, seen := hours[task.Skill]; !seen {
			order = append(order, task.Skill)
		}
		hours[task.Skill] += task.Hours
	}

	best := ""
	bestHours := -1
	for _, skill := range order {
		if hours[skill] > bestHours {
			best = skill
			bestHours = hours[skill]
		}
	}
	return best
}

// TotalHours sums the task hours across a plan.
func TotalHours(weeks []types.RoadmapWeek) int {
	total := 0
	for _, w := range weeks {
		total += w.TotalHours
	}
	return total
}
