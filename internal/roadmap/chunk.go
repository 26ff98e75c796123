package roadmap

import (
	"fmt"

	"github.com/jonathan/skillplan/internal/types"
)

// Chunk split thresholds. A skill's estimated hours become one, two or three
// atomic task chunks; chunks are never re-split to fit week capacity.
const (
	singleChunkMax = 6
	doubleChunkMax = 20
)

// splitChunks breaks hours into 1-3 near-equal chunks, earlier chunks taking
// the remainder. Zero or negative hours produce no chunks.
func splitChunks(hours int) []int {
	switch {
	case hours <= 0:
		return nil
	case hours <= singleChunkMax:
		return []int{hours}
	case hours <= doubleChunkMax:
		first := (hours + 1) / 2
		return []int{first, hours - first}
	default:
		first := (hours + 2) / 3
		second := (hours - first + 1) / 2
		return []int{first, second, hours - first - second}
	}
}

// chunkTask builds the task for one chunk of a skill's study plan.
func chunkTask(skill types.MissingSkill, hours, part, parts int) types.Task {
	title := fmt.Sprintf("Learn %s", skill.Skill)
	if parts > 1 {
		title = fmt.Sprintf("Learn %s (part %d of %d)", skill.Skill, part, parts)
	}
	return types.Task{
		Title:       title,
		Description: chunkDescription(skill.Skill, part, parts),
		Hours:       hours,
		Skill:       skill.Skill,
	}
}

func chunkDescription(skill string, part, parts int) string {
	if parts == 1 {
		return fmt.Sprintf("Study %s fundamentals and apply them in a small exercise.", skill)
	}
	switch part {
	case 1:
		return fmt.Sprintf("Cover the core concepts of %s and set up a working environment.", skill)
	case 2:
		if parts == 2 {
			return fmt.Sprintf("Apply %s in a hands-on project and review what you built.", skill)
		}
		return fmt.Sprintf("Work through guided %s exercises of increasing difficulty.", skill)
	default:
		return fmt.Sprintf("Consolidate %s with a self-directed project and review.", skill)
	}
}
