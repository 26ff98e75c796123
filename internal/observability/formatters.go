// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/skillplan/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintMentions outputs the skill mentions extracted from one document.
func (p *Printer) PrintMentions(title string, mentions []types.SkillMention) {
	if len(mentions) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Detected %d skills:\n\n", len(mentions)))

	count := min(len(mentions), maxItemsToShow)
	for i := 0; i < count; i++ {
		m := mentions[i]
		sb.WriteString(fmt.Sprintf("• %s (%.2f)", m.Skill, m.Confidence))
		if m.Occurrences > 1 {
			sb.WriteString(fmt.Sprintf(" ×%d", m.Occurrences))
		}
		sb.WriteString("\n")
	}
	if len(mentions) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("... and %d more\n", len(mentions)-maxItemsToShow))
	}

	p.printBox(title, strings.TrimSuffix(sb.String(), "\n"))
}

// PrintGapResult outputs a human-readable summary of the gap analysis.
func (p *Printer) PrintGapResult(result *types.SkillGapResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	if result.Degraded {
		sb.WriteString("Match: 0% (no weighted requirements found)\n")
	} else {
		sb.WriteString(fmt.Sprintf("Match: %d%%\n", result.MatchPercentage))
	}
	sb.WriteString(fmt.Sprintf("Matched: %d   Missing: %d\n", len(result.Matched), len(result.Missing)))

	if len(result.Missing) > 0 {
		sb.WriteString("\nTop gaps:\n")
		count := min(len(result.Missing), maxItemsToShow)
		for i := 0; i < count; i++ {
			m := result.Missing[i]
			sb.WriteString(fmt.Sprintf("• %s (%s, ~%dh)\n", m.Skill, m.Priority, m.EstimatedHours))
		}
		if len(result.Missing) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("... and %d more\n", len(result.Missing)-maxItemsToShow))
		}
	}

	p.printBox("SKILL GAP ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRoadmap outputs the week-by-week study plan.
func (p *Printer) PrintRoadmap(weeks []types.RoadmapWeek, weeklyHours int) {
	if len(weeks) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d weeks at up to %dh/week\n\n", len(weeks), weeklyHours))

	count := min(len(weeks), maxItemsToShow)
	for i := 0; i < count; i++ {
		w := weeks[i]
		sb.WriteString(fmt.Sprintf("Week %d — %s (%dh)\n", w.Week, w.FocusSkill, w.TotalHours))
		for _, task := range w.Tasks {
			sb.WriteString(fmt.Sprintf("  • %s\n", task.Title))
		}
	}
	if len(weeks) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("... and %d more weeks\n", len(weeks)-maxItemsToShow))
	}

	p.printBox("LEARNING ROADMAP", strings.TrimSuffix(sb.String(), "\n"))
}
