// Package pipeline provides the high-level orchestration for one analysis
// request: extract mentions, derive requirements, analyze the gap, schedule
// the roadmap.
package pipeline

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/skillplan/internal/config"
	"github.com/jonathan/skillplan/internal/extraction"
	"github.com/jonathan/skillplan/internal/gap"
	"github.com/jonathan/skillplan/internal/roadmap"
	"github.com/jonathan/skillplan/internal/taxonomy"
	"github.com/jonathan/skillplan/internal/types"
)

// ProgressEvent represents a progress update during pipeline execution
type ProgressEvent struct {
	Step    string `json:"step"`
	Message string `json:"message"`
	RunID   string `json:"run_id,omitempty"`
}

// ProgressCallback is called when pipeline progress occurs
type ProgressCallback func(event ProgressEvent)

// Options holds the inputs for one analysis run. Registry is required; the
// rest may be empty and degrade to well-defined results.
type Options struct {
	Registry      *taxonomy.Registry
	JobText       string
	ResumeText    string
	ProfileSkills []types.SkillMention // pre-resolved, source=profile
	WeeklyHours   int                  // 0 means config.DefaultWeeklyHours
	Weights       extraction.Weights   // zero value means defaults
	OnProgress    ProgressCallback
}

// Report is the full result of one analysis run.
type Report struct {
	RunID          string                `json:"run_id"`
	JobMentions    []types.SkillMention  `json:"job_mentions"`
	ResumeMentions []types.SkillMention  `json:"resume_mentions"`
	Required       []types.RequiredSkill `json:"required_skills"`
	Gap            types.SkillGapResult  `json:"gap"`
	Roadmap        []types.RoadmapWeek   `json:"roadmap"`
	TotalWeeks     int                   `json:"total_weeks"`
	TotalHours     int                   `json:"total_hours"`
	WeeklyHours    int                   `json:"weekly_hours"`
}

func emit(opts *Options, runID, step, message string) {
	if opts.OnProgress != nil {
		opts.OnProgress(ProgressEvent{Step: step, Message: message, RunID: runID})
	}
}

// Run executes one full analysis: job and resume extraction in parallel,
// requirement derivation, gap analysis, roadmap scheduling. The engine
// itself never blocks, so ctx only gates the seams between steps.
func Run(ctx context.Context, opts Options) (*Report, error) {
	if opts.Registry == nil {
		return nil, fmt.Errorf("pipeline: registry is required")
	}

	weeklyHours := opts.WeeklyHours
	if weeklyHours == 0 {
		weeklyHours = config.DefaultWeeklyHours
	}
	if weeklyHours < 0 {
		return nil, &roadmap.BudgetError{WeeklyHours: weeklyHours}
	}

	runID := uuid.New().String()
	extractor := extraction.NewExtractor(opts.Registry, opts.Weights)

	var jobMentions, resumeMentions []types.SkillMention
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		jobMentions = extractor.Extract(opts.JobText, types.SourceJobDescription)
		return nil
	})
	g.Go(func() error {
		resumeMentions = extractor.Extract(opts.ResumeText, types.SourceResume)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	emit(&opts, runID, "extract", fmt.Sprintf("found %d job and %d resume skills", len(jobMentions), len(resumeMentions)))

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	required := gap.BuildRequired(opts.Registry, jobMentions)
	candidate := unionMentions(resumeMentions, opts.ProfileSkills)

	result := gap.Analyze(required, candidate)
	emit(&opts, runID, "analyze", fmt.Sprintf("match %d%%, %d missing", result.MatchPercentage, len(result.Missing)))

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	weeks, err := roadmap.Schedule(result.Missing, weeklyHours)
	if err != nil {
		return nil, err
	}
	emit(&opts, runID, "schedule", fmt.Sprintf("planned %d weeks", len(weeks)))

	return &Report{
		RunID:          runID,
		JobMentions:    jobMentions,
		ResumeMentions: resumeMentions,
		Required:       required,
		Gap:            result,
		Roadmap:        weeks,
		TotalWeeks:     len(weeks),
		TotalHours:     roadmap.TotalHours(weeks),
		WeeklyHours:    weeklyHours,
	}, nil
}

// unionMentions merges candidate mentions from several sources, keeping the
// first-seen entry per canonical skill with its confidence raised to the
// maximum seen.
func unionMentions(lists ...[]types.SkillMention) []types.SkillMention {
	union := []types.SkillMention{}
	index := make(map[string]int)
	for _, list := range lists {
		for _, m := range list {
			if at, seen := index[m.Skill]; seen {
				if m.Confidence > union[at].Confidence {
					union[at].Confidence = m.Confidence
				}
				continue
			}
			index[m.Skill] = len(union)
			union = append(union, m)
		}
	}
	return union
}
