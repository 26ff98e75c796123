package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jonathan/skillplan/internal/config"
	"github.com/jonathan/skillplan/internal/extraction"
	"github.com/jonathan/skillplan/internal/ingestion"
	"github.com/jonathan/skillplan/internal/observability"
	"github.com/jonathan/skillplan/internal/pipeline"
	"github.com/jonathan/skillplan/internal/taxonomy"
	"github.com/jonathan/skillplan/internal/types"
)

// weeklyHoursEnv overrides the default weekly budget when no flag or config
// value is given.
const weeklyHoursEnv = "SKILLPLAN_WEEKLY_HOURS"

var analyzeCommand = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze the skill gap between a resume and a job description",
	Long: `Extracts canonical skills from a job description and a resume, compares them,
and schedules the missing skills into a week-by-week learning roadmap.

Configuration can be loaded from a JSON file using --config. Command-line
arguments override config file values. The report is written to stdout as JSON;
--verbose adds human-readable summaries on stderr.`,
	RunE: runAnalyze,
}

var (
	analyzeConfigPath  string
	analyzeJob         string
	analyzeResume      string
	analyzeProfile     string
	analyzeTaxonomy    string
	analyzeWeeklyHours int
	analyzeVerbose     bool
)

func init() {
	analyzeCommand.Flags().StringVar(&analyzeConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	analyzeCommand.Flags().StringVarP(&analyzeJob, "job", "j", "", "Path to job description text file")
	analyzeCommand.Flags().StringVarP(&analyzeResume, "resume", "r", "", "Path to resume text file")
	analyzeCommand.Flags().StringVar(&analyzeProfile, "profile", "", "Path to exported profile skills JSON (optional)")
	analyzeCommand.Flags().StringVarP(&analyzeTaxonomy, "taxonomy", "t", "", "Path to a taxonomy definition replacing the built-in one")
	analyzeCommand.Flags().IntVarP(&analyzeWeeklyHours, "weekly-hours", "w", 0, fmt.Sprintf("Weekly study hour budget (default %d, or %s)", config.DefaultWeeklyHours, weeklyHoursEnv))
	analyzeCommand.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print detailed summaries to stderr")

	rootCmd.AddCommand(analyzeCommand)
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := mergeAnalyzeConfig(cmd)
	if err != nil {
		return err
	}
	if cfg.Job == "" {
		return fmt.Errorf("a job description is required: pass --job or set \"job\" in the config file")
	}

	registry, err := loadRegistry(cfg.Taxonomy)
	if err != nil {
		return err
	}

	jobText, err := ingestion.ReadTextFile(cfg.Job)
	if err != nil {
		return err
	}

	resumeText := ""
	if cfg.Resume != "" {
		if resumeText, err = ingestion.ReadTextFile(cfg.Resume); err != nil {
			return err
		}
	}

	var profileSkills []types.SkillMention
	if cfg.Profile != "" {
		if profileSkills, err = ingestion.LoadProfileSkills(registry, cfg.Profile); err != nil {
			return err
		}
	}

	report, err := pipeline.Run(ctx, pipeline.Options{
		Registry:      registry,
		JobText:       jobText,
		ResumeText:    resumeText,
		ProfileSkills: profileSkills,
		WeeklyHours:   cfg.WeeklyHours,
		Weights:       weightsFromConfig(cfg),
	})
	if err != nil {
		return err
	}

	if cfg.Verbose {
		printer := observability.NewPrinter(os.Stderr)
		printer.PrintMentions("JOB DESCRIPTION SKILLS", report.JobMentions)
		printer.PrintMentions("CANDIDATE SKILLS", report.ResumeMentions)
		printer.PrintGapResult(&report.Gap)
		printer.PrintRoadmap(report.Roadmap, report.WeeklyHours)
	}

	out, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}

// mergeAnalyzeConfig loads the optional config file and applies CLI flag and
// environment overrides. Flags win over config values; the weekly-hours env
// var fills in only when neither is set.
func mergeAnalyzeConfig(cmd *cobra.Command) (*config.Config, error) {
	var cfg config.Config
	if analyzeConfigPath != "" {
		loaded, err := config.LoadConfig(analyzeConfigPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = *loaded
	}

	if analyzeJob != "" {
		cfg.Job = analyzeJob
	}
	if analyzeResume != "" {
		cfg.Resume = analyzeResume
	}
	if analyzeProfile != "" {
		cfg.Profile = analyzeProfile
	}
	if analyzeTaxonomy != "" {
		cfg.Taxonomy = analyzeTaxonomy
	}
	if cmd.Flags().Changed("weekly-hours") {
		cfg.WeeklyHours = analyzeWeeklyHours
	}
	if analyzeVerbose {
		cfg.Verbose = true
	}

	if cfg.WeeklyHours == 0 {
		if raw := os.Getenv(weeklyHoursEnv); raw != "" {
			hours, err := strconv.Atoi(raw)
			if err != nil {
				return nil, fmt.Errorf("invalid %s value %q: %w", weeklyHoursEnv, raw, err)
			}
			cfg.WeeklyHours = hours
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// weightsFromConfig maps optional config overrides onto the default
// confidence policy.
func weightsFromConfig(cfg *config.Config) extraction.Weights {
	weights := extraction.DefaultWeights()
	if cfg.ExactWeight > 0 {
		weights.Exact = cfg.ExactWeight
	}
	if cfg.AliasWeight > 0 {
		weights.Alias = cfg.AliasWeight
	}
	if cfg.SectionBoost > 0 {
		weights.SectionBoost = cfg.SectionBoost
	}
	return weights
}

// loadRegistry builds the taxonomy registry, preferring a user-supplied
// definition file over the embedded default.
func loadRegistry(path string) (*taxonomy.Registry, error) {
	if path != "" {
		return taxonomy.LoadFile(path)
	}
	return taxonomy.Default()
}
