// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
)

// DefaultWeeklyHours is the study budget used when the caller supplies none.
const DefaultWeeklyHours = 10

// Config is the CLI configuration loadable from a JSON file. All fields are
// optional; missing values use defaults or come from CLI flags, which take
// priority over the file.
type Config struct {
	// Inputs
	Job      string `json:"job,omitempty"`      // Path to job description text file
	Resume   string `json:"resume,omitempty"`   // Path to resume text file
	Profile  string `json:"profile,omitempty"`  // Path to exported profile skills JSON
	Taxonomy string `json:"taxonomy,omitempty"` // Path to a taxonomy definition replacing the built-in one

	// Scheduling
	WeeklyHours int `json:"weekly_hours,omitempty" validate:"omitempty,gte=1,lte=168"`

	// Confidence policy
	ExactWeight  float64 `json:"exact_weight,omitempty" validate:"omitempty,gt=0,lte=1"`
	AliasWeight  float64 `json:"alias_weight,omitempty" validate:"omitempty,gt=0,lte=1"`
	SectionBoost float64 `json:"section_boost,omitempty" validate:"omitempty,gte=0,lte=1"`

	// Behavior
	Verbose bool `json:"verbose,omitempty"`
}

var validate = validator.New()

// LoadConfig loads configuration from a JSON file.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks field ranges and that referenced files exist. Required
// fields are not checked here; that happens after merging with CLI flags.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	for _, file := range []struct{ name, path string }{
		{"job", c.Job},
		{"resume", c.Resume},
		{"profile", c.Profile},
		{"taxonomy", c.Taxonomy},
	} {
		if file.path == "" {
			continue
		}
		if _, err := os.Stat(file.path); os.IsNotExist(err) {
			return fmt.Errorf("config error: %s file not found: %s", file.name, file.path)
		}
	}

	return nil
}
