// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	Resume  string `json:"resume,omitempty"`   // Path to resume file (.pdf, .docx, .txt)
	Job     string `json:"job,omitempty"`      // Path to job record JSON file
	JobText string `json:"job_text,omitempty"` // Path to plain job description text file
	JobsDir string `json:"jobs_dir,omitempty"` // Directory of job record JSON files for batch scoring
	Out     string `json:"out,omitempty"`      // Output directory for reports

	// Job fallbacks when only a description text file is given
	JobTitle string   `json:"job_title,omitempty"` // Job title
	Skills   []string `json:"skills,omitempty"`    // Declared required skills

	// Behavior
	Legacy  bool `json:"legacy,omitempty"`  // Use the preserved legacy scoring formula
	Verbose bool `json:"verbose,omitempty"` // Print detailed analysis breakdown

	// Tuning
	MinKeywordLength int `json:"min_keyword_length,omitempty"` // Shortest keyword kept by extraction
	PhraseLength     int `json:"phrase_length,omitempty"`      // N-gram length for phrase extraction
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
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

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	// Validate mutually exclusive fields
	if c.Job != "" && c.JobText != "" {
		return fmt.Errorf("config error: 'job' and 'job_text' are mutually exclusive")
	}
	if c.Job != "" && c.JobsDir != "" {
		return fmt.Errorf("config error: 'job' and 'jobs_dir' are mutually exclusive")
	}

	// Validate numeric ranges
	if c.MinKeywordLength < 0 {
		return fmt.Errorf("config error: 'min_keyword_length' must be non-negative")
	}
	if c.PhraseLength < 0 {
		return fmt.Errorf("config error: 'phrase_length' must be non-negative")
	}

	// Validate file paths exist (if specified)
	if c.Resume != "" {
		if _, err := os.Stat(c.Resume); os.IsNotExist(err) {
			return fmt.Errorf("config error: resume file not found: %s", c.Resume)
		}
	}
	if c.Job != "" {
		if _, err := os.Stat(c.Job); os.IsNotExist(err) {
			return fmt.Errorf("config error: job file not found: %s", c.Job)
		}
	}
	if c.JobText != "" {
		if _, err := os.Stat(c.JobText); os.IsNotExist(err) {
			return fmt.Errorf("config error: job text file not found: %s", c.JobText)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Resume == "" {
		result.Resume = defaults.Resume
	}
	if result.Job == "" {
		result.Job = defaults.Job
	}
	if result.JobText == "" {
		result.JobText = defaults.JobText
	}
	if result.JobsDir == "" {
		result.JobsDir = defaults.JobsDir
	}
	if result.Out == "" {
		result.Out = defaults.Out
	}
	if result.JobTitle == "" {
		result.JobTitle = defaults.JobTitle
	}
	if len(result.Skills) == 0 {
		result.Skills = defaults.Skills
	}

	// Int fields: use default if zero
	if result.MinKeywordLength == 0 {
		result.MinKeywordLength = defaults.MinKeywordLength
	}
	if result.PhraseLength == 0 {
		result.PhraseLength = defaults.PhraseLength
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
