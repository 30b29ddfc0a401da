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
	RecordingsRoot string `json:"recordings_root,omitempty"` // Directory that recording references resolve under
	Library        string `json:"library,omitempty"`         // Path to an exercise library JSON file (built-in library if empty)
	Output         string `json:"output,omitempty"`          // Directory to write assessment JSON artifacts to

	// Models
	TranscriptionModel string `json:"transcription_model,omitempty"` // Model used for the audio-to-text stage
	AnalysisModel      string `json:"analysis_model,omitempty"`      // Model used for the scored analysis stage

	// Behavior
	APIKey      string `json:"api_key,omitempty"`     // Gemini API key
	Concurrency int    `json:"concurrency,omitempty"` // Max recordings analyzed at once in batch mode
	Verbose     bool   `json:"verbose,omitempty"`     // Print detailed debug information
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
// Note: required fields are handled by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.Concurrency < 0 {
		return fmt.Errorf("config error: 'concurrency' must be non-negative")
	}

	// Validate paths exist (if specified)
	if c.RecordingsRoot != "" {
		if info, err := os.Stat(c.RecordingsRoot); err != nil || !info.IsDir() {
			return fmt.Errorf("config error: recordings root not found: %s", c.RecordingsRoot)
		}
	}

	if c.Library != "" {
		if _, err := os.Stat(c.Library); os.IsNotExist(err) {
			return fmt.Errorf("config error: library file not found: %s", c.Library)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.RecordingsRoot == "" {
		result.RecordingsRoot = defaults.RecordingsRoot
	}
	if result.Library == "" {
		result.Library = defaults.Library
	}
	if result.Output == "" {
		result.Output = defaults.Output
	}
	if result.TranscriptionModel == "" {
		result.TranscriptionModel = defaults.TranscriptionModel
	}
	if result.AnalysisModel == "" {
		result.AnalysisModel = defaults.AnalysisModel
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}

	// Int fields: use default if zero
	if result.Concurrency == 0 {
		if defaults.Concurrency > 0 {
			result.Concurrency = defaults.Concurrency
		} else {
			result.Concurrency = 2 // Two recordings in flight keeps quota pressure low
		}
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
