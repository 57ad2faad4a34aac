// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/kadykov/cv-adapt/internal/language"
	"github.com/kadykov/cv-adapt/internal/rendering"
)

// Config represents the CLI configuration that can be loaded from a JSON
// file. All fields are optional; missing values use defaults or must be
// provided via CLI flags.
type Config struct {
	// Paths
	CV    string `json:"cv,omitempty"`    // Path to the raw CV text file
	Job   string `json:"job,omitempty"`   // Path to the job description text file
	Notes string `json:"notes,omitempty"` // Path to optional generation notes

	// Candidate info
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`

	// Generation
	Language string `json:"language,omitempty"` // Target language code (en, fr, de, es, it)
	Provider string `json:"provider,omitempty"` // Backend provider (gemini, claude)
	Model    string `json:"model,omitempty"`    // Backend model override
	APIKey   string `json:"api_key,omitempty"`  // Backend API key

	// Output / behavior
	Format      string `json:"format,omitempty"`       // markdown, json or yaml
	DatabaseURL string `json:"database_url,omitempty"` // Optional PostgreSQL URL for run persistence
	Verbose     bool   `json:"verbose,omitempty"`
}

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

// Validate checks that the configuration has valid values. Required fields
// are checked by CLI flag validation after merging, not here.
func (c *Config) Validate() error {
	if c.Language != "" && !language.IsSupported(c.Language) {
		return fmt.Errorf("config error: unsupported language %q", c.Language)
	}
	if c.Format != "" && !rendering.IsSupportedFormat(c.Format) {
		return fmt.Errorf("config error: unsupported output format %q", c.Format)
	}

	for _, path := range []string{c.CV, c.Job, c.Notes} {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return fmt.Errorf("config error: file not found: %s", path)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. CLI flags always win over defaults for bools, so those are not
// merged.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	merge := func(dst *string, def string) {
		if *dst == "" {
			*dst = def
		}
	}
	merge(&result.CV, defaults.CV)
	merge(&result.Job, defaults.Job)
	merge(&result.Notes, defaults.Notes)
	merge(&result.Name, defaults.Name)
	merge(&result.Email, defaults.Email)
	merge(&result.Phone, defaults.Phone)
	merge(&result.Location, defaults.Location)
	merge(&result.Language, defaults.Language)
	merge(&result.Provider, defaults.Provider)
	merge(&result.Model, defaults.Model)
	merge(&result.APIKey, defaults.APIKey)
	merge(&result.Format, defaults.Format)
	merge(&result.DatabaseURL, defaults.DatabaseURL)

	if result.Language == "" {
		result.Language = language.English().Code
	}
	if result.Format == "" {
		result.Format = string(rendering.FormatMarkdown)
	}

	return result
}
