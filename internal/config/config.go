// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via
// CLI flags or environment variables.
type Config struct {
	// Paths
	Input     string `json:"input,omitempty"`      // Path to the intake payload JSON
	YAMLDir   string `json:"yaml_dir,omitempty"`   // Directory for generated description files
	OutputDir string `json:"output_dir,omitempty"` // Directory for rendered PDFs
	Renderer  string `json:"renderer,omitempty"`   // Renderer executable name or path

	// Storage
	Bucket      string   `json:"bucket,omitempty"`       // S3 bucket for published resumes
	RAGBucket   string   `json:"rag_bucket,omitempty"`   // S3 bucket holding sample reference PDFs
	RAGKeys     []string `json:"rag_keys,omitempty"`     // Object keys of the sample PDFs
	DatabaseURL string   `json:"database_url,omitempty"` // PostgreSQL connection URL (optional run records)

	// Model
	ModelID string `json:"model_id,omitempty"` // Bedrock model identifier

	// Behavior
	SkipEnhance bool `json:"skip_enhance,omitempty"` // Skip the LLM enhancement stage
	SkipUpload  bool `json:"skip_upload,omitempty"`  // Skip the S3 publish stage
	Verbose     bool `json:"verbose,omitempty"`      // Print detailed progress information
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
// Required fields are checked after flag merging, not here.
func (c *Config) Validate() error {
	if c.Input != "" {
		if _, err := os.Stat(c.Input); os.IsNotExist(err) {
			return fmt.Errorf("config error: input file not found: %s", c.Input)
		}
	}
	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Input == "" {
		result.Input = defaults.Input
	}
	if result.YAMLDir == "" {
		result.YAMLDir = defaults.YAMLDir
	}
	if result.OutputDir == "" {
		result.OutputDir = defaults.OutputDir
	}
	if result.Renderer == "" {
		result.Renderer = defaults.Renderer
	}
	if result.Bucket == "" {
		result.Bucket = defaults.Bucket
	}
	if result.RAGBucket == "" {
		result.RAGBucket = defaults.RAGBucket
	}
	if len(result.RAGKeys) == 0 {
		result.RAGKeys = defaults.RAGKeys
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.ModelID == "" {
		result.ModelID = defaults.ModelID
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
