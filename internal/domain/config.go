package domain

import (
	"fmt"
	"time"
)

// LLMConfig holds settings for the recommendation request.
type LLMConfig struct {
	Model          string  `yaml:"model"           json:"model,omitempty"`
	BaseURL        string  `yaml:"base_url"        json:"base_url,omitempty"`
	TimeoutSeconds int     `yaml:"timeout_seconds" json:"timeout_seconds,omitempty"`
	MaxTokens      int     `yaml:"max_tokens"      json:"max_tokens,omitempty"`
	Temperature    float64 `yaml:"temperature"     json:"temperature,omitempty"`
}

// Timeout returns the configured request timeout as a duration.
func (c LLMConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// MongoConfig holds settings for storage validation.
type MongoConfig struct {
	URI      string `yaml:"uri"      json:"uri,omitempty"`
	Database string `yaml:"database" json:"database,omitempty"`
}

// ProjectConfig holds project-level configuration loaded from
// .mongoshift.yaml.
type ProjectConfig struct {
	ExcludePaths []string    `yaml:"exclude_paths" json:"exclude_paths,omitempty"`
	LLM          LLMConfig   `yaml:"llm"           json:"llm,omitempty"`
	Mongo        MongoConfig `yaml:"mongodb"       json:"mongodb,omitempty"`
	ExportDir    string      `yaml:"export_dir"    json:"export_dir,omitempty"`
}

// DefaultConfig returns the configuration used when no .mongoshift.yaml
// exists.
func DefaultConfig() ProjectConfig {
	return ProjectConfig{
		LLM: LLMConfig{
			Model:          "gpt-4",
			TimeoutSeconds: 60,
			MaxTokens:      4000,
			Temperature:    0.2,
		},
		Mongo: MongoConfig{
			Database: "test",
		},
		ExportDir: "migration-plan",
	}
}

// Validate catches malformed user config before it reaches the pipeline.
func (c ProjectConfig) Validate() error {
	if c.LLM.TimeoutSeconds < 0 {
		return fmt.Errorf("llm.timeout_seconds must not be negative, got %d", c.LLM.TimeoutSeconds)
	}
	if c.LLM.MaxTokens < 0 {
		return fmt.Errorf("llm.max_tokens must not be negative, got %d", c.LLM.MaxTokens)
	}
	if c.LLM.Temperature < 0 || c.LLM.Temperature > 2 {
		return fmt.Errorf("llm.temperature must be between 0 and 2, got %g", c.LLM.Temperature)
	}
	return nil
}
