package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/mongoshift/mongoshift/internal/domain"
)

const fileName = ".mongoshift.yaml"

// YAMLLoader implements domain.ConfigLoader by reading .mongoshift.yaml.
type YAMLLoader struct{}

// New creates a YAMLLoader.
func New() *YAMLLoader { return &YAMLLoader{} }

// Load reads .mongoshift.yaml from projectPath. Returns DefaultConfig if
// the file does not exist.
func (l *YAMLLoader) Load(projectPath string) (domain.ProjectConfig, error) {
	data, err := os.ReadFile(filepath.Join(projectPath, fileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.DefaultConfig(), nil
		}
		return domain.ProjectConfig{}, err
	}

	var cfg domain.ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.ProjectConfig{}, fmt.Errorf("parsing %s: %w", fileName, err)
	}

	if err := cfg.Validate(); err != nil {
		return domain.ProjectConfig{}, fmt.Errorf("invalid %s: %w", fileName, err)
	}

	return mergeDefaults(cfg), nil
}

// mergeDefaults fills unset fields with DefaultConfig values so a partial
// .mongoshift.yaml behaves like an override, not a replacement.
func mergeDefaults(cfg domain.ProjectConfig) domain.ProjectConfig {
	defaults := domain.DefaultConfig()

	if cfg.LLM.Model == "" {
		cfg.LLM.Model = defaults.LLM.Model
	}
	if cfg.LLM.TimeoutSeconds == 0 {
		cfg.LLM.TimeoutSeconds = defaults.LLM.TimeoutSeconds
	}
	if cfg.LLM.MaxTokens == 0 {
		cfg.LLM.MaxTokens = defaults.LLM.MaxTokens
	}
	if cfg.LLM.Temperature == 0 {
		cfg.LLM.Temperature = defaults.LLM.Temperature
	}
	if cfg.Mongo.Database == "" {
		cfg.Mongo.Database = defaults.Mongo.Database
	}
	if cfg.ExportDir == "" {
		cfg.ExportDir = defaults.ExportDir
	}

	return cfg
}
