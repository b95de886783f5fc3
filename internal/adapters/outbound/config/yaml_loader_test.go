package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mongoshift/mongoshift/internal/adapters/outbound/config"
	"github.com/mongoshift/mongoshift/internal/domain"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".mongoshift.yaml"), []byte(content), 0644))
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	dir := t.TempDir()

	cfg, err := config.New().Load(dir)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultConfig(), cfg)
}

func TestLoad_PartialConfigMergesDefaults(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
exclude_paths:
  - legacy
llm:
  model: gpt-4o
`)

	cfg, err := config.New().Load(dir)
	require.NoError(t, err)

	assert.Equal(t, []string{"legacy"}, cfg.ExcludePaths)
	assert.Equal(t, "gpt-4o", cfg.LLM.Model)
	// Unset fields fall back to defaults.
	assert.Equal(t, 60, cfg.LLM.TimeoutSeconds)
	assert.Equal(t, 4000, cfg.LLM.MaxTokens)
	assert.Equal(t, "migration-plan", cfg.ExportDir)
}

func TestLoad_FullConfig(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
llm:
  model: gpt-4
  base_url: http://127.0.0.1:9
  timeout_seconds: 5
  max_tokens: 2000
  temperature: 0.4
mongodb:
  uri: mongodb://localhost:27017
  database: petclinic
export_dir: out
`)

	cfg, err := config.New().Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "http://127.0.0.1:9", cfg.LLM.BaseURL)
	assert.Equal(t, 5, cfg.LLM.TimeoutSeconds)
	assert.Equal(t, 0.4, cfg.LLM.Temperature)
	assert.Equal(t, "mongodb://localhost:27017", cfg.Mongo.URI)
	assert.Equal(t, "petclinic", cfg.Mongo.Database)
	assert.Equal(t, "out", cfg.ExportDir)
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "llm: [not a mapping")

	_, err := config.New().Load(dir)
	assert.Error(t, err)
}

func TestLoad_InvalidValuesRejected(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
llm:
  temperature: 9.0
`)

	_, err := config.New().Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "temperature")
}
