package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	require.Error(t, err)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_MalformedJSON(t *testing.T) {
	path := writeConfig(t, "{not json")
	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FullConfig(t *testing.T) {
	path := writeConfig(t, `{
		"input": "payload.json",
		"yaml_dir": "work/yaml",
		"output_dir": "work/out",
		"renderer": "/usr/local/bin/rendercv",
		"bucket": "resume-bucket",
		"rag_bucket": "samples-bucket",
		"rag_keys": ["a.pdf", "b.pdf"],
		"database_url": "postgres://localhost/resumes",
		"model_id": "custom.model:0",
		"skip_upload": true,
		"verbose": true
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "payload.json", cfg.Input)
	assert.Equal(t, "work/yaml", cfg.YAMLDir)
	assert.Equal(t, "work/out", cfg.OutputDir)
	assert.Equal(t, "/usr/local/bin/rendercv", cfg.Renderer)
	assert.Equal(t, "resume-bucket", cfg.Bucket)
	assert.Equal(t, "samples-bucket", cfg.RAGBucket)
	assert.Equal(t, []string{"a.pdf", "b.pdf"}, cfg.RAGKeys)
	assert.Equal(t, "postgres://localhost/resumes", cfg.DatabaseURL)
	assert.Equal(t, "custom.model:0", cfg.ModelID)
	assert.True(t, cfg.SkipUpload)
	assert.True(t, cfg.Verbose)
}

func TestValidate_MissingInputFile(t *testing.T) {
	cfg := &Config{Input: filepath.Join(t.TempDir(), "nope.json")}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "input file not found")
}

func TestValidate_EmptyInputAllowed(t *testing.T) {
	cfg := &Config{}
	assert.NoError(t, cfg.Validate())
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{Bucket: "explicit-bucket"}
	defaults := Config{
		Bucket:    "default-bucket",
		YAMLDir:   "build/descriptions",
		OutputDir: "build/resumes",
		Renderer:  "rendercv",
		ModelID:   "default.model:0",
	}

	merged := cfg.MergeWithDefaults(defaults)

	assert.Equal(t, "explicit-bucket", merged.Bucket)
	assert.Equal(t, "build/descriptions", merged.YAMLDir)
	assert.Equal(t, "build/resumes", merged.OutputDir)
	assert.Equal(t, "rendercv", merged.Renderer)
	assert.Equal(t, "default.model:0", merged.ModelID)
}
