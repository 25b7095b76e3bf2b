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
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// TestLoad_File tests loading a complete config file
func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
input: in/people.txt
output: out/people.xml
format: jsonl
converter:
  rejectDuplicates: true
logging:
  level: debug
  format: json
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "in/people.txt", cfg.Input)
	assert.Equal(t, "out/people.xml", cfg.Output)
	assert.Equal(t, "jsonl", cfg.Format)
	assert.True(t, cfg.Converter.RejectDuplicates)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

// TestLoad_PartialFileKeepsDefaults tests that omitted keys keep defaults
func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "output: people.xml\n"))
	require.NoError(t, err)

	def := Default()
	assert.Equal(t, "people.xml", cfg.Output)
	assert.Equal(t, def.Input, cfg.Input)
	assert.Equal(t, def.Format, cfg.Format)
	assert.Equal(t, def.Logging, cfg.Logging)
	assert.False(t, cfg.Converter.RejectDuplicates)
}

// TestLoad_MissingExplicitFile tests error handling for a missing explicit path
func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	assert.Error(t, err)
}

// TestLoad_NoFileUsesDefaults tests the default search when nothing is found
func TestLoad_NoFileUsesDefaults(t *testing.T) {
	orig := DefaultPaths
	defer func() { DefaultPaths = orig }()
	DefaultPaths = []string{filepath.Join(t.TempDir(), "config.yml")}

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

// TestLoad_InvalidYAML tests error handling for invalid YAML
func TestLoad_InvalidYAML(t *testing.T) {
	_, err := Load(writeConfig(t, "invalid: yaml: content: [[["))
	assert.Error(t, err)
}

// TestLoad_ValidationFailures tests struct tag validation
func TestLoad_ValidationFailures(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"unknown format", "format: csv\n"},
		{"unknown log level", "logging:\n  level: verbose\n"},
		{"unknown log format", "logging:\n  format: xml\n"},
		{"empty input", "input: \"\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			assert.ErrorContains(t, err, "invalid config")
		})
	}
}

// TestRead_SkipsValidation tests that Read leaves validation to the caller
func TestRead_SkipsValidation(t *testing.T) {
	cfg, err := Read(writeConfig(t, "format: csv\n"))
	require.NoError(t, err)
	assert.Equal(t, "csv", cfg.Format)
	assert.Error(t, Validate(cfg))

	cfg.Format = "xml"
	assert.NoError(t, Validate(cfg))
}

// TestLoadAppConfig_SetsGlobal tests that the global config is replaced on success only
func TestLoadAppConfig_SetsGlobal(t *testing.T) {
	orig := Config
	defer func() { Config = orig }()

	require.NoError(t, LoadAppConfig(writeConfig(t, "format: jsonl\n")))
	assert.Equal(t, "jsonl", Config.Format)

	require.Error(t, LoadAppConfig(writeConfig(t, "format: csv\n")))
	assert.Equal(t, "jsonl", Config.Format)
}
