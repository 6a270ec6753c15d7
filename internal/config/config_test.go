package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func writeYAML(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "soundlaw.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv(PathEnv, "")
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 1, cfg.Aligner.MaxZeroes)
	assert.Equal(t, 2, cfg.Aligner.MaxAllowedMappings)
	assert.False(t, cfg.Aligner.InitialOnly)
	assert.Equal(t, "dp", cfg.Aligner.Method)
	assert.Equal(t, 1000, cfg.Experiment.Experiments)
	assert.Equal(t, -1, cfg.Experiment.MaxDistinctRoots)
	assert.Equal(t, 5, cfg.Experiment.MaxHomophones)
	assert.InDelta(t, 3.0, cfg.Experiment.LevenshteinThreshold, 1e-12)
	assert.True(t, cfg.Experiment.PrintMappings)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "soundlaw", cfg.Metrics.ServiceName)
	assert.Equal(t, Default(), *cfg)
}

func TestLoad_YAMLZeroValues(t *testing.T) {
	t.Setenv(PathEnv, "")
	path := writeYAML(t, `
aligner:
  max_zeroes: 0
experiment:
  experiments: 0
  etyma: 0
  max_distinct_roots: 0
  levenshtein_threshold: 0
  print_mappings: false
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 0, cfg.Aligner.MaxZeroes)
	assert.Equal(t, 0, cfg.Experiment.Experiments)
	assert.Equal(t, 0, cfg.Experiment.Etyma)
	assert.Equal(t, 0, cfg.Experiment.MaxDistinctRoots)
	assert.Zero(t, cfg.Experiment.LevenshteinThreshold)
	assert.False(t, cfg.Experiment.PrintMappings)

	// fields the file leaves out keep their defaults
	assert.Equal(t, 2, cfg.Aligner.MaxAllowedMappings)
	assert.Equal(t, 5, cfg.Experiment.MaxHomophones)
	assert.Equal(t, "dp", cfg.Aligner.Method)
}

func TestLoad_EnvZeroValues(t *testing.T) {
	t.Setenv(PathEnv, "")
	t.Setenv("SOUNDLAW_MAX_ZEROES", "0")
	t.Setenv("SOUNDLAW_MAX_DISTINCT_ROOTS", "0")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.Aligner.MaxZeroes)
	assert.Equal(t, 0, cfg.Experiment.MaxDistinctRoots)
	assert.Equal(t, 1000, cfg.Experiment.Experiments)
}

func TestLoad_YAMLAndEnv(t *testing.T) {
	path := writeYAML(t, `
aligner:
  max_zeroes: 2
  max_allowed_mappings: 1
  initial_only: true
  method: lattice
log:
  level: debug
  format: json
`)
	t.Setenv("SOUNDLAW_WORKERS", "4")
	t.Setenv("SOUNDLAW_MAX_ALLOWED_MAPPINGS", "3")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Aligner.MaxZeroes)
	assert.True(t, cfg.Aligner.InitialOnly)
	assert.Equal(t, "lattice", cfg.Aligner.Method)
	assert.Equal(t, 4, cfg.Aligner.Workers)
	assert.Equal(t, 3, cfg.Aligner.MaxAllowedMappings, "env wins over yaml")
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoad_PathFromEnv(t *testing.T) {
	path := writeYAML(t, "aligner:\n  max_zeroes: 4\n")
	t.Setenv(PathEnv, path)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Aligner.MaxZeroes)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_Invalid(t *testing.T) {
	path := writeYAML(t, "aligner:\n  max_allowed_mappings: -1\n  method: viterbi\n")
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "max_allowed_mappings")
	assert.Contains(t, err.Error(), "aligner.method")
}

func TestValidate_CollectsAll(t *testing.T) {
	cfg := &Config{
		Aligner:    AlignerConfig{MaxZeroes: -1, MaxAllowedMappings: 0, Method: "dp", Workers: -2},
		Experiment: ExperimentConfig{MaxHomophones: 0, MaxDistinctRoots: -5, Method: "coin"},
		Log:        LogConfig{Level: "INFO", Format: "xml"},
	}
	err := cfg.Validate()
	require.Error(t, err)
	for _, field := range []string{
		"aligner.max_zeroes", "aligner.max_allowed_mappings", "aligner.workers",
		"experiment.max_homophones", "experiment.max_distinct_roots", "experiment.method",
		"log.format",
	} {
		assert.Contains(t, err.Error(), field)
	}
	assert.NotContains(t, err.Error(), "log.level", "level is case-insensitive")
}

func TestDump_RoundTrip(t *testing.T) {
	t.Setenv(PathEnv, "")
	cfg, err := Load("")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, cfg.Dump(&buf))
	assert.Contains(t, buf.String(), "max_allowed_mappings: 2")

	var back Config
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &back))
	assert.Equal(t, *cfg, back)
}
