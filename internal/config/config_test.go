package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdshastri26/methylation-sim/internal/model"
)

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(old) })
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, FormatText, cfg.Format)
	require.Len(t, cfg.Scenarios, 1)
	assert.Equal(t, ReferenceScenario(), cfg.Scenarios[0])
}

func TestReferenceScenarioIsValid(t *testing.T) {
	require.NoError(t, ReferenceScenario().Validate())
}

func TestLoadExplicitPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "batch.yaml")
	data := `format: json
scenarios:
  - leaf_weight: 50
    agent_concentration: 10
    reaction_time: 2
    reaction_temperature: 40
    catalyst_efficiency: 70
  - leaf_weight: 80
    agent_concentration: 15
    reaction_time: 4
    reaction_temperature: 90
    catalyst_efficiency: 60
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, FormatJSON, cfg.Format)
	require.Len(t, cfg.Scenarios, 2)
	assert.Equal(t, model.Parameters{
		LeafWeight:          50,
		AgentConcentration:  10,
		ReactionTime:        2,
		ReactionTemperature: 40,
		CatalystEfficiency:  70,
	}, cfg.Scenarios[0])
}

func TestLoadMissingExplicitPath(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	// Defaults still come back so the caller can decide to proceed.
	require.NotNil(t, cfg)
	assert.Equal(t, FormatText, cfg.Format)
}

func TestLoadNoFileFallsBackToDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadSearchFindsDefaultFile(t *testing.T) {
	dir := t.TempDir()
	data := "format: csv\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "methylsim.yaml"), []byte(data), 0644))
	chdir(t, dir)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, FormatCSV, cfg.Format)
	// Fields the file does not set keep their defaults.
	require.Len(t, cfg.Scenarios, 1)
	assert.Equal(t, ReferenceScenario(), cfg.Scenarios[0])
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("format: [unclosed"), 0644))

	cfg, err := Load(path)
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config file")
}
