/*
PURPOSE:
  Defines the configuration structure and loading logic for the simulator.
  Adheres to "Config IS Code" philosophy.

REQUIREMENTS:
  User-specified:
  - Allow configuration of the output format and reaction scenarios.

  Implementation-discovered:
  - Needs to support YAML parsing.
  - Missing config file must fall back to the built-in reference scenario.

ARCHITECTURE INTEGRATION:
  - Used by: internal/cli, internal/engine
  - Dependencies: gopkg.in/yaml.v3 (standard for Go config)

ERROR HANDLING:
  - Returns explicit error if config file is invalid.
  - Returns optional error if an explicitly named file is missing.

IMPLEMENTATION RULES:
  - Config struct tags should support yaml.
  - Defaults should be the documented reference scenario.

USAGE:
  cfg, err := config.Load("methylsim.yaml")

SELF-HEALING INSTRUCTIONS:
  - If new fields are needed, add to Config struct and update Default() here.

RELATED FILES:
  - internal/cli/root.go

MAINTENANCE:
  - Update when adding new tuning parameters.
*/

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jdshastri26/methylation-sim/internal/model"
)

// Supported result formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatCSV  = "csv"
)

// Config represents the full configuration for a simulator run.
type Config struct {
	// Format selects the result output: text, json or csv.
	Format string `yaml:"format"`
	// Scenarios lists the parameter sets to run, in order.
	Scenarios []model.Parameters `yaml:"scenarios"`
}

// ReferenceScenario returns the built-in demonstration parameter set.
func ReferenceScenario() model.Parameters {
	return model.Parameters{
		LeafWeight:          100.0,
		AgentConcentration:  20.0,
		ReactionTime:        3.0,
		ReactionTemperature: 60.0,
		CatalystEfficiency:  85.0,
	}
}

// DefaultConfig returns the default configuration: text output, one
// reference scenario.
func DefaultConfig() *Config {
	return &Config{
		Format:    FormatText,
		Scenarios: []model.Parameters{ReferenceScenario()},
	}
}

// Load reads configuration from a file.
// If path is specified, it attempts to load that file.
// If path is empty, it searches for default files in order.
// If no file is found, returns the default config.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	var data []byte
	var err error

	if path != "" {
		data, err = os.ReadFile(path)
		if err != nil {
			return cfg, err
		}
	} else {
		defaults := []string{"methylsim.yaml", "methylsim.conf"}
		found := false
		for _, name := range defaults {
			data, err = os.ReadFile(name)
			if err == nil {
				path = name // record which file we loaded
				found = true
				break
			}
		}
		if !found {
			// No config file found, return default
			return cfg, nil
		}
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if cfg.Format == "" {
		cfg.Format = FormatText
	}
	if len(cfg.Scenarios) == 0 {
		cfg.Scenarios = []model.Parameters{ReferenceScenario()}
	}

	return cfg, nil
}
