// YAML config loader with CUE validation integration
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"alertsift/internal/filter"
)

// Scan holds loop-level options.
type Scan struct {
	Pattern  string `yaml:"pattern"`
	FailFast bool   `yaml:"fail_fast"`
}

// Config is the root configuration: filter thresholds plus scan options.
type Config struct {
	Filters filter.Thresholds `yaml:"filters"`
	Scan    Scan              `yaml:"scan"`
}

// Default returns the built-in configuration used when no file is given.
func Default() *Config {
	return &Config{
		Filters: filter.Defaults(),
		Scan:    Scan{Pattern: "*.avro"},
	}
}

// Load reads a YAML config, validating it against the CUE schema first.
// An empty configPath yields Default. An empty cueSchemaPath skips
// validation.
func Load(configPath, cueSchemaPath string) (*Config, error) {
	cfg := Default()
	if configPath == "" {
		return cfg, nil
	}

	if cueSchemaPath != "" {
		if err := ValidateWithCue(configPath, cueSchemaPath); err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("cannot unmarshal YAML config: %w", err)
	}
	return cfg, nil
}
