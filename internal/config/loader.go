package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a YAML configuration file and merges it over the defaults.
// A missing file is not an error: the defaults are returned and the caller
// decides whether an empty directory list is acceptable.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("error reading configuration: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("error parsing configuration: %w", err)
	}

	// Zero values from an explicit-but-partial file fall back to defaults.
	defaults := DefaultConfig()
	if cfg.SaveInterval == 0 {
		cfg.SaveInterval = defaults.SaveInterval
	}
	if cfg.Workers == 0 {
		cfg.Workers = defaults.Workers
	}
	if cfg.TempFile == "" {
		cfg.TempFile = defaults.TempFile
	}
	if cfg.LogFile == "" {
		cfg.LogFile = defaults.LogFile
	}
	if cfg.ReportFile == "" {
		cfg.ReportFile = defaults.ReportFile
	}

	return cfg, nil
}
