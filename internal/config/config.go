package config

import (
	"fmt"
	"runtime"
)

// Config holds the full harvester configuration. It is constructed once at
// startup and passed into each component; nothing reads it ambiently.
type Config struct {
	// Directories to scan for duplicates.
	Directories []string `yaml:"directories"`

	// IgnoreList contains base-name prefixes to skip (e.g. "." for hidden files).
	IgnoreList []string `yaml:"ignore_list"`

	// TempFile is where fingerprinting progress is checkpointed.
	TempFile string `yaml:"temp_file"`

	// SaveInterval is the number of newly fingerprinted files between
	// periodic checkpoint saves.
	SaveInterval int `yaml:"save_interval"`

	// LogFile receives the structured audit log.
	LogFile string `yaml:"log_file"`

	// Workers bounds the fingerprinting worker pool.
	Workers int `yaml:"workers"`

	// ReportFile is the default location for the final report.
	ReportFile string `yaml:"report_file"`
}

// DefaultConfig returns a configuration with sensible defaults for every
// field except Directories, which has no meaningful default.
func DefaultConfig() *Config {
	return &Config{
		IgnoreList:   []string{"."},
		TempFile:     "harvester_progress.json",
		SaveInterval: 100,
		LogFile:      "harvester.log",
		Workers:      runtime.NumCPU(),
		ReportFile:   "file_info_report.json",
	}
}

// Validate checks the configuration for values the rest of the program
// cannot work with.
func (c *Config) Validate() error {
	if len(c.Directories) == 0 {
		return fmt.Errorf("no directories configured")
	}
	if c.SaveInterval <= 0 {
		return fmt.Errorf("save_interval must be positive, got %d", c.SaveInterval)
	}
	if c.Workers <= 0 {
		return fmt.Errorf("workers must be positive, got %d", c.Workers)
	}
	return nil
}
