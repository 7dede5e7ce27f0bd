package cliconfig

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig mirrors Config but uses strings for durations and pointers
// for booleans to make TOML friendly.
type FileConfig struct {
	Input       string `toml:"input"`
	Column      int    `toml:"column"`
	BatchSize   int    `toml:"batch_size"`
	StartBatch  int    `toml:"start_batch"`
	Driver      string `toml:"driver"`
	SubmitDelay string `toml:"submit_delay"`
	StateDir    string `toml:"state_dir"`
	Resume      *bool  `toml:"resume"`
	DryRun      *bool  `toml:"dry_run"`
	Watch       *bool  `toml:"watch"`
}

// LoadFileConfig reads and parses a TOML config file from the given path.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// DefaultConfigPath returns the default configuration file path.
// Returns ~/.waroster/config.toml if the user home directory is accessible.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".waroster", "config.toml")
	}
	return ""
}

// ApplyFileConfig applies configuration from a file to the Config struct.
// It respects flags that have been explicitly set (changed map).
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("input", fc.Input, &cfg.Input)
	s.setString("driver", fc.Driver, &cfg.Driver)
	s.setString("state-dir", fc.StateDir, &cfg.StateDir)

	s.setInt("column", fc.Column, &cfg.Column)
	s.setInt("batch-size", fc.BatchSize, &cfg.BatchSize)
	s.setInt("start-batch", fc.StartBatch, &cfg.StartBatch)

	if err := s.setDuration("submit-delay", fc.SubmitDelay, &cfg.SubmitDelay); err != nil {
		return err
	}

	s.setBool("resume", fc.Resume, &cfg.Resume)
	s.setBool("dry-run", fc.DryRun, &cfg.DryRun)
	s.setBool("watch", fc.Watch, &cfg.Watch)

	return nil
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
