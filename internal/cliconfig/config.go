// Package cliconfig holds the CLI configuration surface: defaults, TOML
// file loading, environment overrides, and validation. Precedence is
// flags > environment > file > defaults, enforced through the changed-flag
// map the command passes in.
package cliconfig

import (
	"fmt"
	"path/filepath"
	"strconv"
	"time"

	"github.com/uno-labs/waroster/internal/domain"
)

// Driver selection values.
const (
	DriverConsole   = "console"
	DriverClipboard = "clipboard"
)

// DefaultBatchSize keeps each batch inside the platform's anti-spam
// tolerance for group additions.
const DefaultBatchSize = 25

// Config holds CLI configuration for waroster.
type Config struct {
	// Input is the path to the Google Forms CSV export.
	Input string

	// Column is the 1-based column holding the phone number.
	Column int

	BatchSize  int
	StartBatch int

	Driver      string
	SubmitDelay time.Duration

	// StateDir is where run state is stored. Defaults to the input
	// file's directory.
	StateDir string

	Resume bool
	DryRun bool
	Watch  bool
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		Column:      4,
		BatchSize:   DefaultBatchSize,
		StartBatch:  1,
		Driver:      DriverConsole,
		SubmitDelay: time.Second,
	}
}

// Validate checks the configuration for errors and sets derived defaults.
// Failures wrap domain.ErrInvalidConfig.
func (c *Config) Validate() error {
	if c.Input == "" {
		return fmt.Errorf("%w: input file is required (--input)", domain.ErrInvalidConfig)
	}
	if c.Column < 1 {
		return fmt.Errorf("%w: column must be at least 1", domain.ErrInvalidConfig)
	}
	if c.BatchSize < 1 {
		return fmt.Errorf("%w: batch size must be positive", domain.ErrInvalidConfig)
	}
	if c.StartBatch < 1 {
		return fmt.Errorf("%w: start batch must be at least 1", domain.ErrInvalidConfig)
	}
	if c.Driver != DriverConsole && c.Driver != DriverClipboard {
		return fmt.Errorf("%w: unknown driver %q (want %s or %s)", domain.ErrInvalidConfig, c.Driver, DriverConsole, DriverClipboard)
	}
	if c.SubmitDelay < 0 {
		return fmt.Errorf("%w: submit delay must not be negative", domain.ErrInvalidConfig)
	}
	if c.StateDir == "" {
		c.StateDir = filepath.Dir(c.Input)
	}
	return nil
}

// configSetter helps apply configuration values while respecting flag
// precedence. It only applies values if the corresponding flag hasn't been
// explicitly set.
type configSetter struct {
	changed map[string]bool
}

// newConfigSetter creates a new setter with the given changed flags map.
func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setInt sets an int value if positive and flag not changed.
func (s *configSetter) setInt(flag string, value int, dst *int) {
	if value <= 0 || s.changed[flag] {
		return
	}
	*dst = value
}

// setDuration parses and sets a duration from string if valid and flag not
// changed.
func (s *configSetter) setDuration(flag, value string, dst *time.Duration) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = d
	return nil
}

// setBool sets a bool value from a pointer if not nil and flag not changed.
func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setIntFromString parses a string to int and sets the destination if
// valid. Used for environment variables that come as strings.
func (s *configSetter) setIntFromString(flag, value string, dst *int) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	if i <= 0 {
		return nil
	}
	*dst = i
	return nil
}

// setBoolFromString parses a string to bool and sets the destination.
// Accepts "true", "1" as true, anything else as false.
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value == "true" || value == "1"
}
