package cliconfig

import "os"

// ApplyEnvConfig applies configuration from environment variables
// (WAROSTER_*). It respects flags that have been explicitly set (changed
// map). Returns an error if any environment variable has an invalid
// format.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("input", os.Getenv("WAROSTER_INPUT"), &cfg.Input)
	s.setString("driver", os.Getenv("WAROSTER_DRIVER"), &cfg.Driver)
	s.setString("state-dir", os.Getenv("WAROSTER_STATE_DIR"), &cfg.StateDir)

	if err := s.setIntFromString("column", os.Getenv("WAROSTER_COLUMN"), &cfg.Column); err != nil {
		return err
	}
	if err := s.setIntFromString("batch-size", os.Getenv("WAROSTER_BATCH_SIZE"), &cfg.BatchSize); err != nil {
		return err
	}
	if err := s.setIntFromString("start-batch", os.Getenv("WAROSTER_START_BATCH"), &cfg.StartBatch); err != nil {
		return err
	}
	if err := s.setDuration("submit-delay", os.Getenv("WAROSTER_SUBMIT_DELAY"), &cfg.SubmitDelay); err != nil {
		return err
	}

	s.setBoolFromString("resume", os.Getenv("WAROSTER_RESUME"), &cfg.Resume)
	s.setBoolFromString("dry-run", os.Getenv("WAROSTER_DRY_RUN"), &cfg.DryRun)
	s.setBoolFromString("watch", os.Getenv("WAROSTER_WATCH"), &cfg.Watch)

	return nil
}
