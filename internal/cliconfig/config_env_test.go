package cliconfig

import (
	"testing"
	"time"
)

func TestApplyEnvConfig(t *testing.T) {
	t.Setenv("WAROSTER_INPUT", "/data/export.csv")
	t.Setenv("WAROSTER_BATCH_SIZE", "10")
	t.Setenv("WAROSTER_START_BATCH", "3")
	t.Setenv("WAROSTER_DRIVER", "clipboard")
	t.Setenv("WAROSTER_SUBMIT_DELAY", "500ms")
	t.Setenv("WAROSTER_DRY_RUN", "true")

	cfg := DefaultConfig()
	if err := ApplyEnvConfig(&cfg, nil); err != nil {
		t.Fatalf("ApplyEnvConfig: %v", err)
	}

	if cfg.Input != "/data/export.csv" {
		t.Errorf("Input = %v", cfg.Input)
	}
	if cfg.BatchSize != 10 || cfg.StartBatch != 3 {
		t.Errorf("batch = %d start = %d, want 10/3", cfg.BatchSize, cfg.StartBatch)
	}
	if cfg.Driver != DriverClipboard {
		t.Errorf("Driver = %v", cfg.Driver)
	}
	if cfg.SubmitDelay != 500*time.Millisecond {
		t.Errorf("SubmitDelay = %v", cfg.SubmitDelay)
	}
	if !cfg.DryRun {
		t.Error("DryRun not applied")
	}
}

func TestApplyEnvConfig_FlagsWin(t *testing.T) {
	t.Setenv("WAROSTER_BATCH_SIZE", "10")

	cfg := DefaultConfig()
	cfg.BatchSize = 5 // as if set by flag
	changed := map[string]bool{"batch-size": true}

	if err := ApplyEnvConfig(&cfg, changed); err != nil {
		t.Fatalf("ApplyEnvConfig: %v", err)
	}
	if cfg.BatchSize != 5 {
		t.Errorf("BatchSize = %v, want flag value 5", cfg.BatchSize)
	}
}

func TestApplyEnvConfig_BadInt(t *testing.T) {
	t.Setenv("WAROSTER_BATCH_SIZE", "lots")

	cfg := DefaultConfig()
	if err := ApplyEnvConfig(&cfg, nil); err == nil {
		t.Fatal("expected parse error")
	}
}
