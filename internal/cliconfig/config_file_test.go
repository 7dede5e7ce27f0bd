package cliconfig

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadFileConfig(t *testing.T) {
	path := writeConfig(t, `
input = "/data/export.csv"
column = 5
batch_size = 10
start_batch = 2
driver = "clipboard"
submit_delay = "2s"
dry_run = true
`)

	fc, err := LoadFileConfig(path)
	if err != nil {
		t.Fatalf("LoadFileConfig: %v", err)
	}

	if fc.Input != "/data/export.csv" {
		t.Errorf("Input = %v", fc.Input)
	}
	if fc.Column != 5 || fc.BatchSize != 10 || fc.StartBatch != 2 {
		t.Errorf("numbers = %d/%d/%d, want 5/10/2", fc.Column, fc.BatchSize, fc.StartBatch)
	}
	if fc.Driver != "clipboard" {
		t.Errorf("Driver = %v", fc.Driver)
	}
	if fc.DryRun == nil || !*fc.DryRun {
		t.Error("DryRun not parsed")
	}
	if fc.Watch != nil {
		t.Error("Watch should be nil when absent")
	}
}

func TestLoadFileConfig_Invalid(t *testing.T) {
	path := writeConfig(t, `batch_size = "not a number"`)
	if _, err := LoadFileConfig(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestApplyFileConfig(t *testing.T) {
	cfg := DefaultConfig()
	dryRun := true

	fc := FileConfig{
		Input:       "/data/export.csv",
		BatchSize:   10,
		Driver:      "clipboard",
		SubmitDelay: "2s",
		DryRun:      &dryRun,
	}

	if err := ApplyFileConfig(&cfg, fc, nil); err != nil {
		t.Fatalf("ApplyFileConfig: %v", err)
	}

	if cfg.Input != "/data/export.csv" {
		t.Errorf("Input = %v", cfg.Input)
	}
	if cfg.BatchSize != 10 {
		t.Errorf("BatchSize = %v, want 10", cfg.BatchSize)
	}
	if cfg.Driver != "clipboard" {
		t.Errorf("Driver = %v", cfg.Driver)
	}
	if cfg.SubmitDelay != 2*time.Second {
		t.Errorf("SubmitDelay = %v, want 2s", cfg.SubmitDelay)
	}
	if !cfg.DryRun {
		t.Error("DryRun not applied")
	}
	// Unset file values keep defaults.
	if cfg.Column != 4 || cfg.StartBatch != 1 {
		t.Errorf("defaults clobbered: column=%d start=%d", cfg.Column, cfg.StartBatch)
	}
}

func TestApplyFileConfig_FlagsWin(t *testing.T) {
	cfg := DefaultConfig()
	cfg.BatchSize = 5 // as if set by flag

	fc := FileConfig{BatchSize: 10}
	changed := map[string]bool{"batch-size": true}

	if err := ApplyFileConfig(&cfg, fc, changed); err != nil {
		t.Fatalf("ApplyFileConfig: %v", err)
	}
	if cfg.BatchSize != 5 {
		t.Errorf("BatchSize = %v, want flag value 5", cfg.BatchSize)
	}
}

func TestApplyFileConfig_BadDuration(t *testing.T) {
	cfg := DefaultConfig()
	fc := FileConfig{SubmitDelay: "soon"}

	if err := ApplyFileConfig(&cfg, fc, nil); err == nil {
		t.Fatal("expected duration parse error")
	}
}
