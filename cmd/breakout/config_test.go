package main

import (
	"testing"
)

func TestLoadConfigFlagOverrides(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	flagFPS, flagFont = 30, "faces/arcade.yaml"
	t.Cleanup(func() { flagFPS, flagFont = 0, "" })

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}
	if cfg.TickRate != 30 {
		t.Errorf("TickRate = %d, expected 30", cfg.TickRate)
	}
	if cfg.Font != "faces/arcade.yaml" {
		t.Errorf("Font = %q, expected %q", cfg.Font, "faces/arcade.yaml")
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	flagConfig = "does-not-exist.yaml"
	t.Cleanup(func() { flagConfig = "" })

	if _, err := loadConfig(); err == nil {
		t.Error("loadConfig() error = nil, expected error")
	}
}
