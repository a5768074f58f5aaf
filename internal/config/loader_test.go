package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") returned error: %v", err)
	}
	if cfg != DefaultTuning() {
		t.Errorf("cfg = %+v, want defaults", cfg)
	}
}

func TestLoadOverlaysOnlyNamedFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	overlay := "player_speed: 7.5\nwave_duration: 20\nseed: 42\n"
	if err := os.WriteFile(path, []byte(overlay), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.PlayerSpeed != 7.5 {
		t.Errorf("PlayerSpeed = %v, want 7.5", cfg.PlayerSpeed)
	}
	if cfg.WaveDuration != 20 {
		t.Errorf("WaveDuration = %v, want 20", cfg.WaveDuration)
	}
	if cfg.Seed != 42 {
		t.Errorf("Seed = %v, want 42", cfg.Seed)
	}
	// Unnamed fields keep their defaults.
	if cfg.PlayerMaxHealth != PlayerMaxHealth {
		t.Errorf("PlayerMaxHealth = %v, want default %v", cfg.PlayerMaxHealth, PlayerMaxHealth)
	}
	if cfg.SpawnBaseInterval != SpawnBaseInterval {
		t.Errorf("SpawnBaseInterval = %v, want default %v", cfg.SpawnBaseInterval, SpawnBaseInterval)
	}
}

func TestLoadZeroValuesDoNotOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	if err := os.WriteFile(path, []byte("player_speed: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.PlayerSpeed != PlayerSpeed {
		t.Errorf("PlayerSpeed = %v, zero overlay must keep the default", cfg.PlayerSpeed)
	}
}

func TestLoadMissingFileErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestLoadBadYAMLErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("player_speed: [not a number"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected an error for malformed YAML")
	}
}
