package daemon

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.API.Host != "127.0.0.1" {
		t.Errorf("API.Host = %q, want %q", cfg.API.Host, "127.0.0.1")
	}
	if cfg.API.Port != 7777 {
		t.Errorf("API.Port = %d, want %d", cfg.API.Port, 7777)
	}
	if !cfg.Telemetry.Prometheus {
		t.Error("Telemetry.Prometheus should default to true")
	}
	if cfg.Rules.XPPerLevel != 100 {
		t.Errorf("Rules.XPPerLevel = %d, want 100", cfg.Rules.XPPerLevel)
	}
	if cfg.Rules.MaxLevel != 50 {
		t.Errorf("Rules.MaxLevel = %d, want 50", cfg.Rules.MaxLevel)
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	t.Setenv("LANDLORD_HOME", t.TempDir())

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	if cfg.API.Port != 7777 {
		t.Errorf("API.Port = %d, want default 7777", cfg.API.Port)
	}
}

func TestLoadConfig_Overrides(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("LANDLORD_HOME", dir)

	body := `
[api]
host = "0.0.0.0"
port = 9000

[rules]
xp_per_level = 200
max_streak_days = 10
`
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(body), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	if cfg.API.Host != "0.0.0.0" {
		t.Errorf("API.Host = %q, want overridden", cfg.API.Host)
	}
	if cfg.API.Port != 9000 {
		t.Errorf("API.Port = %d, want 9000", cfg.API.Port)
	}
	if cfg.Rules.XPPerLevel != 200 {
		t.Errorf("Rules.XPPerLevel = %d, want 200", cfg.Rules.XPPerLevel)
	}
	if cfg.Rules.MaxStreakDays != 10 {
		t.Errorf("Rules.MaxStreakDays = %d, want 10", cfg.Rules.MaxStreakDays)
	}
	// Untouched sections keep defaults.
	if cfg.Rules.MaxShields != 3 {
		t.Errorf("Rules.MaxShields = %d, want default 3", cfg.Rules.MaxShields)
	}
}

func TestSaveConfig_RoundTrip(t *testing.T) {
	t.Setenv("LANDLORD_HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.API.Port = 9999
	if err := SaveConfig(cfg); err != nil {
		t.Fatalf("SaveConfig() error: %v", err)
	}

	loaded, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	if loaded.API.Port != 9999 {
		t.Errorf("API.Port = %d, want 9999", loaded.API.Port)
	}
}
