// Package daemon manages the LandLord daemon lifecycle and configuration.
package daemon

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/bunkeboy/landlord/internal/app/progression"
)

// Config holds all daemon configuration.
type Config struct {
	API       APIConfig         `toml:"api"`
	Storage   StorageConfig     `toml:"storage"`
	Logging   LoggingConfig     `toml:"logging"`
	Telemetry TelemetryConfig   `toml:"telemetry"`
	Rules     progression.Rules `toml:"rules"`
}

// APIConfig controls the HTTP API server.
type APIConfig struct {
	Host        string   `toml:"host"`
	Port        int      `toml:"port"`
	CORSOrigins []string `toml:"cors_origins"`
}

// StorageConfig controls where state lives.
type StorageConfig struct {
	Dir string `toml:"dir"`
}

// LoggingConfig controls logging behavior.
type LoggingConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// TelemetryConfig controls observability endpoints.
type TelemetryConfig struct {
	Prometheus bool `toml:"prometheus"`
}

// DefaultConfig returns a sensible default configuration.
func DefaultConfig() Config {
	homeDir := landlordHome()
	return Config{
		API: APIConfig{
			Host:        "127.0.0.1",
			Port:        7777,
			CORSOrigins: []string{"*"},
		},
		Storage: StorageConfig{
			Dir: homeDir,
		},
		Logging: LoggingConfig{
			Level: "info",
			File:  filepath.Join(homeDir, "landlord.log"),
		},
		Telemetry: TelemetryConfig{
			Prometheus: true,
		},
		Rules: progression.DefaultRules(),
	}
}

// LoadConfig reads config from ~/.landlord/config.toml, falling back to
// defaults. A .env file in the working directory is loaded first so
// LANDLORD_HOME can be set there during development.
func LoadConfig() (Config, error) {
	_ = godotenv.Load()

	cfg := DefaultConfig()
	path := filepath.Join(landlordHome(), "config.toml")

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil // No config file yet — use defaults
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// SaveConfig writes the config to ~/.landlord/config.toml.
func SaveConfig(cfg Config) error {
	path := filepath.Join(landlordHome(), "config.toml")
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	encoder := toml.NewEncoder(f)
	return encoder.Encode(cfg)
}

// landlordHome returns the LandLord data directory.
func landlordHome() string {
	if env := os.Getenv("LANDLORD_HOME"); env != "" {
		return env
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".landlord")
}

// Home is exported for use by other packages.
func Home() string {
	return landlordHome()
}
