// Package config holds application constants and the YAML user config.
// The config file seeds defaults on first run; values the user changes
// inside the app are persisted to the settings store and win over the file.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk user configuration.
type Config struct {
	Timer  TimerConfig  `yaml:"timer"`
	Alerts AlertsConfig `yaml:"alerts"`
	Theme  string       `yaml:"theme"`
}

// TimerConfig configures the focus countdown.
type TimerConfig struct {
	DefaultMinutes int `yaml:"default_minutes"`
}

// AlertsConfig toggles completion side effects. Volume is a gain
// exponent: 0 plays the chime as generated, negative values soften it.
type AlertsConfig struct {
	Sound        bool    `yaml:"sound"`
	Volume       float64 `yaml:"volume"`
	Notification bool    `yaml:"notification"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Timer:  TimerConfig{DefaultMinutes: 25},
		Alerts: AlertsConfig{Sound: true, Notification: true},
		Theme:  "default",
	}
}

// Load reads the config file at path, filling missing fields from defaults.
// A missing or unreadable file yields the defaults; a malformed file is an
// error so the user notices rather than silently losing their settings.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, nil
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), err
	}
	if cfg.Timer.DefaultMinutes <= 0 {
		cfg.Timer.DefaultMinutes = 25
	}
	if cfg.Theme == "" {
		cfg.Theme = "default"
	}
	return cfg, nil
}

// Save writes the config file, creating parent directories as needed.
func Save(path string, cfg Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// DefaultPath returns ~/.config/tempo/config.yaml, honoring XDG_CONFIG_HOME.
func DefaultPath() string {
	if base := os.Getenv("XDG_CONFIG_HOME"); base != "" {
		return filepath.Join(base, AppName, "config.yaml")
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return filepath.Join(".", AppName, "config.yaml")
	}
	return filepath.Join(home, ".config", AppName, "config.yaml")
}
