// Package config handles loading and saving application settings.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"dropwatch/internal/classify"
	"dropwatch/internal/watcher"
)

// Config holds the user-adjustable settings. Zero values mean "use default".
type Config struct {
	SettleDelayMs  int      `json:"settleDelayMs,omitempty"`
	IgnoreSuffixes []string `json:"ignoreSuffixes,omitempty"`
	Autostart      bool     `json:"autostart,omitempty"`
}

// Default returns the reference settings.
func Default() *Config {
	return &Config{
		SettleDelayMs:  int(watcher.DefaultSettleDelay / time.Millisecond),
		IgnoreSuffixes: classify.DefaultInProgressSuffixes(),
	}
}

// Path returns the per-application settings file location.
func Path() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "dropwatch", "config.json"), nil
}

// LoadOrDefault reads settings from filePath. A missing or unreadable file
// yields the defaults; settings must never keep the application from
// starting. Fields left out of the file keep their default values.
func LoadOrDefault(filePath string, log zerolog.Logger) *Config {
	cfg := Default()

	data, err := os.ReadFile(filePath)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Warn().Str("path", filePath).Err(err).Msg("settings unreadable, using defaults")
		}
		return cfg
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		log.Warn().Str("path", filePath).Err(err).Msg("settings corrupt, using defaults")
		return Default()
	}

	if cfg.SettleDelayMs <= 0 {
		cfg.SettleDelayMs = int(watcher.DefaultSettleDelay / time.Millisecond)
	}
	if len(cfg.IgnoreSuffixes) == 0 {
		cfg.IgnoreSuffixes = classify.DefaultInProgressSuffixes()
	}
	return cfg
}

// Save writes the settings to filePath, creating the directory if needed.
func Save(cfg *Config, filePath string) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return err
	}
	return os.WriteFile(filePath, data, 0644)
}

// SettleDelay returns the quiescence delay as a duration.
func (c *Config) SettleDelay() time.Duration {
	return time.Duration(c.SettleDelayMs) * time.Millisecond
}

// WatcherConfig translates the settings into the watcher's configuration.
func (c *Config) WatcherConfig() *watcher.Config {
	return &watcher.Config{
		SettleDelay:    c.SettleDelay(),
		IgnoreSuffixes: c.IgnoreSuffixes,
	}
}
