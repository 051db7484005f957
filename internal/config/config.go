// Package config provides hierarchical configuration management for chlog using koanf.
// Configuration is loaded with priority: environment variables > project config
// (.chlog/config.yml) > user config (~/.config/chlog/config.yml) > defaults.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Configuration represents the chlog CLI tool configuration.
type Configuration struct {
	// File is the change log file the CLI operates on.
	// Can be set via CHLOG_FILE env var.
	File string `koanf:"file"`

	// Plain disables colors and styling in terminal output.
	// Can be set via CHLOG_PLAIN env var.
	Plain bool `koanf:"plain"`

	// ShowLast is the default number of messages 'chlog show' prints.
	ShowLast int `koanf:"show_last"`

	// DateFormat is the Go reference layout used when stamping release
	// dates. The parser never enforces it; dates in existing files are
	// kept as-is.
	DateFormat string `koanf:"date_format"`

	// SuggestLimit caps how many commits 'chlog suggest' inspects when
	// the last release date cannot be determined.
	SuggestLimit int `koanf:"suggest_limit"`
}

// Load loads configuration from user, project, and environment sources.
// Priority: Environment variables > Project config > User config > Defaults
//
// Config paths:
//   - User config: ~/.config/chlog/config.yml (XDG compliant)
//   - Project config: .chlog/config.yml
func Load(projectConfigPath string) (*Configuration, error) {
	k := koanf.New(".")

	loadDefaults(k)

	if err := loadUserConfig(k); err != nil {
		return nil, err
	}

	if err := loadProjectConfig(k, projectConfigPath); err != nil {
		return nil, err
	}

	if err := loadEnvironmentConfig(k); err != nil {
		return nil, err
	}

	return finalizeConfig(k)
}

// loadDefaults applies default configuration values.
func loadDefaults(k *koanf.Koanf) {
	for key, value := range GetDefaults() {
		k.Set(key, value)
	}
}

// loadUserConfig loads the user-level YAML config when present.
func loadUserConfig(k *koanf.Koanf) error {
	path, err := UserConfigPath()
	if err != nil || !fileExists(path) {
		return nil
	}
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return fmt.Errorf("loading user config %s: %w", path, err)
	}
	return nil
}

// loadProjectConfig loads the project-level YAML config, honoring a
// custom path override (used by tests and the --config flag).
func loadProjectConfig(k *koanf.Koanf, customPath string) error {
	path := ProjectConfigPath()
	if customPath != "" {
		path = customPath
	}
	if !fileExists(path) {
		if customPath != "" {
			return fmt.Errorf("config file not found: %s", customPath)
		}
		return nil
	}
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return fmt.Errorf("loading project config %s: %w", path, err)
	}
	return nil
}

// loadEnvironmentConfig loads environment variable overrides.
func loadEnvironmentConfig(k *koanf.Koanf) error {
	if err := k.Load(env.Provider("CHLOG_", ".", envTransform), nil); err != nil {
		return fmt.Errorf("loading environment config: %w", err)
	}
	return nil
}

// finalizeConfig unmarshals and validates the merged configuration.
func finalizeConfig(k *koanf.Koanf) (*Configuration, error) {
	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the merged configuration values.
func Validate(cfg *Configuration) error {
	if cfg.File == "" {
		return fmt.Errorf("config: 'file' must not be empty")
	}
	if cfg.ShowLast < 0 {
		return fmt.Errorf("config: 'show_last' must not be negative (got %d)", cfg.ShowLast)
	}
	if cfg.SuggestLimit < 1 {
		return fmt.Errorf("config: 'suggest_limit' must be at least 1 (got %d)", cfg.SuggestLimit)
	}
	return nil
}

// envTransform converts environment variable names to config keys.
// Example: CHLOG_SHOW_LAST -> show_last
func envTransform(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, "CHLOG_"))
}

// fileExists returns true if the file exists and is readable.
func fileExists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}
