package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is the prefix of environment overrides, e.g. PAINTBOX_LOGGING_LEVEL.
const EnvPrefix = "PAINTBOX"

// Load loads configuration with priority: defaults < file < environment < flags.
func Load() (*Config, error) {
	// Start with defaults
	cfg := Default()

	// Try to load from file (explicit path takes priority)
	configPath := ConfigPath()
	if configPath == "" {
		configPath = findConfigFile()
	}

	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", configPath, err)
		}
	}

	if err := loadFromEnv(cfg); err != nil {
		return nil, fmt.Errorf("loading config from environment: %w", err)
	}

	// Apply CLI flags (highest priority)
	applyFlags(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects values the editor cannot run with.
func (c *Config) Validate() error {
	e := c.Editor
	switch {
	case e.MinZoom <= 0:
		return fmt.Errorf("editor.min_zoom must be positive, got %v", e.MinZoom)
	case e.ZoomWheelDivisor <= 0:
		return fmt.Errorf("editor.zoom_wheel_divisor must be positive, got %v", e.ZoomWheelDivisor)
	case e.ResizeHitboxSize < 0:
		return fmt.Errorf("editor.resize_hitbox_size must not be negative, got %v", e.ResizeHitboxSize)
	case e.StrokeWeightMin <= 0 || e.StrokeWeightMax < e.StrokeWeightMin:
		return fmt.Errorf("editor stroke weight range [%v, %v] is invalid", e.StrokeWeightMin, e.StrokeWeightMax)
	case c.Export.JPEGQuality < 1 || c.Export.JPEGQuality > 100:
		return fmt.Errorf("export.jpeg_quality must be in 1..100, got %d", c.Export.JPEGQuality)
	}
	return nil
}

// findConfigFile looks for config in standard locations.
func findConfigFile() string {
	candidates := []string{
		"./paintbox.yaml",
		filepath.Join(ConfigDir(), "config.yaml"),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// ConfigDir returns the OS-appropriate config directory.
func ConfigDir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "Paintbox")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "Paintbox")
	default: // Linux and others
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "paintbox")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "paintbox")
	}
}

// loadFromFile loads config from a YAML file, merging with existing values.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// loadFromEnv overrides fields that have a PAINTBOX_* variable set. Unset
// variables leave the current value alone.
func loadFromEnv(cfg *Config) error {
	return envconfig.Process(EnvPrefix, cfg)
}
