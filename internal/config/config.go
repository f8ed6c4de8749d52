// Package config defines the oasview configuration, loaded by viper from
// the XDG config directory, the environment (OASVIEW_*), and flags.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	// FilePermissions is the default permission mode for regular files
	FilePermissions = 0644
	// DirPermissions is the default permission mode for directories
	DirPermissions = 0755
)

// Config represents the complete oasview configuration.
type Config struct {
	Viewer  ViewerConfig  `mapstructure:"viewer"`
	History HistoryConfig `mapstructure:"history"`
	Logging LoggingConfig `mapstructure:"logging"`
	// Keybinds overrides default bindings: context -> action -> key list.
	Keybinds map[string]map[string]string `mapstructure:"keybinds"`
}

// ViewerConfig controls the terminal UI behavior.
type ViewerConfig struct {
	// Theme is the chroma style used for schema highlighting (default: "monokai").
	// Any style name shipped with chroma is accepted; unknown names fall back
	// to chroma's default style.
	Theme string `mapstructure:"theme"`
	// Watch reloads the document when the file changes on disk (default: true).
	// Only applies to local files; URLs are fetched once.
	Watch bool `mapstructure:"watch"`
	// NavWidthPercent is the navigation pane width as a percentage of the
	// terminal width (default: 38, min: 20, max: 60).
	NavWidthPercent int `mapstructure:"nav_width_percent"`
}

// HistoryConfig controls the document/operation usage history.
type HistoryConfig struct {
	// Enabled turns history recording on (default: true).
	Enabled bool `mapstructure:"enabled"`
	// Path overrides the history database location.
	// If empty, defaults to {data dir}/history.db.
	Path string `mapstructure:"path"`
}

// LoggingConfig controls debug logging behavior.
type LoggingConfig struct {
	// File is the log file path. Empty disables logging entirely; the TUI
	// owns the terminal, so there is no stderr fallback while it runs.
	File string `mapstructure:"file"`
	// Level is the log level: "debug", "info", "warn", "error" (default: "info").
	Level string `mapstructure:"level"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Viewer: ViewerConfig{
			Theme:           "monokai",
			Watch:           true,
			NavWidthPercent: 38,
		},
		History: HistoryConfig{
			Enabled: true,
			Path:    "",
		},
		Logging: LoggingConfig{
			File:  "",
			Level: "info",
		},
		Keybinds: map[string]map[string]string{},
	}
}

// SetDefaults registers default values with viper.
func SetDefaults() {
	defaults := Default()

	viper.SetDefault("viewer.theme", defaults.Viewer.Theme)
	viper.SetDefault("viewer.watch", defaults.Viewer.Watch)
	viper.SetDefault("viewer.nav_width_percent", defaults.Viewer.NavWidthPercent)

	viper.SetDefault("history.enabled", defaults.History.Enabled)
	viper.SetDefault("history.path", defaults.History.Path)

	viper.SetDefault("logging.file", defaults.Logging.File)
	viper.SetDefault("logging.level", defaults.Logging.Level)

	viper.SetDefault("keybinds", defaults.Keybinds)
}

// Load reads the configuration from viper into a Config struct and
// validates it.
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// Validate checks the configuration for invalid values and returns one
// error per problem found.
func (c *Config) Validate() []error {
	var errs []error

	if c.Viewer.Theme == "" {
		errs = append(errs, fmt.Errorf("viewer.theme must not be empty"))
	}
	if c.Viewer.NavWidthPercent < 20 || c.Viewer.NavWidthPercent > 60 {
		errs = append(errs, fmt.Errorf("viewer.nav_width_percent must be between 20 and 60, got %d", c.Viewer.NavWidthPercent))
	}

	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("logging.level must be one of debug, info, warn, error; got %q", c.Logging.Level))
	}

	return errs
}

// ValidationErrors aggregates multiple validation failures into one error.
type ValidationErrors []error

// Error implements the error interface.
func (v ValidationErrors) Error() string {
	msgs := make([]string, len(v))
	for i, err := range v {
		msgs[i] = err.Error()
	}
	return "invalid configuration: " + strings.Join(msgs, "; ")
}

// ConfigDir returns the path to the user's config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "oasview")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".oasview"
	}
	return filepath.Join(home, ".config", "oasview")
}

// ConfigFile returns the path to the config file.
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// DataDir returns the directory for persistent data (the history
// database), creating it if necessary.
func DataDir() (string, error) {
	var dir string
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		dir = filepath.Join(xdg, "oasview")
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to resolve home directory: %w", err)
		}
		dir = filepath.Join(home, ".local", "share", "oasview")
	}

	if err := os.MkdirAll(dir, DirPermissions); err != nil {
		return "", fmt.Errorf("failed to create data directory: %w", err)
	}
	return dir, nil
}

// HistoryPath resolves the history database location, honoring the
// configured override.
func (c *Config) HistoryPath() (string, error) {
	if c.History.Path != "" {
		return c.History.Path, nil
	}
	dir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "history.db"), nil
}
