package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds the list layout and CLI settings stored at ~/.hflist/config.yaml.
type Config struct {
	Title         string   `yaml:"title"`
	Headers       []string `yaml:"headers"`
	Footers       []string `yaml:"footers"`
	EmptyText     string   `yaml:"empty_text"`
	EmptyAsFooter bool     `yaml:"empty_as_footer"`
	Items         []string `yaml:"items,omitempty"`
	SortItems     bool     `yaml:"sort_items"`
	PageSize      int      `yaml:"page_size"`
	VimKeys       bool     `yaml:"vim_keys"`
	LogLevel      string   `yaml:"log_level"`
}

// Default returns the layout used when no config file exists: two headers
// and a footer that doubles as the empty view.
func Default() *Config {
	return &Config{
		Title:         "hflist",
		Headers:       []string{"Header 1", "Header 2"},
		Footers:       []string{},
		EmptyText:     "No items yet. Press a to add one.",
		EmptyAsFooter: true,
		PageSize:      0,
		LogLevel:      "info",
	}
}

// Dir returns the hflist state directory.
func Dir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".hflist")
}

// Path returns the config file path.
func Path() string {
	return filepath.Join(Dir(), "config.yaml")
}

// LogDir returns the directory log files are written to.
func LogDir() string {
	return filepath.Join(Dir(), "logs")
}

// Load reads the config at Path.
func Load() (*Config, error) {
	return LoadFile(Path())
}

// LoadFile reads and validates the config at path. Fields missing from the
// file keep their Default values. A missing file yields an error wrapping
// os.ErrNotExist.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("config not found: %w", err)
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks field ranges.
func (c *Config) Validate() error {
	if c.PageSize < 0 {
		return fmt.Errorf("config page_size must be >= 0, got %d", c.PageSize)
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config log_level: %w", err)
	}
	return nil
}

// Level returns the configured log level, defaulting to info.
func (c *Config) Level() slog.Level {
	level, err := parseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return level
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if strings.TrimSpace(s) == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, err
	}
	return level, nil
}

// Save writes the config to Path.
func (c *Config) Save() error {
	return c.SaveFile(Path())
}

// SaveFile writes the config to path, creating parent directories.
func (c *Config) SaveFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	return os.WriteFile(path, data, 0o644)
}
