// Package config handles reading and writing .rehearse/config.yaml.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the top-level structure for .rehearse/config.yaml.
type Config struct {
	Version int           `yaml:"version"`
	Session SessionConfig `yaml:"session"`
	Bank    BankConfig    `yaml:"bank"`
	Export  ExportConfig  `yaml:"export"`
	Log     LogConfig     `yaml:"log"`
}

// SessionConfig controls practice session timing.
type SessionConfig struct {
	TimeLimit      int `yaml:"time_limit"`       // seconds per question
	TickIntervalMs int `yaml:"tick_interval_ms"` // countdown refresh
}

// BankConfig points at a question bank file. Empty uses the built-in bank.
type BankConfig struct {
	Path string `yaml:"path"`
}

// ExportConfig controls where CSV reports are written.
type ExportConfig struct {
	Dir string `yaml:"dir"`
}

// LogConfig toggles the JSONL event log.
type LogConfig struct {
	Enabled bool `yaml:"enabled"`
}

const (
	configDir  = ".rehearse"
	configFile = "config.yaml"
)

// Dir is the project-relative directory holding rehearse state.
const Dir = configDir

// Path returns the config file path for the project rooted at dir.
func Path(dir string) string {
	return filepath.Join(dir, configDir, configFile)
}

// ReadConfig reads .rehearse/config.yaml from the given project directory.
// dir is the project root (not .rehearse/ itself). Fields absent from the
// file keep their defaults.
// Returns an error if the file is not found or YAML is malformed.
func ReadConfig(dir string) (*Config, error) {
	data, err := os.ReadFile(Path(dir))
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// WriteConfig writes cfg to .rehearse/config.yaml in the given project directory.
// Creates the .rehearse/ directory if it does not exist.
func WriteConfig(dir string, cfg *Config) error {
	dirPath := filepath.Join(dir, configDir)
	if err := os.MkdirAll(dirPath, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}

	if err := os.WriteFile(Path(dir), data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

// DefaultConfig returns a Config populated with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Session: SessionConfig{
			TimeLimit:      60,
			TickIntervalMs: 250,
		},
		Export: ExportConfig{
			Dir: filepath.Join(configDir, "reports"),
		},
		Log: LogConfig{
			Enabled: true,
		},
	}
}

// Load reads the project config if present, falling back to defaults, then
// applies .env and environment overrides.
func Load(dir string) (*Config, error) {
	cfg, err := ReadConfig(dir)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		cfg = DefaultConfig()
	}
	if err := LoadEnv(dir); err != nil {
		return nil, err
	}
	ApplyEnv(cfg)
	return cfg, nil
}

// TimeLimit returns the per-question limit as a duration.
func (c *Config) TimeLimit() time.Duration {
	if c.Session.TimeLimit <= 0 {
		return 60 * time.Second
	}
	return time.Duration(c.Session.TimeLimit) * time.Second
}

// TickInterval returns the countdown refresh interval.
func (c *Config) TickInterval() time.Duration {
	if c.Session.TickIntervalMs <= 0 {
		return 250 * time.Millisecond
	}
	return time.Duration(c.Session.TickIntervalMs) * time.Millisecond
}

// BankPath resolves the configured bank path against the project root.
// It returns "" when the built-in bank should be used.
func (c *Config) BankPath(dir string) string {
	return resolve(dir, c.Bank.Path)
}

// ExportDir resolves the export directory against the project root.
func (c *Config) ExportDir(dir string) string {
	return resolve(dir, c.Export.Dir)
}

func resolve(dir, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(dir, p)
}
