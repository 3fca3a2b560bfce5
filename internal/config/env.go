package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Environment variables that override config.yaml.
const (
	EnvTimeLimit = "REHEARSE_TIME_LIMIT"
	EnvBank      = "REHEARSE_BANK"
	EnvExportDir = "REHEARSE_EXPORT_DIR"
	EnvLog       = "REHEARSE_LOG"
)

// LoadEnv loads dir/.env into the process environment. Variables already
// set are not overwritten. A missing .env is not an error.
func LoadEnv(dir string) error {
	path := filepath.Join(dir, ".env")
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("loading %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overrides cfg fields from REHEARSE_* variables.
func ApplyEnv(cfg *Config) {
	if limit := getEnvAsDuration(EnvTimeLimit, 0); limit > 0 {
		cfg.Session.TimeLimit = int(limit / time.Second)
	}
	cfg.Bank.Path = getEnv(EnvBank, cfg.Bank.Path)
	cfg.Export.Dir = getEnv(EnvExportDir, cfg.Export.Dir)
	cfg.Log.Enabled = getEnvAsBool(EnvLog, cfg.Log.Enabled)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

// getEnvAsDuration accepts a Go duration ("90s") or a bare number of seconds.
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	if secs, err := strconv.Atoi(value); err == nil {
		return time.Duration(secs) * time.Second
	}
	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	return defaultValue
}
