// Package config loads CLI settings from the environment and an optional
// .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/ukaji3/gridio-go/internal/logging"
)

// Environment variable names.
const (
	EnvDelimiter = "GRIDIO_DELIMITER"
	EnvNewline   = "GRIDIO_NEWLINE"
	EnvHeader    = "GRIDIO_HEADER"
	EnvInfer     = "GRIDIO_INFER"
	EnvLogLevel  = logging.EnvLevel
)

// Config holds settings that CLI flags fall back to.
type Config struct {
	Delimiter string
	Newline   string
	Header    bool
	Infer     bool
	LogLevel  logging.Level
}

// Load reads the given .env files, if present, and then the environment.
// Variables already set in the environment win over .env entries. With no
// files, ".env" in the working directory is tried.
func Load(files ...string) (*Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", f, err)
		}
	}

	cfg := &Config{
		Delimiter: getEnvOrDefault(EnvDelimiter, ""),
		Newline:   getEnvOrDefault(EnvNewline, ""),
		Header:    getEnvBoolOrDefault(EnvHeader, false),
		Infer:     getEnvBoolOrDefault(EnvInfer, false),
		LogLevel:  logging.LevelWarn,
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		level, ok := logging.ParseLevel(v)
		if !ok {
			return nil, fmt.Errorf("%s: unknown level %q", EnvLogLevel, v)
		}
		cfg.LogLevel = level
	}
	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}
