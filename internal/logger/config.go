package logger

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
)

const (
	EnvLevel = "BREW_JOURNAL_LOG_LEVEL"
	EnvJSON  = "BREW_JOURNAL_JSON_LOGS"
	EnvQuiet = "BREW_JOURNAL_QUIET"
)

type Config struct {
	Enabled bool
	JSON    bool
	Level   zerolog.Level
}

func DefaultConfig() Config {
	return Config{
		Enabled: true,
		JSON:    false,
		Level:   zerolog.InfoLevel,
	}
}

// ConfigFromEnv overrides DefaultConfig with the BREW_JOURNAL_* variables.
func ConfigFromEnv() Config {
	return configFrom(os.Getenv)
}

func configFrom(getenv func(string) string) Config {
	cfg := DefaultConfig()

	if getenv(EnvQuiet) == "true" {
		cfg.Enabled = false
	}
	if getenv(EnvJSON) == "true" {
		cfg.JSON = true
	}

	switch strings.ToLower(getenv(EnvLevel)) {
	case "debug":
		cfg.Level = zerolog.DebugLevel
	case "info":
		cfg.Level = zerolog.InfoLevel
	case "warn", "warning":
		cfg.Level = zerolog.WarnLevel
	case "error":
		cfg.Level = zerolog.ErrorLevel
	}

	return cfg
}
