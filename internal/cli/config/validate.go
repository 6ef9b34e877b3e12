package config

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
)

// Accepted values for enumerated settings.
var (
	OutputFormats = []string{"auto", "text", "markdown", "json", "yaml"}
	LogLevels     = []string{"debug", "info", "warn", "error"}
	LogFormats    = []string{"text", "json"}
)

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	var errs []error

	if !slices.Contains(OutputFormats, c.OutputFormat) {
		errs = append(errs, invalidChoice("output", c.OutputFormat, OutputFormats))
	}
	if !slices.Contains(LogLevels, c.LogLevel) {
		errs = append(errs, invalidChoice("log_level", c.LogLevel, LogLevels))
	}
	if !slices.Contains(LogFormats, c.LogFormat) {
		errs = append(errs, invalidChoice("log_format", c.LogFormat, LogFormats))
	}
	if !c.Generator.Platform.Valid() {
		errs = append(errs, fmt.Errorf("generator.platform %q is not a known platform", c.Generator.Platform))
	}
	if !c.Generator.QueryType.Valid() {
		errs = append(errs, fmt.Errorf("generator.query_type %q is not a known query type", c.Generator.QueryType))
	}
	if c.UI.Port < 0 || c.UI.Port > 65535 {
		errs = append(errs, fmt.Errorf("ui.port %d is out of range (0-65535)", c.UI.Port))
	}

	return errors.Join(errs...)
}

func invalidChoice(key, value string, choices []string) error {
	return fmt.Errorf("%s %q is invalid (available: %s)", key, value, strings.Join(choices, ", "))
}

// SlogLevel maps the configured log level onto a slog.Level.
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
