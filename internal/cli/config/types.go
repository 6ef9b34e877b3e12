// Package config provides configuration management for the querygenie CLI.
//
// Values are layered from built-in defaults, a querygenie.yaml file,
// QUERYGENIE_* environment variables and explicitly set flags, in that
// order of increasing precedence.
package config

import (
	"github.com/leapstack-labs/querygenie/pkg/genie"
)

// Default configuration values.
const (
	DefaultOutput    = "auto" // Auto-detect: TTY=text, non-TTY=markdown
	DefaultLogLevel  = "warn"
	DefaultLogFormat = "text"
	DefaultPort      = 8765

	// DefaultSessionSecret signs flash cookies when no secret is configured.
	DefaultSessionSecret = "querygenie-dev-secret-change-in-production" //nolint:gosec

	// EnvPrefix is the prefix for environment variable overrides.
	EnvPrefix = "QUERYGENIE_"
)

// ConfigFileNames are the file names searched for, in order.
var ConfigFileNames = []string{"querygenie.yaml", "querygenie.yml"}

// Config holds all CLI configuration options.
type Config struct {
	Verbose      bool            `koanf:"verbose"`
	OutputFormat string          `koanf:"output"`
	LogLevel     string          `koanf:"log_level"`
	LogFormat    string          `koanf:"log_format"`
	Generator    GeneratorConfig `koanf:"generator"`
	UI           UIConfig        `koanf:"ui"`
}

// GeneratorConfig holds defaults for the template generator.
type GeneratorConfig struct {
	Platform    genie.Platform  `koanf:"platform"`
	QueryType   genie.QueryType `koanf:"query_type"`
	StrictRange bool            `koanf:"strict_range"`
}

// UIConfig holds configuration for the UI server.
type UIConfig struct {
	Port          int    `koanf:"port"`
	AutoOpen      bool   `koanf:"auto_open"`
	Watch         bool   `koanf:"watch"`
	Dev           bool   `koanf:"dev"`
	SessionSecret string `koanf:"session_secret"`
}

// Default returns a Config populated with default values.
func Default() *Config {
	return &Config{
		OutputFormat: DefaultOutput,
		LogLevel:     DefaultLogLevel,
		LogFormat:    DefaultLogFormat,
		Generator: GeneratorConfig{
			Platform:  genie.DefaultPlatform,
			QueryType: genie.DefaultQueryType,
		},
		UI: UIConfig{
			Port:          DefaultPort,
			AutoOpen:      true,
			SessionSecret: DefaultSessionSecret,
		},
	}
}

// defaultsMap mirrors Default as flat koanf keys.
func defaultsMap() map[string]interface{} {
	d := Default()
	return map[string]interface{}{
		"verbose":                false,
		"output":                 d.OutputFormat,
		"log_level":              d.LogLevel,
		"log_format":             d.LogFormat,
		"generator.platform":     string(d.Generator.Platform),
		"generator.query_type":   string(d.Generator.QueryType),
		"generator.strict_range": false,
		"ui.port":                d.UI.Port,
		"ui.auto_open":           d.UI.AutoOpen,
		"ui.watch":               d.UI.Watch,
		"ui.dev":                 d.UI.Dev,
		"ui.session_secret":      d.UI.SessionSecret,
	}
}
