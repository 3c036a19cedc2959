package app

import "fmt"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	LogFormat  string
	LogLevel   string
	ConfigPath string // optional HCL settings file
}

// Defaults used when neither a flag nor the settings file provides a value.
const (
	DefaultLogFormat = "text"
	DefaultLogLevel  = "warn"
)

func NewConfig(cfg Config) (*Config, error) {
	if cfg.LogFormat == "" {
		cfg.LogFormat = DefaultLogFormat
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}

	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, fmt.Errorf("invalid log-format %q: must be 'text' or 'json'", cfg.LogFormat)
	}

	if _, ok := logLevels[cfg.LogLevel]; !ok {
		return nil, fmt.Errorf("invalid log-level %q: must be 'debug', 'info', 'warn', or 'error'", cfg.LogLevel)
	}

	return &cfg, nil
}
