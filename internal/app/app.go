package app

import (
	"io"
	"log/slog"

	"github.com/specialistvlad/fizzbuzzgo/internal/shell"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	logger *slog.Logger
	shell  *shell.Shell
	config *Config
}

// NewApp is the constructor for the main application. The shell reads from
// in and prints to out; diagnostics are logged to logW only, so the
// interactive protocol on out stays free of log lines.
func NewApp(in io.Reader, out, logW io.Writer, cfg *Config) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.", "level", cfg.LogLevel, "format", cfg.LogFormat)

	return &App{
		logger: logger,
		shell:  shell.New(in, out),
		config: cfg,
	}
}
