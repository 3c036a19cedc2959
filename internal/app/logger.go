package app

import (
	"io"
	"log/slog"
)

// logLevels maps the accepted --log-level values to slog levels.
var logLevels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// newLogger builds the App's own logger. It does not set the global logger.
// Unknown levels fall back to warn.
func newLogger(levelStr, formatStr string, logW io.Writer) *slog.Logger {
	level, ok := logLevels[levelStr]
	if !ok {
		level = slog.LevelWarn
	}

	handlerOpts := &slog.HandlerOptions{Level: level}
	if formatStr == "json" {
		return slog.New(slog.NewJSONHandler(logW, handlerOpts))
	}
	return slog.New(slog.NewTextHandler(logW, handlerOpts))
}
