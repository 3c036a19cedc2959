package app

import (
	"context"
	"fmt"

	"github.com/specialistvlad/fizzbuzzgo/internal/ctxlog"
)

// Run executes the interactive loop until the input ends or ctx is cancelled.
// The shell logs through the App logger attached to ctx.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.", "settings_file", a.config.ConfigPath)

	if err := a.shell.Run(ctx); err != nil {
		return fmt.Errorf("interactive shell failed: %w", err)
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}
