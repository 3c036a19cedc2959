package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/specialistvlad/fizzbuzzgo/internal/app"
	"github.com/specialistvlad/fizzbuzzgo/internal/cli"
	"github.com/specialistvlad/fizzbuzzgo/internal/ctxlog"
)

// main is the entrypoint for the fizzbuzz application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	// An interrupt ends the prompt loop cleanly rather than killing the process.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	// A second interrupt falls back to the default behaviour and kills the process.
	go func() {
		<-ctx.Done()
		stop()
	}()
	ctx = ctxlog.WithLogger(ctx, slog.Default())

	// The real main function handles errors and exit codes.
	if err := run(ctx, os.Stdin, os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		stop()
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error handling.
func run(ctx context.Context, inR io.Reader, outW, errW io.Writer, args []string) error {
	appConfig, shouldExit, err := cli.Parse(ctx, args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	fizzbuzzApp := app.NewApp(inR, outW, errW, appConfig)
	return fizzbuzzApp.Run(ctx)
}
