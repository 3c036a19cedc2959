package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/specialistvlad/fizzbuzzgo/internal/app"
	"github.com/specialistvlad/fizzbuzzgo/internal/ctxlog"
	"github.com/specialistvlad/fizzbuzzgo/internal/settings"
)

// ProgramName is the single name used in the usage text.
const ProgramName = "fizzbuzz"

// UsageText is printed verbatim for -h and --help.
const UsageText = `Usage: ` + ProgramName + `

  Example:
  ` + ProgramName + `
  > Enter a number: 15
`

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// HasHelpFlag reports whether any argument is -h or --help.
func HasHelpFlag(args []string) bool {
	for _, arg := range args {
		if arg == "-h" || arg == "--help" {
			return true
		}
	}
	return false
}

// PrintUsage writes the usage text to w.
func PrintUsage(w io.Writer) {
	fmt.Fprint(w, UsageText)
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(ctx context.Context, args []string, output io.Writer) (*app.Config, bool, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("CLI parser started.")

	if HasHelpFlag(args) {
		logger.Debug("Help flag found, printing usage and exiting.")
		PrintUsage(output)
		return nil, true, nil
	}

	flagSet := flag.NewFlagSet(ProgramName, flag.ContinueOnError)
	flagSet.SetOutput(output)
	flagSet.Usage = func() { PrintUsage(output) }

	logFormatFlag := flagSet.String("log-format", app.DefaultLogFormat, "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", app.DefaultLogLevel, "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	configFlag := flagSet.String("config", "", "Path to an optional HCL settings file.")

	if err := flagSet.Parse(args); err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	if flagSet.NArg() > 0 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("unexpected argument: %s", flagSet.Arg(0))}
	}
	logger.Debug("Arguments parsed successfully.")

	explicit := make(map[string]bool)
	flagSet.Visit(func(f *flag.Flag) { explicit[f.Name] = true })

	file, err := settings.Load(ctx, *configFlag)
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	logFormat := *logFormatFlag
	if !explicit["log-format"] && file.LogFormat != nil {
		logFormat = *file.LogFormat
	}
	logLevel := *logLevelFlag
	if !explicit["log-level"] && file.LogLevel != nil {
		logLevel = *file.LogLevel
	}

	config, err := app.NewConfig(app.Config{
		LogFormat:  strings.ToLower(logFormat),
		LogLevel:   strings.ToLower(logLevel),
		ConfigPath: *configFlag,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	logger.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
