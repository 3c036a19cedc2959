package main

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/specialistvlad/fizzbuzzgo/internal/cli"
	"github.com/stretchr/testify/require"
)

// explodingReader fails the test if anything tries to read from it.
type explodingReader struct {
	t *testing.T
}

func (r explodingReader) Read([]byte) (int, error) {
	r.t.Error("standard input must not be read")
	return 0, errors.New("unexpected read")
}

func TestRun_HelpDoesNotReadInput(t *testing.T) {
	t.Parallel()

	for _, flag := range []string{"-h", "--help"} {
		t.Run(flag, func(t *testing.T) {
			t.Parallel()

			// --- Arrange ---
			out := &bytes.Buffer{}
			errOut := &bytes.Buffer{}

			// --- Act ---
			err := run(context.Background(), explodingReader{t: t}, out, errOut, []string{flag})

			// --- Assert ---
			require.NoError(t, err, "run() should return a nil error when help is requested")
			require.Equal(t, cli.UsageText, out.String())
		})
	}
}

func TestRun_InteractiveSession(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	in := strings.NewReader("abc\n-5\n0\n\n3\n")
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}

	// --- Act ---
	err := run(context.Background(), in, out, errOut, nil)

	// --- Assert ---
	require.NoError(t, err, "end of input should end the session cleanly")
	want := strings.Repeat("Enter a number: Please enter a valid positive number\n", 4) +
		"Enter a number: 1\n2\nFizz\n" +
		"Enter a number: "
	require.Equal(t, want, out.String())
	require.Empty(t, errOut.String(), "nothing is logged at the default level")
}

func TestRun_DebugLogsGoToErrorStream(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}

	err := run(context.Background(), strings.NewReader("1\n"), out, errOut, []string{"--log-level=debug"})

	require.NoError(t, err)
	require.Equal(t, "Enter a number: 1\nEnter a number: ", out.String())
	require.Contains(t, errOut.String(), "Computing tokens.")
}

func TestRun_CancelledContextExitsCleanly(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// Interrupt and end of input race here; both end the session without an error.
	err := run(ctx, strings.NewReader(""), &bytes.Buffer{}, &bytes.Buffer{}, nil)

	require.NoError(t, err)
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	args := []string{"--this-is-not-a-valid-flag"}
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(context.Background(), strings.NewReader(""), out, &bytes.Buffer{}, args)

	// --- Assert ---
	require.Error(t, err, "run() should return an error when argument parsing fails")
	var exitErr *cli.ExitError
	require.True(t, errors.As(err, &exitErr))
	require.Equal(t, 2, exitErr.Code)
	require.Contains(t, err.Error(), "flag provided but not defined: -this-is-not-a-valid-flag")
}
