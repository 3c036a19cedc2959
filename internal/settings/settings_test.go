package settings

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeSettings(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "fizzbuzz.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600), "failed to set up test file")
	return path
}

func TestLoad_EmptyPath(t *testing.T) {
	t.Parallel()

	f, err := Load(context.Background(), "")

	require.NoError(t, err)
	require.Nil(t, f.LogLevel)
	require.Nil(t, f.LogFormat)
}

func TestLoad_AllAttributes(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	path := writeSettings(t, `
log_level  = "debug"
log_format = "json"
`)

	// --- Act ---
	f, err := Load(context.Background(), path)

	// --- Assert ---
	require.NoError(t, err)
	require.NotNil(t, f.LogLevel)
	require.NotNil(t, f.LogFormat)
	require.Equal(t, "debug", *f.LogLevel)
	require.Equal(t, "json", *f.LogFormat)
}

func TestLoad_PartialAttributes(t *testing.T) {
	t.Parallel()

	path := writeSettings(t, `log_format = "text"`)

	f, err := Load(context.Background(), path)

	require.NoError(t, err)
	require.Nil(t, f.LogLevel)
	require.Equal(t, "text", *f.LogFormat)
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		content string
		errPart string
	}{
		{name: "syntax error", content: `log_level = "debug`, errPart: "failed to parse"},
		{name: "unknown attribute", content: `divisors = "3:Fizz"`, errPart: "failed to decode"},
		{name: "wrong type", content: `log_level = ["debug"]`, errPart: "failed to decode"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			path := writeSettings(t, tc.content)

			_, err := Load(context.Background(), path)

			require.Error(t, err)
			require.Contains(t, err.Error(), tc.errPart)
			require.Contains(t, err.Error(), path)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "absent.hcl")

	_, err := Load(context.Background(), path)

	require.Error(t, err)
	require.ErrorIs(t, err, os.ErrNotExist)
}
