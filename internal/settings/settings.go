package settings

import (
	"context"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/fizzbuzzgo/internal/ctxlog"
)

// File is the decoded content of a settings file. Unset attributes stay nil.
type File struct {
	LogLevel  *string `hcl:"log_level,optional"`
	LogFormat *string `hcl:"log_format,optional"`
}

// Load parses the HCL file at path. An empty path means no settings file and
// yields an empty File.
func Load(ctx context.Context, path string) (*File, error) {
	logger := ctxlog.FromContext(ctx)
	if path == "" {
		logger.Debug("No settings file configured.")
		return &File{}, nil
	}

	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("error accessing settings file %s: %w", path, err)
	}

	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse settings file %s: %w", path, diags)
	}

	var f File
	if diags := gohcl.DecodeBody(hclFile.Body, nil, &f); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode settings file %s: %w", path, diags)
	}

	logger.Debug("Settings file loaded.", "path", path, "log_level_set", f.LogLevel != nil, "log_format_set", f.LogFormat != nil)
	return &f, nil
}
