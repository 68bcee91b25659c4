// Package hclconf provides the concrete HCL implementation for loading the
// tool's settings file into the format-agnostic model defined in the
// `config` package. It is responsible for file parsing, decoding, and the
// expression evaluation context.
package hclconf

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/csvpeek/internal/config"
	"github.com/vk/csvpeek/internal/ctxlog"
)

// hclSettingsFile represents the top-level structure of a settings file for
// decoding.
type hclSettingsFile struct {
	Settings *hclSettingsBlock `hcl:"settings,block"`
}

// hclSettingsBlock represents the content of the 'settings' block. Every
// attribute is optional; absent attributes stay at the lower layer's value.
type hclSettingsBlock struct {
	Sentinel string `hcl:"sentinel,optional"`
	LogStyle string `hcl:"log_style,optional"`
	LogLevel string `hcl:"log_level,optional"`
}

// Load parses the settings file at path and returns the overlay it defines.
// Attribute expressions may reference the process environment through the
// `env` object, e.g. `sentinel = env.CSVPEEK_SENTINEL`.
func Load(ctx context.Context, path string) (config.Settings, error) {
	logger := ctxlog.FromContext(ctx)

	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return config.Settings{}, fmt.Errorf("failed to parse settings file %s: %w", path, diags)
	}

	var parsed hclSettingsFile
	diags = gohcl.DecodeBody(hclFile.Body, evalContext(), &parsed)
	if diags.HasErrors() {
		return config.Settings{}, fmt.Errorf("failed to decode settings file %s: %w", path, diags)
	}

	if parsed.Settings == nil {
		logger.Debug("Settings file holds no settings block, returning empty overlay.", "path", path)
		return config.Settings{}, nil
	}

	logger.Debug("Settings file loaded.", "path", path)
	return config.Settings{
		Sentinel: parsed.Settings.Sentinel,
		LogStyle: strings.ToLower(parsed.Settings.LogStyle),
		LogLevel: strings.ToLower(parsed.Settings.LogLevel),
	}, nil
}

// evalContext builds the expression evaluation context available to
// attribute values in the settings file.
func evalContext() *hcl.EvalContext {
	vars := make(map[string]cty.Value)
	for _, kv := range os.Environ() {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || name == "" {
			continue
		}
		vars[name] = cty.StringVal(value)
	}

	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"env": cty.ObjectVal(vars),
		},
	}
}
