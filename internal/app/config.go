package app

import (
	"errors"
	"fmt"

	"github.com/specialistvlad/tfrtopts/internal/compileopts"
)

// Output formats understood by App.Run.
const (
	FormatText = "text"
	FormatHCL  = "hcl"
)

// Override assigns a single option by its rendered name.
type Override struct {
	Name  string
	Value string
}

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	ConfigPaths []string // hcl files or directories
	FromText    string   // canonical rendering to start from instead of files
	Overrides   []Override

	OutputFormat string
	LogFormat    string
	LogLevel     string
}

// NewConfig validates cfg and returns a copy of it.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.FromText != "" && len(cfg.ConfigPaths) > 0 {
		return nil, errors.New("configuration paths and canonical text are mutually exclusive")
	}

	switch cfg.OutputFormat {
	case "":
		cfg.OutputFormat = FormatText
	case FormatText, FormatHCL:
	default:
		return nil, fmt.Errorf("invalid output format %q: must be %q or %q", cfg.OutputFormat, FormatText, FormatHCL)
	}

	for _, o := range cfg.Overrides {
		if !compileopts.HasField(o.Name) {
			return nil, fmt.Errorf("cannot override %q: %w", o.Name, compileopts.ErrUnknownField)
		}
	}

	return &cfg, nil
}
