package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/specialistvlad/tfrtopts/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// pathsFlag collects repeated -config values.
type pathsFlag []string

func (p *pathsFlag) String() string { return strings.Join(*p, ",") }

func (p *pathsFlag) Set(v string) error {
	*p = append(*p, v)
	return nil
}

// overridesFlag collects repeated -set name=value values.
type overridesFlag []app.Override

func (o *overridesFlag) String() string {
	parts := make([]string, len(*o))
	for i, ov := range *o {
		parts[i] = ov.Name + "=" + ov.Value
	}
	return strings.Join(parts, ",")
}

func (o *overridesFlag) Set(v string) error {
	name, value, ok := strings.Cut(v, "=")
	if !ok || name == "" {
		return fmt.Errorf("expected name=value, got %q", v)
	}
	*o = append(*o, app.Override{Name: strings.TrimSpace(name), Value: value})
	return nil
}

// Parse processes command-line arguments. It returns a populated Config, a
// boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("tfrtopts", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
tfrtopts - Resolve, render and reproduce graph compile options.

Usage:
  tfrtopts [options] [CONFIG_PATH...]

Arguments:
  CONFIG_PATH
    Path to a .hcl file or a directory containing .hcl files. Defaults are
    used when no path is given.

Options:
`)
		flagSet.PrintDefaults()
	}

	var configPaths pathsFlag
	var overrides overridesFlag
	flagSet.Var(&configPaths, "config", "Path to a config file or directory. May be repeated.")
	flagSet.Var(&overrides, "set", "Override one option as name=value, e.g. device_target=Tpurt. May be repeated.")
	fromTextFlag := flagSet.String("from-text", "", "Start from a canonical options rendering instead of config files.")
	formatFlag := flagSet.String("format", app.FormatText, "Output format. Options: 'text' or 'hcl'.")
	logFormatFlag := flagSet.String("log-format", "json", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	paths := append([]string(configPaths), flagSet.Args()...)
	slog.Debug("Config paths determined.", "paths", paths)

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		ConfigPaths:  paths,
		FromText:     *fromTextFlag,
		Overrides:    overrides,
		OutputFormat: strings.ToLower(*formatFlag),
		LogFormat:    logFormat,
		LogLevel:     logLevel,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
