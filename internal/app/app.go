package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/specialistvlad/tfrtopts/internal/compileopts"
	"github.com/specialistvlad/tfrtopts/internal/config"
	"github.com/specialistvlad/tfrtopts/internal/ctxlog"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW    io.Writer
	logger  *slog.Logger
	config  *Config
	loader  config.Loader
	encoder config.Encoder
}

// NewApp is the constructor for the main application. Results are written to
// outW and logs to logW through the App's own logger.
func NewApp(outW, logW io.Writer, cfg *Config, loader config.Loader, encoder config.Encoder) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	return &App{
		outW:    outW,
		logger:  logger,
		config:  cfg,
		loader:  loader,
		encoder: encoder,
	}
}

// Resolve builds the compile options described by the App's configuration:
// either the canonical text or the loaded files (defaults when none), with
// overrides applied on top in order.
func (a *App) Resolve(ctx context.Context) (compileopts.CompileOptions, error) {
	ctx = ctxlog.WithLogger(ctx, a.logger)

	var (
		opts compileopts.CompileOptions
		err  error
	)
	if a.config.FromText != "" {
		a.logger.Debug("Parsing compile options from canonical text.")
		opts, err = compileopts.Parse(a.config.FromText)
		if err != nil {
			return compileopts.CompileOptions{}, fmt.Errorf("failed to parse compile options: %w", err)
		}
	} else {
		opts, err = a.loader.Load(ctx, a.config.ConfigPaths...)
		if err != nil {
			return compileopts.CompileOptions{}, fmt.Errorf("failed to load configuration: %w", err)
		}
	}

	for _, o := range a.config.Overrides {
		if err := compileopts.SetField(&opts, o.Name, o.Value); err != nil {
			return compileopts.CompileOptions{}, fmt.Errorf("failed to apply override: %w", err)
		}
		a.logger.Debug("Override applied.", "option", o.Name, "value", o.Value)
	}

	return opts, nil
}
