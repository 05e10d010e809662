package app

import (
	"context"
	"fmt"
	"io"

	"github.com/specialistvlad/tfrtopts/internal/ctxlog"
)

// Run resolves the compile options and writes them to the output writer in
// the configured format.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	opts, err := a.Resolve(ctx)
	if err != nil {
		return err
	}
	a.logger.Info("Compile options resolved.", "device_target", opts.DeviceTarget, "options", opts)

	switch a.config.OutputFormat {
	case FormatHCL:
		if err := a.encoder.Encode(ctx, a.outW, opts); err != nil {
			return fmt.Errorf("failed to encode compile options: %w", err)
		}
	default:
		if _, err := opts.WriteTo(a.outW); err != nil {
			return fmt.Errorf("failed to write compile options: %w", err)
		}
		if _, err := io.WriteString(a.outW, "\n"); err != nil {
			return fmt.Errorf("failed to write compile options: %w", err)
		}
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}
