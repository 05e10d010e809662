package config

import (
	"context"
	"io"

	"github.com/specialistvlad/tfrtopts/internal/compileopts"
)

// Loader builds compile options from configuration found at the given paths.
type Loader interface {
	// Load reads every configuration file under paths, applies them over
	// compileopts.Default() in order, and returns the result.
	Load(ctx context.Context, paths ...string) (compileopts.CompileOptions, error)
}

// Encoder writes compile options in a form its Loader counterpart can read back.
type Encoder interface {
	Encode(ctx context.Context, w io.Writer, opts compileopts.CompileOptions) error
}
