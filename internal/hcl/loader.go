package hcl

import (
	"context"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/pkg/errors"
	"github.com/specialistvlad/tfrtopts/internal/compileopts"
	"github.com/specialistvlad/tfrtopts/internal/ctxlog"
	"github.com/specialistvlad/tfrtopts/internal/fsutil"
)

// Loader is the HCL implementation of config.Loader.
type Loader struct{}

// NewLoader creates a new HCL compile options loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads every .hcl file found under paths and applies each
// `compile_options` block over compileopts.Default(). Later blocks win,
// attribute by attribute.
func (l *Loader) Load(ctx context.Context, paths ...string) (compileopts.CompileOptions, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	opts := compileopts.Default()

	hclFiles, err := l.findAllHCLFiles(ctx, paths)
	if err != nil {
		return compileopts.CompileOptions{}, err
	}
	logger.Debug("Discovered HCL files.", "count", len(hclFiles))

	parser := hclparse.NewParser()
	evalCtx := newEvalContext(os.Environ())

	for _, file := range hclFiles {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return compileopts.CompileOptions{}, errors.Wrapf(diags, "failed to parse HCL file %s", file)
		}

		var root fileRoot
		diags = gohcl.DecodeBody(hclFile.Body, evalCtx, &root)
		if diags.HasErrors() {
			return compileopts.CompileOptions{}, errors.Wrapf(diags, "failed to decode HCL file %s", file)
		}

		for _, block := range root.CompileOptions {
			if err := block.applyTo(&opts); err != nil {
				return compileopts.CompileOptions{}, errors.Wrapf(err, "in %s block of %s", blockName, file)
			}
		}
		logger.Debug("Applied HCL file.", "file", file, "blocks", len(root.CompileOptions))
	}

	logger.Debug("HCL loading complete.", "files", len(hclFiles))
	return opts, nil
}

// findAllHCLFiles walks all given paths and returns a flat, de-duplicated list
// of .hcl files. Paths that do not exist are skipped.
func (l *Loader) findAllHCLFiles(ctx context.Context, paths []string) ([]string, error) {
	files, missing, err := fsutil.FindFilesByExtension(paths, ".hcl")
	if err != nil {
		return nil, err
	}
	for _, path := range missing {
		ctxlog.FromContext(ctx).Warn("Configuration path does not exist, skipping.", "path", path)
	}
	return files, nil
}
