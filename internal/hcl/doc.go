// Package hcl provides the HCL implementation of the config.Loader and
// config.Encoder interfaces. It reads `compile_options` blocks from .hcl
// files into compileopts.CompileOptions and writes options back out as a
// loadable HCL file.
package hcl
