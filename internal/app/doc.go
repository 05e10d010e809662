// Package app contains the core application logic: resolving compile options
// from configuration, text, and overrides, then writing them out. It is
// decoupled from any specific entrypoint like a CLI.
package app
