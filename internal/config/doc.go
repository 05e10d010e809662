// Package config defines the interfaces through which the application obtains
// and persists compile options without depending on a file format.
//
// Concrete implementations, such as the HCL one, live in separate packages.
package config
