// Package compileopts defines the options record that parameterizes how a
// computation graph is lowered and compiled for a runtime backend, together
// with its canonical single-line text form.
//
// The text form is a compatibility contract: field order, separators and
// bracket characters are fixed, so golden-output tests and bug reports can
// compare it byte for byte. Parse reads the same form back.
package compileopts
