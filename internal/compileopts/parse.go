package compileopts

import (
	"strings"

	"github.com/pkg/errors"
)

// Parse reads the canonical rendering produced by String back into a
// CompileOptions value.
//
// Each value runs up to the next field's `, <name> = ` prefix, so string
// values may contain `, `. Oplist entries containing `,` cannot be recovered.
func Parse(text string) (CompileOptions, error) {
	var opts CompileOptions

	body, ok := strings.CutPrefix(strings.TrimSpace(text), "{")
	if !ok {
		return CompileOptions{}, errors.Wrap(ErrMalformed, "missing opening '{'")
	}
	body, ok = strings.CutSuffix(body, "}")
	if !ok {
		return CompileOptions{}, errors.Wrap(ErrMalformed, "missing closing '}'")
	}

	for i := range fields {
		f := &fields[i]
		prefix := f.name + " = "
		if i > 0 {
			prefix = ", " + prefix
		}
		rest, ok := strings.CutPrefix(body, prefix)
		if !ok {
			return CompileOptions{}, errors.Wrapf(ErrMalformed, "expected option %s at %q", f.name, truncate(body))
		}

		value := rest
		body = ""
		if i+1 < len(fields) {
			next := ", " + fields[i+1].name + " = "
			end := strings.Index(rest, next)
			if end < 0 {
				return CompileOptions{}, errors.Wrapf(ErrMalformed, "option %s is not followed by %s", f.name, fields[i+1].name)
			}
			value, body = rest[:end], rest[end:]
		}

		if err := f.set(&opts, value); err != nil {
			return CompileOptions{}, errors.Wrapf(err, "option %s", f.name)
		}
	}

	return opts, nil
}

func truncate(s string) string {
	const limit = 40
	if len(s) <= limit {
		return s
	}
	return s[:limit] + "..."
}
