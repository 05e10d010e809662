package compileopts

import (
	"io"
	"strings"
)

// String renders o in its canonical form, e.g.
//
//	{variable_device = /device:CPU:0, default_device = , ..., compile_to_sync_tfrt_dialect = false}
//
// Every field appears as `name = value` in declaration order.
func (o CompileOptions) String() string {
	var sb strings.Builder
	render(&sb, &o)
	return sb.String()
}

// WriteTo writes the canonical rendering of o to w.
func (o CompileOptions) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, o.String())
	return int64(n), err
}

func render(sb *strings.Builder, o *CompileOptions) {
	sb.WriteByte('{')
	for i := range fields {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(fields[i].name)
		sb.WriteString(" = ")
		sb.WriteString(fields[i].format(o))
	}
	sb.WriteByte('}')
}
