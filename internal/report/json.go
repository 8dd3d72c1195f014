package report

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf16"

	"github.com/nao1215/devicemodels/internal/model"
)

// DefaultJSONIndent is the per-level indentation of JSON output.
const DefaultJSONIndent = "    "

// JSONWriter writes entries as a single JSON object mapping identifier to
// category.
//
// Duplicate identifiers collapse: the key stays where it first appeared and
// takes the category of its last occurrence. Keys are emitted in that
// insertion order, which encoding/json cannot do for maps, so the object is
// assembled here. Non-ASCII characters are written as \uXXXX escapes.
type JSONWriter struct {
	baseWriter

	// indent is the indentation string for each level.
	indent string
}

// JSONWriterOption configures a JSONWriter.
type JSONWriterOption func(*JSONWriter)

// WithIndent sets the indentation string.
func WithIndent(indent string) JSONWriterOption {
	return func(w *JSONWriter) {
		w.indent = indent
	}
}

// NewJSONWriter creates a JSONWriter that outputs to the given writer.
func NewJSONWriter(output io.Writer, opts ...JSONWriterOption) *JSONWriter {
	w := &JSONWriter{
		baseWriter: newBaseWriter(output),
		indent:     DefaultJSONIndent,
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write outputs entries as a collapsed JSON object.
func (w *JSONWriter) Write(entries []model.Entry) (int, error) {
	pairs := model.NewMapping(entries).Pairs()

	var sb strings.Builder
	if len(pairs) == 0 {
		sb.WriteString("{}\n")
		return w.flush(&sb)
	}

	sb.WriteString("{\n")
	for i, p := range pairs {
		sb.WriteString(w.indent)
		sb.WriteString(quoteASCII(p.Identifier))
		sb.WriteString(": ")
		sb.WriteString(quoteASCII(p.Category))
		if i < len(pairs)-1 {
			sb.WriteString(",")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("}\n")

	return w.flush(&sb)
}

// quoteASCII returns s as a JSON string literal that contains only
// printable ASCII.
func quoteASCII(s string) string {
	var sb strings.Builder
	sb.Grow(len(s) + 2)
	sb.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		case '\b':
			sb.WriteString(`\b`)
		case '\f':
			sb.WriteString(`\f`)
		default:
			switch {
			case r >= 0x20 && r < 0x7f:
				sb.WriteRune(r)
			case r > 0xffff:
				hi, lo := utf16.EncodeRune(r)
				fmt.Fprintf(&sb, `\u%04x\u%04x`, hi, lo)
			default:
				fmt.Fprintf(&sb, `\u%04x`, r)
			}
		}
	}
	sb.WriteByte('"')
	return sb.String()
}
