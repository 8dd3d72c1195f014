package report

import (
	"io"
	"strings"

	"github.com/nao1215/devicemodels/internal/model"
)

// Writer defines the interface for entry output.
type Writer interface {
	// Write renders entries to the configured destination.
	// Returns the number of bytes written and any error encountered.
	Write(entries []model.Entry) (int, error)
}

// Format selects one of the stdout renderings.
type Format string

const (
	// FormatText is the default line format.
	FormatText Format = "text"
	// FormatJSON is the collapsed JSON object.
	FormatJSON Format = "json"
	// FormatNSDict is the Objective-C dictionary literal.
	FormatNSDict Format = "nsdict"
)

// ParseFormat maps a selector to a Format.
// Only "json" and "nsdict" are recognised; every other value, including the
// empty string, selects FormatText.
func ParseFormat(selector string) Format {
	switch Format(selector) {
	case FormatJSON:
		return FormatJSON
	case FormatNSDict:
		return FormatNSDict
	default:
		return FormatText
	}
}

// NewWriter returns the writer for format.
func NewWriter(format Format, output io.Writer) Writer {
	switch format {
	case FormatJSON:
		return NewJSONWriter(output)
	case FormatNSDict:
		return NewNSDictWriter(output)
	default:
		return NewTextWriter(output)
	}
}

// MultiWriter writes to multiple Writers in order.
// It is used to emit the stdout rendering and the Markdown summary together.
type MultiWriter struct {
	writers []Writer
}

// NewMultiWriter creates a Writer that writes to all provided Writers.
func NewMultiWriter(writers ...Writer) *MultiWriter {
	return &MultiWriter{writers: writers}
}

// Write outputs entries to all configured Writers.
// Returns the total bytes written and stops on the first error.
func (m *MultiWriter) Write(entries []model.Entry) (int, error) {
	var total int
	for _, w := range m.writers {
		n, err := w.Write(entries)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// baseWriter provides common functionality for writers.
type baseWriter struct {
	output io.Writer
}

// newBaseWriter creates a baseWriter with the given output destination.
func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}

// flush writes the builder contents in one call.
func (b baseWriter) flush(sb *strings.Builder) (int, error) {
	return io.WriteString(b.output, sb.String())
}
