package report

import (
	"io"
	"strings"

	"github.com/nao1215/devicemodels/internal/model"
)

// TextWriter writes one "<identifier>:<category>" line per entry.
// Duplicate identifiers are written as many times as they occur.
type TextWriter struct {
	baseWriter
}

// NewTextWriter creates a TextWriter that outputs to the given writer.
func NewTextWriter(output io.Writer) *TextWriter {
	return &TextWriter{baseWriter: newBaseWriter(output)}
}

// Write outputs entries in text format.
func (w *TextWriter) Write(entries []model.Entry) (int, error) {
	var sb strings.Builder
	for _, e := range entries {
		sb.WriteString(e.Identifier)
		sb.WriteString(":")
		sb.WriteString(e.Category)
		sb.WriteString("\n")
	}
	return w.flush(&sb)
}
