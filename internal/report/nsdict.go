package report

import (
	"io"
	"strings"

	"github.com/nao1215/devicemodels/internal/model"
)

// NSDictWriter writes entries as an Objective-C NSDictionary literal.
//
// Every line, including the last, ends with a comma. Identifiers and
// categories are written verbatim: a quote in either produces a literal
// that does not compile.
type NSDictWriter struct {
	baseWriter
}

// NewNSDictWriter creates an NSDictWriter that outputs to the given writer.
func NewNSDictWriter(output io.Writer) *NSDictWriter {
	return &NSDictWriter{baseWriter: newBaseWriter(output)}
}

// Write outputs entries in nsdict format.
func (w *NSDictWriter) Write(entries []model.Entry) (int, error) {
	var sb strings.Builder
	sb.WriteString("@{\n")
	for _, e := range entries {
		sb.WriteString(`    @"`)
		sb.WriteString(e.Identifier)
		sb.WriteString(`": @"`)
		sb.WriteString(e.Category)
		sb.WriteString("\",\n")
	}
	sb.WriteString("}\n")
	return w.flush(&sb)
}
