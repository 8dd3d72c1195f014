package report

import (
	"io"
	"strconv"

	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"

	"github.com/nao1215/devicemodels/internal/model"
)

// MarkdownWriter outputs a Markdown summary of the entries, grouped by the
// family pass that produced them. It is written next to, never instead of,
// the stdout rendering.
type MarkdownWriter struct {
	baseWriter

	// source is the page URL shown in the header. Empty hides the line.
	source string
}

// MarkdownWriterOption configures a MarkdownWriter.
type MarkdownWriterOption func(*MarkdownWriter)

// WithSource sets the source URL shown in the document header.
func WithSource(url string) MarkdownWriterOption {
	return func(w *MarkdownWriter) {
		w.source = url
	}
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer, opts ...MarkdownWriterOption) *MarkdownWriter {
	w := &MarkdownWriter{baseWriter: newBaseWriter(output)}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Write outputs the summary document.
func (w *MarkdownWriter) Write(entries []model.Entry) (int, error) {
	catalog := model.NewCatalog(w.source)
	catalog.Entries = entries

	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md, catalog)
	w.writeSummary(md, catalog)
	w.writePieChart(md, catalog)
	w.writeFamilies(md, catalog)

	return len(md.String()), md.Build()
}

// writeHeader writes the title and source line.
func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, catalog *model.Catalog) {
	md.H1("Apple Device Models")
	md.PlainText("")
	if catalog.URL != "" {
		md.PlainTextf("Source: %s", catalog.URL)
		md.PlainText("")
	}
}

// writeSummary writes the per-family count table.
func (w *MarkdownWriter) writeSummary(md *markdown.Markdown, catalog *model.Catalog) {
	md.H2("Summary")
	md.PlainText("")

	counts := catalog.CountByFamily()
	rows := make([][]string, 0, len(model.Families())+1)
	for _, f := range model.Families() {
		rows = append(rows, []string{f.String(), strconv.Itoa(counts[f])})
	}
	rows = append(rows, []string{"**Total**", "**" + strconv.Itoa(len(catalog.Entries)) + "**"})
	rows = append(rows, []string{"Unique identifiers", strconv.Itoa(catalog.Mapping().Len())})

	md.Table(markdown.TableSet{
		Header: []string{"Family", "Entries"},
		Rows:   rows,
	})
	md.PlainText("")
}

// writePieChart writes a mermaid pie chart of the family distribution.
func (w *MarkdownWriter) writePieChart(md *markdown.Markdown, catalog *model.Catalog) {
	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle("Entries by Family"),
		piechart.WithShowData(true),
	)

	counts := catalog.CountByFamily()
	for _, f := range model.Families() {
		if counts[f] > 0 {
			chart.LabelAndIntValue(f.String(), uint64(counts[f]))
		}
	}

	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	md.PlainText("")
}

// writeFamilies writes one identifier table per family that has entries.
func (w *MarkdownWriter) writeFamilies(md *markdown.Markdown, catalog *model.Catalog) {
	for _, f := range model.Families() {
		entries := catalog.EntriesByFamily(f)
		if len(entries) == 0 {
			continue
		}

		md.H2(f.String())
		md.PlainText("")

		rows := make([][]string, 0, len(entries))
		for _, e := range entries {
			category := e.Category
			if category == "" {
				category = "-"
			}
			rows = append(rows, []string{"`" + e.Identifier + "`", category})
		}

		md.Table(markdown.TableSet{
			Header: []string{"Identifier", "Category"},
			Rows:   rows,
		})
		md.PlainText("")
	}
}
