package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/nao1215/devicemodels/internal/model"
	"github.com/nao1215/devicemodels/internal/report"
)

// markdownFile is a report.Writer that creates the summary file on first use,
// so a halted run leaves no empty file behind.
type markdownFile struct {
	path   string
	source string
}

// Write creates the file and renders the Markdown summary into it.
func (m *markdownFile) Write(entries []model.Entry) (int, error) {
	dir := filepath.Dir(m.path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return 0, fmt.Errorf("failed to create directory: %w", err)
		}
	}

	f, err := os.Create(m.path) //nolint:gosec // User-provided output path is intentional
	if err != nil {
		return 0, fmt.Errorf("failed to create markdown file: %w", err)
	}

	n, err := report.NewMarkdownWriter(f, report.WithSource(m.source)).Write(entries)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return n, err
}
