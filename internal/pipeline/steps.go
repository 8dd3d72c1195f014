package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/nao1215/devicemodels/internal/extract"
	"github.com/nao1215/devicemodels/internal/fetch"
	"github.com/nao1215/devicemodels/internal/model"
	"github.com/nao1215/devicemodels/internal/report"
)

// ConnectFailedMessage is printed when the wiki does not answer with 200.
const ConnectFailedMessage = "Connect to url failed"

// PageFetcher retrieves the text of a page.
// *fetch.Fetcher satisfies it.
type PageFetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// FetchStep downloads the catalog's source page.
type FetchStep struct {
	fetcher PageFetcher

	// notice receives the connection failure diagnostic.
	notice io.Writer

	logger *slog.Logger
}

// NewFetchStep creates a FetchStep. The failure diagnostic is written to notice.
func NewFetchStep(fetcher PageFetcher, notice io.Writer, logger *slog.Logger) *FetchStep {
	if logger == nil {
		logger = slog.Default()
	}
	return &FetchStep{fetcher: fetcher, notice: notice, logger: logger}
}

// Name returns the step name.
func (s *FetchStep) Name() string {
	return "fetch"
}

// Do fetches catalog.URL into catalog.Page.
// A non-200 status or an empty page prints ConnectFailedMessage and halts
// the catalog.
func (s *FetchStep) Do(ctx context.Context, catalog *model.Catalog) error {
	page, err := s.fetcher.Fetch(ctx, catalog.URL)
	switch {
	case errors.Is(err, fetch.ErrUnexpectedStatus):
		s.logger.Debug("unexpected response", "url", catalog.URL, "error", err)
		return s.halt(catalog)
	case err != nil:
		return fmt.Errorf("failed to fetch %s: %w", catalog.URL, err)
	case page == "":
		s.logger.Debug("empty page", "url", catalog.URL)
		return s.halt(catalog)
	}

	catalog.Page = page
	return nil
}

// halt prints the connection failure diagnostic and stops the run.
func (s *FetchStep) halt(catalog *model.Catalog) error {
	if _, err := fmt.Fprintln(s.notice, ConnectFailedMessage); err != nil {
		return fmt.Errorf("failed to write diagnostic: %w", err)
	}
	catalog.Halted = true
	return nil
}

// ExtractStep runs the family passes over the fetched page.
type ExtractStep struct {
	patterns []extract.FamilyPattern
	logger   *slog.Logger
}

// NewExtractStep creates an ExtractStep using extract.DefaultPatterns.
func NewExtractStep(logger *slog.Logger) *ExtractStep {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExtractStep{patterns: extract.DefaultPatterns(), logger: logger}
}

// Name returns the step name.
func (s *ExtractStep) Name() string {
	return "extract"
}

// Do fills catalog.Entries from catalog.Page.
func (s *ExtractStep) Do(_ context.Context, catalog *model.Catalog) error {
	catalog.Entries = extract.ExtractWith(s.patterns, catalog.Page)

	counts := catalog.CountByFamily()
	for _, family := range model.Families() {
		s.logger.Debug("extracted family", "family", family, "entries", counts[family])
	}
	return nil
}

// RenderStep writes the catalog entries with a report.Writer.
type RenderStep struct {
	writer report.Writer
}

// NewRenderStep creates a RenderStep.
func NewRenderStep(writer report.Writer) *RenderStep {
	return &RenderStep{writer: writer}
}

// Name returns the step name.
func (s *RenderStep) Name() string {
	return "render"
}

// Do renders catalog.Entries.
func (s *RenderStep) Do(_ context.Context, catalog *model.Catalog) error {
	if _, err := s.writer.Write(catalog.Entries); err != nil {
		return fmt.Errorf("failed to render entries: %w", err)
	}
	return nil
}
