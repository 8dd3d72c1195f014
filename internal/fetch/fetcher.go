package fetch

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
)

const (
	// DefaultUserAgent identifies the tool in requests to the wiki.
	DefaultUserAgent = "devicemodels (+https://github.com/nao1215/devicemodels)"

	// DefaultMaxBodySize limits how much of the response body is read.
	DefaultMaxBodySize = 10 * 1024 * 1024 // 10MB
)

// Fetcher downloads a single page.
type Fetcher struct {
	// client performs the request.
	client *http.Client

	// userAgent is sent as the User-Agent header.
	userAgent string

	// headers are extra request headers (cookies, auth) from the config file.
	headers map[string]string

	// maxBodySize is the largest body accepted. Larger bodies fail with
	// ErrBodyTooLarge.
	maxBodySize int64

	// wikitext selects the textarea contents instead of the raw body.
	wikitext bool

	logger *slog.Logger
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithHeaders sets additional request headers.
func WithHeaders(headers map[string]string) Option {
	return func(f *Fetcher) {
		f.headers = headers
	}
}

// WithMaxBodySize sets the maximum number of body bytes to read.
// Values <= 0 keep the default.
func WithMaxBodySize(size int64) Option {
	return func(f *Fetcher) {
		if size > 0 {
			f.maxBodySize = size
		}
	}
}

// WithWikitext makes Fetch return only the edit textarea contents.
func WithWikitext(enabled bool) Option {
	return func(f *Fetcher) {
		f.wikitext = enabled
	}
}

// WithLogger sets the logger used for request diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(f *Fetcher) {
		f.logger = logger
	}
}

// NewFetcher creates a Fetcher using client.
// A nil client falls back to http.DefaultClient.
func NewFetcher(client *http.Client, opts ...Option) *Fetcher {
	if client == nil {
		client = http.DefaultClient
	}

	f := &Fetcher{
		client:      client,
		userAgent:   DefaultUserAgent,
		headers:     map[string]string{},
		maxBodySize: DefaultMaxBodySize,
		logger:      slog.Default(),
	}

	for _, opt := range opts {
		opt(f)
	}

	return f
}

// Fetch GETs pageURL and returns its body as text.
//
// Any status other than 200 yields an error wrapping ErrUnexpectedStatus.
// There are no retries.
func (f *Fetcher) Fetch(ctx context.Context, pageURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", f.userAgent)
	for k, v := range f.headers {
		req.Header.Set(k, v)
	}

	f.logger.Debug("fetching page", "url", pageURL, "headers", len(f.headers))

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		f.logger.Debug("unexpected status", "url", pageURL, "status", resp.StatusCode)
		return "", fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBodySize+1))
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}
	if int64(len(body)) > f.maxBodySize {
		f.logger.Warn("response body too large", "url", pageURL, "limit", f.maxBodySize)
		return "", fmt.Errorf("%w: more than %d bytes", ErrBodyTooLarge, f.maxBodySize)
	}

	f.logger.Debug("page fetched", "url", pageURL, "bytes", len(body))

	text := string(body)
	if !f.wikitext {
		return text, nil
	}

	source, found, err := ExtractWikitext(text)
	if err != nil {
		return "", err
	}
	if !found {
		f.logger.Warn("edit textarea not found, using raw page", "url", pageURL)
		return text, nil
	}
	return source, nil
}
