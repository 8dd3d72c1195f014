package config

import (
	"net/url"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"

	"github.com/nao1215/devicemodels/internal/fetch"
)

// Default configuration values.
const (
	// DefaultURL is the edit view of The iPhone Wiki "Models" page.
	// The edit view exposes the raw table markup the extractor expects.
	DefaultURL = "https://www.theiphonewiki.com/w/index.php?title=Models&action=edit"

	// DefaultFormat is used when no format argument is given.
	DefaultFormat = "text"

	// DefaultTimeout is the request timeout. Zero waits for the page
	// indefinitely; set timeout in the config file or --timeout to bound it.
	DefaultTimeout time.Duration = 0

	// DefaultUserAgent identifies devicemodels in requests to the wiki.
	DefaultUserAgent = fetch.DefaultUserAgent

	// DefaultMaxBodySize limits the response body size to read.
	// The Models edit page is well under 1MB.
	DefaultMaxBodySize = 10 * 1024 * 1024 // 10MB

	// AppName is the application name used for XDG directory paths.
	AppName = "devicemodels"
)

// Config holds all configuration options for devicemodels.
type Config struct {
	// URL is the page to fetch.
	URL string `yaml:"url,omitempty"`

	// Format is the output selector: "json", "nsdict", anything else is text.
	Format string `yaml:"format,omitempty"`

	// Timeout bounds the whole request. Zero means no timeout.
	Timeout time.Duration `yaml:"timeout,omitempty"`

	// UserAgent is the User-Agent header sent with the request.
	UserAgent string `yaml:"userAgent,omitempty"`

	// Headers are extra request headers, e.g. a Cookie for a wiki that
	// blocks anonymous clients.
	Headers map[string]string `yaml:"headers,omitempty"`

	// Proxy is an optional SOCKS5 proxy in "host:port" format.
	Proxy string `yaml:"proxy,omitempty"`

	// MaxBodySize is the maximum response body size in bytes.
	// Set to 0 to use the default.
	MaxBodySize int64 `yaml:"maxBodySize,omitempty"`

	// Wikitext restricts extraction to the edit textarea instead of the
	// whole HTML page.
	Wikitext bool `yaml:"wikitext,omitempty"`

	// MarkdownFile, when set, receives a Markdown summary of the entries.
	MarkdownFile string `yaml:"markdownFile,omitempty"`

	// LogFile, when set, receives a rotated copy of the log output.
	LogFile string `yaml:"logFile,omitempty"`

	// Verbose enables debug logging.
	Verbose bool `yaml:"verbose,omitempty"`

	// ConfigFilePath is the config file that was loaded, if any.
	ConfigFilePath string `yaml:"-"`
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		URL:         DefaultURL,
		Format:      DefaultFormat,
		Timeout:     DefaultTimeout,
		UserAgent:   DefaultUserAgent,
		Headers:     make(map[string]string),
		MaxBodySize: DefaultMaxBodySize,
	}
}

// Merge overlays the non-zero fields of other onto c.
// Headers are merged key by key.
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}
	if other.URL != "" {
		c.URL = other.URL
	}
	if other.Format != "" {
		c.Format = other.Format
	}
	if other.Timeout != 0 {
		c.Timeout = other.Timeout
	}
	if other.UserAgent != "" {
		c.UserAgent = other.UserAgent
	}
	if len(other.Headers) > 0 {
		if c.Headers == nil {
			c.Headers = make(map[string]string)
		}
		for k, v := range other.Headers {
			c.Headers[k] = v
		}
	}
	if other.Proxy != "" {
		c.Proxy = other.Proxy
	}
	if other.MaxBodySize != 0 {
		c.MaxBodySize = other.MaxBodySize
	}
	if other.Wikitext {
		c.Wikitext = true
	}
	if other.MarkdownFile != "" {
		c.MarkdownFile = other.MarkdownFile
	}
	if other.LogFile != "" {
		c.LogFile = other.LogFile
	}
	if other.Verbose {
		c.Verbose = true
	}
}

// XDGConfigDir returns the XDG config directory for devicemodels.
// On Linux: ~/.config/devicemodels
// On macOS: ~/Library/Application Support/devicemodels
// On Windows: %APPDATA%\devicemodels
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks if the configuration is valid.
// It returns the first problem found.
func (c *Config) Validate() error {
	if c.URL == "" {
		return ErrEmptyURL
	}

	u, err := url.Parse(c.URL)
	if err != nil || !u.IsAbs() || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return ErrInvalidURL
	}

	if c.Timeout < 0 {
		return ErrInvalidTimeout
	}

	if c.MaxBodySize < 0 {
		return ErrInvalidMaxBodySize
	}

	if c.Proxy != "" && !fetch.IsValidProxyAddress(c.Proxy) {
		return ErrInvalidProxyAddress
	}

	return nil
}
