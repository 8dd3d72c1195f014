package config

import (
	"errors"

	"github.com/nao1215/devicemodels/internal/fetch"
)

// Configuration validation errors.
// These errors are returned by Config.Validate() and can be matched with errors.Is.
var (
	// ErrEmptyURL is returned when no source URL is configured.
	ErrEmptyURL = errors.New("invalid url: must not be empty")

	// ErrInvalidURL is returned when the source URL is not an absolute http(s) URL.
	ErrInvalidURL = errors.New("invalid url: must be an absolute http or https URL")

	// ErrInvalidTimeout is returned when the timeout is negative.
	// Zero disables the timeout.
	ErrInvalidTimeout = errors.New("invalid timeout: must be non-negative")

	// ErrInvalidMaxBodySize is returned when the max body size is negative.
	// Use 0 to keep the default limit.
	ErrInvalidMaxBodySize = errors.New("invalid max body size: must be non-negative")

	// ErrInvalidProxyAddress is returned when the proxy is not "host:port".
	// It is the same value as fetch.ErrInvalidProxyAddress.
	ErrInvalidProxyAddress = fetch.ErrInvalidProxyAddress

	// ErrConfigNotFound is returned when the configuration file does not exist.
	ErrConfigNotFound = errors.New("configuration file not found")
)
