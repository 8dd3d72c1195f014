package config

import (
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Environment variables read by LoadEnv.
const (
	EnvURL       = "DEVICEMODELS_URL"
	EnvProxy     = "DEVICEMODELS_PROXY"
	EnvUserAgent = "DEVICEMODELS_USER_AGENT"
	EnvTimeout   = "DEVICEMODELS_TIMEOUT"
)

// LoadDotEnv loads variables from the given .env files into the process
// environment. Variables that are already set are not overridden.
// A missing file is not an error; it is only logged at debug level.
func LoadDotEnv(filenames ...string) {
	if err := godotenv.Load(filenames...); err != nil {
		slog.Debug("no .env file loaded", "error", err)
	}
}

// LoadEnv returns the configuration overrides present in the environment.
// Malformed durations are ignored with a warning.
func LoadEnv() *Config {
	cfg := &Config{
		URL:       os.Getenv(EnvURL),
		Proxy:     os.Getenv(EnvProxy),
		UserAgent: os.Getenv(EnvUserAgent),
	}

	if v := os.Getenv(EnvTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			slog.Warn("ignoring malformed timeout", "variable", EnvTimeout, "value", v, "error", err)
		} else {
			cfg.Timeout = d
		}
	}

	return cfg
}
