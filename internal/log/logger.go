package log

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Log file rotation settings.
const (
	// MaxLogFileSizeMB is the size at which the log file is rotated.
	MaxLogFileSizeMB = 10
	// MaxLogBackups is the number of rotated files kept.
	MaxLogBackups = 3
	// MaxLogAgeDays is how long rotated files are kept.
	MaxLogAgeDays = 28
)

// Options configures NewLogger.
type Options struct {
	// Output receives log lines. Defaults to os.Stderr.
	Output io.Writer

	// Verbose lowers the level from Warn to Debug.
	Verbose bool

	// File, when set, also writes logs to a size-rotated file.
	File string
}

// nopCloser is returned when there is nothing to close.
type nopCloser struct{}

// Close implements io.Closer.
func (nopCloser) Close() error { return nil }

// NewSecureLogger creates a text logger that writes to w through a SecureHandler.
// Level is Debug when verbose, otherwise Warn.
func NewSecureLogger(w io.Writer, verbose bool) *slog.Logger {
	return slog.New(NewSecureHandler(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: levelFor(verbose),
	})))
}

// NewLogger creates the application logger described by opts.
// The returned Closer releases the log file, if one was opened.
func NewLogger(opts Options) (*slog.Logger, io.Closer, error) {
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}

	if opts.File == "" {
		return NewSecureLogger(out, opts.Verbose), nopCloser{}, nil
	}

	if dir := filepath.Dir(opts.File); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, nil, err
		}
	}

	rotator := &lumberjack.Logger{
		Filename:   opts.File,
		MaxSize:    MaxLogFileSizeMB,
		MaxBackups: MaxLogBackups,
		MaxAge:     MaxLogAgeDays,
		Compress:   true,
	}

	return NewSecureLogger(io.MultiWriter(out, rotator), opts.Verbose), rotator, nil
}

// levelFor maps the verbose flag to a slog level.
func levelFor(verbose bool) slog.Level {
	if verbose {
		return slog.LevelDebug
	}
	return slog.LevelWarn
}
