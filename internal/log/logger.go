// Package log configures the zerolog logger used for pkgctl debug output.
// User-facing messages go through the diagnostics package; this logger is
// for tracing store and runner activity and is silent below debug level.
package log

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Config captures options for configuring the global logger.
type Config struct {
	Level   string    // optional log level ("debug", "info", etc.)
	Output  io.Writer // optional writer (defaults to os.Stderr)
	NoColor bool      // disable colors in console output
}

var (
	mu   sync.RWMutex
	base = zerolog.New(io.Discard)
)

// Configure replaces the global logger. Unknown levels fall back to warn so
// debug records stay hidden unless asked for.
func Configure(cfg Config) {
	level := zerolog.WarnLevel
	if cfg.Level != "" {
		if parsed, err := zerolog.ParseLevel(cfg.Level); err == nil {
			level = parsed
		}
	}

	writer := cfg.Output
	if writer == nil {
		writer = os.Stderr
	}

	console := zerolog.ConsoleWriter{
		Out:        writer,
		NoColor:    cfg.NoColor,
		TimeFormat: time.TimeOnly,
	}

	mu.Lock()
	defer mu.Unlock()
	base = zerolog.New(console).Level(level).With().Timestamp().Logger()
}

// Base returns the configured base logger instance.
func Base() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return base
}

// WithComponent returns a child logger annotated with the given component name.
func WithComponent(component string) zerolog.Logger {
	l := Base()
	return l.With().Str("component", component).Logger()
}
