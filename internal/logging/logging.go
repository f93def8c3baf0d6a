// Package logging configures log/slog for the bicover command from the
// logging section of the configuration.
package logging

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/katalvlaran/bicover/internal/config"
)

// ErrUnknownFormat is returned for a logging.format other than text or json.
var ErrUnknownFormat = errors.New("logging: unknown format")

// Init installs the process-wide logger described by cfg. Output goes to w,
// or to os.Stderr when w is nil.
func Init(cfg config.LoggingConfig, w io.Writer) error {
	h, err := NewHandler(cfg, w)
	if err != nil {
		return err
	}
	slog.SetDefault(slog.New(h))

	return nil
}

// NewHandler builds the handler for cfg without installing it.
// Duration attributes are written as float milliseconds under "<key>_ms",
// the unit the reports use.
func NewHandler(cfg config.LoggingConfig, w io.Writer) (slog.Handler, error) {
	if w == nil {
		w = os.Stderr
	}
	opts := &slog.HandlerOptions{
		Level:       ParseLevel(cfg.Level),
		ReplaceAttr: millisDurations,
	}

	switch strings.ToLower(cfg.Format) {
	case "text", "":
		return slog.NewTextHandler(w, opts), nil
	case "json":
		return slog.NewJSONHandler(w, opts), nil
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownFormat, cfg.Format)
	}
}

// New returns a logger tagged with the bicover component that emits it
// (solve, generate, cover).
func New(component string) *slog.Logger {
	return slog.Default().With(slog.String("component", component))
}

// ParseLevel converts a level name to slog.Level.
// Unknown names map to slog.LevelInfo.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func millisDurations(_ []string, a slog.Attr) slog.Attr {
	if a.Value.Kind() != slog.KindDuration {
		return a
	}
	ms := float64(a.Value.Duration().Microseconds()) / float64(time.Millisecond/time.Microsecond)

	return slog.Float64(a.Key+"_ms", ms)
}
