// Package logging builds the slog.Logger used by the pathviz driver.
package logging

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// ErrBadLevel and ErrBadFormat reject unknown settings.
var (
	ErrBadLevel  = errors.New("logging: unknown level")
	ErrBadFormat = errors.New("logging: unknown format")
)

// New returns a logger writing to w. level is debug, info, warn or error
// ("" = info); format is text or json ("" = text). It does not touch the
// global logger.
func New(level, format string, w io.Writer) (*slog.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{Level: lvl}
	var handler slog.Handler
	switch strings.ToLower(format) {
	case "", "text":
		handler = slog.NewTextHandler(w, opts)
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	default:
		return nil, fmt.Errorf("%w: %q", ErrBadFormat, format)
	}

	return slog.New(handler), nil
}

// ParseLevel maps a level name to slog.Level.
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("%w: %q", ErrBadLevel, level)
	}
}
