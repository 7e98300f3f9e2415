// Package ctxlog carries a slog.Logger on a context.Context.
package ctxlog

import (
	"context"
	"io"
	"log/slog"
)

type key struct{}

var loggerKey = key{}

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

// WithLogger returns a copy of ctx carrying logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext returns the logger stored in ctx. A nil context or one without
// a logger yields a logger that discards everything, so library code can log
// unconditionally.
func FromContext(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return discard
	}
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok && logger != nil {
		return logger
	}
	return discard
}
