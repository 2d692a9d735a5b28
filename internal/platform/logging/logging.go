// Package logging builds the slog loggers used by the console server and
// tenantctl, and carries request-scoped loggers through context.
//
//	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)
//	ctx = logging.WithLogger(ctx, logger.With("request_id", id))
//
// Services hold the process logger but log through ForContext, so lines
// emitted while serving a request carry its request_id and correlation_id:
//
//	logging.ForContext(ctx, s.logger).ErrorContext(ctx, "failed to fetch tenant",
//	    slog.String("operation", "GetTenant"),
//	    slog.String("id", id),
//	    slog.Any("error", err),
//	)
//
// Owner contact details and credentials are redacted by the handler itself
// (see redact_handler.go) whichever logger a line goes through.
package logging

import (
	"context"
	"io"
	"log/slog"
)

// Output formats accepted by New.
const (
	FormatJSON = "json"
	FormatText = "text"
)

type contextKey struct{}

// New returns a logger writing to w at the given level. Format "text" selects
// logfmt-style output for terminals; anything else is JSON. Debug loggers
// also record the source location.
func New(level, format string, w io.Writer) *slog.Logger {
	lvl := ParseLevel(level)
	opts := &slog.HandlerOptions{
		Level:       lvl,
		AddSource:   lvl <= slog.LevelDebug,
		ReplaceAttr: newRedactAttr(),
	}

	if format == FormatText {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// ParseLevel reads a level name such as "debug" or "WARN", including slog's
// offset form ("info+2"). Unknown names fall back to info.
func ParseLevel(s string) slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}

// WithLogger stores logger in ctx.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, logger)
}

// FromContext returns the logger stored in ctx, or slog.Default().
func FromContext(ctx context.Context) *slog.Logger {
	return ForContext(ctx, slog.Default())
}

// ForContext returns the logger stored in ctx, or fallback when there is
// none. A nil fallback yields a logger that discards everything.
func ForContext(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(contextKey{}).(*slog.Logger); ok && logger != nil {
		return logger
	}
	if fallback == nil {
		return slog.New(slog.DiscardHandler)
	}
	return fallback
}
