// Package observe provides the observability primitives shared by the
// soundlaw binaries: structured logging, OpenTelemetry metrics and tracing,
// and a Prometheus scrape handler.
//
// Library packages never log or record on their own; the learner and the
// experiment runner receive a *Metrics and use Logger(ctx) so log lines
// carry the active trace and span ids.
package observe

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/soundlaw/internal/config"
)

// NewLogger builds a *slog.Logger on stderr from cfg and installs it as the
// default logger.
//
// Format "json" produces JSON lines; anything else produces text with
// source locations. Level is debug, info, warn or error (case-insensitive),
// defaulting to info.
func NewLogger(cfg config.LogConfig) *slog.Logger {
	logger := NewLoggerTo(os.Stderr, cfg)
	slog.SetDefault(logger)

	return logger
}

// NewLoggerTo is NewLogger writing to w without touching the default logger.
func NewLoggerTo(w io.Writer, cfg config.LogConfig) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level:     ParseLevel(cfg.Level),
		AddSource: strings.EqualFold(cfg.Format, "text"),
	}

	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}

// ParseLevel maps a level name to slog.Level.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Logger returns the default logger enriched with trace_id and span_id from
// the span in ctx, if any.
func Logger(ctx context.Context) *slog.Logger {
	return With(ctx, slog.Default())
}

// With enriches l with trace_id and span_id from the span in ctx.
func With(ctx context.Context, l *slog.Logger) *slog.Logger {
	sc := trace.SpanContextFromContext(ctx)
	if sc.HasTraceID() {
		l = l.With(
			slog.String("trace_id", sc.TraceID().String()),
			slog.String("span_id", sc.SpanID().String()),
		)
	}

	return l
}
