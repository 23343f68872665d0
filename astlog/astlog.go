// Package astlog provides the ambient structured logger used across
// astcore: a [log/slog] handler that injects OpenTelemetry trace/span IDs
// into every record, adapted from the teacher's TracingHandler
// (pkg/observability/logger.go) down to the single concern this module
// needs — log/slog plus trace correlation, without the full OTel SDK
// provider bring-up the teacher's service binary performs.
package astlog

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"go.opentelemetry.io/otel/trace"
)

const (
	attrTraceID   = "trace_id"
	attrSpanID    = "span_id"
	attrComponent = "component"
)

// TracingHandler is an [slog.Handler] that injects trace_id/span_id from the
// context's active span into every log record.
type TracingHandler struct {
	inner slog.Handler
}

// NewTracingHandler wraps inner, pre-attaching a component label so it
// survives subsequent WithGroup calls.
func NewTracingHandler(inner slog.Handler, component string) *TracingHandler {
	if component != "" {
		inner = inner.WithAttrs([]slog.Attr{slog.String(attrComponent, component)})
	}

	return &TracingHandler{inner: inner}
}

// Enabled delegates to the inner handler.
func (th *TracingHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return th.inner.Enabled(ctx, level)
}

// Handle adds trace context attributes from the span in ctx, then delegates.
func (th *TracingHandler) Handle(ctx context.Context, record slog.Record) error {
	sc := trace.SpanContextFromContext(ctx)
	if sc.IsValid() {
		record.AddAttrs(
			slog.String(attrTraceID, sc.TraceID().String()),
			slog.String(attrSpanID, sc.SpanID().String()),
		)
	}

	if err := th.inner.Handle(ctx, record); err != nil {
		return fmt.Errorf("astlog: %w", err)
	}

	return nil
}

// WithAttrs returns a new TracingHandler with additional attributes on the
// inner handler.
func (th *TracingHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &TracingHandler{inner: th.inner.WithAttrs(attrs)}
}

// WithGroup returns a new TracingHandler with a group prefix on the inner
// handler.
func (th *TracingHandler) WithGroup(name string) slog.Handler {
	return &TracingHandler{inner: th.inner.WithGroup(name)}
}

// New builds the package-wide default logger: JSON output to stderr, trace
// correlation, tagged with component.
func New(component string, level slog.Level) *slog.Logger {
	base := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})

	return slog.New(NewTracingHandler(base, component))
}
