package exporters

import (
	"context"

	"github.com/Gobusters/ectologger"
	"go.opentelemetry.io/otel/sdk/trace"
)

// LogExporter writes finished spans to the service logger at debug level.
// It is used when no collector endpoint is configured.
type LogExporter struct {
	logger ectologger.Logger
}

func NewLogExporter(logger ectologger.Logger) *LogExporter {
	return &LogExporter{logger: logger}
}

func (e *LogExporter) ExportSpans(ctx context.Context, spans []trace.ReadOnlySpan) error {
	for _, span := range spans {
		e.logger.WithFields(map[string]any{
			"span":     span.Name(),
			"trace_id": span.SpanContext().TraceID().String(),
			"span_id":  span.SpanContext().SpanID().String(),
			"duration": span.EndTime().Sub(span.StartTime()).String(),
			"status":   span.Status().Code.String(),
		}).Debug("span finished")
	}
	return nil
}

func (e *LogExporter) Shutdown(ctx context.Context) error {
	return nil
}
