package pulse

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// defaultTracerName is used when no explicit tracer name is given.
const defaultTracerName = "pulse"

// WithTracer attaches an OpenTelemetry tracer to the graph. Every
// propagation round is recorded as a "pulse.round" span carrying the round
// number, wave count, and firing count.
func WithTracer(tracer trace.Tracer) Option {
	return func(g *Graph) { g.tracer = tracer }
}

// WithTracerName is WithTracer using the globally registered tracer
// provider.
func WithTracerName(name string) Option {
	if name == "" {
		name = defaultTracerName
	}
	return WithTracer(otel.Tracer(name))
}

func (g *Graph) recordRoundSpan() {
	if g.tracer == nil {
		return
	}
	_, span := g.tracer.Start(context.Background(), "pulse.round",
		trace.WithTimestamp(g.roundStart),
		trace.WithAttributes(
			attribute.Int64("pulse.round", int64(g.round)),
			attribute.Int("pulse.waves", g.waves),
			attribute.Int("pulse.firings", g.firings),
		),
	)
	span.End()
}
