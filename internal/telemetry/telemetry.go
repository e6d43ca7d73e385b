// Package telemetry provides optional OpenTelemetry tracing spans around
// the more expensive construction paths in this module: building a
// Barrett reducer (which computes and stores a reciprocal) and growing
// an accumulator's backing buffer. No component in the arithmetic core
// creates spans on its own; a caller supplies a Tracer through the
// relevant WithTracer option to opt in.
package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Tracer wraps an otel trace.Tracer, narrowed to the span shapes this
// module needs.
type Tracer struct {
	tracer trace.Tracer
}

// NewTracer builds a Tracer using the global otel TracerProvider under
// the given instrumentation name.
func NewTracer(name string) *Tracer {
	return &Tracer{tracer: otel.Tracer(name)}
}

// StartBarrettBuild starts a span around Barrett reducer construction,
// recording the modulus bit length as an attribute.
func (t *Tracer) StartBarrettBuild(ctx context.Context, modulusBits int) (context.Context, trace.Span) {
	if t == nil {
		return ctx, trace.SpanFromContext(ctx)
	}
	return t.tracer.Start(ctx, "barrett.build",
		trace.WithAttributes(attribute.Int("magia.modulus_bits", modulusBits)))
}

// StartRemainder starts a span around a single Barrett reduction,
// recording the dividend's bit length as an attribute.
func (t *Tracer) StartRemainder(ctx context.Context, dividendBits int) (context.Context, trace.Span) {
	if t == nil {
		return ctx, trace.SpanFromContext(ctx)
	}
	return t.tracer.Start(ctx, "barrett.remainder",
		trace.WithAttributes(attribute.Int("magia.dividend_bits", dividendBits)))
}

// StartAccumulatorGrow starts a span around an accumulator buffer
// reallocation, recording the old and new limb counts.
func (t *Tracer) StartAccumulatorGrow(ctx context.Context, oldLimbs, newLimbs int) (context.Context, trace.Span) {
	if t == nil {
		return ctx, trace.SpanFromContext(ctx)
	}
	return t.tracer.Start(ctx, "accumulator.grow",
		trace.WithAttributes(
			attribute.Int("magia.old_limbs", oldLimbs),
			attribute.Int("magia.new_limbs", newLimbs),
		))
}
