package reach

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Tracer spans the tracker's three interesting calls (Builder.Build,
// Builder.IsAcyclic, Tracker.PropagateAll), in the teacher engine's
// graph/emit/otel.go idiom of wrapping an OpenTelemetry trace.Tracer
// rather than depending on the global tracer provider.
type Tracer interface {
	// StartSpan begins a span named name and returns a handle to end it.
	StartSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) Span
}

// Span is the minimal handle this package needs back from a started span:
// enough to record an error and end the span, mirroring how the teacher's
// OTelEmitter immediately ends spans representing points/intervals of
// synchronous work.
type Span interface {
	SetAttributes(attrs ...attribute.KeyValue)
	RecordError(err error)
	End()
}

// OTelTracer adapts a real go.opentelemetry.io/otel/trace.Tracer to the
// Tracer interface, exactly as the teacher's NewOTelEmitter adapts a
// trace.Tracer for event emission.
type OTelTracer struct {
	tracer trace.Tracer
}

// NewOTelTracer wraps tracer. A typical caller obtains tracer from
// otel.Tracer("reach") after configuring a TracerProvider.
func NewOTelTracer(tracer trace.Tracer) *OTelTracer {
	return &OTelTracer{tracer: tracer}
}

// StartSpan implements Tracer.
func (o *OTelTracer) StartSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) Span {
	_, span := o.tracer.Start(ctx, name, trace.WithAttributes(attrs...))
	return otelSpan{span}
}

type otelSpan struct {
	span trace.Span
}

func (s otelSpan) SetAttributes(attrs ...attribute.KeyValue) { s.span.SetAttributes(attrs...) }

func (s otelSpan) RecordError(err error) {
	if err == nil {
		return
	}
	s.span.RecordError(err)
	s.span.SetStatus(codes.Error, err.Error())
}

func (s otelSpan) End() { s.span.End() }

// noopTracer is the default Tracer when none is configured via WithTracer.
type noopTracer struct{}

func (noopTracer) StartSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) Span {
	return noopSpan{}
}

type noopSpan struct{}

func (noopSpan) SetAttributes(attrs ...attribute.KeyValue) {}
func (noopSpan) RecordError(err error)                     {}
func (noopSpan) End()                                      {}
