// Package tracing wraps OpenTelemetry span creation for QRFS's operations
// (upload, download, delete, reconcile), adapted from the teacher's
// internal/telemetry package. Unlike the teacher, this package never dials
// an OTLP collector: sampling and resource attribution are in-process only,
// so a caller can wire a real exporter onto the returned TracerProvider
// without this package taking on a network dependency itself.
package tracing

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// Config controls tracer construction.
type Config struct {
	// Enabled toggles a real sampling tracer provider versus a no-op tracer.
	Enabled bool

	// ServiceName is reported as the resource's service.name attribute.
	ServiceName string

	// SampleRate is the fraction of traces sampled, in [0,1]. Ignored when
	// Enabled is false.
	SampleRate float64
}

var (
	tracer     trace.Tracer
	tracerOnce sync.Once
	enabled    bool
)

// Init sets the package-level tracer from cfg. Safe to call once at
// process startup; later calls are no-ops beyond the first.
func Init(cfg Config) {
	tracerOnce.Do(func() {
		if !cfg.Enabled {
			enabled = false
			tracer = noop.NewTracerProvider().Tracer("qrfs")
			return
		}

		enabled = true

		res, err := resource.New(context.Background(),
			resource.WithAttributes(attribute.String("service.name", cfg.ServiceName)),
		)
		if err != nil {
			res = resource.Default()
		}

		var sampler sdktrace.Sampler
		switch {
		case cfg.SampleRate >= 1.0:
			sampler = sdktrace.AlwaysSample()
		case cfg.SampleRate <= 0.0:
			sampler = sdktrace.NeverSample()
		default:
			sampler = sdktrace.TraceIDRatioBased(cfg.SampleRate)
		}

		provider := sdktrace.NewTracerProvider(
			sdktrace.WithResource(res),
			sdktrace.WithSampler(sampler),
		)
		otel.SetTracerProvider(provider)
		tracer = provider.Tracer("qrfs")
	})
}

// IsEnabled reports whether Init was called with a real tracer.
func IsEnabled() bool {
	return enabled
}

// Tracer returns the package-level tracer, defaulting to a no-op tracer if
// Init was never called.
func Tracer() trace.Tracer {
	tracerOnce.Do(func() {
		tracer = noop.NewTracerProvider().Tracer("qrfs")
	})
	return tracer
}

// StartSpan starts a span named name under ctx's current span, if any.
func StartSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return Tracer().Start(ctx, name, trace.WithAttributes(attrs...))
}

// RecordError records err on the current span and marks it failed. A nil
// err is a no-op.
func RecordError(span trace.Span, err error) {
	if err == nil {
		return
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
