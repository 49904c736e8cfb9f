// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tracing

import (
	"context"
	"os"

	"go.opentelemetry.io/contrib/propagators/jaeger"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const serviceName = "crew-service"

// Tracer wraps the global otel tracer so components can depend on TracingInterface
type Tracer struct {
	tracer trace.Tracer
}

func (t *Tracer) Start(ctx context.Context, spanName string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	return t.tracer.Start(ctx, spanName, opts...)
}

func (t *Tracer) init(cfg *Config) {
	var exporter sdktrace.SpanExporter
	var err error

	ctx := context.Background()

	switch cfg.Exporter() {
	case ExporterOTLPGRPC:
		exporter, err = otlptracegrpc.New(ctx, otlptracegrpc.WithEndpoint(cfg.OtelGRPCEndpoint), otlptracegrpc.WithInsecure())
	case ExporterOTLPHTTP:
		exporter, err = otlptracehttp.New(ctx, otlptracehttp.WithEndpoint(cfg.OtelHTTPEndpoint), otlptracehttp.WithInsecure())
	default:
		exporter, err = stdouttrace.New(stdouttrace.WithWriter(os.Stdout))
	}

	if err != nil {
		cfg.Logger.Errorf("unable to initialize tracing exporter: %v", err)
		t.tracer = noop.NewTracerProvider().Tracer(serviceName)
		return
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(
			resource.NewSchemaless(attribute.String("service.name", serviceName)),
		),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(
		propagation.NewCompositeTextMapPropagator(
			jaeger.Jaeger{},
			propagation.TraceContext{},
			propagation.Baggage{},
		),
	)

	t.tracer = otel.Tracer(serviceName)
}

// NewTracer returns a tracer exporting spans when tracing is enabled, a noop one otherwise
func NewTracer(cfg *Config) *Tracer {
	t := new(Tracer)

	if !cfg.Enabled {
		t.tracer = noop.NewTracerProvider().Tracer(serviceName)
		return t
	}

	t.init(cfg)

	return t
}

func NewNoopTracer() *Tracer {
	return NewTracer(NewNoopConfig())
}
