package tracing

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/langexchange/langexchange-api/pkg/logger"
)

var tracer trace.Tracer

// Settings identifies the service in exported spans
type Settings struct {
	ServiceName       string
	ServiceNamespace  string
	ServiceVersion    string
	ServiceInstanceID string
	Environment       string
	Endpoint          string
}

// InitTracer initializes the OpenTelemetry tracer provider. With no
// endpoint configured it returns a no-op shutdown and spans stay local.
func InitTracer(s Settings) (func(context.Context) error, error) {
	if s.Endpoint == "" {
		logger.Info("Tracing disabled: O11Y_EXPORTER_ENDPOINT not set")
		return func(context.Context) error { return nil }, nil
	}

	logger.Info("Initializing OpenTelemetry tracer",
		zap.String("service", s.ServiceName),
		zap.String("namespace", s.ServiceNamespace),
		zap.String("version", s.ServiceVersion),
		zap.String("environment", s.Environment),
		zap.String("endpoint", s.Endpoint))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpoint(s.Endpoint),
		otlptracehttp.WithInsecure(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create OTLP exporter: %w", err)
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(s.ServiceName),
			semconv.ServiceNamespace(s.ServiceNamespace),
			semconv.ServiceVersion(s.ServiceVersion),
			semconv.ServiceInstanceID(s.ServiceInstanceID),
			attribute.String("deployment.environment.name", s.Environment),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}

	bsp := sdktrace.NewBatchSpanProcessor(exporter,
		sdktrace.WithBatchTimeout(2*time.Second),
		sdktrace.WithExportTimeout(5*time.Second),
		sdktrace.WithMaxQueueSize(2048),
		sdktrace.WithMaxExportBatchSize(512),
	)

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSpanProcessor(bsp),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	tracer = tp.Tracer(s.ServiceName)

	logger.Info("OpenTelemetry tracer initialized successfully")

	return tp.Shutdown, nil
}

// StartSpan starts a new span with the given name
func StartSpan(ctx context.Context, spanName string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	t := tracer
	if t == nil {
		// Global provider is a no-op until InitTracer installs one
		t = otel.Tracer("langexchange-api")
	}
	return t.Start(ctx, spanName, trace.WithAttributes(attrs...))
}

// StartDBSpan starts a client span for a collection operation
func StartDBSpan(ctx context.Context, collection, operation string) (context.Context, trace.Span) {
	return StartSpan(ctx, "mongodb."+collection+"."+operation,
		attribute.String("db.system", "mongodb"),
		attribute.String("db.mongodb.collection", collection),
		attribute.String("db.operation", operation),
	)
}
