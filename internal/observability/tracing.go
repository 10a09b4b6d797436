package observability

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/daimoniac/echotool/internal/errors"
)

// SetupTracing installs a global tracer provider exporting to the OTLP
// endpoint, or does nothing when the endpoint is empty. The decision is made
// once at startup and never re-evaluated. Span export runs on a background
// batch path; exporter failures stay inside the exporter and never surface
// as request failures.
//
// The returned provider is nil when tracing is disabled. Callers own its
// shutdown.
func SetupTracing(ctx context.Context, serviceName, serviceVersion, endpoint string, logger *slog.Logger) (*sdktrace.TracerProvider, error) {
	if endpoint == "" {
		logger.Info("tracing disabled because OTEL_EXPORTER_OTLP_ENDPOINT is empty")
		return nil, nil
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceNameKey.String(serviceName),
			semconv.ServiceVersionKey.String(serviceVersion),
		),
	)
	if err != nil {
		return nil, errors.NewTransientf("creating trace resource: %w", err)
	}

	exporter, err := otlptracegrpc.New(ctx,
		otlptracegrpc.WithEndpoint(endpoint),
		otlptracegrpc.WithDialOption(grpc.WithTransportCredentials(insecure.NewCredentials())),
	)
	if err != nil {
		return nil, errors.NewTransientf("creating trace exporter: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithResource(res),
		sdktrace.WithBatcher(exporter,
			sdktrace.WithBatchTimeout(5*time.Second),
		),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	logger.Info("tracing enabled",
		"endpoint", endpoint,
		"service_name", serviceName,
		"service_version", serviceVersion)

	return tp, nil
}

// ShutdownTracing flushes buffered spans and stops the provider. Passing a
// nil provider (tracing disabled) is a no-op.
func ShutdownTracing(ctx context.Context, tp *sdktrace.TracerProvider, logger *slog.Logger) error {
	if tp == nil {
		return nil
	}

	if err := tp.Shutdown(ctx); err != nil {
		logger.Error("tracer provider shutdown error",
			"error", err.Error())
		return errors.NewTransientf("tracer provider shutdown: %w", err)
	}

	return nil
}
