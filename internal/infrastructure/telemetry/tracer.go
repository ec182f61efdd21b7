// Package telemetry wires OpenTelemetry tracing and Prometheus metrics into the service.
package telemetry

import (
	"context"
	"fmt"

	"github.com/storefront/backend/internal/infrastructure/config"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.37.0"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// TracerProvider wraps the SDK provider. The zero value, returned when
// telemetry is off, exports nothing and every method is safe to call.
type TracerProvider struct {
	sdk    *sdktrace.TracerProvider
	logger *zap.Logger
}

// NewTracerProvider starts an OTLP/gRPC span exporter and installs the result
// as the global provider with W3C trace context and baggage propagation.
func NewTracerProvider(ctx context.Context, cfg config.TelemetryConfig, logger *zap.Logger) (*TracerProvider, error) {
	if !cfg.Enabled {
		logger.Info("Telemetry disabled, spans are not exported")
		return &TracerProvider{logger: logger}, nil
	}

	exporter, err := newExporter(ctx, cfg)
	if err != nil {
		return nil, err
	}
	res, err := serviceResource(cfg.ServiceName)
	if err != nil {
		return nil, err
	}

	sdk := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(Sampler(cfg.SamplingRatio)),
	)
	otel.SetTracerProvider(sdk)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))

	logger.Info("Exporting traces",
		zap.String("service_name", cfg.ServiceName),
		zap.String("collector_endpoint", cfg.CollectorEndpoint),
		zap.Float64("sampling_ratio", cfg.SamplingRatio),
	)
	return &TracerProvider{sdk: sdk, logger: logger}, nil
}

func newExporter(ctx context.Context, cfg config.TelemetryConfig) (sdktrace.SpanExporter, error) {
	opts := []otlptracegrpc.Option{otlptracegrpc.WithEndpoint(cfg.CollectorEndpoint)}
	if cfg.Insecure {
		opts = append(opts, otlptracegrpc.WithInsecure())
	}
	exporter, err := otlptracegrpc.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("otlp trace exporter for %s: %w", cfg.CollectorEndpoint, err)
	}
	return exporter, nil
}

func serviceResource(serviceName string) (*resource.Resource, error) {
	res, err := resource.Merge(resource.Default(),
		resource.NewWithAttributes(semconv.SchemaURL, semconv.ServiceName(serviceName)))
	if err != nil {
		return nil, fmt.Errorf("telemetry resource: %w", err)
	}
	return res, nil
}

// Sampler honours the parent's decision and samples root spans at ratio
func Sampler(ratio float64) sdktrace.Sampler {
	root := sdktrace.TraceIDRatioBased(ratio)
	if ratio >= 1 {
		root = sdktrace.AlwaysSample()
	} else if ratio <= 0 {
		root = sdktrace.NeverSample()
	}
	return sdktrace.ParentBased(root)
}

func (tp *TracerProvider) Enabled() bool { return tp.sdk != nil }

// Provider returns the SDK provider as an interface, nil when disabled
func (tp *TracerProvider) Provider() trace.TracerProvider {
	if tp.sdk == nil {
		return nil
	}
	return tp.sdk
}

// Tracer falls back to the global provider when export is off
func (tp *TracerProvider) Tracer(name string, opts ...trace.TracerOption) trace.Tracer {
	if tp.sdk == nil {
		return otel.GetTracerProvider().Tracer(name, opts...)
	}
	return tp.sdk.Tracer(name, opts...)
}

// Shutdown flushes buffered spans within ctx's deadline
func (tp *TracerProvider) Shutdown(ctx context.Context) error {
	if tp.sdk == nil {
		return nil
	}
	if err := tp.sdk.Shutdown(ctx); err != nil {
		return fmt.Errorf("flush spans: %w", err)
	}
	tp.logger.Info("Trace exporter stopped")
	return nil
}
