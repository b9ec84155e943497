package trace

import (
	"context"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// TracerName is the instrumentation scope of every span tabsheet emits.
const TracerName = "tabsheet/ui"

// OTLPExporter exports spans to an OTLP/HTTP endpoint.
type OTLPExporter struct {
	provider *sdktrace.TracerProvider
	tracer   oteltrace.Tracer
}

// NewOTLPExporter creates an exporter for endpoint.
// Returns nil if endpoint is empty (disabled); a nil exporter is usable.
func NewOTLPExporter(ctx context.Context, endpoint, serviceName string, insecure bool) (*OTLPExporter, error) {
	if endpoint == "" {
		return nil, nil
	}

	// OTEL_EXPORTER_OTLP_ENDPOINT is a URL; the config file may hold host:port.
	var opts []otlptracehttp.Option
	if strings.Contains(endpoint, "://") {
		opts = append(opts, otlptracehttp.WithEndpointURL(endpoint))
	} else {
		opts = append(opts, otlptracehttp.WithEndpoint(endpoint))
		if insecure {
			opts = append(opts, otlptracehttp.WithInsecure())
		}
	}
	exporter, err := otlptracehttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create otlp exporter: %w", err)
	}

	res := resource.NewSchemaless(attribute.String("service.name", serviceName))
	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	return &OTLPExporter{
		provider: provider,
		tracer:   provider.Tracer(TracerName),
	}, nil
}

// Tracer returns the exporter's tracer, or a no-op tracer when disabled.
func (e *OTLPExporter) Tracer() oteltrace.Tracer {
	if e == nil {
		return noop.NewTracerProvider().Tracer(TracerName)
	}
	return e.tracer
}

// Shutdown flushes pending spans and closes the exporter.
func (e *OTLPExporter) Shutdown(ctx context.Context) error {
	if e == nil {
		return nil
	}
	return e.provider.Shutdown(ctx)
}
