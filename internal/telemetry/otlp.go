// Package telemetry wires OpenTelemetry tracing for snapdeck.
//
// Tracing is opt-in: nothing is exported unless OTEL_EXPORTER_OTLP_ENDPOINT is
// set. Packages create tracers through otel.Tracer and pick up the provider
// installed here once Setup runs.
package telemetry

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
)

const (
	// EndpointEnv enables export when set: the base URL of an OTLP/HTTP
	// collector ("http://localhost:4318"), or a bare host:port.
	EndpointEnv = "OTEL_EXPORTER_OTLP_ENDPOINT"
	// ServiceNameEnv overrides DefaultServiceName.
	ServiceNameEnv = "OTEL_SERVICE_NAME"
	// DefaultServiceName is reported when OTEL_SERVICE_NAME is unset.
	DefaultServiceName = "snapdeck"
)

// ShutdownFunc flushes and stops the tracer provider.
type ShutdownFunc func(context.Context) error

// Setup installs an OTLP tracer provider as the global provider when
// OTEL_EXPORTER_OTLP_ENDPOINT is set. When it is not, the global no-op provider
// is left in place and the returned shutdown does nothing.
func Setup(ctx context.Context) (ShutdownFunc, error) {
	endpoint := os.Getenv(EndpointEnv)
	if endpoint == "" {
		return func(context.Context) error { return nil }, nil
	}

	traces, err := tracesURL(endpoint)
	if err != nil {
		return nil, err
	}
	exporter, err := otlptracehttp.New(ctx, otlptracehttp.WithEndpointURL(traces))
	if err != nil {
		return nil, err
	}

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(newResource()),
	)
	otel.SetTracerProvider(provider)
	return provider.Shutdown, nil
}

func newResource() *resource.Resource {
	serviceName := os.Getenv(ServiceNameEnv)
	if serviceName == "" {
		serviceName = DefaultServiceName
	}
	return resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
	)
}

// tracesURL turns the collector base endpoint into the trace signal URL.
// A bare host:port is treated as plain HTTP.
func tracesURL(endpoint string) (string, error) {
	endpoint = strings.TrimSpace(endpoint)
	if !strings.Contains(endpoint, "://") {
		endpoint = "http://" + endpoint
	}
	u, err := url.Parse(endpoint)
	if err != nil {
		return "", fmt.Errorf("%s: %w", EndpointEnv, err)
	}
	if u.Host == "" {
		return "", fmt.Errorf("%s: missing host in %q", EndpointEnv, endpoint)
	}
	u.Path = strings.TrimSuffix(u.Path, "/") + "/v1/traces"
	return u.String(), nil
}
