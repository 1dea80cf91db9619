// Package telemetry wires OpenTelemetry metrics and tracing for the service.
package telemetry

import (
	"context"
	"log/slog"
	"net/http"

	"storefront/config"

	"github.com/pkg/errors"
	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.uber.org/fx"
)

const instrumentationName = "storefront"

// Params defines the dependencies of the telemetry providers
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// MetricsResult exposes the meter and the scrape handler to the rest of the graph
type MetricsResult struct {
	fx.Out

	Meter   metric.Meter
	Handler http.Handler `name:"metricsHandler"`
}

// NewMetrics builds a Prometheus-backed meter provider when metrics are enabled,
// and a no-op meter with a nil handler otherwise.
func NewMetrics(params Params) (MetricsResult, error) {
	if !params.Config.Telemetry.MetricsEnabled {
		params.Logger.Info("Metrics disabled, using no-op meter")

		return MetricsResult{Meter: noop.NewMeterProvider().Meter(instrumentationName)}, nil
	}

	provider, handler, err := newMeterProvider(params.Config)
	if err != nil {
		return MetricsResult{}, err
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return provider.Shutdown(ctx)
		},
	})

	return MetricsResult{
		Meter:   provider.Meter(instrumentationName),
		Handler: handler,
	}, nil
}

func newMeterProvider(cfg *config.Config) (*sdkmetric.MeterProvider, http.Handler, error) {
	registry := prom.NewRegistry()

	exporter, err := prometheus.New(prometheus.WithRegisterer(registry))
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to create prometheus exporter")
	}

	provider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(exporter),
		sdkmetric.WithResource(newResource(cfg)),
	)
	otel.SetMeterProvider(provider)

	return provider, promhttp.HandlerFor(registry, promhttp.HandlerOpts{}), nil
}

// InitTracing installs an OTLP gRPC tracer provider when an endpoint is configured.
// Without one the global no-op provider stays in place.
func InitTracing(params Params) error {
	endpoint := params.Config.Telemetry.OTLPEndpoint
	if endpoint == "" {
		params.Logger.Info("OTLP endpoint not configured, tracing disabled")

		return nil
	}

	exporter, err := otlptracegrpc.New(context.Background(),
		otlptracegrpc.WithEndpoint(endpoint),
		otlptracegrpc.WithInsecure(),
	)
	if err != nil {
		return errors.Wrap(err, "failed to create OTLP trace exporter")
	}

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(newResource(params.Config)),
	)

	otel.SetTracerProvider(provider)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return provider.Shutdown(ctx)
		},
	})

	params.Logger.Info("Tracing enabled", slog.String("endpoint", endpoint))

	return nil
}

func newResource(cfg *config.Config) *resource.Resource {
	return resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(cfg.Env.ServiceName),
		semconv.ServiceVersion(cfg.Telemetry.ServiceVersion),
		semconv.DeploymentEnvironment(cfg.Env.Env),
	)
}

// Module provides the telemetry FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewMetrics),
	fx.Provide(NewOrderMetrics),
	fx.Invoke(InitTracing),
)
