package tracing

import (
	"context"
	"net/url"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/go-backend-template/internal/infrastructure/logging"
)

// Provider owns the tracing SDK lifecycle. A nil Provider is valid and
// behaves as a no-op, so callers never need to branch on whether tracing
// was actually initialized.
type Provider struct {
	tp *sdktrace.TracerProvider
}

// Init configures and registers the global TracerProvider.
//
// Disabled tracing returns a nil provider after logging that fact; the nil
// provider's Shutdown is a no-op. When enabled:
//  1. Validates the configuration
//  2. Builds resource attributes (service name, version, environment)
//  3. Constructs exporters: OTLP HTTP when an endpoint is set, stdout when
//     the console exporter is requested
//  4. Wires batch span processors and a parent-based ratio sampler
//  5. Registers the provider via otel.SetTracerProvider
func Init(cfg Config, logger *logging.Logger) (*Provider, error) {
	if !cfg.Enabled {
		logger.Info("Tracing disabled, spans will not be recorded")
		return nil, nil
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	res, err := resource.Merge(
		resource.Default(),
		resource.NewSchemaless(
			semconv.ServiceName(cfg.ServiceName),
			semconv.ServiceVersion(cfg.ServiceVersion),
			semconv.DeploymentEnvironment(cfg.Environment),
		),
	)
	if err != nil {
		return nil, err
	}

	opts := []sdktrace.TracerProviderOption{
		sdktrace.WithResource(res),
		sdktrace.WithSampler(newSampler(cfg.SamplingRate)),
	}

	if cfg.Endpoint != "" {
		exporter, err := newOTLPExporter(cfg)
		if err != nil {
			return nil, err
		}
		opts = append(opts, sdktrace.WithBatcher(exporter))
	}

	if cfg.ConsoleExporter {
		exporter, err := stdouttrace.New(stdouttrace.WithPrettyPrint())
		if err != nil {
			return nil, err
		}
		opts = append(opts, sdktrace.WithBatcher(exporter))
	}

	tp := sdktrace.NewTracerProvider(opts...)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	// The logger's initial fields already carry the service name; adding
	// it here would repeat the key within one record.
	logger.Info("Tracing initialized",
		zap.String("endpoint", cfg.Endpoint),
		zap.Bool("console_exporter", cfg.ConsoleExporter),
		zap.Float64("sampling_rate", cfg.SamplingRate),
	)

	return &Provider{tp: tp}, nil
}

// Shutdown flushes buffered spans and stops the SDK. Safe on a nil
// provider; errors are returned for the caller to log, never to act on.
func (p *Provider) Shutdown(ctx context.Context) error {
	if p == nil || p.tp == nil {
		return nil
	}
	return p.tp.Shutdown(ctx)
}

// newOTLPExporter builds the OTLP HTTP exporter. The endpoint option takes
// host:port only, so a full URL is reduced to its host first.
func newOTLPExporter(cfg Config) (sdktrace.SpanExporter, error) {
	endpointHost := cfg.Endpoint
	if u, err := url.Parse(cfg.Endpoint); err == nil && u.Host != "" {
		endpointHost = u.Host
	}

	opts := []otlptracehttp.Option{
		otlptracehttp.WithEndpoint(endpointHost),
		otlptracehttp.WithTimeout(cfg.Timeout),
	}
	if cfg.Insecure {
		opts = append(opts, otlptracehttp.WithInsecure())
	}

	return otlptracehttp.New(context.Background(), opts...)
}

// newSampler builds a parent-based sampler: root spans sample at the
// configured ratio, child spans inherit their parent's decision.
func newSampler(rate float64) sdktrace.Sampler {
	return sdktrace.ParentBased(sdktrace.TraceIDRatioBased(rate))
}
