package tracing

import (
	"errors"
	"fmt"
	"net/url"
	"time"
)

// Validation errors for tracing configuration.
var (
	// ErrServiceNameRequired indicates a missing service name.
	ErrServiceNameRequired = errors.New("tracing: service name is required")

	// ErrTimeoutInvalid indicates a non-positive export timeout.
	ErrTimeoutInvalid = errors.New("tracing: timeout must be positive")

	// ErrEndpointInvalid indicates an endpoint that is not a valid URL or host:port.
	ErrEndpointInvalid = errors.New("tracing: endpoint must be a valid URL with host (e.g. http://jaeger:4318)")

	// ErrSamplingRateInvalid indicates a sampling rate outside [0.0, 1.0].
	ErrSamplingRateInvalid = errors.New("tracing: sampling rate must be between 0.0 and 1.0")
)

// Config holds settings for TracerProvider initialization.
type Config struct {
	// Enabled toggles the tracing subsystem. When false Init returns a
	// no-op provider and everything downstream sees "no active trace".
	Enabled bool

	// ServiceName and ServiceVersion become resource attributes on every span.
	ServiceName    string
	ServiceVersion string

	// Environment tags spans with the deployment environment
	// (production, staging, development).
	Environment string

	// Endpoint is the OTLP HTTP endpoint (e.g. "jaeger:4318"). Empty
	// disables the OTLP exporter.
	Endpoint string

	// ConsoleExporter additionally writes spans to stdout. Defaults on in
	// development when no endpoint is configured.
	ConsoleExporter bool

	// Insecure uses HTTP instead of HTTPS for OTLP export.
	Insecure bool

	// Timeout bounds each export attempt.
	Timeout time.Duration

	// SamplingRate is the fraction of traces sampled (0.0 none, 1.0 all).
	SamplingRate float64
}

// Validate checks the configuration for consistency. Disabled configs are
// always valid.
func (c *Config) Validate() error {
	if !c.Enabled {
		return nil
	}
	if c.ServiceName == "" {
		return ErrServiceNameRequired
	}
	if c.Endpoint != "" {
		if u, err := url.Parse(c.Endpoint); err != nil || (u.Host == "" && u.Opaque == "") {
			return ErrEndpointInvalid
		}
	}
	if c.Timeout <= 0 {
		return ErrTimeoutInvalid
	}
	if c.SamplingRate < 0.0 || c.SamplingRate > 1.0 {
		return fmt.Errorf("%w, got: %g", ErrSamplingRateInvalid, c.SamplingRate)
	}
	return nil
}

// DefaultConfig returns the default tracing configuration: enabled, no
// exporters until an endpoint or the console exporter is configured.
func DefaultConfig() Config {
	return Config{
		Enabled:        true,
		ServiceName:    "go-backend-template",
		ServiceVersion: "1.0.0",
		Environment:    "development",
		Insecure:       true,
		Timeout:        5 * time.Second,
		SamplingRate:   1.0,
	}
}
