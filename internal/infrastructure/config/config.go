package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	Logging   LogConfig
	Tracing   TracingConfig
	RateLimit RateLimitConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port            string        `envconfig:"PORT" default:"8000"`
	Host            string        `envconfig:"HOST" default:"0.0.0.0"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level           string `envconfig:"LOG_LEVEL" default:"info"`
	IncludeLocation bool   `envconfig:"LOG_INCLUDE_LOCATION" default:"true"`
	Development     bool   `envconfig:"LOG_DEV" default:"false"`
	Environment     string `envconfig:"ENV" default:"development"`
}

// TracingConfig holds OpenTelemetry tracing configuration.
type TracingConfig struct {
	Enabled         bool          `envconfig:"OTEL_TRACING_ENABLED" default:"true"`
	ServiceName     string        `envconfig:"OTEL_SERVICE_NAME" default:"go-backend-template"`
	ServiceVersion  string        `envconfig:"OTEL_SERVICE_VERSION" default:"1.0.0"`
	Endpoint        string        `envconfig:"OTEL_EXPORTER_OTLP_TRACES_ENDPOINT"`
	ConsoleExporter bool          `envconfig:"OTEL_CONSOLE_EXPORTER" default:"false"`
	Insecure        bool          `envconfig:"OTEL_EXPORTER_INSECURE" default:"true"`
	Timeout         time.Duration `envconfig:"OTEL_EXPORTER_TIMEOUT" default:"5s"`
	SamplingRate    float64       `envconfig:"OTEL_TRACES_SAMPLER_RATE" default:"1.0"`
}

// RateLimitConfig holds rate limiting configuration.
type RateLimitConfig struct {
	RequestsPerSecond int  `envconfig:"RATE_LIMIT_RPS" default:"100"`
	Burst             int  `envconfig:"RATE_LIMIT_BURST" default:"200"`
	Enabled           bool `envconfig:"RATE_LIMIT_ENABLED" default:"true"`
}

// IsProduction reports whether the service runs in production mode.
func (c *Config) IsProduction() bool {
	return c.Logging.Environment == "production" || c.Logging.Environment == "prod"
}

// Development reports whether development conveniences (console log encoding,
// console trace exporter) are enabled.
func (c *Config) Development() bool {
	return c.Logging.Development || !c.IsProduction()
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from environment with per-field
// degradation: a malformed value yields that field's documented default
// while every valid sibling setting is kept.
func LoadOrDefault() *Config {
	var cfg Config
	Process(&cfg)
	return &cfg
}

// Process fills spec from the environment, degrading field by field. A
// value that fails to parse falls back to that field's default tag; the
// siblings around it keep their configured values. envconfig stops at the
// first parse error, so each malformed variable is masked and processing
// retried until the whole struct resolves. The environment is restored
// before returning.
func Process(spec interface{}) {
	masked := map[string]string{}
	defer func() {
		for key, val := range masked {
			_ = os.Setenv(key, val)
		}
	}()

	for {
		err := envconfig.Process("", spec)
		if err == nil {
			return
		}
		var parseErr *envconfig.ParseError
		if !errors.As(err, &parseErr) {
			return
		}
		if _, seen := masked[parseErr.KeyName]; seen {
			return
		}
		masked[parseErr.KeyName] = os.Getenv(parseErr.KeyName)
		_ = os.Unsetenv(parseErr.KeyName)
	}
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            "8000",
			Host:            "0.0.0.0",
			ShutdownTimeout: 10 * time.Second,
		},
		Logging: LogConfig{
			Level:           "info",
			IncludeLocation: true,
			Development:     false,
			Environment:     "development",
		},
		Tracing: TracingConfig{
			Enabled:        true,
			ServiceName:    "go-backend-template",
			ServiceVersion: "1.0.0",
			Insecure:       true,
			Timeout:        5 * time.Second,
			SamplingRate:   1.0,
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: 100,
			Burst:             200,
			Enabled:           true,
		},
	}
}
