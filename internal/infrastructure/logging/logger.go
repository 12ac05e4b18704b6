package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/GriffinCanCode/go-backend-template/internal/infrastructure/config"
)

// Logger wraps zap.Logger with trace-aware convenience methods.
type Logger struct {
	*zap.Logger
	includeLocation bool
}

// Config defines logger configuration.
type Config struct {
	Level           string `envconfig:"LOG_LEVEL" default:"info"` // "debug", "info", "warn", "error"
	IncludeLocation bool   `envconfig:"LOG_INCLUDE_LOCATION" default:"true"`
	Development     bool   `envconfig:"LOG_DEV" default:"false"`
	Service         string `envconfig:"OTEL_SERVICE_NAME" default:"go-backend-template"`
	Version         string `envconfig:"OTEL_SERVICE_VERSION" default:"1.0.0"`
	OutputPaths     []string
}

// DefaultConfig returns production-ready logger configuration.
func DefaultConfig() Config {
	return Config{
		Level:           "info",
		IncludeLocation: true,
		Development:     false,
		Service:         "go-backend-template",
		Version:         "1.0.0",
		OutputPaths:     []string{"stdout"},
	}
}

// DevelopmentConfig returns development logger configuration.
func DevelopmentConfig() Config {
	cfg := DefaultConfig()
	cfg.Level = "debug"
	cfg.Development = true
	return cfg
}

// LoadConfig resolves logger configuration from environment variables.
// A malformed value falls back to its own default; valid settings around
// it are kept.
func LoadConfig() Config {
	var cfg Config
	config.Process(&cfg)
	cfg.OutputPaths = []string{"stdout"}
	// Outside production the console encoder is the default.
	if IsDevelopment() {
		cfg.Development = true
	}
	return cfg
}

// New creates a new logger with the provided configuration.
func New(cfg Config) (*Logger, error) {
	paths := cfg.OutputPaths
	if len(paths) == 0 {
		paths = []string{"stdout"}
	}

	zapCfg := zap.Config{
		Level:            zap.NewAtomicLevelAt(parseLevel(cfg.Level)),
		Development:      cfg.Development,
		Encoding:         encodingFormat(cfg.Development),
		EncoderConfig:    encoderConfig(cfg.Development),
		OutputPaths:      paths,
		ErrorOutputPaths: []string{"stderr"},
		// Caller resolution is handled by this package's own resolver so
		// wrapper frames never leak into the caller field.
		DisableCaller:     true,
		DisableStacktrace: !cfg.Development,
		InitialFields:     initialFields(cfg),
	}

	logger, err := zapCfg.Build()
	if err != nil {
		return nil, err
	}

	return &Logger{Logger: logger, includeLocation: cfg.IncludeLocation}, nil
}

// NewDefault creates a logger with default configuration.
func NewDefault() *Logger {
	logger, err := New(DefaultConfig())
	if err != nil {
		// Fallback to no-op logger
		return &Logger{Logger: zap.NewNop()}
	}
	return logger
}

// NewDevelopment creates a logger with development configuration.
func NewDevelopment() *Logger {
	logger, err := New(DevelopmentConfig())
	if err != nil {
		// Fallback to no-op logger
		return &Logger{Logger: zap.NewNop()}
	}
	return logger
}

// NewWithZap wraps an existing zap.Logger. Intended for tests that need
// an observer core behind the trace-aware methods.
func NewWithZap(l *zap.Logger, includeLocation bool) *Logger {
	return &Logger{Logger: l, includeLocation: includeLocation}
}

// WithFields derives a child logger bound with extra fields. The child
// shares the parent's sink and location setting; the parent is unchanged.
func (l *Logger) WithFields(fields ...zap.Field) *Logger {
	return &Logger{Logger: l.Logger.With(fields...), includeLocation: l.includeLocation}
}

// initialFields are attached to every record regardless of context.
func initialFields(cfg Config) map[string]interface{} {
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown"
	}
	return map[string]interface{}{
		"pid":      os.Getpid(),
		"hostname": hostname,
		"service":  cfg.Service,
		"version":  cfg.Version,
	}
}

// parseLevel converts string level to zapcore.Level.
// Unknown levels degrade to info rather than erroring.
func parseLevel(level string) zapcore.Level {
	var l zapcore.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return zapcore.InfoLevel
	}
	return l
}

// encodingFormat returns encoding format based on environment.
func encodingFormat(development bool) string {
	if development {
		return "console"
	}
	return "json"
}

// encoderConfig returns encoder configuration based on environment.
func encoderConfig(development bool) zapcore.EncoderConfig {
	if development {
		return zapcore.EncoderConfig{
			TimeKey:        "T",
			LevelKey:       "L",
			NameKey:        "N",
			MessageKey:     "M",
			StacktraceKey:  "S",
			FunctionKey:    zapcore.OmitKey,
			LineEnding:     zapcore.DefaultLineEnding,
			EncodeLevel:    zapcore.CapitalColorLevelEncoder,
			EncodeTime:     zapcore.ISO8601TimeEncoder,
			EncodeDuration: zapcore.StringDurationEncoder,
		}
	}

	return zapcore.EncoderConfig{
		TimeKey:        "timestamp",
		LevelKey:       "level",
		NameKey:        "logger",
		MessageKey:     "message",
		StacktraceKey:  "stacktrace",
		FunctionKey:    zapcore.OmitKey,
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.SecondsDurationEncoder,
	}
}

// IsProduction checks if running in production environment.
func IsProduction() bool {
	env := os.Getenv("ENV")
	return env == "production" || env == "prod"
}

// IsDevelopment checks if running in development environment.
func IsDevelopment() bool {
	return !IsProduction()
}
