// Package server assembles the HTTP service: router, middleware chain,
// routes, and the graceful shutdown path.
package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	apihttp "github.com/GriffinCanCode/go-backend-template/internal/api/http"
	"github.com/GriffinCanCode/go-backend-template/internal/api/middleware"
	"github.com/GriffinCanCode/go-backend-template/internal/infrastructure/config"
	"github.com/GriffinCanCode/go-backend-template/internal/infrastructure/logging"
	"github.com/GriffinCanCode/go-backend-template/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/go-backend-template/internal/infrastructure/tracing"
)

// Server wraps the HTTP server and dependencies
type Server struct {
	router  *gin.Engine
	http    *http.Server
	logger  *logging.Logger
	tracer  *tracing.Provider
	metrics *monitoring.Metrics
	config  *config.Config
}

// New creates a new server instance
func New(cfg *config.Config) (*Server, error) {
	// Initialize logger
	logger, err := logging.New(logging.Config{
		Level:           cfg.Logging.Level,
		IncludeLocation: cfg.Logging.IncludeLocation,
		Development:     cfg.Development(),
		Service:         cfg.Tracing.ServiceName,
		Version:         cfg.Tracing.ServiceVersion,
	})
	if err != nil {
		logger = logging.NewDefault()
	}
	logging.SetGlobal(logger)

	logger.Info("Initializing server",
		zap.String("port", cfg.Server.Port),
		zap.String("environment", cfg.Logging.Environment),
	)

	// Initialize metrics
	metrics := monitoring.NewMetrics()

	// Initialize distributed tracing. Tracing failure degrades to no
	// enrichment; it never blocks startup.
	tracer, err := tracing.Init(tracing.Config{
		Enabled:         cfg.Tracing.Enabled,
		ServiceName:     cfg.Tracing.ServiceName,
		ServiceVersion:  cfg.Tracing.ServiceVersion,
		Environment:     cfg.Logging.Environment,
		Endpoint:        cfg.Tracing.Endpoint,
		ConsoleExporter: cfg.Tracing.ConsoleExporter || (cfg.Development() && cfg.Tracing.Endpoint == ""),
		Insecure:        cfg.Tracing.Insecure,
		Timeout:         cfg.Tracing.Timeout,
		SamplingRate:    cfg.Tracing.SamplingRate,
	}, logger)
	if err != nil {
		logger.Warn("Tracing initialization failed, continuing without export", zap.Error(err))
	}

	// Create router
	if !cfg.Development() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	// Add middleware
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logging.FromContext(c.Request.Context()).ErrorCtx(c.Request.Context(),
			"handler panic", zap.Any("panic", recovered))
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error": "internal server error",
		})
	}))
	if cfg.Tracing.Enabled {
		router.Use(tracing.Middleware(cfg.Tracing.ServiceName))
	}
	router.Use(monitoring.Middleware(metrics))
	router.Use(middleware.CORS(middleware.DefaultCORSConfig()))
	router.Use(middleware.RequestID(logger))
	router.Use(middleware.RequestLogger())
	if cfg.RateLimit.Enabled {
		logger.Info("Rate limiting enabled",
			zap.Int("rps", cfg.RateLimit.RequestsPerSecond),
			zap.Int("burst", cfg.RateLimit.Burst),
		)
		router.Use(middleware.RateLimit(middleware.RateLimitConfig{
			RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
			Burst:             cfg.RateLimit.Burst,
		}))
	}

	// Create handlers
	handlers := apihttp.NewHandlers(cfg.Tracing.ServiceName, cfg.Tracing.ServiceVersion)

	// Register routes
	router.GET("/", handlers.Root)
	router.GET("/health", handlers.Health)
	router.GET("/ready", handlers.Ready)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.NoRoute(apihttp.NotFound)

	logger.Info("Server initialized successfully")

	return &Server{
		router:  router,
		logger:  logger,
		tracer:  tracer,
		metrics: metrics,
		config:  cfg,
	}, nil
}

// Router exposes the gin engine, primarily for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Run starts the HTTP server and blocks until it stops.
func (s *Server) Run() error {
	addr := s.config.Server.Host + ":" + s.config.Server.Port
	s.http = &http.Server{
		Addr:    addr,
		Handler: s.router,
	}

	s.logger.Info("Starting HTTP server", zap.String("addr", addr))
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops accepting new requests, drains in-flight ones, flushes
// the tracing pipeline, and syncs the logger. Tracing shutdown failure is
// logged and swallowed: shutdown always completes from the caller's view.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down server...")

	var httpErr error
	if s.http != nil {
		httpErr = s.http.Shutdown(ctx)
	}

	if err := s.tracer.Shutdown(ctx); err != nil {
		s.logger.Warn("Tracing shutdown failed", zap.Error(err))
	}

	// Sync flushes buffered log records; stdout sync errors are expected
	// on some platforms and carry no signal.
	_ = s.logger.Sync()

	return httpErr
}
