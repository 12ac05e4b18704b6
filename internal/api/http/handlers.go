// Package http contains the service's HTTP endpoint handlers: root,
// liveness, and readiness. Everything here is thin request/response glue;
// observability concerns live in the infrastructure packages.
package http

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/go-backend-template/internal/infrastructure/logging"
)

// Probe reports whether a dependency is ready to serve. The name appears
// in the readiness payload; a non-nil error marks the service not ready.
type Probe struct {
	Name  string
	Check func() error
}

// Handlers contains all HTTP handlers
type Handlers struct {
	service string
	version string
	start   time.Time
	probes  []Probe
}

// NewHandlers creates a new handler set
func NewHandlers(service, version string, probes ...Probe) *Handlers {
	return &Handlers{
		service: service,
		version: version,
		start:   time.Now(),
		probes:  probes,
	}
}

// Root reports basic service identity
func (h *Handlers) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "online",
		"service": h.service,
		"version": h.version,
	})
}

// Health handles liveness checks
func (h *Handlers) Health(c *gin.Context) {
	hostname, _ := os.Hostname()
	c.JSON(http.StatusOK, gin.H{
		"status":         "healthy",
		"uptime_seconds": time.Since(h.start).Seconds(),
		"pid":            os.Getpid(),
		"hostname":       hostname,
	})
}

// Ready handles readiness checks: every registered probe must pass
func (h *Handlers) Ready(c *gin.Context) {
	checks := gin.H{}
	ready := true

	for _, probe := range h.probes {
		if err := probe.Check(); err != nil {
			checks[probe.Name] = err.Error()
			ready = false
		} else {
			checks[probe.Name] = "ok"
		}
	}

	status := http.StatusOK
	if !ready {
		status = http.StatusServiceUnavailable
		logging.FromContext(c.Request.Context()).WarnCtx(c.Request.Context(),
			"readiness check failed", zap.Any("checks", checks))
	}

	c.JSON(status, gin.H{
		"ready":  ready,
		"checks": checks,
	})
}

// NotFound maps unknown routes to a JSON 404
func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{
		"error": "not found",
		"path":  c.Request.URL.Path,
	})
}
