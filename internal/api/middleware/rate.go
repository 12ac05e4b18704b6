package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RateLimitConfig defines rate limiting configuration.
type RateLimitConfig struct {
	RequestsPerSecond int
	Burst             int
}

// DefaultRateLimitConfig returns production-ready rate limit configuration.
func DefaultRateLimitConfig() RateLimitConfig {
	return RateLimitConfig{
		RequestsPerSecond: 100,
		Burst:             200,
	}
}

// clientTTL is how long an idle client keeps its limiter. sweepInterval
// bounds how often the map is scanned for stale entries; the scan runs
// inline under the lock, so it must stay infrequent relative to traffic.
const (
	clientTTL     = 10 * time.Minute
	sweepInterval = time.Minute
)

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// clientLimiter tracks one token bucket per client IP and evicts idle
// entries so the map cannot grow without bound.
type clientLimiter struct {
	mu        sync.Mutex
	cfg       RateLimitConfig
	clients   map[string]*client
	lastSweep time.Time
}

func newClientLimiter(cfg RateLimitConfig) *clientLimiter {
	return &clientLimiter{
		cfg:       cfg,
		clients:   make(map[string]*client),
		lastSweep: time.Now(),
	}
}

// get returns the limiter for ip, creating it on first sight and marking
// the entry live. Stale entries are swept at most once per sweepInterval.
func (cl *clientLimiter) get(ip string, now time.Time) *rate.Limiter {
	cl.mu.Lock()
	defer cl.mu.Unlock()

	if now.Sub(cl.lastSweep) >= sweepInterval {
		cl.sweepLocked(now)
	}

	entry, exists := cl.clients[ip]
	if !exists {
		entry = &client{
			limiter: rate.NewLimiter(rate.Limit(cl.cfg.RequestsPerSecond), cl.cfg.Burst),
		}
		cl.clients[ip] = entry
	}
	entry.lastSeen = now
	return entry.limiter
}

// sweepLocked drops clients idle past the TTL. Callers must hold mu.
func (cl *clientLimiter) sweepLocked(now time.Time) {
	for ip, entry := range cl.clients {
		if now.Sub(entry.lastSeen) >= clientTTL {
			delete(cl.clients, ip)
		}
	}
	cl.lastSweep = now
}

// RateLimit creates a per-IP rate limiting middleware.
func RateLimit(cfg RateLimitConfig) gin.HandlerFunc {
	cl := newClientLimiter(cfg)

	return func(c *gin.Context) {
		if !cl.get(c.ClientIP(), time.Now()).Allow() {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error": "rate limit exceeded",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

// GlobalRateLimit creates a global rate limiting middleware.
func GlobalRateLimit(cfg RateLimitConfig) gin.HandlerFunc {
	limiter := rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.Burst)

	return func(c *gin.Context) {
		if !limiter.Allow() {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error": "rate limit exceeded",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
