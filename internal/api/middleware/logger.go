package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/go-backend-template/internal/infrastructure/logging"
)

// RequestLogger emits one structured record per completed request. It pulls
// the request-scoped logger from the context, so the record carries the
// request_id and, when a span is active, the trace identifiers.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		ctx := c.Request.Context()
		logger := logging.FromContext(ctx)

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}

		switch {
		case c.Writer.Status() >= 500:
			logger.ErrorCtx(ctx, "request failed", fields...)
		case c.Writer.Status() >= 400:
			logger.WarnCtx(ctx, "request completed", fields...)
		default:
			logger.InfoCtx(ctx, "request completed", fields...)
		}
	}
}
