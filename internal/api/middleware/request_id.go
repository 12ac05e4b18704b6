package middleware

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/go-backend-template/internal/infrastructure/logging"
	"github.com/GriffinCanCode/go-backend-template/internal/shared/id"
)

// RequestIDHeader carries the request ID on both requests and responses.
const RequestIDHeader = "X-Request-ID"

// RequestID assigns each request a ULID (honoring an inbound X-Request-ID),
// echoes it on the response, and stores a child logger bound with the
// request_id field on the request context for downstream handlers.
func RequestID(logger *logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader(RequestIDHeader)
		if rid == "" {
			rid = string(id.NewRequestID())
		}
		c.Header(RequestIDHeader, rid)

		reqLogger := logger.WithFields(zap.String("request_id", rid))
		ctx := logging.NewContext(c.Request.Context(), reqLogger)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
