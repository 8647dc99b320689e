package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/tastebase/backend/internal/logger"
)

// RequestIDKey is the context key under which the request ID is stored.
const RequestIDKey = "requestID"

// RequestLogger generates a unique ID for each request, exposes it
// through the X-Request-ID header and logs the request once completed.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		reqID := uuid.New().String()
		c.Set(RequestIDKey, reqID)
		c.Writer.Header().Set("X-Request-ID", reqID)

		start := time.Now()
		c.Next()

		logger.Log.Infow("request",
			"request_id", reqID,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
			"response_size", c.Writer.Size(),
		)
	}
}
