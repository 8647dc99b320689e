package middleware

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tastebase/backend/internal/logger"
)

// Recovery converts handler panics into a 500 response instead of
// letting them crash the process.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(io.Discard, func(c *gin.Context, err interface{}) {
		panicRecoveries.Inc()
		logger.Log.Errorw("panic recovered",
			"error", err,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
		)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"message": "Internal server error",
		})
	})
}
