package middleware

import (
	"fmt"
	"io"
	"net/http"
	"runtime/debug"

	"motorsport-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// maxLoggedPanic bounds the panic value written to the log in production
const maxLoggedPanic = 200

// Recovery turns a panic into a 500 JSON response. In production the body is
// generic and the logged value is truncated; otherwise the panic is echoed
// in details and the stack is logged.
func Recovery(production bool) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(io.Discard, func(c *gin.Context, recovered any) {
		msg := fmt.Sprint(recovered)
		log := logger.WithContext(c.Request.Context()).WithFields(map[string]interface{}{
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
		})

		if production {
			if len(msg) > maxLoggedPanic {
				msg = msg[:maxLoggedPanic]
			}
			log.WithField("panic", msg).Error("panic recovered")
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}

		log.WithField("panic", msg).WithField("stack", string(debug.Stack())).Error("panic recovered")
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":   "Internal server error",
			"details": msg,
		})
	})
}
