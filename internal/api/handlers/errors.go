package handlers

import (
	"errors"
	"net/http"

	apperrors "motorsport-backend/internal/errors"
	"motorsport-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// maxLoggedError bounds the error text logged for unexpected failures in release mode
const maxLoggedError = 200

// respondError maps a service error onto the HTTP status and JSON error body
func respondError(c *gin.Context, err error) {
	var verr *apperrors.ValidationError
	switch {
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.As(err, &verr):
		body := gin.H{"error": err.Error()}
		if verr.Field != "" {
			body["field"] = verr.Field
		}
		c.JSON(http.StatusBadRequest, body)
	case apperrors.IsAlreadyExists(err):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		log := logger.WithContext(c.Request.Context()).WithFields(map[string]interface{}{
			"method": c.Request.Method,
			"path":   c.FullPath(),
		})
		if gin.Mode() == gin.ReleaseMode {
			msg := err.Error()
			if len(msg) > maxLoggedError {
				msg = msg[:maxLoggedError]
			}
			log.WithField("error", msg).Error("request failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		log.WithError(err).Error("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error", "details": err.Error()})
	}
}
