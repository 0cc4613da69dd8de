package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// HandlePanics converts handler panics into a 500 response instead of
// dropping the connection.
func HandlePanics() gin.RecoveryFunc {
	return func(c *gin.Context, recovered any) {
		requestID, _ := c.Get(RequestIDKey)
		log.Error().
			Any("panic", recovered).
			Any("request_id", requestID).
			Str("path", c.Request.URL.Path).
			Msg("Handler panicked")

		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
