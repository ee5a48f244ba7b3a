package middleware

import (
	"net/http"

	"volunteer-hub-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// Recovery returns a middleware that recovers from panics and responds
// with a 500 instead of dropping the connection.
func Recovery() gin.HandlerFunc {
	log := logger.WithComponent("recovery")
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.WithFields(map[string]interface{}{
					"panic":      r,
					"path":       c.Request.URL.Path,
					"method":     c.Request.Method,
					"request_id": c.GetString(RequestIDKey),
				}).Error("panic recovered")

				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error":      "Internal server error",
					"request_id": c.GetString(RequestIDKey),
				})
			}
		}()

		c.Next()
	}
}
