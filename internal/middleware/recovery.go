package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/langexchange/langexchange-api/pkg/logger"
)

// InternalErrorMessage is the body of every unclassified failure
const InternalErrorMessage = "Internal server error"

// RecoveryMiddleware is the top-level fault boundary. A panic in any later
// handler is logged and answered with a generic 500.
func RecoveryMiddleware() gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(nil, func(c *gin.Context, recovered interface{}) {
		logger.Error("Recovered from panic",
			zap.Any("panic", recovered),
			zap.String("method", c.Request.Method),
			zap.String("route", c.FullPath()),
			zap.Stack("stack"))
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": InternalErrorMessage})
	})
}
