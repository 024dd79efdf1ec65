package middleware

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/langexchange/langexchange-api/pkg/profiling"
)

// ProfileLabelsMiddleware labels profile samples taken while a request is
// served with its route template
func ProfileLabelsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		profiling.WithRoute(c.Request.Context(), route, func(ctx context.Context) {
			c.Request = c.Request.WithContext(ctx)
			c.Next()
		})
	}
}
