package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/langexchange/langexchange-api/pkg/logger"
)

func init() {
	gin.SetMode(gin.TestMode)

	if err := logger.Initialize(logger.Config{
		Level:       "debug",
		Environment: "test",
	}); err != nil {
		panic(err)
	}
}
