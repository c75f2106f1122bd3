package generate

import (
	"codeberg.org/adforge/server/internal/auth"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	mgin "github.com/ulule/limiter/v3/drivers/middleware/gin"
)

// registers ad copy generation routes
func RegisterRoutes(router *gin.RouterGroup, service CopyGenerator, rateLimiter *limiter.Limiter) {
	handlers := []gin.HandlerFunc{auth.AuthMiddleware()}

	if rateLimiter != nil {
		handlers = append(handlers, mgin.NewMiddleware(rateLimiter))
	}

	handlers = append(handlers, Handler(service))

	router.POST("/generate", handlers...)
}
