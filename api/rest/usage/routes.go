package usage

import (
	"codeberg.org/adforge/server/internal/auth"
	"github.com/gin-gonic/gin"
)

// registers quota usage routes
func RegisterRoutes(router *gin.RouterGroup, service UsageReader) {
	router.GET("/usage", auth.AuthMiddleware(), Handler(service))
}
