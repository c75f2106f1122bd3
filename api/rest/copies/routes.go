package copies

import (
	"codeberg.org/adforge/server/internal/auth"
	"github.com/gin-gonic/gin"
)

// registers stored copy routes
func RegisterRoutes(router *gin.RouterGroup, service CopyLister) {
	router.GET("/copies", auth.AuthMiddleware(), ListHandler(service))
}
