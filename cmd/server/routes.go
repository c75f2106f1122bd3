package main

import (
	"os"
	"strings"
	"time"

	"codeberg.org/adforge/server/api/rest/auth"
	"codeberg.org/adforge/server/api/rest/copies"
	"codeberg.org/adforge/server/api/rest/generate"
	"codeberg.org/adforge/server/api/rest/health"
	"codeberg.org/adforge/server/api/rest/usage"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// sets up all API routes and middleware
func RegisterRoutes(router *gin.Engine, server *Server) {
	router.Use(CORSMiddleware())
	router.GET("/health", health.Handler)

	api := router.Group("/api/v1")

	{
		api.GET("/ping", health.PingHandler)

		auth.RegisterRoutes(api, server.accountRepo)
		generate.RegisterRoutes(api, server.service, server.rateLimiter)
		usage.RegisterRoutes(api, server.service)
		copies.RegisterRoutes(api, server.service)
	}
}

// allows browser clients from the configured frontend origins
func CORSMiddleware() gin.HandlerFunc {
	origins := []string{"http://localhost:3000"}

	if env := os.Getenv("ALLOWED_ORIGINS"); env != "" {
		origins = strings.Split(env, ",")
	}

	return cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	})
}
