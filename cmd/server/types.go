package main

import (
	"codeberg.org/adforge/server/adforge/accounts"
	"codeberg.org/adforge/server/adforge/copies"
	"codeberg.org/adforge/server/internal/adgen"
	"codeberg.org/adforge/server/internal/config"
	"codeberg.org/adforge/server/internal/llm"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ulule/limiter/v3"
)

// holds all dependencies and state for the API server
type Server struct {
	db          *pgxpool.Pool
	config      *config.Config
	accountRepo *accounts.Repository
	copyRepo    *copies.Repository
	generator   llm.TextGenerator
	service     *adgen.Service
	rateLimiter *limiter.Limiter
	router      *gin.Engine
}
