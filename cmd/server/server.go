package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"codeberg.org/adforge/server/adforge/accounts"
	"codeberg.org/adforge/server/adforge/copies"
	"codeberg.org/adforge/server/internal/adgen"
	"codeberg.org/adforge/server/internal/config"
	"codeberg.org/adforge/server/internal/llm"
	"codeberg.org/adforge/server/internal/logger"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// default per-client rate for the generation endpoint, limiter format
const defaultGenerateRate = "5-M"

// creates and configures a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	ctx := context.Background()

	poolConfig, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	// keep the pool small, managed Postgres poolers cap connections low
	poolConfig.MaxConns = 5
	poolConfig.MinConns = 1
	poolConfig.MaxConnLifetime = 30 * time.Minute
	poolConfig.MaxConnIdleTime = 5 * time.Minute
	poolConfig.HealthCheckPeriod = 1 * time.Minute

	// PgBouncer in transaction mode doesn't support prepared statements,
	// which causes connections to hang on subsequent queries
	poolConfig.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeSimpleProtocol

	db, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create database pool: %w", err)
	}

	if err := db.Ping(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	accountRepo := accounts.NewRepository(db)
	copyRepo := copies.NewRepository(db, accountRepo)

	generator, err := llm.NewTextGenerator()
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create text generator: %w", err)
	}

	limits := accounts.LimitsFromEnv()

	logger.Info("plan limits loaded",
		"free", limits[accounts.PlanFree],
		"starter", limits[accounts.PlanStarter],
		"pro", limits[accounts.PlanPro],
		"agency", limits[accounts.PlanAgency],
	)

	service := adgen.New(accountRepo, copyRepo, generator, limits)

	rateLimiter, err := newGenerateRateLimiter()
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create rate limiter: %w", err)
	}

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()
	router.HandleMethodNotAllowed = true

	server := &Server{
		db:          db,
		config:      cfg,
		accountRepo: accountRepo,
		copyRepo:    copyRepo,
		generator:   generator,
		service:     service,
		rateLimiter: rateLimiter,
		router:      router,
	}

	RegisterRoutes(router, server)

	return server, nil
}

// builds the per-client limiter for the generation endpoint. In-memory
// store: limits are per-instance, which is fine for a single replica
func newGenerateRateLimiter() (*limiter.Limiter, error) {
	format := os.Getenv("GENERATE_RATE_LIMIT")
	if format == "" {
		format = defaultGenerateRate
	}

	rate, err := limiter.NewRateFromFormatted(format)
	if err != nil {
		return nil, fmt.Errorf("invalid GENERATE_RATE_LIMIT %q: %w", format, err)
	}

	return limiter.New(memory.NewStore(), rate), nil
}
