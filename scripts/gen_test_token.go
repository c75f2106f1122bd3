package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"codeberg.org/adforge/server/adforge/accounts"
	"codeberg.org/adforge/server/internal/auth"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

func main() {
	// load environment
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	// connect to database
	dbConnString := os.Getenv("DATABASE_URL")
	if dbConnString == "" {
		log.Fatal("DATABASE_URL not set")
	}

	dbPool, err := pgxpool.New(context.Background(), dbConnString)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer dbPool.Close()

	ctx := context.Background()
	accountRepo := accounts.NewRepository(dbPool)

	// create or find test account
	testID := "test:test-user-123"
	testEmail := "test@adforge.dev"

	account, err := accountRepo.FindOrCreate(ctx, testID, testEmail)
	if err != nil {
		log.Fatalf("Failed to create test account: %v", err)
	}

	fmt.Printf("✅ Test account: %s (plan: %s, generated: %d)\n",
		account.ID, account.Plan, account.AdsGenerated)

	// generate JWT token
	token, err := auth.GenerateJWT(account.ID, account.Email)
	if err != nil {
		log.Fatalf("Failed to generate JWT: %v", err)
	}

	fmt.Printf("\n🔑 Test JWT Token:\n%s\n\n", token)
	fmt.Printf("Export this token for testing:\nexport TEST_TOKEN=\"%s\"\n", token)
}
