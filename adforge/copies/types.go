package copies

import (
	"time"

	"codeberg.org/adforge/server/adforge/accounts"
	"codeberg.org/adforge/server/internal/copywriter"
	"github.com/jackc/pgx/v5/pgxpool"
)

// handles generated-copy database operations
type Repository struct {
	db       *pgxpool.Pool
	accounts *accounts.Repository
}

// a stored ad copy, owned by exactly one account. Never mutated after
// creation.
type Copy struct {
	ID                string                `json:"id"`
	AccountID         string                `json:"-"`
	Headline          string                `json:"headline"`
	Body              string                `json:"body"`
	CallToAction      string                `json:"callToAction"`
	Targeting         *copywriter.Targeting `json:"targeting,omitempty"`
	RecommendedBudget string                `json:"recommendedBudget,omitempty"`
	Model             string                `json:"model,omitempty"`
	CreatedAt         time.Time             `json:"created_at"`
}
