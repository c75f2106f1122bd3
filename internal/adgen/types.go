package adgen

import (
	"context"
	"fmt"
	"time"

	"codeberg.org/adforge/server/adforge/accounts"
	"codeberg.org/adforge/server/adforge/copies"
	"codeberg.org/adforge/server/internal/copywriter"
	"codeberg.org/adforge/server/internal/llm"
)

// loads (or lazily creates) account records
type AccountStore interface {
	FindOrCreate(ctx context.Context, id, email string) (*accounts.Account, error)
}

// persists generated copies atomically with the quota counter
type CopyStore interface {
	CreateCounted(ctx context.Context, accountID string, limit int, c copywriter.Copy, model string) (*copies.Copy, int, error)
	ListByAccount(ctx context.Context, accountID string, limit, offset int) ([]copies.Copy, error)
	CountByAccount(ctx context.Context, accountID string) (int, error)
}

// orchestrates the generation request lifecycle: validate, gate on quota,
// invoke the generator, persist and count
type Service struct {
	accounts  AccountStore
	copies    CopyStore
	generator llm.TextGenerator
	limits    accounts.Limits
	timeout   time.Duration
}

// contains the outcome of a successful generation
type Result struct {
	Copy         *copies.Copy
	AdsRemaining int // accounts.Unlimited for unlimited plans
}

// current quota standing for an account
type Usage struct {
	Plan         accounts.Plan `json:"plan"`
	AdsGenerated int           `json:"adsGenerated"`
	Limit        int           `json:"limit"`
	Remaining    int           `json:"remaining"`
	LastReset    time.Time     `json:"lastReset"`
}

// reported when an account's monthly generation quota is exhausted.
// Expected business condition, not a system fault.
type QuotaError struct {
	Plan  accounts.Plan
	Limit int
}

func (e *QuotaError) Error() string {
	return fmt.Sprintf("ad generation limit reached for plan %s (%d/month)", e.Plan, e.Limit)
}
