package accounts

import (
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// handles account database operations
type Repository struct {
	db *pgxpool.Pool
}

// subscription plan tier
type Plan string

const (
	PlanFree    Plan = "FREE"
	PlanStarter Plan = "STARTER"
	PlanPro     Plan = "PRO"
	PlanAgency  Plan = "AGENCY"
)

// a billing account keyed by the identity provider's subject id. The
// generation counter resets on calendar-month boundaries.
type Account struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Plan         Plan      `json:"plan"`
	AdsGenerated int       `json:"adsGenerated"`
	LastReset    time.Time `json:"lastReset"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
