package accounts

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// reported by ConsumeSlot when the guarded increment matched no rows: the
// account's counter already reached its plan limit
var ErrLimitReached = errors.New("monthly ad generation limit reached")

// creates a new account repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// loads the account for a subject id, creating it lazily on the FREE plan.
// A counter from a prior calendar month is reset to zero before the row is
// returned. An empty email gets a placeholder until the identity provider
// resolves one.
func (r *Repository) FindOrCreate(ctx context.Context, id, email string) (*Account, error) {
	if email == "" {
		email = id + "@placeholder.email"
	}

	var account Account

	err := r.db.QueryRow(ctx, queryFindOrCreate, id, email).Scan(
		&account.ID,
		&account.Email,
		&account.Plan,
		&account.AdsGenerated,
		&account.LastReset,
		&account.CreatedAt,
		&account.UpdatedAt,
	)

	if err != nil {
		return nil, err
	}

	return &account, nil
}

// finds an account by its subject id
func (r *Repository) FindByID(ctx context.Context, id string) (*Account, error) {
	var account Account

	err := r.db.QueryRow(ctx, queryFindByID, id).Scan(
		&account.ID,
		&account.Email,
		&account.Plan,
		&account.AdsGenerated,
		&account.LastReset,
		&account.CreatedAt,
		&account.UpdatedAt,
	)

	if err != nil {
		return nil, err
	}

	return &account, nil
}

// increments the generation counter inside the caller's transaction,
// guarded by the plan limit. Returns the post-increment counter, or
// ErrLimitReached when a concurrent request already consumed the last
// slot. A negative limit means unlimited.
func (r *Repository) ConsumeSlot(ctx context.Context, tx pgx.Tx, id string, limit int) (int, error) {
	query := queryConsumeSlot
	args := []any{id, limit}

	if limit < 0 {
		query = queryRecordGeneration
		args = []any{id}
	}

	var counter int

	err := tx.QueryRow(ctx, query, args...).Scan(&counter)

	if errors.Is(err, pgx.ErrNoRows) {
		return 0, ErrLimitReached
	}

	if err != nil {
		return 0, err
	}

	return counter, nil
}

// reports whether a counter last reset at the given time belongs to a
// prior calendar month (or year) relative to now
func ResetDue(lastReset, now time.Time) bool {
	return lastReset.Year() < now.Year() ||
		(lastReset.Year() == now.Year() && lastReset.Month() < now.Month())
}
