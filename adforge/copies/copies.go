package copies

import (
	"context"
	"encoding/json"
	"fmt"

	"codeberg.org/adforge/server/adforge/accounts"
	"codeberg.org/adforge/server/internal/copywriter"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// creates a new copy repository
func NewRepository(db *pgxpool.Pool, accountRepo *accounts.Repository) *Repository {
	return &Repository{db: db, accounts: accountRepo}
}

// stores a generated copy and consumes one quota slot in a single
// transaction. Either both effects commit or neither does: a persistence
// failure rolls the counter back, and a lost race for the last quota slot
// (accounts.ErrLimitReached) rolls the insert back. Returns the stored copy
// and the account's post-increment counter.
func (r *Repository) CreateCounted(
	ctx context.Context,
	accountID string,
	limit int,
	c copywriter.Copy,
	model string,
) (*Copy, int, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer tx.Rollback(ctx) //nolint:errcheck // no-op after commit

	// counter first: the increment is the authoritative quota signal
	counter, err := r.accounts.ConsumeSlot(ctx, tx, accountID, limit)
	if err != nil {
		return nil, 0, err
	}

	stored := &Copy{
		ID:                uuid.New().String(),
		AccountID:         accountID,
		Headline:          c.Headline,
		Body:              c.Body,
		CallToAction:      c.CallToAction,
		Targeting:         c.Targeting,
		RecommendedBudget: c.RecommendedBudget,
		Model:             model,
	}

	var targeting []byte

	if c.Targeting != nil {
		targeting, err = json.Marshal(c.Targeting)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to marshal targeting: %w", err)
		}
	}

	err = tx.QueryRow(
		ctx,
		queryInsertCopy,
		stored.ID,
		stored.AccountID,
		stored.Headline,
		stored.Body,
		stored.CallToAction,
		targeting,
		nullable(stored.RecommendedBudget),
		nullable(stored.Model),
	).Scan(&stored.CreatedAt)

	if err != nil {
		return nil, 0, fmt.Errorf("failed to insert copy: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, 0, fmt.Errorf("failed to commit: %w", err)
	}

	return stored, counter, nil
}

// lists an account's stored copies, newest first
func (r *Repository) ListByAccount(ctx context.Context, accountID string, limit, offset int) ([]Copy, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}

	if offset < 0 {
		offset = 0
	}

	rows, err := r.db.Query(ctx, queryListByAccount, accountID, limit, offset)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var result []Copy

	for rows.Next() {
		var (
			c         Copy
			targeting []byte
			budget    *string
			model     *string
		)

		err := rows.Scan(
			&c.ID,
			&c.AccountID,
			&c.Headline,
			&c.Body,
			&c.CallToAction,
			&targeting,
			&budget,
			&model,
			&c.CreatedAt,
		)

		if err != nil {
			return nil, err
		}

		if len(targeting) > 0 {
			c.Targeting = &copywriter.Targeting{}
			if err := json.Unmarshal(targeting, c.Targeting); err != nil {
				c.Targeting = nil // tolerate rows written before the schema settled
			}
		}

		if budget != nil {
			c.RecommendedBudget = *budget
		}

		if model != nil {
			c.Model = *model
		}

		result = append(result, c)
	}

	return result, rows.Err()
}

// returns the number of copies stored for an account
func (r *Repository) CountByAccount(ctx context.Context, accountID string) (int, error) {
	var count int

	err := r.db.QueryRow(ctx, queryCountByAccount, accountID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count copies: %w", err)
	}

	return count, nil
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}
