package adgen

import (
	"context"
	"errors"
	"fmt"
	"time"

	"codeberg.org/adforge/server/adforge/accounts"
	"codeberg.org/adforge/server/adforge/copies"
	"codeberg.org/adforge/server/internal/copywriter"
	"codeberg.org/adforge/server/internal/llm"
)

// upper bound on a single generation call
const generationTimeout = 10 * time.Second

func New(accountStore AccountStore, copyStore CopyStore, generator llm.TextGenerator, limits accounts.Limits) *Service {
	return &Service{
		accounts:  accountStore,
		copies:    copyStore,
		generator: generator,
		limits:    limits,
		timeout:   generationTimeout,
	}
}

// runs the full request lifecycle for one generation request. Error types
// carry the outcome class: *copywriter.ValidationError (invalid input,
// nothing consumed), *QuotaError (limit reached), *copywriter.FormatError /
// llm sentinels (upstream failure, quota untouched), anything else is a
// store fault.
func (s *Service) Generate(ctx context.Context, accountID, email string, raw copywriter.Request) (*Result, error) {
	// validation runs before any external call, so malformed input never
	// consumes quota
	req, err := copywriter.Validate(raw)
	if err != nil {
		return nil, err
	}

	// quota gate fails closed: if the account cannot be loaded there is no
	// budget to spend
	account, err := s.accounts.FindOrCreate(ctx, accountID, email)
	if err != nil {
		return nil, fmt.Errorf("failed to load account: %w", err)
	}

	limit := s.limits.LimitFor(account.Plan)

	if limit != accounts.Unlimited && account.AdsGenerated >= limit {
		return nil, &QuotaError{Plan: account.Plan, Limit: limit}
	}

	genCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	resp, err := s.generator.GenerateText(genCtx, llm.TextGenerationRequest{
		SystemPrompt: copywriter.SystemPrompt(),
		Prompt:       copywriter.BuildPrompt(req),
		JSONOutput:   true,
	})

	if err != nil {
		return nil, fmt.Errorf("generation failed: %w", err)
	}

	parsed, err := copywriter.ParseResponse(resp.Text)
	if err != nil {
		// upstream format failure: not a quota-consuming success
		return nil, err
	}

	// single transaction: the copy insert and the counter increment commit
	// together or not at all
	stored, counter, err := s.copies.CreateCounted(ctx, account.ID, limit, *parsed, s.generator.Model())

	if errors.Is(err, accounts.ErrLimitReached) {
		// a concurrent request consumed the last slot after our gate check
		return nil, &QuotaError{Plan: account.Plan, Limit: limit}
	}

	if err != nil {
		return nil, fmt.Errorf("failed to persist copy: %w", err)
	}

	remaining := accounts.Unlimited
	if limit != accounts.Unlimited {
		remaining = limit - counter
	}

	return &Result{Copy: stored, AdsRemaining: remaining}, nil
}

// returns the account's current quota standing, applying the same lazy
// creation and monthly reset as the gate
func (s *Service) Usage(ctx context.Context, accountID, email string) (*Usage, error) {
	account, err := s.accounts.FindOrCreate(ctx, accountID, email)
	if err != nil {
		return nil, fmt.Errorf("failed to load account: %w", err)
	}

	limit := s.limits.LimitFor(account.Plan)

	remaining := accounts.Unlimited
	if limit != accounts.Unlimited {
		remaining = limit - account.AdsGenerated
		if remaining < 0 {
			remaining = 0
		}
	}

	return &Usage{
		Plan:         account.Plan,
		AdsGenerated: account.AdsGenerated,
		Limit:        limit,
		Remaining:    remaining,
		LastReset:    account.LastReset,
	}, nil
}

// lists an account's stored copies, newest first, with the total count
// for pagination
func (s *Service) ListCopies(ctx context.Context, accountID string, limit, offset int) ([]copies.Copy, int, error) {
	stored, err := s.copies.ListByAccount(ctx, accountID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list copies: %w", err)
	}

	total, err := s.copies.CountByAccount(ctx, accountID)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count copies: %w", err)
	}

	return stored, total, nil
}
