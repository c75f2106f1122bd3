package adgen

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"codeberg.org/adforge/server/adforge/accounts"
	"codeberg.org/adforge/server/adforge/copies"
	"codeberg.org/adforge/server/internal/copywriter"
	"codeberg.org/adforge/server/internal/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// implements llm.TextGenerator for testing
type mockGenerator struct {
	generateFunc func(ctx context.Context, req llm.TextGenerationRequest) (*llm.TextGenerationResponse, error)
	calls        int
	mu           sync.Mutex
}

func (m *mockGenerator) GenerateText(ctx context.Context, req llm.TextGenerationRequest) (*llm.TextGenerationResponse, error) {
	m.mu.Lock()
	m.calls++
	m.mu.Unlock()

	if m.generateFunc != nil {
		return m.generateFunc(ctx, req)
	}

	return &llm.TextGenerationResponse{
		Text: `{"headline": "Widgets 30% Cheaper", "body": "Save money today.", "call_to_action": "Shop Now"}`,
	}, nil
}

func (m *mockGenerator) Model() string {
	return "mock-model"
}

func (m *mockGenerator) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.calls
}

// in-memory account and copy store honoring the same transactional
// semantics as the Postgres repositories
type memoryStore struct {
	mu       sync.Mutex
	accounts map[string]*accounts.Account
	copies   []copies.Copy

	findErr   error
	createErr error
}

func newMemoryStore() *memoryStore {
	return &memoryStore{accounts: make(map[string]*accounts.Account)}
}

func (s *memoryStore) FindOrCreate(_ context.Context, id, email string) (*accounts.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.findErr != nil {
		return nil, s.findErr
	}

	account, ok := s.accounts[id]
	if !ok {
		account = &accounts.Account{
			ID:        id,
			Email:     email,
			Plan:      accounts.PlanFree,
			LastReset: time.Now(),
		}
		s.accounts[id] = account
	}

	if accounts.ResetDue(account.LastReset, time.Now()) {
		account.AdsGenerated = 0
		account.LastReset = time.Now()
	}

	snapshot := *account
	return &snapshot, nil
}

func (s *memoryStore) CreateCounted(_ context.Context, accountID string, limit int, c copywriter.Copy, model string) (*copies.Copy, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.createErr != nil {
		return nil, 0, s.createErr
	}

	account, ok := s.accounts[accountID]
	if !ok {
		return nil, 0, fmt.Errorf("account not found")
	}

	if limit >= 0 && account.AdsGenerated >= limit {
		return nil, 0, accounts.ErrLimitReached
	}

	account.AdsGenerated++

	stored := copies.Copy{
		ID:           fmt.Sprintf("copy-%d", len(s.copies)+1),
		AccountID:    accountID,
		Headline:     c.Headline,
		Body:         c.Body,
		CallToAction: c.CallToAction,
		Model:        model,
		CreatedAt:    time.Now(),
	}
	s.copies = append(s.copies, stored)

	return &stored, account.AdsGenerated, nil
}

func (s *memoryStore) ListByAccount(_ context.Context, accountID string, _, _ int) ([]copies.Copy, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var result []copies.Copy

	for _, c := range s.copies {
		if c.AccountID == accountID {
			result = append(result, c)
		}
	}

	return result, nil
}

func (s *memoryStore) CountByAccount(_ context.Context, accountID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0

	for _, c := range s.copies {
		if c.AccountID == accountID {
			count++
		}
	}

	return count, nil
}

func (s *memoryStore) seed(id string, plan accounts.Plan, generated int, lastReset time.Time) {
	s.accounts[id] = &accounts.Account{
		ID:           id,
		Plan:         plan,
		AdsGenerated: generated,
		LastReset:    lastReset,
	}
}

func newTestService(store *memoryStore, gen *mockGenerator) *Service {
	return New(store, store, gen, accounts.DefaultLimits())
}

var validRequest = copywriter.Request{
	Product:  "Acme Widget",
	Audience: "homeowners",
	USP:      "30% cheaper",
	Tone:     "friendly",
	Platform: "facebook",
}

func TestGenerate_Success(t *testing.T) {
	store := newMemoryStore()
	gen := &mockGenerator{}
	svc := newTestService(store, gen)

	result, err := svc.Generate(context.Background(), "user-1", "u@example.com", validRequest)

	require.NoError(t, err)
	assert.Equal(t, "Widgets 30% Cheaper", result.Copy.Headline)
	assert.Equal(t, "Save money today.", result.Copy.Body)
	assert.Equal(t, "Shop Now", result.Copy.CallToAction)
	assert.Equal(t, 4, result.AdsRemaining, "FREE limit 5 minus one generation")
	assert.Equal(t, 1, store.accounts["user-1"].AdsGenerated)
	assert.Len(t, store.copies, 1, "exactly one copy row inserted")
}

func TestGenerate_InvalidInputSkipsExternalCall(t *testing.T) {
	store := newMemoryStore()
	gen := &mockGenerator{}
	svc := newTestService(store, gen)

	_, err := svc.Generate(context.Background(), "user-1", "", copywriter.Request{Product: "Acme"})

	var vErr *copywriter.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, 0, gen.callCount(), "no external call for malformed input")
	assert.Empty(t, store.accounts, "no account row created")
}

func TestGenerate_QuotaExhausted(t *testing.T) {
	store := newMemoryStore()
	store.seed("user-1", accounts.PlanFree, 5, time.Now())
	gen := &mockGenerator{}
	svc := newTestService(store, gen)

	_, err := svc.Generate(context.Background(), "user-1", "", validRequest)

	var qErr *QuotaError
	require.ErrorAs(t, err, &qErr)
	assert.Equal(t, accounts.PlanFree, qErr.Plan)
	assert.Equal(t, 5, qErr.Limit)
	assert.Equal(t, 0, gen.callCount(), "denied requests never reach the generator")
	assert.Equal(t, 5, store.accounts["user-1"].AdsGenerated, "counter unchanged")
}

func TestGenerate_MonthlyResetAllows(t *testing.T) {
	store := newMemoryStore()
	store.seed("user-1", accounts.PlanFree, 5, time.Now().AddDate(0, -1, 0))
	gen := &mockGenerator{}
	svc := newTestService(store, gen)

	result, err := svc.Generate(context.Background(), "user-1", "", validRequest)

	require.NoError(t, err, "stale counter resets before the gate compares")
	assert.Equal(t, 4, result.AdsRemaining)
	assert.Equal(t, 1, store.accounts["user-1"].AdsGenerated)
}

func TestGenerate_UpstreamFormatErrorConsumesNothing(t *testing.T) {
	store := newMemoryStore()
	gen := &mockGenerator{
		generateFunc: func(_ context.Context, _ llm.TextGenerationRequest) (*llm.TextGenerationResponse, error) {
			// missing call_to_action
			return &llm.TextGenerationResponse{Text: `{"headline": "H", "body": "B"}`}, nil
		},
	}
	svc := newTestService(store, gen)

	_, err := svc.Generate(context.Background(), "user-1", "", validRequest)

	var fErr *copywriter.FormatError
	require.ErrorAs(t, err, &fErr)
	assert.Equal(t, 0, store.accounts["user-1"].AdsGenerated, "quota untouched on format failure")
	assert.Empty(t, store.copies, "nothing persisted")
}

func TestGenerate_UpstreamThrottled(t *testing.T) {
	store := newMemoryStore()
	gen := &mockGenerator{
		generateFunc: func(_ context.Context, _ llm.TextGenerationRequest) (*llm.TextGenerationResponse, error) {
			return nil, fmt.Errorf("API request rejected: %w", llm.ErrThrottled)
		},
	}
	svc := newTestService(store, gen)

	_, err := svc.Generate(context.Background(), "user-1", "", validRequest)

	require.Error(t, err)
	assert.True(t, errors.Is(err, llm.ErrThrottled), "throttle classification survives wrapping")
	assert.Equal(t, 0, store.accounts["user-1"].AdsGenerated)
}

func TestGenerate_GeneratorSeesDeadline(t *testing.T) {
	store := newMemoryStore()
	gen := &mockGenerator{
		generateFunc: func(ctx context.Context, _ llm.TextGenerationRequest) (*llm.TextGenerationResponse, error) {
			deadline, ok := ctx.Deadline()
			assert.True(t, ok, "generation call must carry a deadline")
			assert.LessOrEqual(t, time.Until(deadline), generationTimeout)

			return &llm.TextGenerationResponse{
				Text: `{"headline": "H", "body": "B", "cta": "C"}`,
			}, nil
		},
	}
	svc := newTestService(store, gen)

	_, err := svc.Generate(context.Background(), "user-1", "", validRequest)

	require.NoError(t, err)
}

func TestGenerate_AccountStoreFailureFailsClosed(t *testing.T) {
	store := newMemoryStore()
	store.findErr = fmt.Errorf("connection refused")
	gen := &mockGenerator{}
	svc := newTestService(store, gen)

	_, err := svc.Generate(context.Background(), "user-1", "", validRequest)

	require.Error(t, err)
	assert.Equal(t, 0, gen.callCount(), "gate failure must not allow generation")
}

func TestGenerate_PersistenceFailureRollsBack(t *testing.T) {
	store := newMemoryStore()
	store.seed("user-1", accounts.PlanFree, 0, time.Now())
	store.createErr = fmt.Errorf("disk full")
	gen := &mockGenerator{}
	svc := newTestService(store, gen)

	_, err := svc.Generate(context.Background(), "user-1", "", validRequest)

	require.Error(t, err)
	assert.Equal(t, 0, store.accounts["user-1"].AdsGenerated, "counter must not advance without the copy")
}

func TestGenerate_UnlimitedPlan(t *testing.T) {
	store := newMemoryStore()
	store.seed("user-1", accounts.PlanAgency, 9000, time.Now())
	gen := &mockGenerator{}
	svc := newTestService(store, gen)

	result, err := svc.Generate(context.Background(), "user-1", "", validRequest)

	require.NoError(t, err)
	assert.Equal(t, accounts.Unlimited, result.AdsRemaining)
	assert.Equal(t, 9001, store.accounts["user-1"].AdsGenerated)
}

// with one quota slot left, exactly one of two concurrent requests succeeds
func TestGenerate_RaceForLastSlot(t *testing.T) {
	store := newMemoryStore()
	store.seed("user-1", accounts.PlanFree, 4, time.Now())
	gen := &mockGenerator{}
	svc := newTestService(store, gen)

	var wg sync.WaitGroup

	results := make([]error, 2)

	for i := range results {
		wg.Add(1)

		go func(i int) {
			defer wg.Done()

			_, err := svc.Generate(context.Background(), "user-1", "", validRequest)
			results[i] = err
		}(i)
	}

	wg.Wait()

	var quotaErrors, successes int

	for _, err := range results {
		var qErr *QuotaError

		switch {
		case err == nil:
			successes++
		case errors.As(err, &qErr):
			quotaErrors++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	assert.Equal(t, 1, successes, "exactly one request wins the last slot")
	assert.Equal(t, 1, quotaErrors, "the loser observes the quota error")
	assert.Equal(t, 5, store.accounts["user-1"].AdsGenerated)
	assert.Len(t, store.copies, 1)
}

func TestUsage(t *testing.T) {
	store := newMemoryStore()
	store.seed("user-1", accounts.PlanStarter, 12, time.Now())
	svc := newTestService(store, &mockGenerator{})

	usage, err := svc.Usage(context.Background(), "user-1", "")

	require.NoError(t, err)
	assert.Equal(t, accounts.PlanStarter, usage.Plan)
	assert.Equal(t, 12, usage.AdsGenerated)
	assert.Equal(t, 50, usage.Limit)
	assert.Equal(t, 38, usage.Remaining)
}

func TestUsage_LazyCreate(t *testing.T) {
	store := newMemoryStore()
	svc := newTestService(store, &mockGenerator{})

	usage, err := svc.Usage(context.Background(), "new-user", "n@example.com")

	require.NoError(t, err)
	assert.Equal(t, accounts.PlanFree, usage.Plan)
	assert.Equal(t, 0, usage.AdsGenerated)
	assert.Equal(t, 5, usage.Remaining)
}
