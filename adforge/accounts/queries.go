package accounts

const (
	// upsert keyed by subject id. A stale last_reset (prior calendar month)
	// zeroes the counter in the same statement, so the reset-then-compare
	// sequence is atomic with respect to concurrent requests.
	queryFindOrCreate = `
		INSERT INTO accounts (id, email, plan, ads_generated, last_reset)
		VALUES ($1, $2, 'FREE', 0, NOW())
		ON CONFLICT (id)
		DO UPDATE SET
			email = CASE
				WHEN accounts.email LIKE '%@placeholder.email' THEN EXCLUDED.email
				ELSE accounts.email
			END,
			ads_generated = CASE
				WHEN date_trunc('month', accounts.last_reset) < date_trunc('month', NOW()) THEN 0
				ELSE accounts.ads_generated
			END,
			last_reset = CASE
				WHEN date_trunc('month', accounts.last_reset) < date_trunc('month', NOW()) THEN NOW()
				ELSE accounts.last_reset
			END,
			updated_at = NOW()
		RETURNING id, email, plan, ads_generated, last_reset, created_at, updated_at
	`

	queryFindByID = `
		SELECT id, email, plan, ads_generated, last_reset, created_at, updated_at
		FROM accounts
		WHERE id = $1
	`

	// guarded increment: matches zero rows when the account is already at
	// its limit, which is how a concurrent request racing for the last
	// quota slot loses
	queryConsumeSlot = `
		UPDATE accounts
		SET ads_generated = ads_generated + 1, updated_at = NOW()
		WHERE id = $1 AND ads_generated < $2
		RETURNING ads_generated
	`

	// unguarded increment for unlimited plans
	queryRecordGeneration = `
		UPDATE accounts
		SET ads_generated = ads_generated + 1, updated_at = NOW()
		WHERE id = $1
		RETURNING ads_generated
	`
)
