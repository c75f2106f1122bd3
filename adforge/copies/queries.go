package copies

const (
	queryInsertCopy = `
		INSERT INTO generated_copies (id, account_id, headline, body, call_to_action, targeting, recommended_budget, model)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at
	`

	queryListByAccount = `
		SELECT id, account_id, headline, body, call_to_action, targeting, recommended_budget, model, created_at
		FROM generated_copies
		WHERE account_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	queryCountByAccount = `
		SELECT COUNT(*)
		FROM generated_copies
		WHERE account_id = $1
	`
)
