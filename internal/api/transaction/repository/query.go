package transactionRepository

const (
	queryCreateTransaction = `
		INSERT INTO transactions (
			id,
			user_id,
			type,
			amount,
			category,
			note,
			date,
			wallet_id,
			created_at,
			destroyed
		) VALUES (
			:id,
			:user_id,
			:type,
			:amount,
			:category,
			:note,
			:date,
			:wallet_id,
			:created_at,
			FALSE
		)
	`

	// Lookup does not filter on destroyed: callers decide how a soft-deleted
	// record is surfaced.
	queryGetTransactionByID = `
		SELECT
			id,
			user_id,
			type,
			amount,
			category,
			note,
			date,
			wallet_id,
			created_at,
			updated_at,
			destroyed
		FROM transactions
		WHERE id = :id
	`

	querySelectTransactions = `
		SELECT
			id,
			user_id,
			type,
			amount,
			category,
			note,
			date,
			wallet_id,
			created_at,
			updated_at,
			destroyed
		FROM transactions
	`

	queryCountTransactions = `
		SELECT COUNT(*)
		FROM transactions
	`

	querySoftDeleteTransaction = `
		UPDATE transactions
		SET
			destroyed = TRUE,
			updated_at = :updated_at
		WHERE id = :id
	`

	queryStatisticsByType = `
		SELECT
			type,
			COALESCE(SUM(amount), 0) AS total,
			COUNT(*) AS count
		FROM transactions
		WHERE
			user_id = :user_id
			AND destroyed = FALSE
			AND date >= :date_from
			AND date <= :date_to
		GROUP BY type
	`

	queryStatisticsByCategory = `
		SELECT
			type,
			category,
			COALESCE(SUM(amount), 0) AS total,
			COUNT(*) AS count
		FROM transactions
		WHERE
			user_id = :user_id
			AND destroyed = FALSE
			AND date >= :date_from
			AND date <= :date_to
		GROUP BY type, category
		ORDER BY total DESC
	`
)
