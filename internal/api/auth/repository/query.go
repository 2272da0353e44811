package authRepository

const (
	queryCreateUser = `
		INSERT INTO users (
			id,
			email,
			password,
			username,
			created_at,
			destroyed
		) VALUES (
			:id,
			:email,
			:password,
			:username,
			:created_at,
			FALSE
		)
	`

	queryGetUserByID = `
		SELECT
			id,
			email,
			password,
			username,
			avatar,
			created_at,
			updated_at,
			destroyed
		FROM users
		WHERE id = :id AND destroyed = FALSE
	`

	queryGetUserByEmail = `
		SELECT
			id,
			email,
			password,
			username,
			avatar,
			created_at,
			updated_at,
			destroyed
		FROM users
		WHERE email = :email AND destroyed = FALSE
	`

	queryEmailExists = `
		SELECT COUNT(*)
		FROM users
		WHERE email = :email AND destroyed = FALSE
	`
)
