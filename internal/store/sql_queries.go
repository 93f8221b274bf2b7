package store

const (
	createUser = `INSERT INTO users (login, password_hash, name, role)
    VALUES ($1, $2, $3, $4)
    RETURNING user_id, login, password_hash, name, role, created_at;`

	findUserByLogin = `SELECT user_id, login, password_hash, name, role, created_at
    FROM users
    WHERE login = $1;`

	countUsers = `SELECT COUNT(*) FROM users;`
)
