package entity

import "time"

type User struct {
	ID        string    `db:"id"`
	Email     string    `db:"email"`
	Password  string    `db:"password"`
	Username  string    `db:"username"`
	Avatar    string    `db:"avatar"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
	Destroyed bool      `db:"destroyed"`
}

// UserLoginData is the identity extracted from a verified access token.
type UserLoginData struct {
	ID       string
	Username string
	Email    string
}
