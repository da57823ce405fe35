//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import "time"

// User represents an account that can sign in to the dashboard.
// Password holds the bcrypt hash, never the plaintext. It is tagged db-only
// so it can never leak through a JSON surface.
type User struct {
	ID        string    `json:"id"         db:"id"`
	Name      string    `json:"name"       db:"name"`
	Email     string    `json:"email"      db:"email"`
	Password  string    `json:"-"          db:"password"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// CreateUserRequest represents parameters to create a User.
// Password is the plaintext; the service hashes it before storage.
type CreateUserRequest struct {
	Name     string
	Email    string
	Password string
}
