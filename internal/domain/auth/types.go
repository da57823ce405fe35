package auth

// Package auth contains domain-level types for credential verification and
// sessions. It is pure and free of framework/adapter concerns.

import (
	"errors"
	"time"
)

// Sentinel failures for credential verification and token handling.
// Callers distinguish them with errors.Is; the login surface is responsible
// for collapsing credential-shaped failures into a single user-facing message.
var (
	// ErrNoSuchAccount indicates no account exists for the submitted email.
	ErrNoSuchAccount = errors.New("no account for email")

	// ErrBadPassword indicates the account exists but the password does not match.
	ErrBadPassword = errors.New("password mismatch")

	// ErrInvalidToken indicates a session token that is malformed, tampered
	// with, or expired. Callers treat the session as absent.
	ErrInvalidToken = errors.New("invalid session token")
)

// Credentials carries a submitted email/password pair.
type Credentials struct {
	Email    string
	Password string
}

// ValidationError reports a syntactically invalid credential field.
// It is returned before any account lookup happens.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// DataAccessError wraps a storage failure during verification so it is never
// conflated with a bad-credential outcome.
type DataAccessError struct {
	Cause error
}

func (e *DataAccessError) Error() string {
	return "account lookup failed: " + e.Cause.Error()
}

func (e *DataAccessError) Unwrap() error { return e.Cause }

// Session is the authenticated principal carried inside a signed token.
// It is stateless; there is no server-side session record.
type Session struct {
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the session expiry has passed.
func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.After(now)
}
