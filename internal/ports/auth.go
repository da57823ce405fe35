package ports

// Package ports defines interfaces (hexagonal ports) for auth-related behavior.
// Implementations live in internal/adapters and internal/data; orchestration
// in internal/service.

import (
	"context"

	domainauth "github.com/acme/invoicing-ui/internal/domain/auth"
	"github.com/acme/invoicing-ui/internal/domain/model"
)

// UserRepository looks up and creates accounts.
type UserRepository interface {
	// GetByEmail returns the account for an exact, case-sensitive email match.
	GetByEmail(ctx context.Context, email string) (*model.User, error)

	// Create inserts a new account with an already-hashed password.
	Create(ctx context.Context, req *model.CreateUserRequest, passwordHash string) (*model.User, error)
}

// TokenCodec issues and verifies stateless signed session tokens.
// Tokens are opaque to callers; any modification invalidates them.
type TokenCodec interface {
	// Issue signs a token carrying the user's identity and an expiry.
	Issue(user *model.User) (string, error)

	// Verify parses and validates a token. Malformed, tampered, or expired
	// tokens return domain auth.ErrInvalidToken; callers treat the session
	// as absent.
	Verify(token string) (domainauth.Session, error)
}
