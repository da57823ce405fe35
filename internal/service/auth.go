package service

import (
	"context"
	"errors"
	"net/mail"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/acme/invoicing-ui/internal/data"
	domainauth "github.com/acme/invoicing-ui/internal/domain/auth"
	"github.com/acme/invoicing-ui/internal/domain/model"
	"github.com/acme/invoicing-ui/internal/ports"
)

// MinPasswordLength is the minimum accepted password length.
const MinPasswordLength = 6

// AuthServiceOptions groups dependencies for AuthService.
type AuthServiceOptions struct {
	Users  ports.UserRepository
	Tokens ports.TokenCodec
}

// AuthService verifies credentials and issues session tokens.
type AuthService struct {
	users  ports.UserRepository
	tokens ports.TokenCodec
}

// NewAuthService constructs a new AuthService.
func NewAuthService(opts AuthServiceOptions) *AuthService {
	return &AuthService{
		users:  opts.Users,
		tokens: opts.Tokens,
	}
}

// VerifyCredentials checks a submitted email/password pair against the stored
// account. Syntactic validation happens first and short-circuits before any
// account lookup, so malformed input never touches storage or hashing.
//
// Failure modes are distinct: *auth.ValidationError for malformed input,
// auth.ErrNoSuchAccount for an unknown email, auth.ErrBadPassword for a
// mismatch, and *auth.DataAccessError for storage trouble.
func (s *AuthService) VerifyCredentials(
	ctx context.Context,
	creds domainauth.Credentials,
) (*model.User, error) {
	if err := validateCredentials(creds); err != nil {
		return nil, err
	}

	user, err := s.users.GetByEmail(ctx, creds.Email)
	if err != nil {
		if errors.Is(err, data.ErrUserNotFound) {
			return nil, domainauth.ErrNoSuchAccount
		}
		return nil, &domainauth.DataAccessError{Cause: err}
	}

	// bcrypt compare is constant-time and covers the per-user salt embedded
	// in the stored hash.
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(creds.Password)) != nil {
		return nil, domainauth.ErrBadPassword
	}

	return user, nil
}

// Login verifies credentials and, on success, issues a signed session token.
func (s *AuthService) Login(
	ctx context.Context,
	creds domainauth.Credentials,
) (string, *model.User, error) {
	user, err := s.VerifyCredentials(ctx, creds)
	if err != nil {
		return "", nil, err
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// validateCredentials applies syntactic checks to the submitted pair.
func validateCredentials(creds domainauth.Credentials) error {
	email := strings.TrimSpace(creds.Email)
	if email == "" {
		return &domainauth.ValidationError{Field: "email", Message: "email is required"}
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return &domainauth.ValidationError{Field: "email", Message: "must be a valid email address"}
	}
	if len(creds.Password) < MinPasswordLength {
		return &domainauth.ValidationError{
			Field:   "password",
			Message: "password must be at least 6 characters",
		}
	}
	return nil
}
