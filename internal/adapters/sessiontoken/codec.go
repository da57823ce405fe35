// Package sessiontoken issues and verifies stateless signed session tokens.
// Tokens are HS256 JWTs carrying the user's identity and expiry; there is no
// server-side session record, so possession of a valid token is the session.
package sessiontoken

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	domainauth "github.com/acme/invoicing-ui/internal/domain/auth"
	"github.com/acme/invoicing-ui/internal/domain/model"
	"github.com/acme/invoicing-ui/internal/ports"
)

const defaultTTL = 12 * time.Hour

// claims embeds the registered claims plus the user identity fields.
type claims struct {
	jwt.RegisteredClaims
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Options configures a Codec.
type Options struct {
	// Secret signs and verifies tokens. Required.
	Secret []byte
	// TTL is the validity window for issued tokens. Defaults to 12h.
	TTL time.Duration
	// Now overrides the clock, useful for tests. Defaults to time.Now.
	Now func() time.Time
}

// Codec implements ports.TokenCodec with HS256-signed JWTs.
type Codec struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

var _ ports.TokenCodec = (*Codec)(nil)

// New creates a Codec. The signing secret is required so tokens can never be
// verified against an empty key.
func New(opts Options) (*Codec, error) {
	if len(opts.Secret) == 0 {
		return nil, errors.New("session token secret is required")
	}
	ttl := opts.TTL
	if ttl <= 0 {
		ttl = defaultTTL
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Codec{secret: opts.Secret, ttl: ttl, now: now}, nil
}

// Issue signs a token for the given user with the configured TTL.
func (c *Codec) Issue(user *model.User) (string, error) {
	if user == nil {
		return "", errors.New("user is required")
	}
	if strings.TrimSpace(user.ID) == "" {
		return "", errors.New("user id is required")
	}

	now := c.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		RegisteredClaims: jwt.RegisteredClaims{
			// Unique token ID so two logins in the same second still produce
			// distinct tokens.
			ID:        uuid.NewString(),
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
		Name:  user.Name,
		Email: user.Email,
	})

	return token.SignedString(c.secret)
}

// Verify parses and validates a token, returning the session it carries.
// Malformed, tampered, or expired tokens all return auth.ErrInvalidToken;
// callers cannot distinguish why a token failed and must treat the session
// as absent.
func (c *Codec) Verify(tokenString string) (domainauth.Session, error) {
	if strings.TrimSpace(tokenString) == "" {
		return domainauth.Session{}, domainauth.ErrInvalidToken
	}

	parsed := &claims{}
	token, err := jwt.ParseWithClaims(tokenString, parsed,
		func(_ *jwt.Token) (any, error) { return c.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(c.now),
	)
	if err != nil || !token.Valid {
		return domainauth.Session{}, domainauth.ErrInvalidToken
	}

	// Tokens without a subject or expiry are rejected outright; the parser
	// accepts a missing exp claim but a session must always expire.
	if parsed.Subject == "" || parsed.ExpiresAt == nil {
		return domainauth.Session{}, domainauth.ErrInvalidToken
	}

	return domainauth.Session{
		UserID:    parsed.Subject,
		Name:      parsed.Name,
		Email:     parsed.Email,
		ExpiresAt: parsed.ExpiresAt.Time,
	}, nil
}
