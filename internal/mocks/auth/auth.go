package auth

// Package auth contains simple hand-written test doubles for auth ports.
// These are lightweight and suitable for unit tests without codegen.

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/acme/invoicing-ui/internal/data"
	domainauth "github.com/acme/invoicing-ui/internal/domain/auth"
	"github.com/acme/invoicing-ui/internal/domain/model"
	"github.com/acme/invoicing-ui/internal/ports"
)

// Ensure compile-time conformance to ports.
var (
	_ ports.UserRepository = (*MemoryUserRepo)(nil)
	_ ports.TokenCodec     = (*MockTokenCodec)(nil)
)

// MemoryUserRepo is an in-memory user repository for unit tests.
// Function fields override individual methods; call counters let tests assert
// that validation short-circuits before any lookup.
type MemoryUserRepo struct {
	GetByEmailFunc func(ctx context.Context, email string) (*model.User, error)
	CreateFunc     func(ctx context.Context, req *model.CreateUserRequest, passwordHash string) (*model.User, error)

	mu              sync.Mutex
	usersByEmail    map[string]model.User
	GetByEmailCalls int
}

// NewMemoryUserRepo creates an empty in-memory user repository.
func NewMemoryUserRepo() *MemoryUserRepo {
	return &MemoryUserRepo{usersByEmail: make(map[string]model.User)}
}

// Add stores a user keyed by exact email.
func (m *MemoryUserRepo) Add(user model.User) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.usersByEmail[user.Email] = user
}

func (m *MemoryUserRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	m.mu.Lock()
	m.GetByEmailCalls++
	m.mu.Unlock()

	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	user, ok := m.usersByEmail[email]
	if !ok {
		return nil, data.ErrUserNotFound
	}
	return &user, nil
}

func (m *MemoryUserRepo) Create(
	ctx context.Context,
	req *model.CreateUserRequest,
	passwordHash string,
) (*model.User, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, req, passwordHash)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.usersByEmail[req.Email]; exists {
		return nil, data.ErrUserEmailExists
	}
	user := model.User{
		ID:       "user-" + req.Email,
		Name:     req.Name,
		Email:    req.Email,
		Password: passwordHash,
	}
	m.usersByEmail[req.Email] = user
	return &user, nil
}

// MockTokenCodec is a deterministic token codec for unit tests.
// Issued tokens are "token:<id>:<name>:<email>" and verify back to a session;
// anything else fails verification.
type MockTokenCodec struct {
	IssueFunc  func(user *model.User) (string, error)
	VerifyFunc func(token string) (domainauth.Session, error)

	// TTL controls the expiry stamped on verified sessions. Defaults to 1h.
	TTL time.Duration
}

const mockTokenPrefix = "token:"

func (m *MockTokenCodec) Issue(user *model.User) (string, error) {
	if m.IssueFunc != nil {
		return m.IssueFunc(user)
	}
	return mockTokenPrefix + user.ID + ":" + user.Name + ":" + user.Email, nil
}

func (m *MockTokenCodec) Verify(token string) (domainauth.Session, error) {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(token)
	}

	rest, ok := strings.CutPrefix(token, mockTokenPrefix)
	if !ok {
		return domainauth.Session{}, domainauth.ErrInvalidToken
	}
	parts := strings.SplitN(rest, ":", 3)
	if len(parts) != 3 || parts[0] == "" {
		return domainauth.Session{}, domainauth.ErrInvalidToken
	}

	ttl := m.TTL
	if ttl <= 0 {
		ttl = time.Hour
	}
	return domainauth.Session{
		UserID:    parts[0],
		Name:      parts[1],
		Email:     parts[2],
		ExpiresAt: time.Now().Add(ttl),
	}, nil
}
