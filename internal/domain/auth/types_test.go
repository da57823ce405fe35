package auth

import (
	"errors"
	"fmt"
	"testing"
	"time"
)

func TestSession_Expired(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		expiresAt time.Time
		expected  bool
	}{
		{"future expiry", now.Add(time.Hour), false},
		{"past expiry", now.Add(-time.Hour), true},
		{"exactly now", now, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Session{ExpiresAt: tt.expiresAt}
			if got := s.Expired(now); got != tt.expected {
				t.Errorf("Expired() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{Field: "email", Message: "must be a valid address"}
	if err.Error() != "email: must be a valid address" {
		t.Errorf("unexpected message: %q", err.Error())
	}

	var ve *ValidationError
	if !errors.As(error(err), &ve) {
		t.Error("expected errors.As to match ValidationError")
	}
}

func TestDataAccessError_Unwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := &DataAccessError{Cause: cause}

	if !errors.Is(err, cause) {
		t.Error("expected errors.Is to reach the cause")
	}
	if errors.Is(err, ErrNoSuchAccount) || errors.Is(err, ErrBadPassword) {
		t.Error("data access failure must not match credential failures")
	}
}

func TestSentinelFailuresAreDistinct(t *testing.T) {
	sentinels := []error{ErrNoSuchAccount, ErrBadPassword, ErrInvalidToken}
	for i, a := range sentinels {
		for j, b := range sentinels {
			if i == j {
				continue
			}
			if errors.Is(fmt.Errorf("wrapped: %w", a), b) {
				t.Errorf("sentinel %v unexpectedly matches %v", a, b)
			}
		}
	}
}
