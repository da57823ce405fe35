package config

import "time"

const (
	defaultSessionTTL = 12 * time.Hour

	// bcrypt cost bounds accepted by golang.org/x/crypto/bcrypt.
	minBcryptCost = 4
	maxBcryptCost = 31
)

// AuthConfig groups session and credential configuration.
type AuthConfig struct {
	// SessionSecret signs session tokens. Required; the server refuses to
	// start without it so sessions can never be forged with a known key.
	SessionSecret string `env:"AUTH_SESSION_SECRET,required"`

	// SessionTTL is how long an issued session token stays valid.
	SessionTTL time.Duration `env:"AUTH_SESSION_TTL" envDefault:"12h"`

	// BcryptCost is the work factor for password hashing when creating
	// or seeding accounts. Stored hashes carry their own cost, so changing
	// this does not invalidate existing credentials.
	BcryptCost int `env:"AUTH_BCRYPT_COST" envDefault:"10"`
}

// Sanitize applies guardrails to authentication configuration values.
func (a *AuthConfig) Sanitize() {
	if a.SessionTTL <= 0 {
		a.SessionTTL = defaultSessionTTL
	}
	if a.BcryptCost < minBcryptCost {
		a.BcryptCost = minBcryptCost
	}
	if a.BcryptCost > maxBcryptCost {
		a.BcryptCost = maxBcryptCost
	}
}
