package sessiontoken

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/acme/invoicing-ui/internal/domain/auth"
	"github.com/acme/invoicing-ui/internal/domain/model"
)

var testSecret = []byte("unit-test-signing-secret")

func testUser() *model.User {
	return &model.User{
		ID:    "410544b2-4001-4271-9855-fec4b6a6442a",
		Name:  "Ada Lovelace",
		Email: "ada@example.com",
	}
}

func TestCodec_New_RequiresSecret(t *testing.T) {
	_, err := New(Options{})
	require.Error(t, err)
}

func TestCodec_RoundTrip(t *testing.T) {
	codec, err := New(Options{Secret: testSecret, TTL: time.Hour})
	require.NoError(t, err)

	token, err := codec.Issue(testUser())
	require.NoError(t, err)
	require.NotEmpty(t, token)

	sess, err := codec.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "410544b2-4001-4271-9855-fec4b6a6442a", sess.UserID)
	assert.Equal(t, "Ada Lovelace", sess.Name)
	assert.Equal(t, "ada@example.com", sess.Email)
	assert.True(t, sess.ExpiresAt.After(time.Now()))
}

func TestCodec_Verify_RejectsAnyByteFlip(t *testing.T) {
	codec, err := New(Options{Secret: testSecret, TTL: time.Hour})
	require.NoError(t, err)

	token, err := codec.Issue(testUser())
	require.NoError(t, err)

	for i := 0; i < len(token); i++ {
		raw := []byte(token)
		raw[i] ^= 0x01
		if string(raw) == token {
			continue
		}
		_, verifyErr := codec.Verify(string(raw))
		assert.ErrorIs(t, verifyErr, domainauth.ErrInvalidToken, "flipped byte at %d", i)
	}
}

func TestCodec_Verify_RejectsExpired(t *testing.T) {
	issuedAt := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	issuer, err := New(Options{
		Secret: testSecret,
		TTL:    time.Hour,
		Now:    func() time.Time { return issuedAt },
	})
	require.NoError(t, err)

	token, err := issuer.Issue(testUser())
	require.NoError(t, err)

	// Same secret, clock advanced past the expiry.
	verifier, err := New(Options{
		Secret: testSecret,
		Now:    func() time.Time { return issuedAt.Add(2 * time.Hour) },
	})
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.ErrorIs(t, err, domainauth.ErrInvalidToken)
}

func TestCodec_Verify_RejectsWrongSecret(t *testing.T) {
	issuer, err := New(Options{Secret: testSecret})
	require.NoError(t, err)
	verifier, err := New(Options{Secret: []byte("some-other-secret")})
	require.NoError(t, err)

	token, err := issuer.Issue(testUser())
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.ErrorIs(t, err, domainauth.ErrInvalidToken)
}

func TestCodec_Verify_HostileInputNeverPanics(t *testing.T) {
	codec, err := New(Options{Secret: testSecret})
	require.NoError(t, err)

	inputs := []string{
		"",
		"   ",
		"not-a-token",
		"a.b",
		"a.b.c",
		"..",
		strings.Repeat("A", 10_000),
		"eyJhbGciOiJub25lIn0.eyJzdWIiOiJ1LTEifQ.", // alg=none
		"\x00\xff\xfe",
	}

	for _, input := range inputs {
		_, verifyErr := codec.Verify(input)
		assert.ErrorIs(t, verifyErr, domainauth.ErrInvalidToken, "input %q", input)
	}
}

func TestCodec_Issue_RequiresUser(t *testing.T) {
	codec, err := New(Options{Secret: testSecret})
	require.NoError(t, err)

	_, err = codec.Issue(nil)
	assert.Error(t, err)

	_, err = codec.Issue(&model.User{})
	assert.Error(t, err)
}
