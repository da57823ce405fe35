package httpx

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acme/invoicing-ui/internal/adapters/sessiontoken"
	"github.com/acme/invoicing-ui/internal/domain/model"
)

func newTestCodec(t *testing.T) *sessiontoken.Codec {
	t.Helper()
	codec, err := sessiontoken.New(sessiontoken.Options{
		Secret: []byte("test-secret-test-secret-test-secret!"),
		TTL:    time.Hour,
	})
	require.NoError(t, err)
	return codec
}

func issueTestToken(t *testing.T, codec *sessiontoken.Codec) string {
	t.Helper()
	token, err := codec.Issue(&model.User{
		ID:    "410544b2-4001-4271-9855-fec4b6a6442a",
		Name:  "Test User",
		Email: "user@nextmail.com",
	})
	require.NoError(t, err)
	return token
}

// guardedHandler wires the session and guard middleware around a handler
// that reports whether it saw a session.
func guardedHandler(codec *sessiontoken.Codec) http.Handler {
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if IsAuthenticated(r.Context()) {
			w.Header().Set("X-Session", "present")
		}
		w.WriteHeader(http.StatusOK)
	})
	return WithSession(codec)(Guard()(inner))
}

func TestGuardMiddleware_DeniesGuestOnProtectedPath(t *testing.T) {
	codec := newTestCodec(t)
	handler := guardedHandler(codec)

	req := httptest.NewRequest(http.MethodGet, "/dashboard/invoices?page=2", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login?redirect_uri=%2Fdashboard%2Finvoices%3Fpage%3D2", rec.Header().Get("Location"))
}

func TestGuardMiddleware_AllowsGuestOnPublicPath(t *testing.T) {
	codec := newTestCodec(t)
	handler := guardedHandler(codec)

	for _, path := range []string{"/", "/login", "/healthz"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code, "path %s", path)
		assert.Empty(t, rec.Header().Get("X-Session"))
	}
}

func TestGuardMiddleware_AllowsUserOnProtectedPath(t *testing.T) {
	codec := newTestCodec(t)
	handler := guardedHandler(codec)

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: issueTestToken(t, codec)})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "present", rec.Header().Get("X-Session"))
}

func TestGuardMiddleware_RedirectsUserFromLoginPage(t *testing.T) {
	codec := newTestCodec(t)
	handler := guardedHandler(codec)

	req := httptest.NewRequest(http.MethodGet, "/login", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: issueTestToken(t, codec)})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, PathDashboard, rec.Header().Get("Location"))
}

func TestGuardMiddleware_TamperedTokenTreatedAsGuest(t *testing.T) {
	codec := newTestCodec(t)
	handler := guardedHandler(codec)

	token := issueTestToken(t, codec)
	tampered := []byte(token)
	tampered[len(tampered)/2] ^= 0x01

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: string(tampered)})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
}

func TestGuardMiddleware_ExpiredTokenTreatedAsGuest(t *testing.T) {
	past := time.Now().Add(-2 * time.Hour)
	expiredCodec, err := sessiontoken.New(sessiontoken.Options{
		Secret: []byte("test-secret-test-secret-test-secret!"),
		TTL:    time.Hour,
		Now:    func() time.Time { return past },
	})
	require.NoError(t, err)

	handler := guardedHandler(newTestCodec(t))

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: issueTestToken(t, expiredCodec)})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
}

func TestSafeRedirectPath(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", PathDashboard},
		{"/dashboard/invoices", "/dashboard/invoices"},
		{"/dashboard/invoices?page=2", "/dashboard/invoices?page=2"},
		{"https://evil.example/phish", PathDashboard},
		{"//evil.example", PathDashboard},
		{"not-a-path", PathDashboard},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, safeRedirectPath(tt.in), "input %q", tt.in)
	}
}
