package httpx

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/acme/invoicing-ui/internal/adapters/sessiontoken"
	"github.com/acme/invoicing-ui/internal/domain/model"
	"github.com/acme/invoicing-ui/internal/mocks"
	authmocks "github.com/acme/invoicing-ui/internal/mocks/auth"
	"github.com/acme/invoicing-ui/internal/service"
)

const (
	routerTestEmail    = "user@nextmail.com"
	routerTestPassword = "123456"
)

// newTestRouter wires a full router with an in-memory user store, a real
// token codec, and mocked repositories behind the page services.
func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(routerTestPassword), bcrypt.MinCost)
	require.NoError(t, err)

	users := authmocks.NewMemoryUserRepo()
	users.Add(model.User{
		ID:       "u1",
		Name:     "User",
		Email:    routerTestEmail,
		Password: string(hash),
	})

	codec, err := sessiontoken.New(sessiontoken.Options{
		Secret: []byte("router-test-secret"),
		TTL:    time.Hour,
	})
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	invoiceRepo := mocks.NewMockInvoiceRepository(ctrl)
	invoiceRepo.EXPECT().CardData(gomock.Any()).Return(model.CardData{}, nil).AnyTimes()
	invoiceRepo.EXPECT().Latest(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
	invoiceRepo.EXPECT().
		ListFiltered(gomock.Any(), gomock.Any()).
		Return([]model.InvoiceWithCustomer{}, nil).
		AnyTimes()
	invoiceRepo.EXPECT().CountFiltered(gomock.Any(), gomock.Any()).Return(0, nil).AnyTimes()
	revenueRepo := mocks.NewMockRevenueRepository(ctrl)
	revenueRepo.EXPECT().List(gomock.Any()).Return(nil, nil).AnyTimes()
	customerRepo := mocks.NewMockCustomerRepository(ctrl)
	customerRepo.EXPECT().
		ListSummaries(gomock.Any(), gomock.Any()).
		Return([]model.CustomerSummary{}, nil).
		AnyTimes()
	customerRepo.EXPECT().ListNames(gomock.Any()).Return(nil, nil).AnyTimes()

	return NewRouter(RouterServices{
		Auth:      service.NewAuthService(service.AuthServiceOptions{Users: users, Tokens: codec}),
		Invoices:  service.NewInvoiceService(service.InvoiceServiceOptions{Invoices: invoiceRepo}),
		Customers: service.NewCustomerService(service.CustomerServiceOptions{Customers: customerRepo}),
		Dashboard: service.NewDashboardService(service.DashboardServiceOptions{
			Invoices: invoiceRepo,
			Revenue:  revenueRepo,
		}),
		Tokens:     codec,
		SessionTTL: time.Hour,
	})
}

// login posts seeded credentials and returns the session cookie.
func login(t *testing.T, router http.Handler) *http.Cookie {
	t.Helper()

	form := url.Values{}
	form.Set("email", routerTestEmail)
	form.Set("password", routerTestPassword)

	req := httptest.NewRequest(http.MethodPost, PathLogin, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusSeeOther, rr.Code)
	require.Equal(t, PathDashboard, rr.Header().Get("Location"))

	for _, c := range rr.Result().Cookies() {
		if c.Name == SessionCookieName && c.Value != "" {
			return c
		}
	}
	t.Fatal("login response did not set a session cookie")
	return nil
}

func TestRouter_LoginThenDashboard(t *testing.T) {
	router := newTestRouter(t)
	cookie := login(t, router)

	req := httptest.NewRequest(http.MethodGet, PathDashboard, nil)
	req.AddCookie(cookie)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rr.Body.String(), "Dashboard")
}

func TestRouter_DashboardWithoutSessionRedirectsToLogin(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, PathDashboard, nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Contains(t, rr.Header().Get("Location"), PathLogin)
}

func TestRouter_LoginPageWithSessionRedirectsToDashboard(t *testing.T) {
	router := newTestRouter(t)
	cookie := login(t, router)

	req := httptest.NewRequest(http.MethodGet, PathLogin, nil)
	req.AddCookie(cookie)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, PathDashboard, rr.Header().Get("Location"))
}

func TestRouter_TamperedCookieIsLoggedOut(t *testing.T) {
	router := newTestRouter(t)
	cookie := login(t, router)

	// Flip one byte of the token.
	raw := []byte(cookie.Value)
	raw[len(raw)/2] ^= 0x01
	tampered := &http.Cookie{Name: cookie.Name, Value: string(raw)}

	req := httptest.NewRequest(http.MethodGet, PathDashboard, nil)
	req.AddCookie(tampered)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Contains(t, rr.Header().Get("Location"), PathLogin)
}

func TestRouter_PublicPagesAccessibleWithoutSession(t *testing.T) {
	router := newTestRouter(t)

	for _, path := range []string{PathHome, PathLogin, "/healthz"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code, "path %s should be public", path)
	}
}

func TestRouter_InvoicesPageWithSession(t *testing.T) {
	router := newTestRouter(t)
	cookie := login(t, router)

	req := httptest.NewRequest(http.MethodGet, PathInvoices, nil)
	req.AddCookie(cookie)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Invoices")
}

func TestRouter_LogoutClearsSession(t *testing.T) {
	router := newTestRouter(t)
	cookie := login(t, router)

	req := httptest.NewRequest(http.MethodPost, PathLogout, nil)
	req.AddCookie(cookie)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Contains(t, rr.Header().Get("Location"), PathLogin)

	var cleared bool
	for _, c := range rr.Result().Cookies() {
		if c.Name == SessionCookieName {
			cleared = c.Value == "" && c.MaxAge < 0
		}
	}
	assert.True(t, cleared, "logout should expire the session cookie")
}
