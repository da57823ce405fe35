package httpx

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	domainauth "github.com/acme/invoicing-ui/internal/domain/auth"
	"github.com/acme/invoicing-ui/internal/domain/model"
)

// AuthLoginService is the slice of the auth service the login form needs.
type AuthLoginService interface {
	Login(ctx context.Context, creds domainauth.Credentials) (string, *model.User, error)
}

// AuthHandlers provides HTTP handlers for the login form and logout.
type AuthHandlers struct {
	Svc          AuthLoginService
	Renderer     *TemplateRenderer
	CookieDomain string
	SessionTTL   time.Duration
	Logger       *slog.Logger
}

func (h *AuthHandlers) logger() *slog.Logger {
	if h != nil && h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

// LoginPage serves the login form.
// GET /login?redirect_uri=<optional_destination>.
func (h *AuthHandlers) LoginPage(w http.ResponseWriter, r *http.Request) {
	h.renderLoginForm(w, r, loginFormState{
		Email:       r.URL.Query().Get("email"),
		RedirectURI: safeRedirectPath(r.URL.Query().Get("redirect_uri")),
	})
}

// Login handles the login form submission.
// POST /login.
//
// All credential failures (malformed input, unknown account, wrong
// password) re-render the form with the same message so the form never
// reveals which part was wrong. Anything else is reported as a generic
// failure.
func (h *AuthHandlers) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderLoginForm(w, r, loginFormState{Message: MsgSomethingWentWrong})
		return
	}

	email := r.PostFormValue("email")
	redirectURI := safeRedirectPath(r.PostFormValue("redirect_uri"))

	token, _, err := h.Svc.Login(r.Context(), domainauth.Credentials{
		Email:    email,
		Password: r.PostFormValue("password"),
	})
	if err != nil {
		state := loginFormState{Email: email, RedirectURI: redirectURI}
		if isCredentialFailure(err) {
			state.Message = MsgInvalidCredentials
		} else {
			h.logger().ErrorContext(r.Context(), "login failed", "error", err)
			state.Message = MsgSomethingWentWrong
		}
		w.WriteHeader(http.StatusUnauthorized)
		h.renderLoginForm(w, r, state)
		return
	}

	h.setSessionCookie(w, r, token)
	http.Redirect(w, r, redirectURI, http.StatusSeeOther)
}

// Logout clears the session cookie and returns to the login page.
// POST /logout.
func (h *AuthHandlers) Logout(w http.ResponseWriter, r *http.Request) {
	h.clearSessionCookie(w, r)
	http.Redirect(w, r, PathLogin, http.StatusSeeOther)
}

// isCredentialFailure reports whether the error is one of the failures a
// user can fix by retyping their credentials.
func isCredentialFailure(err error) bool {
	var vErr *domainauth.ValidationError
	return errors.Is(err, domainauth.ErrNoSuchAccount) ||
		errors.Is(err, domainauth.ErrBadPassword) ||
		errors.As(err, &vErr)
}

// loginFormState carries the login form's render inputs.
type loginFormState struct {
	Email       string
	RedirectURI string
	Message     string
}

func (h *AuthHandlers) renderLoginForm(w http.ResponseWriter, r *http.Request, state loginFormState) {
	if state.RedirectURI == "" {
		state.RedirectURI = PathDashboard
	}
	data := map[string]any{
		"Title":       "Acme - Log in",
		"PageTitle":   "Log in",
		"CurrentPage": PageLogin,
		"Email":       state.Email,
		"RedirectURI": state.RedirectURI,
		"Message":     state.Message,
	}
	if err := h.Renderer.RenderFull(w, r, data); err != nil {
		h.logger().Error("login form rendering failed", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

// setSessionCookie writes the signed session token as an HttpOnly cookie.
func (h *AuthHandlers) setSessionCookie(w http.ResponseWriter, r *http.Request, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		Domain:   h.CookieDomain,
		HttpOnly: true,
		Secure:   requestIsSecure(r),
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(h.SessionTTL.Seconds()),
	})
}

// clearSessionCookie expires the session cookie. It mirrors the attributes
// used when setting it to maximize compatibility across browsers.
func (h *AuthHandlers) clearSessionCookie(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		Domain:   h.CookieDomain,
		HttpOnly: true,
		Secure:   requestIsSecure(r),
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
		Expires:  time.Unix(0, 0).UTC(),
	})
}

func requestIsSecure(r *http.Request) bool {
	return r.TLS != nil || strings.EqualFold(r.Header.Get("X-Forwarded-Proto"), "https")
}
