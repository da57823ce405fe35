package httpx

import (
	"log/slog"
	"net/http"
	"net/url"
	"runtime/debug"
	"strings"
	"time"

	"github.com/acme/invoicing-ui/internal/ports"
)

// Logging returns a middleware that logs HTTP requests and responses.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			const defaultHTTPStatus = 200
			ww := &respWriter{ResponseWriter: w, status: defaultHTTPStatus}
			next.ServeHTTP(ww, r)
			logger.Info("http",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", ww.status),
				slog.Duration("duration", time.Since(start)),
			)
		})
	}
}

type respWriter struct {
	http.ResponseWriter
	status int
}

func (w *respWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

// Recover returns a middleware that recovers from panics and logs them.
func Recover(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					logger.Error("panic",
						slog.Any("error", err),
						slog.String("path", r.URL.Path),
						slog.String("method", r.Method),
						slog.String("stack", string(debug.Stack())))
					http.Error(w, "Internal Server Error", http.StatusInternalServerError)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// WithSession returns a middleware that reads the session cookie, verifies
// the token, and stores the resulting session in the request context.
// A missing, tampered, or expired token leaves the request unauthenticated;
// it never produces an error response on its own.
func WithSession(tokens ports.TokenCodec) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(SessionCookieName)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			session, err := tokens.Verify(cookie.Value)
			if err != nil || session.Expired(time.Now()) {
				next.ServeHTTP(w, r)
				return
			}

			ctx := SetSessionInContext(r.Context(), &session)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Guard returns a middleware that enforces Authorize decisions for every
// request. Denied requests redirect to the login page carrying the original
// destination; authenticated visits to the login page redirect to the
// dashboard.
func Guard() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch Authorize(IsAuthenticated(r.Context()), r.URL.Path) {
			case DecisionDeny:
				redirectToLogin(w, r)
			case DecisionRedirect:
				http.Redirect(w, r, PathDashboard, http.StatusSeeOther)
			case DecisionAllow:
				next.ServeHTTP(w, r)
			}
		})
	}
}

// redirectToLogin sends the browser to the login page with the current URL
// as redirect_uri so the user lands back where they started.
func redirectToLogin(w http.ResponseWriter, r *http.Request) {
	redirectPath := safeRedirectPath(r.URL.RequestURI())
	loginURL := PathLogin + "?redirect_uri=" + url.QueryEscape(redirectPath)
	http.Redirect(w, r, loginURL, http.StatusSeeOther)
}

// safeRedirectPath ensures the provided redirect is a same-origin relative
// path starting with "/" and not an absolute URL. Returns the dashboard
// path when invalid.
func safeRedirectPath(candidate string) string {
	if candidate == "" {
		return PathDashboard
	}
	u, err := url.Parse(candidate)
	if err != nil || u.IsAbs() || u.Host != "" || !strings.HasPrefix(u.Path, "/") {
		return PathDashboard
	}
	// Protocol-relative URLs ("//evil.example") parse with an empty path.
	if strings.HasPrefix(candidate, "//") {
		return PathDashboard
	}
	return candidate
}
