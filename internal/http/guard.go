package httpx

import "strings"

// Decision is the outcome of authorizing a request path against the
// session state. It depends only on the inputs, so the same request
// always gets the same answer.
type Decision int

const (
	// DecisionAllow lets the request through unchanged.
	DecisionAllow Decision = iota
	// DecisionDeny blocks an unauthenticated request to a protected path.
	DecisionDeny
	// DecisionRedirect sends an authenticated user away from the login
	// page to the dashboard.
	DecisionRedirect
)

func (d Decision) String() string {
	switch d {
	case DecisionAllow:
		return "allow"
	case DecisionDeny:
		return "deny"
	case DecisionRedirect:
		return "redirect"
	default:
		return "unknown"
	}
}

// IsProtectedPath reports whether a path sits under the dashboard.
// Everything else (landing page, login, static assets, health) is public.
func IsProtectedPath(path string) bool {
	return path == PathDashboard || strings.HasPrefix(path, PathDashboard+"/")
}

// Authorize decides what to do with a request given only the session
// state and the request path. Unauthenticated access to a protected
// path is denied; an authenticated user visiting the login page is
// redirected to the dashboard; everything else is allowed.
func Authorize(loggedIn bool, path string) Decision {
	if IsProtectedPath(path) {
		if !loggedIn {
			return DecisionDeny
		}
		return DecisionAllow
	}
	if loggedIn && path == PathLogin {
		return DecisionRedirect
	}
	return DecisionAllow
}
