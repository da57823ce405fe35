package httpx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAuthorize(t *testing.T) {
	tests := []struct {
		name     string
		loggedIn bool
		path     string
		want     Decision
	}{
		{"guest on landing page", false, "/", DecisionAllow},
		{"guest on login page", false, "/login", DecisionAllow},
		{"guest on static asset", false, "/static/css/main.css", DecisionAllow},
		{"guest on dashboard", false, "/dashboard", DecisionDeny},
		{"guest on dashboard subpage", false, "/dashboard/invoices", DecisionDeny},
		{"guest on deep dashboard path", false, "/dashboard/invoices/abc/edit", DecisionDeny},
		{"guest on dashboard lookalike", false, "/dashboardx", DecisionAllow},
		{"user on landing page", true, "/", DecisionAllow},
		{"user on login page", true, "/login", DecisionRedirect},
		{"user on dashboard", true, "/dashboard", DecisionAllow},
		{"user on dashboard subpage", true, "/dashboard/customers", DecisionAllow},
		{"user on logout", true, "/logout", DecisionAllow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Authorize(tt.loggedIn, tt.path)
			assert.Equal(t, tt.want, got)

			// Same inputs, same answer.
			assert.Equal(t, got, Authorize(tt.loggedIn, tt.path))
		})
	}
}

func TestIsProtectedPath(t *testing.T) {
	assert.True(t, IsProtectedPath("/dashboard"))
	assert.True(t, IsProtectedPath("/dashboard/invoices"))
	assert.False(t, IsProtectedPath("/"))
	assert.False(t, IsProtectedPath("/login"))
	assert.False(t, IsProtectedPath("/dashboard-lookalike"))
}

func TestDecisionString(t *testing.T) {
	assert.Equal(t, "allow", DecisionAllow.String())
	assert.Equal(t, "deny", DecisionDeny.String())
	assert.Equal(t, "redirect", DecisionRedirect.String())
	assert.Equal(t, "unknown", Decision(99).String())
}
