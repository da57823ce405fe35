package httpx

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestUI_Home_RendersLayout(t *testing.T) {
	h := CreateUIHandlersForTest(t)
	if h == nil {
		return
	}
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()

	h.Home(rr, r)

	res := rr.Result()
	t.Cleanup(func() { _ = res.Body.Close() })

	if got := res.StatusCode; got != http.StatusOK {
		// Default status is 200 if WriteHeader isn't called; enforce it.
		t.Fatalf("expected status 200, got %d", got)
	}
	if ct := res.Header.Get("Content-Type"); !strings.Contains(ct, "text/html") {
		t.Fatalf("expected text/html content type, got %q", ct)
	}
	body := rr.Body.String()
	if !strings.Contains(body, `<main class="main">`) {
		t.Fatalf("expected body to contain main container, got: %s", body)
	}
	if !strings.Contains(body, "Welcome to Acme") {
		t.Fatalf("expected landing page heading, got: %s", body)
	}
}

func TestUI_Home_UnknownPathRenders404(t *testing.T) {
	h := CreateUIHandlersForTest(t)
	if h == nil {
		return
	}
	r := httptest.NewRequest(http.MethodGet, "/nonexistent", nil)
	rr := httptest.NewRecorder()

	h.Home(rr, r)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rr.Code)
	}
}
