package httpx

import "net/http"

// Home serves the public landing page.
func (h *UIHandlers) Home(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != PathHome {
		h.NotFound(w, r)
		return
	}

	data := basePageData(r, PageMeta{
		Title:       "Acme - Invoicing",
		PageTitle:   "Welcome to Acme",
		CurrentPage: PageHome,
	})
	h.renderPage(w, r, data)
}
