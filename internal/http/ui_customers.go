package httpx

import "net/http"

// Customers serves the customer table with invoice aggregates.
// GET /dashboard/customers?q=<search>.
func (h *UIHandlers) Customers(w http.ResponseWriter, r *http.Request) {
	search, _ := getPageParams(r.URL.Query())

	customers, err := h.CustomerSvc.List(r.Context(), search)
	if err != nil {
		h.renderServiceError(w, r, err)
		return
	}

	data := basePageData(r, PageMeta{
		Title:       "Acme - Customers",
		PageTitle:   "Customers",
		CurrentPage: PageCustomers,
	})
	data["Customers"] = customers
	data["Query"] = ""
	if search != nil {
		data["Query"] = *search
	}

	h.renderPage(w, r, data)
}
