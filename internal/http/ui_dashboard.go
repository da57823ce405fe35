package httpx

import (
	"net/http"

	"github.com/acme/invoicing-ui/internal/service"
)

// Dashboard serves the overview page: summary cards, the revenue chart,
// and the latest invoices.
func (h *UIHandlers) Dashboard(w http.ResponseWriter, r *http.Request) {
	data := basePageData(r, PageMeta{
		Title:       "Acme - Dashboard",
		PageTitle:   "Dashboard",
		CurrentPage: PageDashboard,
	})

	overview, err := h.DashboardSvc.Overview(r.Context())
	if err != nil {
		h.renderServiceError(w, r, err)
		return
	}

	yAxisLabels, topLabel := service.GenerateYAxis(overview.Revenue)

	data["Cards"] = overview.Cards
	data["Revenue"] = overview.Revenue
	data["LatestInvoices"] = overview.Latest
	data["YAxisLabels"] = yAxisLabels
	data["TopLabel"] = topLabel

	h.renderPage(w, r, data)
}
