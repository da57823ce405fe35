package httpx

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/acme/invoicing-ui/internal/domain/model"
	"github.com/acme/invoicing-ui/internal/http/ui/viewmodel"
	"github.com/acme/invoicing-ui/internal/service"
)

// DashboardOverviewService is a minimal interface for the dashboard page.
type DashboardOverviewService interface {
	Overview(ctx context.Context) (*service.Overview, error)
}

// InvoicesService is a minimal interface for invoice UI needs.
type InvoicesService interface {
	ListPage(ctx context.Context, q *string, page int) (*service.InvoicePage, error)
	Create(ctx context.Context, req *model.CreateInvoiceRequest) (*model.Invoice, error)
	Update(ctx context.Context, id string, req model.UpdateInvoiceRequest) (*model.Invoice, error)
	Delete(ctx context.Context, id string) (bool, error)
	GetByID(ctx context.Context, id string) (*model.Invoice, error)
}

// CustomersService is a minimal interface for customer UI needs.
type CustomersService interface {
	List(ctx context.Context, q *string) ([]model.CustomerSummary, error)
	ListNames(ctx context.Context) ([]model.CustomerName, error)
}

// Compile-time interface assertions to ensure concrete services satisfy their UI interfaces.
var (
	_ DashboardOverviewService = (*service.DashboardService)(nil)
	_ InvoicesService          = (*service.InvoiceService)(nil)
	_ CustomersService         = (*service.CustomerService)(nil)
)

// UIHandlers serves browser-facing routes.
type UIHandlers struct {
	T            *TemplateRenderer
	DashboardSvc DashboardOverviewService
	InvoiceSvc   InvoicesService
	CustomerSvc  CustomersService
	IsDev        bool
	Logger       *slog.Logger
}

// logger returns the configured logger or falls back to slog.Default().
func (h *UIHandlers) logger() *slog.Logger {
	if h != nil && h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

// getPageParams parses the search query and page number from the URL with
// sane defaults.
func getPageParams(q url.Values) (*string, int) {
	var search *string
	if s := strings.TrimSpace(q.Get("q")); s != "" {
		search = &s
	}

	page := 1
	if p := q.Get("page"); p != "" {
		if n, err := strconv.Atoi(p); err == nil && n > 0 {
			page = n
		}
	}
	return search, page
}

// buildPageURL returns basePath with the page param set, preserving the
// search query when present.
func buildPageURL(basePath string, search *string) func(page int) string {
	return func(page int) string {
		q := url.Values{}
		if search != nil {
			q.Set("q", *search)
		}
		q.Set("page", strconv.Itoa(page))
		return basePath + "?" + q.Encode()
	}
}

// PageMeta contains metadata for page rendering.
type PageMeta struct {
	Title       string
	PageTitle   string
	CurrentPage string
}

// buildLayout constructs shared layout metadata from the request/session context.
func buildLayout(r *http.Request, meta PageMeta) viewmodel.Layout {
	layout := viewmodel.Layout{
		Title:       meta.Title,
		PageTitle:   meta.PageTitle,
		CurrentPage: meta.CurrentPage,
	}

	if session := GetSessionFromContext(r.Context()); session != nil {
		layout.IsAuthenticated = true
		layout.User = &viewmodel.User{
			Name:  session.Name,
			Email: session.Email,
		}
	}
	return layout
}

// basePageData constructs the common page data map with user context.
func basePageData(r *http.Request, meta PageMeta) map[string]any {
	layout := buildLayout(r, meta)
	data := map[string]any{
		"Title":           layout.Title,
		"PageTitle":       layout.PageTitle,
		"CurrentPage":     layout.CurrentPage,
		"IsAuthenticated": layout.IsAuthenticated,
	}
	if layout.User != nil {
		data["User"] = layout.User
	}
	return data
}

// renderPage renders a full page and logs render failures.
func (h *UIHandlers) renderPage(w http.ResponseWriter, r *http.Request, data any) {
	if err := h.T.RenderFull(w, r, data); err != nil {
		h.renderFailure(w, r, err)
	}
}

// renderFailure reports a template error. In dev mode the error text is
// shown; in production the response is a generic 500.
func (h *UIHandlers) renderFailure(w http.ResponseWriter, r *http.Request, err error) {
	h.logger().Error("template rendering failed",
		"error", err,
		"path", r.URL.Path,
		"method", r.Method,
	)
	if h.IsDev {
		http.Error(w, "template error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	http.Error(w, "internal server error", http.StatusInternalServerError)
}

// renderServiceError renders the shared error page for failed data fetches.
func (h *UIHandlers) renderServiceError(w http.ResponseWriter, r *http.Request, err error) {
	h.logger().ErrorContext(r.Context(), "page data fetch failed",
		"error", err,
		"path", r.URL.Path,
	)

	w.WriteHeader(http.StatusInternalServerError)
	data := basePageData(r, PageMeta{Title: "Error", PageTitle: "Something went wrong"})
	data["Message"] = MsgSomethingWentWrong
	if renderErr := h.T.RenderError(w, r, data); renderErr != nil {
		h.logger().Error("error page rendering failed", "error", renderErr)
	}
}

// NotFound renders the 404 page.
func (h *UIHandlers) NotFound(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNotFound)
	data := basePageData(r, PageMeta{Title: "Not Found", PageTitle: "404 Not Found"})
	data["Message"] = "Could not find the requested page."
	if err := h.T.RenderError(w, r, data); err != nil {
		h.logger().Error("not found page rendering failed", "error", err)
	}
}
