package httpx

import (
	"io/fs"
	"log"
	"log/slog"
	"net/http"
	"os"
	"time"

	invoicing "github.com/acme/invoicing-ui"
	"github.com/acme/invoicing-ui/internal/ports"
	"github.com/acme/invoicing-ui/internal/service"
)

// RouterServices holds all the services needed by the HTTP router.
type RouterServices struct {
	Auth      *service.AuthService
	Invoices  *service.InvoiceService
	Customers *service.CustomerService
	Dashboard *service.DashboardService
	Tokens    ports.TokenCodec

	CookieDomain string
	SessionTTL   time.Duration
	IsDev        bool         // Development mode flag for on-disk templates, etc.
	Logger       *slog.Logger // Logger for template and HTTP errors (optional)
}

// NewRouter creates and configures the HTTP router. Every request passes
// through session decoding and the route guard before reaching a handler.
func NewRouter(services RouterServices) http.Handler {
	mux := http.NewServeMux()

	templateFS := templateFilesystem(services.IsDev)
	renderer, err := NewTemplateRenderer(TemplateRendererConfig{
		TemplateFS: templateFS,
		Logger:     services.Logger,
	})
	if err != nil {
		// Without templates every page render would fail; surface it at startup.
		log.Fatalf("failed to parse templates: %v", err)
	}

	authHandlers := &AuthHandlers{
		Svc:          services.Auth,
		Renderer:     renderer,
		CookieDomain: services.CookieDomain,
		SessionTTL:   services.SessionTTL,
		Logger:       services.Logger,
	}
	uiHandlers := &UIHandlers{
		T:            renderer,
		DashboardSvc: services.Dashboard,
		InvoiceSvc:   services.Invoices,
		CustomerSvc:  services.Customers,
		IsDev:        services.IsDev,
		Logger:       services.Logger,
	}

	mux.HandleFunc("GET /healthz", healthHandler)
	mux.HandleFunc("HEAD /healthz", healthHandler)
	mux.Handle("GET /static/", staticHandler(services.IsDev))

	mux.HandleFunc("GET "+PathLogin, authHandlers.LoginPage)
	mux.HandleFunc("POST "+PathLogin, authHandlers.Login)
	mux.HandleFunc("POST "+PathLogout, authHandlers.Logout)

	mux.HandleFunc("GET /", uiHandlers.Home)
	mux.HandleFunc("GET "+PathDashboard, uiHandlers.Dashboard)
	mux.HandleFunc("GET "+PathInvoices, uiHandlers.Invoices)
	mux.HandleFunc("GET "+PathInvoices+"/create", uiHandlers.InvoiceCreateForm)
	mux.HandleFunc("POST "+PathInvoices+"/create", uiHandlers.InvoiceCreate)
	mux.HandleFunc("GET "+PathInvoices+"/{id}/edit", uiHandlers.InvoiceEditForm)
	mux.HandleFunc("POST "+PathInvoices+"/{id}/edit", uiHandlers.InvoiceEdit)
	mux.HandleFunc("POST "+PathInvoices+"/{id}/delete", uiHandlers.InvoiceDelete)
	mux.HandleFunc("GET "+PathCustomers, uiHandlers.Customers)

	handler := Guard()(mux)
	return WithSession(services.Tokens)(handler)
}

// templateFilesystem returns the template source: disk in dev mode for quick
// iteration, the embedded copy in production.
func templateFilesystem(isDev bool) fs.FS {
	if isDev {
		return os.DirFS(TemplatePathFromRoot)
	}
	sub, err := fs.Sub(invoicing.TemplateFS, TemplatePathFromRoot)
	if err != nil {
		log.Printf("failed to create sub-filesystem for templates: %v; falling back to disk", err)
		return os.DirFS(TemplatePathFromRoot)
	}
	return sub
}

// staticHandler serves /static/ assets from disk in dev mode or the
// embedded filesystem in production.
func staticHandler(isDev bool) http.Handler {
	if isDev {
		return http.StripPrefix("/static/", http.FileServer(http.Dir("static")))
	}
	sub, err := fs.Sub(invoicing.StaticFS, "static")
	if err != nil {
		log.Printf("failed to create sub-filesystem for static assets: %v; falling back to disk", err)
		return http.StripPrefix("/static/", http.FileServer(http.Dir("static")))
	}
	return http.StripPrefix("/static/", http.FileServer(http.FS(sub)))
}
