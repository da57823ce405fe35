package httpx

// Route paths shared between the router, the guard, and handlers.
const (
	PathHome      = "/"
	PathLogin     = "/login"
	PathLogout    = "/logout"
	PathDashboard = "/dashboard"
	PathInvoices  = "/dashboard/invoices"
	PathCustomers = "/dashboard/customers"
)

// SessionCookieName is the cookie carrying the signed session token.
const SessionCookieName = "session"

// Template directory paths.
const (
	TemplatePathFromRoot = "templates"       // From project root
	TemplatePathFromTest = "../../templates" // From internal/http test files
)

// CurrentPage constants identify pages for navigation state and template
// selection.
const (
	PageHome        = "home"
	PageLogin       = "login"
	PageDashboard   = "dashboard"
	PageInvoices    = "invoices"
	PageInvoiceForm = "invoice-form"
	PageCustomers   = "customers"
)

// FormMode represents the mode of a form (create or edit).
type FormMode string

const (
	// FormModeCreate indicates the form is in create mode.
	FormModeCreate FormMode = "create"
	// FormModeEdit indicates the form is in edit mode.
	FormModeEdit FormMode = "edit"
)

// Login form messages. Credential failures share one message so the form
// never reveals whether the email or the password was wrong.
const (
	MsgInvalidCredentials = "Invalid credentials."
	MsgSomethingWentWrong = "Something went wrong."
)

// contentTemplates maps CurrentPage to the template rendered inside the
// layout's main content area.
//
//nolint:gochecknoglobals // static read-only lookup for templates
var contentTemplates = map[string]string{
	PageHome:        "home-content",
	PageLogin:       "login-content",
	PageDashboard:   "dashboard-content",
	PageInvoices:    "invoices-content",
	PageInvoiceForm: "invoice-form-content",
	PageCustomers:   "customers-content",
}

// ContentTemplateFor returns the content template for the given CurrentPage.
// Falls back to the dashboard for unknown pages.
func ContentTemplateFor(currentPage string) string {
	if name, ok := contentTemplates[currentPage]; ok {
		return name
	}
	return "dashboard-content"
}
