package httpx

import (
	"errors"
	"net/http"

	"github.com/acme/invoicing-ui/internal/data"
	"github.com/acme/invoicing-ui/internal/domain/model"
	"github.com/acme/invoicing-ui/internal/http/ui/viewmodel"
	"github.com/acme/invoicing-ui/internal/http/validation"
	"github.com/acme/invoicing-ui/internal/service"
	"github.com/acme/invoicing-ui/internal/util"
)

// Invoices serves the searchable, paginated invoice table.
// GET /dashboard/invoices?q=<search>&page=<n>.
func (h *UIHandlers) Invoices(w http.ResponseWriter, r *http.Request) {
	search, pageNum := getPageParams(r.URL.Query())

	page, err := h.InvoiceSvc.ListPage(r.Context(), search, pageNum)
	if err != nil {
		h.renderServiceError(w, r, err)
		return
	}

	data := basePageData(r, PageMeta{
		Title:       "Acme - Invoices",
		PageTitle:   "Invoices",
		CurrentPage: PageInvoices,
	})
	data["Invoices"] = page.Invoices
	data["Query"] = ""
	if search != nil {
		data["Query"] = *search
	}
	data["Pagination"] = viewmodel.NewPagination(pageNum, page.TotalPages, buildPageURL(PathInvoices, search))

	h.renderPage(w, r, data)
}

// invoiceFormValues carries submitted (or prefilled) form fields back into
// the template so user input survives a validation failure.
type invoiceFormValues struct {
	CustomerID string
	Amount     string
	Status     string
}

// InvoiceCreateForm serves the empty create-invoice form.
// GET /dashboard/invoices/create.
func (h *UIHandlers) InvoiceCreateForm(w http.ResponseWriter, r *http.Request) {
	h.renderInvoiceForm(w, r, invoiceFormFrame{
		Mode:   FormModeCreate,
		Values: invoiceFormValues{Status: string(model.InvoiceStatusPending)},
	})
}

// InvoiceCreate handles the create-invoice form submission.
// POST /dashboard/invoices/create.
func (h *UIHandlers) InvoiceCreate(w http.ResponseWriter, r *http.Request) {
	values, errs := h.parseInvoiceForm(r)
	if len(errs) > 0 {
		h.renderInvoiceForm(w, r, invoiceFormFrame{Mode: FormModeCreate, Values: values, Errors: errs})
		return
	}

	cents, _ := service.DollarsToCents(values.Amount)
	status, _ := model.ParseInvoiceStatus(values.Status)
	_, err := h.InvoiceSvc.Create(r.Context(), &model.CreateInvoiceRequest{
		CustomerID: values.CustomerID,
		Amount:     cents,
		Status:     status,
	})
	if err != nil {
		if errors.Is(err, data.ErrInvoiceCustomerMissing) {
			errs = map[string]string{"customer_id": "Select an existing customer."}
			h.renderInvoiceForm(w, r, invoiceFormFrame{Mode: FormModeCreate, Values: values, Errors: errs})
			return
		}
		h.renderServiceError(w, r, err)
		return
	}

	http.Redirect(w, r, PathInvoices, http.StatusSeeOther)
}

// InvoiceEditForm serves the edit form prefilled with the invoice's data.
// GET /dashboard/invoices/{id}/edit.
func (h *UIHandlers) InvoiceEditForm(w http.ResponseWriter, r *http.Request) {
	invoice, err := h.InvoiceSvc.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, data.ErrInvoiceNotFound) {
			h.NotFound(w, r)
			return
		}
		h.renderServiceError(w, r, err)
		return
	}

	h.renderInvoiceForm(w, r, invoiceFormFrame{
		Mode:      FormModeEdit,
		InvoiceID: invoice.ID,
		Values: invoiceFormValues{
			CustomerID: invoice.CustomerID,
			Amount:     util.CentsToDollarString(invoice.Amount),
			Status:     string(invoice.Status),
		},
	})
}

// InvoiceEdit handles the edit form submission.
// POST /dashboard/invoices/{id}/edit.
func (h *UIHandlers) InvoiceEdit(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	values, errs := h.parseInvoiceForm(r)
	if len(errs) > 0 {
		h.renderInvoiceForm(w, r, invoiceFormFrame{
			Mode: FormModeEdit, InvoiceID: id, Values: values, Errors: errs,
		})
		return
	}

	cents, _ := service.DollarsToCents(values.Amount)
	status, _ := model.ParseInvoiceStatus(values.Status)
	_, err := h.InvoiceSvc.Update(r.Context(), id, model.UpdateInvoiceRequest{
		CustomerID: &values.CustomerID,
		Amount:     &cents,
		Status:     &status,
	})
	if err != nil {
		switch {
		case errors.Is(err, data.ErrInvoiceNotFound):
			h.NotFound(w, r)
		case errors.Is(err, data.ErrInvoiceCustomerMissing):
			errs = map[string]string{"customer_id": "Select an existing customer."}
			h.renderInvoiceForm(w, r, invoiceFormFrame{
				Mode: FormModeEdit, InvoiceID: id, Values: values, Errors: errs,
			})
		default:
			h.renderServiceError(w, r, err)
		}
		return
	}

	http.Redirect(w, r, PathInvoices, http.StatusSeeOther)
}

// InvoiceDelete removes an invoice and returns to the table.
// POST /dashboard/invoices/{id}/delete.
func (h *UIHandlers) InvoiceDelete(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.InvoiceSvc.Delete(r.Context(), r.PathValue("id"))
	if err != nil {
		h.renderServiceError(w, r, err)
		return
	}
	if !deleted {
		h.NotFound(w, r)
		return
	}
	http.Redirect(w, r, PathInvoices, http.StatusSeeOther)
}

// parseInvoiceForm reads and validates the invoice form fields.
func (h *UIHandlers) parseInvoiceForm(r *http.Request) (invoiceFormValues, map[string]string) {
	if err := r.ParseForm(); err != nil {
		return invoiceFormValues{}, map[string]string{"form": "Could not read the submitted form."}
	}

	values := invoiceFormValues{
		CustomerID: r.PostFormValue("customer_id"),
		Amount:     r.PostFormValue("amount"),
		Status:     r.PostFormValue("status"),
	}

	errs := validation.New().
		Validate("customer_id", values.CustomerID, validation.Required("Customer", 64)).
		Validate("amount", values.Amount, validation.Amount("Amount", service.DollarsToCents)).
		Validate("status", values.Status, validation.OneOf("Status", []string{
			string(model.InvoiceStatusPending),
			string(model.InvoiceStatusPaid),
		})).
		Errors()
	return values, errs
}

// invoiceFormFrame bundles everything the invoice form template needs.
type invoiceFormFrame struct {
	Mode      FormMode
	InvoiceID string
	Values    invoiceFormValues
	Errors    map[string]string
}

// renderInvoiceForm renders the create/edit form with customer options.
func (h *UIHandlers) renderInvoiceForm(w http.ResponseWriter, r *http.Request, frame invoiceFormFrame) {
	customers, err := h.CustomerSvc.ListNames(r.Context())
	if err != nil {
		h.renderServiceError(w, r, err)
		return
	}

	meta := PageMeta{
		Title:       "Acme - Create Invoice",
		PageTitle:   "Create Invoice",
		CurrentPage: PageInvoiceForm,
	}
	if frame.Mode == FormModeEdit {
		meta.Title = "Acme - Edit Invoice"
		meta.PageTitle = "Edit Invoice"
	}

	data := basePageData(r, meta)
	data["Mode"] = string(frame.Mode)
	data["InvoiceID"] = frame.InvoiceID
	data["Values"] = frame.Values
	data["Customers"] = customers
	if frame.Errors == nil {
		frame.Errors = map[string]string{}
	}
	data["Errors"] = frame.Errors

	h.renderPage(w, r, data)
}
