package service

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/acme/invoicing-ui/internal/domain/model"
	"github.com/acme/invoicing-ui/internal/ports"
)

// ItemsPerPage is the invoice table page size.
const ItemsPerPage = 6

// InvoiceServiceOptions groups dependencies for InvoiceService.
type InvoiceServiceOptions struct {
	Invoices ports.InvoiceRepository
}

// InvoiceService orchestrates invoice CRUD and paginated listing.
type InvoiceService struct {
	invoices ports.InvoiceRepository
}

// NewInvoiceService constructs a new InvoiceService.
func NewInvoiceService(opts InvoiceServiceOptions) *InvoiceService {
	return &InvoiceService{invoices: opts.Invoices}
}

// InvoicePage is one page of the filtered invoice table.
type InvoicePage struct {
	Invoices   []model.InvoiceWithCustomer
	TotalPages int
}

// ListPage returns one page of invoices matching the search query, along with
// the total page count for the same filter.
func (s *InvoiceService) ListPage(ctx context.Context, q *string, page int) (*InvoicePage, error) {
	if page < 1 {
		page = 1
	}

	invoices, err := s.invoices.ListFiltered(ctx, model.InvoicesListOptions{
		Limit:  ItemsPerPage,
		Offset: (page - 1) * ItemsPerPage,
		Q:      q,
	})
	if err != nil {
		return nil, err
	}

	count, err := s.invoices.CountFiltered(ctx, q)
	if err != nil {
		return nil, err
	}

	return &InvoicePage{
		Invoices:   invoices,
		TotalPages: (count + ItemsPerPage - 1) / ItemsPerPage,
	}, nil
}

// Create creates an invoice dated today.
func (s *InvoiceService) Create(ctx context.Context, req *model.CreateInvoiceRequest) (*model.Invoice, error) {
	return s.invoices.Create(ctx, req, time.Now().UTC())
}

// Update updates an invoice.
func (s *InvoiceService) Update(
	ctx context.Context,
	id string,
	req model.UpdateInvoiceRequest,
) (*model.Invoice, error) {
	return s.invoices.Update(ctx, id, req)
}

// Delete deletes an invoice by ID.
func (s *InvoiceService) Delete(ctx context.Context, id string) (bool, error) {
	return s.invoices.Delete(ctx, id)
}

// GetByID retrieves an invoice by ID.
func (s *InvoiceService) GetByID(ctx context.Context, id string) (*model.Invoice, error) {
	return s.invoices.GetByID(ctx, id)
}

// DollarsToCents parses a decimal dollar amount ("120" or "120.50") into
// cents without going through floating point.
func DollarsToCents(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, errors.New("amount is required")
	}
	if strings.HasPrefix(s, "-") {
		return 0, errors.New("amount must be positive")
	}

	whole, frac, _ := strings.Cut(s, ".")
	if whole == "" {
		whole = "0"
	}

	dollars, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, errors.New("amount must be a number")
	}

	var cents int64
	switch len(frac) {
	case 0:
		// whole dollars
	case 1:
		d, convErr := strconv.ParseInt(frac, 10, 64)
		if convErr != nil {
			return 0, errors.New("amount must be a number")
		}
		cents = d * 10
	case 2:
		d, convErr := strconv.ParseInt(frac, 10, 64)
		if convErr != nil {
			return 0, errors.New("amount must be a number")
		}
		cents = d
	default:
		return 0, errors.New("amount supports at most two decimal places")
	}

	return dollars*100 + cents, nil
}
