package service

import (
	"context"

	"github.com/acme/invoicing-ui/internal/domain/model"
	"github.com/acme/invoicing-ui/internal/ports"
)

// CustomerServiceOptions groups dependencies for CustomerService.
type CustomerServiceOptions struct {
	Customers ports.CustomerRepository
}

// CustomerService provides the customer table and select-input data.
type CustomerService struct {
	customers ports.CustomerRepository
}

// NewCustomerService constructs a new CustomerService.
func NewCustomerService(opts CustomerServiceOptions) *CustomerService {
	return &CustomerService{customers: opts.Customers}
}

// List returns customers with their invoice aggregates, optionally filtered
// by a name/email substring.
func (s *CustomerService) List(ctx context.Context, q *string) ([]model.CustomerSummary, error) {
	return s.customers.ListSummaries(ctx, model.CustomersListOptions{Q: q})
}

// ListNames returns all customer id/name pairs for select inputs.
func (s *CustomerService) ListNames(ctx context.Context) ([]model.CustomerName, error) {
	return s.customers.ListNames(ctx)
}

// GetByID retrieves a customer by ID.
func (s *CustomerService) GetByID(ctx context.Context, id string) (*model.Customer, error) {
	return s.customers.GetByID(ctx, id)
}
