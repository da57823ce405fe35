package ports

import (
	"context"
	"time"

	"github.com/acme/invoicing-ui/internal/domain/model"
)

// CustomerRepository provides read access to customers and their invoice aggregates.
type CustomerRepository interface {
	ListSummaries(ctx context.Context, opts model.CustomersListOptions) ([]model.CustomerSummary, error)
	ListNames(ctx context.Context) ([]model.CustomerName, error)
	GetByID(ctx context.Context, id string) (*model.Customer, error)
}

// InvoiceRepository provides CRUD and aggregate access to invoices.
type InvoiceRepository interface {
	Create(ctx context.Context, req *model.CreateInvoiceRequest, date time.Time) (*model.Invoice, error)
	Update(ctx context.Context, id string, req model.UpdateInvoiceRequest) (*model.Invoice, error)
	Delete(ctx context.Context, id string) (bool, error)
	GetByID(ctx context.Context, id string) (*model.Invoice, error)
	ListFiltered(ctx context.Context, opts model.InvoicesListOptions) ([]model.InvoiceWithCustomer, error)
	CountFiltered(ctx context.Context, q *string) (int, error)
	Latest(ctx context.Context, limit int) ([]model.InvoiceWithCustomer, error)
	CardData(ctx context.Context) (model.CardData, error)
}

// RevenueRepository provides access to the monthly revenue series.
type RevenueRepository interface {
	List(ctx context.Context) ([]model.Revenue, error)
}

// CacheRepository is a byte-oriented TTL cache used for cache-aside reads.
type CacheRepository interface {
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Get(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) (bool, error)
}
