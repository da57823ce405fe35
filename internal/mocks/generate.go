// Package mocks provides mock implementations for testing the invoicing services.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks for our repository interfaces.
// The mocks are generated using go:generate directives and provide a fluent API for setting up test expectations.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	defer ctrl.Finish()
//	mockRepo := mocks.NewMockInvoiceRepository(ctrl)
//	mockRepo.EXPECT().GetByID(gomock.Any(), gomock.Any()).Return(invoice, nil)
package mocks

// Generate mock for InvoiceRepository interface from internal/ports package.
// This creates MockInvoiceRepository with methods for all InvoiceRepository interface methods:
// Create, Update, Delete, GetByID, ListFiltered, CountFiltered, Latest, CardData
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=invoice_repository_mock.go github.com/acme/invoicing-ui/internal/ports InvoiceRepository

// Generate mock for CustomerRepository interface from internal/ports package.
// This creates MockCustomerRepository with methods for all CustomerRepository interface methods:
// ListSummaries, ListNames, GetByID
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=customer_repository_mock.go github.com/acme/invoicing-ui/internal/ports CustomerRepository

// Generate mock for RevenueRepository interface from internal/ports package.
// This creates MockRevenueRepository with methods for all RevenueRepository interface methods:
// List
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=revenue_repository_mock.go github.com/acme/invoicing-ui/internal/ports RevenueRepository

// Generate mock for CacheRepository interface from internal/ports package.
// This creates MockCacheRepository with methods for all CacheRepository interface methods:
// Set, Get, Delete
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=cache_repository_mock.go github.com/acme/invoicing-ui/internal/ports CacheRepository
