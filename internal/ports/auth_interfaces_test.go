package ports_test

import (
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/acme/invoicing-ui/internal/mocks"
	authmocks "github.com/acme/invoicing-ui/internal/mocks/auth"
	"github.com/acme/invoicing-ui/internal/ports"
)

// This test only verifies that our test doubles conform to the ports at compile time.
func TestDoublesImplementPorts(t *testing.T) {
	ctrl := gomock.NewController(t)

	var _ ports.UserRepository = (*authmocks.MemoryUserRepo)(nil)
	var _ ports.TokenCodec = (*authmocks.MockTokenCodec)(nil)
	var _ ports.CustomerRepository = mocks.NewMockCustomerRepository(ctrl)
	var _ ports.InvoiceRepository = mocks.NewMockInvoiceRepository(ctrl)
	var _ ports.RevenueRepository = mocks.NewMockRevenueRepository(ctrl)
	var _ ports.CacheRepository = mocks.NewMockCacheRepository(ctrl)
}
