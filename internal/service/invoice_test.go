package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/acme/invoicing-ui/internal/domain/model"
	"github.com/acme/invoicing-ui/internal/mocks"
	"github.com/acme/invoicing-ui/internal/service"
)

func TestInvoiceService_ListPage(t *testing.T) {
	tests := []struct {
		name           string
		page           int
		count          int
		wantOffset     int
		wantTotalPages int
	}{
		{"first page", 1, 13, 0, 3},
		{"second page", 2, 13, 6, 3},
		{"page below one clamps", 0, 13, 0, 3},
		{"negative page clamps", -4, 13, 0, 3},
		{"exact multiple", 1, 12, 0, 2},
		{"empty table", 1, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mocks.NewMockInvoiceRepository(ctrl)

			q := "acme"
			rows := []model.InvoiceWithCustomer{{CustomerName: "Acme Corp"}}
			repo.EXPECT().
				ListFiltered(gomock.Any(), model.InvoicesListOptions{
					Limit:  service.ItemsPerPage,
					Offset: tt.wantOffset,
					Q:      &q,
				}).
				Return(rows, nil)
			repo.EXPECT().CountFiltered(gomock.Any(), &q).Return(tt.count, nil)

			svc := service.NewInvoiceService(service.InvoiceServiceOptions{Invoices: repo})
			page, err := svc.ListPage(context.Background(), &q, tt.page)

			require.NoError(t, err)
			assert.Equal(t, rows, page.Invoices)
			assert.Equal(t, tt.wantTotalPages, page.TotalPages)
		})
	}
}

func TestInvoiceService_ListPage_ListError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockInvoiceRepository(ctrl)
	repo.EXPECT().
		ListFiltered(gomock.Any(), gomock.Any()).
		Return(nil, assert.AnError)

	svc := service.NewInvoiceService(service.InvoiceServiceOptions{Invoices: repo})
	_, err := svc.ListPage(context.Background(), nil, 1)

	require.ErrorIs(t, err, assert.AnError)
}

func TestDollarsToCents(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    int64
		wantErr bool
	}{
		{"whole dollars", "120", 12000, false},
		{"two decimals", "120.50", 12050, false},
		{"one decimal", "120.5", 12050, false},
		{"small cents", "0.07", 7, false},
		{"leading dot", ".25", 25, false},
		{"surrounding space", " 15 ", 1500, false},
		{"zero", "0", 0, false},
		{"empty", "", 0, true},
		{"negative", "-5", 0, true},
		{"not a number", "abc", 0, true},
		{"bad fraction", "1.x2", 0, true},
		{"three decimals", "1.005", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := service.DollarsToCents(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
