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

func TestCustomerService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockCustomerRepository(ctrl)

	q := "rabbit"
	summaries := []model.CustomerSummary{
		{ID: "c1", Name: "Evil Rabbit", Email: "evil@rabbit.com", TotalInvoices: 2, TotalPending: 15795, TotalPaid: 66666},
	}
	repo.EXPECT().
		ListSummaries(gomock.Any(), model.CustomersListOptions{Q: &q}).
		Return(summaries, nil)

	svc := service.NewCustomerService(service.CustomerServiceOptions{Customers: repo})
	got, err := svc.List(context.Background(), &q)

	require.NoError(t, err)
	assert.Equal(t, summaries, got)
}

func TestCustomerService_List_NoFilter(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockCustomerRepository(ctrl)

	repo.EXPECT().
		ListSummaries(gomock.Any(), model.CustomersListOptions{}).
		Return([]model.CustomerSummary{}, nil)

	svc := service.NewCustomerService(service.CustomerServiceOptions{Customers: repo})
	got, err := svc.List(context.Background(), nil)

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestCustomerService_List_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockCustomerRepository(ctrl)

	repo.EXPECT().
		ListSummaries(gomock.Any(), gomock.Any()).
		Return(nil, assert.AnError)

	svc := service.NewCustomerService(service.CustomerServiceOptions{Customers: repo})
	_, err := svc.List(context.Background(), nil)

	require.ErrorIs(t, err, assert.AnError)
}

func TestCustomerService_ListNames(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockCustomerRepository(ctrl)

	names := []model.CustomerName{
		{ID: "c1", Name: "Amy Burns"},
		{ID: "c2", Name: "Evil Rabbit"},
	}
	repo.EXPECT().ListNames(gomock.Any()).Return(names, nil)

	svc := service.NewCustomerService(service.CustomerServiceOptions{Customers: repo})
	got, err := svc.ListNames(context.Background())

	require.NoError(t, err)
	assert.Equal(t, names, got)
}

func TestCustomerService_GetByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockCustomerRepository(ctrl)

	customer := &model.Customer{ID: "c1", Name: "Evil Rabbit", Email: "evil@rabbit.com"}
	repo.EXPECT().GetByID(gomock.Any(), "c1").Return(customer, nil)

	svc := service.NewCustomerService(service.CustomerServiceOptions{Customers: repo})
	got, err := svc.GetByID(context.Background(), "c1")

	require.NoError(t, err)
	assert.Equal(t, customer, got)
}
