package service_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/acme/invoicing-ui/internal/domain/model"
	"github.com/acme/invoicing-ui/internal/mocks"
	"github.com/acme/invoicing-ui/internal/service"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testRevenue() []model.Revenue {
	return []model.Revenue{
		{Month: "Jan", Revenue: 200000},
		{Month: "Feb", Revenue: 180000},
		{Month: "Mar", Revenue: 220000},
	}
}

func TestDashboardService_RevenueSeries_CacheHit(t *testing.T) {
	ctrl := gomock.NewController(t)
	cache := mocks.NewMockCacheRepository(ctrl)
	revenue := mocks.NewMockRevenueRepository(ctrl)

	want := testRevenue()
	encoded, err := json.Marshal(want)
	require.NoError(t, err)
	cache.EXPECT().Get(gomock.Any(), "dashboard:revenue").Return(encoded, nil)
	// No revenue.List expectation: a cache hit must not touch the database.

	svc := service.NewDashboardService(service.DashboardServiceOptions{
		Revenue: revenue,
		Cache:   cache,
		Logger:  discardLogger(),
	})

	got, err := svc.RevenueSeries(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestDashboardService_RevenueSeries_CacheMissPopulates(t *testing.T) {
	ctrl := gomock.NewController(t)
	cache := mocks.NewMockCacheRepository(ctrl)
	revenue := mocks.NewMockRevenueRepository(ctrl)

	want := testRevenue()
	encoded, err := json.Marshal(want)
	require.NoError(t, err)

	cache.EXPECT().Get(gomock.Any(), "dashboard:revenue").Return(nil, nil)
	revenue.EXPECT().List(gomock.Any()).Return(want, nil)
	cache.EXPECT().Set(gomock.Any(), "dashboard:revenue", encoded, 5*time.Minute).Return(nil)

	svc := service.NewDashboardService(service.DashboardServiceOptions{
		Revenue:  revenue,
		Cache:    cache,
		CacheTTL: 5 * time.Minute,
		Logger:   discardLogger(),
	})

	got, err := svc.RevenueSeries(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestDashboardService_RevenueSeries_CorruptEntryDropped(t *testing.T) {
	ctrl := gomock.NewController(t)
	cache := mocks.NewMockCacheRepository(ctrl)
	revenue := mocks.NewMockRevenueRepository(ctrl)

	want := testRevenue()
	cache.EXPECT().Get(gomock.Any(), "dashboard:revenue").Return([]byte("{not json"), nil)
	cache.EXPECT().Delete(gomock.Any(), "dashboard:revenue").Return(true, nil)
	revenue.EXPECT().List(gomock.Any()).Return(want, nil)
	cache.EXPECT().Set(gomock.Any(), "dashboard:revenue", gomock.Any(), gomock.Any()).Return(nil)

	svc := service.NewDashboardService(service.DashboardServiceOptions{
		Revenue: revenue,
		Cache:   cache,
		Logger:  discardLogger(),
	})

	got, err := svc.RevenueSeries(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestDashboardService_RevenueSeries_CacheTroubleDegrades(t *testing.T) {
	ctrl := gomock.NewController(t)
	cache := mocks.NewMockCacheRepository(ctrl)
	revenue := mocks.NewMockRevenueRepository(ctrl)

	want := testRevenue()
	cache.EXPECT().Get(gomock.Any(), "dashboard:revenue").Return(nil, assert.AnError)
	revenue.EXPECT().List(gomock.Any()).Return(want, nil)
	cache.EXPECT().Set(gomock.Any(), "dashboard:revenue", gomock.Any(), gomock.Any()).Return(assert.AnError)

	svc := service.NewDashboardService(service.DashboardServiceOptions{
		Revenue: revenue,
		Cache:   cache,
		Logger:  discardLogger(),
	})

	got, err := svc.RevenueSeries(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestDashboardService_RevenueSeries_NoCacheConfigured(t *testing.T) {
	ctrl := gomock.NewController(t)
	revenue := mocks.NewMockRevenueRepository(ctrl)

	want := testRevenue()
	revenue.EXPECT().List(gomock.Any()).Return(want, nil)

	svc := service.NewDashboardService(service.DashboardServiceOptions{
		Revenue: revenue,
		Logger:  discardLogger(),
	})

	got, err := svc.RevenueSeries(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestDashboardService_Overview(t *testing.T) {
	ctrl := gomock.NewController(t)
	invoices := mocks.NewMockInvoiceRepository(ctrl)
	revenue := mocks.NewMockRevenueRepository(ctrl)

	cards := model.CardData{
		InvoiceCount:  13,
		CustomerCount: 6,
		PendingTotal:  12550,
		PaidTotal:     204866,
	}
	series := testRevenue()
	latest := []model.InvoiceWithCustomer{{CustomerName: "Acme Corp"}}

	invoices.EXPECT().CardData(gomock.Any()).Return(cards, nil)
	revenue.EXPECT().List(gomock.Any()).Return(series, nil)
	invoices.EXPECT().Latest(gomock.Any(), 5).Return(latest, nil)

	svc := service.NewDashboardService(service.DashboardServiceOptions{
		Invoices: invoices,
		Revenue:  revenue,
		Logger:   discardLogger(),
	})

	overview, err := svc.Overview(context.Background())
	require.NoError(t, err)
	assert.Equal(t, cards, overview.Cards)
	assert.Equal(t, series, overview.Revenue)
	assert.Equal(t, latest, overview.Latest)
}

func TestDashboardService_Overview_PartialFailureFailsPage(t *testing.T) {
	ctrl := gomock.NewController(t)
	invoices := mocks.NewMockInvoiceRepository(ctrl)
	revenue := mocks.NewMockRevenueRepository(ctrl)

	invoices.EXPECT().CardData(gomock.Any()).Return(model.CardData{}, assert.AnError)
	revenue.EXPECT().List(gomock.Any()).Return(testRevenue(), nil).AnyTimes()
	invoices.EXPECT().Latest(gomock.Any(), gomock.Any()).
		Return([]model.InvoiceWithCustomer{}, nil).AnyTimes()

	svc := service.NewDashboardService(service.DashboardServiceOptions{
		Invoices: invoices,
		Revenue:  revenue,
		Logger:   discardLogger(),
	})

	_, err := svc.Overview(context.Background())
	require.ErrorIs(t, err, assert.AnError)
}

func TestGenerateYAxis(t *testing.T) {
	tests := []struct {
		name         string
		revenue      []model.Revenue
		wantTop      int64
		wantLabels   []string
	}{
		{
			name:       "empty series",
			revenue:    nil,
			wantTop:    0,
			wantLabels: []string{"$0K"},
		},
		{
			name:       "rounds up to next thousand",
			revenue:    []model.Revenue{{Month: "Jan", Revenue: 220000}},
			wantTop:    3000,
			wantLabels: []string{"$3K", "$2K", "$1K", "$0K"},
		},
		{
			name:       "exact thousand stays",
			revenue:    []model.Revenue{{Month: "Jan", Revenue: 200000}},
			wantTop:    2000,
			wantLabels: []string{"$2K", "$1K", "$0K"},
		},
		{
			name: "uses the maximum month",
			revenue: []model.Revenue{
				{Month: "Jan", Revenue: 100000},
				{Month: "Feb", Revenue: 380000},
				{Month: "Mar", Revenue: 50000},
			},
			wantTop:    4000,
			wantLabels: []string{"$4K", "$3K", "$2K", "$1K", "$0K"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			labels, top := service.GenerateYAxis(tt.revenue)
			assert.Equal(t, tt.wantTop, top)
			assert.Equal(t, tt.wantLabels, labels)
		})
	}
}
