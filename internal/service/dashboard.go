package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/acme/invoicing-ui/internal/domain/model"
	"github.com/acme/invoicing-ui/internal/ports"
)

const (
	// revenueCacheKey holds the JSON-encoded revenue series.
	revenueCacheKey = "dashboard:revenue"

	defaultRevenueCacheTTL = 15 * time.Minute

	latestInvoicesLimit = 5
)

// DashboardServiceOptions groups dependencies for DashboardService.
type DashboardServiceOptions struct {
	Invoices ports.InvoiceRepository
	Revenue  ports.RevenueRepository
	Cache    ports.CacheRepository
	CacheTTL time.Duration
	Logger   *slog.Logger
}

// DashboardService assembles the dashboard overview from invoice aggregates,
// the latest invoices, and the cached revenue series.
type DashboardService struct {
	invoices ports.InvoiceRepository
	revenue  ports.RevenueRepository
	cache    ports.CacheRepository
	cacheTTL time.Duration
	logger   *slog.Logger
}

// NewDashboardService constructs a new DashboardService.
func NewDashboardService(opts DashboardServiceOptions) *DashboardService {
	ttl := opts.CacheTTL
	if ttl <= 0 {
		ttl = defaultRevenueCacheTTL
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &DashboardService{
		invoices: opts.Invoices,
		revenue:  opts.Revenue,
		cache:    opts.Cache,
		cacheTTL: ttl,
		logger:   logger,
	}
}

// Overview is everything the dashboard page renders.
type Overview struct {
	Cards   model.CardData
	Revenue []model.Revenue
	Latest  []model.InvoiceWithCustomer
}

// Overview fetches cards, revenue, and latest invoices concurrently.
// Any single failure fails the whole page.
func (s *DashboardService) Overview(ctx context.Context) (*Overview, error) {
	var out Overview

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		cards, err := s.invoices.CardData(gctx)
		if err != nil {
			return fmt.Errorf("card data: %w", err)
		}
		out.Cards = cards
		return nil
	})
	g.Go(func() error {
		revenue, err := s.RevenueSeries(gctx)
		if err != nil {
			return fmt.Errorf("revenue series: %w", err)
		}
		out.Revenue = revenue
		return nil
	})
	g.Go(func() error {
		latest, err := s.invoices.Latest(gctx, latestInvoicesLimit)
		if err != nil {
			return fmt.Errorf("latest invoices: %w", err)
		}
		out.Latest = latest
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &out, nil
}

// RevenueSeries returns the monthly revenue series, cache-aside through Redis.
// Cache trouble is logged and degrades to a direct read, never a failure.
func (s *DashboardService) RevenueSeries(ctx context.Context) ([]model.Revenue, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, revenueCacheKey)
		if err != nil {
			s.logger.WarnContext(ctx, "revenue cache read failed", "error", err)
		} else if cached != nil {
			var revenue []model.Revenue
			if jsonErr := json.Unmarshal(cached, &revenue); jsonErr == nil {
				return revenue, nil
			}
			// Corrupt entry; drop it and fall through to the database.
			if _, delErr := s.cache.Delete(ctx, revenueCacheKey); delErr != nil {
				s.logger.WarnContext(ctx, "revenue cache delete failed", "error", delErr)
			}
		}
	}

	revenue, err := s.revenue.List(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if encoded, jsonErr := json.Marshal(revenue); jsonErr == nil {
			if setErr := s.cache.Set(ctx, revenueCacheKey, encoded, s.cacheTTL); setErr != nil {
				s.logger.WarnContext(ctx, "revenue cache write failed", "error", setErr)
			}
		}
	}
	return revenue, nil
}

// GenerateYAxis builds chart labels from the revenue series: "$NK" steps of
// one thousand dollars from the rounded-up maximum down to zero. It returns
// the labels and the top label value in dollars.
func GenerateYAxis(revenue []model.Revenue) ([]string, int64) {
	var highestCents int64
	for _, r := range revenue {
		if r.Revenue > highestCents {
			highestCents = r.Revenue
		}
	}

	highestDollars := highestCents / 100
	topLabel := ((highestDollars + 999) / 1000) * 1000

	labels := make([]string, 0, topLabel/1000+1)
	for i := topLabel; i >= 0; i -= 1000 {
		labels = append(labels, fmt.Sprintf("$%dK", i/1000))
	}
	return labels, topLabel
}
