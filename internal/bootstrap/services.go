package bootstrap

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/acme/invoicing-ui/config"
	"github.com/acme/invoicing-ui/internal/adapters/sessiontoken"
	"github.com/acme/invoicing-ui/internal/data"
	"github.com/acme/invoicing-ui/internal/ports"
	"github.com/acme/invoicing-ui/internal/service"
)

const shutdownWaitTimeout = 10 * time.Second

// ServiceContainer holds all application services.
type ServiceContainer struct {
	Auth      *service.AuthService
	Invoices  *service.InvoiceService
	Customers *service.CustomerService
	Dashboard *service.DashboardService
	Tokens    ports.TokenCodec

	// Repositories kept for tooling (seeding, admin commands).
	Users *data.UserRepo
}

// ServiceDeps groups dependencies for service initialization.
type ServiceDeps struct {
	Config      *config.AppConfig
	DB          *sql.DB
	RedisClient redis.UniversalClient
	Logger      *slog.Logger
}

// serviceRepositories groups data adapters backing service ports.
type serviceRepositories struct {
	UserRepo     *data.UserRepo
	CustomerRepo *data.CustomerRepo
	InvoiceRepo  *data.InvoiceRepo
	RevenueRepo  *data.RevenueRepo
	CacheRepo    *data.RedisCacheRepo
}

// buildRepositories builds repositories backing service ports; no business rules here.
func buildRepositories(db *sql.DB, redisClient redis.UniversalClient) *serviceRepositories {
	repos := &serviceRepositories{
		UserRepo:     data.NewUserRepo(db),
		CustomerRepo: data.NewCustomerRepo(db),
		InvoiceRepo:  data.NewInvoiceRepo(db),
		RevenueRepo:  data.NewRevenueRepo(db),
	}
	if redisClient != nil {
		repos.CacheRepo = data.NewRedisCacheRepo(redisClient)
	}
	return repos
}

// NewServices wires repositories, the session codec, and domain services.
func NewServices(deps *ServiceDeps) (ServiceContainer, error) {
	if deps == nil || deps.Config == nil {
		return ServiceContainer{}, errors.New("service dependencies are required")
	}
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	repos := buildRepositories(deps.DB, deps.RedisClient)

	codec, err := sessiontoken.New(sessiontoken.Options{
		Secret: []byte(deps.Config.Auth.SessionSecret),
		TTL:    deps.Config.Auth.SessionTTL,
	})
	if err != nil {
		return ServiceContainer{}, fmt.Errorf("build session codec: %w", err)
	}

	dashboardOpts := service.DashboardServiceOptions{
		Invoices: repos.InvoiceRepo,
		Revenue:  repos.RevenueRepo,
		CacheTTL: deps.Config.Cache.RevenueTTL,
		Logger:   logger,
	}
	// Leave the cache port nil when redis is not configured so the
	// dashboard falls through to the database on every load.
	if repos.CacheRepo != nil {
		dashboardOpts.Cache = repos.CacheRepo
	}

	return ServiceContainer{
		Auth: service.NewAuthService(service.AuthServiceOptions{
			Users:  repos.UserRepo,
			Tokens: codec,
		}),
		Invoices: service.NewInvoiceService(service.InvoiceServiceOptions{
			Invoices: repos.InvoiceRepo,
		}),
		Customers: service.NewCustomerService(service.CustomerServiceOptions{
			Customers: repos.CustomerRepo,
		}),
		Dashboard: service.NewDashboardService(dashboardOpts),
		Tokens:    codec,
		Users:     repos.UserRepo,
	}, nil
}

// RunConfig groups everything Run needs to serve until shutdown.
type RunConfig struct {
	Config   *config.AppConfig
	Services ServiceContainer
	Logger   *slog.Logger
}

// Run starts the HTTP server and blocks until a shutdown signal arrives
// or the server fails, then stops everything gracefully.
func Run(cfg *RunConfig) error {
	if cfg == nil || cfg.Config == nil {
		return errors.New("run config is required")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	server := StartHTTPServer(&HTTPServerConfig{
		Config:   cfg.Config,
		Services: cfg.Services,
		Logger:   logger,
	})

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	<-quit
	logger.Info("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownWaitTimeout)
	defer cancel()

	return ShutdownHTTPServer(shutdownCtx, server, logger)
}
