package devseed

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/acme/invoicing-ui/internal/data"
	"github.com/acme/invoicing-ui/internal/domain/model"
)

// seedBcryptCost matches the default production cost so seeded accounts
// behave like real ones.
const seedBcryptCost = 10

// Services bundles the dependencies needed for development seeding.
type Services struct {
	DB        *sql.DB
	users     *data.UserRepo
	customers *data.CustomerRepo
	invoices  *data.InvoiceRepo
	revenue   *data.RevenueRepo
}

// NewServices constructs the repositories used for seeding from the provided DB.
func NewServices(db *sql.DB) Services {
	return Services{
		DB:        db,
		users:     data.NewUserRepo(db),
		customers: data.NewCustomerRepo(db),
		invoices:  data.NewInvoiceRepo(db),
		revenue:   data.NewRevenueRepo(db),
	}
}

// Run executes the full development seeding workflow against the provided DB.
// Every step is idempotent: rows that already exist are left alone.
func Run(ctx context.Context, svcs Services, logger *slog.Logger) error {
	failures := 0
	failures += seedUsers(ctx, svcs.users, logger)

	customerIDs, customerFailures := seedCustomers(ctx, svcs.customers, logger)
	failures += customerFailures

	if err := seedInvoices(ctx, svcs.invoices, customerIDs, logger); err != nil {
		return err
	}
	failures += seedRevenue(ctx, svcs.revenue, logger)

	if failures > 0 {
		return fmt.Errorf("%d seed errors; check logs", failures)
	}
	return nil
}

func seedUsers(ctx context.Context, repo *data.UserRepo, logger *slog.Logger) int {
	failures := 0
	users := []model.CreateUserRequest{
		{Name: "User", Email: "user@nextmail.com", Password: "123456"},
	}

	for _, req := range users {
		created, err := createUser(ctx, repo, req)
		if err != nil {
			if logger != nil {
				logger.ErrorContext(ctx, "failed to create user", "email", req.Email, "error", err)
			}
			failures++
			continue
		}
		if logger != nil {
			msg := "user already exists"
			if created {
				msg = "created user"
			}
			logger.InfoContext(ctx, msg, "email", req.Email)
		}
	}

	return failures
}

func createUser(ctx context.Context, repo *data.UserRepo, req model.CreateUserRequest) (bool, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), seedBcryptCost)
	if err != nil {
		return false, fmt.Errorf("hash password: %w", err)
	}
	if _, err := repo.Create(ctx, &req, string(hash)); err != nil {
		if errors.Is(err, data.ErrUserEmailExists) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

type customerSeed struct {
	name     string
	email    string
	imageURL string
}

func defaultCustomers() []customerSeed {
	return []customerSeed{
		{"Evil Rabbit", "evil@rabbit.com", "/static/customers/evil-rabbit.png"},
		{"Delba de Oliveira", "delba@oliveira.com", "/static/customers/delba-de-oliveira.png"},
		{"Lee Robinson", "lee@robinson.com", "/static/customers/lee-robinson.png"},
		{"Michael Novotny", "michael@novotny.com", "/static/customers/michael-novotny.png"},
		{"Amy Burns", "amy@burns.com", "/static/customers/amy-burns.png"},
		{"Balazs Orban", "balazs@orban.com", "/static/customers/balazs-orban.png"},
	}
}

// seedCustomers creates any missing customers and returns a name to id index
// for wiring invoices to their customers.
func seedCustomers(
	ctx context.Context,
	repo *data.CustomerRepo,
	logger *slog.Logger,
) (map[string]string, int) {
	failures := 0
	for _, seed := range defaultCustomers() {
		created, err := createCustomer(ctx, repo, seed)
		if err != nil {
			if logger != nil {
				logger.ErrorContext(ctx, "failed to create customer", "name", seed.name, "error", err)
			}
			failures++
			continue
		}
		if logger != nil {
			msg := "customer already exists"
			if created {
				msg = "created customer"
			}
			logger.InfoContext(ctx, msg, "name", seed.name)
		}
	}

	names, err := repo.ListNames(ctx)
	if err != nil {
		if logger != nil {
			logger.ErrorContext(ctx, "failed to index customers", "error", err)
		}
		return nil, failures + 1
	}

	index := make(map[string]string, len(names))
	for _, n := range names {
		index[n.Name] = n.ID
	}
	return index, failures
}

func createCustomer(ctx context.Context, repo *data.CustomerRepo, seed customerSeed) (bool, error) {
	if _, err := repo.Create(ctx, seed.name, seed.email, seed.imageURL); err != nil {
		if errors.Is(err, data.ErrCustomerEmailExists) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

type invoiceSeed struct {
	customerName string
	amount       int64 // cents
	status       model.InvoiceStatus
	daysAgo      int
}

func defaultInvoices() []invoiceSeed {
	return []invoiceSeed{
		{"Evil Rabbit", 15795, model.InvoiceStatusPending, 3},
		{"Delba de Oliveira", 20348, model.InvoiceStatusPending, 7},
		{"Michael Novotny", 3040, model.InvoiceStatusPaid, 12},
		{"Lee Robinson", 44800, model.InvoiceStatusPaid, 18},
		{"Amy Burns", 34577, model.InvoiceStatusPending, 25},
		{"Balazs Orban", 54246, model.InvoiceStatusPending, 32},
		{"Evil Rabbit", 66666, model.InvoiceStatusPending, 40},
		{"Lee Robinson", 50000, model.InvoiceStatusPaid, 51},
		{"Delba de Oliveira", 100000, model.InvoiceStatusPaid, 60},
		{"Michael Novotny", 1250, model.InvoiceStatusPaid, 74},
		{"Amy Burns", 850, model.InvoiceStatusPaid, 90},
		{"Balazs Orban", 8945, model.InvoiceStatusPaid, 110},
		{"Michael Novotny", 50000, model.InvoiceStatusPaid, 130},
	}
}

// seedInvoices loads the demo invoices unless invoices already exist.
// Invoices carry no natural key, so rerunning would otherwise duplicate them.
func seedInvoices(
	ctx context.Context,
	repo *data.InvoiceRepo,
	customerIDs map[string]string,
	logger *slog.Logger,
) error {
	count, err := repo.CountFiltered(ctx, nil)
	if err != nil {
		return fmt.Errorf("count invoices: %w", err)
	}
	if count > 0 {
		if logger != nil {
			logger.InfoContext(ctx, "invoices already present, skipping", "count", count)
		}
		return nil
	}

	now := time.Now().UTC()
	created := 0
	for _, seed := range defaultInvoices() {
		customerID, ok := customerIDs[seed.customerName]
		if !ok {
			return fmt.Errorf("invoice seed references unknown customer %q", seed.customerName)
		}
		req := &model.CreateInvoiceRequest{
			CustomerID: customerID,
			Amount:     seed.amount,
			Status:     seed.status,
		}
		date := now.AddDate(0, 0, -seed.daysAgo)
		if _, createErr := repo.Create(ctx, req, date); createErr != nil {
			return fmt.Errorf("create invoice for %q: %w", seed.customerName, createErr)
		}
		created++
	}

	if logger != nil {
		logger.InfoContext(ctx, "created invoices", "count", created)
	}
	return nil
}

func defaultRevenue() []model.Revenue {
	// Values are dollars from the demo dataset, stored in cents.
	months := []struct {
		month   string
		dollars int64
	}{
		{"Jan", 2000}, {"Feb", 1800}, {"Mar", 2200}, {"Apr", 2500},
		{"May", 2300}, {"Jun", 3200}, {"Jul", 3500}, {"Aug", 3700},
		{"Sep", 2500}, {"Oct", 2800}, {"Nov", 3000}, {"Dec", 4800},
	}
	out := make([]model.Revenue, 0, len(months))
	for _, m := range months {
		out = append(out, model.Revenue{Month: m.month, Revenue: m.dollars * 100})
	}
	return out
}

func seedRevenue(ctx context.Context, repo *data.RevenueRepo, logger *slog.Logger) int {
	failures := 0
	for _, rev := range defaultRevenue() {
		if err := repo.Upsert(ctx, rev); err != nil {
			if logger != nil {
				logger.ErrorContext(ctx, "failed to upsert revenue", "month", rev.Month, "error", err)
			}
			failures++
		}
	}
	if logger != nil && failures == 0 {
		logger.InfoContext(ctx, "revenue series seeded")
	}
	return failures
}
