package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/acme/invoicing-ui/internal/data/pgxutil"
	"github.com/acme/invoicing-ui/internal/domain/model"
)

var (
	// ErrCustomerNotFound is returned when a customer is not found.
	ErrCustomerNotFound = errors.New("customer not found")
	// ErrCustomerEmailExists is returned when attempting to create a customer with a duplicate email.
	ErrCustomerEmailExists = errors.New("customer email already exists")
)

// CustomerRepo provides database operations for customers.
type CustomerRepo struct {
	DB *sql.DB
}

// NewCustomerRepo creates a new CustomerRepo.
func NewCustomerRepo(db *sql.DB) *CustomerRepo {
	return &CustomerRepo{DB: db}
}

const (
	customerGetByIDQuery = `
		SELECT id, name, email, image_url, created_at
		FROM customers
		WHERE id = $1`

	customerListNamesQuery = `
		SELECT id, name
		FROM customers
		ORDER BY name ASC`

	customerInsertQuery = `
		INSERT INTO customers (name, email, image_url)
		VALUES ($1, $2, $3)
		RETURNING id, name, email, image_url, created_at`

	// Aggregates pending/paid totals per customer; LEFT JOIN keeps
	// customers without invoices in the result.
	customerSummariesQuery = `
		SELECT customers.id,
		       customers.name,
		       customers.email,
		       customers.image_url,
		       COUNT(invoices.id) AS total_invoices,
		       COALESCE(SUM(CASE WHEN invoices.status = 'pending' THEN invoices.amount ELSE 0 END), 0) AS total_pending,
		       COALESCE(SUM(CASE WHEN invoices.status = 'paid' THEN invoices.amount ELSE 0 END), 0) AS total_paid
		FROM customers
		LEFT JOIN invoices ON customers.id = invoices.customer_id
		WHERE customers.name ILIKE $1 OR customers.email ILIKE $1
		GROUP BY customers.id, customers.name, customers.email, customers.image_url
		ORDER BY customers.name ASC`
)

// ListSummaries retrieves customers joined with their invoice aggregates,
// optionally filtered by a name/email substring.
func (r *CustomerRepo) ListSummaries(
	ctx context.Context,
	opts model.CustomersListOptions,
) ([]model.CustomerSummary, error) {
	pattern := "%"
	if opts.Q != nil && strings.TrimSpace(*opts.Q) != "" {
		pattern = "%" + strings.TrimSpace(*opts.Q) + "%"
	}

	var rowsOut []model.CustomerSummary
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, customerSummariesQuery, pattern)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.CustomerSummary])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to list customer summaries: %w", err)
	}
	return rowsOut, nil
}

// ListNames retrieves all customer id/name pairs ordered by name.
func (r *CustomerRepo) ListNames(ctx context.Context) ([]model.CustomerName, error) {
	var rowsOut []model.CustomerName
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, customerListNamesQuery)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.CustomerName])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to list customer names: %w", err)
	}
	return rowsOut, nil
}

// GetByID retrieves a customer by ID.
func (r *CustomerRepo) GetByID(ctx context.Context, id string) (*model.Customer, error) {
	var customer model.Customer
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, customerGetByIDQuery, id)
		if err != nil {
			return err
		}
		defer rows.Close()
		customer, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Customer])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to get customer by ID: %w", err)
	}
	return &customer, nil
}

// Create inserts a new customer. Used by seeding and admin tooling.
func (r *CustomerRepo) Create(
	ctx context.Context,
	name, email, imageURL string,
) (*model.Customer, error) {
	if strings.TrimSpace(name) == "" {
		return nil, errors.New("name is required")
	}
	if strings.TrimSpace(email) == "" {
		return nil, errors.New("email is required")
	}

	var customer model.Customer
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, customerInsertQuery,
			strings.TrimSpace(name),
			strings.TrimSpace(email),
			imageURL,
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		customer, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Customer])
		return err
	})
	if err != nil {
		return nil, mapConstraintErr(err, ErrCustomerEmailExists, nil)
	}
	return &customer, nil
}
