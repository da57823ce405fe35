package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/acme/invoicing-ui/internal/data/pgxutil"
	"github.com/acme/invoicing-ui/internal/domain/model"
)

var (
	// ErrInvoiceNotFound is returned when an invoice is not found.
	ErrInvoiceNotFound = errors.New("invoice not found")
	// ErrInvoiceCustomerMissing is returned when an invoice references a customer that does not exist.
	ErrInvoiceCustomerMissing = errors.New("invoice customer does not exist")
)

// InvoiceRepo provides database operations for invoices.
type InvoiceRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewInvoiceRepo creates a new InvoiceRepo with real time provider.
func NewInvoiceRepo(db *sql.DB) *InvoiceRepo {
	return &InvoiceRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

// NewInvoiceRepoWithTimeProvider creates a new InvoiceRepo with a custom time provider (useful for tests).
func NewInvoiceRepoWithTimeProvider(db *sql.DB, tp TimeProvider) *InvoiceRepo {
	return &InvoiceRepo{DB: db, timeProvider: tp}
}

// SQL query constants for static queries (no dynamic WHERE/ORDER BY).
const (
	invoiceGetByIDQuery = `
		SELECT id, customer_id, amount, status, date
		FROM invoices
		WHERE id = $1`

	invoiceInsertQuery = `
		INSERT INTO invoices (customer_id, amount, status, date)
		VALUES ($1, $2, $3, $4)
		RETURNING id, customer_id, amount, status, date`

	// invoiceSearchFilter matches the submitted query against customer name,
	// customer email, and the textual forms of amount, date, and status.
	invoiceSearchFilter = `
		customers.name ILIKE $1 OR
		customers.email ILIKE $1 OR
		invoices.amount::text ILIKE $1 OR
		invoices.date::text ILIKE $1 OR
		invoices.status ILIKE $1`

	invoiceListFilteredQuery = `
		SELECT invoices.id,
		       invoices.customer_id,
		       invoices.amount,
		       invoices.status,
		       invoices.date,
		       customers.name AS customer_name,
		       customers.email AS customer_email,
		       customers.image_url
		FROM invoices
		JOIN customers ON invoices.customer_id = customers.id
		WHERE ` + invoiceSearchFilter + `
		ORDER BY invoices.date DESC
		LIMIT $2 OFFSET $3`

	invoiceCountFilteredQuery = `
		SELECT COUNT(*)
		FROM invoices
		JOIN customers ON invoices.customer_id = customers.id
		WHERE ` + invoiceSearchFilter

	invoiceLatestQuery = `
		SELECT invoices.id,
		       invoices.customer_id,
		       invoices.amount,
		       invoices.status,
		       invoices.date,
		       customers.name AS customer_name,
		       customers.email AS customer_email,
		       customers.image_url
		FROM invoices
		JOIN customers ON invoices.customer_id = customers.id
		ORDER BY invoices.date DESC
		LIMIT $1`

	invoiceCardDataQuery = `
		SELECT (SELECT COUNT(*) FROM invoices) AS invoice_count,
		       (SELECT COUNT(*) FROM customers) AS customer_count,
		       COALESCE(SUM(CASE WHEN status = 'pending' THEN amount ELSE 0 END), 0) AS pending_total,
		       COALESCE(SUM(CASE WHEN status = 'paid' THEN amount ELSE 0 END), 0) AS paid_total
		FROM invoices`
)

// Create inserts a new invoice dated with the given day.
func (r *InvoiceRepo) Create(
	ctx context.Context,
	req *model.CreateInvoiceRequest,
	date time.Time,
) (*model.Invoice, error) {
	if req == nil {
		return nil, errors.New("create invoice request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if date.IsZero() {
		date = r.timeProvider.Now().UTC()
	}

	var out model.Invoice
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, invoiceInsertQuery,
			req.CustomerID,
			req.Amount,
			req.Status,
			date,
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Invoice])
		return err
	}); err != nil {
		return nil, mapConstraintErr(err, nil, ErrInvoiceCustomerMissing)
	}
	return &out, nil
}

// Update updates fields of an invoice.
func (r *InvoiceRepo) Update(
	ctx context.Context,
	id string,
	req model.UpdateInvoiceRequest,
) (*model.Invoice, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	setClause, args := r.buildUpdateClause(req)
	args = append(args, id)
	query := "UPDATE invoices SET " + setClause + " WHERE id = $" + strconv.Itoa(len(args)) +
		" RETURNING id, customer_id, amount, status, date"

	var out model.Invoice
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		var e error
		out, e = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Invoice])
		return e
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrInvoiceNotFound
		}
		return nil, mapConstraintErr(err, nil, ErrInvoiceCustomerMissing)
	}
	return &out, nil
}

// buildUpdateClause builds the SQL SET clause and args for updating an invoice based on the request.
func (r *InvoiceRepo) buildUpdateClause(req model.UpdateInvoiceRequest) (string, []any) {
	setParts := make([]string, 0, 3)
	args := make([]any, 0, 4)
	nextIdx := func() int { return len(args) + 1 }

	if req.CustomerID != nil {
		setParts = append(setParts, fmt.Sprintf("customer_id = $%d", nextIdx()))
		args = append(args, strings.TrimSpace(*req.CustomerID))
	}
	if req.Amount != nil {
		setParts = append(setParts, fmt.Sprintf("amount = $%d", nextIdx()))
		args = append(args, *req.Amount)
	}
	if req.Status != nil {
		setParts = append(setParts, fmt.Sprintf("status = $%d", nextIdx()))
		args = append(args, *req.Status)
	}

	return strings.Join(setParts, ", "), args
}

// Delete deletes an invoice by ID.
func (r *InvoiceRepo) Delete(ctx context.Context, id string) (bool, error) {
	var rows int64
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		ct, err := conn.Exec(ctx, `DELETE FROM invoices WHERE id = $1`, id)
		if err != nil {
			return err
		}
		rows = ct.RowsAffected()
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("failed to delete invoice: %w", err)
	}
	return rows > 0, nil
}

// GetByID retrieves an invoice by ID.
func (r *InvoiceRepo) GetByID(ctx context.Context, id string) (*model.Invoice, error) {
	var invoice model.Invoice
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, invoiceGetByIDQuery, id)
		if err != nil {
			return err
		}
		defer rows.Close()
		invoice, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Invoice])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrInvoiceNotFound
		}
		return nil, fmt.Errorf("failed to get invoice by ID: %w", err)
	}
	return &invoice, nil
}

// ListFiltered retrieves invoices joined with their customers, filtered by a
// search substring and paginated.
func (r *InvoiceRepo) ListFiltered(
	ctx context.Context,
	opts model.InvoicesListOptions,
) ([]model.InvoiceWithCustomer, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = 50
	}
	offset := max(opts.Offset, 0)
	pattern := searchPattern(opts.Q)

	var rowsOut []model.InvoiceWithCustomer
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, invoiceListFilteredQuery, pattern, limit, offset)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.InvoiceWithCustomer])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}
	return rowsOut, nil
}

// CountFiltered counts invoices matching the same filter as ListFiltered.
func (r *InvoiceRepo) CountFiltered(ctx context.Context, q *string) (int, error) {
	pattern := searchPattern(q)

	var count int
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		return conn.QueryRow(ctx, invoiceCountFilteredQuery, pattern).Scan(&count)
	}); err != nil {
		return 0, fmt.Errorf("failed to count invoices: %w", err)
	}
	return count, nil
}

// Latest retrieves the most recently dated invoices with customer details.
func (r *InvoiceRepo) Latest(ctx context.Context, limit int) ([]model.InvoiceWithCustomer, error) {
	if limit <= 0 {
		limit = 5
	}

	var rowsOut []model.InvoiceWithCustomer
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, invoiceLatestQuery, limit)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.InvoiceWithCustomer])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to list latest invoices: %w", err)
	}
	return rowsOut, nil
}

// CardData aggregates counts and pending/paid totals for the dashboard cards.
func (r *InvoiceRepo) CardData(ctx context.Context) (model.CardData, error) {
	var out model.CardData
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, invoiceCardDataQuery)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.CardData])
		return err
	}); err != nil {
		return model.CardData{}, fmt.Errorf("failed to aggregate card data: %w", err)
	}
	return out, nil
}

// searchPattern turns an optional query into an ILIKE pattern, matching
// everything when the query is empty.
func searchPattern(q *string) string {
	if q == nil || strings.TrimSpace(*q) == "" {
		return "%"
	}
	return "%" + strings.TrimSpace(*q) + "%"
}
