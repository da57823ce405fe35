package data

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/acme/invoicing-ui/internal/data/pgxutil"
	"github.com/acme/invoicing-ui/internal/domain/model"
)

// RevenueRepo provides database operations for the monthly revenue series.
type RevenueRepo struct {
	DB *sql.DB
}

// NewRevenueRepo creates a new RevenueRepo.
func NewRevenueRepo(db *sql.DB) *RevenueRepo {
	return &RevenueRepo{DB: db}
}

const (
	revenueListQuery = `
		SELECT month, revenue
		FROM revenue`

	revenueUpsertQuery = `
		INSERT INTO revenue (month, revenue)
		VALUES ($1, $2)
		ON CONFLICT (month) DO UPDATE SET revenue = EXCLUDED.revenue`
)

// List retrieves all revenue rows.
func (r *RevenueRepo) List(ctx context.Context) ([]model.Revenue, error) {
	var rowsOut []model.Revenue
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, revenueListQuery)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.Revenue])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to list revenue: %w", err)
	}
	return rowsOut, nil
}

// Upsert writes one month of revenue, replacing any existing value.
// Used by seeding and admin tooling.
func (r *RevenueRepo) Upsert(ctx context.Context, rev model.Revenue) error {
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		_, err := conn.Exec(ctx, revenueUpsertQuery, rev.Month, rev.Revenue)
		return err
	}); err != nil {
		return fmt.Errorf("failed to upsert revenue for %s: %w", rev.Month, err)
	}
	return nil
}
