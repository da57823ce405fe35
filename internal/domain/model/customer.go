//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import "time"

// Customer represents a billable customer.
type Customer struct {
	ID        string    `json:"id"         db:"id"`
	Name      string    `json:"name"       db:"name"`
	Email     string    `json:"email"      db:"email"`
	ImageURL  string    `json:"image_url"  db:"image_url"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// CustomerName is the minimal shape used to populate select inputs.
type CustomerName struct {
	ID   string `json:"id"   db:"id"`
	Name string `json:"name" db:"name"`
}

// CustomerSummary is a customer row joined with invoice aggregates.
// Totals are in cents.
type CustomerSummary struct {
	ID            string `json:"id"             db:"id"`
	Name          string `json:"name"           db:"name"`
	Email         string `json:"email"          db:"email"`
	ImageURL      string `json:"image_url"      db:"image_url"`
	TotalInvoices int    `json:"total_invoices" db:"total_invoices"`
	TotalPending  int64  `json:"total_pending"  db:"total_pending"`
	TotalPaid     int64  `json:"total_paid"     db:"total_paid"`
}

// CustomersListOptions controls filtering for listing customer summaries.
// Q matches name or email via ILIKE substring.
type CustomersListOptions struct {
	Q *string
}
