//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"errors"
	"strings"
	"time"
)

// InvoiceStatus describes whether an invoice has been paid.
type InvoiceStatus string

const (
	InvoiceStatusPending InvoiceStatus = "pending"
	InvoiceStatusPaid    InvoiceStatus = "paid"
)

// Valid reports whether the invoice status is supported.
func (s InvoiceStatus) Valid() bool {
	switch s {
	case InvoiceStatusPending, InvoiceStatusPaid:
		return true
	default:
		return false
	}
}

// ParseInvoiceStatus normalizes a status string and reports whether it is supported.
func ParseInvoiceStatus(value string) (InvoiceStatus, bool) {
	status := InvoiceStatus(strings.ToLower(strings.TrimSpace(value)))
	if status.Valid() {
		return status, true
	}
	return "", false
}

// Invoice represents a customer invoice. Amount is in cents to avoid
// floating-point drift on money.
type Invoice struct {
	ID         string        `json:"id"          db:"id"`
	CustomerID string        `json:"customer_id" db:"customer_id"`
	Amount     int64         `json:"amount"      db:"amount"`
	Status     InvoiceStatus `json:"status"      db:"status"`
	Date       time.Time     `json:"date"        db:"date"`
}

// InvoiceWithCustomer is an invoice row joined with its customer for display.
type InvoiceWithCustomer struct {
	ID            string        `json:"id"             db:"id"`
	CustomerID    string        `json:"customer_id"    db:"customer_id"`
	Amount        int64         `json:"amount"         db:"amount"`
	Status        InvoiceStatus `json:"status"         db:"status"`
	Date          time.Time     `json:"date"           db:"date"`
	CustomerName  string        `json:"customer_name"  db:"customer_name"`
	CustomerEmail string        `json:"customer_email" db:"customer_email"`
	ImageURL      string        `json:"image_url"      db:"image_url"`
}

// InvoicesListOptions controls paging and filtering for listing invoices.
// Q matches customer name, customer email, amount, date, or status via
// ILIKE substring.
type InvoicesListOptions struct {
	Limit  int
	Offset int
	Q      *string
}

// CreateInvoiceRequest represents parameters to create an Invoice.
// Amount is in cents.
type CreateInvoiceRequest struct {
	CustomerID string        `json:"customer_id"`
	Amount     int64         `json:"amount"`
	Status     InvoiceStatus `json:"status"`
}

// UpdateInvoiceRequest represents parameters to update an Invoice.
type UpdateInvoiceRequest struct {
	CustomerID *string        `json:"customer_id,omitempty"`
	Amount     *int64         `json:"amount,omitempty"`
	Status     *InvoiceStatus `json:"status,omitempty"`
}

// Validate validates CreateInvoiceRequest.
func (r *CreateInvoiceRequest) Validate() error {
	if strings.TrimSpace(r.CustomerID) == "" {
		return errors.New("customer_id is required")
	}
	if r.Amount <= 0 {
		return errors.New("amount must be greater than zero")
	}
	if !r.Status.Valid() {
		return errors.New("invalid status")
	}
	return nil
}

// HasUpdates reports whether any field is set in UpdateInvoiceRequest.
func (r *UpdateInvoiceRequest) HasUpdates() bool {
	return r.CustomerID != nil || r.Amount != nil || r.Status != nil
}

// Validate validates UpdateInvoiceRequest, ensuring at least one field is set and values are sane.
func (r *UpdateInvoiceRequest) Validate() error {
	if !r.HasUpdates() {
		return errors.New("at least one field must be updated")
	}
	if r.CustomerID != nil && strings.TrimSpace(*r.CustomerID) == "" {
		return errors.New("customer_id cannot be empty")
	}
	if r.Amount != nil && *r.Amount <= 0 {
		return errors.New("amount must be greater than zero")
	}
	if r.Status != nil && !r.Status.Valid() {
		return errors.New("invalid status")
	}
	return nil
}
