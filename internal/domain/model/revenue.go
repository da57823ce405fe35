//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

// Revenue is one month of aggregated revenue, in cents.
// Month is a short month name ("Jan", "Feb", ...).
type Revenue struct {
	Month   string `json:"month"   db:"month"`
	Revenue int64  `json:"revenue" db:"revenue"`
}

// CardData backs the dashboard summary cards. Totals are in cents.
type CardData struct {
	InvoiceCount  int   `json:"invoice_count"  db:"invoice_count"`
	CustomerCount int   `json:"customer_count" db:"customer_count"`
	PendingTotal  int64 `json:"pending_total"  db:"pending_total"`
	PaidTotal     int64 `json:"paid_total"     db:"paid_total"`
}
