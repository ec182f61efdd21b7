package trade

import "context"

// InvoiceRepository defines the interface for invoice persistence.
// Invoices are written by upstream order and payment processes; the API only reads them.
type InvoiceRepository interface {
	// FindByID loads an invoice with its line entries and transactions
	FindByID(ctx context.Context, id int64) (*Invoice, error)
	// Create inserts the invoice together with its line entries and transactions
	Create(ctx context.Context, invoice *Invoice) error
}
