package partner

import "context"

// CustomerRepository defines the interface for customer persistence
type CustomerRepository interface {
	// FindByID returns shared.ErrNotFound when the customer does not exist
	FindByID(ctx context.Context, id int64) (*Customer, error)
	Create(ctx context.Context, customer *Customer) error
}
