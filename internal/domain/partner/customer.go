package partner

import (
	"strings"

	"github.com/storefront/backend/internal/domain/shared"
)

// Customer places invoices. Nothing in the catalog depends on its fields.
type Customer struct {
	shared.BaseEntity
	FirstName string
	LastName  string
}

// NewCustomer creates a new customer
func NewCustomer(firstName, lastName string) (*Customer, error) {
	var v shared.Violations
	if strings.TrimSpace(firstName) == "" {
		v.Add("first_name", "can't be blank")
	}
	if strings.TrimSpace(lastName) == "" {
		v.Add("last_name", "can't be blank")
	}
	if err := v.Err(); err != nil {
		return nil, err
	}
	return &Customer{
		BaseEntity: shared.NewBaseEntity(),
		FirstName:  strings.TrimSpace(firstName),
		LastName:   strings.TrimSpace(lastName),
	}, nil
}

// FullName returns "First Last"
func (c *Customer) FullName() string {
	return c.FirstName + " " + c.LastName
}
