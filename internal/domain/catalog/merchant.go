package catalog

import (
	"strings"

	"github.com/storefront/backend/internal/domain/shared"
)

// Merchant sells items and owns invoices
type Merchant struct {
	shared.BaseEntity
	Name string
}

// NewMerchant creates a new merchant
func NewMerchant(name string) (*Merchant, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		var v shared.Violations
		v.Add("name", "can't be blank")
		return nil, v.Err()
	}
	return &Merchant{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
	}, nil
}
