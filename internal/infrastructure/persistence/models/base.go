package models

import (
	"time"

	"github.com/storefront/backend/internal/domain/shared"
)

// BaseModel is embedded first in every row type, so gorm emits id and the
// timestamps ahead of the table's own columns.
type BaseModel struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (m *BaseModel) ToDomain() shared.BaseEntity {
	return shared.BaseEntity{ID: m.ID, CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt}
}

func (m *BaseModel) FromDomainBaseEntity(e shared.BaseEntity) {
	m.ID, m.CreatedAt, m.UpdatedAt = e.ID, e.CreatedAt, e.UpdatedAt
}

// All lists the row types parents first, the order AutoMigrate needs.
func All() []any {
	return []any{
		&MerchantModel{},
		&ItemModel{},
		&CustomerModel{},
		&InvoiceModel{},
		&InvoiceItemModel{},
		&TransactionModel{},
	}
}
