package models

import (
	"github.com/shopspring/decimal"
	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/shared"
)

// MerchantModel is the persistence model for the Merchant domain entity.
type MerchantModel struct {
	BaseModel
	Name string `gorm:"type:varchar(255);not null"`
}

// TableName returns the table name for GORM
func (MerchantModel) TableName() string {
	return "merchants"
}

// ToDomain converts the persistence model to a domain Merchant entity.
func (m *MerchantModel) ToDomain() *catalog.Merchant {
	return &catalog.Merchant{
		BaseEntity: m.BaseModel.ToDomain(),
		Name:       m.Name,
	}
}

// FromDomain populates the persistence model from a domain Merchant entity.
func (m *MerchantModel) FromDomain(merchant *catalog.Merchant) {
	m.FromDomainBaseEntity(merchant.BaseEntity)
	m.Name = merchant.Name
}

// MerchantModelFromDomain creates a new persistence model from a domain Merchant entity.
func MerchantModelFromDomain(merchant *catalog.Merchant) *MerchantModel {
	m := &MerchantModel{}
	m.FromDomain(merchant)
	return m
}

// ItemModel is the persistence model for the Item domain entity.
type ItemModel struct {
	BaseModel
	Name        string          `gorm:"type:varchar(255);not null"`
	Description string          `gorm:"type:text;not null"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	MerchantID  int64           `gorm:"not null;index"`
}

// TableName returns the table name for GORM
func (ItemModel) TableName() string {
	return "items"
}

// ToDomain converts the persistence model to a domain Item entity.
func (m *ItemModel) ToDomain() *catalog.Item {
	return &catalog.Item{
		BaseAggregateRoot: shared.BaseAggregateRoot{
			BaseEntity: m.BaseModel.ToDomain(),
		},
		Name:        m.Name,
		Description: m.Description,
		UnitPrice:   m.UnitPrice,
		MerchantID:  m.MerchantID,
	}
}

// FromDomain populates the persistence model from a domain Item entity.
func (m *ItemModel) FromDomain(item *catalog.Item) {
	m.FromDomainBaseEntity(item.BaseEntity)
	m.Name = item.Name
	m.Description = item.Description
	m.UnitPrice = item.UnitPrice
	m.MerchantID = item.MerchantID
}

// ItemModelFromDomain creates a new persistence model from a domain Item entity.
func ItemModelFromDomain(item *catalog.Item) *ItemModel {
	m := &ItemModel{}
	m.FromDomain(item)
	return m
}
