package models

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/storefront/backend/internal/domain/partner"
	"github.com/storefront/backend/internal/domain/trade"
)

// CustomerModel is the persistence model for the Customer domain entity.
type CustomerModel struct {
	BaseModel
	FirstName string `gorm:"type:varchar(255);not null"`
	LastName  string `gorm:"type:varchar(255);not null"`
}

// TableName returns the table name for GORM
func (CustomerModel) TableName() string {
	return "customers"
}

// ToDomain converts the persistence model to a domain Customer entity.
func (m *CustomerModel) ToDomain() *partner.Customer {
	return &partner.Customer{
		BaseEntity: m.BaseModel.ToDomain(),
		FirstName:  m.FirstName,
		LastName:   m.LastName,
	}
}

// CustomerModelFromDomain creates a new persistence model from a domain Customer entity.
func CustomerModelFromDomain(c *partner.Customer) *CustomerModel {
	m := &CustomerModel{FirstName: c.FirstName, LastName: c.LastName}
	m.FromDomainBaseEntity(c.BaseEntity)
	return m
}

// InvoiceModel is the persistence model for the Invoice aggregate.
type InvoiceModel struct {
	BaseModel
	CustomerID   int64               `gorm:"not null;index"`
	MerchantID   int64               `gorm:"not null;index"`
	Status       trade.InvoiceStatus `gorm:"type:varchar(20);not null;index"`
	LineEntries  []InvoiceItemModel  `gorm:"foreignKey:InvoiceID"`
	Transactions []TransactionModel  `gorm:"foreignKey:InvoiceID"`
}

// TableName returns the table name for GORM
func (InvoiceModel) TableName() string {
	return "invoices"
}

// InvoiceItemModel is the persistence model for an invoice line entry.
type InvoiceItemModel struct {
	ID        int64           `gorm:"primaryKey;autoIncrement"`
	InvoiceID int64           `gorm:"not null;index"`
	ItemID    int64           `gorm:"not null;index"`
	Quantity  int             `gorm:"not null"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	CreatedAt time.Time       `gorm:"not null"`
	UpdatedAt time.Time       `gorm:"not null"`
}

// TableName returns the table name for GORM
func (InvoiceItemModel) TableName() string {
	return "invoice_items"
}

// TransactionModel is the persistence model for a payment transaction.
type TransactionModel struct {
	ID               int64                   `gorm:"primaryKey;autoIncrement"`
	InvoiceID        int64                   `gorm:"not null;index"`
	CreditCardNumber string                  `gorm:"type:varchar(32)"`
	Result           trade.TransactionResult `gorm:"type:varchar(20);not null"`
	CreatedAt        time.Time               `gorm:"not null"`
	UpdatedAt        time.Time               `gorm:"not null"`
}

// TableName returns the table name for GORM
func (TransactionModel) TableName() string {
	return "transactions"
}

// ToDomain converts the persistence model to a domain Invoice aggregate.
func (m *InvoiceModel) ToDomain() *trade.Invoice {
	inv := &trade.Invoice{
		BaseEntity: m.BaseModel.ToDomain(),
		CustomerID: m.CustomerID,
		MerchantID: m.MerchantID,
		Status:     m.Status,
	}
	for _, e := range m.LineEntries {
		inv.LineEntries = append(inv.LineEntries, trade.LineEntry{
			ID:        e.ID,
			InvoiceID: e.InvoiceID,
			ItemID:    e.ItemID,
			Quantity:  e.Quantity,
			UnitPrice: e.UnitPrice,
			CreatedAt: e.CreatedAt,
		})
	}
	for _, t := range m.Transactions {
		inv.Transactions = append(inv.Transactions, trade.Transaction{
			ID:               t.ID,
			InvoiceID:        t.InvoiceID,
			CreditCardNumber: t.CreditCardNumber,
			Result:           t.Result,
			CreatedAt:        t.CreatedAt,
		})
	}
	return inv
}

// InvoiceModelFromDomain creates a new persistence model, children included.
func InvoiceModelFromDomain(inv *trade.Invoice) *InvoiceModel {
	m := &InvoiceModel{
		CustomerID: inv.CustomerID,
		MerchantID: inv.MerchantID,
		Status:     inv.Status,
	}
	m.FromDomainBaseEntity(inv.BaseEntity)
	for _, e := range inv.LineEntries {
		m.LineEntries = append(m.LineEntries, InvoiceItemModel{
			ID:        e.ID,
			InvoiceID: e.InvoiceID,
			ItemID:    e.ItemID,
			Quantity:  e.Quantity,
			UnitPrice: e.UnitPrice,
			CreatedAt: e.CreatedAt,
			UpdatedAt: e.CreatedAt,
		})
	}
	for _, t := range inv.Transactions {
		m.Transactions = append(m.Transactions, TransactionModel{
			ID:               t.ID,
			InvoiceID:        t.InvoiceID,
			CreditCardNumber: t.CreditCardNumber,
			Result:           t.Result,
			CreatedAt:        t.CreatedAt,
			UpdatedAt:        t.CreatedAt,
		})
	}
	return m
}
