package trade

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/storefront/backend/internal/domain/shared"
)

// InvoiceStatus is the fulfilment status of an invoice
type InvoiceStatus string

const (
	InvoiceStatusPending  InvoiceStatus = "pending"
	InvoiceStatusShipped  InvoiceStatus = "shipped"
	InvoiceStatusPackaged InvoiceStatus = "packaged"
)

// TransactionResult is the outcome of a payment attempt
type TransactionResult string

const (
	TransactionResultSuccess TransactionResult = "success"
	TransactionResultFailure TransactionResult = "failure"
)

// Invoice is a customer's order placed with one merchant
type Invoice struct {
	shared.BaseEntity
	CustomerID   int64
	MerchantID   int64
	Status       InvoiceStatus
	LineEntries  []LineEntry
	Transactions []Transaction
}

// LineEntry records one item's quantity and sale-time price on an invoice
type LineEntry struct {
	ID        int64
	InvoiceID int64
	ItemID    int64
	Quantity  int
	UnitPrice decimal.Decimal
	CreatedAt time.Time
}

// Transaction is a payment attempt against an invoice
type Transaction struct {
	ID               int64
	InvoiceID        int64
	CreditCardNumber string
	Result           TransactionResult
	CreatedAt        time.Time
}

// NewInvoice creates an invoice with no line entries or transactions
func NewInvoice(customerID, merchantID int64, status InvoiceStatus) (*Invoice, error) {
	var v shared.Violations
	if customerID <= 0 {
		v.Add("customer", "must exist")
	}
	if merchantID <= 0 {
		v.Add("merchant", "must exist")
	}
	if status == "" {
		v.Add("status", "can't be blank")
	}
	if err := v.Err(); err != nil {
		return nil, err
	}
	return &Invoice{
		BaseEntity: shared.NewBaseEntity(),
		CustomerID: customerID,
		MerchantID: merchantID,
		Status:     status,
	}, nil
}

// AddLineEntry appends a line entry at the given sale-time price
func (inv *Invoice) AddLineEntry(itemID int64, quantity int, unitPrice decimal.Decimal) error {
	var v shared.Violations
	if itemID <= 0 {
		v.Add("item", "must exist")
	}
	if quantity <= 0 {
		v.Add("quantity", "must be greater than 0")
	}
	if err := v.Err(); err != nil {
		return err
	}
	inv.LineEntries = append(inv.LineEntries, LineEntry{
		InvoiceID: inv.ID,
		ItemID:    itemID,
		Quantity:  quantity,
		UnitPrice: unitPrice,
		CreatedAt: inv.CreatedAt,
	})
	return nil
}

// RecordTransaction appends a payment attempt
func (inv *Invoice) RecordTransaction(cardNumber string, result TransactionResult) {
	inv.Transactions = append(inv.Transactions, Transaction{
		InvoiceID:        inv.ID,
		CreditCardNumber: cardNumber,
		Result:           result,
		CreatedAt:        inv.CreatedAt,
	})
}

// Amount returns quantity × unit price
func (e LineEntry) Amount() decimal.Decimal {
	return e.UnitPrice.Mul(decimal.NewFromInt(int64(e.Quantity)))
}

// CountsTowardRevenue reports whether the invoice is shipped and has at least
// one successful transaction. Additional transactions never change the answer.
func (inv *Invoice) CountsTowardRevenue() bool {
	if inv.Status != InvoiceStatusShipped {
		return false
	}
	for _, t := range inv.Transactions {
		if t.Result == TransactionResultSuccess {
			return true
		}
	}
	return false
}

// Revenue returns the invoice's contribution to revenue: the sum of its line
// amounts when it counts toward revenue, zero otherwise.
func (inv *Invoice) Revenue() decimal.Decimal {
	total := decimal.Zero
	if !inv.CountsTowardRevenue() {
		return total
	}
	for _, e := range inv.LineEntries {
		total = total.Add(e.Amount())
	}
	return total
}
