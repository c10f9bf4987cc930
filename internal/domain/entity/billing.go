package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/mamisoa/girofle-api/pkg/money"
	"gorm.io/gorm"
)

// Billing is the full invoicing record of a receipt. A receipt owns at most
// one billing; its invoice number is unique across the whole table.
// Financial amounts use 2-decimal precision.
type Billing struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	ReceiptID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"receipt_id"`
	PaymentDate    time.Time `gorm:"not null" json:"payment_date"`
	InvoiceNo      string    `gorm:"size:100;not null;uniqueIndex" json:"invoice_no"`
	Designation    string    `gorm:"size:255;not null" json:"designation"`
	DepositAccount string    `gorm:"size:255;not null" json:"deposit_account"`
	UnitPrice      float64   `gorm:"type:decimal(15,2);not null" json:"unit_price"`
	Quantity       float64   `gorm:"type:decimal(10,2);not null" json:"quantity"`
	AdvancePayment float64   `gorm:"type:decimal(15,2);default:0" json:"advance_payment"`
	AmountPaid     float64   `gorm:"type:decimal(15,2);not null" json:"amount_paid"`
	// TotalPrice is recomputed from unit price and quantity before every
	// persist; it is never accepted from the caller.
	TotalPrice float64   `gorm:"type:decimal(15,2);not null" json:"total_price"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	Receipt *Receipt `gorm:"foreignKey:ReceiptID" json:"receipt,omitempty"`
}

// BeforeCreate generates a UUID before creating a new billing
func (b *Billing) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Billing model
func (Billing) TableName() string {
	return "billings"
}

// ComputeTotalPrice returns unit price times quantity rounded to 2 decimals.
func (b *Billing) ComputeTotalPrice() float64 {
	return money.Round2(b.UnitPrice * b.Quantity)
}

// BalanceDue returns the amount still owed. Negative when overpaid within
// the rounding rules.
func (b *Billing) BalanceDue() float64 {
	return money.Round2(b.ComputeTotalPrice() - b.AmountPaid)
}

// UnpaidBalance returns the outstanding balance, floored at zero.
func (b *Billing) UnpaidBalance() float64 {
	if due := b.BalanceDue(); due > 0 {
		return due
	}
	return 0
}

// FullyPaid reports whether nothing is owed anymore.
func (b *Billing) FullyPaid() bool {
	return b.BalanceDue() <= 0
}

// PercentPaid returns how much of the total has been paid, as a percentage.
// Zero when the total price is zero.
func (b *Billing) PercentPaid() float64 {
	total := b.ComputeTotalPrice()
	if total == 0 {
		return 0
	}
	return b.AmountPaid / total * 100
}
