package entity

import (
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/mamisoa/girofle-api/pkg/money"
	"gorm.io/gorm"
)

// AdjustmentTolerance is the balance (in whole currency units) under which
// an adjusted receipt still counts as fully paid.
const AdjustmentTolerance = 1

// Adjustment is the unpaid-balance settlement record of a receipt, the
// partial-payment alternative to a Billing. Amounts round to whole currency
// units, and its invoice number is not required to be unique.
type Adjustment struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	ReceiptID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"receipt_id"`
	PaymentDate    time.Time `gorm:"not null" json:"payment_date"`
	InvoiceNo      string    `gorm:"size:100;not null" json:"invoice_no"`
	Designation    string    `gorm:"size:255;not null" json:"designation"`
	DepositAccount string    `gorm:"size:255;not null" json:"deposit_account"`
	UnitPrice      float64   `gorm:"type:decimal(15,2);not null" json:"unit_price"`
	Quantity       float64   `gorm:"type:decimal(10,2);not null" json:"quantity"`
	AmountPaid     float64   `gorm:"type:decimal(15,2);not null" json:"amount_paid"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	Receipt *Receipt `gorm:"foreignKey:ReceiptID" json:"receipt,omitempty"`
}

// BeforeCreate generates a UUID before creating a new adjustment
func (a *Adjustment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Adjustment model
func (Adjustment) TableName() string {
	return "adjustments"
}

// ComputeTotalPrice returns unit price times quantity rounded to whole
// currency units.
func (a *Adjustment) ComputeTotalPrice() float64 {
	return money.RoundUnit(a.UnitPrice * a.Quantity)
}

// BalanceDue returns the amount still owed in whole currency units.
func (a *Adjustment) BalanceDue() float64 {
	return money.RoundUnit(a.ComputeTotalPrice() - a.AmountPaid)
}

// UnpaidBalance returns the outstanding balance, floored at zero.
func (a *Adjustment) UnpaidBalance() float64 {
	if due := a.BalanceDue(); due > 0 {
		return due
	}
	return 0
}

// FullyPaid reports completion within the one-unit tolerance.
func (a *Adjustment) FullyPaid() bool {
	return math.Abs(a.BalanceDue()) <= AdjustmentTolerance
}
