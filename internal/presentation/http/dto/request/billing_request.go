package request

import "time"

// CreateBillingRequest represents the create billing request payload
type CreateBillingRequest struct {
	ReceiptID      string    `json:"receipt_id" binding:"required,uuid"`
	PaymentDate    time.Time `json:"payment_date" binding:"required"`
	InvoiceNo      string    `json:"invoice_no" binding:"required"`
	Designation    string    `json:"designation" binding:"required"`
	DepositAccount string    `json:"deposit_account" binding:"required"`
	UnitPrice      float64   `json:"unit_price" binding:"required,gt=0"`
	Quantity       float64   `json:"quantity" binding:"required,gt=0"`
	AdvancePayment float64   `json:"advance_payment" binding:"gte=0"`
	AmountPaid     float64   `json:"amount_paid" binding:"required,gte=0"`
}

// UpdateBillingRequest represents the partial billing update payload
type UpdateBillingRequest struct {
	PaymentDate    *time.Time `json:"payment_date"`
	InvoiceNo      *string    `json:"invoice_no"`
	Designation    *string    `json:"designation"`
	DepositAccount *string    `json:"deposit_account"`
	UnitPrice      *float64   `json:"unit_price" binding:"omitempty,gt=0"`
	Quantity       *float64   `json:"quantity" binding:"omitempty,gt=0"`
	AdvancePayment *float64   `json:"advance_payment" binding:"omitempty,gte=0"`
	AmountPaid     *float64   `json:"amount_paid" binding:"omitempty,gte=0"`
}

// CreateAdjustmentRequest represents the create adjustment request payload
type CreateAdjustmentRequest struct {
	ReceiptID      string    `json:"receipt_id" binding:"required,uuid"`
	PaymentDate    time.Time `json:"payment_date" binding:"required"`
	InvoiceNo      string    `json:"invoice_no" binding:"required"`
	Designation    string    `json:"designation" binding:"required"`
	DepositAccount string    `json:"deposit_account" binding:"required"`
	UnitPrice      float64   `json:"unit_price" binding:"required,gt=0"`
	Quantity       float64   `json:"quantity" binding:"required,gt=0"`
	AmountPaid     float64   `json:"amount_paid" binding:"required,gte=0"`
}

// UpdateAdjustmentRequest represents the partial adjustment update payload
type UpdateAdjustmentRequest struct {
	PaymentDate    *time.Time `json:"payment_date"`
	InvoiceNo      *string    `json:"invoice_no"`
	Designation    *string    `json:"designation"`
	DepositAccount *string    `json:"deposit_account"`
	UnitPrice      *float64   `json:"unit_price" binding:"omitempty,gt=0"`
	Quantity       *float64   `json:"quantity" binding:"omitempty,gt=0"`
	AmountPaid     *float64   `json:"amount_paid" binding:"omitempty,gte=0"`
}
