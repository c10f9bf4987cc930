package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mamisoa/girofle-api/internal/domain/entity"
	"github.com/mamisoa/girofle-api/internal/domain/enum"
	"github.com/mamisoa/girofle-api/internal/domain/repository"
	"github.com/mamisoa/girofle-api/pkg/apperror"
	"github.com/mamisoa/girofle-api/pkg/money"
)

// BillingService handles full-payment invoicing and the Unpaid -> Paid /
// PartiallyPaid transitions it drives.
type BillingService struct {
	billingRepo repository.BillingRepository
	receiptRepo repository.ReceiptRepository
}

// NewBillingService creates a new billing service
func NewBillingService(billingRepo repository.BillingRepository, receiptRepo repository.ReceiptRepository) *BillingService {
	return &BillingService{
		billingRepo: billingRepo,
		receiptRepo: receiptRepo,
	}
}

// CreateBillingInput represents the create billing input
type CreateBillingInput struct {
	ReceiptID      uuid.UUID
	PaymentDate    time.Time
	InvoiceNo      string
	Designation    string
	DepositAccount string
	UnitPrice      float64
	Quantity       float64
	AdvancePayment float64
	AmountPaid     float64
}

// UpdateBillingInput represents a partial billing update
type UpdateBillingInput struct {
	PaymentDate    *time.Time
	InvoiceNo      *string
	Designation    *string
	DepositAccount *string
	UnitPrice      *float64
	Quantity       *float64
	AdvancePayment *float64
	AmountPaid     *float64
}

// validateBillingAmounts enforces the 2-decimal payment invariants:
// amount paid never exceeds the total price, and the advance never exceeds
// the amount paid. Comparisons run on rounded values.
func validateBillingAmounts(unitPrice, quantity, advancePayment, amountPaid float64) []apperror.FieldError {
	total := money.Round2(unitPrice * quantity)
	paid := money.Round2(amountPaid)
	advance := money.Round2(advancePayment)

	var fieldErrors []apperror.FieldError
	if paid > total {
		fieldErrors = append(fieldErrors,
			apperror.FieldError{
				Field: "amount_paid",
				Message: fmt.Sprintf("The amount paid (%s) cannot exceed the total price (%s)",
					money.Format(paid, 2), money.Format(total, 2)),
			},
			apperror.FieldError{
				Field: "amount_paid",
				Message: fmt.Sprintf("Computation detail: %s x %s = %s",
					money.Format(unitPrice, 2), money.Format(quantity, 2), money.Format(unitPrice*quantity, 6)),
			},
		)
	}
	if advance > paid {
		fieldErrors = append(fieldErrors, apperror.FieldError{
			Field: "advance_payment",
			Message: fmt.Sprintf("The advance payment (%s) cannot exceed the amount paid (%s)",
				money.Format(advance, 2), money.Format(paid, 2)),
		})
	}
	return fieldErrors
}

// CreateBilling records a full invoicing for an Unpaid receipt and moves the
// receipt to Paid or Partially Paid depending on the settled balance.
// Uniqueness is checked before the status guard so a duplicate attempt is
// reported as a conflict whatever the receipt's current status.
func (s *BillingService) CreateBilling(ctx context.Context, input *CreateBillingInput) (*entity.Billing, enum.ReceiptStatus, error) {
	receipt, err := s.receiptRepo.GetByID(ctx, input.ReceiptID)
	if err != nil {
		return nil, 0, err
	}
	if receipt == nil {
		return nil, 0, apperror.NewNotFoundError("Receipt")
	}

	existing, err := s.billingRepo.GetByReceiptID(ctx, input.ReceiptID)
	if err != nil {
		return nil, 0, err
	}
	if existing != nil {
		return nil, 0, apperror.NewConflictError("A billing already exists for this receipt. Use the update endpoint to modify it.")
	}

	if !receipt.CanCreateBilling() {
		return nil, 0, apperror.NewTransitionError(fmt.Sprintf(
			"A billing can only be created for an unpaid receipt. Current status: %s", receipt.Status))
	}

	if fieldErrors := validateBillingAmounts(input.UnitPrice, input.Quantity, input.AdvancePayment, input.AmountPaid); len(fieldErrors) > 0 {
		return nil, 0, apperror.NewAmountExceedsError("The payment amounts are invalid", fieldErrors)
	}

	if input.InvoiceNo != "" {
		byInvoice, err := s.billingRepo.GetByInvoiceNo(ctx, input.InvoiceNo)
		if err != nil {
			return nil, 0, err
		}
		if byInvoice != nil {
			return nil, 0, apperror.NewValidationError([]apperror.FieldError{
				{Field: "invoice_no", Message: "This invoice number is already in use"},
			})
		}
	}

	billing := &entity.Billing{
		ReceiptID:      input.ReceiptID,
		PaymentDate:    input.PaymentDate,
		InvoiceNo:      input.InvoiceNo,
		Designation:    input.Designation,
		DepositAccount: input.DepositAccount,
		UnitPrice:      input.UnitPrice,
		Quantity:       input.Quantity,
		AdvancePayment: money.Round2(input.AdvancePayment),
		AmountPaid:     money.Round2(input.AmountPaid),
	}
	billing.TotalPrice = billing.ComputeTotalPrice()

	if err := s.billingRepo.Create(ctx, billing); err != nil {
		return nil, 0, err
	}

	newStatus := enum.ReceiptStatusPartiallyPaid
	if billing.FullyPaid() {
		newStatus = enum.ReceiptStatusPaid
	}
	if err := s.receiptRepo.UpdateStatus(ctx, receipt.ID, newStatus); err != nil {
		return nil, 0, err
	}

	return billing, newStatus, nil
}

// UpdateBilling applies a partial update and re-derives the receipt status
// from the updated balance. No status guard applies to updates.
func (s *BillingService) UpdateBilling(ctx context.Context, id uuid.UUID, input *UpdateBillingInput) (*entity.Billing, enum.ReceiptStatus, error) {
	billing, err := s.billingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, 0, err
	}
	if billing == nil {
		return nil, 0, apperror.NewNotFoundError("Billing")
	}

	if input.PaymentDate != nil {
		billing.PaymentDate = *input.PaymentDate
	}
	if input.InvoiceNo != nil && *input.InvoiceNo != billing.InvoiceNo {
		byInvoice, err := s.billingRepo.GetByInvoiceNo(ctx, *input.InvoiceNo)
		if err != nil {
			return nil, 0, err
		}
		if byInvoice != nil && byInvoice.ID != billing.ID {
			return nil, 0, apperror.NewValidationError([]apperror.FieldError{
				{Field: "invoice_no", Message: "This invoice number is already in use"},
			})
		}
		billing.InvoiceNo = *input.InvoiceNo
	}
	if input.Designation != nil {
		billing.Designation = *input.Designation
	}
	if input.DepositAccount != nil {
		billing.DepositAccount = *input.DepositAccount
	}

	unitPrice := billing.UnitPrice
	if input.UnitPrice != nil {
		unitPrice = *input.UnitPrice
	}
	quantity := billing.Quantity
	if input.Quantity != nil {
		quantity = *input.Quantity
	}
	advancePayment := billing.AdvancePayment
	if input.AdvancePayment != nil {
		advancePayment = *input.AdvancePayment
	}
	amountPaid := billing.AmountPaid
	if input.AmountPaid != nil {
		amountPaid = *input.AmountPaid
	}

	if fieldErrors := validateBillingAmounts(unitPrice, quantity, advancePayment, amountPaid); len(fieldErrors) > 0 {
		return nil, 0, apperror.NewAmountExceedsError("The payment amounts are invalid", fieldErrors)
	}

	billing.UnitPrice = unitPrice
	billing.Quantity = quantity
	billing.AdvancePayment = money.Round2(advancePayment)
	billing.AmountPaid = money.Round2(amountPaid)
	billing.TotalPrice = billing.ComputeTotalPrice()

	if err := s.billingRepo.Update(ctx, billing); err != nil {
		return nil, 0, err
	}

	newStatus := enum.ReceiptStatusPartiallyPaid
	if billing.FullyPaid() {
		newStatus = enum.ReceiptStatusPaid
	}
	if err := s.receiptRepo.UpdateStatus(ctx, billing.ReceiptID, newStatus); err != nil {
		return nil, 0, err
	}

	return billing, newStatus, nil
}

// GetBilling retrieves a billing with its receipt
func (s *BillingService) GetBilling(ctx context.Context, id uuid.UUID) (*entity.Billing, error) {
	billing, err := s.billingRepo.GetWithReceipt(ctx, id)
	if err != nil {
		return nil, err
	}
	if billing == nil {
		return nil, apperror.NewNotFoundError("Billing")
	}
	return billing, nil
}

// GetBillingByReceipt retrieves the billing attached to a receipt.
func (s *BillingService) GetBillingByReceipt(ctx context.Context, receiptID uuid.UUID) (*entity.Billing, error) {
	receipt, err := s.receiptRepo.GetByID(ctx, receiptID)
	if err != nil {
		return nil, err
	}
	if receipt == nil {
		return nil, apperror.NewNotFoundError("Receipt")
	}

	billing, err := s.billingRepo.GetByReceiptID(ctx, receiptID)
	if err != nil {
		return nil, err
	}
	if billing == nil {
		return nil, apperror.NewNotFoundError("Billing")
	}
	return billing, nil
}

// ListBillings lists all billings with their receipts
func (s *BillingService) ListBillings(ctx context.Context) ([]entity.Billing, error) {
	return s.billingRepo.List(ctx)
}

// ListPaidBillings lists billings whose receipt is paid or partially paid.
func (s *BillingService) ListPaidBillings(ctx context.Context, status enum.ReceiptStatus) ([]entity.Billing, error) {
	if status != enum.ReceiptStatusPaid && status != enum.ReceiptStatusPartiallyPaid {
		return nil, apperror.NewBadRequestError("Status must be Paid or Partially Paid")
	}
	return s.billingRepo.ListByReceiptStatus(ctx, status)
}

// DeleteBilling removes a billing and resets its receipt to Unpaid.
func (s *BillingService) DeleteBilling(ctx context.Context, id uuid.UUID) error {
	billing, err := s.billingRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if billing == nil {
		return apperror.NewNotFoundError("Billing")
	}

	if err := s.billingRepo.Delete(ctx, id); err != nil {
		return err
	}

	return s.receiptRepo.UpdateStatus(ctx, billing.ReceiptID, enum.ReceiptStatusUnpaid)
}
