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

// AdjustmentService handles unpaid-balance settlements, the partial-payment
// path of the lifecycle. Amounts round to whole currency units.
type AdjustmentService struct {
	adjustmentRepo repository.AdjustmentRepository
	receiptRepo    repository.ReceiptRepository
}

// NewAdjustmentService creates a new adjustment service
func NewAdjustmentService(adjustmentRepo repository.AdjustmentRepository, receiptRepo repository.ReceiptRepository) *AdjustmentService {
	return &AdjustmentService{
		adjustmentRepo: adjustmentRepo,
		receiptRepo:    receiptRepo,
	}
}

// CreateAdjustmentInput represents the create adjustment input
type CreateAdjustmentInput struct {
	ReceiptID      uuid.UUID
	PaymentDate    time.Time
	InvoiceNo      string
	Designation    string
	DepositAccount string
	UnitPrice      float64
	Quantity       float64
	AmountPaid     float64
}

// UpdateAdjustmentInput represents a partial adjustment update
type UpdateAdjustmentInput struct {
	PaymentDate    *time.Time
	InvoiceNo      *string
	Designation    *string
	DepositAccount *string
	UnitPrice      *float64
	Quantity       *float64
	AmountPaid     *float64
}

// validateAdjustmentAmounts enforces the whole-unit payment invariant:
// the amount paid never exceeds the total price.
func validateAdjustmentAmounts(unitPrice, quantity, amountPaid float64) []apperror.FieldError {
	total := money.RoundUnit(unitPrice * quantity)
	paid := money.RoundUnit(amountPaid)

	var fieldErrors []apperror.FieldError
	if paid > total {
		fieldErrors = append(fieldErrors,
			apperror.FieldError{
				Field: "amount_paid",
				Message: fmt.Sprintf("The amount paid (%s) cannot exceed the total price (%s)",
					money.Format(paid, 0), money.Format(total, 0)),
			},
			apperror.FieldError{
				Field: "amount_paid",
				Message: fmt.Sprintf("Computation detail: %s x %s = %s",
					money.Format(unitPrice, 2), money.Format(quantity, 2), money.Format(unitPrice*quantity, 6)),
			},
		)
	}
	return fieldErrors
}

// CreateAdjustment records a balance settlement for an unpaid or partially
// paid receipt. The one-per-receipt check runs before the status guard so a
// duplicate attempt is reported as a conflict whatever the current status.
func (s *AdjustmentService) CreateAdjustment(ctx context.Context, input *CreateAdjustmentInput) (*entity.Adjustment, enum.ReceiptStatus, error) {
	receipt, err := s.receiptRepo.GetByID(ctx, input.ReceiptID)
	if err != nil {
		return nil, 0, err
	}
	if receipt == nil {
		return nil, 0, apperror.NewNotFoundError("Receipt")
	}

	existing, err := s.adjustmentRepo.GetByReceiptID(ctx, input.ReceiptID)
	if err != nil {
		return nil, 0, err
	}
	if existing != nil {
		return nil, 0, apperror.NewConflictError("An adjustment already exists for this receipt. Use the update endpoint to modify it.")
	}

	if !receipt.CanCreateAdjustment() {
		return nil, 0, apperror.NewTransitionError(fmt.Sprintf(
			"An adjustment can only be created for an unpaid or partially paid receipt. Current status: %s", receipt.Status))
	}

	if fieldErrors := validateAdjustmentAmounts(input.UnitPrice, input.Quantity, input.AmountPaid); len(fieldErrors) > 0 {
		return nil, 0, apperror.NewAmountExceedsError("The payment amounts are invalid", fieldErrors)
	}

	adjustment := &entity.Adjustment{
		ReceiptID:      input.ReceiptID,
		PaymentDate:    input.PaymentDate,
		InvoiceNo:      input.InvoiceNo,
		Designation:    input.Designation,
		DepositAccount: input.DepositAccount,
		UnitPrice:      input.UnitPrice,
		Quantity:       input.Quantity,
		AmountPaid:     money.RoundUnit(input.AmountPaid),
	}

	if err := s.adjustmentRepo.Create(ctx, adjustment); err != nil {
		return nil, 0, err
	}

	newStatus := enum.ReceiptStatusPartiallyPaid
	if adjustment.FullyPaid() {
		newStatus = enum.ReceiptStatusPaid
	}
	if err := s.receiptRepo.UpdateStatus(ctx, receipt.ID, newStatus); err != nil {
		return nil, 0, err
	}

	return adjustment, newStatus, nil
}

// UpdateAdjustment applies a partial update and re-derives the receipt
// status from the updated balance. No status guard applies to updates.
func (s *AdjustmentService) UpdateAdjustment(ctx context.Context, id uuid.UUID, input *UpdateAdjustmentInput) (*entity.Adjustment, enum.ReceiptStatus, error) {
	adjustment, err := s.adjustmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, 0, err
	}
	if adjustment == nil {
		return nil, 0, apperror.NewNotFoundError("Adjustment")
	}

	if input.PaymentDate != nil {
		adjustment.PaymentDate = *input.PaymentDate
	}
	if input.InvoiceNo != nil {
		adjustment.InvoiceNo = *input.InvoiceNo
	}
	if input.Designation != nil {
		adjustment.Designation = *input.Designation
	}
	if input.DepositAccount != nil {
		adjustment.DepositAccount = *input.DepositAccount
	}

	unitPrice := adjustment.UnitPrice
	if input.UnitPrice != nil {
		unitPrice = *input.UnitPrice
	}
	quantity := adjustment.Quantity
	if input.Quantity != nil {
		quantity = *input.Quantity
	}
	amountPaid := adjustment.AmountPaid
	if input.AmountPaid != nil {
		amountPaid = *input.AmountPaid
	}

	if fieldErrors := validateAdjustmentAmounts(unitPrice, quantity, amountPaid); len(fieldErrors) > 0 {
		return nil, 0, apperror.NewAmountExceedsError("The payment amounts are invalid", fieldErrors)
	}

	adjustment.UnitPrice = unitPrice
	adjustment.Quantity = quantity
	adjustment.AmountPaid = money.RoundUnit(amountPaid)

	if err := s.adjustmentRepo.Update(ctx, adjustment); err != nil {
		return nil, 0, err
	}

	newStatus := enum.ReceiptStatusPartiallyPaid
	if adjustment.FullyPaid() {
		newStatus = enum.ReceiptStatusPaid
	}
	if err := s.receiptRepo.UpdateStatus(ctx, adjustment.ReceiptID, newStatus); err != nil {
		return nil, 0, err
	}

	return adjustment, newStatus, nil
}

// GetAdjustment retrieves an adjustment with its receipt
func (s *AdjustmentService) GetAdjustment(ctx context.Context, id uuid.UUID) (*entity.Adjustment, error) {
	adjustment, err := s.adjustmentRepo.GetWithReceipt(ctx, id)
	if err != nil {
		return nil, err
	}
	if adjustment == nil {
		return nil, apperror.NewNotFoundError("Adjustment")
	}
	return adjustment, nil
}

// GetAdjustmentByReceipt retrieves the adjustment attached to a receipt.
func (s *AdjustmentService) GetAdjustmentByReceipt(ctx context.Context, receiptID uuid.UUID) (*entity.Adjustment, error) {
	receipt, err := s.receiptRepo.GetByID(ctx, receiptID)
	if err != nil {
		return nil, err
	}
	if receipt == nil {
		return nil, apperror.NewNotFoundError("Receipt")
	}

	adjustment, err := s.adjustmentRepo.GetByReceiptID(ctx, receiptID)
	if err != nil {
		return nil, err
	}
	if adjustment == nil {
		return nil, apperror.NewNotFoundError("Adjustment")
	}
	return adjustment, nil
}

// ListAdjustments lists all adjustments with their receipts
func (s *AdjustmentService) ListAdjustments(ctx context.Context) ([]entity.Adjustment, error) {
	return s.adjustmentRepo.List(ctx)
}
