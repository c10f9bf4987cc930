package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mamisoa/girofle-api/internal/domain/entity"
	"github.com/mamisoa/girofle-api/internal/domain/enum"
)

func adjustmentInput(receiptID uuid.UUID) *CreateAdjustmentInput {
	return &CreateAdjustmentInput{
		ReceiptID:      receiptID,
		PaymentDate:    time.Now(),
		InvoiceNo:      "ADJ-001",
		Designation:    "Cloves balance",
		DepositAccount: "BOA-123",
		UnitPrice:      1000,
		Quantity:       1,
		AmountPaid:     1000,
	}
}

func TestCreateAdjustmentWithinToleranceIsPaid(t *testing.T) {
	receiptRepo := newFakeReceiptRepo()
	adjustmentRepo := newFakeAdjustmentRepo()
	svc := NewAdjustmentService(adjustmentRepo, receiptRepo)

	receipt := unpaidReceipt(receiptRepo)

	// One unit short of the total still counts as fully paid.
	input := adjustmentInput(receipt.ID)
	input.AmountPaid = 999

	_, status, err := svc.CreateAdjustment(context.Background(), input)
	if err != nil {
		t.Fatalf("CreateAdjustment: %v", err)
	}
	if status != enum.ReceiptStatusPaid {
		t.Errorf("status = %v, want Paid", status)
	}
}

func TestCreateAdjustmentOutsideToleranceIsPartial(t *testing.T) {
	receiptRepo := newFakeReceiptRepo()
	adjustmentRepo := newFakeAdjustmentRepo()
	svc := NewAdjustmentService(adjustmentRepo, receiptRepo)

	receipt := unpaidReceipt(receiptRepo)

	input := adjustmentInput(receipt.ID)
	input.AmountPaid = 998

	_, status, err := svc.CreateAdjustment(context.Background(), input)
	if err != nil {
		t.Fatalf("CreateAdjustment: %v", err)
	}
	if status != enum.ReceiptStatusPartiallyPaid {
		t.Errorf("status = %v, want Partially Paid", status)
	}
}

func TestCreateAdjustmentFromPartiallyPaid(t *testing.T) {
	receiptRepo := newFakeReceiptRepo()
	adjustmentRepo := newFakeAdjustmentRepo()
	svc := NewAdjustmentService(adjustmentRepo, receiptRepo)

	weight := 100.0
	receipt := receiptRepo.add(&entity.Receipt{
		Type:      enum.ProductTypeCloves,
		NetWeight: &weight,
		Status:    enum.ReceiptStatusPartiallyPaid,
	})

	if _, _, err := svc.CreateAdjustment(context.Background(), adjustmentInput(receipt.ID)); err != nil {
		t.Fatalf("CreateAdjustment from Partially Paid: %v", err)
	}
}

func TestCreateAdjustmentNotAllowedFromPaid(t *testing.T) {
	receiptRepo := newFakeReceiptRepo()
	adjustmentRepo := newFakeAdjustmentRepo()
	svc := NewAdjustmentService(adjustmentRepo, receiptRepo)

	weight := 100.0
	receipt := receiptRepo.add(&entity.Receipt{
		Type:      enum.ProductTypeCloves,
		NetWeight: &weight,
		Status:    enum.ReceiptStatusPaid,
	})

	_, _, err := svc.CreateAdjustment(context.Background(), adjustmentInput(receipt.ID))
	appErr := asAppError(t, err)
	if appErr.Code != 422 {
		t.Errorf("code = %d, want 422", appErr.Code)
	}
}

func TestCreateAdjustmentAlreadyExistsBeforeGuard(t *testing.T) {
	receiptRepo := newFakeReceiptRepo()
	adjustmentRepo := newFakeAdjustmentRepo()
	svc := NewAdjustmentService(adjustmentRepo, receiptRepo)

	receipt := unpaidReceipt(receiptRepo)

	if _, _, err := svc.CreateAdjustment(context.Background(), adjustmentInput(receipt.ID)); err != nil {
		t.Fatalf("first CreateAdjustment: %v", err)
	}

	// Receipt is now Paid; the duplicate still reports a conflict.
	_, _, err := svc.CreateAdjustment(context.Background(), adjustmentInput(receipt.ID))
	appErr := asAppError(t, err)
	if appErr.Code != 409 {
		t.Errorf("code = %d, want 409", appErr.Code)
	}
}

func TestCreateAdjustmentAmountExceedsTotal(t *testing.T) {
	receiptRepo := newFakeReceiptRepo()
	adjustmentRepo := newFakeAdjustmentRepo()
	svc := NewAdjustmentService(adjustmentRepo, receiptRepo)

	receipt := unpaidReceipt(receiptRepo)

	input := adjustmentInput(receipt.ID)
	input.AmountPaid = 1001

	_, _, err := svc.CreateAdjustment(context.Background(), input)
	appErr := asAppError(t, err)
	if appErr.Code != 422 {
		t.Errorf("code = %d, want 422", appErr.Code)
	}
	if !hasFieldError(appErr, "amount_paid") {
		t.Errorf("expected a field error on amount_paid, got %+v", appErr.Errors)
	}
}

func TestCreateAdjustmentRoundsToWholeUnits(t *testing.T) {
	receiptRepo := newFakeReceiptRepo()
	adjustmentRepo := newFakeAdjustmentRepo()
	svc := NewAdjustmentService(adjustmentRepo, receiptRepo)

	receipt := unpaidReceipt(receiptRepo)

	input := adjustmentInput(receipt.ID)
	input.AmountPaid = 999.6

	adjustment, _, err := svc.CreateAdjustment(context.Background(), input)
	if err != nil {
		t.Fatalf("CreateAdjustment: %v", err)
	}
	if adjustment.AmountPaid != 1000 {
		t.Errorf("AmountPaid = %v, want 1000", adjustment.AmountPaid)
	}
}

func TestUpdateAdjustmentRedrivesStatus(t *testing.T) {
	receiptRepo := newFakeReceiptRepo()
	adjustmentRepo := newFakeAdjustmentRepo()
	svc := NewAdjustmentService(adjustmentRepo, receiptRepo)

	receipt := unpaidReceipt(receiptRepo)

	input := adjustmentInput(receipt.ID)
	input.AmountPaid = 500
	adjustment, status, err := svc.CreateAdjustment(context.Background(), input)
	if err != nil {
		t.Fatalf("CreateAdjustment: %v", err)
	}
	if status != enum.ReceiptStatusPartiallyPaid {
		t.Fatalf("status = %v, want Partially Paid", status)
	}

	fullPayment := 1000.0
	_, status, err = svc.UpdateAdjustment(context.Background(), adjustment.ID, &UpdateAdjustmentInput{
		AmountPaid: &fullPayment,
	})
	if err != nil {
		t.Fatalf("UpdateAdjustment: %v", err)
	}
	if status != enum.ReceiptStatusPaid {
		t.Errorf("status after update = %v, want Paid", status)
	}
}
