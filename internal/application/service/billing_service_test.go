package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mamisoa/girofle-api/internal/domain/entity"
	"github.com/mamisoa/girofle-api/internal/domain/enum"
	"github.com/mamisoa/girofle-api/pkg/apperror"
)

func asAppError(t *testing.T, err error) *apperror.AppError {
	t.Helper()
	var appErr *apperror.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected AppError, got %T: %v", err, err)
	}
	return appErr
}

func hasFieldError(appErr *apperror.AppError, field string) bool {
	for _, fe := range appErr.Errors {
		if fe.Field == field {
			return true
		}
	}
	return false
}

func unpaidReceipt(repo *fakeReceiptRepo) *entity.Receipt {
	weight := 500.0
	return repo.add(&entity.Receipt{
		Type:       enum.ProductTypeCloves,
		ReceivedAt: time.Now(),
		NetWeight:  &weight,
		Status:     enum.ReceiptStatusUnpaid,
	})
}

func billingInput(receiptID uuid.UUID) *CreateBillingInput {
	return &CreateBillingInput{
		ReceiptID:      receiptID,
		PaymentDate:    time.Now(),
		InvoiceNo:      "INV-001",
		Designation:    "Cloves lot 12",
		DepositAccount: "BOA-123",
		UnitPrice:      1000.00,
		Quantity:       2.5,
		AmountPaid:     2500.00,
	}
}

func TestCreateBillingFullPayment(t *testing.T) {
	receiptRepo := newFakeReceiptRepo()
	billingRepo := newFakeBillingRepo()
	svc := NewBillingService(billingRepo, receiptRepo)

	receipt := unpaidReceipt(receiptRepo)

	billing, status, err := svc.CreateBilling(context.Background(), billingInput(receipt.ID))
	if err != nil {
		t.Fatalf("CreateBilling: %v", err)
	}

	if billing.TotalPrice != 2500.00 {
		t.Errorf("TotalPrice = %v, want 2500.00", billing.TotalPrice)
	}
	if status != enum.ReceiptStatusPaid {
		t.Errorf("status = %v, want Paid", status)
	}

	stored, _ := receiptRepo.GetByID(context.Background(), receipt.ID)
	if stored.Status != enum.ReceiptStatusPaid {
		t.Errorf("receipt status = %v, want Paid", stored.Status)
	}
}

func TestCreateBillingPartialPayment(t *testing.T) {
	receiptRepo := newFakeReceiptRepo()
	billingRepo := newFakeBillingRepo()
	svc := NewBillingService(billingRepo, receiptRepo)

	receipt := unpaidReceipt(receiptRepo)

	input := billingInput(receipt.ID)
	input.AmountPaid = 2000.00

	_, status, err := svc.CreateBilling(context.Background(), input)
	if err != nil {
		t.Fatalf("CreateBilling: %v", err)
	}
	if status != enum.ReceiptStatusPartiallyPaid {
		t.Errorf("status = %v, want Partially Paid", status)
	}
}

func TestCreateBillingAmountExceedsTotal(t *testing.T) {
	receiptRepo := newFakeReceiptRepo()
	billingRepo := newFakeBillingRepo()
	svc := NewBillingService(billingRepo, receiptRepo)

	receipt := unpaidReceipt(receiptRepo)

	input := billingInput(receipt.ID)
	input.AmountPaid = 2500.01

	_, _, err := svc.CreateBilling(context.Background(), input)
	appErr := asAppError(t, err)
	if appErr.Code != 422 {
		t.Errorf("code = %d, want 422", appErr.Code)
	}
	if !hasFieldError(appErr, "amount_paid") {
		t.Errorf("expected a field error on amount_paid, got %+v", appErr.Errors)
	}
}

func TestCreateBillingAmountAtBoundary(t *testing.T) {
	receiptRepo := newFakeReceiptRepo()
	billingRepo := newFakeBillingRepo()
	svc := NewBillingService(billingRepo, receiptRepo)

	receipt := unpaidReceipt(receiptRepo)

	// Paying exactly the rounded total is allowed.
	if _, _, err := svc.CreateBilling(context.Background(), billingInput(receipt.ID)); err != nil {
		t.Fatalf("CreateBilling at boundary: %v", err)
	}
}

func TestCreateBillingAdvanceExceedsPaid(t *testing.T) {
	receiptRepo := newFakeReceiptRepo()
	billingRepo := newFakeBillingRepo()
	svc := NewBillingService(billingRepo, receiptRepo)

	receipt := unpaidReceipt(receiptRepo)

	input := billingInput(receipt.ID)
	input.AmountPaid = 2000.00
	input.AdvancePayment = 2100.00

	_, _, err := svc.CreateBilling(context.Background(), input)
	appErr := asAppError(t, err)
	if !hasFieldError(appErr, "advance_payment") {
		t.Errorf("expected a field error on advance_payment, got %+v", appErr.Errors)
	}
}

func TestCreateBillingAlreadyExistsBeforeGuard(t *testing.T) {
	receiptRepo := newFakeReceiptRepo()
	billingRepo := newFakeBillingRepo()
	svc := NewBillingService(billingRepo, receiptRepo)

	receipt := unpaidReceipt(receiptRepo)

	if _, _, err := svc.CreateBilling(context.Background(), billingInput(receipt.ID)); err != nil {
		t.Fatalf("first CreateBilling: %v", err)
	}

	// The receipt is now Paid; the duplicate attempt must still report a
	// conflict, not a transition error.
	input := billingInput(receipt.ID)
	input.InvoiceNo = "INV-002"
	_, _, err := svc.CreateBilling(context.Background(), input)
	appErr := asAppError(t, err)
	if appErr.Code != 409 {
		t.Errorf("code = %d, want 409", appErr.Code)
	}
}

func TestCreateBillingTransitionNotAllowed(t *testing.T) {
	receiptRepo := newFakeReceiptRepo()
	billingRepo := newFakeBillingRepo()
	svc := NewBillingService(billingRepo, receiptRepo)

	weight := 100.0
	receipt := receiptRepo.add(&entity.Receipt{
		Type:      enum.ProductTypeCloves,
		NetWeight: &weight,
		Status:    enum.ReceiptStatusAwaitingDelivery,
	})

	_, _, err := svc.CreateBilling(context.Background(), billingInput(receipt.ID))
	appErr := asAppError(t, err)
	if appErr.Code != 422 {
		t.Errorf("code = %d, want 422", appErr.Code)
	}
}

func TestCreateBillingReceiptNotFound(t *testing.T) {
	svc := NewBillingService(newFakeBillingRepo(), newFakeReceiptRepo())

	_, _, err := svc.CreateBilling(context.Background(), billingInput(uuid.New()))
	appErr := asAppError(t, err)
	if appErr.Code != 404 {
		t.Errorf("code = %d, want 404", appErr.Code)
	}
}

func TestCreateBillingDuplicateInvoiceNo(t *testing.T) {
	receiptRepo := newFakeReceiptRepo()
	billingRepo := newFakeBillingRepo()
	svc := NewBillingService(billingRepo, receiptRepo)

	first := unpaidReceipt(receiptRepo)
	second := unpaidReceipt(receiptRepo)

	if _, _, err := svc.CreateBilling(context.Background(), billingInput(first.ID)); err != nil {
		t.Fatalf("first CreateBilling: %v", err)
	}

	_, _, err := svc.CreateBilling(context.Background(), billingInput(second.ID))
	appErr := asAppError(t, err)
	if !hasFieldError(appErr, "invoice_no") {
		t.Errorf("expected a field error on invoice_no, got %+v", appErr.Errors)
	}
}

func TestUpdateBillingRedrivesStatus(t *testing.T) {
	receiptRepo := newFakeReceiptRepo()
	billingRepo := newFakeBillingRepo()
	svc := NewBillingService(billingRepo, receiptRepo)

	receipt := unpaidReceipt(receiptRepo)

	input := billingInput(receipt.ID)
	input.AmountPaid = 2000.00
	billing, _, err := svc.CreateBilling(context.Background(), input)
	if err != nil {
		t.Fatalf("CreateBilling: %v", err)
	}

	// Topping up to the full total flips the receipt to Paid.
	fullPayment := 2500.00
	_, status, err := svc.UpdateBilling(context.Background(), billing.ID, &UpdateBillingInput{
		AmountPaid: &fullPayment,
	})
	if err != nil {
		t.Fatalf("UpdateBilling: %v", err)
	}
	if status != enum.ReceiptStatusPaid {
		t.Errorf("status = %v, want Paid", status)
	}
}

func TestDeleteBillingResetsReceipt(t *testing.T) {
	receiptRepo := newFakeReceiptRepo()
	billingRepo := newFakeBillingRepo()
	svc := NewBillingService(billingRepo, receiptRepo)

	receipt := unpaidReceipt(receiptRepo)

	billing, _, err := svc.CreateBilling(context.Background(), billingInput(receipt.ID))
	if err != nil {
		t.Fatalf("CreateBilling: %v", err)
	}

	if err := svc.DeleteBilling(context.Background(), billing.ID); err != nil {
		t.Fatalf("DeleteBilling: %v", err)
	}

	stored, _ := receiptRepo.GetByID(context.Background(), receipt.ID)
	if stored.Status != enum.ReceiptStatusUnpaid {
		t.Errorf("receipt status after delete = %v, want Unpaid", stored.Status)
	}
}

func TestListPaidBillingsRejectsOtherStatuses(t *testing.T) {
	svc := NewBillingService(newFakeBillingRepo(), newFakeReceiptRepo())

	_, err := svc.ListPaidBillings(context.Background(), enum.ReceiptStatusDelivered)
	appErr := asAppError(t, err)
	if appErr.Code != 400 {
		t.Errorf("code = %d, want 400", appErr.Code)
	}
}
