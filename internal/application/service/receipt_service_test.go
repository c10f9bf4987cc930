package service

import (
	"context"
	"reflect"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mamisoa/girofle-api/internal/domain/entity"
	"github.com/mamisoa/girofle-api/internal/domain/enum"
)

func float(v float64) *float64 { return &v }

func clovesInput() *CreateReceiptInput {
	return &CreateReceiptInput{
		Type:             enum.ProductTypeCloves,
		ReceivedAt:       time.Now(),
		Designation:      "Cloves lot 12",
		Origin:           "Fenoarivo",
		SupplierLastName: "Rakotoarisoa",
		GrossWeight:      520,
		NetWeight:        500,
		PackagingWeight:  float(20),
		DesiccationRate:  float(12.5),
		HumidityRateFG:   float(14),
	}
}

func TestCreateReceiptStartsUnpaid(t *testing.T) {
	receiptRepo := newFakeReceiptRepo()
	svc := NewReceiptService(receiptRepo)

	receipt, err := svc.CreateReceipt(context.Background(), clovesInput())
	if err != nil {
		t.Fatalf("CreateReceipt: %v", err)
	}
	if receipt.Status != enum.ReceiptStatusUnpaid {
		t.Errorf("status = %v, want Unpaid", receipt.Status)
	}
	if receipt.Unit != "Kg" {
		t.Errorf("unit = %q, want Kg default", receipt.Unit)
	}
}

func TestCreateReceiptMissingQualityField(t *testing.T) {
	svc := NewReceiptService(newFakeReceiptRepo())

	input := clovesInput()
	input.DesiccationRate = nil

	_, err := svc.CreateReceipt(context.Background(), input)
	appErr := asAppError(t, err)
	if appErr.Code != 422 {
		t.Errorf("code = %d, want 422", appErr.Code)
	}
	if !hasFieldError(appErr, "desiccation_rate") {
		t.Errorf("expected a field error naming desiccation_rate, got %+v", appErr.Errors)
	}
}

func TestCreateReceiptReportsAllMissingFields(t *testing.T) {
	svc := NewReceiptService(newFakeReceiptRepo())

	input := &CreateReceiptInput{
		Type:             enum.ProductTypeClaws,
		ReceivedAt:       time.Now(),
		Designation:      "Claws lot 3",
		Origin:           "Mananara",
		SupplierLastName: "Randria",
		GrossWeight:      300,
		NetWeight:        290,
	}

	_, err := svc.CreateReceipt(context.Background(), input)
	appErr := asAppError(t, err)
	if !hasFieldError(appErr, "approved_weight") || !hasFieldError(appErr, "density") {
		t.Errorf("expected field errors for approved_weight and density, got %+v", appErr.Errors)
	}
}

func TestCreateReceiptInvalidType(t *testing.T) {
	svc := NewReceiptService(newFakeReceiptRepo())

	input := clovesInput()
	input.Type = "XX"

	_, err := svc.CreateReceipt(context.Background(), input)
	appErr := asAppError(t, err)
	if !hasFieldError(appErr, "type") {
		t.Errorf("expected a field error on type, got %+v", appErr.Errors)
	}
}

func TestUpdateReceiptTypeChangeRevalidates(t *testing.T) {
	receiptRepo := newFakeReceiptRepo()
	svc := NewReceiptService(receiptRepo)

	receipt, err := svc.CreateReceipt(context.Background(), clovesInput())
	if err != nil {
		t.Fatalf("CreateReceipt: %v", err)
	}

	// Switching to claws without the claws metrics in the payload fails
	// even though the stored receipt has its cloves metrics.
	clawsType := enum.ProductTypeClaws
	_, err = svc.UpdateReceipt(context.Background(), receipt.ID, &UpdateReceiptInput{
		Type: &clawsType,
	})
	appErr := asAppError(t, err)
	if !hasFieldError(appErr, "approved_weight") {
		t.Errorf("expected a field error on approved_weight, got %+v", appErr.Errors)
	}

	// Carrying both metrics in the same payload succeeds.
	updated, err := svc.UpdateReceipt(context.Background(), receipt.ID, &UpdateReceiptInput{
		Type:           &clawsType,
		ApprovedWeight: float(280),
		Density:        float(0.58),
	})
	if err != nil {
		t.Fatalf("UpdateReceipt with metrics: %v", err)
	}
	if updated.Type != enum.ProductTypeClaws {
		t.Errorf("type = %v, want GG", updated.Type)
	}
}

func TestUpdateReceiptPartialMerge(t *testing.T) {
	receiptRepo := newFakeReceiptRepo()
	svc := NewReceiptService(receiptRepo)

	receipt, err := svc.CreateReceipt(context.Background(), clovesInput())
	if err != nil {
		t.Fatalf("CreateReceipt: %v", err)
	}

	origin := "Soanierana Ivongo"
	updated, err := svc.UpdateReceipt(context.Background(), receipt.ID, &UpdateReceiptInput{
		Origin: &origin,
	})
	if err != nil {
		t.Fatalf("UpdateReceipt: %v", err)
	}
	if updated.Origin != origin {
		t.Errorf("origin = %q, want %q", updated.Origin, origin)
	}
	if updated.Designation != receipt.Designation {
		t.Errorf("designation changed unexpectedly: %q", updated.Designation)
	}
}

func TestUpdateReceiptNotFound(t *testing.T) {
	svc := NewReceiptService(newFakeReceiptRepo())

	_, err := svc.UpdateReceipt(context.Background(), uuid.New(), &UpdateReceiptInput{})
	appErr := asAppError(t, err)
	if appErr.Code != 404 {
		t.Errorf("code = %d, want 404", appErr.Code)
	}
}

func TestGetTransitions(t *testing.T) {
	receiptRepo := newFakeReceiptRepo()
	svc := NewReceiptService(receiptRepo)

	weight := 100.0
	receipt := receiptRepo.add(&entity.Receipt{
		Type:      enum.ProductTypeCloves,
		NetWeight: &weight,
		Status:    enum.ReceiptStatusUnpaid,
	})

	result, err := svc.GetTransitions(context.Background(), receipt.ID)
	if err != nil {
		t.Fatalf("GetTransitions: %v", err)
	}

	if result.CurrentStatus != "Unpaid" {
		t.Errorf("CurrentStatus = %q, want Unpaid", result.CurrentStatus)
	}
	want := []string{entity.TransitionBilling, entity.TransitionAdjustment}
	if !reflect.DeepEqual(result.AvailableTransitions, want) {
		t.Errorf("AvailableTransitions = %v, want %v", result.AvailableTransitions, want)
	}
	if len(result.StatusDetails.PossibleActions) != 2 {
		t.Errorf("PossibleActions = %v, want two entries", result.StatusDetails.PossibleActions)
	}
}

func TestGetTransitionsDeliveredHasNone(t *testing.T) {
	receiptRepo := newFakeReceiptRepo()
	svc := NewReceiptService(receiptRepo)

	weight := 100.0
	receipt := receiptRepo.add(&entity.Receipt{
		Type:      enum.ProductTypeCloves,
		NetWeight: &weight,
		Status:    enum.ReceiptStatusDelivered,
	})

	result, err := svc.GetTransitions(context.Background(), receipt.ID)
	if err != nil {
		t.Fatalf("GetTransitions: %v", err)
	}
	if len(result.AvailableTransitions) != 0 {
		t.Errorf("AvailableTransitions = %v, want none", result.AvailableTransitions)
	}
}
