package service

import (
	"context"
	"testing"

	"github.com/mamisoa/girofle-api/internal/domain/entity"
	"github.com/mamisoa/girofle-api/internal/domain/enum"
	"github.com/mamisoa/girofle-api/internal/domain/repository"
)

type fakeStatsRepo struct {
	undeliveredByType []repository.TypeWeightResult
	weightByType      []repository.TypeWeightResult
	countsByStatus    []repository.StatusCountResult
	totalWeight       float64
	undeliveredWeight float64
	totalReceipts     int64
	receiptsByType    map[enum.ProductType][]entity.Receipt
}

func (r *fakeStatsRepo) UndeliveredWeightByType(ctx context.Context) ([]repository.TypeWeightResult, error) {
	return r.undeliveredByType, nil
}

func (r *fakeStatsRepo) WeightByType(ctx context.Context) ([]repository.TypeWeightResult, error) {
	return r.weightByType, nil
}

func (r *fakeStatsRepo) CountsByStatus(ctx context.Context) ([]repository.StatusCountResult, error) {
	return r.countsByStatus, nil
}

func (r *fakeStatsRepo) TotalNetWeight(ctx context.Context) (float64, error) {
	return r.totalWeight, nil
}

func (r *fakeStatsRepo) UndeliveredNetWeight(ctx context.Context) (float64, error) {
	return r.undeliveredWeight, nil
}

func (r *fakeStatsRepo) UndeliveredReceiptsByType(ctx context.Context, productType enum.ProductType) ([]entity.Receipt, error) {
	return r.receiptsByType[productType], nil
}

func (r *fakeStatsRepo) TotalReceipts(ctx context.Context) (int64, error) {
	return r.totalReceipts, nil
}

func TestGetUndeliveredQuantitiesFillsMissingTypes(t *testing.T) {
	svc := NewStatsService(&fakeStatsRepo{
		undeliveredByType: []repository.TypeWeightResult{
			{Type: enum.ProductTypeCloves, ReceiptCount: 3, WeightKg: 1500},
		},
	})

	result, err := svc.GetUndeliveredQuantities(context.Background())
	if err != nil {
		t.Fatalf("GetUndeliveredQuantities: %v", err)
	}

	if len(result.ByType) != 3 {
		t.Fatalf("ByType has %d entries, want 3", len(result.ByType))
	}
	if result.TotalWeightKg != 1500 {
		t.Errorf("TotalWeightKg = %v, want 1500", result.TotalWeightKg)
	}

	for _, entry := range result.ByType {
		if entry.Type == enum.ProductTypeCloves {
			if entry.WeightKg != 1500 || entry.ReceiptCount != 3 {
				t.Errorf("cloves entry = %+v", entry)
			}
		} else if entry.WeightKg != 0 || entry.ReceiptCount != 0 {
			t.Errorf("expected zero entry for %s, got %+v", entry.Type, entry)
		}
	}
}

func TestGetUndeliveredDetails(t *testing.T) {
	weight := 250.0
	billing := &entity.Billing{}
	svc := NewStatsService(&fakeStatsRepo{
		receiptsByType: map[enum.ProductType][]entity.Receipt{
			enum.ProductTypeCloves: {
				{
					Type:      enum.ProductTypeCloves,
					NetWeight: &weight,
					Status:    enum.ReceiptStatusPaid,
					Billing:   billing,
				},
				{
					Type:      enum.ProductTypeCloves,
					NetWeight: &weight,
					Status:    enum.ReceiptStatusUnpaid,
				},
			},
		},
	})

	result, err := svc.GetUndeliveredDetails(context.Background(), enum.ProductTypeCloves)
	if err != nil {
		t.Fatalf("GetUndeliveredDetails: %v", err)
	}

	if result.ReceiptCount != 2 {
		t.Errorf("ReceiptCount = %d, want 2", result.ReceiptCount)
	}
	if result.TotalWeightKg != 500 {
		t.Errorf("TotalWeightKg = %v, want 500", result.TotalWeightKg)
	}
	if !result.Receipts[0].HasBilling {
		t.Error("first receipt should report HasBilling")
	}
	if result.Receipts[1].HasBilling {
		t.Error("second receipt should not report HasBilling")
	}
}

func TestGetUndeliveredDetailsInvalidType(t *testing.T) {
	svc := NewStatsService(&fakeStatsRepo{})

	_, err := svc.GetUndeliveredDetails(context.Background(), "XX")
	appErr := asAppError(t, err)
	if appErr.Code != 400 {
		t.Errorf("code = %d, want 400", appErr.Code)
	}
}

func TestGetSummaryDeliveryRate(t *testing.T) {
	svc := NewStatsService(&fakeStatsRepo{
		totalReceipts:     3,
		totalWeight:       900,
		undeliveredWeight: 600,
		countsByStatus: []repository.StatusCountResult{
			{Status: enum.ReceiptStatusUnpaid, ReceiptCount: 2, WeightKg: 600},
			{Status: enum.ReceiptStatusDelivered, ReceiptCount: 1, WeightKg: 300},
		},
	})

	summary, err := svc.GetSummary(context.Background())
	if err != nil {
		t.Fatalf("GetSummary: %v", err)
	}

	if summary.DeliveredReceipts != 1 {
		t.Errorf("DeliveredReceipts = %d, want 1", summary.DeliveredReceipts)
	}
	if summary.DeliveryRatePercent != 33.33 {
		t.Errorf("DeliveryRatePercent = %v, want 33.33", summary.DeliveryRatePercent)
	}
}

func TestGetSummaryZeroReceipts(t *testing.T) {
	svc := NewStatsService(&fakeStatsRepo{})

	summary, err := svc.GetSummary(context.Background())
	if err != nil {
		t.Fatalf("GetSummary: %v", err)
	}
	if summary.DeliveryRatePercent != 0 {
		t.Errorf("DeliveryRatePercent = %v, want 0", summary.DeliveryRatePercent)
	}
}
