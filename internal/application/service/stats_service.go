package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/mamisoa/girofle-api/internal/domain/enum"
	"github.com/mamisoa/girofle-api/internal/domain/repository"
	"github.com/mamisoa/girofle-api/pkg/apperror"
	"github.com/mamisoa/girofle-api/pkg/money"
)

// StatsService aggregates stock and lifecycle figures over receipts.
type StatsService struct {
	statsRepo repository.StatsRepository
}

// NewStatsService creates a new statistics service
func NewStatsService(statsRepo repository.StatsRepository) *StatsService {
	return &StatsService{statsRepo: statsRepo}
}

// TypeQuantity is the undelivered stock of one product type.
type TypeQuantity struct {
	Type         enum.ProductType `json:"type"`
	Label        string           `json:"label"`
	ReceiptCount int64            `json:"receipt_count"`
	WeightKg     float64          `json:"weight_kg"`
}

// UndeliveredQuantities is the undelivered stock broken down per product type.
type UndeliveredQuantities struct {
	ByType        []TypeQuantity `json:"by_type"`
	TotalWeightKg float64        `json:"total_weight_kg"`
}

// GetUndeliveredQuantities returns the stock still in the warehouse, per
// product type. Types with no undelivered receipt appear with zero values.
func (s *StatsService) GetUndeliveredQuantities(ctx context.Context) (*UndeliveredQuantities, error) {
	rows, err := s.statsRepo.UndeliveredWeightByType(ctx)
	if err != nil {
		return nil, err
	}

	byType := make(map[enum.ProductType]repository.TypeWeightResult, len(rows))
	for _, row := range rows {
		byType[row.Type] = row
	}

	result := &UndeliveredQuantities{ByType: make([]TypeQuantity, 0, 3)}
	for _, productType := range enum.ProductTypes() {
		row := byType[productType]
		result.ByType = append(result.ByType, TypeQuantity{
			Type:         productType,
			Label:        productType.Label(),
			ReceiptCount: row.ReceiptCount,
			WeightKg:     row.WeightKg,
		})
		result.TotalWeightKg += row.WeightKg
	}

	return result, nil
}

// UndeliveredReceiptDetail is one undelivered receipt in the per-type detail
// view, with flags telling which settlement records exist.
type UndeliveredReceiptDetail struct {
	ID              uuid.UUID        `json:"id"`
	Type            enum.ProductType `json:"type"`
	ReceivedAt      string           `json:"received_at"`
	Designation     string           `json:"designation"`
	Origin          string           `json:"origin"`
	SupplierName    string           `json:"supplier_name"`
	NetWeightKg     float64          `json:"net_weight_kg"`
	Status          string           `json:"status"`
	HasBilling      bool             `json:"has_billing"`
	HasAdjustment   bool             `json:"has_adjustment"`
	HasDeliverySlip bool             `json:"has_delivery_slip"`
}

// UndeliveredDetails is the per-type drill-down of undelivered stock.
type UndeliveredDetails struct {
	Type          enum.ProductType           `json:"type"`
	Label         string                     `json:"label"`
	ReceiptCount  int                        `json:"receipt_count"`
	TotalWeightKg float64                    `json:"total_weight_kg"`
	Receipts      []UndeliveredReceiptDetail `json:"receipts"`
}

// GetUndeliveredDetails lists the undelivered receipts of one product type,
// newest intake first.
func (s *StatsService) GetUndeliveredDetails(ctx context.Context, productType enum.ProductType) (*UndeliveredDetails, error) {
	if !productType.Valid() {
		return nil, apperror.NewBadRequestError("Type must be one of FG, GG, CG")
	}

	receipts, err := s.statsRepo.UndeliveredReceiptsByType(ctx, productType)
	if err != nil {
		return nil, err
	}

	details := &UndeliveredDetails{
		Type:     productType,
		Label:    productType.Label(),
		Receipts: make([]UndeliveredReceiptDetail, 0, len(receipts)),
	}

	for _, receipt := range receipts {
		var netWeight float64
		if receipt.NetWeight != nil {
			netWeight = *receipt.NetWeight
		}
		details.Receipts = append(details.Receipts, UndeliveredReceiptDetail{
			ID:              receipt.ID,
			Type:            receipt.Type,
			ReceivedAt:      receipt.ReceivedAt.Format("2006-01-02"),
			Designation:     receipt.Designation,
			Origin:          receipt.Origin,
			SupplierName:    receipt.SupplierFirstName + " " + receipt.SupplierLastName,
			NetWeightKg:     netWeight,
			Status:          receipt.Status.String(),
			HasBilling:      receipt.Billing != nil,
			HasAdjustment:   receipt.Adjustment != nil,
			HasDeliverySlip: receipt.DeliverySlip != nil,
		})
		details.TotalWeightKg += netWeight
	}
	details.ReceiptCount = len(details.Receipts)

	return details, nil
}

// StatusCount is the receipt count and weight of one lifecycle status.
type StatusCount struct {
	Status       string  `json:"status"`
	ReceiptCount int64   `json:"receipt_count"`
	WeightKg     float64 `json:"weight_kg"`
}

// Summary is the complete stock and lifecycle overview.
type Summary struct {
	TotalReceipts         int64          `json:"total_receipts"`
	TotalWeightKg         float64        `json:"total_weight_kg"`
	UndeliveredWeightKg   float64        `json:"undelivered_weight_kg"`
	DeliveredReceipts     int64          `json:"delivered_receipts"`
	DeliveryRatePercent   float64        `json:"delivery_rate_percent"`
	WeightByType          []TypeQuantity `json:"weight_by_type"`
	ReceiptsByStatus      []StatusCount  `json:"receipts_by_status"`
	UndeliveredByType     []TypeQuantity `json:"undelivered_by_type"`
}

// GetSummary returns the complete overview: totals, per-type and per-status
// breakdowns, and the delivered share of total net weight as a percentage
// rounded to 2 decimals. The rate is zero when no weight has been received.
func (s *StatsService) GetSummary(ctx context.Context) (*Summary, error) {
	totalReceipts, err := s.statsRepo.TotalReceipts(ctx)
	if err != nil {
		return nil, err
	}
	totalWeight, err := s.statsRepo.TotalNetWeight(ctx)
	if err != nil {
		return nil, err
	}
	undeliveredWeight, err := s.statsRepo.UndeliveredNetWeight(ctx)
	if err != nil {
		return nil, err
	}
	weightByType, err := s.statsRepo.WeightByType(ctx)
	if err != nil {
		return nil, err
	}
	countsByStatus, err := s.statsRepo.CountsByStatus(ctx)
	if err != nil {
		return nil, err
	}
	undeliveredByType, err := s.statsRepo.UndeliveredWeightByType(ctx)
	if err != nil {
		return nil, err
	}

	summary := &Summary{
		TotalReceipts:       totalReceipts,
		TotalWeightKg:       totalWeight,
		UndeliveredWeightKg: undeliveredWeight,
	}

	for _, row := range weightByType {
		summary.WeightByType = append(summary.WeightByType, TypeQuantity{
			Type:         row.Type,
			Label:        row.Type.Label(),
			ReceiptCount: row.ReceiptCount,
			WeightKg:     row.WeightKg,
		})
	}
	for _, row := range undeliveredByType {
		summary.UndeliveredByType = append(summary.UndeliveredByType, TypeQuantity{
			Type:         row.Type,
			Label:        row.Type.Label(),
			ReceiptCount: row.ReceiptCount,
			WeightKg:     row.WeightKg,
		})
	}
	for _, row := range countsByStatus {
		summary.ReceiptsByStatus = append(summary.ReceiptsByStatus, StatusCount{
			Status:       row.Status.String(),
			ReceiptCount: row.ReceiptCount,
			WeightKg:     row.WeightKg,
		})
		if row.Status == enum.ReceiptStatusDelivered {
			summary.DeliveredReceipts = row.ReceiptCount
		}
	}

	if totalWeight > 0 {
		summary.DeliveryRatePercent = money.Round2((totalWeight - undeliveredWeight) / totalWeight * 100)
	}

	return summary, nil
}
