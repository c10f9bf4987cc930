package repository

import (
	"context"

	"github.com/mamisoa/girofle-api/internal/domain/entity"
	"github.com/mamisoa/girofle-api/internal/domain/enum"
)

// TypeWeightResult represents net weight aggregated per product type
type TypeWeightResult struct {
	Type         enum.ProductType
	ReceiptCount int64
	WeightKg     float64
}

// StatusCountResult represents receipt counts and weight per lifecycle status
type StatusCountResult struct {
	Status       enum.ReceiptStatus
	ReceiptCount int64
	WeightKg     float64
}

// StatsRepository defines interface for aggregation queries over receipts
type StatsRepository interface {
	// UndeliveredWeightByType returns net weight per type for receipts that
	// have not reached the Delivered status
	UndeliveredWeightByType(ctx context.Context) ([]TypeWeightResult, error)

	// WeightByType returns counts and net weight per type across all statuses
	WeightByType(ctx context.Context) ([]TypeWeightResult, error)

	// CountsByStatus returns counts and net weight per lifecycle status
	CountsByStatus(ctx context.Context) ([]StatusCountResult, error)

	// TotalNetWeight returns the summed net weight of all receipts
	TotalNetWeight(ctx context.Context) (float64, error)

	// UndeliveredNetWeight returns the summed net weight of non-delivered receipts
	UndeliveredNetWeight(ctx context.Context) (float64, error)

	// UndeliveredReceiptsByType returns non-delivered receipts of one product
	// type, newest intake first, with their settlement records preloaded
	UndeliveredReceiptsByType(ctx context.Context, productType enum.ProductType) ([]entity.Receipt, error)

	// TotalReceipts returns the total number of receipts
	TotalReceipts(ctx context.Context) (int64, error)
}
