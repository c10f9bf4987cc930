package repository

import (
	"context"

	"github.com/mamisoa/girofle-api/internal/domain/entity"
	"github.com/mamisoa/girofle-api/internal/domain/enum"
	domainRepo "github.com/mamisoa/girofle-api/internal/domain/repository"
	"gorm.io/gorm"
)

type statsRepository struct {
	db *gorm.DB
}

// NewStatsRepository creates a new statistics repository
func NewStatsRepository(db *gorm.DB) domainRepo.StatsRepository {
	return &statsRepository{db: db}
}

func (r *statsRepository) UndeliveredWeightByType(ctx context.Context) ([]domainRepo.TypeWeightResult, error) {
	var results []domainRepo.TypeWeightResult

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			type,
			COUNT(*) as receipt_count,
			COALESCE(SUM(net_weight), 0) as weight_kg
		FROM receipts
		WHERE status != ?
		GROUP BY type
		ORDER BY type
	`, enum.ReceiptStatusDelivered).Scan(&results).Error

	if err != nil {
		return nil, err
	}

	return results, nil
}

func (r *statsRepository) WeightByType(ctx context.Context) ([]domainRepo.TypeWeightResult, error) {
	var results []domainRepo.TypeWeightResult

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			type,
			COUNT(*) as receipt_count,
			COALESCE(SUM(net_weight), 0) as weight_kg
		FROM receipts
		GROUP BY type
		ORDER BY type
	`).Scan(&results).Error

	if err != nil {
		return nil, err
	}

	return results, nil
}

func (r *statsRepository) CountsByStatus(ctx context.Context) ([]domainRepo.StatusCountResult, error) {
	var results []domainRepo.StatusCountResult

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			status,
			COUNT(*) as receipt_count,
			COALESCE(SUM(net_weight), 0) as weight_kg
		FROM receipts
		GROUP BY status
		ORDER BY status
	`).Scan(&results).Error

	if err != nil {
		return nil, err
	}

	return results, nil
}

func (r *statsRepository) TotalNetWeight(ctx context.Context) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).Model(&entity.Receipt{}).
		Select("COALESCE(SUM(net_weight), 0)").
		Scan(&total).Error
	return total, err
}

func (r *statsRepository) UndeliveredNetWeight(ctx context.Context) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).Model(&entity.Receipt{}).
		Select("COALESCE(SUM(net_weight), 0)").
		Where("status != ?", enum.ReceiptStatusDelivered).
		Scan(&total).Error
	return total, err
}

func (r *statsRepository) UndeliveredReceiptsByType(ctx context.Context, productType enum.ProductType) ([]entity.Receipt, error) {
	var receipts []entity.Receipt
	err := r.db.WithContext(ctx).
		Where("type = ? AND status != ?", productType, enum.ReceiptStatusDelivered).
		Preload("Billing").
		Preload("Adjustment").
		Preload("DeliverySlip").
		Order("received_at DESC").
		Find(&receipts).Error
	return receipts, err
}

func (r *statsRepository) TotalReceipts(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&entity.Receipt{}).Count(&total).Error
	return total, err
}
