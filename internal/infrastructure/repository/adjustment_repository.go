package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/mamisoa/girofle-api/internal/domain/entity"
	domainRepo "github.com/mamisoa/girofle-api/internal/domain/repository"
	"gorm.io/gorm"
)

type adjustmentRepository struct {
	db *gorm.DB
}

// NewAdjustmentRepository creates a new adjustment repository
func NewAdjustmentRepository(db *gorm.DB) domainRepo.AdjustmentRepository {
	return &adjustmentRepository{db: db}
}

func (r *adjustmentRepository) Create(ctx context.Context, adjustment *entity.Adjustment) error {
	return r.db.WithContext(ctx).Create(adjustment).Error
}

func (r *adjustmentRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Adjustment, error) {
	var adjustment entity.Adjustment
	err := r.db.WithContext(ctx).First(&adjustment, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &adjustment, err
}

func (r *adjustmentRepository) GetWithReceipt(ctx context.Context, id uuid.UUID) (*entity.Adjustment, error) {
	var adjustment entity.Adjustment
	err := r.db.WithContext(ctx).
		Preload("Receipt").
		First(&adjustment, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &adjustment, err
}

func (r *adjustmentRepository) GetByReceiptID(ctx context.Context, receiptID uuid.UUID) (*entity.Adjustment, error) {
	var adjustment entity.Adjustment
	err := r.db.WithContext(ctx).First(&adjustment, "receipt_id = ?", receiptID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &adjustment, err
}

func (r *adjustmentRepository) Update(ctx context.Context, adjustment *entity.Adjustment) error {
	return r.db.WithContext(ctx).Save(adjustment).Error
}

func (r *adjustmentRepository) List(ctx context.Context) ([]entity.Adjustment, error) {
	var adjustments []entity.Adjustment
	err := r.db.WithContext(ctx).
		Preload("Receipt").
		Order("created_at DESC").
		Find(&adjustments).Error
	return adjustments, err
}
