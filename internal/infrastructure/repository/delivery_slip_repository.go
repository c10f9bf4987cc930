package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/mamisoa/girofle-api/internal/domain/entity"
	domainRepo "github.com/mamisoa/girofle-api/internal/domain/repository"
	"gorm.io/gorm"
)

type deliverySlipRepository struct {
	db *gorm.DB
}

// NewDeliverySlipRepository creates a new delivery slip repository
func NewDeliverySlipRepository(db *gorm.DB) domainRepo.DeliverySlipRepository {
	return &deliverySlipRepository{db: db}
}

func (r *deliverySlipRepository) Create(ctx context.Context, slip *entity.DeliverySlip) error {
	return r.db.WithContext(ctx).Create(slip).Error
}

func (r *deliverySlipRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.DeliverySlip, error) {
	var slip entity.DeliverySlip
	err := r.db.WithContext(ctx).First(&slip, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &slip, err
}

func (r *deliverySlipRepository) GetWithReceipt(ctx context.Context, id uuid.UUID) (*entity.DeliverySlip, error) {
	var slip entity.DeliverySlip
	err := r.db.WithContext(ctx).
		Preload("Receipt").
		First(&slip, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &slip, err
}

func (r *deliverySlipRepository) GetByReceiptID(ctx context.Context, receiptID uuid.UUID) (*entity.DeliverySlip, error) {
	var slip entity.DeliverySlip
	err := r.db.WithContext(ctx).First(&slip, "receipt_id = ?", receiptID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &slip, err
}

func (r *deliverySlipRepository) Update(ctx context.Context, slip *entity.DeliverySlip) error {
	return r.db.WithContext(ctx).Save(slip).Error
}

func (r *deliverySlipRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.DeliverySlip{}, "id = ?", id).Error
}

func (r *deliverySlipRepository) List(ctx context.Context) ([]entity.DeliverySlip, error) {
	var slips []entity.DeliverySlip
	err := r.db.WithContext(ctx).
		Preload("Receipt").
		Order("created_at DESC").
		Find(&slips).Error
	return slips, err
}
