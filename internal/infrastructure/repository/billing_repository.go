package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/mamisoa/girofle-api/internal/domain/entity"
	"github.com/mamisoa/girofle-api/internal/domain/enum"
	domainRepo "github.com/mamisoa/girofle-api/internal/domain/repository"
	"gorm.io/gorm"
)

type billingRepository struct {
	db *gorm.DB
}

// NewBillingRepository creates a new billing repository
func NewBillingRepository(db *gorm.DB) domainRepo.BillingRepository {
	return &billingRepository{db: db}
}

func (r *billingRepository) Create(ctx context.Context, billing *entity.Billing) error {
	return r.db.WithContext(ctx).Create(billing).Error
}

func (r *billingRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Billing, error) {
	var billing entity.Billing
	err := r.db.WithContext(ctx).First(&billing, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &billing, err
}

func (r *billingRepository) GetWithReceipt(ctx context.Context, id uuid.UUID) (*entity.Billing, error) {
	var billing entity.Billing
	err := r.db.WithContext(ctx).
		Preload("Receipt").
		First(&billing, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &billing, err
}

func (r *billingRepository) GetByReceiptID(ctx context.Context, receiptID uuid.UUID) (*entity.Billing, error) {
	var billing entity.Billing
	err := r.db.WithContext(ctx).First(&billing, "receipt_id = ?", receiptID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &billing, err
}

func (r *billingRepository) GetByInvoiceNo(ctx context.Context, invoiceNo string) (*entity.Billing, error) {
	var billing entity.Billing
	err := r.db.WithContext(ctx).First(&billing, "invoice_no = ?", invoiceNo).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &billing, err
}

func (r *billingRepository) Update(ctx context.Context, billing *entity.Billing) error {
	return r.db.WithContext(ctx).Save(billing).Error
}

func (r *billingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Billing{}, "id = ?", id).Error
}

func (r *billingRepository) List(ctx context.Context) ([]entity.Billing, error) {
	var billings []entity.Billing
	err := r.db.WithContext(ctx).
		Preload("Receipt").
		Order("created_at DESC").
		Find(&billings).Error
	return billings, err
}

func (r *billingRepository) ListByReceiptStatus(ctx context.Context, status enum.ReceiptStatus) ([]entity.Billing, error) {
	var billings []entity.Billing
	err := r.db.WithContext(ctx).
		Joins("JOIN receipts ON receipts.id = billings.receipt_id").
		Where("receipts.status = ?", status).
		Preload("Receipt").
		Find(&billings).Error
	return billings, err
}
