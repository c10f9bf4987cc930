package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/mamisoa/girofle-api/internal/domain/entity"
	"github.com/mamisoa/girofle-api/internal/domain/enum"
)

// BillingRepository defines the interface for billing data operations
type BillingRepository interface {
	Create(ctx context.Context, billing *entity.Billing) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Billing, error)
	GetWithReceipt(ctx context.Context, id uuid.UUID) (*entity.Billing, error)
	GetByReceiptID(ctx context.Context, receiptID uuid.UUID) (*entity.Billing, error)
	GetByInvoiceNo(ctx context.Context, invoiceNo string) (*entity.Billing, error)
	Update(ctx context.Context, billing *entity.Billing) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]entity.Billing, error)
	ListByReceiptStatus(ctx context.Context, status enum.ReceiptStatus) ([]entity.Billing, error)
}

// AdjustmentRepository defines the interface for balance-adjustment data operations
type AdjustmentRepository interface {
	Create(ctx context.Context, adjustment *entity.Adjustment) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Adjustment, error)
	GetWithReceipt(ctx context.Context, id uuid.UUID) (*entity.Adjustment, error)
	GetByReceiptID(ctx context.Context, receiptID uuid.UUID) (*entity.Adjustment, error)
	Update(ctx context.Context, adjustment *entity.Adjustment) error
	List(ctx context.Context) ([]entity.Adjustment, error)
}

// DeliverySlipRepository defines the interface for delivery-slip data operations
type DeliverySlipRepository interface {
	Create(ctx context.Context, slip *entity.DeliverySlip) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.DeliverySlip, error)
	GetWithReceipt(ctx context.Context, id uuid.UUID) (*entity.DeliverySlip, error)
	GetByReceiptID(ctx context.Context, receiptID uuid.UUID) (*entity.DeliverySlip, error)
	Update(ctx context.Context, slip *entity.DeliverySlip) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]entity.DeliverySlip, error)
}
