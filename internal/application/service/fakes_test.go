package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/mamisoa/girofle-api/internal/domain/entity"
	"github.com/mamisoa/girofle-api/internal/domain/enum"
	"github.com/mamisoa/girofle-api/internal/domain/repository"
)

// In-memory repositories backing the service tests. They mirror the
// persistence contracts: lookups return (nil, nil) when nothing matches.

type fakeReceiptRepo struct {
	receipts map[uuid.UUID]*entity.Receipt
}

func newFakeReceiptRepo() *fakeReceiptRepo {
	return &fakeReceiptRepo{receipts: make(map[uuid.UUID]*entity.Receipt)}
}

func (r *fakeReceiptRepo) add(receipt *entity.Receipt) *entity.Receipt {
	if receipt.ID == uuid.Nil {
		receipt.ID = uuid.New()
	}
	r.receipts[receipt.ID] = receipt
	return receipt
}

func (r *fakeReceiptRepo) Create(ctx context.Context, receipt *entity.Receipt) error {
	r.add(receipt)
	return nil
}

func (r *fakeReceiptRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Receipt, error) {
	receipt, ok := r.receipts[id]
	if !ok {
		return nil, nil
	}
	copied := *receipt
	return &copied, nil
}

func (r *fakeReceiptRepo) GetWithRelations(ctx context.Context, id uuid.UUID) (*entity.Receipt, error) {
	return r.GetByID(ctx, id)
}

func (r *fakeReceiptRepo) Update(ctx context.Context, receipt *entity.Receipt) error {
	r.receipts[receipt.ID] = receipt
	return nil
}

func (r *fakeReceiptRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.ReceiptStatus) error {
	if receipt, ok := r.receipts[id]; ok {
		receipt.Status = status
	}
	return nil
}

func (r *fakeReceiptRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.receipts, id)
	return nil
}

func (r *fakeReceiptRepo) List(ctx context.Context, params *repository.ReceiptFilterParams) ([]entity.Receipt, int64, error) {
	var receipts []entity.Receipt
	for _, receipt := range r.receipts {
		receipts = append(receipts, *receipt)
	}
	return receipts, int64(len(receipts)), nil
}

type fakeBillingRepo struct {
	billings map[uuid.UUID]*entity.Billing
}

func newFakeBillingRepo() *fakeBillingRepo {
	return &fakeBillingRepo{billings: make(map[uuid.UUID]*entity.Billing)}
}

func (r *fakeBillingRepo) Create(ctx context.Context, billing *entity.Billing) error {
	if billing.ID == uuid.Nil {
		billing.ID = uuid.New()
	}
	r.billings[billing.ID] = billing
	return nil
}

func (r *fakeBillingRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Billing, error) {
	billing, ok := r.billings[id]
	if !ok {
		return nil, nil
	}
	copied := *billing
	return &copied, nil
}

func (r *fakeBillingRepo) GetWithReceipt(ctx context.Context, id uuid.UUID) (*entity.Billing, error) {
	return r.GetByID(ctx, id)
}

func (r *fakeBillingRepo) GetByReceiptID(ctx context.Context, receiptID uuid.UUID) (*entity.Billing, error) {
	for _, billing := range r.billings {
		if billing.ReceiptID == receiptID {
			copied := *billing
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeBillingRepo) GetByInvoiceNo(ctx context.Context, invoiceNo string) (*entity.Billing, error) {
	for _, billing := range r.billings {
		if billing.InvoiceNo == invoiceNo {
			copied := *billing
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeBillingRepo) Update(ctx context.Context, billing *entity.Billing) error {
	r.billings[billing.ID] = billing
	return nil
}

func (r *fakeBillingRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.billings, id)
	return nil
}

func (r *fakeBillingRepo) List(ctx context.Context) ([]entity.Billing, error) {
	var billings []entity.Billing
	for _, billing := range r.billings {
		billings = append(billings, *billing)
	}
	return billings, nil
}

func (r *fakeBillingRepo) ListByReceiptStatus(ctx context.Context, status enum.ReceiptStatus) ([]entity.Billing, error) {
	return r.List(ctx)
}

type fakeAdjustmentRepo struct {
	adjustments map[uuid.UUID]*entity.Adjustment
}

func newFakeAdjustmentRepo() *fakeAdjustmentRepo {
	return &fakeAdjustmentRepo{adjustments: make(map[uuid.UUID]*entity.Adjustment)}
}

func (r *fakeAdjustmentRepo) Create(ctx context.Context, adjustment *entity.Adjustment) error {
	if adjustment.ID == uuid.Nil {
		adjustment.ID = uuid.New()
	}
	r.adjustments[adjustment.ID] = adjustment
	return nil
}

func (r *fakeAdjustmentRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Adjustment, error) {
	adjustment, ok := r.adjustments[id]
	if !ok {
		return nil, nil
	}
	copied := *adjustment
	return &copied, nil
}

func (r *fakeAdjustmentRepo) GetWithReceipt(ctx context.Context, id uuid.UUID) (*entity.Adjustment, error) {
	return r.GetByID(ctx, id)
}

func (r *fakeAdjustmentRepo) GetByReceiptID(ctx context.Context, receiptID uuid.UUID) (*entity.Adjustment, error) {
	for _, adjustment := range r.adjustments {
		if adjustment.ReceiptID == receiptID {
			copied := *adjustment
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeAdjustmentRepo) Update(ctx context.Context, adjustment *entity.Adjustment) error {
	r.adjustments[adjustment.ID] = adjustment
	return nil
}

func (r *fakeAdjustmentRepo) List(ctx context.Context) ([]entity.Adjustment, error) {
	var adjustments []entity.Adjustment
	for _, adjustment := range r.adjustments {
		adjustments = append(adjustments, *adjustment)
	}
	return adjustments, nil
}

type fakeDeliverySlipRepo struct {
	slips map[uuid.UUID]*entity.DeliverySlip
}

func newFakeDeliverySlipRepo() *fakeDeliverySlipRepo {
	return &fakeDeliverySlipRepo{slips: make(map[uuid.UUID]*entity.DeliverySlip)}
}

func (r *fakeDeliverySlipRepo) Create(ctx context.Context, slip *entity.DeliverySlip) error {
	if slip.ID == uuid.Nil {
		slip.ID = uuid.New()
	}
	r.slips[slip.ID] = slip
	return nil
}

func (r *fakeDeliverySlipRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.DeliverySlip, error) {
	slip, ok := r.slips[id]
	if !ok {
		return nil, nil
	}
	copied := *slip
	return &copied, nil
}

func (r *fakeDeliverySlipRepo) GetWithReceipt(ctx context.Context, id uuid.UUID) (*entity.DeliverySlip, error) {
	return r.GetByID(ctx, id)
}

func (r *fakeDeliverySlipRepo) GetByReceiptID(ctx context.Context, receiptID uuid.UUID) (*entity.DeliverySlip, error) {
	for _, slip := range r.slips {
		if slip.ReceiptID == receiptID {
			copied := *slip
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeDeliverySlipRepo) Update(ctx context.Context, slip *entity.DeliverySlip) error {
	r.slips[slip.ID] = slip
	return nil
}

func (r *fakeDeliverySlipRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.slips, id)
	return nil
}

func (r *fakeDeliverySlipRepo) List(ctx context.Context) ([]entity.DeliverySlip, error) {
	var slips []entity.DeliverySlip
	for _, slip := range r.slips {
		slips = append(slips, *slip)
	}
	return slips, nil
}
