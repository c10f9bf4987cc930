package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mamisoa/girofle-api/internal/domain/entity"
	"github.com/mamisoa/girofle-api/internal/domain/enum"
	"github.com/mamisoa/girofle-api/internal/domain/repository"
	"github.com/mamisoa/girofle-api/pkg/apperror"
)

// DeliveryService handles delivery slips and delivery confirmation, the
// Paid -> AwaitingDelivery -> Delivered tail of the lifecycle.
type DeliveryService struct {
	slipRepo    repository.DeliverySlipRepository
	receiptRepo repository.ReceiptRepository
}

// NewDeliveryService creates a new delivery service
func NewDeliveryService(slipRepo repository.DeliverySlipRepository, receiptRepo repository.ReceiptRepository) *DeliveryService {
	return &DeliveryService{
		slipRepo:    slipRepo,
		receiptRepo: receiptRepo,
	}
}

// CreateDeliverySlipInput represents the create delivery slip input
type CreateDeliverySlipInput struct {
	ReceiptID          uuid.UUID
	DeliveryDate       time.Time
	DeparturePlace     string
	Destination        string
	DelivererLastName  string
	DelivererFirstName string
	DelivererPhone     string
	DelivererVehicle   string
	ConsignorLastName  string
	ConsignorFirstName string
	ConsignorRole      string
	ConsignorContact   string
	ProductCategory    string
	NetWeight          float64
	RegionalRebate     float64
	CommunalRebate     float64
	UnitPrice          float64
	QuantityToDeliver  float64
}

// UpdateDeliverySlipInput represents a partial delivery slip update
type UpdateDeliverySlipInput struct {
	DeliveryDate       *time.Time
	DeparturePlace     *string
	Destination        *string
	DelivererLastName  *string
	DelivererFirstName *string
	DelivererPhone     *string
	DelivererVehicle   *string
	ConsignorLastName  *string
	ConsignorFirstName *string
	ConsignorRole      *string
	ConsignorContact   *string
	ProductCategory    *string
	NetWeight          *float64
	RegionalRebate     *float64
	CommunalRebate     *float64
	UnitPrice          *float64
	QuantityToDeliver  *float64
}

// CreateDeliverySlip records a delivery slip for a paid receipt and moves it
// to Awaiting Delivery. The guard doubles as the one-per-receipt check since
// a receipt leaves the Paid status as soon as its slip exists.
func (s *DeliveryService) CreateDeliverySlip(ctx context.Context, input *CreateDeliverySlipInput) (*entity.DeliverySlip, enum.ReceiptStatus, error) {
	receipt, err := s.receiptRepo.GetByID(ctx, input.ReceiptID)
	if err != nil {
		return nil, 0, err
	}
	if receipt == nil {
		return nil, 0, apperror.NewNotFoundError("Receipt")
	}

	if !receipt.CanCreateDeliverySlip() {
		return nil, 0, apperror.NewTransitionError(fmt.Sprintf(
			"A delivery slip can only be created for a paid receipt. Current status: %s", receipt.Status))
	}

	slip := &entity.DeliverySlip{
		ReceiptID:          input.ReceiptID,
		DeliveryDate:       input.DeliveryDate,
		DeparturePlace:     input.DeparturePlace,
		Destination:        input.Destination,
		DelivererLastName:  input.DelivererLastName,
		DelivererFirstName: input.DelivererFirstName,
		DelivererPhone:     input.DelivererPhone,
		DelivererVehicle:   input.DelivererVehicle,
		ConsignorLastName:  input.ConsignorLastName,
		ConsignorFirstName: input.ConsignorFirstName,
		ConsignorRole:      input.ConsignorRole,
		ConsignorContact:   input.ConsignorContact,
		ProductCategory:    input.ProductCategory,
		NetWeight:          input.NetWeight,
		RegionalRebate:     input.RegionalRebate,
		CommunalRebate:     input.CommunalRebate,
		UnitPrice:          input.UnitPrice,
		QuantityToDeliver:  input.QuantityToDeliver,
	}

	if err := s.slipRepo.Create(ctx, slip); err != nil {
		return nil, 0, err
	}

	if err := s.receiptRepo.UpdateStatus(ctx, receipt.ID, enum.ReceiptStatusAwaitingDelivery); err != nil {
		return nil, 0, err
	}

	return slip, enum.ReceiptStatusAwaitingDelivery, nil
}

// UpdateDeliverySlip applies a partial update. The receipt status is not
// affected.
func (s *DeliveryService) UpdateDeliverySlip(ctx context.Context, id uuid.UUID, input *UpdateDeliverySlipInput) (*entity.DeliverySlip, error) {
	slip, err := s.slipRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if slip == nil {
		return nil, apperror.NewNotFoundError("Delivery slip")
	}

	if input.DeliveryDate != nil {
		slip.DeliveryDate = *input.DeliveryDate
	}
	if input.DeparturePlace != nil {
		slip.DeparturePlace = *input.DeparturePlace
	}
	if input.Destination != nil {
		slip.Destination = *input.Destination
	}
	if input.DelivererLastName != nil {
		slip.DelivererLastName = *input.DelivererLastName
	}
	if input.DelivererFirstName != nil {
		slip.DelivererFirstName = *input.DelivererFirstName
	}
	if input.DelivererPhone != nil {
		slip.DelivererPhone = *input.DelivererPhone
	}
	if input.DelivererVehicle != nil {
		slip.DelivererVehicle = *input.DelivererVehicle
	}
	if input.ConsignorLastName != nil {
		slip.ConsignorLastName = *input.ConsignorLastName
	}
	if input.ConsignorFirstName != nil {
		slip.ConsignorFirstName = *input.ConsignorFirstName
	}
	if input.ConsignorRole != nil {
		slip.ConsignorRole = *input.ConsignorRole
	}
	if input.ConsignorContact != nil {
		slip.ConsignorContact = *input.ConsignorContact
	}
	if input.ProductCategory != nil {
		slip.ProductCategory = *input.ProductCategory
	}
	if input.NetWeight != nil {
		slip.NetWeight = *input.NetWeight
	}
	if input.RegionalRebate != nil {
		slip.RegionalRebate = *input.RegionalRebate
	}
	if input.CommunalRebate != nil {
		slip.CommunalRebate = *input.CommunalRebate
	}
	if input.UnitPrice != nil {
		slip.UnitPrice = *input.UnitPrice
	}
	if input.QuantityToDeliver != nil {
		slip.QuantityToDeliver = *input.QuantityToDeliver
	}

	if err := s.slipRepo.Update(ctx, slip); err != nil {
		return nil, err
	}

	return slip, nil
}

// GetDeliverySlip retrieves a delivery slip with its receipt
func (s *DeliveryService) GetDeliverySlip(ctx context.Context, id uuid.UUID) (*entity.DeliverySlip, error) {
	slip, err := s.slipRepo.GetWithReceipt(ctx, id)
	if err != nil {
		return nil, err
	}
	if slip == nil {
		return nil, apperror.NewNotFoundError("Delivery slip")
	}
	return slip, nil
}

// GetDeliverySlipByReceipt retrieves the delivery slip attached to a receipt.
func (s *DeliveryService) GetDeliverySlipByReceipt(ctx context.Context, receiptID uuid.UUID) (*entity.DeliverySlip, error) {
	receipt, err := s.receiptRepo.GetByID(ctx, receiptID)
	if err != nil {
		return nil, err
	}
	if receipt == nil {
		return nil, apperror.NewNotFoundError("Receipt")
	}

	slip, err := s.slipRepo.GetByReceiptID(ctx, receiptID)
	if err != nil {
		return nil, err
	}
	if slip == nil {
		return nil, apperror.NewNotFoundError("Delivery slip")
	}
	return slip, nil
}

// ListDeliverySlips lists all delivery slips with their receipts
func (s *DeliveryService) ListDeliverySlips(ctx context.Context) ([]entity.DeliverySlip, error) {
	return s.slipRepo.List(ctx)
}

// DeleteDeliverySlip removes a delivery slip and resets its receipt to Paid.
func (s *DeliveryService) DeleteDeliverySlip(ctx context.Context, id uuid.UUID) error {
	slip, err := s.slipRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if slip == nil {
		return apperror.NewNotFoundError("Delivery slip")
	}

	if err := s.slipRepo.Delete(ctx, id); err != nil {
		return err
	}

	return s.receiptRepo.UpdateStatus(ctx, slip.ReceiptID, enum.ReceiptStatusPaid)
}

// MarkDelivered confirms the delivery of a receipt. The operation applies
// from any status and is idempotent.
func (s *DeliveryService) MarkDelivered(ctx context.Context, receiptID uuid.UUID) (*entity.Receipt, error) {
	receipt, err := s.receiptRepo.GetByID(ctx, receiptID)
	if err != nil {
		return nil, err
	}
	if receipt == nil {
		return nil, apperror.NewNotFoundError("Receipt")
	}

	if receipt.Status != enum.ReceiptStatusDelivered {
		if err := s.receiptRepo.UpdateStatus(ctx, receipt.ID, enum.ReceiptStatusDelivered); err != nil {
			return nil, err
		}
		receipt.Status = enum.ReceiptStatusDelivered
	}

	return receipt, nil
}

// BatchDeliveryResult reports the outcome of a bulk delivery confirmation,
// carrying the updated receipts alongside the identifiers that were skipped.
type BatchDeliveryResult struct {
	DeliveredCount int              `json:"delivered_count"`
	Receipts       []entity.Receipt `json:"receipts"`
	SkippedIDs     []uuid.UUID      `json:"skipped_ids,omitempty"`
}

// MarkDeliveredBatch confirms the delivery of several receipts at once.
// Unknown identifiers are skipped and reported rather than failing the whole
// batch.
func (s *DeliveryService) MarkDeliveredBatch(ctx context.Context, receiptIDs []uuid.UUID) (*BatchDeliveryResult, error) {
	result := &BatchDeliveryResult{Receipts: []entity.Receipt{}}
	for _, id := range receiptIDs {
		receipt, err := s.receiptRepo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if receipt == nil {
			result.SkippedIDs = append(result.SkippedIDs, id)
			continue
		}
		if receipt.Status != enum.ReceiptStatusDelivered {
			if err := s.receiptRepo.UpdateStatus(ctx, id, enum.ReceiptStatusDelivered); err != nil {
				return nil, err
			}
			receipt.Status = enum.ReceiptStatusDelivered
		}
		result.DeliveredCount++
		result.Receipts = append(result.Receipts, *receipt)
	}
	return result, nil
}
