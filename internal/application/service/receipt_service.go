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
	"github.com/mamisoa/girofle-api/pkg/pagination"
)

// ReceiptService handles intake-receipt operations and the transitions view
// of the lifecycle state machine.
type ReceiptService struct {
	receiptRepo repository.ReceiptRepository
}

// NewReceiptService creates a new receipt service
func NewReceiptService(receiptRepo repository.ReceiptRepository) *ReceiptService {
	return &ReceiptService{receiptRepo: receiptRepo}
}

// CreateReceiptInput represents the create receipt input
type CreateReceiptInput struct {
	Type              enum.ProductType
	ReceivedAt        time.Time
	Designation       string
	Origin            string
	SupplierLastName  string
	SupplierFirstName string
	SupplierTaxID     string
	SupplierLocation  string
	SupplierContact   string
	GrossWeight       float64
	NetWeight         float64
	Unit              string
	PackagingWeight   *float64
	DesiccationRate   *float64
	HumidityRateFG    *float64
	ApprovedWeight    *float64
	Density           *float64
	HumidityRateCG    *float64
}

// UpdateReceiptInput represents a partial receipt update
type UpdateReceiptInput struct {
	Type              *enum.ProductType
	ReceivedAt        *time.Time
	Designation       *string
	Origin            *string
	SupplierLastName  *string
	SupplierFirstName *string
	SupplierTaxID     *string
	SupplierLocation  *string
	SupplierContact   *string
	GrossWeight       *float64
	NetWeight         *float64
	Unit              *string
	PackagingWeight   *float64
	DesiccationRate   *float64
	HumidityRateFG    *float64
	ApprovedWeight    *float64
	Density           *float64
	HumidityRateCG    *float64
}

var qualityFieldLabels = map[string]string{
	"packaging_weight": "Packaging weight",
	"desiccation_rate": "Desiccation rate",
	"humidity_rate_fg": "Humidity rate",
	"approved_weight":  "Approved weight",
	"density":          "Density",
	"humidity_rate_cg": "Humidity rate",
}

// validateQualityFields checks the declarative required-field table of the
// product type against the provided quality metrics. Every missing field is
// reported independently.
func validateQualityFields(productType enum.ProductType, fields map[string]*float64) []apperror.FieldError {
	var fieldErrors []apperror.FieldError
	for _, name := range productType.RequiredQualityFields() {
		if fields[name] == nil {
			fieldErrors = append(fieldErrors, apperror.FieldError{
				Field:   name,
				Message: fmt.Sprintf("%s is required for %s (%s)", qualityFieldLabels[name], productType.Label(), productType),
			})
		}
	}
	return fieldErrors
}

// CreateReceipt validates and stores a new intake receipt in the Unpaid status.
func (s *ReceiptService) CreateReceipt(ctx context.Context, input *CreateReceiptInput) (*entity.Receipt, error) {
	if !input.Type.Valid() {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "type", Message: "Type must be one of FG, GG, CG"},
		})
	}

	qualityFields := map[string]*float64{
		"packaging_weight": input.PackagingWeight,
		"desiccation_rate": input.DesiccationRate,
		"humidity_rate_fg": input.HumidityRateFG,
		"approved_weight":  input.ApprovedWeight,
		"density":          input.Density,
		"humidity_rate_cg": input.HumidityRateCG,
	}
	if fieldErrors := validateQualityFields(input.Type, qualityFields); len(fieldErrors) > 0 {
		return nil, apperror.NewValidationError(fieldErrors)
	}

	unit := input.Unit
	if unit == "" {
		unit = "Kg"
	}

	receipt := &entity.Receipt{
		Type:              input.Type,
		ReceivedAt:        input.ReceivedAt,
		Designation:       input.Designation,
		Origin:            input.Origin,
		SupplierLastName:  input.SupplierLastName,
		SupplierFirstName: input.SupplierFirstName,
		SupplierTaxID:     input.SupplierTaxID,
		SupplierLocation:  input.SupplierLocation,
		SupplierContact:   input.SupplierContact,
		GrossWeight:       &input.GrossWeight,
		NetWeight:         &input.NetWeight,
		Unit:              unit,
		PackagingWeight:   input.PackagingWeight,
		DesiccationRate:   input.DesiccationRate,
		HumidityRateFG:    input.HumidityRateFG,
		ApprovedWeight:    input.ApprovedWeight,
		Density:           input.Density,
		HumidityRateCG:    input.HumidityRateCG,
		Status:            enum.ReceiptStatusUnpaid,
	}

	if err := s.receiptRepo.Create(ctx, receipt); err != nil {
		return nil, err
	}

	return receipt, nil
}

// UpdateReceipt applies a partial update. The type-specific quality
// validation re-runs only when the update carries a type, and then against
// the payload's own fields.
func (s *ReceiptService) UpdateReceipt(ctx context.Context, id uuid.UUID, input *UpdateReceiptInput) (*entity.Receipt, error) {
	receipt, err := s.receiptRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if receipt == nil {
		return nil, apperror.NewNotFoundError("Receipt")
	}

	if input.Type != nil {
		if !input.Type.Valid() {
			return nil, apperror.NewValidationError([]apperror.FieldError{
				{Field: "type", Message: "Type must be one of FG, GG, CG"},
			})
		}
		qualityFields := map[string]*float64{
			"packaging_weight": input.PackagingWeight,
			"desiccation_rate": input.DesiccationRate,
			"humidity_rate_fg": input.HumidityRateFG,
			"approved_weight":  input.ApprovedWeight,
			"density":          input.Density,
			"humidity_rate_cg": input.HumidityRateCG,
		}
		if fieldErrors := validateQualityFields(*input.Type, qualityFields); len(fieldErrors) > 0 {
			return nil, apperror.NewValidationError(fieldErrors)
		}
		receipt.Type = *input.Type
	}

	if input.ReceivedAt != nil {
		receipt.ReceivedAt = *input.ReceivedAt
	}
	if input.Designation != nil {
		receipt.Designation = *input.Designation
	}
	if input.Origin != nil {
		receipt.Origin = *input.Origin
	}
	if input.SupplierLastName != nil {
		receipt.SupplierLastName = *input.SupplierLastName
	}
	if input.SupplierFirstName != nil {
		receipt.SupplierFirstName = *input.SupplierFirstName
	}
	if input.SupplierTaxID != nil {
		receipt.SupplierTaxID = *input.SupplierTaxID
	}
	if input.SupplierLocation != nil {
		receipt.SupplierLocation = *input.SupplierLocation
	}
	if input.SupplierContact != nil {
		receipt.SupplierContact = *input.SupplierContact
	}
	if input.GrossWeight != nil {
		receipt.GrossWeight = input.GrossWeight
	}
	if input.NetWeight != nil {
		receipt.NetWeight = input.NetWeight
	}
	if input.Unit != nil {
		receipt.Unit = *input.Unit
	}
	if input.PackagingWeight != nil {
		receipt.PackagingWeight = input.PackagingWeight
	}
	if input.DesiccationRate != nil {
		receipt.DesiccationRate = input.DesiccationRate
	}
	if input.HumidityRateFG != nil {
		receipt.HumidityRateFG = input.HumidityRateFG
	}
	if input.ApprovedWeight != nil {
		receipt.ApprovedWeight = input.ApprovedWeight
	}
	if input.Density != nil {
		receipt.Density = input.Density
	}
	if input.HumidityRateCG != nil {
		receipt.HumidityRateCG = input.HumidityRateCG
	}

	if err := s.receiptRepo.Update(ctx, receipt); err != nil {
		return nil, err
	}

	return receipt, nil
}

// GetReceipt retrieves a receipt with its settlement records
func (s *ReceiptService) GetReceipt(ctx context.Context, id uuid.UUID) (*entity.Receipt, error) {
	receipt, err := s.receiptRepo.GetWithRelations(ctx, id)
	if err != nil {
		return nil, err
	}
	if receipt == nil {
		return nil, apperror.NewNotFoundError("Receipt")
	}
	return receipt, nil
}

// ListReceipts lists receipts with filtering
func (s *ReceiptService) ListReceipts(ctx context.Context, params *repository.ReceiptFilterParams) (*pagination.PaginatedResult[entity.Receipt], error) {
	receipts, total, err := s.receiptRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(receipts, pag), nil
}

// DeleteReceipt removes a receipt and, through the schema's cascade, its
// settlement records.
func (s *ReceiptService) DeleteReceipt(ctx context.Context, id uuid.UUID) error {
	receipt, err := s.receiptRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if receipt == nil {
		return apperror.NewNotFoundError("Receipt")
	}
	return s.receiptRepo.Delete(ctx, id)
}

// StatusDetails describes a lifecycle status and the actions it allows.
type StatusDetails struct {
	Status          string            `json:"status"`
	Description     string            `json:"description"`
	PossibleActions map[string]string `json:"possible_actions"`
}

// TransitionsResult is the payload of the transitions endpoint.
type TransitionsResult struct {
	CurrentStatus        string        `json:"current_status"`
	AvailableTransitions []string      `json:"available_transitions"`
	StatusDetails        StatusDetails `json:"status_details"`
}

// GetTransitions reports the receipt's current status and the transitions
// whose guards hold.
func (s *ReceiptService) GetTransitions(ctx context.Context, id uuid.UUID) (*TransitionsResult, error) {
	receipt, err := s.receiptRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if receipt == nil {
		return nil, apperror.NewNotFoundError("Receipt")
	}

	return &TransitionsResult{
		CurrentStatus:        receipt.Status.String(),
		AvailableTransitions: receipt.AvailableTransitions(),
		StatusDetails:        statusDetails(receipt.Status),
	}, nil
}

func statusDetails(status enum.ReceiptStatus) StatusDetails {
	details := StatusDetails{
		Status:          status.String(),
		PossibleActions: map[string]string{},
	}

	switch status {
	case enum.ReceiptStatusUnpaid:
		details.Description = "The receipt is awaiting payment"
		details.PossibleActions = map[string]string{
			entity.TransitionBilling:    "Create a billing (full payment)",
			entity.TransitionAdjustment: "Record an unpaid balance (partial or missing payment)",
		}
	case enum.ReceiptStatusPartiallyPaid:
		details.Description = "The payment is incomplete"
		details.PossibleActions = map[string]string{
			entity.TransitionAdjustment: "Adjust the unpaid balance",
		}
	case enum.ReceiptStatusPaid:
		details.Description = "The receipt is paid, ready for delivery"
		details.PossibleActions = map[string]string{
			entity.TransitionDeliverySlip: "Create a delivery slip",
		}
	case enum.ReceiptStatusAwaitingDelivery:
		details.Description = "Awaiting delivery confirmation"
		details.PossibleActions = map[string]string{
			entity.TransitionDeliver: "Confirm the delivery",
		}
	case enum.ReceiptStatusDelivered:
		details.Description = "Delivered - no further action possible"
	default:
		details.Description = "Unknown status"
	}

	return details
}
