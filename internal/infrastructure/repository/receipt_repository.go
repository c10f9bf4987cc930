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

type receiptRepository struct {
	db *gorm.DB
}

// NewReceiptRepository creates a new receipt repository
func NewReceiptRepository(db *gorm.DB) domainRepo.ReceiptRepository {
	return &receiptRepository{db: db}
}

func (r *receiptRepository) Create(ctx context.Context, receipt *entity.Receipt) error {
	return r.db.WithContext(ctx).Create(receipt).Error
}

func (r *receiptRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Receipt, error) {
	var receipt entity.Receipt
	err := r.db.WithContext(ctx).First(&receipt, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &receipt, err
}

func (r *receiptRepository) GetWithRelations(ctx context.Context, id uuid.UUID) (*entity.Receipt, error) {
	var receipt entity.Receipt
	err := r.db.WithContext(ctx).
		Preload("Billing").
		Preload("Adjustment").
		Preload("DeliverySlip").
		First(&receipt, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &receipt, err
}

func (r *receiptRepository) Update(ctx context.Context, receipt *entity.Receipt) error {
	return r.db.WithContext(ctx).Save(receipt).Error
}

func (r *receiptRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.ReceiptStatus) error {
	return r.db.WithContext(ctx).Model(&entity.Receipt{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *receiptRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Receipt{}, "id = ?", id).Error
}

func (r *receiptRepository) List(ctx context.Context, params *domainRepo.ReceiptFilterParams) ([]entity.Receipt, int64, error) {
	var receipts []entity.Receipt
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Receipt{})

	if params.Search != "" {
		search := "%" + params.Search + "%"
		query = query.Where(
			"designation ILIKE ? OR origin ILIKE ? OR supplier_last_name ILIKE ? OR supplier_first_name ILIKE ?",
			search, search, search, search,
		)
	}

	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	}

	if params.Type != nil {
		query = query.Where("type = ?", *params.Type)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Order(receiptSortClause(params.SortBy, params.SortOrder)).
		Find(&receipts).Error

	return receipts, total, err
}

// receiptSortColumns lists the columns callers may sort receipts by. Anything
// else falls back to the default so user input never reaches the ORDER BY
// clause verbatim.
var receiptSortColumns = map[string]bool{
	"received_at":        true,
	"created_at":         true,
	"updated_at":         true,
	"designation":        true,
	"origin":             true,
	"supplier_last_name": true,
	"gross_weight":       true,
	"net_weight":         true,
	"type":               true,
	"status":             true,
}

func receiptSortClause(sortBy, sortOrder string) string {
	if !receiptSortColumns[sortBy] {
		sortBy = "received_at"
	}
	order := "DESC"
	if sortOrder == "ASC" || sortOrder == "asc" {
		order = "ASC"
	}
	return sortBy + " " + order
}
