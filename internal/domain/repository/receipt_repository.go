package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/mamisoa/girofle-api/internal/domain/entity"
	"github.com/mamisoa/girofle-api/internal/domain/enum"
	"github.com/mamisoa/girofle-api/pkg/pagination"
)

// ReceiptRepository defines the interface for receipt data operations
type ReceiptRepository interface {
	Create(ctx context.Context, receipt *entity.Receipt) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Receipt, error)
	GetWithRelations(ctx context.Context, id uuid.UUID) (*entity.Receipt, error)
	Update(ctx context.Context, receipt *entity.Receipt) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status enum.ReceiptStatus) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *ReceiptFilterParams) ([]entity.Receipt, int64, error)
}

// ReceiptFilterParams contains filtering parameters for receipt queries
type ReceiptFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	Status     *enum.ReceiptStatus
	Type       *enum.ProductType
	SortBy     string
	SortOrder  string
}
