package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/restoflow/restoflow-api/internal/domain/entity"
	"github.com/restoflow/restoflow-api/pkg/pagination"
)

// SaleRepository defines the interface for sale data operations
type SaleRepository interface {
	Create(ctx context.Context, sale *entity.Sale) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Sale, error)
	GetWithDetails(ctx context.Context, id uuid.UUID) (*entity.Sale, error)
	Update(ctx context.Context, sale *entity.Sale) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *SaleFilterParams) ([]entity.Sale, int64, error)
}

// SaleFilterParams contains filtering parameters for sale queries
type SaleFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	CustomerID *uuid.UUID
	StartDate  *time.Time
	EndDate    *time.Time
	SortBy     string
	SortOrder  string
}

// SaleLineRepository defines the interface for sale line snapshots
type SaleLineRepository interface {
	CreateBatch(ctx context.Context, lines []entity.SaleLine) error
	GetBySaleID(ctx context.Context, saleID uuid.UUID) ([]entity.SaleLine, error)
	DeleteBySaleID(ctx context.Context, saleID uuid.UUID) error
}

// PaymentRepository defines the interface for payment rows
type PaymentRepository interface {
	CreateBatch(ctx context.Context, payments []entity.Payment) error
	GetBySaleID(ctx context.Context, saleID uuid.UUID) ([]entity.Payment, error)
	DeleteBySaleID(ctx context.Context, saleID uuid.UUID) error
}

// ReceiptRepository defines the interface for receipt snapshots
type ReceiptRepository interface {
	Create(ctx context.Context, receipt *entity.Receipt) error
	GetBySaleID(ctx context.Context, saleID uuid.UUID) (*entity.Receipt, error)
	Update(ctx context.Context, receipt *entity.Receipt) error
	DeleteBySaleID(ctx context.Context, saleID uuid.UUID) error
}
