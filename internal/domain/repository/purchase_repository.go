package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/restoflow/restoflow-api/internal/domain/entity"
	"github.com/restoflow/restoflow-api/internal/domain/enum"
	"github.com/restoflow/restoflow-api/pkg/pagination"
)

// SupplierRepository defines the interface for supplier data operations
type SupplierRepository interface {
	Create(ctx context.Context, supplier *entity.Supplier) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Supplier, error)
	Update(ctx context.Context, supplier *entity.Supplier) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Supplier, int64, error)
	// IncrementDues atomically adds amount (cents) to the supplier balance
	IncrementDues(ctx context.Context, id uuid.UUID, amount int64) error
	// DecrementDuesFloored atomically subtracts amount, flooring at zero
	DecrementDuesFloored(ctx context.Context, id uuid.UUID, amount int64) error
}

// PurchaseRepository defines the interface for purchase data operations
type PurchaseRepository interface {
	Create(ctx context.Context, purchase *entity.Purchase) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Purchase, error)
	GetWithDetails(ctx context.Context, id uuid.UUID) (*entity.Purchase, error)
	Update(ctx context.Context, purchase *entity.Purchase) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status enum.PurchaseStatus) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *PurchaseFilterParams) ([]entity.Purchase, int64, error)
}

// PurchaseFilterParams contains filtering parameters for purchase queries
type PurchaseFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	Status     *enum.PurchaseStatus
	SupplierID *uuid.UUID
}

// PurchaseDetailRepository defines the interface for purchase line items
type PurchaseDetailRepository interface {
	CreateBatch(ctx context.Context, details []entity.PurchaseDetail) error
	Update(ctx context.Context, detail *entity.PurchaseDetail) error
	DeleteByPurchaseID(ctx context.Context, purchaseID uuid.UUID) error
}
