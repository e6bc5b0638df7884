package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/restoflow/restoflow-api/internal/domain/entity"
	"github.com/restoflow/restoflow-api/pkg/pagination"
)

// CustomerRepository defines the interface for customer data operations.
// The dues balance is adjusted only through the guarded increment and
// decrement operations, never by a read-modify-write of the row.
type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error)
	Update(ctx context.Context, customer *entity.Customer) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Customer, int64, error)
	ListWithDues(ctx context.Context, params *pagination.PaginationParams) ([]entity.Customer, int64, error)
	// CountReferences counts orders, sales and due entries pointing at the
	// customer. Used by the deletion guard.
	CountReferences(ctx context.Context, id uuid.UUID) (int64, error)
	// IncrementDues atomically adds amount (cents) to the running balance
	IncrementDues(ctx context.Context, id uuid.UUID, amount int64) error
	// DecrementDuesFloored atomically subtracts amount, flooring at zero
	DecrementDuesFloored(ctx context.Context, id uuid.UUID, amount int64) error
}

// CustomerDueRepository defines the interface for due-ledger entries
type CustomerDueRepository interface {
	Create(ctx context.Context, due *entity.CustomerDue) error
	// GetActiveBySale returns the not-yet-reversed entries for a sale
	GetActiveBySale(ctx context.Context, saleID uuid.UUID) ([]entity.CustomerDue, error)
	// MarkReversedBySale flips all active entries for a sale to reversed
	MarkReversedBySale(ctx context.Context, saleID uuid.UUID) error
	ListByCustomer(ctx context.Context, customerID uuid.UUID, params *pagination.PaginationParams) ([]entity.CustomerDue, int64, error)
}
