package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/restoflow/restoflow-api/internal/domain/entity"
	"github.com/restoflow/restoflow-api/internal/domain/enum"
	"github.com/restoflow/restoflow-api/pkg/pagination"
)

// OrderRepository defines the interface for order data operations
type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	GetWithLines(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	GetByOrderNo(ctx context.Context, orderNo string) (*entity.Order, error)
	GetBySaleID(ctx context.Context, saleID uuid.UUID) (*entity.Order, error)
	Update(ctx context.Context, order *entity.Order) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *OrderFilterParams) ([]entity.Order, int64, error)
	// SetKotSent flips the kitchen-ticket-sent flag, the only field that
	// may change on a non-held order
	SetKotSent(ctx context.Context, id uuid.UUID, sent bool) error
}

// OrderFilterParams contains filtering parameters for order queries
type OrderFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	Status     *enum.OrderStatus
	CustomerID *uuid.UUID
	SortBy     string
	SortOrder  string
}

// OrderLineRepository defines the interface for order line data operations.
// Lines are replaced wholesale on edit: DeleteByOrderID then CreateBatch
// within the same transaction.
type OrderLineRepository interface {
	CreateBatch(ctx context.Context, lines []entity.OrderLine) error
	GetByOrderID(ctx context.Context, orderID uuid.UUID) ([]entity.OrderLine, error)
	DeleteByOrderID(ctx context.Context, orderID uuid.UUID) error
	// MarkKotSelected flags the given lines as sent to a preparation area
	MarkKotSelected(ctx context.Context, lineIDs []uuid.UUID) error
}
