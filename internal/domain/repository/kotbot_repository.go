package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/restoflow/restoflow-api/internal/domain/entity"
	"github.com/restoflow/restoflow-api/internal/domain/enum"
	"github.com/restoflow/restoflow-api/pkg/pagination"
)

// KotBotRepository defines the interface for preparation tickets
type KotBotRepository interface {
	Create(ctx context.Context, ticket *entity.KotBot) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.KotBot, error)
	GetWithItems(ctx context.Context, id uuid.UUID) (*entity.KotBot, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status enum.TicketStatus) error
	List(ctx context.Context, params *TicketFilterParams) ([]entity.KotBot, int64, error)
}

// TicketFilterParams contains filtering parameters for ticket queries
type TicketFilterParams struct {
	Pagination *pagination.PaginationParams
	Type       *enum.TicketType
	Status     *enum.TicketStatus
	OrderID    *uuid.UUID
}

// KotBotItemRepository defines the interface for ticket items
type KotBotItemRepository interface {
	CreateBatch(ctx context.Context, items []entity.KotBotItem) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.KotBotItem, error)
	SetPrepared(ctx context.Context, id uuid.UUID, prepared bool) error
}
