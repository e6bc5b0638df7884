package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/restoflow/restoflow-api/internal/domain/entity"
	"github.com/restoflow/restoflow-api/internal/domain/enum"
	domainRepo "github.com/restoflow/restoflow-api/internal/domain/repository"
	"github.com/restoflow/restoflow-api/pkg/pagination"
	"gorm.io/gorm"
)

type kotBotRepository struct {
	db *gorm.DB
}

// NewKotBotRepository creates a new preparation ticket repository
func NewKotBotRepository(db *gorm.DB) domainRepo.KotBotRepository {
	return &kotBotRepository{db: db}
}

func (r *kotBotRepository) Create(ctx context.Context, ticket *entity.KotBot) error {
	return r.db.WithContext(ctx).Create(ticket).Error
}

func (r *kotBotRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.KotBot, error) {
	var ticket entity.KotBot
	err := r.db.WithContext(ctx).First(&ticket, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &ticket, err
}

func (r *kotBotRepository) GetWithItems(ctx context.Context, id uuid.UUID) (*entity.KotBot, error) {
	var ticket entity.KotBot
	err := r.db.WithContext(ctx).Preload("Items").First(&ticket, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &ticket, err
}

func (r *kotBotRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.TicketStatus) error {
	return r.db.WithContext(ctx).Model(&entity.KotBot{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *kotBotRepository) List(ctx context.Context, params *domainRepo.TicketFilterParams) ([]entity.KotBot, int64, error) {
	var tickets []entity.KotBot
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.KotBot{})

	if params.Type != nil {
		query = query.Where("type = ?", *params.Type)
	}
	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	}
	if params.OrderID != nil {
		query = query.Where("order_id = ?", *params.OrderID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if params.Pagination == nil {
		params.Pagination = &pagination.PaginationParams{}
	}
	params.Pagination.Validate()

	err := query.Preload("Items").
		Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Order("created_at DESC").
		Find(&tickets).Error

	return tickets, total, err
}

type kotBotItemRepository struct {
	db *gorm.DB
}

// NewKotBotItemRepository creates a new ticket item repository
func NewKotBotItemRepository(db *gorm.DB) domainRepo.KotBotItemRepository {
	return &kotBotItemRepository{db: db}
}

func (r *kotBotItemRepository) CreateBatch(ctx context.Context, items []entity.KotBotItem) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&items).Error
}

func (r *kotBotItemRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.KotBotItem, error) {
	var item entity.KotBotItem
	err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &item, err
}

func (r *kotBotItemRepository) SetPrepared(ctx context.Context, id uuid.UUID, prepared bool) error {
	return r.db.WithContext(ctx).Model(&entity.KotBotItem{}).
		Where("id = ?", id).
		Update("prepared", prepared).Error
}
