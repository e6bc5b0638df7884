package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/restoflow/restoflow-api/internal/domain/entity"
	"github.com/restoflow/restoflow-api/internal/domain/repository"
	"github.com/restoflow/restoflow-api/pkg/apperror"
	"github.com/restoflow/restoflow-api/pkg/money"
	"github.com/restoflow/restoflow-api/pkg/pagination"
)

// ProductService handles product catalog operations
type ProductService struct {
	uow repository.UnitOfWork
}

// NewProductService creates a new product service
func NewProductService(uow repository.UnitOfWork) *ProductService {
	return &ProductService{uow: uow}
}

// CreateProductInput represents the create product input
type CreateProductInput struct {
	UserID        uuid.UUID
	CategoryID    *uuid.UUID
	Name          string
	Code          string
	Price         float64
	Quantity      int
	QuantityAlert int
}

// CreateProduct creates a new product
func (s *ProductService) CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error) {
	if input.Price < 0 {
		return nil, apperror.NewBadRequestError("Price cannot be negative")
	}
	if input.Quantity < 0 {
		return nil, apperror.NewBadRequestError("Quantity cannot be negative")
	}

	existing, err := s.uow.Repos().Products().GetByCode(ctx, input.Code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Product code already in use")
	}

	product := &entity.Product{
		CategoryID:    input.CategoryID,
		Name:          input.Name,
		Code:          input.Code,
		Price:         money.FromDecimal(input.Price),
		Quantity:      input.Quantity,
		QuantityAlert: input.QuantityAlert,
		CreatedByID:   input.UserID,
	}

	if err := s.uow.Repos().Products().Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// UpdateProductInput represents the update product input. Quantity is
// absent on purpose: stock moves only through sales, purchases and
// returns.
type UpdateProductInput struct {
	CategoryID    *uuid.UUID
	Name          *string
	Code          *string
	Price         *float64
	QuantityAlert *int
}

// UpdateProduct updates product attributes other than stock
func (s *ProductService) UpdateProduct(ctx context.Context, id uuid.UUID, input *UpdateProductInput) (*entity.Product, error) {
	product, err := s.uow.Repos().Products().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}

	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.Code != nil && *input.Code != product.Code {
		existing, err := s.uow.Repos().Products().GetByCode(ctx, *input.Code)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, apperror.NewConflictError("Product code already in use")
		}
		product.Code = *input.Code
	}
	if input.CategoryID != nil {
		product.CategoryID = input.CategoryID
	}
	if input.Price != nil {
		if *input.Price < 0 {
			return nil, apperror.NewBadRequestError("Price cannot be negative")
		}
		product.Price = money.FromDecimal(*input.Price)
	}
	if input.QuantityAlert != nil {
		product.QuantityAlert = *input.QuantityAlert
	}

	if err := s.uow.Repos().Products().Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// GetProduct retrieves a product by ID
func (s *ProductService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := s.uow.Repos().Products().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}
	return product, nil
}

// DeleteProduct deletes a product
func (s *ProductService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	product, err := s.uow.Repos().Products().GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return apperror.NewNotFoundError("Product")
	}
	return s.uow.Repos().Products().Delete(ctx, id)
}

// ListProducts lists products with filtering and pagination
func (s *ProductService) ListProducts(ctx context.Context, params *repository.ProductFilterParams) (*pagination.PaginatedResult[entity.Product], error) {
	products, total, err := s.uow.Repos().Products().List(ctx, params)
	if err != nil {
		return nil, err
	}
	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(products, pag), nil
}

// GetLowStockProducts returns products at or below their alert level
func (s *ProductService) GetLowStockProducts(ctx context.Context) ([]entity.Product, error) {
	return s.uow.Repos().Products().GetLowStock(ctx)
}
