package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/restoflow/restoflow-api/internal/domain/entity"
	"github.com/restoflow/restoflow-api/internal/domain/repository"
	"github.com/restoflow/restoflow-api/pkg/apperror"
	"github.com/restoflow/restoflow-api/pkg/pagination"
	"github.com/restoflow/restoflow-api/pkg/utils"
)

// CategoryService handles product category operations
type CategoryService struct {
	uow repository.UnitOfWork
}

// NewCategoryService creates a new category service
func NewCategoryService(uow repository.UnitOfWork) *CategoryService {
	return &CategoryService{uow: uow}
}

// CreateCategory creates a new category with a slug derived from the name
func (s *CategoryService) CreateCategory(ctx context.Context, name string) (*entity.Category, error) {
	slug := utils.Slugify(name)
	if slug == "" {
		return nil, apperror.NewBadRequestError("Category name is required")
	}

	existing, err := s.uow.Repos().Categories().GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Category already exists")
	}

	category := &entity.Category{
		Name: name,
		Slug: slug,
	}
	if err := s.uow.Repos().Categories().Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// UpdateCategory renames a category, regenerating its slug
func (s *CategoryService) UpdateCategory(ctx context.Context, id uuid.UUID, name string) (*entity.Category, error) {
	category, err := s.uow.Repos().Categories().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, apperror.NewNotFoundError("Category")
	}

	newSlug := utils.Slugify(name)
	if newSlug == "" {
		return nil, apperror.NewBadRequestError("Category name is required")
	}
	if newSlug != category.Slug {
		existing, err := s.uow.Repos().Categories().GetBySlug(ctx, newSlug)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, apperror.NewConflictError("Category already exists")
		}
	}

	category.Name = name
	category.Slug = newSlug
	if err := s.uow.Repos().Categories().Update(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// GetCategory retrieves a category by ID
func (s *CategoryService) GetCategory(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	category, err := s.uow.Repos().Categories().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, apperror.NewNotFoundError("Category")
	}
	return category, nil
}

// DeleteCategory deletes a category
func (s *CategoryService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	category, err := s.uow.Repos().Categories().GetByID(ctx, id)
	if err != nil {
		return err
	}
	if category == nil {
		return apperror.NewNotFoundError("Category")
	}
	return s.uow.Repos().Categories().Delete(ctx, id)
}

// ListCategories lists categories with pagination
func (s *CategoryService) ListCategories(ctx context.Context, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.Category], error) {
	categories, total, err := s.uow.Repos().Categories().List(ctx, params, search)
	if err != nil {
		return nil, err
	}
	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(categories, pag), nil
}
