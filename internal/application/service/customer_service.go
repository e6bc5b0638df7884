package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/restoflow/restoflow-api/internal/domain/entity"
	"github.com/restoflow/restoflow-api/internal/domain/repository"
	"github.com/restoflow/restoflow-api/pkg/apperror"
	"github.com/restoflow/restoflow-api/pkg/pagination"
)

// CustomerService handles customer and due-ledger operations
type CustomerService struct {
	uow repository.UnitOfWork
}

// NewCustomerService creates a new customer service
func NewCustomerService(uow repository.UnitOfWork) *CustomerService {
	return &CustomerService{uow: uow}
}

// CreateCustomerInput represents the create customer input
type CreateCustomerInput struct {
	Name    string
	Phone   *string
	Email   *string
	Address *string
}

// CreateCustomer creates a new customer
func (s *CustomerService) CreateCustomer(ctx context.Context, input *CreateCustomerInput) (*entity.Customer, error) {
	customer := &entity.Customer{
		Name:    input.Name,
		Phone:   input.Phone,
		Email:   input.Email,
		Address: input.Address,
	}
	if err := s.uow.Repos().Customers().Create(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// UpdateCustomerInput represents the update customer input
type UpdateCustomerInput struct {
	Name    *string
	Phone   *string
	Email   *string
	Address *string
}

// UpdateCustomer updates customer contact details. The dues balance is
// not part of this path.
func (s *CustomerService) UpdateCustomer(ctx context.Context, id uuid.UUID, input *UpdateCustomerInput) (*entity.Customer, error) {
	customer, err := s.uow.Repos().Customers().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}

	if input.Name != nil {
		customer.Name = *input.Name
	}
	if input.Phone != nil {
		customer.Phone = input.Phone
	}
	if input.Email != nil {
		customer.Email = input.Email
	}
	if input.Address != nil {
		customer.Address = input.Address
	}

	if err := s.uow.Repos().Customers().Update(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// GetCustomer retrieves a customer by ID
func (s *CustomerService) GetCustomer(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	customer, err := s.uow.Repos().Customers().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}
	return customer, nil
}

// DeleteCustomer deletes a customer. Customers referenced by any order,
// sale or due entry cannot be deleted: history must stay attributable.
func (s *CustomerService) DeleteCustomer(ctx context.Context, id uuid.UUID) error {
	return s.uow.Do(ctx, func(r repository.Repositories) error {
		customer, err := r.Customers().GetByID(ctx, id)
		if err != nil {
			return err
		}
		if customer == nil {
			return apperror.NewNotFoundError("Customer")
		}

		refs, err := r.Customers().CountReferences(ctx, id)
		if err != nil {
			return err
		}
		if refs > 0 {
			return apperror.NewConflictError("Customer has transaction history and cannot be deleted")
		}

		return r.Customers().Delete(ctx, id)
	})
}

// ListCustomers lists customers with pagination
func (s *CustomerService) ListCustomers(ctx context.Context, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.Customer], error) {
	customers, total, err := s.uow.Repos().Customers().List(ctx, params, search)
	if err != nil {
		return nil, err
	}
	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(customers, pag), nil
}

// ListCustomersWithDues lists customers carrying a positive balance
func (s *CustomerService) ListCustomersWithDues(ctx context.Context, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.Customer], error) {
	customers, total, err := s.uow.Repos().Customers().ListWithDues(ctx, params)
	if err != nil {
		return nil, err
	}
	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(customers, pag), nil
}

// ListCustomerDues returns the due-ledger entries for one customer
func (s *CustomerService) ListCustomerDues(ctx context.Context, customerID uuid.UUID, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.CustomerDue], error) {
	customer, err := s.uow.Repos().Customers().GetByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}

	dues, total, err := s.uow.Repos().CustomerDues().ListByCustomer(ctx, customerID, params)
	if err != nil {
		return nil, err
	}
	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(dues, pag), nil
}
