package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/restoflow/restoflow-api/internal/domain/entity"
	"github.com/restoflow/restoflow-api/internal/domain/enum"
	"github.com/restoflow/restoflow-api/internal/domain/repository"
	"github.com/restoflow/restoflow-api/pkg/apperror"
	"github.com/restoflow/restoflow-api/pkg/money"
	"github.com/restoflow/restoflow-api/pkg/pagination"
)

// PurchaseService handles supplier purchases and purchase returns.
// Approval moves stock in; returns move it back out and settle against
// the supplier's dues balance.
type PurchaseService struct {
	uow       repository.UnitOfWork
	numbering *NumberingService
}

// NewPurchaseService creates a new purchase service
func NewPurchaseService(uow repository.UnitOfWork, numbering *NumberingService) *PurchaseService {
	return &PurchaseService{uow: uow, numbering: numbering}
}

// PurchaseItemInput is one requested purchase line
type PurchaseItemInput struct {
	ProductID uuid.UUID
	Quantity  int
	UnitCost  float64
}

// CreatePurchaseInput represents the create purchase input
type CreatePurchaseInput struct {
	UserID     uuid.UUID
	SupplierID *uuid.UUID
	PurchaseNo string
	OnCredit   bool
	Items      []PurchaseItemInput
}

// CreatePurchase records a pending purchase. Stock does not move until
// the purchase is approved. A credit purchase raises the supplier's dues.
func (s *PurchaseService) CreatePurchase(ctx context.Context, input *CreatePurchaseInput) (*entity.Purchase, error) {
	if len(input.Items) == 0 {
		return nil, apperror.NewBadRequestError("Purchase must have at least one item")
	}
	if input.PurchaseNo == "" {
		return nil, apperror.NewBadRequestError("Purchase number is required")
	}
	if input.OnCredit && input.SupplierID == nil {
		return nil, apperror.NewBadRequestError("Credit purchase requires a supplier")
	}

	var purchase *entity.Purchase
	err := s.uow.Do(ctx, func(r repository.Repositories) error {
		if input.SupplierID != nil {
			supplier, err := r.Suppliers().GetByID(ctx, *input.SupplierID)
			if err != nil {
				return err
			}
			if supplier == nil {
				return apperror.NewNotFoundError("Supplier")
			}
		}

		ids := make([]uuid.UUID, 0, len(input.Items))
		for _, it := range input.Items {
			if it.Quantity <= 0 {
				return apperror.NewBadRequestError("Item quantity must be positive")
			}
			if it.UnitCost < 0 {
				return apperror.NewBadRequestError("Unit cost cannot be negative")
			}
			ids = append(ids, it.ProductID)
		}
		products, err := r.Products().GetByIDs(ctx, ids)
		if err != nil {
			return err
		}
		byID := make(map[uuid.UUID]entity.Product, len(products))
		for _, p := range products {
			byID[p.ID] = p
		}

		details := make([]entity.PurchaseDetail, 0, len(input.Items))
		var total int64
		for _, it := range input.Items {
			if _, ok := byID[it.ProductID]; !ok {
				return apperror.NewNotFoundError("Product")
			}
			unitCost := money.FromDecimal(it.UnitCost)
			lineTotal := int64(it.Quantity) * unitCost
			total += lineTotal
			details = append(details, entity.PurchaseDetail{
				ProductID: it.ProductID,
				Quantity:  it.Quantity,
				UnitCost:  unitCost,
				Total:     lineTotal,
			})
		}

		purchase = &entity.Purchase{
			PurchaseNo:  input.PurchaseNo,
			SupplierID:  input.SupplierID,
			Status:      enum.PurchaseStatusPending,
			TotalAmount: total,
			CreatedByID: input.UserID,
		}
		if err := r.Purchases().Create(ctx, purchase); err != nil {
			return err
		}

		for i := range details {
			details[i].PurchaseID = purchase.ID
		}
		if err := r.PurchaseDetails().CreateBatch(ctx, details); err != nil {
			return err
		}
		purchase.Details = details

		if input.OnCredit {
			if err := r.Suppliers().IncrementDues(ctx, *input.SupplierID, total); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return purchase, nil
}

// ApprovePurchase moves a pending purchase to approved and applies its
// quantities to stock. Approving twice is a conflict.
func (s *PurchaseService) ApprovePurchase(ctx context.Context, id uuid.UUID) (*entity.Purchase, error) {
	var purchase *entity.Purchase
	err := s.uow.Do(ctx, func(r repository.Repositories) error {
		var err error
		purchase, err = r.Purchases().GetWithDetails(ctx, id)
		if err != nil {
			return err
		}
		if purchase == nil {
			return apperror.NewNotFoundError("Purchase")
		}
		if purchase.Status == enum.PurchaseStatusApproved {
			return apperror.NewConflictError("Purchase is already approved")
		}

		for _, d := range purchase.Details {
			if _, err := r.Products().ApplyStockDelta(ctx, d.ProductID, d.Quantity); err != nil {
				return err
			}
		}

		if err := r.Purchases().UpdateStatus(ctx, id, enum.PurchaseStatusApproved); err != nil {
			return err
		}
		purchase.Status = enum.PurchaseStatusApproved
		return nil
	})
	if err != nil {
		return nil, err
	}
	return purchase, nil
}

// ReturnItemInput is one requested return line
type ReturnItemInput struct {
	DetailID uuid.UUID
	Quantity int
}

// CreatePurchaseReturn sends part of an approved purchase back to the
// supplier: validates returnable quantities, pulls the stock back out
// (guarded, never below zero), reduces the supplier's dues by the
// returned value floored at zero, and stamps a return invoice number.
func (s *PurchaseService) CreatePurchaseReturn(ctx context.Context, purchaseID uuid.UUID, items []ReturnItemInput) (*entity.Purchase, error) {
	if len(items) == 0 {
		return nil, apperror.NewBadRequestError("Return must have at least one item")
	}

	var purchase *entity.Purchase
	err := s.uow.Do(ctx, func(r repository.Repositories) error {
		var err error
		purchase, err = r.Purchases().GetWithDetails(ctx, purchaseID)
		if err != nil {
			return err
		}
		if purchase == nil {
			return apperror.NewNotFoundError("Purchase")
		}
		if purchase.Status != enum.PurchaseStatusApproved {
			return apperror.NewConflictError("Only approved purchases can be returned")
		}

		byID := make(map[uuid.UUID]*entity.PurchaseDetail, len(purchase.Details))
		for i := range purchase.Details {
			byID[purchase.Details[i].ID] = &purchase.Details[i]
		}

		var returnedValue int64
		for _, it := range items {
			if it.Quantity <= 0 {
				return apperror.NewBadRequestError("Return quantity must be positive")
			}
			detail, ok := byID[it.DetailID]
			if !ok {
				return apperror.NewNotFoundError("Purchase item")
			}
			returnable := detail.Quantity - detail.ReturnedQty
			if it.Quantity > returnable {
				return apperror.NewBadRequestError("Return quantity exceeds the returnable quantity")
			}

			ok, err := r.Products().ApplyStockDelta(ctx, detail.ProductID, -it.Quantity)
			if err != nil {
				return err
			}
			if !ok {
				current := 0
				if p, err := r.Products().GetByID(ctx, detail.ProductID); err == nil && p != nil {
					current = p.Quantity
				}
				return apperror.NewInsufficientStockError(
					detail.ProductID.String(), detail.Product.Name, current, it.Quantity)
			}

			detail.ReturnedQty += it.Quantity
			if err := r.PurchaseDetails().Update(ctx, detail); err != nil {
				return err
			}
			returnedValue += int64(it.Quantity) * detail.UnitCost
		}

		returnNo, err := s.numbering.Next(ctx, r, PrefixReturn)
		if err != nil {
			return err
		}

		purchase.ReturnedAmount += returnedValue
		purchase.ReturnInvoiceNo = &returnNo
		if err := r.Purchases().Update(ctx, purchase); err != nil {
			return err
		}

		if purchase.SupplierID != nil {
			if err := r.Suppliers().DecrementDuesFloored(ctx, *purchase.SupplierID, returnedValue); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return purchase, nil
}

// GetPurchase retrieves a purchase with its details
func (s *PurchaseService) GetPurchase(ctx context.Context, id uuid.UUID) (*entity.Purchase, error) {
	purchase, err := s.uow.Repos().Purchases().GetWithDetails(ctx, id)
	if err != nil {
		return nil, err
	}
	if purchase == nil {
		return nil, apperror.NewNotFoundError("Purchase")
	}
	return purchase, nil
}

// ListPurchases lists purchases with filtering and pagination
func (s *PurchaseService) ListPurchases(ctx context.Context, params *repository.PurchaseFilterParams) (*pagination.PaginatedResult[entity.Purchase], error) {
	purchases, total, err := s.uow.Repos().Purchases().List(ctx, params)
	if err != nil {
		return nil, err
	}
	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(purchases, pag), nil
}

// CreateSupplierInput represents the create supplier input
type CreateSupplierInput struct {
	Name    string
	Phone   *string
	Email   *string
	Address *string
}

// CreateSupplier creates a new supplier
func (s *PurchaseService) CreateSupplier(ctx context.Context, input *CreateSupplierInput) (*entity.Supplier, error) {
	supplier := &entity.Supplier{
		Name:    input.Name,
		Phone:   input.Phone,
		Email:   input.Email,
		Address: input.Address,
	}
	if err := s.uow.Repos().Suppliers().Create(ctx, supplier); err != nil {
		return nil, err
	}
	return supplier, nil
}

// ListSuppliers lists suppliers with pagination
func (s *PurchaseService) ListSuppliers(ctx context.Context, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.Supplier], error) {
	suppliers, total, err := s.uow.Repos().Suppliers().List(ctx, params, search)
	if err != nil {
		return nil, err
	}
	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(suppliers, pag), nil
}
