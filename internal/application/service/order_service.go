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

// OrderService handles held-order operations. An order is a cart parked
// on a table: it can be edited or deleted freely while held, and becomes
// immutable the moment it is settled or cancelled.
type OrderService struct {
	uow       repository.UnitOfWork
	numbering *NumberingService
}

// NewOrderService creates a new order service
func NewOrderService(uow repository.UnitOfWork, numbering *NumberingService) *OrderService {
	return &OrderService{uow: uow, numbering: numbering}
}

// OrderLineInput is one requested cart line
type OrderLineInput struct {
	ProductID    uuid.UUID
	Quantity     int
	Discount     float64
	DiscountType enum.DiscountType
	Instructions string
}

// CreateOrderInput represents the create order input
type CreateOrderInput struct {
	UserID           uuid.UUID
	CustomerID       *uuid.UUID
	TableNo          *string
	Lines            []OrderLineInput
	CartDiscount     float64
	CartDiscountType enum.DiscountType
	TaxRate          float64
}

// CreateOrder holds a new order: snapshots product names and prices,
// computes the money breakdown and issues an order number, all in one
// transaction.
func (s *OrderService) CreateOrder(ctx context.Context, input *CreateOrderInput) (*entity.Order, error) {
	if len(input.Lines) == 0 {
		return nil, apperror.NewBadRequestError("Order must have at least one line")
	}
	for _, l := range input.Lines {
		if l.Quantity <= 0 {
			return nil, apperror.NewBadRequestError("Line quantity must be positive")
		}
	}

	var order *entity.Order
	err := s.uow.Do(ctx, func(r repository.Repositories) error {
		if input.CustomerID != nil {
			customer, err := r.Customers().GetByID(ctx, *input.CustomerID)
			if err != nil {
				return err
			}
			if customer == nil {
				return apperror.NewNotFoundError("Customer")
			}
		}

		lines, breakdown, err := buildOrderLines(ctx, r, input.Lines, input.CartDiscount, input.CartDiscountType, input.TaxRate)
		if err != nil {
			return err
		}

		orderNo, err := s.numbering.Next(ctx, r, PrefixOrder)
		if err != nil {
			return err
		}

		order = &entity.Order{
			OrderNo:          orderNo,
			CustomerID:       input.CustomerID,
			TableNo:          input.TableNo,
			Status:           enum.OrderStatusHeld,
			CartDiscount:     input.CartDiscount,
			CartDiscountType: input.CartDiscountType,
			TaxRate:          input.TaxRate,
			SubTotal:         breakdown.Subtotal,
			TaxAmount:        breakdown.Tax,
			Total:            breakdown.GrandTotal,
			CreatedByID:      input.UserID,
		}
		if err := r.Orders().Create(ctx, order); err != nil {
			return err
		}

		for i := range lines {
			lines[i].OrderID = order.ID
		}
		if err := r.OrderLines().CreateBatch(ctx, lines); err != nil {
			return err
		}
		order.Lines = lines
		return nil
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

// UpdateOrderInput represents the update order input. Lines replace the
// existing set wholesale.
type UpdateOrderInput struct {
	CustomerID       *uuid.UUID
	TableNo          *string
	Lines            []OrderLineInput
	CartDiscount     float64
	CartDiscountType enum.DiscountType
	TaxRate          float64
}

// UpdateOrder replaces the lines and discounts of a held order and
// recomputes its totals. Settled and cancelled orders are rejected.
func (s *OrderService) UpdateOrder(ctx context.Context, id uuid.UUID, input *UpdateOrderInput) (*entity.Order, error) {
	if len(input.Lines) == 0 {
		return nil, apperror.NewBadRequestError("Order must have at least one line")
	}
	for _, l := range input.Lines {
		if l.Quantity <= 0 {
			return nil, apperror.NewBadRequestError("Line quantity must be positive")
		}
	}

	var order *entity.Order
	err := s.uow.Do(ctx, func(r repository.Repositories) error {
		var err error
		order, err = r.Orders().GetByID(ctx, id)
		if err != nil {
			return err
		}
		if order == nil {
			return apperror.NewNotFoundError("Order")
		}
		if order.Status.IsTerminal() {
			return apperror.NewConflictError("Order is " + order.Status.String() + " and can no longer be edited")
		}

		if input.CustomerID != nil {
			customer, err := r.Customers().GetByID(ctx, *input.CustomerID)
			if err != nil {
				return err
			}
			if customer == nil {
				return apperror.NewNotFoundError("Customer")
			}
		}

		lines, breakdown, err := buildOrderLines(ctx, r, input.Lines, input.CartDiscount, input.CartDiscountType, input.TaxRate)
		if err != nil {
			return err
		}

		order.CustomerID = input.CustomerID
		order.TableNo = input.TableNo
		order.CartDiscount = input.CartDiscount
		order.CartDiscountType = input.CartDiscountType
		order.TaxRate = input.TaxRate
		order.SubTotal = breakdown.Subtotal
		order.TaxAmount = breakdown.Tax
		order.Total = breakdown.GrandTotal
		if err := r.Orders().Update(ctx, order); err != nil {
			return err
		}

		if err := r.OrderLines().DeleteByOrderID(ctx, order.ID); err != nil {
			return err
		}
		for i := range lines {
			lines[i].OrderID = order.ID
		}
		if err := r.OrderLines().CreateBatch(ctx, lines); err != nil {
			return err
		}
		order.Lines = lines
		return nil
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

// DeleteOrder removes a held order and its lines. Orders bound to a sale
// cannot be deleted.
func (s *OrderService) DeleteOrder(ctx context.Context, id uuid.UUID) error {
	return s.uow.Do(ctx, func(r repository.Repositories) error {
		order, err := r.Orders().GetByID(ctx, id)
		if err != nil {
			return err
		}
		if order == nil {
			return apperror.NewNotFoundError("Order")
		}
		if order.Status.IsTerminal() {
			return apperror.NewConflictError("Order is " + order.Status.String() + " and cannot be deleted")
		}

		if err := r.OrderLines().DeleteByOrderID(ctx, id); err != nil {
			return err
		}
		return r.Orders().Delete(ctx, id)
	})
}

// GetOrder retrieves an order with its lines
func (s *OrderService) GetOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	order, err := s.uow.Repos().Orders().GetWithLines(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}
	return order, nil
}

// ListOrders lists orders with filtering and pagination
func (s *OrderService) ListOrders(ctx context.Context, params *repository.OrderFilterParams) (*pagination.PaginatedResult[entity.Order], error) {
	orders, total, err := s.uow.Repos().Orders().List(ctx, params)
	if err != nil {
		return nil, err
	}
	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(orders, pag), nil
}

// buildOrderLines resolves products, snapshots names and prices, and runs
// the money calculation for the requested cart
func buildOrderLines(ctx context.Context, r repository.Repositories, inputs []OrderLineInput, cartDiscount float64, cartDiscountType enum.DiscountType, taxRate float64) ([]entity.OrderLine, money.Breakdown, error) {
	ids := make([]uuid.UUID, 0, len(inputs))
	for _, in := range inputs {
		ids = append(ids, in.ProductID)
	}
	products, err := r.Products().GetByIDs(ctx, ids)
	if err != nil {
		return nil, money.Breakdown{}, err
	}
	byID := make(map[uuid.UUID]entity.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	lines := make([]entity.OrderLine, 0, len(inputs))
	calcLines := make([]money.Line, 0, len(inputs))
	for _, in := range inputs {
		product, ok := byID[in.ProductID]
		if !ok {
			return nil, money.Breakdown{}, apperror.NewNotFoundError("Product")
		}
		discount := money.Discount{Type: in.DiscountType, Value: in.Discount}
		lineTotal := money.LineTotal(in.Quantity, product.Price, discount)
		lines = append(lines, entity.OrderLine{
			ProductID:    product.ID,
			Name:         product.Name,
			Quantity:     in.Quantity,
			UnitPrice:    product.Price,
			Discount:     in.Discount,
			DiscountType: in.DiscountType,
			LineTotal:    lineTotal,
			Instructions: in.Instructions,
		})
		calcLines = append(calcLines, money.Line{
			Quantity:  in.Quantity,
			UnitPrice: product.Price,
			Discount:  discount,
		})
	}

	breakdown := money.Calculate(calcLines, money.Discount{Type: cartDiscountType, Value: cartDiscount}, taxRate)
	return lines, breakdown, nil
}
