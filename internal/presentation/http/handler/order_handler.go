package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/restoflow/restoflow-api/internal/application/service"
	"github.com/restoflow/restoflow-api/internal/domain/enum"
	"github.com/restoflow/restoflow-api/internal/domain/repository"
	"github.com/restoflow/restoflow-api/internal/presentation/http/dto/request"
	"github.com/restoflow/restoflow-api/internal/presentation/http/dto/response"
)

// OrderHandler handles held-order HTTP requests
type OrderHandler struct {
	orderService *service.OrderService
	saleService  *service.SaleService
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService *service.OrderService, saleService *service.SaleService) *OrderHandler {
	return &OrderHandler{orderService: orderService, saleService: saleService}
}

// Create handles holding a new order
func (h *OrderHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	lines, ok := toOrderLineInputs(req.Lines)
	if !ok {
		response.BadRequest(c, "Invalid product id in lines")
		return
	}

	order, err := h.orderService.CreateOrder(c.Request.Context(), &service.CreateOrderInput{
		UserID:           *userID,
		CustomerID:       parseOptionalUUID(req.CustomerID),
		TableNo:          req.TableNo,
		Lines:            lines,
		CartDiscount:     req.CartDiscount,
		CartDiscountType: parseDiscountType(req.CartDiscountType),
		TaxRate:          req.TaxRate,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Order held", order)
}

// Update handles editing a held order
func (h *OrderHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid order id")
		return
	}

	var req request.UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	lines, lok := toOrderLineInputs(req.Lines)
	if !lok {
		response.BadRequest(c, "Invalid product id in lines")
		return
	}

	order, err := h.orderService.UpdateOrder(c.Request.Context(), id, &service.UpdateOrderInput{
		CustomerID:       parseOptionalUUID(req.CustomerID),
		TableNo:          req.TableNo,
		Lines:            lines,
		CartDiscount:     req.CartDiscount,
		CartDiscountType: parseDiscountType(req.CartDiscountType),
		TaxRate:          req.TaxRate,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order updated", order)
}

// Delete handles deleting a held order
func (h *OrderHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid order id")
		return
	}

	if err := h.orderService.DeleteOrder(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// Get handles retrieving an order with its lines
func (h *OrderHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid order id")
		return
	}

	order, err := h.orderService.GetOrder(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order retrieved", order)
}

// List handles listing orders with filters
func (h *OrderHandler) List(c *gin.Context) {
	params := &repository.OrderFilterParams{
		Pagination: bindPagination(c),
		Search:     c.Query("search"),
		SortBy:     c.Query("sort_by"),
		SortOrder:  c.Query("sort_order"),
	}
	if status := c.Query("status"); status != "" {
		var s enum.OrderStatus
		switch status {
		case "held":
			s = enum.OrderStatusHeld
		case "settled":
			s = enum.OrderStatusSettled
		case "cancelled":
			s = enum.OrderStatusCancelled
		default:
			response.BadRequest(c, "Unknown order status "+status)
			return
		}
		params.Status = &s
	}
	if customerID := c.Query("customer_id"); customerID != "" {
		if id, err := uuid.Parse(customerID); err == nil {
			params.CustomerID = &id
		}
	}

	result, err := h.orderService.ListOrders(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Orders retrieved", result)
}

// Settle handles settling a held order into a sale
func (h *OrderHandler) Settle(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid order id")
		return
	}

	var req request.SettleOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	sale, err := h.saleService.SettleOrder(c.Request.Context(), id, &service.SettleOrderInput{
		UserID:   *userID,
		Payments: toPaymentInputs(req.Payments),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Order settled", sale)
}
