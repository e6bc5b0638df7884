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

// PurchaseHandler handles purchase and supplier HTTP requests
type PurchaseHandler struct {
	purchaseService *service.PurchaseService
}

// NewPurchaseHandler creates a new purchase handler
func NewPurchaseHandler(purchaseService *service.PurchaseService) *PurchaseHandler {
	return &PurchaseHandler{purchaseService: purchaseService}
}

// Create handles recording a pending purchase
func (h *PurchaseHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.CreatePurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	items := make([]service.PurchaseItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		productID, perr := uuid.Parse(item.ProductID)
		if perr != nil {
			response.BadRequest(c, "Invalid product id in items")
			return
		}
		items = append(items, service.PurchaseItemInput{
			ProductID: productID,
			Quantity:  item.Quantity,
			UnitCost:  item.UnitCost,
		})
	}

	purchase, err := h.purchaseService.CreatePurchase(c.Request.Context(), &service.CreatePurchaseInput{
		UserID:     *userID,
		SupplierID: parseOptionalUUID(req.SupplierID),
		PurchaseNo: req.PurchaseNo,
		OnCredit:   req.OnCredit,
		Items:      items,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Purchase recorded", purchase)
}

// Approve handles approving a pending purchase and stocking it in
func (h *PurchaseHandler) Approve(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid purchase id")
		return
	}

	purchase, err := h.purchaseService.ApprovePurchase(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Purchase approved", purchase)
}

// Return handles returning items from an approved purchase
func (h *PurchaseHandler) Return(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid purchase id")
		return
	}

	var req request.CreatePurchaseReturnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	items := make([]service.ReturnItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		detailID, perr := uuid.Parse(item.DetailID)
		if perr != nil {
			response.BadRequest(c, "Invalid detail id in items")
			return
		}
		items = append(items, service.ReturnItemInput{
			DetailID: detailID,
			Quantity: item.Quantity,
		})
	}

	purchase, err := h.purchaseService.CreatePurchaseReturn(c.Request.Context(), id, items)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Purchase return recorded", purchase)
}

// Get handles retrieving a purchase with its details
func (h *PurchaseHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid purchase id")
		return
	}

	purchase, err := h.purchaseService.GetPurchase(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Purchase retrieved", purchase)
}

// List handles listing purchases with filters
func (h *PurchaseHandler) List(c *gin.Context) {
	params := &repository.PurchaseFilterParams{
		Pagination: bindPagination(c),
		Search:     c.Query("search"),
	}
	if raw := c.Query("status"); raw != "" {
		var s enum.PurchaseStatus
		switch raw {
		case "pending":
			s = enum.PurchaseStatusPending
		case "approved":
			s = enum.PurchaseStatusApproved
		default:
			response.BadRequest(c, "Unknown purchase status "+raw)
			return
		}
		params.Status = &s
	}
	if raw := c.Query("supplier_id"); raw != "" {
		if id, err := uuid.Parse(raw); err == nil {
			params.SupplierID = &id
		}
	}

	result, err := h.purchaseService.ListPurchases(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Purchases retrieved", result)
}

// CreateSupplier handles creating a new supplier
func (h *PurchaseHandler) CreateSupplier(c *gin.Context) {
	var req request.CreateSupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	supplier, err := h.purchaseService.CreateSupplier(c.Request.Context(), &service.CreateSupplierInput{
		Name:    req.Name,
		Phone:   req.Phone,
		Email:   req.Email,
		Address: req.Address,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Supplier created", supplier)
}

// ListSuppliers handles listing suppliers
func (h *PurchaseHandler) ListSuppliers(c *gin.Context) {
	result, err := h.purchaseService.ListSuppliers(c.Request.Context(), bindPagination(c), c.Query("search"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Suppliers retrieved", result)
}
