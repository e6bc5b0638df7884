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

// KotBotHandler handles kitchen and bar ticket HTTP requests
type KotBotHandler struct {
	kotBotService *service.KotBotService
}

// NewKotBotHandler creates a new kot/bot handler
func NewKotBotHandler(kotBotService *service.KotBotService) *KotBotHandler {
	return &KotBotHandler{kotBotService: kotBotService}
}

// Generate handles cutting a new KOT or BOT
func (h *KotBotHandler) Generate(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.GenerateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	ticketType, err := enum.ParseTicketType(req.Type)
	if err != nil {
		response.BadRequest(c, "Unknown ticket type")
		return
	}

	lineIDs := make([]uuid.UUID, 0, len(req.LineIDs))
	for _, raw := range req.LineIDs {
		id, perr := uuid.Parse(raw)
		if perr != nil {
			response.BadRequest(c, "Invalid line id")
			return
		}
		lineIDs = append(lineIDs, id)
	}

	items := make([]service.TicketItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		productID, perr := uuid.Parse(item.ProductID)
		if perr != nil {
			response.BadRequest(c, "Invalid product id in items")
			return
		}
		items = append(items, service.TicketItemInput{
			ProductID:    productID,
			Quantity:     item.Quantity,
			Instructions: item.Instructions,
		})
	}

	ticket, err := h.kotBotService.GenerateTicket(c.Request.Context(), &service.GenerateTicketInput{
		UserID:  *userID,
		Type:    ticketType,
		OrderID: parseOptionalUUID(req.OrderID),
		LineIDs: lineIDs,
		Items:   items,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Ticket generated", ticket)
}

// UpdateStatus handles a ticket status transition
func (h *KotBotHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid ticket id")
		return
	}

	var req request.UpdateTicketStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	var status enum.TicketStatus
	switch req.Status {
	case "preparing":
		status = enum.TicketStatusPreparing
	case "ready":
		status = enum.TicketStatusReady
	case "cancelled":
		status = enum.TicketStatusCancelled
	default:
		response.BadRequest(c, "Unknown ticket status")
		return
	}

	ticket, err := h.kotBotService.UpdateTicketStatus(c.Request.Context(), id, status)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Ticket status updated", ticket)
}

// SetItemPrepared handles toggling the prepared flag on a ticket item
func (h *KotBotHandler) SetItemPrepared(c *gin.Context) {
	itemID, ok := parseIDParam(c, "itemId")
	if !ok {
		response.BadRequest(c, "Invalid item id")
		return
	}

	var req request.SetItemPreparedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.kotBotService.SetItemPrepared(c.Request.Context(), itemID, req.Prepared); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Item updated", nil)
}

// Get handles retrieving a ticket with its items
func (h *KotBotHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid ticket id")
		return
	}

	ticket, err := h.kotBotService.GetTicket(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Ticket retrieved", ticket)
}

// List handles listing tickets with filters
func (h *KotBotHandler) List(c *gin.Context) {
	params := &repository.TicketFilterParams{
		Pagination: bindPagination(c),
	}
	if raw := c.Query("type"); raw != "" {
		t, err := enum.ParseTicketType(raw)
		if err != nil {
			response.BadRequest(c, "Unknown ticket type "+raw)
			return
		}
		params.Type = &t
	}
	if raw := c.Query("status"); raw != "" {
		var s enum.TicketStatus
		switch raw {
		case "sent":
			s = enum.TicketStatusSent
		case "preparing":
			s = enum.TicketStatusPreparing
		case "ready":
			s = enum.TicketStatusReady
		case "cancelled":
			s = enum.TicketStatusCancelled
		default:
			response.BadRequest(c, "Unknown ticket status "+raw)
			return
		}
		params.Status = &s
	}
	if raw := c.Query("order_id"); raw != "" {
		if id, err := uuid.Parse(raw); err == nil {
			params.OrderID = &id
		}
	}

	result, err := h.kotBotService.ListTickets(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Tickets retrieved", result)
}
