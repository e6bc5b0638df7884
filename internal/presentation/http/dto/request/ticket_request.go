package request

// TicketItemRequest is one ad-hoc ticket item
type TicketItemRequest struct {
	ProductID    string `json:"product_id" binding:"required,uuid"`
	Quantity     int    `json:"quantity" binding:"required,gt=0"`
	Instructions string `json:"instructions"`
}

// GenerateTicketRequest represents the generate ticket request. Either
// order_id (with optional line_ids) or items must be provided.
type GenerateTicketRequest struct {
	Type    string              `json:"type" binding:"required,oneof=KOT BOT"`
	OrderID *string             `json:"order_id" binding:"omitempty,uuid"`
	LineIDs []string            `json:"line_ids" binding:"omitempty,dive,uuid"`
	Items   []TicketItemRequest `json:"items" binding:"omitempty,dive"`
}

// UpdateTicketStatusRequest represents the ticket status transition request
type UpdateTicketStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=preparing ready cancelled"`
}

// SetItemPreparedRequest toggles the prepared flag on a ticket item
type SetItemPreparedRequest struct {
	Prepared bool `json:"prepared"`
}
