package request

// OrderLineRequest is one cart line in an order or sale request
type OrderLineRequest struct {
	ProductID    string  `json:"product_id" binding:"required,uuid"`
	Quantity     int     `json:"quantity" binding:"required,gt=0"`
	Discount     float64 `json:"discount" binding:"gte=0"`
	DiscountType string  `json:"discount_type" binding:"omitempty,oneof=amount percentage"`
	Instructions string  `json:"instructions"`
}

// CreateOrderRequest represents the create order request
type CreateOrderRequest struct {
	CustomerID       *string            `json:"customer_id" binding:"omitempty,uuid"`
	TableNo          *string            `json:"table_no"`
	Lines            []OrderLineRequest `json:"lines" binding:"required,min=1,dive"`
	CartDiscount     float64            `json:"cart_discount" binding:"gte=0"`
	CartDiscountType string             `json:"cart_discount_type" binding:"omitempty,oneof=amount percentage"`
	TaxRate          float64            `json:"tax_rate" binding:"gte=0"`
}

// UpdateOrderRequest represents the update order request. Lines replace
// the existing set wholesale.
type UpdateOrderRequest struct {
	CustomerID       *string            `json:"customer_id" binding:"omitempty,uuid"`
	TableNo          *string            `json:"table_no"`
	Lines            []OrderLineRequest `json:"lines" binding:"required,min=1,dive"`
	CartDiscount     float64            `json:"cart_discount" binding:"gte=0"`
	CartDiscountType string             `json:"cart_discount_type" binding:"omitempty,oneof=amount percentage"`
	TaxRate          float64            `json:"tax_rate" binding:"gte=0"`
}
