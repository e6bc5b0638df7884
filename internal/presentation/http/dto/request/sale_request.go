package request

// PaymentRequest is one tendered payment
type PaymentRequest struct {
	Method    string  `json:"method" binding:"required,oneof=cash cheque card credit gift_voucher"`
	Amount    float64 `json:"amount" binding:"required,gt=0"`
	Reference *string `json:"reference"`
}

// CreateSaleRequest represents a direct cart checkout
type CreateSaleRequest struct {
	CustomerID       *string            `json:"customer_id" binding:"omitempty,uuid"`
	Lines            []OrderLineRequest `json:"lines" binding:"required,min=1,dive"`
	CartDiscount     float64            `json:"cart_discount" binding:"gte=0"`
	CartDiscountType string             `json:"cart_discount_type" binding:"omitempty,oneof=amount percentage"`
	TaxRate          float64            `json:"tax_rate" binding:"gte=0"`
	Payments         []PaymentRequest   `json:"payments" binding:"required,min=1,dive"`
}

// UpdateSaleRequest represents the update sale request: a replacement
// cart and payment set
type UpdateSaleRequest struct {
	CustomerID       *string            `json:"customer_id" binding:"omitempty,uuid"`
	Lines            []OrderLineRequest `json:"lines" binding:"required,min=1,dive"`
	CartDiscount     float64            `json:"cart_discount" binding:"gte=0"`
	CartDiscountType string             `json:"cart_discount_type" binding:"omitempty,oneof=amount percentage"`
	TaxRate          float64            `json:"tax_rate" binding:"gte=0"`
	Payments         []PaymentRequest   `json:"payments" binding:"required,min=1,dive"`
}

// SettleOrderRequest represents the settle order request
type SettleOrderRequest struct {
	Payments []PaymentRequest `json:"payments" binding:"required,min=1,dive"`
}
