package request

// PurchaseItemRequest is one purchase line
type PurchaseItemRequest struct {
	ProductID string  `json:"product_id" binding:"required,uuid"`
	Quantity  int     `json:"quantity" binding:"required,gt=0"`
	UnitCost  float64 `json:"unit_cost" binding:"gte=0"`
}

// CreatePurchaseRequest represents the create purchase request
type CreatePurchaseRequest struct {
	SupplierID *string               `json:"supplier_id" binding:"omitempty,uuid"`
	PurchaseNo string                `json:"purchase_no" binding:"required,min=1,max=100"`
	OnCredit   bool                  `json:"on_credit"`
	Items      []PurchaseItemRequest `json:"items" binding:"required,min=1,dive"`
}

// ReturnItemRequest is one purchase return line
type ReturnItemRequest struct {
	DetailID string `json:"detail_id" binding:"required,uuid"`
	Quantity int    `json:"quantity" binding:"required,gt=0"`
}

// CreatePurchaseReturnRequest represents the purchase return request
type CreatePurchaseReturnRequest struct {
	Items []ReturnItemRequest `json:"items" binding:"required,min=1,dive"`
}
