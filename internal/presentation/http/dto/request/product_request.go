package request

// CreateProductRequest represents the create product request
type CreateProductRequest struct {
	CategoryID    *string `json:"category_id" binding:"omitempty,uuid"`
	Name          string  `json:"name" binding:"required,min=1,max=255"`
	Code          string  `json:"code" binding:"required,min=1,max=100"`
	Price         float64 `json:"price" binding:"gte=0"`
	Quantity      int     `json:"quantity" binding:"gte=0"`
	QuantityAlert int     `json:"quantity_alert" binding:"gte=0"`
}

// UpdateProductRequest represents the update product request. Quantity is
// deliberately absent: stock moves only through sales, purchases and
// returns.
type UpdateProductRequest struct {
	CategoryID    *string  `json:"category_id" binding:"omitempty,uuid"`
	Name          *string  `json:"name" binding:"omitempty,min=1,max=255"`
	Code          *string  `json:"code" binding:"omitempty,min=1,max=100"`
	Price         *float64 `json:"price" binding:"omitempty,gte=0"`
	QuantityAlert *int     `json:"quantity_alert" binding:"omitempty,gte=0"`
}

// CreateCategoryRequest represents the create category request
type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required,min=1,max=255"`
}

// UpdateCategoryRequest represents the update category request
type UpdateCategoryRequest struct {
	Name string `json:"name" binding:"required,min=1,max=255"`
}
