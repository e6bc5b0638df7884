package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/restoflow/restoflow-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Order is a held cart: created on POS "hold", editable and deletable
// while held, immutable once settled or cancelled (except the kot_sent
// flag). Settlement binds it to a Sale.
type Order struct {
	ID               uuid.UUID         `gorm:"type:uuid;primary_key" json:"id"`
	OrderNo          string            `gorm:"size:100;unique;not null" json:"order_no"`
	CustomerID       *uuid.UUID        `gorm:"type:uuid;index" json:"customer_id,omitempty"`
	SaleID           *uuid.UUID        `gorm:"type:uuid;index" json:"sale_id,omitempty"`
	TableNo          *string           `gorm:"size:50" json:"table_no,omitempty"`
	Status           enum.OrderStatus  `gorm:"default:0" json:"status"`
	CartDiscount     float64           `gorm:"type:decimal(10,2);default:0" json:"cart_discount"`
	CartDiscountType enum.DiscountType `gorm:"default:0" json:"cart_discount_type"`
	TaxRate          float64           `gorm:"type:decimal(5,2);default:0" json:"tax_rate"`
	SubTotal         int64             `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	TaxAmount        int64             `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	Total            int64             `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	KotSent          bool              `gorm:"default:false" json:"kot_sent"`
	CreatedByID      uuid.UUID         `gorm:"type:uuid;column:created_by;not null" json:"created_by"`
	CreatedAt        time.Time         `json:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at"`
	DeletedAt        gorm.DeletedAt    `gorm:"index" json:"-"`

	// Relationships
	Customer *Customer   `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Lines    []OrderLine `gorm:"foreignKey:OrderID" json:"lines,omitempty"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (o Order) MarshalJSON() ([]byte, error) {
	type Alias Order
	return json.Marshal(&struct {
		Alias
		SubTotal  float64 `json:"sub_total"`
		TaxAmount float64 `json:"tax_amount"`
		Total     float64 `json:"total"`
	}{
		Alias:     Alias(o),
		SubTotal:  float64(o.SubTotal) / 100,
		TaxAmount: float64(o.TaxAmount) / 100,
		Total:     float64(o.Total) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new order
func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Order model
func (Order) TableName() string {
	return "orders"
}

// OrderLine is a line item owned by its order. Lines are replaced
// wholesale on edit, never patched individually.
type OrderLine struct {
	ID           uuid.UUID         `gorm:"type:uuid;primary_key" json:"id"`
	OrderID      uuid.UUID         `gorm:"type:uuid;not null;index" json:"order_id"`
	ProductID    uuid.UUID         `gorm:"type:uuid;not null;index" json:"product_id"`
	Name         string            `gorm:"size:255;not null" json:"name"` // snapshot at entry time
	Quantity     int               `gorm:"not null" json:"quantity"`
	UnitPrice    int64             `gorm:"not null" json:"-"` // Stored in cents, excluded from JSON
	Discount     float64           `gorm:"type:decimal(10,2);default:0" json:"discount"`
	DiscountType enum.DiscountType `gorm:"default:0" json:"discount_type"`
	LineTotal    int64             `gorm:"not null" json:"-"` // Stored in cents, excluded from JSON
	Instructions string            `gorm:"type:text" json:"instructions,omitempty"`
	KotSelected  bool              `gorm:"default:false" json:"kot_selected"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`

	// Relationships
	Order   Order   `gorm:"foreignKey:OrderID" json:"-"`
	Product Product `gorm:"foreignKey:ProductID" json:"-"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (l OrderLine) MarshalJSON() ([]byte, error) {
	type Alias OrderLine
	return json.Marshal(&struct {
		Alias
		UnitPrice float64 `json:"unit_price"`
		LineTotal float64 `json:"line_total"`
	}{
		Alias:     Alias(l),
		UnitPrice: float64(l.UnitPrice) / 100,
		LineTotal: float64(l.LineTotal) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new order line
func (l *OrderLine) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the OrderLine model
func (OrderLine) TableName() string {
	return "order_lines"
}
