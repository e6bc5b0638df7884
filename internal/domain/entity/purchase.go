package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/restoflow/restoflow-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Supplier is a vendor the business buys stock from. Dues mirrors the
// customer ledger on the purchasing side: the running balance still owed
// to the supplier, reduced by purchase returns.
type Supplier struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name      string         `gorm:"size:255;not null" json:"name"`
	Email     *string        `gorm:"size:255" json:"email,omitempty"`
	Phone     *string        `gorm:"size:50" json:"phone,omitempty"`
	Address   *string        `gorm:"type:text" json:"address,omitempty"`
	Dues      int64          `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Purchases []Purchase `gorm:"foreignKey:SupplierID" json:"-"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (s Supplier) MarshalJSON() ([]byte, error) {
	type Alias Supplier
	return json.Marshal(&struct {
		Alias
		Dues float64 `json:"dues"`
	}{
		Alias: Alias(s),
		Dues:  float64(s.Dues) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new supplier
func (s *Supplier) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Supplier model
func (Supplier) TableName() string {
	return "suppliers"
}

// Purchase represents a stock purchase from a supplier. Approval applies
// the quantities to stock; returns take them back out again.
type Purchase struct {
	ID              uuid.UUID           `gorm:"type:uuid;primary_key" json:"id"`
	PurchaseNo      string              `gorm:"size:100;unique;not null" json:"purchase_no"`
	SupplierID      *uuid.UUID          `gorm:"type:uuid;index" json:"supplier_id,omitempty"`
	Status          enum.PurchaseStatus `gorm:"default:0" json:"status"`
	TotalAmount     int64               `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	ReturnedAmount  int64               `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	ReturnInvoiceNo *string             `gorm:"size:100" json:"return_invoice_no,omitempty"`
	CreatedByID     uuid.UUID           `gorm:"type:uuid;column:created_by;not null" json:"created_by"`
	CreatedAt       time.Time           `json:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at"`
	DeletedAt       gorm.DeletedAt      `gorm:"index" json:"-"`

	// Relationships
	Supplier *Supplier        `gorm:"foreignKey:SupplierID" json:"supplier,omitempty"`
	Details  []PurchaseDetail `gorm:"foreignKey:PurchaseID" json:"details,omitempty"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (p Purchase) MarshalJSON() ([]byte, error) {
	type Alias Purchase
	return json.Marshal(&struct {
		Alias
		TotalAmount    float64 `json:"total_amount"`
		ReturnedAmount float64 `json:"returned_amount"`
	}{
		Alias:          Alias(p),
		TotalAmount:    float64(p.TotalAmount) / 100,
		ReturnedAmount: float64(p.ReturnedAmount) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new purchase
func (p *Purchase) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Purchase model
func (Purchase) TableName() string {
	return "purchases"
}

// PurchaseDetail is a line item in a purchase. ReturnedQty accumulates
// across returns and can never exceed Quantity.
type PurchaseDetail struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	PurchaseID  uuid.UUID      `gorm:"type:uuid;not null;index" json:"purchase_id"`
	ProductID   uuid.UUID      `gorm:"type:uuid;not null;index" json:"product_id"`
	Quantity    int            `gorm:"not null" json:"quantity"`
	ReturnedQty int            `gorm:"default:0" json:"returned_qty"`
	UnitCost    int64          `gorm:"not null" json:"-"` // Stored in cents, excluded from JSON
	Total       int64          `gorm:"not null" json:"-"` // Stored in cents, excluded from JSON
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Purchase Purchase `gorm:"foreignKey:PurchaseID" json:"-"`
	Product  Product  `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (pd PurchaseDetail) MarshalJSON() ([]byte, error) {
	type Alias PurchaseDetail
	return json.Marshal(&struct {
		Alias
		UnitCost float64 `json:"unit_cost"`
		Total    float64 `json:"total"`
	}{
		Alias:    Alias(pd),
		UnitCost: float64(pd.UnitCost) / 100,
		Total:    float64(pd.Total) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new purchase detail
func (pd *PurchaseDetail) BeforeCreate(tx *gorm.DB) error {
	if pd.ID == uuid.Nil {
		pd.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the PurchaseDetail model
func (PurchaseDetail) TableName() string {
	return "purchase_details"
}
