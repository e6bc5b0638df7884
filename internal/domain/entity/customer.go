package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/restoflow/restoflow-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Customer represents a guest with an optional running credit balance.
// Dues is denormalized for fast reads; it must always equal the sum of
// the customer's active CustomerDue entries.
type Customer struct {
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
	Orders     []Order       `gorm:"foreignKey:CustomerID" json:"-"`
	Sales      []Sale        `gorm:"foreignKey:CustomerID" json:"-"`
	DueEntries []CustomerDue `gorm:"foreignKey:CustomerID" json:"-"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (c Customer) MarshalJSON() ([]byte, error) {
	type Alias Customer
	return json.Marshal(&struct {
		Alias
		Dues float64 `json:"dues"`
	}{
		Alias: Alias(c),
		Dues:  float64(c.Dues) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new customer
func (c *Customer) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Customer model
func (Customer) TableName() string {
	return "customers"
}

// CustomerDue is one credit-ledger entry tying a sale's credit portion to
// a customer. Reversal flips the status instead of deleting the row, so
// the ledger keeps its history.
type CustomerDue struct {
	ID         uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	CustomerID uuid.UUID      `gorm:"type:uuid;not null;index" json:"customer_id"`
	SaleID     uuid.UUID      `gorm:"type:uuid;not null;index" json:"sale_id"`
	Amount     int64          `gorm:"not null" json:"-"` // Stored in cents, excluded from JSON
	Status     enum.DueStatus `gorm:"default:0" json:"status"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`

	// Relationships
	Customer Customer `gorm:"foreignKey:CustomerID" json:"-"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (d CustomerDue) MarshalJSON() ([]byte, error) {
	type Alias CustomerDue
	return json.Marshal(&struct {
		Alias
		Amount float64 `json:"amount"`
	}{
		Alias:  Alias(d),
		Amount: float64(d.Amount) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new due entry
func (d *CustomerDue) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the CustomerDue model
func (CustomerDue) TableName() string {
	return "customer_dues"
}
