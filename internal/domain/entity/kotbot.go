package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/restoflow/restoflow-api/internal/domain/enum"
	"gorm.io/gorm"
)

// KotBot is a kitchen or bar preparation ticket cut from a subset of an
// order's lines. Its lifecycle is independent of the order: one order may
// spawn many tickets.
type KotBot struct {
	ID          uuid.UUID         `gorm:"type:uuid;primary_key" json:"id"`
	TicketNo    string            `gorm:"size:100;unique;not null" json:"ticket_no"`
	Type        enum.TicketType   `gorm:"default:0" json:"type"`
	OrderID     *uuid.UUID        `gorm:"type:uuid;index" json:"order_id,omitempty"`
	Status      enum.TicketStatus `gorm:"default:0" json:"status"`
	CreatedByID uuid.UUID         `gorm:"type:uuid;column:created_by;not null" json:"created_by"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
	DeletedAt   gorm.DeletedAt    `gorm:"index" json:"-"`

	// Relationships
	Order *Order       `gorm:"foreignKey:OrderID" json:"-"`
	Items []KotBotItem `gorm:"foreignKey:KotBotID" json:"items,omitempty"`
}

// BeforeCreate generates a UUID before creating a new ticket
func (k *KotBot) BeforeCreate(tx *gorm.DB) error {
	if k.ID == uuid.Nil {
		k.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the KotBot model
func (KotBot) TableName() string {
	return "kot_bots"
}

// KotBotItem is one item on a preparation ticket
type KotBotItem struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	KotBotID     uuid.UUID `gorm:"type:uuid;not null;index" json:"kot_bot_id"`
	ProductID    uuid.UUID `gorm:"type:uuid;not null;index" json:"product_id"`
	Name         string    `gorm:"size:255;not null" json:"name"`
	Quantity     int       `gorm:"not null" json:"quantity"`
	Instructions string    `gorm:"type:text" json:"instructions,omitempty"`
	Prepared     bool      `gorm:"default:false" json:"prepared"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Relationships
	KotBot KotBot `gorm:"foreignKey:KotBotID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new ticket item
func (i *KotBotItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the KotBotItem model
func (KotBotItem) TableName() string {
	return "kot_bot_items"
}
