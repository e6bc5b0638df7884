package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/restoflow/restoflow-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Sale is a completed checkout. The header is immutable except through
// the update path, which reverses and replays its stock/dues effects.
// A Sale exclusively owns its lines, payments and receipt: they live and
// die in the same transaction.
type Sale struct {
	ID           uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	InvoiceNo    string         `gorm:"size:100;unique;not null" json:"invoice_no"`
	CustomerID   *uuid.UUID     `gorm:"type:uuid;index" json:"customer_id,omitempty"`
	SubTotal     int64          `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	ItemDiscount int64          `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	CartDiscount int64          `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	TaxAmount    int64          `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	Total        int64          `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	PaidCash     int64          `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	PaidCheque   int64          `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	PaidCard     int64          `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	PaidVoucher  int64          `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	CreditTotal  int64          `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	CreatedByID  uuid.UUID      `gorm:"type:uuid;column:created_by;not null" json:"created_by"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Customer *Customer  `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Lines    []SaleLine `gorm:"foreignKey:SaleID" json:"lines,omitempty"`
	Payments []Payment  `gorm:"foreignKey:SaleID" json:"payments,omitempty"`
	Receipt  *Receipt   `gorm:"foreignKey:SaleID" json:"receipt,omitempty"`
}

// PaidTotal returns the sum of all non-credit payment buckets
func (s *Sale) PaidTotal() int64 {
	return s.PaidCash + s.PaidCheque + s.PaidCard + s.PaidVoucher
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (s Sale) MarshalJSON() ([]byte, error) {
	type Alias Sale
	return json.Marshal(&struct {
		Alias
		SubTotal     float64 `json:"sub_total"`
		ItemDiscount float64 `json:"item_discount"`
		CartDiscount float64 `json:"cart_discount"`
		TaxAmount    float64 `json:"tax_amount"`
		Total        float64 `json:"total"`
		PaidCash     float64 `json:"paid_cash"`
		PaidCheque   float64 `json:"paid_cheque"`
		PaidCard     float64 `json:"paid_card"`
		PaidVoucher  float64 `json:"paid_voucher"`
		CreditTotal  float64 `json:"credit_total"`
	}{
		Alias:        Alias(s),
		SubTotal:     float64(s.SubTotal) / 100,
		ItemDiscount: float64(s.ItemDiscount) / 100,
		CartDiscount: float64(s.CartDiscount) / 100,
		TaxAmount:    float64(s.TaxAmount) / 100,
		Total:        float64(s.Total) / 100,
		PaidCash:     float64(s.PaidCash) / 100,
		PaidCheque:   float64(s.PaidCheque) / 100,
		PaidCard:     float64(s.PaidCard) / 100,
		PaidVoucher:  float64(s.PaidVoucher) / 100,
		CreditTotal:  float64(s.CreditTotal) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new sale
func (s *Sale) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Sale model
func (Sale) TableName() string {
	return "sales"
}

// SaleLine snapshots product, price and discount at the moment of sale
type SaleLine struct {
	ID           uuid.UUID         `gorm:"type:uuid;primary_key" json:"id"`
	SaleID       uuid.UUID         `gorm:"type:uuid;not null;index" json:"sale_id"`
	ProductID    uuid.UUID         `gorm:"type:uuid;not null;index" json:"product_id"`
	Name         string            `gorm:"size:255;not null" json:"name"`
	Quantity     int               `gorm:"not null" json:"quantity"`
	UnitPrice    int64             `gorm:"not null" json:"-"` // Stored in cents, excluded from JSON
	Discount     float64           `gorm:"type:decimal(10,2);default:0" json:"discount"`
	DiscountType enum.DiscountType `gorm:"default:0" json:"discount_type"`
	LineTotal    int64             `gorm:"not null" json:"-"` // Stored in cents, excluded from JSON
	CreatedAt    time.Time         `json:"created_at"`

	// Relationships
	Sale Sale `gorm:"foreignKey:SaleID" json:"-"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (l SaleLine) MarshalJSON() ([]byte, error) {
	type Alias SaleLine
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

// BeforeCreate generates a UUID before creating a new sale line
func (l *SaleLine) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the SaleLine model
func (SaleLine) TableName() string {
	return "sale_lines"
}

// Payment is one settled amount against a sale. The sum of all payment
// rows must reconcile exactly with the sale total.
type Payment struct {
	ID        uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	SaleID    uuid.UUID          `gorm:"type:uuid;not null;index" json:"sale_id"`
	Method    enum.PaymentMethod `gorm:"not null" json:"method"`
	Amount    int64              `gorm:"not null" json:"-"` // Stored in cents, excluded from JSON
	Reference *string            `gorm:"size:255" json:"reference,omitempty"` // cheque no, card ref, voucher no
	CreatedAt time.Time          `json:"created_at"`

	// Relationships
	Sale Sale `gorm:"foreignKey:SaleID" json:"-"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (p Payment) MarshalJSON() ([]byte, error) {
	type Alias Payment
	return json.Marshal(&struct {
		Alias
		Amount float64 `json:"amount"`
	}{
		Alias:  Alias(p),
		Amount: float64(p.Amount) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new payment
func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Payment model
func (Payment) TableName() string {
	return "payments"
}

// ReceiptItem is one denormalized receipt line
type ReceiptItem struct {
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	Total     float64 `json:"total"`
}

// Receipt is the printable snapshot of a sale, written once at settlement
// and rewritten only when the sale itself is updated in place.
type Receipt struct {
	ID           uuid.UUID     `gorm:"type:uuid;primary_key" json:"id"`
	SaleID       uuid.UUID     `gorm:"type:uuid;not null;uniqueIndex" json:"sale_id"`
	InvoiceNo    string        `gorm:"size:100;not null" json:"invoice_no"`
	CustomerName string        `gorm:"size:255" json:"customer_name,omitempty"`
	Items        []ReceiptItem `gorm:"serializer:json" json:"items"`
	SubTotal     float64       `gorm:"type:decimal(15,2)" json:"sub_total"`
	CartDiscount float64       `gorm:"type:decimal(15,2)" json:"cart_discount"`
	TaxAmount    float64       `gorm:"type:decimal(15,2)" json:"tax_amount"`
	Total        float64       `gorm:"type:decimal(15,2)" json:"total"`
	Paid         float64       `gorm:"type:decimal(15,2)" json:"paid"`
	Credit       float64       `gorm:"type:decimal(15,2)" json:"credit"`
	IssuedAt     time.Time     `json:"issued_at"`

	// Relationships
	Sale Sale `gorm:"foreignKey:SaleID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new receipt
func (r *Receipt) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Receipt model
func (Receipt) TableName() string {
	return "receipts"
}
