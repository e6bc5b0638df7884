package entity

// TicketCounter is a per-prefix, per-day monotonic counter row. Ticket
// numbers are taken by incrementing Value under a row lock, which
// serializes concurrent creations instead of racing a count query.
type TicketCounter struct {
	Prefix string `gorm:"size:20;primaryKey" json:"prefix"`
	Day    string `gorm:"size:8;primaryKey" json:"day"` // YYYYMMDD
	Value  int    `gorm:"not null;default:0" json:"value"`
}

// TableName returns the table name for the TicketCounter model
func (TicketCounter) TableName() string {
	return "ticket_counters"
}
