package enum

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// TicketType distinguishes kitchen tickets from bar tickets
type TicketType int

const (
	TicketTypeKOT TicketType = 0
	TicketTypeBOT TicketType = 1
)

func (t TicketType) String() string {
	if t == TicketTypeBOT {
		return "BOT"
	}
	return "KOT"
}

// Valid reports whether the value is a declared ticket type
func (t TicketType) Valid() bool {
	return t == TicketTypeKOT || t == TicketTypeBOT
}

// Prefix returns the ticket-number prefix for this type
func (t TicketType) Prefix() string {
	return t.String()
}

// ParseTicketType converts a wire-format type name into the enum
func ParseTicketType(s string) (TicketType, error) {
	switch s {
	case "KOT":
		return TicketTypeKOT, nil
	case "BOT":
		return TicketTypeBOT, nil
	}
	return 0, fmt.Errorf("unknown ticket type %q", s)
}

func (t TicketType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *TicketType) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*t = TicketType(i)
		return nil
	}
	parsed, err := ParseTicketType(str)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

func (t TicketType) Value() (driver.Value, error) {
	return int64(t), nil
}

func (t *TicketType) Scan(value interface{}) error {
	if value == nil {
		*t = TicketTypeKOT
		return nil
	}
	switch v := value.(type) {
	case int64:
		*t = TicketType(v)
	case int:
		*t = TicketType(v)
	}
	return nil
}

// TicketStatus tracks a preparation ticket through the kitchen/bar
type TicketStatus int

const (
	TicketStatusSent      TicketStatus = 0
	TicketStatusPreparing TicketStatus = 1
	TicketStatusReady     TicketStatus = 2
	TicketStatusCancelled TicketStatus = 3
)

func (s TicketStatus) String() string {
	names := [...]string{"sent", "preparing", "ready", "cancelled"}
	if int(s) < 0 || int(s) >= len(names) {
		return "sent"
	}
	return names[s]
}

// CanTransitionTo reports whether the status change is allowed.
// sent -> preparing -> ready; cancel is allowed until the ticket is ready.
func (s TicketStatus) CanTransitionTo(next TicketStatus) bool {
	switch s {
	case TicketStatusSent:
		return next == TicketStatusPreparing || next == TicketStatusReady || next == TicketStatusCancelled
	case TicketStatusPreparing:
		return next == TicketStatusReady || next == TicketStatusCancelled
	default:
		return false
	}
}

func (s TicketStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *TicketStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = TicketStatus(i)
		return nil
	}
	switch str {
	case "sent":
		*s = TicketStatusSent
	case "preparing":
		*s = TicketStatusPreparing
	case "ready":
		*s = TicketStatusReady
	case "cancelled":
		*s = TicketStatusCancelled
	}
	return nil
}

func (s TicketStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *TicketStatus) Scan(value interface{}) error {
	if value == nil {
		*s = TicketStatusSent
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = TicketStatus(v)
	case int:
		*s = TicketStatus(v)
	}
	return nil
}
