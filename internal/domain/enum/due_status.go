package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// DueStatus marks whether a customer-due ledger entry still counts
// towards the customer's outstanding balance
type DueStatus int

const (
	DueStatusActive   DueStatus = 0
	DueStatusReversed DueStatus = 1
)

func (s DueStatus) String() string {
	if s == DueStatusReversed {
		return "reversed"
	}
	return "active"
}

func (s DueStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *DueStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = DueStatus(i)
		return nil
	}
	if str == "reversed" {
		*s = DueStatusReversed
	} else {
		*s = DueStatusActive
	}
	return nil
}

func (s DueStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *DueStatus) Scan(value interface{}) error {
	if value == nil {
		*s = DueStatusActive
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = DueStatus(v)
	case int:
		*s = DueStatus(v)
	}
	return nil
}
