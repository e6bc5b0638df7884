package enum

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// DiscountType says how a discount value is interpreted.
// The type is always supplied explicitly by the client; it is never
// inferred from whether the numeric value happens to be nonzero.
type DiscountType int

const (
	DiscountTypeAmount     DiscountType = 0
	DiscountTypePercentage DiscountType = 1
)

func (t DiscountType) String() string {
	names := [...]string{"amount", "percentage"}
	if int(t) < 0 || int(t) >= len(names) {
		return "amount"
	}
	return names[t]
}

// Valid reports whether the value is a declared discount type
func (t DiscountType) Valid() bool {
	return t == DiscountTypeAmount || t == DiscountTypePercentage
}

// ParseDiscountType converts a wire-format type name into the enum
func ParseDiscountType(s string) (DiscountType, error) {
	switch s {
	case "amount":
		return DiscountTypeAmount, nil
	case "percentage":
		return DiscountTypePercentage, nil
	}
	return 0, fmt.Errorf("unknown discount type %q", s)
}

func (t DiscountType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *DiscountType) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*t = DiscountType(i)
		return nil
	}
	parsed, err := ParseDiscountType(str)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

func (t DiscountType) Value() (driver.Value, error) {
	return int64(t), nil
}

func (t *DiscountType) Scan(value interface{}) error {
	if value == nil {
		*t = DiscountTypeAmount
		return nil
	}
	switch v := value.(type) {
	case int64:
		*t = DiscountType(v)
	case int:
		*t = DiscountType(v)
	}
	return nil
}
