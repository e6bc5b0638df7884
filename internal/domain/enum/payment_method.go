package enum

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// PaymentMethod is the closed set of ways a sale can be paid.
// Adding a method means extending this enum and the exhaustive switches
// over it; there is no string-typed fallback path.
type PaymentMethod int

const (
	PaymentMethodCash        PaymentMethod = 0
	PaymentMethodCheque      PaymentMethod = 1
	PaymentMethodCard        PaymentMethod = 2
	PaymentMethodCredit      PaymentMethod = 3
	PaymentMethodGiftVoucher PaymentMethod = 4
)

var paymentMethodNames = [...]string{"cash", "cheque", "card", "credit", "gift_voucher"}

func (m PaymentMethod) String() string {
	if int(m) < 0 || int(m) >= len(paymentMethodNames) {
		return "cash"
	}
	return paymentMethodNames[m]
}

// Valid reports whether the value is one of the declared methods
func (m PaymentMethod) Valid() bool {
	return int(m) >= 0 && int(m) < len(paymentMethodNames)
}

// ParsePaymentMethod converts a wire-format method name into the enum
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	for i, name := range paymentMethodNames {
		if name == s {
			return PaymentMethod(i), nil
		}
	}
	return 0, fmt.Errorf("unknown payment method %q", s)
}

func (m PaymentMethod) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

func (m *PaymentMethod) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*m = PaymentMethod(i)
		return nil
	}
	parsed, err := ParsePaymentMethod(str)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

func (m PaymentMethod) Value() (driver.Value, error) {
	return int64(m), nil
}

func (m *PaymentMethod) Scan(value interface{}) error {
	if value == nil {
		*m = PaymentMethodCash
		return nil
	}
	switch v := value.(type) {
	case int64:
		*m = PaymentMethod(v)
	case int:
		*m = PaymentMethod(v)
	}
	return nil
}
