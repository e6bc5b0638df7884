package money

import (
	"math"

	"github.com/restoflow/restoflow-api/internal/domain/enum"
)

// All amounts are integer cents. Decimal values cross this boundary only
// through FromDecimal/ToDecimal so rounding happens exactly once per figure.

// Discount is a client-supplied discount. For DiscountTypeAmount the value
// is in currency units; for DiscountTypePercentage it is a percent of the
// base amount.
type Discount struct {
	Type  enum.DiscountType
	Value float64
}

// Line is one cart line as seen by the calculator
type Line struct {
	Quantity  int
	UnitPrice int64 // cents
	Discount  Discount
}

// Breakdown is the full money computation for a cart
type Breakdown struct {
	Subtotal     int64 // sum of line totals, item discounts already applied
	ItemDiscount int64 // total discount taken at line level
	CartDiscount int64 // cart-level discount, capped at Subtotal
	Taxable      int64 // Subtotal - CartDiscount
	Tax          int64
	GrandTotal   int64 // Taxable + Tax, never negative
}

// FromDecimal converts a currency-unit value to cents, rounding half away
// from zero.
func FromDecimal(v float64) int64 {
	return int64(math.Round(v * 100))
}

// ToDecimal converts cents to currency units for display
func ToDecimal(c int64) float64 {
	return float64(c) / 100
}

// DiscountAmount resolves a discount against a base amount in cents.
// The result is capped at base and floored at zero: a discount can never
// exceed what it discounts, and a negative request discounts nothing.
func DiscountAmount(base int64, d Discount) int64 {
	if d.Value <= 0 || base <= 0 {
		return 0
	}
	var amount int64
	switch d.Type {
	case enum.DiscountTypePercentage:
		amount = int64(math.Round(float64(base) * d.Value / 100))
	default:
		amount = FromDecimal(d.Value)
	}
	if amount > base {
		return base
	}
	return amount
}

// LineTotal computes quantity*price less the item discount, floored at zero
func LineTotal(quantity int, unitPrice int64, d Discount) int64 {
	gross := int64(quantity) * unitPrice
	if gross <= 0 {
		return 0
	}
	return gross - DiscountAmount(gross, d)
}

// Subtotal sums line totals
func Subtotal(lineTotals []int64) int64 {
	var sum int64
	for _, lt := range lineTotals {
		sum += lt
	}
	return sum
}

// CartDiscount resolves the cart-level discount against the subtotal.
// Capped at the subtotal, not an error.
func CartDiscount(subtotal int64, d Discount) int64 {
	return DiscountAmount(subtotal, d)
}

// Tax computes the tax amount for a post-discount base at the given
// percentage rate
func Tax(base int64, ratePercent float64) int64 {
	if base <= 0 || ratePercent <= 0 {
		return 0
	}
	return int64(math.Round(float64(base) * ratePercent / 100))
}

// Calculate runs the whole pipeline for a cart: line totals, subtotal,
// cart discount, tax, grand total. The grand total is never negative.
func Calculate(lines []Line, cartDiscount Discount, taxRatePercent float64) Breakdown {
	var b Breakdown
	for _, l := range lines {
		gross := int64(l.Quantity) * l.UnitPrice
		lt := LineTotal(l.Quantity, l.UnitPrice, l.Discount)
		b.Subtotal += lt
		if gross > lt {
			b.ItemDiscount += gross - lt
		}
	}
	b.CartDiscount = CartDiscount(b.Subtotal, cartDiscount)
	b.Taxable = b.Subtotal - b.CartDiscount
	if b.Taxable < 0 {
		b.Taxable = 0
	}
	b.Tax = Tax(b.Taxable, taxRatePercent)
	b.GrandTotal = b.Taxable + b.Tax
	if b.GrandTotal < 0 {
		b.GrandTotal = 0
	}
	return b
}
