package money

import (
	"testing"

	"github.com/restoflow/restoflow-api/internal/domain/enum"
	"github.com/stretchr/testify/assert"
)

func TestLineTotal(t *testing.T) {
	tests := []struct {
		name     string
		quantity int
		price    int64
		discount Discount
		want     int64
	}{
		{"no discount", 3, 500, Discount{}, 1500},
		{"amount discount", 2, 1000, Discount{Type: enum.DiscountTypeAmount, Value: 5}, 1500},
		{"percentage discount", 4, 250, Discount{Type: enum.DiscountTypePercentage, Value: 10}, 900},
		{"discount exceeds line", 1, 300, Discount{Type: enum.DiscountTypeAmount, Value: 99}, 0},
		{"negative discount ignored", 2, 400, Discount{Type: enum.DiscountTypeAmount, Value: -5}, 800},
		{"zero quantity", 0, 500, Discount{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LineTotal(tt.quantity, tt.price, tt.discount))
		})
	}
}

func TestCartDiscountCappedAtSubtotal(t *testing.T) {
	assert.Equal(t, int64(5000), CartDiscount(5000, Discount{Type: enum.DiscountTypeAmount, Value: 80}))
	assert.Equal(t, int64(500), CartDiscount(5000, Discount{Type: enum.DiscountTypePercentage, Value: 10}))
	assert.Equal(t, int64(0), CartDiscount(0, Discount{Type: enum.DiscountTypeAmount, Value: 10}))
}

func TestCalculateExampleScenario(t *testing.T) {
	// 10% cart discount on subtotal 100.00 with 5% tax
	lines := []Line{
		{Quantity: 2, UnitPrice: 2500},
		{Quantity: 1, UnitPrice: 5000},
	}

	b := Calculate(lines, Discount{Type: enum.DiscountTypePercentage, Value: 10}, 5)

	assert.Equal(t, int64(10000), b.Subtotal)
	assert.Equal(t, int64(1000), b.CartDiscount)
	assert.Equal(t, int64(9000), b.Taxable)
	assert.Equal(t, int64(450), b.Tax)
	assert.Equal(t, int64(9450), b.GrandTotal)
}

func TestCalculateNeverNegative(t *testing.T) {
	lines := []Line{
		{Quantity: 1, UnitPrice: 100, Discount: Discount{Type: enum.DiscountTypeAmount, Value: 500}},
	}

	b := Calculate(lines, Discount{Type: enum.DiscountTypeAmount, Value: 1000}, 16)

	assert.GreaterOrEqual(t, b.GrandTotal, int64(0))
	assert.Equal(t, int64(0), b.Subtotal)
	assert.Equal(t, int64(0), b.Tax)
}

func TestCalculateReconciles(t *testing.T) {
	lines := []Line{
		{Quantity: 3, UnitPrice: 1250, Discount: Discount{Type: enum.DiscountTypePercentage, Value: 5}},
		{Quantity: 1, UnitPrice: 9999},
		{Quantity: 2, UnitPrice: 450, Discount: Discount{Type: enum.DiscountTypeAmount, Value: 1}},
	}

	b := Calculate(lines, Discount{Type: enum.DiscountTypeAmount, Value: 20}, 16)

	var sum int64
	for _, l := range lines {
		sum += LineTotal(l.Quantity, l.UnitPrice, l.Discount)
	}
	assert.Equal(t, sum, b.Subtotal)
	assert.Equal(t, b.Subtotal-b.CartDiscount+b.Tax, b.GrandTotal)
	assert.LessOrEqual(t, b.CartDiscount, b.Subtotal)
}

func TestFromDecimalRounding(t *testing.T) {
	assert.Equal(t, int64(1050), FromDecimal(10.50))
	assert.Equal(t, int64(1), FromDecimal(0.005))
	assert.Equal(t, int64(3450), FromDecimal(34.50))
}
