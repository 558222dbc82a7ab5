package pos

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestComputeTotalsWorkedExample(t *testing.T) {
	// Cart: 2 x 100.00, 10% discount, 7.5% tax
	lines := []CartLine{{ProductID: 1, Quantity: 2, UnitPrice: dec("100.00")}}

	totals := ComputeTotals(lines, Discount{Type: DiscountPercentage, Value: dec("10")}, dec("0.075"))

	assert.True(t, totals.Subtotal.Equal(dec("200.00")), "subtotal = %s", totals.Subtotal)
	assert.True(t, totals.DiscountAmount.Equal(dec("20.00")), "discount = %s", totals.DiscountAmount)
	assert.True(t, totals.TaxAmount.Equal(dec("13.50")), "tax = %s", totals.TaxAmount)
	assert.True(t, totals.Total.Equal(dec("193.50")), "total = %s", totals.Total)

	change := ChangeDue(dec("200.00"), totals.Total)
	assert.True(t, change.Equal(dec("6.50")), "change = %s", change)
}

func TestSubtotalSumsAllLines(t *testing.T) {
	lines := []CartLine{
		{Quantity: 3, UnitPrice: dec("2.50")},
		{Quantity: 1, UnitPrice: dec("10.00")},
	}
	assert.True(t, Subtotal(lines).Equal(dec("17.50")))
	assert.True(t, Subtotal(nil).Equal(decimal.Zero))
}

func TestDiscountAmountPercentageClamped(t *testing.T) {
	subtotal := dec("100.00")

	assert.True(t, DiscountAmount(subtotal, Discount{Type: DiscountPercentage, Value: dec("150")}).Equal(dec("100.00")),
		"values above 100 clamp to 100%%")
	assert.True(t, DiscountAmount(subtotal, Discount{Type: DiscountPercentage, Value: dec("-10")}).Equal(decimal.Zero),
		"negative values clamp to 0")
	assert.True(t, DiscountAmount(subtotal, Discount{Type: DiscountPercentage, Value: dec("25")}).Equal(dec("25.00")))
}

func TestDiscountAmountFlatClampedToSubtotal(t *testing.T) {
	subtotal := dec("50.00")

	assert.True(t, DiscountAmount(subtotal, Discount{Type: DiscountFlat, Value: dec("80.00")}).Equal(dec("50.00")))
	assert.True(t, DiscountAmount(subtotal, Discount{Type: DiscountFlat, Value: dec("-5")}).Equal(decimal.Zero))
	assert.True(t, DiscountAmount(subtotal, Discount{Type: DiscountFlat, Value: dec("12.34")}).Equal(dec("12.34")))
}

func TestDiscountAmountNoneIsZero(t *testing.T) {
	assert.True(t, DiscountAmount(dec("99.99"), Discount{Type: DiscountNone}).Equal(decimal.Zero))
	assert.True(t, DiscountAmount(dec("99.99"), Discount{}).Equal(decimal.Zero))
}

func TestTotalNeverNegativeWithClampedDiscounts(t *testing.T) {
	lines := []CartLine{{Quantity: 1, UnitPrice: dec("10.00")}}

	totals := ComputeTotals(lines, Discount{Type: DiscountFlat, Value: dec("999.00")}, dec("0.075"))
	require.True(t, totals.Total.GreaterThanOrEqual(decimal.Zero))
	assert.True(t, totals.Total.Equal(decimal.Zero))
}

func TestChangeDueNeverNegative(t *testing.T) {
	assert.True(t, ChangeDue(dec("10.00"), dec("15.00")).Equal(decimal.Zero))
	assert.True(t, ChangeDue(dec("20.00"), dec("15.00")).Equal(dec("5.00")))
}

func TestIsSupportedPaymentMethod(t *testing.T) {
	for _, m := range []string{PaymentCash, PaymentCard, PaymentOrangeMoney, PaymentMTNMoney, PaymentBank} {
		assert.True(t, IsSupportedPaymentMethod(m), m)
	}
	assert.False(t, IsSupportedPaymentMethod("cheque"))
	assert.False(t, IsSupportedPaymentMethod(""))
}
