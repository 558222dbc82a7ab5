package pos

import "github.com/shopspring/decimal"

// Discount types accepted on a cart.
const (
	DiscountNone       = "none"
	DiscountFlat       = "flat"
	DiscountPercentage = "percentage"
)

// Payment methods accepted at checkout.
const (
	PaymentCash        = "cash"
	PaymentCard        = "card"
	PaymentOrangeMoney = "orange_money"
	PaymentMTNMoney    = "mtn_money"
	PaymentBank        = "bank"
)

var paymentMethods = map[string]bool{
	PaymentCash:        true,
	PaymentCard:        true,
	PaymentOrangeMoney: true,
	PaymentMTNMoney:    true,
	PaymentBank:        true,
}

// IsSupportedPaymentMethod reports whether method is one of the accepted
// payment methods.
func IsSupportedPaymentMethod(method string) bool {
	return paymentMethods[method]
}

var oneHundred = decimal.NewFromInt(100)

// CartLine is a transient product selection: quantity plus the unit price
// snapshotted from the catalog. Pure input to the calculator, never persisted.
type CartLine struct {
	ProductID uint
	Quantity  int
	UnitPrice decimal.Decimal
}

// Discount is the cart-level discount as entered by the cashier.
type Discount struct {
	Type  string          `json:"type"`
	Value decimal.Decimal `json:"value"`
}

// Totals holds the server-computed money amounts for one cart.
type Totals struct {
	Subtotal       decimal.Decimal
	DiscountAmount decimal.Decimal
	TaxAmount      decimal.Decimal
	Total          decimal.Decimal
}

// Subtotal sums quantity * unit price over all lines.
func Subtotal(lines []CartLine) decimal.Decimal {
	sum := decimal.Zero
	for _, line := range lines {
		sum = sum.Add(line.UnitPrice.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	return sum
}

// DiscountAmount converts a discount entry into a money amount.
// Percentage values are clamped to [0, 100]; flat discounts are clamped to
// the subtotal so the pre-tax amount never goes negative.
func DiscountAmount(subtotal decimal.Decimal, d Discount) decimal.Decimal {
	switch d.Type {
	case DiscountPercentage:
		value := d.Value
		if value.LessThan(decimal.Zero) {
			value = decimal.Zero
		}
		if value.GreaterThan(oneHundred) {
			value = oneHundred
		}
		return subtotal.Mul(value).Div(oneHundred).Round(2)
	case DiscountFlat:
		value := d.Value
		if value.LessThan(decimal.Zero) {
			value = decimal.Zero
		}
		if value.GreaterThan(subtotal) {
			value = subtotal
		}
		return value.Round(2)
	default:
		return decimal.Zero
	}
}

// TaxAmount applies the configured tax rate to the discounted subtotal.
func TaxAmount(subtotal, discountAmount, rate decimal.Decimal) decimal.Decimal {
	return subtotal.Sub(discountAmount).Mul(rate).Round(2)
}

// ComputeTotals runs the full cart arithmetic: subtotal, discount, tax, total.
func ComputeTotals(lines []CartLine, d Discount, taxRate decimal.Decimal) Totals {
	subtotal := Subtotal(lines)
	discountAmount := DiscountAmount(subtotal, d)
	taxAmount := TaxAmount(subtotal, discountAmount, taxRate)
	return Totals{
		Subtotal:       subtotal,
		DiscountAmount: discountAmount,
		TaxAmount:      taxAmount,
		Total:          subtotal.Sub(discountAmount).Add(taxAmount),
	}
}

// ChangeDue is what the cashier hands back on a cash payment, never negative.
func ChangeDue(amountPaid, total decimal.Decimal) decimal.Decimal {
	change := amountPaid.Sub(total)
	if change.LessThan(decimal.Zero) {
		return decimal.Zero
	}
	return change
}
