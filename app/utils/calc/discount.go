package calc

import "github.com/shopspring/decimal"

// DiscountPercent returns the rounded percentage saved when a product is sold
// at discounted instead of price. Returns 0 when there is no real discount.
func DiscountPercent(price, discounted decimal.Decimal) int {
	if price.IsZero() || !discounted.LessThan(price) {
		return 0
	}
	saving := price.Sub(discounted).Div(price).Mul(decimal.NewFromInt(100))
	return int(saving.Round(0).IntPart())
}
