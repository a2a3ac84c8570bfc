package calc

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestDiscountPercent(t *testing.T) {
	cases := []struct {
		name       string
		price      string
		discounted string
		want       int
	}{
		{"fifth off", "100.00", "80.00", 20},
		{"rounds to nearest", "17499", "15999", 9},
		{"no discount", "100.00", "100.00", 0},
		{"discount above price", "100.00", "120.00", 0},
		{"zero price", "0", "0", 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			price := decimal.RequireFromString(tc.price)
			discounted := decimal.RequireFromString(tc.discounted)
			assert.Equal(t, tc.want, DiscountPercent(price, discounted))
		})
	}
}
