package format

import (
	"github.com/leekchan/accounting"
	"github.com/shopspring/decimal"
)

var lira = accounting.Accounting{
	Symbol:    "₺",
	Precision: 2,
	Thousand:  ".",
	Decimal:   ",",
	Format:    "%v %s",
}

// Lira renders a decimal amount the way the storefront displays prices,
// e.g. 12999.90 -> "12.999,90 ₺".
func Lira(amount decimal.Decimal) string {
	return lira.FormatMoneyDecimal(amount)
}
