package dashboard

import "github.com/shopspring/decimal"

// FormatCurrency renders an amount as dollars with exactly two decimals,
// e.g. "$1234.50". Rounding is half away from zero.
func FormatCurrency(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}
