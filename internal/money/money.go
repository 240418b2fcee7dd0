// Package money keeps prices and totals in exact decimal form and renders them
// for display.
package money

import "github.com/shopspring/decimal"

// Symbol is printed in front of every amount.
const Symbol = "₹"

// Zero is the additive identity used to start sums.
var Zero = decimal.Zero

// MustParse converts a literal such as "499.00" into an amount. It panics on
// malformed input and is meant for seed data only.
func MustParse(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// LineTotal returns price * qty.
func LineTotal(price decimal.Decimal, qty int) decimal.Decimal {
	return price.Mul(decimal.NewFromInt(int64(qty)))
}

// Format renders an amount with the currency symbol and two decimals.
func Format(amount decimal.Decimal) string {
	return Symbol + amount.StringFixed(2)
}
