package calculator

import "github.com/shopspring/decimal"

// Epsilon is the tolerance below which a balance or a remaining amount is
// treated as settled (one cent).
var Epsilon = decimal.New(1, -2)

// RoundAmount rounds an amount to two decimal places, half away from zero.
func RoundAmount(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// FormatAmount renders an amount for presentation with exactly two decimals.
func FormatAmount(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// IsSettled reports whether an amount lies within [-Epsilon, Epsilon].
func IsSettled(d decimal.Decimal) bool {
	return d.Abs().LessThanOrEqual(Epsilon)
}
