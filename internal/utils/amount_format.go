package utils

import (
	"github.com/shopspring/decimal"
)

// displayPrecision is the number of fractional digits shown for balances.
// The single currency unit here carries two.
const displayPrecision = 2

// FormatAmount formats an amount for display with two fractional digits.
// Example: amount 1000 returns "1000.00", amount 12.345 returns "12.35".
// Internal arithmetic always uses the exact decimal, never the display form.
func FormatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(displayPrecision)
}
