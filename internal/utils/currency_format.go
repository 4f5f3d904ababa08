package utils

import (
	"github.com/shopspring/decimal"
)

// DisplayPrecision is the number of decimal places amounts are shown with.
const DisplayPrecision = 2

// FormatWithPrecision formats an amount rounded to the given precision, keeping trailing zeros.
// Example: 12.3456 with precision 2 returns "12.35", 4000 returns "4000.00"
func FormatWithPrecision(amount decimal.Decimal, precision int) string {
	return amount.StringFixed(int32(precision))
}

// FormatAmount formats an amount with DisplayPrecision.
func FormatAmount(amount decimal.Decimal) string {
	return FormatWithPrecision(amount, DisplayPrecision)
}

// FormatPercent formats a utilization percentage with one decimal place and a % suffix.
func FormatPercent(p decimal.Decimal) string {
	return p.StringFixed(1) + "%"
}
