package core

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Indian numbering breakpoints.
var (
	oneThousand = decimal.NewFromInt(1000)
	oneLakh     = decimal.NewFromInt(100000)
	oneCrore    = decimal.NewFromInt(10000000)
)

const CurrencySymbol = "₹"

// FormatCurrency renders an amount in rupees for display: whole rupees with
// grouped thousands, abbreviated to one decimal at the lakh (1e5) and crore
// (1e7) breakpoints. Malformed/negative amounts render as ₹0.
func FormatCurrency(amount decimal.Decimal) string {
	if amount.Sign() <= 0 {
		return CurrencySymbol + "0"
	}
	switch {
	case amount.GreaterThanOrEqual(oneCrore):
		return CurrencySymbol + amount.Div(oneCrore).StringFixed(1) + "Cr"
	case amount.GreaterThanOrEqual(oneLakh):
		return CurrencySymbol + amount.Div(oneLakh).StringFixed(1) + "L"
	case amount.GreaterThanOrEqual(oneThousand):
		return CurrencySymbol + groupThousands(amount.Round(0).String())
	default:
		return CurrencySymbol + amount.Round(0).String()
	}
}

// FormatPercent renders a ratio as a percentage with one decimal.
func FormatPercent(value float64) string {
	d := decimal.NewFromFloat(value)
	return d.StringFixed(1) + "%"
}

func groupThousands(digits string) string {
	var sb strings.Builder
	n := len(digits)
	for i, r := range digits {
		if i > 0 && (n-i)%3 == 0 {
			sb.WriteByte(',')
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
