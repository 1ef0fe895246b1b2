// Package moneymath implements the decimal arithmetic policy shared by
// every calculator. All currency and rate math runs on decimal values so
// that chained operations (e.g. a 360-step amortization loop) do not
// accumulate floating-point drift; float64 appears only at the API
// boundary.
package moneymath

import (
	"math"

	"github.com/shopspring/decimal"
)

// Hundred is the divisor for percentage conversions.
var Hundred = decimal.NewFromInt(100)

// FromFloat converts a float64 into a decimal. NaN and infinite inputs
// map to zero, matching the engine's silent-degenerate-result policy.
func FromFloat(f float64) decimal.Decimal {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(f)
}

// MonthlyRate converts an annual percentage rate into a monthly decimal
// fraction (annual% / 100 / 12).
func MonthlyRate(annualPercent float64) decimal.Decimal {
	return FromFloat(annualPercent).Div(Hundred).Div(decimal.NewFromInt(12))
}

// Percent returns value * percent / 100.
func Percent(value decimal.Decimal, percent float64) decimal.Decimal {
	return value.Mul(FromFloat(percent)).Div(Hundred)
}

// Ratio returns part / total * 100, or zero when total is zero.
func Ratio(part, total decimal.Decimal) decimal.Decimal {
	if total.IsZero() {
		return decimal.Zero
	}
	return part.Div(total).Mul(Hundred)
}

// Round2 rounds a decimal to cents and converts it for display.
func Round2(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}
