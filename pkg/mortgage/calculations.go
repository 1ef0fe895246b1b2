// Package mortgage provides annuity payment and amortization schedule
// calculations.
package mortgage

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/jaskichee/mortgage-calculator/pkg/constants"
	"github.com/jaskichee/mortgage-calculator/pkg/moneymath"
)

// PaymentResult holds the values derived from the annuity formula.
type PaymentResult struct {
	MonthlyPayment float64 `json:"monthlyPayment"`
	TotalPayment   float64 `json:"totalPayment"`
	TotalInterest  float64 `json:"totalInterest"`
}

// Entry is one month of an amortization schedule.
type Entry struct {
	Month     int     `json:"month"`
	Payment   float64 `json:"payment"`
	Principal float64 `json:"principal"`
	Interest  float64 `json:"interest"`
	Balance   float64 `json:"balance"`
	Equity    float64 `json:"equity"`
}

// CalculatePayment computes the monthly payment for a loan using the
// standard annuity formula M = P * r(1+r)^n / ((1+r)^n - 1).
//
// Degenerate inputs (non-positive principal or term, NaN principal)
// yield an all-zero result rather than an error; the engine may be
// invoked against a partially filled snapshot. A zero or NaN rate is the
// interest-free case.
func CalculatePayment(principal, annualRatePercent float64, years int) PaymentResult {
	if principal <= 0 || years <= 0 || math.IsNaN(principal) {
		return PaymentResult{}
	}

	n := years * constants.MonthsPerYear
	p := moneymath.FromFloat(principal)

	if annualRatePercent == 0 || math.IsNaN(annualRatePercent) {
		monthly := p.Div(decimal.NewFromInt(int64(n)))
		return PaymentResult{
			MonthlyPayment: monthly.InexactFloat64(),
			TotalPayment:   principal,
			TotalInterest:  0,
		}
	}

	r := moneymath.MonthlyRate(annualRatePercent)
	factor := r.Add(decimal.NewFromInt(1)).Pow(decimal.NewFromInt(int64(n)))

	monthly := p.Mul(r.Mul(factor)).Div(factor.Sub(decimal.NewFromInt(1)))
	total := monthly.Mul(decimal.NewFromInt(int64(n)))
	interest := total.Sub(p)

	return PaymentResult{
		MonthlyPayment: monthly.InexactFloat64(),
		TotalPayment:   total.InexactFloat64(),
		TotalInterest:  interest.InexactFloat64(),
	}
}

// GenerateSchedule computes the monthly payment and builds the full
// amortization schedule. homeValue is used for the equity column and is
// held constant over the term; no appreciation is modeled.
func GenerateSchedule(principal, annualRatePercent float64, years int, homeValue float64) []Entry {
	payment := CalculatePayment(principal, annualRatePercent, years).MonthlyPayment
	return GenerateScheduleWithPayment(principal, annualRatePercent, years, homeValue, payment)
}

// GenerateScheduleWithPayment builds an amortization schedule using an
// externally supplied monthly payment, letting callers reuse a payment
// computed elsewhere (e.g. a consumer-loan-augmented total). With the
// payment from CalculatePayment it produces the same schedule as
// GenerateSchedule.
func GenerateScheduleWithPayment(principal, annualRatePercent float64, years int, homeValue, monthlyPayment float64) []Entry {
	if principal <= 0 || years <= 0 {
		return nil
	}

	n := years * constants.MonthsPerYear
	balance := moneymath.FromFloat(principal)
	r := moneymath.MonthlyRate(annualRatePercent)
	payment := moneymath.FromFloat(monthlyPayment)
	home := moneymath.FromFloat(homeValue)

	schedule := make([]Entry, 0, n)
	for month := 1; month <= n; month++ {
		interest := balance.Mul(r)
		principalPortion := payment.Sub(interest)

		// The final month (or any month where the regular principal
		// portion would overshoot) pays off exactly the remaining balance.
		if balance.Sub(principalPortion).IsNegative() {
			principalPortion = balance
		}

		balance = balance.Sub(principalPortion)
		equity := home.Sub(balance)

		schedule = append(schedule, Entry{
			Month:     month,
			Payment:   payment.InexactFloat64(),
			Principal: principalPortion.InexactFloat64(),
			Interest:  interest.InexactFloat64(),
			Balance:   balance.InexactFloat64(),
			Equity:    equity.InexactFloat64(),
		})

		if !balance.IsPositive() {
			break
		}
	}

	return schedule
}
