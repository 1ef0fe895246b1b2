// Package affordability implements the lending-policy calculators:
// debt-to-income ratios, collateral validation, emergency fund sizing,
// and investment allocation of the monthly surplus.
package affordability

import (
	"github.com/shopspring/decimal"

	"github.com/jaskichee/mortgage-calculator/pkg/constants"
	"github.com/jaskichee/mortgage-calculator/pkg/moneymath"
)

// DTIResult holds debt-to-income ratios against the regulatory ceiling.
type DTIResult struct {
	HousingDTI               float64 `json:"housingDTI"`
	TotalDTI                 float64 `json:"totalDTI"`
	IsHousingDTIValid        bool    `json:"isHousingDTIValid"`
	IsTotalDTIValid          bool    `json:"isTotalDTIValid"`
	MaxAllowedMonthlyPayment float64 `json:"maxAllowedMonthlyPayment"`
}

// CalculateDTI computes housing and total debt-to-income ratios. Ratios
// are valid when strictly below the ceiling. Non-positive income yields
// an all-zero, all-invalid result.
func CalculateDTI(grossMonthlyIncome, monthlyMortgagePayment, otherMonthlyDebts float64) DTIResult {
	if grossMonthlyIncome <= 0 {
		return DTIResult{}
	}

	income := moneymath.FromFloat(grossMonthlyIncome)
	mortgage := moneymath.FromFloat(monthlyMortgagePayment)
	debts := moneymath.FromFloat(otherMonthlyDebts)
	ceiling := decimal.NewFromFloat(constants.MaxDTIPercent)

	housingDTI := moneymath.Ratio(mortgage, income)
	totalDTI := moneymath.Ratio(mortgage.Add(debts), income)

	// The largest mortgage payment that keeps total debt service under
	// the ceiling: income * 40% - other debts, floored at zero.
	maxPayment := moneymath.Percent(income, constants.MaxDTIPercent).Sub(debts)
	if maxPayment.IsNegative() {
		maxPayment = decimal.Zero
	}

	return DTIResult{
		HousingDTI:               housingDTI.InexactFloat64(),
		TotalDTI:                 totalDTI.InexactFloat64(),
		IsHousingDTIValid:        housingDTI.LessThan(ceiling),
		IsTotalDTIValid:          totalDTI.LessThan(ceiling),
		MaxAllowedMonthlyPayment: maxPayment.InexactFloat64(),
	}
}
