package affordability

import (
	"github.com/jaskichee/mortgage-calculator/pkg/moneymath"

	"github.com/shopspring/decimal"
)

// EmergencyFundResult holds the target cash buffer for a household.
type EmergencyFundResult struct {
	TargetAmount             float64 `json:"targetAmount"`
	MonthsOfExpenses         int     `json:"monthsOfExpenses"`
	MonthlyEssentialExpenses float64 `json:"monthlyEssentialExpenses"`
}

// CalculateEmergencyFund sizes the emergency fund from essential monthly
// outflows. debtPayments is expected to include the selected mortgage
// payment.
func CalculateEmergencyFund(fixedExpenses, variableExpenses, childCosts, debtPayments float64, monthsToCover int) EmergencyFundResult {
	essential := moneymath.FromFloat(fixedExpenses).
		Add(moneymath.FromFloat(variableExpenses)).
		Add(moneymath.FromFloat(childCosts)).
		Add(moneymath.FromFloat(debtPayments))

	target := essential.Mul(decimal.NewFromInt(int64(monthsToCover)))

	return EmergencyFundResult{
		TargetAmount:             target.InexactFloat64(),
		MonthsOfExpenses:         monthsToCover,
		MonthlyEssentialExpenses: essential.InexactFloat64(),
	}
}
