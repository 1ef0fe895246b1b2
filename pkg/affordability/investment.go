package affordability

import (
	"github.com/jaskichee/mortgage-calculator/pkg/moneymath"
)

// MonthsUnreachable marks an emergency fund target that can never be
// reached because no income is left over. It stands in for an infinite
// month count so results stay JSON-marshalable.
const MonthsUnreachable = -1

// InvestmentAllocationResult describes how the monthly surplus is split
// between emergency-fund top-up, ETF investment, and savings.
type InvestmentAllocationResult struct {
	MonthlyToEmergencyFund      float64 `json:"monthlyToEmergencyFund"`
	MonthlyToETF                float64 `json:"monthlyToETF"`
	MonthlyToSavings            float64 `json:"monthlyToSavings"`
	MonthsToEmergencyFundTarget int     `json:"monthsToEmergencyFundTarget"`
	IsEmergencyFundFunded       bool    `json:"isEmergencyFundFunded"`
}

// AllocateSurplus applies the emergency-fund-first waterfall: until the
// fund reaches its target, every euro of leftover income goes to it;
// once funded, the surplus is split between ETFs and savings by the
// requested percentage.
func AllocateSurplus(leftoverIncome, currentSavings, emergencyFundTarget, etfAllocationPercent float64) InvestmentAllocationResult {
	if leftoverIncome <= 0 {
		return InvestmentAllocationResult{
			MonthsToEmergencyFundTarget: MonthsUnreachable,
			IsEmergencyFundFunded:       currentSavings >= emergencyFundTarget,
		}
	}

	income := moneymath.FromFloat(leftoverIncome)
	shortfall := moneymath.FromFloat(emergencyFundTarget).Sub(moneymath.FromFloat(currentSavings))

	if shortfall.IsPositive() {
		monthsToTarget := int(shortfall.Div(income).Ceil().IntPart())
		return InvestmentAllocationResult{
			MonthlyToEmergencyFund:      leftoverIncome,
			MonthsToEmergencyFundTarget: monthsToTarget,
			IsEmergencyFundFunded:       false,
		}
	}

	toETF := moneymath.Percent(income, etfAllocationPercent)
	toSavings := income.Sub(toETF)

	return InvestmentAllocationResult{
		MonthlyToETF:          toETF.InexactFloat64(),
		MonthlyToSavings:      toSavings.InexactFloat64(),
		IsEmergencyFundFunded: true,
	}
}
