package affordability

import (
	"github.com/shopspring/decimal"

	"github.com/jaskichee/mortgage-calculator/pkg/constants"
	"github.com/jaskichee/mortgage-calculator/pkg/moneymath"
)

// CollateralResult reports whether a secondary property can substitute
// for a cash down payment shortfall.
type CollateralResult struct {
	IsValid                  bool    `json:"isValid"`
	RequiredCollateralValue  float64 `json:"requiredCollateralValue"`
	AvailableCollateralValue float64 `json:"availableCollateralValue"`
	Shortfall                float64 `json:"shortfall"`
}

// ValidateCollateral checks whether a parent's property, taken at the
// bank's collateral LTV, covers the gap between the user's down payment
// and the required minimum. Only the gap must be covered, not the full
// minimum. When the consumer-loan path was chosen instead, collateral is
// irrelevant and the result is trivially valid.
func ValidateCollateral(newHomePrice, parentPropertyValue, downPayment float64, consumerLoanSelected bool) CollateralResult {
	if consumerLoanSelected {
		return CollateralResult{IsValid: true}
	}

	homePrice := moneymath.FromFloat(newHomePrice)
	parentValue := moneymath.FromFloat(parentPropertyValue)

	required := moneymath.Percent(homePrice, constants.MinDownPaymentPercent).Sub(moneymath.FromFloat(downPayment))
	if required.IsNegative() {
		required = decimal.Zero
	}
	available := moneymath.Percent(parentValue, constants.CollateralLTVPercent)

	isValid := available.GreaterThanOrEqual(required)
	shortfall := decimal.Zero
	if !isValid {
		shortfall = required.Sub(available)
	}

	return CollateralResult{
		IsValid:                  isValid,
		RequiredCollateralValue:  required.InexactFloat64(),
		AvailableCollateralValue: available.InexactFloat64(),
		Shortfall:                shortfall.InexactFloat64(),
	}
}
