package affordability

import (
	"math"
	"testing"
)

func TestCalculateEmergencyFund(t *testing.T) {
	tests := []struct {
		name              string
		fixed             float64
		variable          float64
		childCosts        float64
		debtPayments      float64
		months            int
		expectedEssential float64
		expectedTarget    float64
	}{
		{
			name:              "Family with mortgage",
			fixed:             500,
			variable:          800,
			childCosts:        250,
			debtPayments:      1450,
			months:            6,
			expectedEssential: 3000,
			expectedTarget:    18000,
		},
		{
			name:              "Minimal coverage",
			fixed:             300,
			variable:          400,
			childCosts:        0,
			debtPayments:      0,
			months:            3,
			expectedEssential: 700,
			expectedTarget:    2100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CalculateEmergencyFund(tt.fixed, tt.variable, tt.childCosts, tt.debtPayments, tt.months)

			if math.Abs(result.MonthlyEssentialExpenses-tt.expectedEssential) > 0.01 {
				t.Errorf("MonthlyEssentialExpenses = %.2f, expected %.2f",
					result.MonthlyEssentialExpenses, tt.expectedEssential)
			}
			if math.Abs(result.TargetAmount-tt.expectedTarget) > 0.01 {
				t.Errorf("TargetAmount = %.2f, expected %.2f", result.TargetAmount, tt.expectedTarget)
			}
			if result.MonthsOfExpenses != tt.months {
				t.Errorf("MonthsOfExpenses = %d, expected %d", result.MonthsOfExpenses, tt.months)
			}
		})
	}
}
