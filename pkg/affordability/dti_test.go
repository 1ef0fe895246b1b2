package affordability

import (
	"math"
	"testing"
)

func TestCalculateDTI(t *testing.T) {
	tests := []struct {
		name               string
		income             float64
		mortgage           float64
		debts              float64
		expectedHousing    float64
		expectedTotal      float64
		expectHousingValid bool
		expectTotalValid   bool
		expectedMaxPayment float64
	}{
		{
			name:               "Exactly at the ceiling is invalid",
			income:             3000,
			mortgage:           1000,
			debts:              200,
			expectedHousing:    33.33,
			expectedTotal:      40.00,
			expectHousingValid: true,
			expectTotalValid:   false,
			expectedMaxPayment: 1000,
		},
		{
			name:               "Comfortably under the ceiling",
			income:             4000,
			mortgage:           900,
			debts:              100,
			expectedHousing:    22.5,
			expectedTotal:      25.0,
			expectHousingValid: true,
			expectTotalValid:   true,
			expectedMaxPayment: 1500,
		},
		{
			name:               "Debts alone exceed the ceiling",
			income:             2000,
			mortgage:           0,
			debts:              900,
			expectedHousing:    0,
			expectedTotal:      45.0,
			expectHousingValid: true,
			expectTotalValid:   false,
			expectedMaxPayment: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CalculateDTI(tt.income, tt.mortgage, tt.debts)

			if math.Abs(result.HousingDTI-tt.expectedHousing) > 0.01 {
				t.Errorf("HousingDTI = %.4f, expected %.2f", result.HousingDTI, tt.expectedHousing)
			}
			if math.Abs(result.TotalDTI-tt.expectedTotal) > 0.01 {
				t.Errorf("TotalDTI = %.4f, expected %.2f", result.TotalDTI, tt.expectedTotal)
			}
			if result.IsHousingDTIValid != tt.expectHousingValid {
				t.Errorf("IsHousingDTIValid = %t, expected %t", result.IsHousingDTIValid, tt.expectHousingValid)
			}
			if result.IsTotalDTIValid != tt.expectTotalValid {
				t.Errorf("IsTotalDTIValid = %t, expected %t", result.IsTotalDTIValid, tt.expectTotalValid)
			}
			if math.Abs(result.MaxAllowedMonthlyPayment-tt.expectedMaxPayment) > 0.01 {
				t.Errorf("MaxAllowedMonthlyPayment = %.2f, expected %.2f",
					result.MaxAllowedMonthlyPayment, tt.expectedMaxPayment)
			}
		})
	}
}

func TestCalculateDTIZeroIncome(t *testing.T) {
	result := CalculateDTI(0, 1000, 200)
	if result != (DTIResult{}) {
		t.Errorf("CalculateDTI with zero income = %+v, expected all-zero result", result)
	}

	result = CalculateDTI(-500, 1000, 200)
	if result != (DTIResult{}) {
		t.Errorf("CalculateDTI with negative income = %+v, expected all-zero result", result)
	}
}

func TestCalculateDTIMonotonicInMortgagePayment(t *testing.T) {
	// Increasing the mortgage payment never decreases total DTI.
	previous := -1.0
	for payment := 0.0; payment <= 2000; payment += 50 {
		result := CalculateDTI(3000, payment, 200)
		if result.TotalDTI < previous {
			t.Fatalf("TotalDTI decreased from %.4f to %.4f at payment %.0f", previous, result.TotalDTI, payment)
		}
		previous = result.TotalDTI
	}
}
