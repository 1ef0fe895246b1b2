package mortgage

import (
	"math"
	"testing"
)

func TestCalculatePayment(t *testing.T) {
	tests := []struct {
		name             string
		principal        float64
		annualRate       float64
		years            int
		expectedMonthly  float64
		expectedInterest float64
		tolerance        float64
	}{
		{
			name:             "Slovenian reference mortgage",
			principal:        240000,
			annualRate:       3.5,
			years:            30,
			expectedMonthly:  1077.71,
			expectedInterest: 147974.61,
			tolerance:        0.01,
		},
		{
			name:             "Consumer loan defaults",
			principal:        60000,
			annualRate:       6.5,
			years:            10,
			expectedMonthly:  681.29,
			expectedInterest: 21754.36,
			tolerance:        0.5,
		},
		{
			name:             "Zero interest loan",
			principal:        12000,
			annualRate:       0,
			years:            5,
			expectedMonthly:  200,
			expectedInterest: 0,
			tolerance:        0.001,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CalculatePayment(tt.principal, tt.annualRate, tt.years)

			if math.Abs(result.MonthlyPayment-tt.expectedMonthly) > tt.tolerance {
				t.Errorf("MonthlyPayment = %.2f, expected %.2f", result.MonthlyPayment, tt.expectedMonthly)
			}
			if math.Abs(result.TotalInterest-tt.expectedInterest) > tt.tolerance {
				t.Errorf("TotalInterest = %.2f, expected %.2f", result.TotalInterest, tt.expectedInterest)
			}
		})
	}
}

func TestCalculatePaymentDegenerateInputs(t *testing.T) {
	tests := []struct {
		name       string
		principal  float64
		annualRate float64
		years      int
	}{
		{name: "Zero principal", principal: 0, annualRate: 3.5, years: 30},
		{name: "Negative principal", principal: -100, annualRate: 3.5, years: 30},
		{name: "Zero years", principal: 240000, annualRate: 3.5, years: 0},
		{name: "Negative years", principal: 240000, annualRate: 3.5, years: -5},
		{name: "NaN principal", principal: math.NaN(), annualRate: 3.5, years: 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CalculatePayment(tt.principal, tt.annualRate, tt.years)
			if result != (PaymentResult{}) {
				t.Errorf("CalculatePayment(%v, %v, %v) = %+v, expected all-zero result",
					tt.principal, tt.annualRate, tt.years, result)
			}
		})
	}
}

func TestCalculatePaymentNaNRateIsInterestFree(t *testing.T) {
	result := CalculatePayment(12000, math.NaN(), 5)
	if math.Abs(result.MonthlyPayment-200) > 0.001 {
		t.Errorf("MonthlyPayment = %v, expected 200", result.MonthlyPayment)
	}
	if result.TotalInterest != 0 {
		t.Errorf("TotalInterest = %v, expected 0", result.TotalInterest)
	}
}

func TestCalculatePaymentAnnuityIdentity(t *testing.T) {
	// totalPayment = monthlyPayment * n and totalInterest = totalPayment - P
	tests := []struct {
		principal  float64
		annualRate float64
		years      int
	}{
		{principal: 240000, annualRate: 3.5, years: 30},
		{principal: 100000, annualRate: 1.2, years: 15},
		{principal: 55000, annualRate: 7.9, years: 8},
	}

	for _, tt := range tests {
		result := CalculatePayment(tt.principal, tt.annualRate, tt.years)
		n := float64(tt.years * 12)

		if math.Abs(result.TotalPayment-result.MonthlyPayment*n) > 0.01 {
			t.Errorf("totalPayment %.4f != monthlyPayment*n %.4f", result.TotalPayment, result.MonthlyPayment*n)
		}
		if math.Abs(result.TotalInterest-(result.TotalPayment-tt.principal)) > 0.01 {
			t.Errorf("totalInterest %.4f != totalPayment-principal %.4f",
				result.TotalInterest, result.TotalPayment-tt.principal)
		}
	}
}

func TestGenerateSchedule(t *testing.T) {
	principal := 240000.0
	schedule := GenerateSchedule(principal, 3.5, 30, 300000)

	if len(schedule) != 360 {
		t.Fatalf("schedule has %d entries, expected 360", len(schedule))
	}

	// The schedule closes: principal portions sum back to the loan and the
	// final balance is zero.
	sum := 0.0
	for _, entry := range schedule {
		sum += entry.Principal
	}
	if math.Abs(sum-principal) > 0.01 {
		t.Errorf("sum of principal portions = %.4f, expected %.2f", sum, principal)
	}

	final := schedule[len(schedule)-1]
	if math.Abs(final.Balance) > 0.01 {
		t.Errorf("final balance = %.6f, expected 0", final.Balance)
	}
	if math.Abs(final.Equity-300000) > 0.01 {
		t.Errorf("final equity = %.2f, expected full home value 300000", final.Equity)
	}

	// Balance decreases monotonically.
	for i := 1; i < len(schedule); i++ {
		if schedule[i].Balance > schedule[i-1].Balance {
			t.Fatalf("balance increased at month %d", schedule[i].Month)
		}
	}
}

func TestGenerateScheduleDegenerateInputs(t *testing.T) {
	if s := GenerateSchedule(0, 3.5, 30, 100000); s != nil {
		t.Errorf("zero principal produced %d entries, expected none", len(s))
	}
	if s := GenerateSchedule(100000, 3.5, 0, 100000); s != nil {
		t.Errorf("zero years produced %d entries, expected none", len(s))
	}
}

func TestGenerateScheduleWithKnownPayment(t *testing.T) {
	// Supplying the payment computed by CalculatePayment must produce a
	// schedule identical to GenerateSchedule.
	payment := CalculatePayment(180000, 4.2, 20).MonthlyPayment

	derived := GenerateSchedule(180000, 4.2, 20, 225000)
	supplied := GenerateScheduleWithPayment(180000, 4.2, 20, 225000, payment)

	if len(derived) != len(supplied) {
		t.Fatalf("schedules differ in length: %d vs %d", len(derived), len(supplied))
	}
	for i := range derived {
		if derived[i] != supplied[i] {
			t.Fatalf("schedules diverge at month %d: %+v vs %+v", derived[i].Month, derived[i], supplied[i])
		}
	}
}

func TestGenerateScheduleZeroRate(t *testing.T) {
	schedule := GenerateSchedule(12000, 0, 1, 15000)

	if len(schedule) != 12 {
		t.Fatalf("schedule has %d entries, expected 12", len(schedule))
	}
	for _, entry := range schedule {
		if math.Abs(entry.Payment-1000) > 0.001 {
			t.Errorf("month %d payment = %v, expected 1000", entry.Month, entry.Payment)
		}
		if entry.Interest != 0 {
			t.Errorf("month %d interest = %v, expected 0", entry.Month, entry.Interest)
		}
	}
	if math.Abs(schedule[11].Balance) > 0.001 {
		t.Errorf("final balance = %v, expected 0", schedule[11].Balance)
	}
}
