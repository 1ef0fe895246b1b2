package affordability

import (
	"math"
	"testing"
)

func TestAllocateSurplusWaterfall(t *testing.T) {
	// Until the emergency fund reaches its target, every euro goes to it
	// regardless of the requested ETF split.
	for _, etfPercent := range []float64{0, 30, 60, 100} {
		result := AllocateSurplus(500, 1000, 4000, etfPercent)

		if result.MonthlyToEmergencyFund != 500 {
			t.Errorf("etf=%v: MonthlyToEmergencyFund = %v, expected 500", etfPercent, result.MonthlyToEmergencyFund)
		}
		if result.MonthlyToETF != 0 || result.MonthlyToSavings != 0 {
			t.Errorf("etf=%v: expected no ETF/savings allocation before the fund is full, got %+v", etfPercent, result)
		}
		if result.MonthsToEmergencyFundTarget != 6 {
			t.Errorf("etf=%v: MonthsToEmergencyFundTarget = %d, expected 6 (ceil(3000/500))",
				etfPercent, result.MonthsToEmergencyFundTarget)
		}
		if result.IsEmergencyFundFunded {
			t.Errorf("etf=%v: fund should not be reported as funded", etfPercent)
		}
	}
}

func TestAllocateSurplusFundedSplit(t *testing.T) {
	result := AllocateSurplus(500, 5000, 4000, 60)

	if result.MonthlyToEmergencyFund != 0 {
		t.Errorf("MonthlyToEmergencyFund = %v, expected 0 once funded", result.MonthlyToEmergencyFund)
	}
	if math.Abs(result.MonthlyToETF-300) > 0.01 {
		t.Errorf("MonthlyToETF = %v, expected 300", result.MonthlyToETF)
	}
	if math.Abs(result.MonthlyToSavings-200) > 0.01 {
		t.Errorf("MonthlyToSavings = %v, expected 200", result.MonthlyToSavings)
	}
	if result.MonthsToEmergencyFundTarget != 0 {
		t.Errorf("MonthsToEmergencyFundTarget = %d, expected 0", result.MonthsToEmergencyFundTarget)
	}
	if !result.IsEmergencyFundFunded {
		t.Error("expected fund to be reported as funded")
	}

	// ETF and savings shares always sum back to the full surplus.
	if math.Abs(result.MonthlyToETF+result.MonthlyToSavings-500) > 0.001 {
		t.Errorf("allocation does not sum to surplus: %v + %v", result.MonthlyToETF, result.MonthlyToSavings)
	}
}

func TestAllocateSurplusPartialMonthRoundsUp(t *testing.T) {
	// 2500 shortfall at 400/month is 6.25 months; partial months round up.
	result := AllocateSurplus(400, 1500, 4000, 50)
	if result.MonthsToEmergencyFundTarget != 7 {
		t.Errorf("MonthsToEmergencyFundTarget = %d, expected 7", result.MonthsToEmergencyFundTarget)
	}
}

func TestAllocateSurplusNoLeftover(t *testing.T) {
	tests := []struct {
		name         string
		leftover     float64
		savings      float64
		target       float64
		expectFunded bool
	}{
		{name: "No surplus, fund short", leftover: 0, savings: 1000, target: 4000, expectFunded: false},
		{name: "Negative surplus, fund short", leftover: -200, savings: 1000, target: 4000, expectFunded: false},
		{name: "No surplus, fund already met", leftover: 0, savings: 5000, target: 4000, expectFunded: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := AllocateSurplus(tt.leftover, tt.savings, tt.target, 50)

			if result.MonthlyToEmergencyFund != 0 || result.MonthlyToETF != 0 || result.MonthlyToSavings != 0 {
				t.Errorf("expected no allocation without surplus, got %+v", result)
			}
			if result.MonthsToEmergencyFundTarget != MonthsUnreachable {
				t.Errorf("MonthsToEmergencyFundTarget = %d, expected MonthsUnreachable", result.MonthsToEmergencyFundTarget)
			}
			if result.IsEmergencyFundFunded != tt.expectFunded {
				t.Errorf("IsEmergencyFundFunded = %t, expected %t", result.IsEmergencyFundFunded, tt.expectFunded)
			}
		})
	}
}
