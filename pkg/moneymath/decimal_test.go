package moneymath

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
)

func TestFromFloat(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected string
	}{
		{name: "Plain value", input: 1234.56, expected: "1234.56"},
		{name: "Zero", input: 0, expected: "0"},
		{name: "NaN maps to zero", input: math.NaN(), expected: "0"},
		{name: "Positive infinity maps to zero", input: math.Inf(1), expected: "0"},
		{name: "Negative infinity maps to zero", input: math.Inf(-1), expected: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FromFloat(tt.input)
			if result.String() != tt.expected {
				t.Errorf("FromFloat(%v) = %s, expected %s", tt.input, result.String(), tt.expected)
			}
		})
	}
}

func TestMonthlyRate(t *testing.T) {
	// 6% annual is exactly 0.5% monthly
	rate := MonthlyRate(6.0)
	if !rate.Equal(decimal.RequireFromString("0.005")) {
		t.Errorf("MonthlyRate(6.0) = %s, expected 0.005", rate.String())
	}
}

func TestRatio(t *testing.T) {
	tests := []struct {
		name     string
		part     float64
		total    float64
		expected float64
	}{
		{name: "Third", part: 1000, total: 3000, expected: 33.333333},
		{name: "Whole", part: 3000, total: 3000, expected: 100},
		{name: "Zero total guards division", part: 1000, total: 0, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Ratio(FromFloat(tt.part), FromFloat(tt.total)).InexactFloat64()
			if math.Abs(result-tt.expected) > 0.0001 {
				t.Errorf("Ratio(%v, %v) = %v, expected %v", tt.part, tt.total, result, tt.expected)
			}
		})
	}
}

func TestPercent(t *testing.T) {
	result := Percent(FromFloat(300000), 20).InexactFloat64()
	if result != 60000 {
		t.Errorf("Percent(300000, 20) = %v, expected 60000", result)
	}
}

func TestRound2(t *testing.T) {
	result := Round2(decimal.RequireFromString("1077.70512"))
	if result != 1077.71 {
		t.Errorf("Round2(1077.70512) = %v, expected 1077.71", result)
	}
}
