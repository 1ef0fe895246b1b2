// Package stresstest runs adverse scenarios (rate shock, income loss)
// through the mortgage and DTI calculators to measure cash-flow
// solvency.
package stresstest

import (
	"github.com/shopspring/decimal"

	"github.com/jaskichee/mortgage-calculator/pkg/affordability"
	"github.com/jaskichee/mortgage-calculator/pkg/constants"
	"github.com/jaskichee/mortgage-calculator/pkg/moneymath"
	"github.com/jaskichee/mortgage-calculator/pkg/mortgage"
)

// Input carries the household figures every scenario starts from.
type Input struct {
	Principal                float64
	AnnualRate               float64
	Years                    int
	PrimaryIncome            float64
	OtherIncome              float64
	MonthlyDebts             float64 // excluding mortgage
	MonthlyExpenses          float64 // excluding debts and mortgage
	AdditionalMonthlyPayment float64 // e.g. an active consumer-loan installment
}

// ScenarioResult is the outcome of a single stress scenario.
type ScenarioResult struct {
	Name           string  `json:"name"`
	MonthlyPayment float64 `json:"monthlyPayment"`
	TotalDTI       float64 `json:"totalDTI"`
	MonthlySurplus float64 `json:"monthlySurplus"`
	IsAffordable   bool    `json:"isAffordable"`
}

// Result groups the three named scenarios.
type Result struct {
	Baseline     ScenarioResult `json:"baseline"`
	RateIncrease ScenarioResult `json:"rateIncrease"`
	JobLoss      ScenarioResult `json:"jobLoss"`
}

// scenario parameterizes the shared calculation template. Each named
// scenario is a rate offset plus an optional primary-income wipeout.
type scenario struct {
	name        string
	rateOffset  float64
	zeroPrimary bool
}

var scenarios = []scenario{
	{name: "Baseline"},
	{name: "Interest Rate +2%", rateOffset: constants.RateIncreaseOffset},
	{name: "Job Loss (Primary)", zeroPrimary: true},
}

// Run evaluates all scenarios. Affordability is survival-based: a
// scenario passes when the monthly surplus stays non-negative, even if
// the DTI exceeds the lending ceiling.
func Run(input Input) Result {
	results := make([]ScenarioResult, len(scenarios))
	for i, s := range scenarios {
		results[i] = runScenario(input, s)
	}
	return Result{
		Baseline:     results[0],
		RateIncrease: results[1],
		JobLoss:      results[2],
	}
}

func runScenario(input Input, s scenario) ScenarioResult {
	primary := input.PrimaryIncome
	if s.zeroPrimary {
		primary = 0
	}

	payment := mortgage.CalculatePayment(input.Principal, input.AnnualRate+s.rateOffset, input.Years).MonthlyPayment
	totalPayment := moneymath.FromFloat(payment).Add(moneymath.FromFloat(input.AdditionalMonthlyPayment))

	totalIncome := moneymath.FromFloat(primary).Add(moneymath.FromFloat(input.OtherIncome))

	dti := affordability.CalculateDTI(totalIncome.InexactFloat64(), totalPayment.InexactFloat64(), input.MonthlyDebts)

	outflow := totalPayment.
		Add(moneymath.FromFloat(input.MonthlyDebts)).
		Add(moneymath.FromFloat(input.MonthlyExpenses))
	surplus := totalIncome.Sub(outflow)

	return ScenarioResult{
		Name:           s.name,
		MonthlyPayment: totalPayment.InexactFloat64(),
		TotalDTI:       dti.TotalDTI,
		MonthlySurplus: surplus.InexactFloat64(),
		IsAffordable:   surplus.GreaterThanOrEqual(decimal.Zero),
	}
}
