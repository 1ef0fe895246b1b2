package results

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jaskichee/mortgage-calculator/internal/config"
	"github.com/jaskichee/mortgage-calculator/pkg/constants"
	"github.com/jaskichee/mortgage-calculator/pkg/datetime"
	"github.com/jaskichee/mortgage-calculator/pkg/household"
	"github.com/jaskichee/mortgage-calculator/pkg/moneymath"
	"github.com/jaskichee/mortgage-calculator/pkg/stresstest"
)

// stressChart accumulates each scenario's monthly surplus over a 6-year
// horizon. Payments for obligations that have expired by a given month
// (car loan past its end date, term life insurance past its duration)
// are added back to the surplus from that month on.
func stressChart(input *config.CalculatorInput, stress stresstest.Result, isFixedRate bool, now time.Time) []StressChartPoint {
	hasCarLoanEnd := input.Debts.CarLoanEnd != nil
	carLoanMonthsLeft := 0
	if hasCarLoanEnd {
		carLoanMonthsLeft = datetime.MonthsBetween(now, *input.Debts.CarLoanEnd)
		// An end date already behind us leaves no months of payments.
		if carLoanMonthsLeft < 0 {
			carLoanMonthsLeft = 0
		}
	}
	lifeInsuranceMonths := input.Expenses.LifeInsuranceDuration * constants.MonthsPerYear

	baselineSurplus := moneymath.FromFloat(stress.Baseline.MonthlySurplus)
	rateIncreaseSurplus := moneymath.FromFloat(stress.RateIncrease.MonthlySurplus)
	jobLossSurplus := moneymath.FromFloat(stress.JobLoss.MonthlySurplus)

	points := make([]StressChartPoint, 0, constants.StressChartYears)
	for year := 0; year < constants.StressChartYears; year++ {
		months := year * constants.MonthsPerYear

		cumulativeBaseline := decimal.Zero
		cumulativeRateIncrease := decimal.Zero
		cumulativeJobLoss := decimal.Zero

		for m := 1; m <= months; m++ {
			carLoanActive := !hasCarLoanEnd || m <= carLoanMonthsLeft
			lifeInsuranceActive := input.Expenses.LifeInsuranceDuration == 0 || m <= lifeInsuranceMonths

			adjustment := decimal.Zero
			if !carLoanActive {
				adjustment = adjustment.Add(moneymath.FromFloat(input.Debts.CarLoans))
			}
			if !lifeInsuranceActive {
				adjustment = adjustment.Add(moneymath.FromFloat(input.Expenses.Insurance))
			}

			cumulativeBaseline = cumulativeBaseline.Add(baselineSurplus).Add(adjustment)
			cumulativeRateIncrease = cumulativeRateIncrease.Add(rateIncreaseSurplus).Add(adjustment)
			cumulativeJobLoss = cumulativeJobLoss.Add(jobLossSurplus).Add(adjustment)
		}

		point := StressChartPoint{
			Year:     year,
			Baseline: cumulativeBaseline.InexactFloat64(),
			JobLoss:  cumulativeJobLoss.InexactFloat64(),
		}
		if !isFixedRate {
			rateIncrease := cumulativeRateIncrease.InexactFloat64()
			point.RateIncrease = &rateIncrease
		}
		points = append(points, point)
	}

	return points
}

type projectionInputs struct {
	totalIncome          float64
	totalExpenses        float64
	monthlyDebts         float64
	selectedPayment      float64
	consumerInstallment  float64
	consumerLoanSelected bool
	consumerTerm         int
}

// cashFlowProjection builds one row per loan year with income held
// constant. Expenses, debts, and the mortgage line shrink as the car
// loan, term life insurance, and consumer loan expire; child costs are
// recomputed from each child's age in that future year.
func cashFlowProjection(input *config.CalculatorInput, p projectionInputs, now time.Time) []CashFlowRow {
	birthDates := input.BirthDates()

	rows := make([]CashFlowRow, 0, input.Mortgage.LoanTerm)
	for year := 1; year <= input.Mortgage.LoanTerm; year++ {
		futureDate := now.AddDate(0, year*constants.MonthsPerYear, 0)

		carLoanActive := input.Debts.CarLoanEnd == nil || input.Debts.CarLoanEnd.After(futureDate)
		lifeInsuranceActive := input.Expenses.LifeInsuranceDuration == 0 || year <= input.Expenses.LifeInsuranceDuration

		expenses := moneymath.FromFloat(p.totalExpenses)
		if !lifeInsuranceActive {
			expenses = expenses.Sub(moneymath.FromFloat(input.Expenses.Insurance))
		}

		debts := moneymath.FromFloat(p.monthlyDebts)
		if !carLoanActive {
			debts = debts.Sub(moneymath.FromFloat(input.Debts.CarLoans))
		}

		mortgagePayment := moneymath.FromFloat(p.selectedPayment)
		if p.consumerLoanSelected && year > p.consumerTerm {
			mortgagePayment = mortgagePayment.Sub(moneymath.FromFloat(p.consumerInstallment))
		}

		childCosts := moneymath.FromFloat(household.TotalChildCosts(birthDates, futureDate))
		expensesWithChildren := expenses.Add(childCosts)

		surplus := moneymath.FromFloat(p.totalIncome).
			Sub(expensesWithChildren).
			Sub(debts).
			Sub(mortgagePayment)

		rows = append(rows, CashFlowRow{
			Year:     year,
			Income:   p.totalIncome,
			Expenses: expensesWithChildren.InexactFloat64(),
			Debts:    debts.InexactFloat64(),
			Mortgage: mortgagePayment.InexactFloat64(),
			Surplus:  surplus.InexactFloat64(),
		})
	}

	return rows
}
