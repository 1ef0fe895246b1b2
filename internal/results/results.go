// Package results composes the individual calculators into the full
// affordability bundle for a household snapshot.
package results

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/jaskichee/mortgage-calculator/internal/config"
	"github.com/jaskichee/mortgage-calculator/pkg/affordability"
	"github.com/jaskichee/mortgage-calculator/pkg/constants"
	"github.com/jaskichee/mortgage-calculator/pkg/household"
	"github.com/jaskichee/mortgage-calculator/pkg/moneymath"
	"github.com/jaskichee/mortgage-calculator/pkg/mortgage"
	"github.com/jaskichee/mortgage-calculator/pkg/stresstest"
)

// MortgageOption is one financing variant presented for comparison.
type MortgageOption struct {
	Type                       string  `json:"type"`
	DownPayment                float64 `json:"downPayment"`
	LoanAmount                 float64 `json:"loanAmount"`
	LoanTerm                   int     `json:"loanTerm"`
	MonthlyPayment             float64 `json:"monthlyPayment"`
	ConsumerLoanMonthlyPayment float64 `json:"consumerLoanMonthlyPayment,omitempty"`
	ConsumerLoanRate           float64 `json:"consumerLoanRate,omitempty"`
	ConsumerLoanTerm           int     `json:"consumerLoanTerm,omitempty"`
	TotalInterest              float64 `json:"totalInterest"`
	TotalCost                  float64 `json:"totalCost"`
}

// StressChartPoint is one year-mark of the cumulative stress projection.
// RateIncrease is nil for fixed-rate loans, where the rate cannot move.
type StressChartPoint struct {
	Year         int      `json:"year"`
	Baseline     float64  `json:"baseline"`
	RateIncrease *float64 `json:"rateIncrease"`
	JobLoss      float64  `json:"jobLoss"`
}

// CashFlowRow is one loan year of the cash-flow projection. Expenses
// include child costs recomputed for that year.
type CashFlowRow struct {
	Year     int     `json:"year"`
	Income   float64 `json:"income"`
	Expenses float64 `json:"expenses"`
	Debts    float64 `json:"debts"`
	Mortgage float64 `json:"mortgage"`
	Surplus  float64 `json:"surplus"`
}

// Bundle is the full set of computed results for one snapshot.
type Bundle struct {
	EffectiveRate float64 `json:"effectiveRate"`

	TotalIncome   float64 `json:"totalIncome"`
	TotalExpenses float64 `json:"totalExpenses"`
	ChildCosts    float64 `json:"childCosts"`
	MonthlyDebts  float64 `json:"monthlyDebts"`

	StandardOption     MortgageOption  `json:"standardOption"`
	CollateralOption   MortgageOption  `json:"collateralOption"`
	ConsumerLoanOption *MortgageOption `json:"consumerLoanOption,omitempty"`
	SelectedOption     MortgageOption  `json:"selectedOption"`
	SelectedLoanAmount float64         `json:"selectedLoanAmount"`

	DTI           affordability.DTIResult                  `json:"dti"`
	Collateral    affordability.CollateralResult           `json:"collateral"`
	EmergencyFund affordability.EmergencyFundResult        `json:"emergencyFund"`
	Investment    affordability.InvestmentAllocationResult `json:"investment"`

	StressTest   stresstest.Result  `json:"stressTest"`
	Amortization []mortgage.Entry   `json:"amortization"`
	StressChart  []StressChartPoint `json:"stressChart"`
	CashFlow     []CashFlowRow      `json:"cashFlow"`
}

// Compute runs every calculator over the snapshot and assembles the
// bundle. now anchors all date-dependent logic (child ages, car loan
// expiry); callers pass the wall clock, tests pass a fixed date.
func Compute(logger *zap.Logger, input *config.CalculatorInput, now time.Time) *Bundle {
	if logger == nil {
		logger = zap.NewNop()
	}

	totalIncome := input.Income.TotalMonthlyIncome()
	totalExpenses := input.Expenses.Total()
	childCosts := household.TotalChildCosts(input.BirthDates(), now)
	monthlyDebts := input.Debts.TotalMonthly()

	m := input.Mortgage
	effectiveRate := m.EffectiveRate()
	homePrice := moneymath.FromFloat(m.HomePrice)

	// Standard option finances the maximum 80% LTV.
	standardLoanAmount := moneymath.Percent(homePrice, constants.MaxLTVPercent).InexactFloat64()
	standardPayment := mortgage.CalculatePayment(standardLoanAmount, effectiveRate, m.LoanTerm)

	// Collateral-backed option finances everything beyond the declared
	// down payment.
	collateralLoanAmount := homePrice.Sub(moneymath.FromFloat(m.DownPayment)).InexactFloat64()
	collateralPayment := mortgage.CalculatePayment(collateralLoanAmount, effectiveRate, m.LoanTerm)

	// Consumer loan option borrows the gap to the minimum down payment as
	// a secondary loan on top of the standard mortgage.
	consumerLoanPrincipal := moneymath.Percent(homePrice, constants.MinDownPaymentPercent).
		Sub(moneymath.FromFloat(m.DownPayment))
	if consumerLoanPrincipal.IsNegative() {
		consumerLoanPrincipal = decimal.Zero
	}
	consumerRate := m.ConsumerLoanInterestRate
	if consumerRate <= 0 {
		consumerRate = constants.DefaultConsumerLoanRate
	}
	consumerTerm := m.ConsumerLoanTerm
	if consumerTerm <= 0 {
		consumerTerm = constants.DefaultConsumerLoanTermYears
	}
	consumerPayment := mortgage.CalculatePayment(consumerLoanPrincipal.InexactFloat64(), consumerRate, consumerTerm)

	standardOption := MortgageOption{
		Type:           "Standard (20% Down)",
		DownPayment:    moneymath.Percent(homePrice, constants.MinDownPaymentPercent).InexactFloat64(),
		LoanAmount:     standardLoanAmount,
		LoanTerm:       m.LoanTerm,
		MonthlyPayment: standardPayment.MonthlyPayment,
		TotalInterest:  standardPayment.TotalInterest,
		TotalCost:      standardPayment.TotalPayment,
	}

	collateralOption := MortgageOption{
		Type:           "With Collateral",
		DownPayment:    m.DownPayment,
		LoanAmount:     collateralLoanAmount,
		LoanTerm:       m.LoanTerm,
		MonthlyPayment: collateralPayment.MonthlyPayment,
		TotalInterest:  collateralPayment.TotalInterest,
		TotalCost:      collateralPayment.TotalPayment,
	}

	// Shown only when the declared down payment cannot reach 80% LTV.
	var consumerLoanOption *MortgageOption
	if standardLoanAmount < collateralLoanAmount {
		consumerLoanOption = &MortgageOption{
			Type:                       "With Consumer Loan",
			DownPayment:                m.DownPayment,
			LoanAmount:                 standardLoanAmount + consumerLoanPrincipal.InexactFloat64(),
			LoanTerm:                   m.LoanTerm,
			MonthlyPayment:             standardPayment.MonthlyPayment + consumerPayment.MonthlyPayment,
			ConsumerLoanMonthlyPayment: consumerPayment.MonthlyPayment,
			ConsumerLoanRate:           consumerRate,
			ConsumerLoanTerm:           consumerTerm,
			TotalInterest:              standardPayment.TotalInterest + consumerPayment.TotalInterest,
			TotalCost:                  standardPayment.TotalPayment + consumerPayment.TotalPayment,
		}
	}

	// Resolve the user's selection.
	method := m.ResourceMethod()
	consumerLoanSelected := method == config.MethodConsumerLoan

	var selectedPayment mortgage.PaymentResult
	var selectedLoanAmount float64
	selectedConsumerInstallment := 0.0

	switch {
	case consumerLoanSelected:
		selectedPayment = mortgage.PaymentResult{
			MonthlyPayment: standardPayment.MonthlyPayment + consumerPayment.MonthlyPayment,
			TotalPayment:   standardPayment.TotalPayment + consumerPayment.TotalPayment,
			TotalInterest:  standardPayment.TotalInterest + consumerPayment.TotalInterest,
		}
		selectedLoanAmount = standardLoanAmount + consumerLoanPrincipal.InexactFloat64()
		selectedConsumerInstallment = consumerPayment.MonthlyPayment
	case method == config.MethodCollateral || method == config.MethodGuarantor:
		selectedPayment = collateralPayment
		selectedLoanAmount = collateralLoanAmount
	default:
		// Not forced to 80% LTV; reflects whatever down payment the user
		// actually entered.
		selectedLoanAmount = collateralLoanAmount
		selectedPayment = mortgage.CalculatePayment(selectedLoanAmount, effectiveRate, m.LoanTerm)
	}

	selectedOption := MortgageOption{
		Type:           "Your Selection",
		DownPayment:    m.DownPayment,
		LoanAmount:     selectedLoanAmount,
		LoanTerm:       m.LoanTerm,
		MonthlyPayment: selectedPayment.MonthlyPayment,
		TotalInterest:  selectedPayment.TotalInterest,
		TotalCost:      selectedPayment.TotalPayment,
	}
	if selectedConsumerInstallment > 0 {
		selectedOption.ConsumerLoanMonthlyPayment = selectedConsumerInstallment
		selectedOption.ConsumerLoanRate = consumerRate
		selectedOption.ConsumerLoanTerm = consumerTerm
	}

	logger.Debug(fmt.Sprintf("selected %s option with loan amount %.2f and monthly payment %.2f",
		method, selectedLoanAmount, selectedPayment.MonthlyPayment),
		zap.String("op", "results.Compute"),
	)

	dtiResult := affordability.CalculateDTI(totalIncome, selectedPayment.MonthlyPayment, monthlyDebts)

	collateralResult := affordability.ValidateCollateral(m.HomePrice, m.ParentPropertyValue, m.DownPayment, consumerLoanSelected)

	debtService := moneymath.FromFloat(monthlyDebts).Add(moneymath.FromFloat(selectedPayment.MonthlyPayment)).InexactFloat64()
	emergencyFund := affordability.CalculateEmergencyFund(
		input.Expenses.Fixed(), input.Expenses.Variable(), childCosts, debtService,
		input.Investment.EmergencyFundMonths)

	leftoverIncome := moneymath.FromFloat(totalIncome).
		Sub(moneymath.FromFloat(totalExpenses)).
		Sub(moneymath.FromFloat(childCosts)).
		Sub(moneymath.FromFloat(monthlyDebts)).
		Sub(moneymath.FromFloat(selectedPayment.MonthlyPayment)).
		InexactFloat64()
	investment := affordability.AllocateSurplus(leftoverIncome, input.Debts.ExistingSavings,
		emergencyFund.TargetAmount, input.Investment.ETFAllocation)

	// A selected consumer loan carries a fixed term and rate of its own,
	// so the stress test shocks only the standard mortgage and carries
	// the installment through unchanged.
	stressPrincipal := selectedLoanAmount
	if consumerLoanSelected {
		stressPrincipal = standardLoanAmount
	}
	stressResult := stresstest.Run(stresstest.Input{
		Principal:                stressPrincipal,
		AnnualRate:               effectiveRate,
		Years:                    m.LoanTerm,
		PrimaryIncome:            input.Income.PrimaryIncome,
		OtherIncome:              moneymath.FromFloat(input.Income.OtherIncome).Add(moneymath.FromFloat(input.Income.MonthlyBonuses())).InexactFloat64(),
		MonthlyDebts:             monthlyDebts,
		MonthlyExpenses:          moneymath.FromFloat(totalExpenses).Add(moneymath.FromFloat(childCosts)).InexactFloat64(),
		AdditionalMonthlyPayment: selectedConsumerInstallment,
	})

	// A fixed rate cannot increase under this product's assumptions, so
	// the rate-increase scenario aliases the baseline.
	isFixedRate := m.RateType != config.RateTypeVariable
	if isFixedRate {
		stressResult.RateIncrease = stressResult.Baseline
		stressResult.RateIncrease.Name = "Rate Increase (Fixed)"
	}

	amortization := mortgage.GenerateSchedule(selectedLoanAmount, effectiveRate, m.LoanTerm, m.HomePrice)

	bundle := &Bundle{
		EffectiveRate:      effectiveRate,
		TotalIncome:        totalIncome,
		TotalExpenses:      totalExpenses,
		ChildCosts:         childCosts,
		MonthlyDebts:       monthlyDebts,
		StandardOption:     standardOption,
		CollateralOption:   collateralOption,
		ConsumerLoanOption: consumerLoanOption,
		SelectedOption:     selectedOption,
		SelectedLoanAmount: selectedLoanAmount,
		DTI:                dtiResult,
		Collateral:         collateralResult,
		EmergencyFund:      emergencyFund,
		Investment:         investment,
		StressTest:         stressResult,
		Amortization:       amortization,
	}

	bundle.StressChart = stressChart(input, stressResult, isFixedRate, now)
	bundle.CashFlow = cashFlowProjection(input, projectionInputs{
		totalIncome:          totalIncome,
		totalExpenses:        totalExpenses,
		monthlyDebts:         monthlyDebts,
		selectedPayment:      selectedPayment.MonthlyPayment,
		consumerInstallment:  selectedConsumerInstallment,
		consumerLoanSelected: consumerLoanSelected,
		consumerTerm:         consumerTerm,
	}, now)

	return bundle
}
