// Package output provides utilities for formatting and displaying
// results bundles.
package output

import (
	"encoding/json"
	"fmt"
	"os"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jaskichee/mortgage-calculator/internal/results"
	"github.com/jaskichee/mortgage-calculator/pkg/stresstest"
)

// PrettyFormat outputs a human-readable summary of the results bundle.
func PrettyFormat(bundle *results.Bundle) {
	p := message.NewPrinter(language.English)

	fmt.Printf("--- Mortgage options ---\n")
	printOption(p, bundle.StandardOption)
	printOption(p, bundle.CollateralOption)
	if bundle.ConsumerLoanOption != nil {
		printOption(p, *bundle.ConsumerLoanOption)
	}
	printOption(p, bundle.SelectedOption)

	fmt.Printf("\n--- Affordability ---\n")
	_, _ = p.Printf("Effective rate: %.2f%%\n", bundle.EffectiveRate)
	_, _ = p.Printf("Total monthly income: €%.2f | expenses: €%.2f | child costs: €%.2f | debts: €%.2f\n",
		bundle.TotalIncome, bundle.TotalExpenses, bundle.ChildCosts, bundle.MonthlyDebts)
	_, _ = p.Printf("Housing DTI: %.2f%% (valid: %t) | Total DTI: %.2f%% (valid: %t) | max payment: €%.2f\n",
		bundle.DTI.HousingDTI, bundle.DTI.IsHousingDTIValid,
		bundle.DTI.TotalDTI, bundle.DTI.IsTotalDTIValid,
		bundle.DTI.MaxAllowedMonthlyPayment)
	_, _ = p.Printf("Collateral: valid=%t required=€%.2f available=€%.2f shortfall=€%.2f\n",
		bundle.Collateral.IsValid, bundle.Collateral.RequiredCollateralValue,
		bundle.Collateral.AvailableCollateralValue, bundle.Collateral.Shortfall)
	_, _ = p.Printf("Emergency fund target: €%.2f (%d months of €%.2f)\n",
		bundle.EmergencyFund.TargetAmount, bundle.EmergencyFund.MonthsOfExpenses,
		bundle.EmergencyFund.MonthlyEssentialExpenses)
	_, _ = p.Printf("Allocation: fund €%.2f | ETF €%.2f | savings €%.2f (funded: %t)\n",
		bundle.Investment.MonthlyToEmergencyFund, bundle.Investment.MonthlyToETF,
		bundle.Investment.MonthlyToSavings, bundle.Investment.IsEmergencyFundFunded)

	fmt.Printf("\n--- Stress test ---\n")
	printScenario(p, bundle.StressTest.Baseline)
	printScenario(p, bundle.StressTest.RateIncrease)
	printScenario(p, bundle.StressTest.JobLoss)
}

func printOption(p *message.Printer, option results.MortgageOption) {
	_, _ = p.Printf("%-22s | loan €%.2f over %d years | monthly €%.2f | interest €%.2f | total €%.2f\n",
		option.Type, option.LoanAmount, option.LoanTerm,
		option.MonthlyPayment, option.TotalInterest, option.TotalCost)
}

func printScenario(p *message.Printer, s stresstest.ScenarioResult) {
	_, _ = p.Printf("%-22s | payment €%.2f | DTI %.2f%% | surplus €%.2f | affordable: %t\n",
		s.Name, s.MonthlyPayment, s.TotalDTI, s.MonthlySurplus, s.IsAffordable)
}

// CsvFormat outputs the per-year cash-flow projection in
// comma-separated value format.
func CsvFormat(bundle *results.Bundle) {
	fmt.Printf("\"year\",\"income\",\"expenses\",\"debts\",\"mortgage\",\"surplus\"\n")
	for _, row := range bundle.CashFlow {
		fmt.Printf("\"%d\",\"%.2f\",\"%.2f\",\"%.2f\",\"%.2f\",\"%.2f\"\n",
			row.Year, row.Income, row.Expenses, row.Debts, row.Mortgage, row.Surplus)
	}
}

// JSONFormat outputs the entire bundle as indented JSON.
func JSONFormat(bundle *results.Bundle) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(bundle)
}
