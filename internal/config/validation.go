package config

import (
	"fmt"

	"github.com/jaskichee/mortgage-calculator/pkg/constants"
)

// ValidateInput performs general validation of the snapshot and returns
// warnings. The engine still computes over a snapshot with warnings;
// structural validation belongs to the form layer, and degenerate
// numbers resolve to zero results.
func (input *CalculatorInput) ValidateInput() []string {
	var warnings []string

	if input.Income.PrimaryIncome <= 0 {
		warnings = append(warnings, "primary income is not positive; DTI and allocation results will be degenerate")
	}
	if input.Income.WorkingMembersCount < 1 {
		warnings = append(warnings, "workingMembersCount should be at least 1")
	}

	m := input.Mortgage
	if m.HomePrice <= 0 {
		warnings = append(warnings, "home price is not positive; mortgage results will be all zero")
	}
	if m.DownPayment < 0 || m.DownPayment > m.HomePrice {
		warnings = append(warnings, "down payment should be between 0 and the home price")
	}
	if m.LoanTerm < 5 || m.LoanTerm > 30 {
		warnings = append(warnings, fmt.Sprintf("loan term %d is outside the supported 5-30 year range", m.LoanTerm))
	}
	if m.RateType != RateTypeFixed && m.RateType != RateTypeVariable {
		warnings = append(warnings, fmt.Sprintf("unknown rate type %q; treating as fixed", m.RateType))
	}
	if m.RateType == RateTypeVariable && m.Euribor == 0 && m.BankMargin == 0 {
		warnings = append(warnings, "variable rate selected but euribor and bank margin are both zero")
	}

	if m.LoanToValuePercent() > constants.MaxLTVPercent && m.ResourceMethod() == MethodNone {
		warnings = append(warnings, fmt.Sprintf("loan-to-value %.1f%% exceeds %.0f%% but no additional resource method is selected",
			m.LoanToValuePercent(), constants.MaxLTVPercent))
	}

	switch m.ResourceMethod() {
	case MethodCollateral, MethodGuarantor:
		if m.ParentPropertyValue <= 0 {
			warnings = append(warnings, "collateral/guarantor method selected but parent property value is not positive")
		}
	case MethodConsumerLoan:
		if m.ConsumerLoanInterestRate <= 0 || m.ConsumerLoanTerm <= 0 {
			warnings = append(warnings, fmt.Sprintf("consumer loan rate/term not set; defaulting to %.1f%% over %d years",
				constants.DefaultConsumerLoanRate, constants.DefaultConsumerLoanTermYears))
		}
	}

	if input.Debts.CarLoans > 0 && input.Debts.CarLoanEndDate == "" {
		warnings = append(warnings, "car loan payment is set without an end date; projections will never expire it")
	}

	inv := input.Investment
	if inv.EmergencyFundMonths < 3 || inv.EmergencyFundMonths > 6 {
		warnings = append(warnings, fmt.Sprintf("emergency fund months %d is outside the recommended 3-6 range", inv.EmergencyFundMonths))
	}
	if inv.ETFAllocation < 0 || inv.ETFAllocation > 100 {
		warnings = append(warnings, fmt.Sprintf("ETF allocation %.1f%% is outside 0-100", inv.ETFAllocation))
	}

	return warnings
}
