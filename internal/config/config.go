// Package config defines the household snapshot structures and includes
// functions for loading, parsing, and validating them.
package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/jaskichee/mortgage-calculator/pkg/constants"
	"github.com/jaskichee/mortgage-calculator/pkg/moneymath"
)

// DateLayout is the format expected for dates in snapshot files.
const DateLayout = constants.DateLayout

// Resource methods for covering a down payment shortfall.
const (
	MethodNone         = "none"
	MethodCollateral   = "collateral"
	MethodConsumerLoan = "consumerLoan"
	MethodGuarantor    = "guarantor"
)

// Rate types
const (
	RateTypeFixed    = "fixed"
	RateTypeVariable = "variable"
)

// CalculatorInput is the fully-populated household snapshot the engine
// consumes. It is immutable per calculation call; the engine is a pure
// function of this structure and an injected "now".
type CalculatorInput struct {
	Income     HouseholdIncome       `json:"income" yaml:"income"`
	Expenses   HouseholdExpenses     `json:"expenses" yaml:"expenses"`
	Mortgage   MortgageTerms         `json:"mortgage" yaml:"mortgage"`
	Children   []Child               `json:"children" yaml:"children"`
	Debts      Debts                 `json:"debts" yaml:"debts"`
	Investment InvestmentPreferences `json:"investment" yaml:"investment"`
	Logging    LoggingConfig         `json:"-" yaml:"logging,omitempty"`
	Output     OutputConfig          `json:"-" yaml:"output,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv, json
}

// HouseholdIncome holds net monthly incomes and annual bonuses.
type HouseholdIncome struct {
	PrimaryIncome       float64 `json:"primaryIncome" yaml:"primaryIncome"`
	PrimaryBonuses      float64 `json:"primaryBonuses" yaml:"primaryBonuses"` // annual, e.g. vacation + holiday bonus
	OtherIncome         float64 `json:"otherIncome" yaml:"otherIncome"`
	OtherBonuses        float64 `json:"otherBonuses" yaml:"otherBonuses"` // annual
	WorkingMembersCount int     `json:"workingMembersCount" yaml:"workingMembersCount"`
}

// MonthlyBonuses spreads the annual bonuses over twelve months.
func (i HouseholdIncome) MonthlyBonuses() float64 {
	bonuses := moneymath.FromFloat(i.PrimaryBonuses).Add(moneymath.FromFloat(i.OtherBonuses))
	return bonuses.Div(moneymath.FromFloat(constants.MonthsPerYear)).InexactFloat64()
}

// TotalMonthlyIncome is all monthly income including prorated bonuses.
func (i HouseholdIncome) TotalMonthlyIncome() float64 {
	return moneymath.FromFloat(i.PrimaryIncome).
		Add(moneymath.FromFloat(i.OtherIncome)).
		Add(moneymath.FromFloat(i.MonthlyBonuses())).
		InexactFloat64()
}

// HouseholdExpenses holds monthly living expenses.
type HouseholdExpenses struct {
	Utilities      float64 `json:"utilities" yaml:"utilities"`
	Insurance      float64 `json:"insurance" yaml:"insurance"`
	Subscriptions  float64 `json:"subscriptions" yaml:"subscriptions"`
	Groceries      float64 `json:"groceries" yaml:"groceries"`
	Transportation float64 `json:"transportation" yaml:"transportation"`
	Entertainment  float64 `json:"entertainment" yaml:"entertainment"`
	Other          float64 `json:"other" yaml:"other"`

	// LifeInsuranceDuration is the years remaining on the insurance line
	// item; 0 means it runs indefinitely.
	LifeInsuranceDuration int `json:"lifeInsuranceDuration" yaml:"lifeInsuranceDuration"`
}

// Fixed returns the fixed portion of the monthly expenses.
func (e HouseholdExpenses) Fixed() float64 {
	return moneymath.FromFloat(e.Utilities).
		Add(moneymath.FromFloat(e.Insurance)).
		Add(moneymath.FromFloat(e.Subscriptions)).
		InexactFloat64()
}

// Variable returns the variable portion of the monthly expenses.
func (e HouseholdExpenses) Variable() float64 {
	return moneymath.FromFloat(e.Groceries).
		Add(moneymath.FromFloat(e.Transportation)).
		Add(moneymath.FromFloat(e.Entertainment)).
		Add(moneymath.FromFloat(e.Other)).
		InexactFloat64()
}

// Total returns all monthly expenses.
func (e HouseholdExpenses) Total() float64 {
	return moneymath.FromFloat(e.Fixed()).Add(moneymath.FromFloat(e.Variable())).InexactFloat64()
}

// MortgageTerms describes the desired mortgage.
type MortgageTerms struct {
	HomePrice   float64 `json:"homePrice" yaml:"homePrice"`
	DownPayment float64 `json:"downPayment" yaml:"downPayment"`

	RateType     string  `json:"rateType" yaml:"rateType"`         // fixed, variable
	InterestRate float64 `json:"interestRate" yaml:"interestRate"` // annual %, fixed-rate loans
	Euribor      float64 `json:"euribor" yaml:"euribor"`           // variable-rate component
	BankMargin   float64 `json:"bankMargin" yaml:"bankMargin"`     // variable-rate component

	LoanTerm int `json:"loanTerm" yaml:"loanTerm"` // years

	// AdditionalResourceMethod covers a down payment shortfall: none,
	// collateral, consumerLoan, or guarantor. UseCollateral is the legacy
	// boolean alias for the collateral method; the enum takes precedence.
	AdditionalResourceMethod string `json:"additionalResourceMethod" yaml:"additionalResourceMethod"`
	UseCollateral            bool   `json:"useCollateral" yaml:"useCollateral"`

	ParentPropertyValue      float64 `json:"parentPropertyValue" yaml:"parentPropertyValue"`
	ConsumerLoanInterestRate float64 `json:"consumerLoanInterestRate" yaml:"consumerLoanInterestRate"`
	ConsumerLoanTerm         int     `json:"consumerLoanTerm" yaml:"consumerLoanTerm"` // years
}

// ResourceMethod resolves the effective additional resource method,
// honoring the legacy useCollateral flag when the enum is unset.
func (m MortgageTerms) ResourceMethod() string {
	if m.AdditionalResourceMethod != "" {
		return m.AdditionalResourceMethod
	}
	if m.UseCollateral {
		return MethodCollateral
	}
	return MethodNone
}

// EffectiveRate is the annual interest rate in percent: the fixed rate,
// or euribor plus the bank margin for variable-rate loans.
func (m MortgageTerms) EffectiveRate() float64 {
	if m.RateType == RateTypeVariable {
		return moneymath.FromFloat(m.Euribor).Add(moneymath.FromFloat(m.BankMargin)).InexactFloat64()
	}
	return m.InterestRate
}

// LoanToValuePercent is (homePrice - downPayment) / homePrice * 100.
func (m MortgageTerms) LoanToValuePercent() float64 {
	home := moneymath.FromFloat(m.HomePrice)
	loan := home.Sub(moneymath.FromFloat(m.DownPayment))
	return moneymath.Ratio(loan, home).InexactFloat64()
}

// Child holds one child's birth date. Date is populated by ParseDates.
type Child struct {
	BirthDate string    `json:"birthDate" yaml:"birthDate"`
	Date      time.Time `yaml:"-" json:"-"`
}

// Debts holds recurring monthly debt obligations and current savings.
type Debts struct {
	StudentLoans float64 `json:"studentLoans" yaml:"studentLoans"`
	CreditCards  float64 `json:"creditCards" yaml:"creditCards"`
	CarLoans     float64 `json:"carLoans" yaml:"carLoans"`
	OtherLoans   float64 `json:"otherLoans" yaml:"otherLoans"`

	// CarLoanEndDate marks when the car loan obligation expires; past it
	// the car loan is excluded from projections. CarLoanEnd is populated
	// by ParseDates.
	CarLoanEndDate string     `json:"carLoanEndDate" yaml:"carLoanEndDate"`
	CarLoanEnd     *time.Time `yaml:"-" json:"-"`

	ExistingSavings float64 `json:"existingSavings" yaml:"existingSavings"`
}

// TotalMonthly returns the sum of all recurring monthly debt payments.
func (d Debts) TotalMonthly() float64 {
	return moneymath.FromFloat(d.StudentLoans).
		Add(moneymath.FromFloat(d.CreditCards)).
		Add(moneymath.FromFloat(d.CarLoans)).
		Add(moneymath.FromFloat(d.OtherLoans)).
		InexactFloat64()
}

// InvestmentPreferences controls surplus allocation.
type InvestmentPreferences struct {
	EmergencyFundMonths int     `json:"emergencyFundMonths" yaml:"emergencyFundMonths"` // 3-6
	ETFAllocation       float64 `json:"etfAllocation" yaml:"etfAllocation"`             // % of post-fund surplus
}

// LoadSnapshot takes a file path as input and loads the YAML-formatted
// household snapshot there.
func LoadSnapshot(path string) (*CalculatorInput, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.AutomaticEnv()

	v.SetConfigType("yml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading snapshot file, %s", err)
	}

	var input CalculatorInput
	if err := v.Unmarshal(&input); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	return &input, nil
}

// ParseDates parses every date string in the snapshot into a time.Time
// stored back into the corresponding struct.
func (input *CalculatorInput) ParseDates() error {
	for i := range input.Children {
		t, err := time.Parse(DateLayout, input.Children[i].BirthDate)
		if err != nil {
			return fmt.Errorf("invalid child birth date %q: %w", input.Children[i].BirthDate, err)
		}
		input.Children[i].Date = t
	}

	if input.Debts.CarLoanEndDate != "" {
		t, err := time.Parse(DateLayout, input.Debts.CarLoanEndDate)
		if err != nil {
			return fmt.Errorf("invalid car loan end date %q: %w", input.Debts.CarLoanEndDate, err)
		}
		input.Debts.CarLoanEnd = &t
	}

	return nil
}

// BirthDates collects the parsed birth dates of all children.
func (input *CalculatorInput) BirthDates() []time.Time {
	dates := make([]time.Time, len(input.Children))
	for i, child := range input.Children {
		dates[i] = child.Date
	}
	return dates
}
