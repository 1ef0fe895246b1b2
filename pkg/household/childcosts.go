// Package household provides child age and cost calculations.
package household

import (
	"time"

	"github.com/jaskichee/mortgage-calculator/pkg/constants"
	"github.com/jaskichee/mortgage-calculator/pkg/datetime"
)

// AgeAt returns a child's age in whole years at the given date.
func AgeAt(birthDate, at time.Time) int {
	return datetime.YearsBetween(birthDate, at)
}

// ChildCost looks up the monthly cost for a child of the given age in
// the Slovenian age-bracket table. Negative ages (unborn children) cost
// nothing.
func ChildCost(age int) float64 {
	if age < 0 {
		return 0
	}
	for _, bracket := range constants.ChildCostsSlovenia {
		if bracket.MaxAge < 0 || age <= bracket.MaxAge {
			return bracket.MonthlyCost
		}
	}
	return 0
}

// TotalChildCosts sums the monthly costs of all children given their
// birth dates, with ages taken at the given date.
func TotalChildCosts(birthDates []time.Time, at time.Time) float64 {
	total := 0.0
	for _, birthDate := range birthDates {
		total += ChildCost(AgeAt(birthDate, at))
	}
	return total
}
