// Package datetime provides date utility functions.
package datetime

import (
	"time"

	"github.com/jaskichee/mortgage-calculator/pkg/constants"
)

const (
	// DateLayout is the format expected in snapshot files and is also the
	// output date format.
	DateLayout = constants.DateLayout
)

// MustParseDate parses a date string using DateLayout and panics on
// error. This is intended for use in tests where the date string is
// known to be valid.
func MustParseDate(dateStr string) time.Time {
	t, err := time.Parse(DateLayout, dateStr)
	if err != nil {
		panic(err)
	}
	return t
}

// MonthsBetween returns the number of whole months from one date to
// another, truncated toward zero. A partial month does not count.
func MonthsBetween(from, to time.Time) int {
	months := (to.Year()-from.Year())*constants.MonthsPerYear + int(to.Month()) - int(from.Month())
	switch {
	case months > 0 && from.AddDate(0, months, 0).After(to):
		months--
	case months < 0 && from.AddDate(0, months, 0).Before(to):
		months++
	}
	return months
}

// YearsBetween returns the number of whole years from one date to
// another, truncated toward zero.
func YearsBetween(from, to time.Time) int {
	years := to.Year() - from.Year()
	switch {
	case years > 0 && from.AddDate(years, 0, 0).After(to):
		years--
	case years < 0 && from.AddDate(years, 0, 0).Before(to):
		years++
	}
	return years
}
