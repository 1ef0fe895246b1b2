// Package constants provides shared constants for the mortgage calculator.
package constants

// DateLayout is the format expected for dates in snapshot files (birth
// dates, car loan end dates) and is also the output date format.
const DateLayout = "2006-01-02"

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0
)

// Slovenian banking rules applied by the affordability calculators.
const (
	// MaxDTIPercent is the regulatory debt-to-income ceiling; ratios must
	// stay strictly below it to be valid.
	MaxDTIPercent = 40.0

	// MaxLTVPercent is the maximum loan-to-value ratio banks finance
	// without additional resources.
	MaxLTVPercent = 80.0

	// CollateralLTVPercent is the share of a collateral property's value
	// banks accept as security.
	CollateralLTVPercent = 80.0

	// MinDownPaymentPercent is the down payment required when no
	// collateral backs the loan.
	MinDownPaymentPercent = 20.0
)

// Stress test parameters
const (
	// RateIncreaseOffset is the fixed percentage-point shock applied in
	// the rate-increase scenario.
	RateIncreaseOffset = 2.0
)

// Consumer loan defaults used when the snapshot omits them.
const (
	DefaultConsumerLoanRate      = 6.5
	DefaultConsumerLoanTermYears = 10
)

// Projection horizons
const (
	// StressChartYears is the horizon of the cumulative stress projection.
	StressChartYears = 6
)

// ChildCostBracket maps a child age range to an average monthly cost.
type ChildCostBracket struct {
	Label       string
	MaxAge      int // inclusive upper bound; -1 means open-ended
	MonthlyCost float64
}

// ChildCostsSlovenia is the age-bracket table of average monthly child
// costs in EUR. Brackets are evaluated in order; the first bracket whose
// MaxAge is >= the child's age applies.
var ChildCostsSlovenia = []ChildCostBracket{
	{Label: "0-3", MaxAge: 3, MonthlyCost: 225},
	{Label: "4-6", MaxAge: 6, MonthlyCost: 200},
	{Label: "7-12", MaxAge: 12, MonthlyCost: 250},
	{Label: "13-18", MaxAge: 18, MonthlyCost: 315},
	{Label: "18-24", MaxAge: 24, MonthlyCost: 425},
	{Label: "25+", MaxAge: -1, MonthlyCost: 0},
}

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"

	// OutputFormatJSON is the JSON output format
	OutputFormatJSON = "json"
)

// Configuration file constants
const (
	// DefaultSnapshotFile is the default snapshot file name
	DefaultSnapshotFile = "snapshot.yaml"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address
	DefaultServerAddress = ":8080"

	// DefaultMaxBodySizeBytes is the default maximum request body size (256 KB)
	DefaultMaxBodySizeBytes int64 = 256 * 1024
)
