// Package validation provides validation helpers for CLI options.
package validation

import (
	"fmt"

	"github.com/jaskichee/mortgage-calculator/pkg/constants"
)

// ValidateOutputFormat checks that the requested output format is one of
// the supported formats.
func ValidateOutputFormat(format string) error {
	switch format {
	case constants.OutputFormatPretty, constants.OutputFormatCSV, constants.OutputFormatJSON:
		return nil
	default:
		return fmt.Errorf("unknown output format %s; expected %s, %s, or %s",
			format, constants.OutputFormatPretty, constants.OutputFormatCSV, constants.OutputFormatJSON)
	}
}
