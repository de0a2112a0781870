package schema

import (
	"fmt"
	"strings"
)

// corporateSuffixes are trimmed from institution names for compact display.
var corporateSuffixes = []string{
	" & Co.",
	" & Company",
	" Corporation",
	" Group Inc.",
	" Inc.",
	" Group",
}

// ShortName trims common corporate suffixes for table display.
// "JPMorgan Chase & Co." becomes "JPMorgan Chase".
func ShortName(name string) string {
	trimmed := strings.TrimSpace(name)
	for _, suffix := range corporateSuffixes {
		if strings.HasSuffix(trimmed, suffix) {
			return strings.TrimSuffix(trimmed, suffix)
		}
	}
	return trimmed
}

// FormatAssets formats a dollar amount in millions as a compact string,
// e.g. 2500000 -> "$2.5T", 850000 -> "$850.0B", 500 -> "$500M".
func FormatAssets(millions float64) string {
	switch {
	case millions >= 1e6:
		return fmt.Sprintf("$%.1fT", millions/1e6)
	case millions >= 1e3:
		return fmt.Sprintf("$%.1fB", millions/1e3)
	default:
		return fmt.Sprintf("$%.0fM", millions)
	}
}

// FormatScore renders a score with one decimal, the precision used across
// all outputs.
func FormatScore(score float64) string {
	return fmt.Sprintf("%.1f", score)
}
