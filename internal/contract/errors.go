package contract

import (
	"fmt"
	"sort"
	"strings"

	"github.com/creditlens/creditlens/schema"
)

// ConfigError reports a structurally invalid configuration value, such as
// category weights that do not sum to 1.0 or unordered scoring breakpoints.
// Configuration problems surface at load time, never during scoring.
type ConfigError struct {
	Field  string // The offending config field or section
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid configuration for %s: %s", e.Field, e.Reason)
}

// NewConfigError builds a ConfigError with a formatted reason.
func NewConfigError(field, format string, args ...any) *ConfigError {
	return &ConfigError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// MissingMetricError reports that a category could not be scored because
// one or more of its configured metrics were absent from the input.
type MissingMetricError struct {
	Category schema.Category
	Missing  []schema.MetricKey
}

func (e *MissingMetricError) Error() string {
	names := make([]string, len(e.Missing))
	for i, key := range e.Missing {
		names[i] = string(key)
	}
	sort.Strings(names)
	return fmt.Sprintf("cannot score category %s: missing %s",
		e.Category, strings.Join(names, ", "))
}
