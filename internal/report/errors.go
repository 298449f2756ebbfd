// Package report provides the report filter, date-window and name filtering,
// summary statistics, and the deterministic output filename grammar.
package report

import "fmt"

// ConfigError represents invalid filter input (bad date, regex, or phase).
// It is always raised before any network call is attempted.
type ConfigError struct {
	Field string
	Value string
	Cause error
}

func (e *ConfigError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("config error: invalid %s %q: %v", e.Field, e.Value, e.Cause)
	}
	return fmt.Sprintf("config error: invalid %s %q", e.Field, e.Value)
}

func (e *ConfigError) Unwrap() error {
	return e.Cause
}
