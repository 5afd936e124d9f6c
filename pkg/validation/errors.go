package validation

import "fmt"

// RuleError represents a single failed rule.
type RuleError struct {
	Property string // Style property name
	Message  string // Rule message
	Value    any    // The value that failed validation
}

func (e *RuleError) Error() string {
	return fmt.Sprintf("%s: %s", e.Property, e.Message)
}

// AggregateError represents multiple rule failures.
type AggregateError struct {
	Errors []error
}

func (e *AggregateError) Error() string {
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	msg := fmt.Sprintf("%d validation errors:\n", len(e.Errors))
	for i, err := range e.Errors {
		msg += fmt.Sprintf("  %d. %s\n", i+1, err.Error())
	}
	return msg
}

// RuleErrors returns all rule failures if err is an AggregateError.
// Otherwise returns nil.
func RuleErrors(err error) []error {
	if aggr, ok := err.(*AggregateError); ok {
		return aggr.Errors
	}
	return nil
}
