package types

import "fmt"

// ValidationError reports a job requirement or weight configuration that
// cannot be scored. It is fatal for the scoring call that received it; the
// caller surfaces it rather than producing a report.
type ValidationError struct {
	Message string
	Field   string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error in %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}
