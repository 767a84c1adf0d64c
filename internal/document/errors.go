package document

import "fmt"

// ExtractionError reports a resume file that could not be converted to text:
// unreadable, corrupt, or an unsupported binary. It is fatal for that one
// resume only; batch processing records it and continues.
type ExtractionError struct {
	Path    string
	Message string
	Cause   error
}

func (e *ExtractionError) Error() string {
	msg := e.Message
	if e.Path != "" {
		msg = fmt.Sprintf("%s: %s", e.Path, e.Message)
	}
	if e.Cause != nil {
		return fmt.Sprintf("extraction failed: %s: %v", msg, e.Cause)
	}
	return fmt.Sprintf("extraction failed: %s", msg)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}
