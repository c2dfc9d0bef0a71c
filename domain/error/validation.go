// Package error defines domain-specific errors for the calculation engine.
package error

// ValidationCode identifies a caller-contract violation.
// Format: AAA-01YYYY where AAA is the area and YYYY the specific error.
type ValidationCode string

// ValidationError represents a caller-contract violation with a stable code.
// Engines never raise these themselves; the validate package returns them so
// callers can reject malformed records before invoking an engine.
type ValidationError struct {
	Code    ValidationCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a new ValidationError with the given code and message.
func NewValidationError(code ValidationCode, message string, err error) *ValidationError {
	return &ValidationError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
