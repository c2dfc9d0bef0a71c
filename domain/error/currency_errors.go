// Package error defines domain-specific errors for the calculation engine.
package error

import "errors"

// Currency domain errors.
var (
	// ErrInvalidRate is returned when an exchange-rate string cannot be parsed
	// or is not positive.
	ErrInvalidRate = errors.New("exchange rate must be a positive decimal")
)

// Currency validation codes.
const (
	ErrCodeInvalidRate ValidationCode = "CUR-010001"
)
