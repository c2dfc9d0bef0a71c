// Package error defines domain-specific errors for the calculation engine.
package error

import "errors"

// Account domain errors.
var (
	// ErrInvalidAccount is returned when an account record fails structural
	// validation (unknown type, empty name).
	ErrInvalidAccount = errors.New("invalid account record")
)

// Account validation codes.
const (
	ErrCodeInvalidAccount ValidationCode = "ACC-010001"
)
