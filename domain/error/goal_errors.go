// Package error defines domain-specific errors for the calculation engine.
package error

import "errors"

// Goal domain errors.
var (
	// ErrInvalidGoal is returned when a goal record fails structural validation
	// (non-positive target, negative current amount).
	ErrInvalidGoal = errors.New("invalid goal record")
)

// Goal validation codes.
const (
	ErrCodeInvalidGoal ValidationCode = "GOL-010001"
)
