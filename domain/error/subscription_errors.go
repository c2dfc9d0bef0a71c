// Package error defines domain-specific errors for the calculation engine.
package error

import "errors"

// Subscription domain errors.
var (
	// ErrMissingCustomDays is returned when a custom billing cycle has no
	// positive customDays value.
	ErrMissingCustomDays = errors.New("custom billing cycle requires customDays")

	// ErrUnexpectedCustomDays is returned when customDays is set on a
	// non-custom billing cycle.
	ErrUnexpectedCustomDays = errors.New("customDays is only valid for the custom billing cycle")

	// ErrInvalidSubscription is returned when a subscription record fails
	// structural validation.
	ErrInvalidSubscription = errors.New("invalid subscription record")
)

// Subscription validation codes.
const (
	ErrCodeMissingCustomDays    ValidationCode = "SUB-010001"
	ErrCodeUnexpectedCustomDays ValidationCode = "SUB-010002"
	ErrCodeInvalidSubscription  ValidationCode = "SUB-010003"
)
