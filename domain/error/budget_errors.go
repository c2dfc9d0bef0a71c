// Package error defines domain-specific errors for the calculation engine.
package error

import "errors"

// Budget domain errors.
var (
	// ErrInvalidMonthFormat is returned when a month string is not zero-padded YYYY-MM.
	ErrInvalidMonthFormat = errors.New("month must be formatted YYYY-MM")

	// ErrUnknownCategory is returned when an allocation, activity, or carry-forward
	// entry references a category not declared in any group.
	ErrUnknownCategory = errors.New("amount references an undeclared category")

	// ErrInvalidTarget is returned when a category target has a non-positive amount.
	ErrInvalidTarget = errors.New("category target amount must be positive")
)

// Budget validation codes.
const (
	ErrCodeInvalidMonthFormat ValidationCode = "BDG-010001"
	ErrCodeUnknownCategory    ValidationCode = "BDG-010002"
	ErrCodeInvalidTarget      ValidationCode = "BDG-010003"
)
