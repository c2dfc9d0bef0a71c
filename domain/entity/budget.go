// Package entity defines the core business entities for the calculation engine.
package entity

import (
	"github.com/google/uuid"
)

// TargetType represents the kind of target attached to a budget category.
type TargetType string

const (
	TargetTypeMonthly     TargetType = "monthly"
	TargetTypeSavingsGoal TargetType = "savings_goal"
)

// CategoryTarget is an optional per-category funding target.
type CategoryTarget struct {
	Amount int64      `validate:"gt=0"`
	Type   TargetType `validate:"required,oneof=monthly savings_goal"`
}

// Category is a single envelope within a category group. A category without
// a target is a pure tracking bucket.
type Category struct {
	ID     uuid.UUID
	Name   string `validate:"required"`
	Target *CategoryTarget
}

// CategoryGroup is an ordered grouping of categories. Declaration order is
// significant for rendering and is preserved by the budget engine.
type CategoryGroup struct {
	ID         uuid.UUID
	Name       string `validate:"required"`
	Categories []Category
}

// MonthBudgetInput is the already-queried snapshot the budget engine consumes
// for one month. Missing map entries mean zero, never an error. Amounts are
// integer cents; negative activity is spend, positive is refund/income posted
// to the category.
type MonthBudgetInput struct {
	Month              string `validate:"required"`
	Groups             []CategoryGroup
	Allocations        map[uuid.UUID]int64
	Activity           map[uuid.UUID]int64
	CarryForwards      map[uuid.UUID]int64
	TotalIncome        int64
	OverspentLastMonth int64
}
