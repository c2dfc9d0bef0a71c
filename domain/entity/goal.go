// Package entity defines the core business entities for the calculation engine.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// GoalStatus classifies a savings goal's pace toward its target.
type GoalStatus string

const (
	GoalStatusCompleted GoalStatus = "completed"
	GoalStatusOnTrack   GoalStatus = "on_track"
	GoalStatusBehind    GoalStatus = "behind"
	GoalStatusOverdue   GoalStatus = "overdue"
)

// Goal is a savings goal. Amounts are integer cents. MonthlyContribution is
// informational only; allocate/deallocate operations at the storage layer
// adjust CurrentAmount.
type Goal struct {
	ID                  uuid.UUID
	Name                string `validate:"required"`
	TargetAmount        int64  `validate:"gt=0"`
	CurrentAmount       int64  `validate:"gte=0"`
	TargetDate          *time.Time
	MonthlyContribution int64
	CreatedAt           time.Time
}

// NewGoal creates a new Goal entity stamped with the current time.
func NewGoal(name string, targetAmount int64, targetDate *time.Time) *Goal {
	return &Goal{
		ID:           uuid.New(),
		Name:         name,
		TargetAmount: targetAmount,
		TargetDate:   targetDate,
		CreatedAt:    time.Now().UTC(),
	}
}
