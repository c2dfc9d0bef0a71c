// Package budget implements the envelope month-budget calculation.
package budget

import (
	"math"

	"github.com/google/uuid"

	"github.com/pocketbudget/engine/domain/entity"
)

// CategoryState is the derived state of one category for the month.
type CategoryState struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Allocated    int64     `json:"allocated"`
	Activity     int64     `json:"activity"`
	CarryForward int64     `json:"carry_forward"`
	Available    int64     `json:"available"`
	// TargetProgress is a whole percentage 0-100, nil when the category has
	// no target.
	TargetProgress *int `json:"target_progress,omitempty"`
}

// GroupState is the derived state of one category group for the month.
type GroupState struct {
	ID         uuid.UUID       `json:"id"`
	Name       string          `json:"name"`
	Available  int64           `json:"available"`
	Categories []CategoryState `json:"categories"`
}

// MonthBudgetState is the immutable derived budget state for one month.
type MonthBudgetState struct {
	Month          string       `json:"month"`
	Groups         []GroupState `json:"groups"`
	ReadyToAssign  int64        `json:"ready_to_assign"`
	TotalAllocated int64        `json:"total_allocated"`
	TotalActivity  int64        `json:"total_activity"`
	TotalOverspent int64        `json:"total_overspent"`
}

// Calculate computes the derived budget state for one month. It is a pure
// total function: missing allocation/activity/carry-forward entries are
// treated as zero, group and category order is preserved from the input, and
// the input is never mutated. A category referencing amounts it does not own
// is a caller bug, not a recoverable error (see the validate package).
func Calculate(input entity.MonthBudgetInput) MonthBudgetState {
	state := MonthBudgetState{
		Month:  input.Month,
		Groups: make([]GroupState, 0, len(input.Groups)),
	}

	for _, group := range input.Groups {
		gs := GroupState{
			ID:         group.ID,
			Name:       group.Name,
			Categories: make([]CategoryState, 0, len(group.Categories)),
		}

		for _, category := range group.Categories {
			allocated := centsAt(input.Allocations, category.ID)
			activity := centsAt(input.Activity, category.ID)
			carry := centsAt(input.CarryForwards, category.ID)
			available := allocated + carry + activity

			gs.Categories = append(gs.Categories, CategoryState{
				ID:             category.ID,
				Name:           category.Name,
				Allocated:      allocated,
				Activity:       activity,
				CarryForward:   carry,
				Available:      available,
				TargetProgress: targetProgress(category.Target, activity, available),
			})

			gs.Available += available
			state.TotalAllocated += allocated
			state.TotalActivity += activity
			if available < 0 {
				state.TotalOverspent += -available
			}
		}

		state.Groups = append(state.Groups, gs)
	}

	state.ReadyToAssign = input.TotalIncome - state.TotalAllocated - input.OverspentLastMonth
	return state
}

// centsAt reads a cent amount from a lookup map, treating a missing entry as
// zero. All engine map access goes through here so absence never panics and
// never differs from an explicit zero.
func centsAt(amounts map[uuid.UUID]int64, id uuid.UUID) int64 {
	return amounts[id]
}

// targetProgress computes the whole-percentage progress toward a category
// target. Monthly targets measure spend (absolute activity) against the
// target; savings-goal targets measure the accumulated available balance.
func targetProgress(target *entity.CategoryTarget, activity, available int64) *int {
	if target == nil || target.Amount <= 0 {
		return nil
	}

	var progressed int64
	switch target.Type {
	case entity.TargetTypeSavingsGoal:
		progressed = available
	default:
		progressed = activity
		if progressed < 0 {
			progressed = -progressed
		}
	}

	p := roundPercent(progressed, target.Amount)
	return &p
}

// roundPercent returns round(part/whole × 100) clamped to 0-100. A zero or
// negative whole reports 0 rather than dividing.
func roundPercent(part, whole int64) int {
	if whole <= 0 || part <= 0 {
		return 0
	}
	if part >= whole {
		return 100
	}
	return int(math.Round(float64(part) / float64(whole) * 100))
}
