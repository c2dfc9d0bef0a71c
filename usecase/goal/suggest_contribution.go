package goal

import (
	"math"
	"time"

	"github.com/pocketbudget/engine/domain/entity"
)

// avgDaysPerMonth is the mean month length over the leap cycle.
const avgDaysPerMonth = 30.4375

// SuggestMonthlyContribution returns the ceiling of remaining/monthsRemaining
// in cents when the goal has a strictly future target date. It returns nil
// when no sensible monthly figure can be suggested: the goal has no target
// date, is already complete, or its target date has passed.
//
// Months remaining is ceil(daysUntilTarget / 30.4375), so any future target
// date yields at least one month; this avoids calendar off-by-ones near
// month boundaries.
func SuggestMonthlyContribution(g entity.Goal, today time.Time) *int64 {
	if g.TargetDate == nil {
		return nil
	}
	remaining := g.TargetAmount - g.CurrentAmount
	if remaining <= 0 {
		return nil
	}
	if !g.TargetDate.After(today) {
		return nil
	}

	days := g.TargetDate.Sub(today).Hours() / 24
	months := int64(math.Ceil(days / avgDaysPerMonth))
	if months < 1 {
		months = 1
	}

	suggestion := ceilDiv(remaining, months)
	return &suggestion
}

// ceilDiv divides positive cents rounding up.
func ceilDiv(amount, parts int64) int64 {
	return (amount + parts - 1) / parts
}
