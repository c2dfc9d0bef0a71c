package goal

import (
	"time"

	"github.com/pocketbudget/engine/config"
	"github.com/pocketbudget/engine/domain/entity"
)

// Status classifies a goal's pace with the default tuning.
func Status(g entity.Goal, today time.Time) entity.GoalStatus {
	return StatusWithConfig(g, today, config.Default().Goals)
}

// StatusWithConfig classifies a goal's pace toward its target:
//
//   - completed when the target is reached, regardless of dates
//   - overdue when a target date exists and has passed
//   - behind when the actual daily saving pace since the goal was created is
//     materially under the pace required to finish by the target date
//   - on_track otherwise; a goal without a target date is on_track until it
//     completes
func StatusWithConfig(g entity.Goal, today time.Time, cfg config.Goals) entity.GoalStatus {
	if g.CurrentAmount >= g.TargetAmount {
		return entity.GoalStatusCompleted
	}
	if g.TargetDate == nil {
		return entity.GoalStatusOnTrack
	}

	target := *g.TargetDate
	if today.After(target) {
		return entity.GoalStatusOverdue
	}

	daysLeft := wholeDaysBetween(today, target)
	if daysLeft < 1 {
		daysLeft = 1
	}
	daysElapsed := wholeDaysBetween(g.CreatedAt, today)
	if daysElapsed < 1 {
		// Too new to judge pace.
		return entity.GoalStatusOnTrack
	}

	remaining := g.TargetAmount - g.CurrentAmount
	requiredDaily := float64(remaining) / float64(daysLeft)
	actualDaily := float64(g.CurrentAmount) / float64(daysElapsed)
	if actualDaily < requiredDaily*cfg.BehindPaceRatio {
		return entity.GoalStatusBehind
	}
	return entity.GoalStatusOnTrack
}

// wholeDaysBetween returns the number of whole days from a to b, negative
// when b precedes a.
func wholeDaysBetween(a, b time.Time) int {
	return int(b.Sub(a).Hours() / 24)
}
