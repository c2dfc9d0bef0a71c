// Package goal implements savings-goal progress, status classification, and
// contribution suggestions.
package goal

import (
	"math"

	"github.com/pocketbudget/engine/domain/entity"
)

// ProgressResult reports how far a goal has progressed toward its target.
type ProgressResult struct {
	CurrentAmount int64 `json:"current_amount"`
	TargetAmount  int64 `json:"target_amount"`
	Percentage    int   `json:"percentage"`
}

// Progress computes goal completion as a whole percentage capped at 100.
// A goal with a zero target reports 0% rather than dividing; a corrupt
// single record must not crash an aggregate report.
func Progress(g entity.Goal) ProgressResult {
	return ProgressResult{
		CurrentAmount: g.CurrentAmount,
		TargetAmount:  g.TargetAmount,
		Percentage:    roundPercent(g.CurrentAmount, g.TargetAmount),
	}
}

// roundPercent returns round(part/whole × 100) clamped to 0-100, with 0 for
// a non-positive whole.
func roundPercent(part, whole int64) int {
	if whole <= 0 || part <= 0 {
		return 0
	}
	if part >= whole {
		return 100
	}
	return int(math.Round(float64(part) / float64(whole) * 100))
}
