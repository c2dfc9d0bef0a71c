package subscription

import (
	"sort"
	"time"

	"github.com/pocketbudget/engine/domain/entity"
)

// PriceChangeSummary describes how a subscription's price has moved across
// its recorded history.
type PriceChangeSummary struct {
	Changes       int        `json:"changes"`
	FirstPrice    int64      `json:"first_price"`
	CurrentPrice  int64      `json:"current_price"`
	NetChange     int64      `json:"net_change"`
	LastChangedAt *time.Time `json:"last_changed_at,omitempty"`
}

// PriceAtDate returns the price in effect at the given date. History points
// record prior prices with the date each took effect; the subscription's own
// Price field is the current value. Dates before the earliest recorded point
// report the earliest known price, and an empty history reports the current
// price.
func PriceAtDate(sub entity.Subscription, history []entity.PricePoint, date time.Time) int64 {
	points := sortedPoints(history)
	if len(points) == 0 {
		return sub.Price
	}
	if date.Before(points[0].EffectiveDate) {
		return points[0].Price
	}
	for i := len(points) - 1; i >= 0; i-- {
		if !points[i].EffectiveDate.After(date) {
			return points[i].Price
		}
	}
	return sub.Price
}

// SummarizePriceChanges folds the append-only history into change counts and
// the net delta from the earliest recorded price to the current one.
func SummarizePriceChanges(sub entity.Subscription, history []entity.PricePoint) PriceChangeSummary {
	summary := PriceChangeSummary{
		FirstPrice:   sub.Price,
		CurrentPrice: sub.Price,
	}

	points := sortedPoints(history)
	if len(points) == 0 {
		return summary
	}

	last := points[len(points)-1].EffectiveDate
	summary.Changes = len(points)
	summary.FirstPrice = points[0].Price
	summary.NetChange = sub.Price - points[0].Price
	summary.LastChangedAt = &last
	return summary
}

// sortedPoints returns a copy of history ordered ascending by effective
// date. The input is never mutated.
func sortedPoints(history []entity.PricePoint) []entity.PricePoint {
	points := make([]entity.PricePoint, len(history))
	copy(points, history)
	sort.SliceStable(points, func(i, j int) bool {
		return points[i].EffectiveDate.Before(points[j].EffectiveDate)
	})
	return points
}
