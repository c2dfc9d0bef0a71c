package income

import (
	"time"
)

// PaydayPrediction is the projected next payment for a detected pattern.
type PaydayPrediction struct {
	Date       time.Time `json:"date"`
	Amount     int64     `json:"amount"`
	Cadence    Cadence   `json:"cadence"`
	Confidence float64   `json:"confidence"`
}

// PredictNextPayday extrapolates the pattern's last observed date by one
// cadence period, then keeps adding periods until the result is on or after
// today, so the prediction is never in the past. Call it only with a pattern
// returned by DetectPaydays.
func (d *Detector) PredictNextPayday(pattern PaydayPattern, today time.Time) PaydayPrediction {
	next := advance(pattern, pattern.LastDate)
	for next.Before(today) {
		next = advance(pattern, next)
	}
	return PaydayPrediction{
		Date:       next,
		Amount:     pattern.AverageAmount,
		Cadence:    pattern.Cadence,
		Confidence: pattern.Confidence,
	}
}

// advance steps one cadence period forward from a date.
func advance(pattern PaydayPattern, from time.Time) time.Time {
	switch pattern.Cadence {
	case CadenceWeekly:
		return from.AddDate(0, 0, 7)
	case CadenceBiweekly:
		return from.AddDate(0, 0, 14)
	case CadenceSemiMonthly:
		return nextAnchorDate(from, pattern.AnchorDays)
	default:
		return from.AddDate(0, 1, 0)
	}
}

// nextAnchorDate moves to the next semi-monthly anchor day after from,
// clamping anchors that exceed the month's length (an anchor of 31 lands on
// the 28th/29th/30th where needed). Patterns without two anchors fall back
// to a flat 15-day step.
func nextAnchorDate(from time.Time, anchors []int) time.Time {
	if len(anchors) != 2 {
		return from.AddDate(0, 0, 15)
	}
	first, second := anchors[0], anchors[1]

	year, month := from.Year(), from.Month()
	switch day := from.Day(); {
	case day < clampDay(year, month, first):
		return onDay(from, year, month, first)
	case day < clampDay(year, month, second):
		return onDay(from, year, month, second)
	default:
		next := time.Date(year, month, 1, 0, 0, 0, 0, from.Location()).AddDate(0, 1, 0)
		return onDay(from, next.Year(), next.Month(), first)
	}
}

func onDay(ref time.Time, year int, month time.Month, day int) time.Time {
	return time.Date(year, month, clampDay(year, month, day),
		ref.Hour(), ref.Minute(), ref.Second(), ref.Nanosecond(), ref.Location())
}

// clampDay limits a day-of-month to the month's actual length.
func clampDay(year int, month time.Month, day int) int {
	last := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
	if day > last {
		return last
	}
	return day
}
