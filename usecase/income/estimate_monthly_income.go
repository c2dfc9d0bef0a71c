package income

import (
	"math"

	"github.com/pocketbudget/engine/domain/entity"
)

// avgDaysPerMonth is the mean month length over the leap cycle.
const avgDaysPerMonth = 365.25 / 12

// IncomeEstimate is a monthly income figure derived from a transaction
// window, with the sample metadata a caller needs to decide whether the
// estimate is worth surfacing.
type IncomeEstimate struct {
	MonthlyIncome int64   `json:"monthly_income"`
	MonthsSpanned int     `json:"months_spanned"`
	SampleCount   int     `json:"sample_count"`
	Confidence    float64 `json:"confidence"`
}

// EstimateMonthlyIncome sums qualifying income transactions (positive,
// non-transfer) over the supplied window and divides by the number of whole
// months the window spans, with a minimum divisor of 1 so short windows do
// not inflate the figure. Confidence combines how many of the spanned months
// actually saw income with the usual small-sample penalty. A window with no
// qualifying transactions yields the zero estimate, not an error.
func (d *Detector) EstimateMonthlyIncome(txs []entity.Transaction) IncomeEstimate {
	var (
		total       int64
		count       int
		firstSeen   bool
		first, last int64
	)
	monthsSeen := make(map[string]struct{})

	var estimate IncomeEstimate
	for _, tx := range txs {
		if tx.Amount <= 0 || tx.IsTransfer {
			continue
		}
		total += tx.Amount
		count++
		monthsSeen[tx.Date.Format("2006-01")] = struct{}{}

		unix := tx.Date.Unix()
		if !firstSeen || unix < first {
			first = unix
		}
		if !firstSeen || unix > last {
			last = unix
		}
		firstSeen = true
	}
	if count == 0 {
		return estimate
	}

	days := float64(last-first) / (24 * 60 * 60)
	months := int(days / avgDaysPerMonth)
	if months < 1 {
		months = 1
	}

	coverage := float64(len(monthsSeen)) / float64(months)
	if coverage > 1 {
		coverage = 1
	}
	n := float64(count)

	estimate.MonthlyIncome = int64(math.Round(float64(total) / float64(months)))
	estimate.MonthsSpanned = months
	estimate.SampleCount = count
	estimate.Confidence = coverage * (n / (n + d.income.SamplePenalty))
	return estimate
}
