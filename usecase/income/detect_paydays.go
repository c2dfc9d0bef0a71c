// Package income implements payday pattern detection and monthly income
// estimation over raw transaction history. The heuristics are tuned through
// config.Payday / config.Income rather than inline literals.
package income

import (
	"log/slog"
	"math"
	"sort"
	"time"

	"github.com/pocketbudget/engine/config"
	"github.com/pocketbudget/engine/domain/entity"
)

// Cadence is a detected payment rhythm.
type Cadence string

const (
	CadenceWeekly      Cadence = "weekly"
	CadenceBiweekly    Cadence = "biweekly"
	CadenceSemiMonthly Cadence = "semi_monthly"
	CadenceMonthly     Cadence = "monthly"
)

// nominalGapDays is the expected day gap between consecutive payments for
// each cadence, averaged over the leap cycle.
var nominalGapDays = map[Cadence]float64{
	CadenceWeekly:      7,
	CadenceBiweekly:    14,
	CadenceSemiMonthly: 365.25 / 24,
	CadenceMonthly:     365.25 / 12,
}

// cadenceOrder fixes the evaluation order so classification ties resolve
// deterministically toward the shorter cadence.
var cadenceOrder = []Cadence{CadenceWeekly, CadenceBiweekly, CadenceSemiMonthly, CadenceMonthly}

// PaydayPattern is a recurring income pattern detected for one payee.
type PaydayPattern struct {
	Payee         string    `json:"payee"`
	Cadence       Cadence   `json:"cadence"`
	Confidence    float64   `json:"confidence"`
	Occurrences   int       `json:"occurrences"`
	AverageAmount int64     `json:"average_amount"`
	LastDate      time.Time `json:"last_date"`
	// AnchorDays holds the two month-day anchors for semi-monthly patterns
	// (for example 1 and 15), empty for other cadences.
	AnchorDays []int `json:"anchor_days,omitempty"`
}

// Detector runs the payday heuristics with a fixed configuration. The zero
// value is not usable; construct with NewDetector.
type Detector struct {
	payday config.Payday
	income config.Income
}

// NewDetector creates a Detector from the full engine configuration.
func NewDetector(cfg *config.Config) *Detector {
	return &Detector{payday: cfg.Payday, income: cfg.Income}
}

// DetectPaydays finds recurring payday patterns in a transaction window.
// Only positive, non-transfer transactions qualify; they are grouped by
// normalized payee, each payee's day-gap sequence is classified against the
// known cadences, and patterns under the configured occurrence or confidence
// thresholds are discarded. An empty result is a valid outcome, never an
// error. Output order is confidence-descending with payee name as the tie
// break, so identical inputs always produce identical output.
func (d *Detector) DetectPaydays(txs []entity.Transaction) []PaydayPattern {
	groups := make(map[string][]entity.Transaction)
	for _, tx := range txs {
		if tx.Amount <= 0 || tx.IsTransfer {
			continue
		}
		key := NormalizePayee(tx.Payee)
		if key == "" {
			continue
		}
		groups[key] = append(groups[key], tx)
	}

	payees := make([]string, 0, len(groups))
	for payee := range groups {
		payees = append(payees, payee)
	}
	sort.Strings(payees)

	patterns := make([]PaydayPattern, 0, len(payees))
	for _, payee := range payees {
		occurrences := groups[payee]
		if len(occurrences) < d.payday.MinOccurrences {
			continue
		}
		pattern, ok := d.classify(payee, occurrences)
		if !ok {
			slog.Debug("payday pattern discarded",
				"payee", payee,
				"occurrences", len(occurrences))
			continue
		}
		patterns = append(patterns, pattern)
	}

	sort.SliceStable(patterns, func(i, j int) bool {
		if patterns[i].Confidence != patterns[j].Confidence {
			return patterns[i].Confidence > patterns[j].Confidence
		}
		return patterns[i].Payee < patterns[j].Payee
	})
	return patterns
}

// classify reduces one payee's payments to a cadence and confidence score.
func (d *Detector) classify(payee string, occurrences []entity.Transaction) (PaydayPattern, bool) {
	txs := make([]entity.Transaction, len(occurrences))
	copy(txs, occurrences)
	sort.SliceStable(txs, func(i, j int) bool { return txs[i].Date.Before(txs[j].Date) })

	gaps := dayGaps(txs)
	if len(gaps) == 0 {
		return PaydayPattern{}, false
	}

	tolerance := float64(d.payday.ToleranceDays)
	var best Cadence
	bestFraction := 0.0
	for _, cadence := range cadenceOrder {
		nominal := nominalGapDays[cadence]
		matches := 0
		for _, gap := range gaps {
			if math.Abs(gap-nominal) <= tolerance {
				matches++
			}
		}
		fraction := float64(matches) / float64(len(gaps))
		if fraction > bestFraction {
			bestFraction = fraction
			best = cadence
		}
	}
	if bestFraction == 0 {
		return PaydayPattern{}, false
	}

	// Gaps of ~14 and ~15 days overlap inside the tolerance window, so the
	// biweekly/semi-monthly split is decided by month-day anchoring: twice-a-
	// month payrolls land on the same two days of the month, biweekly ones
	// drift across the whole month.
	var anchorDays []int
	if best == CadenceBiweekly || best == CadenceSemiMonthly {
		anchors, anchored := monthDayAnchors(txs, d.payday.AnchorShare)
		if anchored {
			best = CadenceSemiMonthly
			anchorDays = anchors
		} else {
			best = CadenceBiweekly
		}
	}

	n := float64(len(gaps))
	confidence := bestFraction * (n / (n + d.payday.SamplePenalty))
	if confidence < d.payday.MinConfidence {
		return PaydayPattern{}, false
	}

	return PaydayPattern{
		Payee:         payee,
		Cadence:       best,
		Confidence:    confidence,
		Occurrences:   len(txs),
		AverageAmount: averageAmount(txs),
		LastDate:      txs[len(txs)-1].Date,
		AnchorDays:    anchorDays,
	}, true
}

// dayGaps returns the day distances between consecutive payment dates.
// Same-day duplicates (gap under one day) are skipped so a double-posted
// deposit does not poison the sequence.
func dayGaps(txs []entity.Transaction) []float64 {
	gaps := make([]float64, 0, len(txs)-1)
	for i := 1; i < len(txs); i++ {
		days := txs[i].Date.Sub(txs[i-1].Date).Hours() / 24
		if days < 1 {
			continue
		}
		gaps = append(gaps, days)
	}
	return gaps
}

// monthDayAnchors checks whether payment dates cluster on two days of the
// month roughly half a month apart. It returns the sorted anchor days and
// whether the required share of dates lands on them.
func monthDayAnchors(txs []entity.Transaction, share float64) ([]int, bool) {
	counts := make(map[int]int)
	for _, tx := range txs {
		counts[tx.Date.Day()]++
	}
	if len(counts) < 2 {
		return nil, false
	}

	days := make([]int, 0, len(counts))
	for day := range counts {
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool {
		if counts[days[i]] != counts[days[j]] {
			return counts[days[i]] > counts[days[j]]
		}
		return days[i] < days[j]
	})

	first, second := days[0], days[1]
	if first > second {
		first, second = second, first
	}
	separation := second - first
	if separation < 10 || separation > 20 {
		return nil, false
	}
	covered := counts[first] + counts[second]
	if float64(covered)/float64(len(txs)) < share {
		return nil, false
	}
	return []int{first, second}, true
}

// averageAmount is the mean payment in cents, rounded to the nearest cent.
func averageAmount(txs []entity.Transaction) int64 {
	var total int64
	for _, tx := range txs {
		total += tx.Amount
	}
	return int64(math.Round(float64(total) / float64(len(txs))))
}
