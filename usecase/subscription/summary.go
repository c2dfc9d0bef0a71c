package subscription

import (
	"github.com/pocketbudget/engine/domain/entity"
)

// Summary aggregates the cost of a set of subscriptions. MonthlyTotal and
// AnnualTotal cover billable (active or trial) subscriptions only;
// TotalCount counts every record regardless of status.
type Summary struct {
	MonthlyTotal int64 `json:"monthly_total"`
	AnnualTotal  int64 `json:"annual_total"`
	ActiveCount  int   `json:"active_count"`
	TotalCount   int   `json:"total_count"`
}

// CalculateSummary normalizes and sums subscription costs. Paused and
// cancelled subscriptions are listed in TotalCount but contribute nothing
// to the totals.
func CalculateSummary(subs []entity.Subscription) Summary {
	summary := Summary{TotalCount: len(subs)}

	for _, sub := range subs {
		if !sub.Status.Billable() {
			continue
		}
		summary.ActiveCount++
		summary.MonthlyTotal += NormalizeToMonthly(sub.Price, sub.BillingCycle, sub.CustomDays)
		summary.AnnualTotal += NormalizeToAnnual(sub.Price, sub.BillingCycle, sub.CustomDays)
	}

	return summary
}
