package subscription

import (
	"time"

	"github.com/pocketbudget/engine/domain/entity"
)

// CalculateNextRenewal projects the first renewal date on or after today by
// repeatedly advancing startDate by the cycle's calendar unit. The result is
// never a past date. Today is an explicit parameter so projections are
// reproducible. Calendar stepping uses time.AddDate, so a renewal anchored
// on the 31st normalizes through shorter months the way the platform date
// APIs do.
func CalculateNextRenewal(startDate time.Time, cycle entity.BillingCycle, customDays *int, today time.Time) time.Time {
	next := startDate
	for next.Before(today) {
		switch cycle {
		case entity.BillingCycleWeekly:
			next = next.AddDate(0, 0, 7)
		case entity.BillingCycleMonthly:
			next = next.AddDate(0, 1, 0)
		case entity.BillingCycleQuarterly:
			next = next.AddDate(0, 3, 0)
		case entity.BillingCycleSemiAnnual:
			next = next.AddDate(0, 6, 0)
		case entity.BillingCycleAnnual:
			next = next.AddDate(1, 0, 0)
		case entity.BillingCycleCustom:
			if customDays == nil || *customDays <= 0 {
				// Corrupt record: no step size to advance by.
				return today
			}
			next = next.AddDate(0, 0, *customDays)
		default:
			return today
		}
	}
	return next
}
