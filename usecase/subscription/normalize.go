// Package subscription implements billing-cycle normalization, cost
// aggregation, and renewal projection for recurring charges.
package subscription

import (
	"github.com/shopspring/decimal"

	"github.com/pocketbudget/engine/domain/entity"
)

// Average calendar lengths shared by cycle normalization. A month averages
// 365.25/12 = 30.4375 days over the leap cycle.
var (
	daysPerYear   = decimal.NewFromFloat(365.25)
	daysPerMonth  = decimal.NewFromFloat(30.4375)
	monthsPerYear = decimal.NewFromInt(12)
	weeksPerYear  = daysPerYear.Div(decimal.NewFromInt(7))
)

// NormalizeToMonthly converts a per-cycle price in cents to its monthly
// equivalent, rounded half-up to the nearest cent. A custom cycle without a
// positive customDays is a corrupt record and normalizes to 0 so a single
// bad row cannot sink an aggregate report.
func NormalizeToMonthly(price int64, cycle entity.BillingCycle, customDays *int) int64 {
	p := decimal.NewFromInt(price)

	var monthly decimal.Decimal
	switch cycle {
	case entity.BillingCycleWeekly:
		monthly = p.Mul(weeksPerYear).Div(monthsPerYear)
	case entity.BillingCycleMonthly:
		return price
	case entity.BillingCycleQuarterly:
		monthly = p.Div(decimal.NewFromInt(3))
	case entity.BillingCycleSemiAnnual:
		monthly = p.Div(decimal.NewFromInt(6))
	case entity.BillingCycleAnnual:
		monthly = p.Div(monthsPerYear)
	case entity.BillingCycleCustom:
		if customDays == nil || *customDays <= 0 {
			return 0
		}
		monthly = p.Mul(daysPerMonth).Div(decimal.NewFromInt(int64(*customDays)))
	default:
		return 0
	}

	// Prices are non-negative, so Round's half-away-from-zero is half-up.
	return monthly.Round(0).IntPart()
}

// NormalizeToAnnual converts a per-cycle price in cents to its annual
// equivalent, rounded half-up. The annual figure is computed independently
// from the raw price rather than as monthly × 12; the two may drift by a few
// cents because each conversion rounds on its own.
func NormalizeToAnnual(price int64, cycle entity.BillingCycle, customDays *int) int64 {
	p := decimal.NewFromInt(price)

	var annual decimal.Decimal
	switch cycle {
	case entity.BillingCycleWeekly:
		annual = p.Mul(weeksPerYear)
	case entity.BillingCycleMonthly:
		annual = p.Mul(monthsPerYear)
	case entity.BillingCycleQuarterly:
		annual = p.Mul(decimal.NewFromInt(4))
	case entity.BillingCycleSemiAnnual:
		annual = p.Mul(decimal.NewFromInt(2))
	case entity.BillingCycleAnnual:
		return price
	case entity.BillingCycleCustom:
		if customDays == nil || *customDays <= 0 {
			return 0
		}
		annual = p.Mul(daysPerYear).Div(decimal.NewFromInt(int64(*customDays)))
	default:
		return 0
	}

	return annual.Round(0).IntPart()
}
