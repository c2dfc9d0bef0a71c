// Package entity defines the core business entities for the calculation engine.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// BillingCycle represents how often a subscription renews.
type BillingCycle string

const (
	BillingCycleWeekly     BillingCycle = "weekly"
	BillingCycleMonthly    BillingCycle = "monthly"
	BillingCycleQuarterly  BillingCycle = "quarterly"
	BillingCycleSemiAnnual BillingCycle = "semi_annual"
	BillingCycleAnnual     BillingCycle = "annual"
	BillingCycleCustom     BillingCycle = "custom"
)

// SubscriptionStatus represents the lifecycle state of a subscription.
type SubscriptionStatus string

const (
	SubscriptionStatusActive    SubscriptionStatus = "active"
	SubscriptionStatusTrial     SubscriptionStatus = "trial"
	SubscriptionStatusPaused    SubscriptionStatus = "paused"
	SubscriptionStatusCancelled SubscriptionStatus = "cancelled"
)

// Billable reports whether a subscription in this status contributes to cost
// totals. Trials count: they bill next unless the user acts.
func (s SubscriptionStatus) Billable() bool {
	return s == SubscriptionStatusActive || s == SubscriptionStatusTrial
}

// Subscription is a recurring charge. Price is integer cents per billing
// cycle. CustomDays must be present iff BillingCycle is custom.
type Subscription struct {
	ID            uuid.UUID
	Name          string             `validate:"required"`
	Price         int64              `validate:"gte=0"`
	BillingCycle  BillingCycle       `validate:"required,oneof=weekly monthly quarterly semi_annual annual custom"`
	CustomDays    *int
	Status        SubscriptionStatus `validate:"required,oneof=active trial paused cancelled"`
	StartDate     time.Time
	NextRenewal   time.Time
	CancelledDate *time.Time
	NotifyDays    int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// PricePoint is one entry in a subscription's append-only price history.
// Each point records a price and the date it took effect; the subscription's
// own Price field holds the current value.
type PricePoint struct {
	SubscriptionID uuid.UUID
	Price          int64
	EffectiveDate  time.Time
}
