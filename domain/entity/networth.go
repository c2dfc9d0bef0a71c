// Package entity defines the core business entities for the calculation engine.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// NetWorthSnapshot is an immutable capture of net worth for one month.
// Month is zero-padded YYYY-MM so lexicographic order is chronological order.
// AccountBalances holds the JSON-encoded per-account breakdown at capture
// time, or nil when no breakdown was recorded. One snapshot is intended per
// month; dedup is the storage layer's responsibility (upsert by month).
type NetWorthSnapshot struct {
	ID              uuid.UUID
	Month           string `validate:"required"`
	Assets          int64
	Liabilities     int64
	NetWorth        int64
	AccountBalances *string
	CreatedAt       time.Time
}
