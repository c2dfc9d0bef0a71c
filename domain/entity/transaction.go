// Package entity defines the core business entities for the calculation engine.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Transaction is a posted transaction as queried from storage. Amount is
// signed integer cents: positive is an inflow, negative an outflow.
// Transfers between own accounts carry IsTransfer and are excluded from
// income detection.
type Transaction struct {
	ID         uuid.UUID
	AccountID  uuid.UUID
	Payee      string
	Amount     int64
	Date       time.Time
	IsTransfer bool
}
