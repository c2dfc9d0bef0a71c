package networth

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pocketbudget/engine/domain/entity"
)

// CaptureSnapshot computes net worth over the active accounts and freezes it
// into a snapshot for the given month, with the per-account breakdown
// serialized into AccountBalances. It does not deduplicate against an
// existing snapshot for the month; storage upserts by month.
func CaptureSnapshot(accounts []entity.Account, month string) (entity.NetWorthSnapshot, error) {
	result := Calculate(accounts)

	payload, err := json.Marshal(result.AccountBreakdown)
	if err != nil {
		return entity.NetWorthSnapshot{}, fmt.Errorf("serialize account balances: %w", err)
	}
	balances := string(payload)

	return entity.NetWorthSnapshot{
		ID:              uuid.New(),
		Month:           month,
		Assets:          result.Assets,
		Liabilities:     result.Liabilities,
		NetWorth:        result.NetWorth,
		AccountBalances: &balances,
		CreatedAt:       time.Now().UTC(),
	}, nil
}

// ParseAccountBalances decodes the breakdown stored on a snapshot. A nil
// AccountBalances is a valid empty result, not an error.
func ParseAccountBalances(snapshot entity.NetWorthSnapshot) ([]BreakdownLine, error) {
	if snapshot.AccountBalances == nil {
		return nil, nil
	}
	var lines []BreakdownLine
	if err := json.Unmarshal([]byte(*snapshot.AccountBalances), &lines); err != nil {
		return nil, fmt.Errorf("parse account balances: %w", err)
	}
	return lines, nil
}
