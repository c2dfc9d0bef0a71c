// Package networth implements net-worth computation and snapshot capture.
package networth

import (
	"github.com/google/uuid"

	"github.com/pocketbudget/engine/domain/entity"
)

// BreakdownLine is one account's contribution to a net-worth figure. The
// JSON field names are a persisted contract: snapshots store the serialized
// breakdown and it must round-trip unchanged.
type BreakdownLine struct {
	ID      uuid.UUID `json:"id"`
	Balance int64     `json:"balance"`
	IsAsset bool      `json:"isAsset"`
}

// Result is the derived net-worth state for a set of account balances.
type Result struct {
	Assets           int64           `json:"assets"`
	Liabilities      int64           `json:"liabilities"`
	NetWorth         int64           `json:"net_worth"`
	AccountBreakdown []BreakdownLine `json:"account_breakdown"`
}

// Calculate sums active account balances into assets and liabilities by
// account type and reports net worth as assets minus liabilities. Inactive
// accounts are excluded entirely, including from the breakdown. Raw signed
// balances are preserved per line.
func Calculate(accounts []entity.Account) Result {
	result := Result{AccountBreakdown: make([]BreakdownLine, 0, len(accounts))}

	for _, account := range accounts {
		if !account.IsActive {
			continue
		}
		isAsset := account.Type.IsAsset()
		if isAsset {
			result.Assets += account.Balance
		} else {
			result.Liabilities += account.Balance
		}
		result.AccountBreakdown = append(result.AccountBreakdown, BreakdownLine{
			ID:      account.ID,
			Balance: account.Balance,
			IsAsset: isAsset,
		})
	}

	result.NetWorth = result.Assets - result.Liabilities
	return result
}
