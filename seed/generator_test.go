package seed

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pocketbudget/engine/config"
	"github.com/pocketbudget/engine/domain/entity"
	"github.com/pocketbudget/engine/usecase/income"
	"github.com/pocketbudget/engine/validate"
)

var today = time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)

func TestSameSeedSameRecords(t *testing.T) {
	first := New(42).Accounts(6)
	second := New(42).Accounts(6)

	assert.Equal(t, first, second)
}

func TestDifferentSeedsDiverge(t *testing.T) {
	first := New(1).Accounts(6)
	second := New(2).Accounts(6)

	assert.NotEqual(t, first, second)
}

func TestAccounts(t *testing.T) {
	accounts := New(7).Accounts(8)

	require.Len(t, accounts, 8)
	types := make(map[entity.AccountType]bool)
	for _, a := range accounts {
		assert.NoError(t, validate.Account(a))
		assert.True(t, a.IsActive)
		assert.GreaterOrEqual(t, a.Balance, int64(10_000))
		types[a.Type] = true
	}
	// Eight records cycle through all six account types.
	assert.Len(t, types, 6)
}

func TestSubscriptions(t *testing.T) {
	subs := New(7).Subscriptions(8, today)

	require.Len(t, subs, 8)
	customSeen := false
	for _, s := range subs {
		assert.NoError(t, validate.Subscription(s))
		assert.True(t, s.StartDate.Before(today))
		if s.BillingCycle == entity.BillingCycleCustom {
			customSeen = true
		}
	}
	assert.True(t, customSeen, "a full pass includes one custom-cycle record")
}

func TestGoals(t *testing.T) {
	goals := New(7).Goals(5, today)

	require.Len(t, goals, 5)
	for _, g := range goals {
		assert.NoError(t, validate.Goal(g))
		assert.LessOrEqual(t, g.CurrentAmount, g.TargetAmount)
		require.NotNil(t, g.TargetDate)
		assert.True(t, g.TargetDate.After(today))
		assert.True(t, g.CreatedAt.Before(today))
	}
}

func TestPayrollHistoryGaps(t *testing.T) {
	start := time.Date(2025, time.January, 3, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		cadence income.Cadence
		gapDays int
	}{
		{"weekly", income.CadenceWeekly, 7},
		{"biweekly", income.CadenceBiweekly, 14},
		{"monthly", income.CadenceMonthly, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txs := New(3).PayrollHistory("Acme Corp Payroll", tt.cadence, 6, 250000, start)

			require.Len(t, txs, 6)
			for i := 1; i < len(txs); i++ {
				gap := txs[i].Date.Sub(txs[i-1].Date)
				if tt.gapDays > 0 {
					assert.Equal(t, time.Duration(tt.gapDays)*24*time.Hour, gap)
				} else {
					assert.Equal(t, 3, txs[i].Date.Day(), "monthly series keeps its day of month")
				}
			}
		})
	}
}

func TestPayrollHistorySemiMonthlyAnchors(t *testing.T) {
	start := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)

	txs := New(3).PayrollHistory("Acme Corp Payroll", income.CadenceSemiMonthly, 6, 250000, start)

	require.Len(t, txs, 6)
	for i, tx := range txs {
		if i%2 == 0 {
			assert.Equal(t, 1, tx.Date.Day())
		} else {
			assert.Equal(t, 15, tx.Date.Day())
		}
	}
}

func TestPayrollHistoryFeedsDetection(t *testing.T) {
	start := time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC)
	txs := New(3).PayrollHistory("Acme Corp Payroll", income.CadenceBiweekly, 8, 250000, start)

	patterns := income.NewDetector(config.Default()).DetectPaydays(txs)

	require.Len(t, patterns, 1)
	assert.Equal(t, income.CadenceBiweekly, patterns[0].Cadence)
	assert.Equal(t, int64(250000), patterns[0].AverageAmount)
}
