package validate

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/pocketbudget/engine/domain/entity"
	domainerror "github.com/pocketbudget/engine/domain/error"
)

func budgetInput() entity.MonthBudgetInput {
	rent := entity.Category{
		ID:     uuid.New(),
		Name:   "Rent",
		Target: &entity.CategoryTarget{Amount: 200000, Type: entity.TargetTypeMonthly},
	}
	groceries := entity.Category{ID: uuid.New(), Name: "Groceries"}
	return entity.MonthBudgetInput{
		Month: "2025-03",
		Groups: []entity.CategoryGroup{
			{ID: uuid.New(), Name: "Essentials", Categories: []entity.Category{rent, groceries}},
		},
		Allocations: map[uuid.UUID]int64{rent.ID: 200000},
		Activity:    map[uuid.UUID]int64{groceries.ID: -42500},
	}
}

func TestMonthBudgetInput(t *testing.T) {
	assert.NoError(t, MonthBudgetInput(budgetInput()))
}

func TestMonthBudgetInputRejectsBadMonth(t *testing.T) {
	for _, month := range []string{"", "2025", "2025-3", "2025-13", "03-2025", "2025-03-01"} {
		input := budgetInput()
		input.Month = month

		err := MonthBudgetInput(input)

		assert.ErrorIs(t, err, domainerror.ErrInvalidMonthFormat, "month %q", month)
	}
}

func TestMonthBudgetInputRejectsNonPositiveTarget(t *testing.T) {
	input := budgetInput()
	input.Groups[0].Categories[0].Target.Amount = 0

	err := MonthBudgetInput(input)

	assert.ErrorIs(t, err, domainerror.ErrInvalidTarget)
}

func TestMonthBudgetInputRejectsUndeclaredCategory(t *testing.T) {
	t.Run("allocations", func(t *testing.T) {
		input := budgetInput()
		input.Allocations[uuid.New()] = 5000

		assert.ErrorIs(t, MonthBudgetInput(input), domainerror.ErrUnknownCategory)
	})

	t.Run("carryForwards", func(t *testing.T) {
		input := budgetInput()
		input.CarryForwards = map[uuid.UUID]int64{uuid.New(): 1200}

		assert.ErrorIs(t, MonthBudgetInput(input), domainerror.ErrUnknownCategory)
	})
}

func subscription() entity.Subscription {
	return entity.Subscription{
		ID:           uuid.New(),
		Name:         "Netflix",
		Price:        1599,
		BillingCycle: entity.BillingCycleMonthly,
		Status:       entity.SubscriptionStatusActive,
		StartDate:    time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC),
	}
}

func TestSubscription(t *testing.T) {
	assert.NoError(t, Subscription(subscription()))
}

func TestSubscriptionRejectsStructuralProblems(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*entity.Subscription)
	}{
		{"empty name", func(s *entity.Subscription) { s.Name = "" }},
		{"negative price", func(s *entity.Subscription) { s.Price = -1 }},
		{"unknown cycle", func(s *entity.Subscription) { s.BillingCycle = "fortnightly" }},
		{"unknown status", func(s *entity.Subscription) { s.Status = "expired" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub := subscription()
			tt.mutate(&sub)

			assert.ErrorIs(t, Subscription(sub), domainerror.ErrInvalidSubscription)
		})
	}
}

func TestSubscriptionCustomDaysInvariant(t *testing.T) {
	t.Run("custom cycle requires customDays", func(t *testing.T) {
		sub := subscription()
		sub.BillingCycle = entity.BillingCycleCustom

		assert.ErrorIs(t, Subscription(sub), domainerror.ErrMissingCustomDays)
	})

	t.Run("custom cycle rejects non-positive customDays", func(t *testing.T) {
		sub := subscription()
		sub.BillingCycle = entity.BillingCycleCustom
		days := 0
		sub.CustomDays = &days

		assert.ErrorIs(t, Subscription(sub), domainerror.ErrMissingCustomDays)
	})

	t.Run("custom cycle with customDays passes", func(t *testing.T) {
		sub := subscription()
		sub.BillingCycle = entity.BillingCycleCustom
		days := 45
		sub.CustomDays = &days

		assert.NoError(t, Subscription(sub))
	})

	t.Run("non-custom cycle rejects customDays", func(t *testing.T) {
		sub := subscription()
		days := 30
		sub.CustomDays = &days

		assert.ErrorIs(t, Subscription(sub), domainerror.ErrUnexpectedCustomDays)
	})
}

func TestGoal(t *testing.T) {
	goal := entity.Goal{
		ID:            uuid.New(),
		Name:          "Emergency Fund",
		TargetAmount:  100000,
		CurrentAmount: 50000,
		CreatedAt:     time.Now().UTC(),
	}
	assert.NoError(t, Goal(goal))

	goal.TargetAmount = 0
	assert.ErrorIs(t, Goal(goal), domainerror.ErrInvalidGoal)

	goal.TargetAmount = 100000
	goal.CurrentAmount = -1
	assert.ErrorIs(t, Goal(goal), domainerror.ErrInvalidGoal)

	goal.CurrentAmount = 0
	goal.Name = ""
	assert.ErrorIs(t, Goal(goal), domainerror.ErrInvalidGoal)
}

func TestAccount(t *testing.T) {
	account := entity.Account{
		ID:       uuid.New(),
		Name:     "Checking",
		Type:     entity.AccountTypeChecking,
		Balance:  150000,
		IsActive: true,
	}
	assert.NoError(t, Account(account))

	account.Type = "brokerage"
	assert.ErrorIs(t, Account(account), domainerror.ErrInvalidAccount)

	account.Type = entity.AccountTypeChecking
	account.Name = ""
	assert.ErrorIs(t, Account(account), domainerror.ErrInvalidAccount)
}
