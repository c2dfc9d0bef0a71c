// Package seed generates realistic demo records for tests and examples.
// Generation is deterministic for a given seed, so fixtures are reproducible.
package seed

import (
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"

	"github.com/pocketbudget/engine/domain/entity"
	"github.com/pocketbudget/engine/usecase/income"
)

// Generator produces fake engine records from a seeded faker.
type Generator struct {
	faker *gofakeit.Faker
}

// New creates a Generator; the same seed always yields the same records.
func New(seed uint64) *Generator {
	return &Generator{faker: gofakeit.New(seed)}
}

var accountTypes = []entity.AccountType{
	entity.AccountTypeChecking,
	entity.AccountTypeSavings,
	entity.AccountTypeCreditCard,
	entity.AccountTypeCash,
	entity.AccountTypeInvestment,
	entity.AccountTypeLoan,
}

var accountLabels = map[entity.AccountType]string{
	entity.AccountTypeChecking:   "Checking",
	entity.AccountTypeSavings:    "Savings",
	entity.AccountTypeCreditCard: "Credit Card",
	entity.AccountTypeCash:       "Cash",
	entity.AccountTypeInvestment: "Brokerage",
	entity.AccountTypeLoan:       "Loan",
}

// Accounts generates n active accounts cycling through the account types.
// Liability balances are positive magnitudes, matching how card and loan
// balances are stored.
func (g *Generator) Accounts(n int) []entity.Account {
	accounts := make([]entity.Account, 0, n)
	for i := 0; i < n; i++ {
		accountType := accountTypes[i%len(accountTypes)]
		balance := int64(g.faker.Number(10_000, 2_000_000))
		accounts = append(accounts, entity.Account{
			ID:       g.id(),
			Name:     fmt.Sprintf("%s %s", g.faker.Company(), accountLabels[accountType]),
			Type:     accountType,
			Balance:  balance,
			IsActive: true,
		})
	}
	return accounts
}

var billingCycles = []entity.BillingCycle{
	entity.BillingCycleMonthly,
	entity.BillingCycleMonthly,
	entity.BillingCycleMonthly,
	entity.BillingCycleAnnual,
	entity.BillingCycleWeekly,
	entity.BillingCycleQuarterly,
	entity.BillingCycleSemiAnnual,
	entity.BillingCycleCustom,
}

// Subscriptions generates n subscriptions, mostly monthly and active, with
// one custom-cycle record per full pass through the cycle table.
func (g *Generator) Subscriptions(n int, today time.Time) []entity.Subscription {
	subs := make([]entity.Subscription, 0, n)
	for i := 0; i < n; i++ {
		cycle := billingCycles[i%len(billingCycles)]
		sub := entity.Subscription{
			ID:           g.id(),
			Name:         g.faker.AppName(),
			Price:        int64(g.faker.Number(499, 4_999)),
			BillingCycle: cycle,
			Status:       entity.SubscriptionStatusActive,
			StartDate:    today.AddDate(0, 0, -g.faker.Number(30, 400)),
			CreatedAt:    today,
			UpdatedAt:    today,
		}
		if cycle == entity.BillingCycleCustom {
			days := g.faker.Number(20, 90)
			sub.CustomDays = &days
		}
		subs = append(subs, sub)
	}
	return subs
}

// Goals generates n in-progress goals with target dates spread over the
// coming year.
func (g *Generator) Goals(n int, today time.Time) []entity.Goal {
	goals := make([]entity.Goal, 0, n)
	for i := 0; i < n; i++ {
		target := int64(g.faker.Number(100_000, 2_000_000))
		targetDate := today.AddDate(0, 0, g.faker.Number(60, 365))
		goals = append(goals, entity.Goal{
			ID:            g.id(),
			Name:          g.faker.BuzzWord() + " fund",
			TargetAmount:  target,
			CurrentAmount: target * int64(g.faker.Number(0, 90)) / 100,
			TargetDate:    &targetDate,
			CreatedAt:     today.AddDate(0, 0, -g.faker.Number(30, 300)),
		})
	}
	return goals
}

// PayrollHistory generates a clean series of income transactions for one
// payee at the given cadence, oldest first. Semi-monthly series anchor on
// the 1st and 15th.
func (g *Generator) PayrollHistory(payee string, cadence income.Cadence, periods int, amount int64, start time.Time) []entity.Transaction {
	accountID := g.id()
	txs := make([]entity.Transaction, 0, periods)
	date := start
	for i := 0; i < periods; i++ {
		txs = append(txs, entity.Transaction{
			ID:        g.id(),
			AccountID: accountID,
			Payee:     payee,
			Amount:    amount,
			Date:      date,
		})
		date = nextPayrollDate(date, cadence)
	}
	return txs
}

func nextPayrollDate(date time.Time, cadence income.Cadence) time.Time {
	switch cadence {
	case income.CadenceWeekly:
		return date.AddDate(0, 0, 7)
	case income.CadenceBiweekly:
		return date.AddDate(0, 0, 14)
	case income.CadenceSemiMonthly:
		if date.Day() < 15 {
			return time.Date(date.Year(), date.Month(), 15, 0, 0, 0, 0, date.Location())
		}
		next := date.AddDate(0, 1, 0)
		return time.Date(next.Year(), next.Month(), 1, 0, 0, 0, 0, date.Location())
	default:
		return date.AddDate(0, 1, 0)
	}
}

func (g *Generator) id() uuid.UUID {
	return uuid.MustParse(g.faker.UUID())
}
