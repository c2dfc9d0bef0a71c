// Package steps provides step definitions for the engine feature suite.
package steps

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/cucumber/godog"

	"github.com/pocketbudget/engine/domain/entity"
	"github.com/pocketbudget/engine/money"
	"github.com/pocketbudget/engine/usecase/budget"
	"github.com/pocketbudget/engine/usecase/income"
	"github.com/pocketbudget/engine/usecase/networth"
	"github.com/pocketbudget/engine/usecase/subscription"
)

// state carries one scenario's inputs and results. A fresh value is
// installed before each scenario.
type state struct {
	today time.Time

	// budget
	budgetInput entity.MonthBudgetInput
	budgetState *budget.MonthBudgetState

	// subscriptions
	sub     *entity.Subscription
	subs    []entity.Subscription
	summary *subscription.Summary

	// goals
	goal entity.Goal

	// net worth
	accounts []entity.Account
	netWorth *networth.Result

	// income
	txs      []entity.Transaction
	patterns []income.PaydayPattern
	estimate *income.IncomeEstimate
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	s := &state{}
	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		*s = state{}
		return ctx, nil
	})

	ctx.Step(`^today is "([^"]*)"$`, s.todayIs)

	registerBudgetSteps(ctx, s)
	registerSubscriptionSteps(ctx, s)
	registerGoalSteps(ctx, s)
	registerNetWorthSteps(ctx, s)
	registerIncomeSteps(ctx, s)
}

func (s *state) todayIs(value string) error {
	day, err := parseDate(value)
	if err != nil {
		return err
	}
	s.today = day
	return nil
}

func parseDate(value string) (time.Time, error) {
	day, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("malformed date %q: %w", value, err)
	}
	return day, nil
}

// parseCents converts a formatted dollar string like "-$1,950.00" to integer
// cents.
func parseCents(value string) (int64, error) {
	cleaned := strings.TrimSpace(value)
	negative := strings.HasPrefix(cleaned, "-")
	cleaned = strings.TrimPrefix(cleaned, "-")
	cleaned = strings.TrimPrefix(cleaned, "$")
	cleaned = strings.ReplaceAll(cleaned, ",", "")

	whole, fraction, hasFraction := strings.Cut(cleaned, ".")
	dollars, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("malformed amount %q: %w", value, err)
	}
	cents := dollars * 100
	if hasFraction {
		if len(fraction) != 2 {
			return 0, fmt.Errorf("amount %q must carry two decimal places", value)
		}
		minor, err := strconv.ParseInt(fraction, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("malformed amount %q: %w", value, err)
		}
		cents += minor
	}
	if negative {
		cents = -cents
	}
	return cents, nil
}

// expectCents compares a computed cent amount against a formatted dollar
// expectation from the feature file.
func expectCents(label string, got int64, want string) error {
	wantCents, err := parseCents(want)
	if err != nil {
		return err
	}
	if got != wantCents {
		return fmt.Errorf("%s: got %s, want %s", label, money.FormatCentsPlain(got), want)
	}
	return nil
}

// cell reads a named column from a table row, using the table's header row
// for the column positions.
func cell(table *godog.Table, row int, column string) (string, error) {
	for i, header := range table.Rows[0].Cells {
		if header.Value == column {
			return strings.TrimSpace(table.Rows[row].Cells[i].Value), nil
		}
	}
	return "", fmt.Errorf("table has no %q column", column)
}
