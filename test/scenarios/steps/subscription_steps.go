package steps

import (
	"fmt"

	"github.com/cucumber/godog"
	"github.com/google/uuid"

	"github.com/pocketbudget/engine/domain/entity"
	"github.com/pocketbudget/engine/usecase/subscription"
)

func registerSubscriptionSteps(ctx *godog.ScenarioContext, s *state) {
	ctx.Step(`^a subscription "([^"]*)" billed "([^"]*)" at "([^"]*)"$`, s.singleSubscription)
	ctx.Step(`^its monthly cost is "([^"]*)"$`, s.monthlyCostIs)
	ctx.Step(`^its annual cost is "([^"]*)"$`, s.annualCostIs)
	ctx.Step(`^the subscriptions:$`, s.subscriptionTable)
	ctx.Step(`^the subscription summary is calculated$`, s.calculateSummary)
	ctx.Step(`^the summary counts (\d+) billable of (\d+) subscriptions$`, s.summaryCounts)
	ctx.Step(`^the total monthly cost is "([^"]*)"$`, s.totalMonthlyCostIs)
	ctx.Step(`^the total annual cost is "([^"]*)"$`, s.totalAnnualCostIs)
}

func (s *state) singleSubscription(name, cycle, price string) error {
	sub, err := buildSubscription(name, cycle, price, "active")
	if err != nil {
		return err
	}
	s.sub = &sub
	return nil
}

func (s *state) monthlyCostIs(want string) error {
	got := subscription.NormalizeToMonthly(s.sub.Price, s.sub.BillingCycle, s.sub.CustomDays)
	return expectCents(fmt.Sprintf("%s monthly cost", s.sub.Name), got, want)
}

func (s *state) annualCostIs(want string) error {
	got := subscription.NormalizeToAnnual(s.sub.Price, s.sub.BillingCycle, s.sub.CustomDays)
	return expectCents(fmt.Sprintf("%s annual cost", s.sub.Name), got, want)
}

func (s *state) subscriptionTable(table *godog.Table) error {
	for row := 1; row < len(table.Rows); row++ {
		name, err := cell(table, row, "name")
		if err != nil {
			return err
		}
		cycle, err := cell(table, row, "cycle")
		if err != nil {
			return err
		}
		price, err := cell(table, row, "price")
		if err != nil {
			return err
		}
		status, err := cell(table, row, "status")
		if err != nil {
			return err
		}

		sub, err := buildSubscription(name, cycle, price, status)
		if err != nil {
			return err
		}
		s.subs = append(s.subs, sub)
	}
	return nil
}

func (s *state) calculateSummary() error {
	summary := subscription.CalculateSummary(s.subs)
	s.summary = &summary
	return nil
}

func (s *state) summaryCounts(billable, total int) error {
	if s.summary.ActiveCount != billable || s.summary.TotalCount != total {
		return fmt.Errorf("summary counts %d billable of %d, want %d of %d",
			s.summary.ActiveCount, s.summary.TotalCount, billable, total)
	}
	return nil
}

func (s *state) totalMonthlyCostIs(want string) error {
	return expectCents("total monthly cost", s.summary.MonthlyTotal, want)
}

func (s *state) totalAnnualCostIs(want string) error {
	return expectCents("total annual cost", s.summary.AnnualTotal, want)
}

func buildSubscription(name, cycle, price, status string) (entity.Subscription, error) {
	cents, err := parseCents(price)
	if err != nil {
		return entity.Subscription{}, err
	}
	return entity.Subscription{
		ID:           uuid.New(),
		Name:         name,
		Price:        cents,
		BillingCycle: entity.BillingCycle(cycle),
		Status:       entity.SubscriptionStatus(status),
	}, nil
}
