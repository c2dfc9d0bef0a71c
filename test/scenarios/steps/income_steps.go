package steps

import (
	"fmt"

	"github.com/cucumber/godog"
	"github.com/google/uuid"

	"github.com/pocketbudget/engine/config"
	"github.com/pocketbudget/engine/domain/entity"
	"github.com/pocketbudget/engine/money"
	"github.com/pocketbudget/engine/usecase/income"
)

func registerIncomeSteps(ctx *godog.ScenarioContext, s *state) {
	ctx.Step(`^"([^"]*)" deposited "([^"]*)" every (\d+) days starting "([^"]*)" for (\d+) periods$`, s.depositSeries)
	ctx.Step(`^paydays are detected$`, s.detectPaydays)
	ctx.Step(`^a "([^"]*)" pattern is detected for payee "([^"]*)"$`, s.patternDetected)
	ctx.Step(`^the pattern's next payday lands on "([^"]*)"$`, s.nextPaydayLandsOn)
	ctx.Step(`^monthly income is estimated$`, s.estimateIncome)
	ctx.Step(`^the estimated monthly income is "([^"]*)"$`, s.estimatedIncomeIs)
	ctx.Step(`^the estimate spans (\d+) months$`, s.estimateSpans)
}

func (s *state) depositSeries(payee, amount string, gapDays int, start string, periods int) error {
	cents, err := parseCents(amount)
	if err != nil {
		return err
	}
	date, err := parseDate(start)
	if err != nil {
		return err
	}
	accountID := uuid.New()
	for i := 0; i < periods; i++ {
		s.txs = append(s.txs, entity.Transaction{
			ID:        uuid.New(),
			AccountID: accountID,
			Payee:     payee,
			Amount:    cents,
			Date:      date,
		})
		date = date.AddDate(0, 0, gapDays)
	}
	return nil
}

func (s *state) detectPaydays() error {
	s.patterns = income.NewDetector(config.Default()).DetectPaydays(s.txs)
	return nil
}

func (s *state) patternDetected(cadence, payee string) error {
	for _, pattern := range s.patterns {
		if pattern.Payee == payee {
			if pattern.Cadence != income.Cadence(cadence) {
				return fmt.Errorf("payee %q: got cadence %q, want %q", payee, pattern.Cadence, cadence)
			}
			return nil
		}
	}
	return fmt.Errorf("no pattern detected for payee %q among %d patterns", payee, len(s.patterns))
}

func (s *state) nextPaydayLandsOn(want string) error {
	if len(s.patterns) == 0 {
		return fmt.Errorf("no patterns detected")
	}
	wantDate, err := parseDate(want)
	if err != nil {
		return err
	}
	prediction := income.NewDetector(config.Default()).PredictNextPayday(s.patterns[0], s.today)
	if !prediction.Date.Equal(wantDate) {
		return fmt.Errorf("next payday %s, want %s",
			prediction.Date.Format("2006-01-02"), want)
	}
	return nil
}

func (s *state) estimateIncome() error {
	estimate := income.NewDetector(config.Default()).EstimateMonthlyIncome(s.txs)
	s.estimate = &estimate
	return nil
}

func (s *state) estimatedIncomeIs(want string) error {
	return expectCents("estimated monthly income", s.estimate.MonthlyIncome, want)
}

func (s *state) estimateSpans(want int) error {
	if s.estimate.MonthsSpanned != want {
		return fmt.Errorf("estimate spans %d months (income %s), want %d",
			s.estimate.MonthsSpanned, money.FormatCentsPlain(s.estimate.MonthlyIncome), want)
	}
	return nil
}
