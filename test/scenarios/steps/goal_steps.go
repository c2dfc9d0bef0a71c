package steps

import (
	"fmt"

	"github.com/cucumber/godog"
	"github.com/google/uuid"

	"github.com/pocketbudget/engine/domain/entity"
	"github.com/pocketbudget/engine/money"
	"github.com/pocketbudget/engine/usecase/goal"
)

func registerGoalSteps(ctx *godog.ScenarioContext, s *state) {
	ctx.Step(`^a goal "([^"]*)" of "([^"]*)" due "([^"]*)" created "([^"]*)" with "([^"]*)" saved$`, s.datedGoal)
	ctx.Step(`^a goal "([^"]*)" of "([^"]*)" with "([^"]*)" saved$`, s.datelessGoal)
	ctx.Step(`^the goal is (\d+)% complete$`, s.goalPercentageIs)
	ctx.Step(`^the goal status is "([^"]*)"$`, s.goalStatusIs)
	ctx.Step(`^no monthly contribution is suggested$`, s.noContributionSuggested)
	ctx.Step(`^the suggested monthly contribution is "([^"]*)"$`, s.contributionSuggestedIs)
}

func (s *state) datedGoal(name, target, due, created, saved string) error {
	g, err := buildGoal(name, target, saved)
	if err != nil {
		return err
	}
	dueDate, err := parseDate(due)
	if err != nil {
		return err
	}
	createdDate, err := parseDate(created)
	if err != nil {
		return err
	}
	g.TargetDate = &dueDate
	g.CreatedAt = createdDate
	s.goal = g
	return nil
}

func (s *state) datelessGoal(name, target, saved string) error {
	g, err := buildGoal(name, target, saved)
	if err != nil {
		return err
	}
	s.goal = g
	return nil
}

func (s *state) goalPercentageIs(want int) error {
	got := goal.Progress(s.goal).Percentage
	if got != want {
		return fmt.Errorf("goal %q: got %d%% complete, want %d%%", s.goal.Name, got, want)
	}
	return nil
}

func (s *state) goalStatusIs(want string) error {
	got := goal.Status(s.goal, s.today)
	if got != entity.GoalStatus(want) {
		return fmt.Errorf("goal %q: got status %q, want %q", s.goal.Name, got, want)
	}
	return nil
}

func (s *state) noContributionSuggested() error {
	if suggestion := goal.SuggestMonthlyContribution(s.goal, s.today); suggestion != nil {
		return fmt.Errorf("goal %q: got suggestion %s, want none",
			s.goal.Name, money.FormatCentsPlain(*suggestion))
	}
	return nil
}

func (s *state) contributionSuggestedIs(want string) error {
	suggestion := goal.SuggestMonthlyContribution(s.goal, s.today)
	if suggestion == nil {
		return fmt.Errorf("goal %q: no suggestion, want %s", s.goal.Name, want)
	}
	return expectCents(fmt.Sprintf("goal %q suggestion", s.goal.Name), *suggestion, want)
}

func buildGoal(name, target, saved string) (entity.Goal, error) {
	targetCents, err := parseCents(target)
	if err != nil {
		return entity.Goal{}, err
	}
	savedCents, err := parseCents(saved)
	if err != nil {
		return entity.Goal{}, err
	}
	return entity.Goal{
		ID:            uuid.New(),
		Name:          name,
		TargetAmount:  targetCents,
		CurrentAmount: savedCents,
	}, nil
}
