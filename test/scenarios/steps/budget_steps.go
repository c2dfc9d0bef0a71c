package steps

import (
	"fmt"

	"github.com/cucumber/godog"
	"github.com/google/uuid"

	"github.com/pocketbudget/engine/domain/entity"
	"github.com/pocketbudget/engine/usecase/budget"
	"github.com/pocketbudget/engine/validate"
)

func registerBudgetSteps(ctx *godog.ScenarioContext, s *state) {
	ctx.Step(`^a budget month "([^"]*)" with income of "([^"]*)"$`, s.budgetMonth)
	ctx.Step(`^a category group "([^"]*)" with categories:$`, s.categoryGroup)
	ctx.Step(`^an overspend of "([^"]*)" carried from last month$`, s.overspendCarried)
	ctx.Step(`^the month budget is calculated$`, s.calculateBudget)
	ctx.Step(`^the ready to assign amount is "([^"]*)"$`, s.readyToAssignIs)
	ctx.Step(`^the category "([^"]*)" has "([^"]*)" available$`, s.categoryAvailableIs)
	ctx.Step(`^the total overspent amount is "([^"]*)"$`, s.totalOverspentIs)
}

func (s *state) budgetMonth(month, income string) error {
	cents, err := parseCents(income)
	if err != nil {
		return err
	}
	s.budgetInput = entity.MonthBudgetInput{
		Month:       month,
		TotalIncome: cents,
		Allocations: make(map[uuid.UUID]int64),
		Activity:    make(map[uuid.UUID]int64),
	}
	return nil
}

func (s *state) categoryGroup(name string, table *godog.Table) error {
	group := entity.CategoryGroup{ID: uuid.New(), Name: name}
	for row := 1; row < len(table.Rows); row++ {
		categoryName, err := cell(table, row, "category")
		if err != nil {
			return err
		}
		allocated, err := cell(table, row, "allocated")
		if err != nil {
			return err
		}
		activity, err := cell(table, row, "activity")
		if err != nil {
			return err
		}

		allocatedCents, err := parseCents(allocated)
		if err != nil {
			return err
		}
		activityCents, err := parseCents(activity)
		if err != nil {
			return err
		}

		category := entity.Category{ID: uuid.New(), Name: categoryName}
		group.Categories = append(group.Categories, category)
		s.budgetInput.Allocations[category.ID] = allocatedCents
		s.budgetInput.Activity[category.ID] = activityCents
	}
	s.budgetInput.Groups = append(s.budgetInput.Groups, group)
	return nil
}

func (s *state) overspendCarried(amount string) error {
	cents, err := parseCents(amount)
	if err != nil {
		return err
	}
	s.budgetInput.OverspentLastMonth = cents
	return nil
}

func (s *state) calculateBudget() error {
	if err := validate.MonthBudgetInput(s.budgetInput); err != nil {
		return err
	}
	result := budget.Calculate(s.budgetInput)
	s.budgetState = &result
	return nil
}

func (s *state) readyToAssignIs(want string) error {
	return expectCents("ready to assign", s.budgetState.ReadyToAssign, want)
}

func (s *state) categoryAvailableIs(name, want string) error {
	for _, group := range s.budgetState.Groups {
		for _, category := range group.Categories {
			if category.Name == name {
				return expectCents(fmt.Sprintf("category %q available", name), category.Available, want)
			}
		}
	}
	return fmt.Errorf("no category named %q in the calculated month", name)
}

func (s *state) totalOverspentIs(want string) error {
	return expectCents("total overspent", s.budgetState.TotalOverspent, want)
}
