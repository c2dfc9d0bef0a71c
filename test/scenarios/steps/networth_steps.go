package steps

import (
	"fmt"

	"github.com/cucumber/godog"
	"github.com/google/uuid"

	"github.com/pocketbudget/engine/domain/entity"
	"github.com/pocketbudget/engine/usecase/networth"
)

func registerNetWorthSteps(ctx *godog.ScenarioContext, s *state) {
	ctx.Step(`^the accounts:$`, s.accountTable)
	ctx.Step(`^net worth is calculated$`, s.calculateNetWorth)
	ctx.Step(`^total assets are "([^"]*)"$`, s.totalAssetsAre)
	ctx.Step(`^total liabilities are "([^"]*)"$`, s.totalLiabilitiesAre)
	ctx.Step(`^net worth is "([^"]*)"$`, s.netWorthIs)
	ctx.Step(`^the breakdown lists (\d+) accounts$`, s.breakdownLists)
}

func (s *state) accountTable(table *godog.Table) error {
	for row := 1; row < len(table.Rows); row++ {
		name, err := cell(table, row, "name")
		if err != nil {
			return err
		}
		accountType, err := cell(table, row, "type")
		if err != nil {
			return err
		}
		balance, err := cell(table, row, "balance")
		if err != nil {
			return err
		}
		active, err := cell(table, row, "active")
		if err != nil {
			return err
		}

		balanceCents, err := parseCents(balance)
		if err != nil {
			return err
		}
		s.accounts = append(s.accounts, entity.Account{
			ID:       uuid.New(),
			Name:     name,
			Type:     entity.AccountType(accountType),
			Balance:  balanceCents,
			IsActive: active == "yes",
		})
	}
	return nil
}

func (s *state) calculateNetWorth() error {
	result := networth.Calculate(s.accounts)
	s.netWorth = &result
	return nil
}

func (s *state) totalAssetsAre(want string) error {
	return expectCents("total assets", s.netWorth.Assets, want)
}

func (s *state) totalLiabilitiesAre(want string) error {
	return expectCents("total liabilities", s.netWorth.Liabilities, want)
}

func (s *state) netWorthIs(want string) error {
	return expectCents("net worth", s.netWorth.NetWorth, want)
}

func (s *state) breakdownLists(want int) error {
	if got := len(s.netWorth.AccountBreakdown); got != want {
		return fmt.Errorf("breakdown lists %d accounts, want %d", got, want)
	}
	return nil
}
