// Package validate provides pre-call validation for engine inputs. The
// engines themselves treat malformed input as a caller bug (undefined
// behavior, not a recoverable error); run these checks at the storage or
// import boundary before invoking an engine.
package validate

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/pocketbudget/engine/domain/entity"
	domainerror "github.com/pocketbudget/engine/domain/error"
)

// monthPattern matches zero-padded YYYY-MM month strings.
var monthPattern = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

var structValidator = validator.New()

// MonthBudgetInput checks the caller-contract rules of the budget engine:
// a well-formed month string, positive target amounts, and amount maps that
// only reference categories declared in the groups.
func MonthBudgetInput(input entity.MonthBudgetInput) error {
	if !monthPattern.MatchString(input.Month) {
		return domainerror.NewValidationError(
			domainerror.ErrCodeInvalidMonthFormat,
			fmt.Sprintf("month %q must be formatted YYYY-MM", input.Month),
			domainerror.ErrInvalidMonthFormat,
		)
	}

	declared := make(map[uuid.UUID]struct{})
	for _, group := range input.Groups {
		for _, category := range group.Categories {
			declared[category.ID] = struct{}{}
			if category.Target != nil && category.Target.Amount <= 0 {
				return domainerror.NewValidationError(
					domainerror.ErrCodeInvalidTarget,
					fmt.Sprintf("category %q has a non-positive target", category.Name),
					domainerror.ErrInvalidTarget,
				)
			}
		}
	}

	amountMaps := []struct {
		name    string
		amounts map[uuid.UUID]int64
	}{
		{"allocations", input.Allocations},
		{"activity", input.Activity},
		{"carryForwards", input.CarryForwards},
	}
	for _, m := range amountMaps {
		name, amounts := m.name, m.amounts
		for id := range amounts {
			if _, ok := declared[id]; !ok {
				return domainerror.NewValidationError(
					domainerror.ErrCodeUnknownCategory,
					fmt.Sprintf("%s references undeclared category %s", name, id),
					domainerror.ErrUnknownCategory,
				)
			}
		}
	}
	return nil
}

// Subscription checks structural validity plus the customDays invariant:
// customDays is present iff the billing cycle is custom.
func Subscription(sub entity.Subscription) error {
	if err := structValidator.Struct(sub); err != nil {
		return domainerror.NewValidationError(
			domainerror.ErrCodeInvalidSubscription,
			"subscription record failed validation",
			errors.Join(domainerror.ErrInvalidSubscription, err),
		)
	}
	if sub.BillingCycle == entity.BillingCycleCustom {
		if sub.CustomDays == nil || *sub.CustomDays <= 0 {
			return domainerror.NewValidationError(
				domainerror.ErrCodeMissingCustomDays,
				fmt.Sprintf("subscription %q has a custom cycle without customDays", sub.Name),
				domainerror.ErrMissingCustomDays,
			)
		}
	} else if sub.CustomDays != nil {
		return domainerror.NewValidationError(
			domainerror.ErrCodeUnexpectedCustomDays,
			fmt.Sprintf("subscription %q sets customDays on a %s cycle", sub.Name, sub.BillingCycle),
			domainerror.ErrUnexpectedCustomDays,
		)
	}
	return nil
}

// Goal checks structural validity of a goal record.
func Goal(g entity.Goal) error {
	if err := structValidator.Struct(g); err != nil {
		return domainerror.NewValidationError(
			domainerror.ErrCodeInvalidGoal,
			fmt.Sprintf("goal %q failed validation", g.Name),
			errors.Join(domainerror.ErrInvalidGoal, err),
		)
	}
	return nil
}

// Account checks structural validity of an account record.
func Account(a entity.Account) error {
	if err := structValidator.Struct(a); err != nil {
		return domainerror.NewValidationError(
			domainerror.ErrCodeInvalidAccount,
			fmt.Sprintf("account %q failed validation", a.Name),
			errors.Join(domainerror.ErrInvalidAccount, err),
		)
	}
	return nil
}
