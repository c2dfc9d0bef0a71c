// Package entity defines the core business entities for the calculation engine.
package entity

import (
	"github.com/google/uuid"
)

// AccountType represents the kind of account a balance belongs to.
type AccountType string

const (
	AccountTypeChecking   AccountType = "checking"
	AccountTypeSavings    AccountType = "savings"
	AccountTypeCreditCard AccountType = "credit_card"
	AccountTypeCash       AccountType = "cash"
	AccountTypeInvestment AccountType = "investment"
	AccountTypeLoan       AccountType = "loan"
)

// IsAsset reports whether balances of this type count toward assets.
func (t AccountType) IsAsset() bool {
	switch t {
	case AccountTypeChecking, AccountTypeSavings, AccountTypeCash, AccountTypeInvestment:
		return true
	}
	return false
}

// IsLiability reports whether balances of this type count toward liabilities.
func (t AccountType) IsLiability() bool {
	return t == AccountTypeCreditCard || t == AccountTypeLoan
}

// Account is a snapshot of a single account as queried by the storage
// collaborator. Balance is signed integer minor units (cents).
type Account struct {
	ID       uuid.UUID
	Name     string      `validate:"required"`
	Type     AccountType `validate:"required,oneof=checking savings credit_card cash investment loan"`
	Balance  int64
	IsActive bool
}
