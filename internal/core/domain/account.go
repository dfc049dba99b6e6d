package domain

import (
	"github.com/shopspring/decimal"
)

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset     AccountType = "asset"
	Liability AccountType = "liability"
	Equity    AccountType = "equity"
	Revenue   AccountType = "revenue"
	Expense   AccountType = "expense"
)

// Valid reports whether t is one of the known account types.
func (t AccountType) Valid() bool {
	switch t {
	case Asset, Liability, Equity, Revenue, Expense:
		return true
	}
	return false
}

// AccountStatus is the lifecycle state of a ledger account.
type AccountStatus string

const (
	AccountActive   AccountStatus = "active"
	AccountInactive AccountStatus = "inactive"
	AccountArchived AccountStatus = "archived"
)

func (s AccountStatus) Valid() bool {
	switch s {
	case AccountActive, AccountInactive, AccountArchived:
		return true
	}
	return false
}

// Account is a ledger entry in the chart of accounts.
// ParentAccountID is nil for top level accounts.
type Account struct {
	AccountID       string          `json:"accountID"`
	Code            string          `json:"code"`
	Name            string          `json:"name"`
	AccountType     AccountType     `json:"accountType"`
	ParentAccountID *string         `json:"parentAccountID,omitempty"`
	Balance         decimal.Decimal `json:"balance"`
	Status          AccountStatus   `json:"status"`
	Description     string          `json:"description"`
	AuditFields
}

// AccountPatch carries the fields of a partial account update. Nil fields are left untouched.
type AccountPatch struct {
	Code            *string
	Name            *string
	AccountType     *AccountType
	ParentAccountID *string
	Balance         *decimal.Decimal
	Status          *AccountStatus
	Description     *string
}

// IsEmpty reports whether the patch would change nothing.
func (p AccountPatch) IsEmpty() bool {
	return p.Code == nil && p.Name == nil && p.AccountType == nil && p.ParentAccountID == nil &&
		p.Balance == nil && p.Status == nil && p.Description == nil
}
