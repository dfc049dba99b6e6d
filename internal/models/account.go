package models

import (
	"github.com/shopspring/decimal"
)

// Account is a row of the accounts table.
type Account struct {
	AccountID       string          `db:"account_id"`
	Code            string          `db:"code"`
	Name            string          `db:"name"`
	AccountType     string          `db:"account_type"`
	ParentAccountID *string         `db:"parent_account_id"` // Nullable
	Balance         decimal.Decimal `db:"balance"`
	Status          string          `db:"status"`
	Description     string          `db:"description"`
	AuditFields
}
