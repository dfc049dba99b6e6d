package dto

import (
	"time"

	"github.com/SscSPs/bizdesk/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest defines the data needed to create a new account.
type CreateAccountRequest struct {
	Code            string               `json:"code" binding:"required,max=32"`
	Name            string               `json:"name" binding:"required,max=255"`
	AccountType     domain.AccountType   `json:"accountType" binding:"required,oneof=asset liability equity revenue expense"`
	ParentAccountID *string              `json:"parentAccountID"`
	Balance         decimal.Decimal      `json:"balance"`
	Status          domain.AccountStatus `json:"status" binding:"omitempty,oneof=active inactive archived"`
	Description     string               `json:"description"`
}

// UpdateAccountRequest defines the data allowed for updating an account.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateAccountRequest struct {
	Code            *string               `json:"code" binding:"omitempty,max=32"`
	Name            *string               `json:"name" binding:"omitempty,max=255"`
	AccountType     *domain.AccountType   `json:"accountType" binding:"omitempty,oneof=asset liability equity revenue expense"`
	ParentAccountID *string               `json:"parentAccountID"`
	Balance         *decimal.Decimal      `json:"balance"`
	Status          *domain.AccountStatus `json:"status" binding:"omitempty,oneof=active inactive archived"`
	Description     *string               `json:"description"`
}

// ToPatch converts the request into a domain patch.
func (r UpdateAccountRequest) ToPatch() domain.AccountPatch {
	return domain.AccountPatch{
		Code:            r.Code,
		Name:            r.Name,
		AccountType:     r.AccountType,
		ParentAccountID: r.ParentAccountID,
		Balance:         r.Balance,
		Status:          r.Status,
		Description:     r.Description,
	}
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountID       string               `json:"accountID"`
	Code            string               `json:"code"`
	Name            string               `json:"name"`
	AccountType     domain.AccountType   `json:"accountType"`
	ParentAccountID *string              `json:"parentAccountID"`
	Balance         decimal.Decimal      `json:"balance"`
	Status          domain.AccountStatus `json:"status"`
	Description     string               `json:"description"`
	CreatedAt       time.Time            `json:"createdAt"`
	LastUpdatedAt   time.Time            `json:"lastUpdatedAt"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:       acc.AccountID,
		Code:            acc.Code,
		Name:            acc.Name,
		AccountType:     acc.AccountType,
		ParentAccountID: acc.ParentAccountID,
		Balance:         acc.Balance,
		Status:          acc.Status,
		Description:     acc.Description,
		CreatedAt:       acc.CreatedAt,
		LastUpdatedAt:   acc.LastUpdatedAt,
	}
}

// ListAccountsResponse wraps the list of accounts.
type ListAccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}

// ToListAccountsResponse converts a slice of domain.Account to the list response.
func ToListAccountsResponse(accounts []domain.Account) ListAccountsResponse {
	res := make([]AccountResponse, len(accounts))
	for i := range accounts {
		res[i] = ToAccountResponse(&accounts[i])
	}
	return ListAccountsResponse{Accounts: res}
}
