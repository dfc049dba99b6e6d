package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/bizdesk/internal/core/domain"
)

// AccountReader defines read operations for account data
type AccountReader interface {
	// ListAccounts retrieves every account ordered by code.
	ListAccounts(ctx context.Context) ([]domain.Account, error)

	// FindAccountByID retrieves a specific account by its unique identifier.
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)
}

// AccountWriter defines write operations for account data
type AccountWriter interface {
	// SaveAccount persists a new account.
	SaveAccount(ctx context.Context, account domain.Account) error

	// UpdateAccount applies the non-nil fields of patch.
	UpdateAccount(ctx context.Context, accountID string, patch domain.AccountPatch, userID string, now time.Time) error

	// DeleteAccount removes an account.
	DeleteAccount(ctx context.Context, accountID string) error

	// DeleteAccounts removes all listed accounts in one statement and returns how many were removed.
	DeleteAccounts(ctx context.Context, accountIDs []string) (int64, error)

	// UpdateAccountsStatus sets the status of all listed accounts in one statement.
	UpdateAccountsStatus(ctx context.Context, accountIDs []string, status domain.AccountStatus, userID string, now time.Time) (int64, error)
}

// AccountRepositoryFacade combines all account-related repository interfaces
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
}
