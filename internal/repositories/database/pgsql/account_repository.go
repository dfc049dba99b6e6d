package pgsql

import (
	"context"
	"time"

	"github.com/SscSPs/bizdesk/internal/apperrors"
	"github.com/SscSPs/bizdesk/internal/core/domain"
	portsrepo "github.com/SscSPs/bizdesk/internal/core/ports/repositories"
	"github.com/SscSPs/bizdesk/internal/models"
	"github.com/SscSPs/bizdesk/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxAccountRepository struct {
	BaseRepository
}

// newPgxAccountRepository creates a new repository for account data.
func newPgxAccountRepository(pool *pgxpool.Pool) *PgxAccountRepository {
	return &PgxAccountRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.AccountRepositoryFacade = (*PgxAccountRepository)(nil)

const accountSelectQuery = `
SELECT
	account_id, code, name, account_type, parent_account_id, balance, status, description,
	created_at, created_by, last_updated_at, last_updated_by
FROM accounts
`

func (r *PgxAccountRepository) getAccounts(ctx context.Context, filterQuery string, args ...any) ([]domain.Account, error) {
	rows, err := r.Pool.Query(ctx, accountSelectQuery+filterQuery, args...)
	if err != nil {
		return nil, translateError("query accounts", err)
	}
	modelAccounts, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Account])
	if err != nil {
		return nil, translateError("collect account rows", err)
	}
	return mapping.ToDomainAccountSlice(modelAccounts), nil
}

func (r *PgxAccountRepository) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	return r.getAccounts(ctx, `ORDER BY code`)
}

func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	accounts, err := r.getAccounts(ctx, `WHERE account_id = $1`, accountID)
	if err != nil {
		return nil, err
	}
	if len(accounts) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &accounts[0], nil
}

func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	m := mapping.ToModelAccount(account)
	query := `
		INSERT INTO accounts (
			account_id, code, name, account_type, parent_account_id, balance, status, description,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.AccountID,
		m.Code,
		m.Name,
		m.AccountType,
		m.ParentAccountID,
		m.Balance,
		m.Status,
		m.Description,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	return translateError("insert account", err)
}

func (r *PgxAccountRepository) UpdateAccount(ctx context.Context, accountID string, patch domain.AccountPatch, userID string, now time.Time) error {
	var b updateBuilder
	setIf(&b, "code", patch.Code)
	setIf(&b, "name", patch.Name)
	setIf(&b, "account_type", patch.AccountType)
	setNullable(&b, "parent_account_id", patch.ParentAccountID)
	setIf(&b, "balance", patch.Balance)
	setIf(&b, "status", patch.Status)
	setIf(&b, "description", patch.Description)
	if b.empty() {
		return nil
	}
	b.set("last_updated_at", now)
	b.set("last_updated_by", userID)

	query, args := b.build("accounts", "account_id", accountID)
	tag, err := r.Pool.Exec(ctx, query, args...)
	return expectOne(tag, err, "update account")
}

func (r *PgxAccountRepository) DeleteAccount(ctx context.Context, accountID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM accounts WHERE account_id = $1`, accountID)
	return expectOne(tag, err, "delete account")
}

func (r *PgxAccountRepository) DeleteAccounts(ctx context.Context, accountIDs []string) (int64, error) {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM accounts WHERE account_id = ANY($1)`, accountIDs)
	if err != nil {
		return 0, translateError("delete accounts", err)
	}
	return tag.RowsAffected(), nil
}

func (r *PgxAccountRepository) UpdateAccountsStatus(ctx context.Context, accountIDs []string, status domain.AccountStatus, userID string, now time.Time) (int64, error) {
	query := `
		UPDATE accounts
		SET status = $1, last_updated_at = $2, last_updated_by = $3
		WHERE account_id = ANY($4);
	`
	tag, err := r.Pool.Exec(ctx, query, string(status), now, userID, accountIDs)
	if err != nil {
		return 0, translateError("update account status", err)
	}
	return tag.RowsAffected(), nil
}
