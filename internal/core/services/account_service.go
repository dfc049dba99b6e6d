package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/bizdesk/internal/apperrors"
	"github.com/SscSPs/bizdesk/internal/core/domain"
	portsrepo "github.com/SscSPs/bizdesk/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bizdesk/internal/core/ports/services"
	"github.com/SscSPs/bizdesk/internal/dto"
	"github.com/SscSPs/bizdesk/internal/querycache"
	"github.com/google/uuid"
)

type accountService struct {
	BaseService
	accountRepo portsrepo.AccountRepositoryFacade
	cache       *querycache.Cache[[]domain.Account]
}

// NewAccountService creates the account service.
func NewAccountService(repo portsrepo.AccountRepositoryFacade, options ...ServiceOption) portssvc.AccountSvcFacade {
	base := newBaseService(options...)
	return &accountService{
		BaseService: base,
		accountRepo: repo,
		cache:       newCache[[]domain.Account](base),
	}
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

func (s *accountService) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	accounts, err := s.cache.Fetch(ctx, domain.CollectionAccounts, func(ctx context.Context) ([]domain.Account, error) {
		accounts, err := s.accountRepo.ListAccounts(ctx)
		if err != nil {
			return nil, err
		}
		if accounts == nil {
			accounts = []domain.Account{}
		}
		return accounts, nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts from repository")
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	s.LogDebug(ctx, "Accounts listed successfully", slog.Int("count", len(accounts)))
	return accounts, nil
}

func (s *accountService) invalidate() {
	s.cache.Invalidate(domain.CollectionAccounts)
}

func (s *accountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest, userID string) (*domain.Account, error) {
	var created domain.Account
	err := s.runMutation(ctx, mutation{failure: "Failed to create account", invalidate: []func(){s.invalidate}}, func(ctx context.Context) (string, error) {
		code, err := requireText("code", req.Code)
		if err != nil {
			return "", err
		}
		name, err := requireText("name", req.Name)
		if err != nil {
			return "", err
		}
		if !req.AccountType.Valid() {
			return "", validationErr("unknown account type %q", req.AccountType)
		}
		status := req.Status
		if status == "" {
			status = domain.AccountActive
		}
		if !status.Valid() {
			return "", validationErr("unknown account status %q", status)
		}

		now := s.now()
		created = domain.Account{
			AccountID:       uuid.NewString(),
			Code:            code,
			Name:            name,
			AccountType:     req.AccountType,
			ParentAccountID: blankToNil(req.ParentAccountID),
			Balance:         req.Balance,
			Status:          status,
			Description:     strings.TrimSpace(req.Description),
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     userID,
				LastUpdatedAt: now,
				LastUpdatedBy: userID,
			},
		}
		if err := s.accountRepo.SaveAccount(ctx, created); err != nil {
			return "", err
		}
		return "Account created successfully", nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *accountService) UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest, userID string) error {
	return s.runMutation(ctx, mutation{failure: "Failed to update account", invalidate: []func(){s.invalidate}}, func(ctx context.Context) (string, error) {
		patch := req.ToPatch()
		if patch.IsEmpty() {
			return "", validationErr("no fields to update")
		}
		patch.Code = trimPtr(patch.Code)
		patch.Name = trimPtr(patch.Name)
		patch.ParentAccountID = trimPtr(patch.ParentAccountID)
		if patch.Code != nil && *patch.Code == "" {
			return "", validationErr("code cannot be blank")
		}
		if patch.Name != nil && *patch.Name == "" {
			return "", validationErr("name cannot be blank")
		}
		if patch.AccountType != nil && !patch.AccountType.Valid() {
			return "", validationErr("unknown account type %q", *patch.AccountType)
		}
		if patch.Status != nil && !patch.Status.Valid() {
			return "", validationErr("unknown account status %q", *patch.Status)
		}
		if patch.ParentAccountID != nil && *patch.ParentAccountID == accountID {
			return "", fmt.Errorf("%w: an account cannot be its own parent", apperrors.ErrInvalidReference)
		}
		if err := s.accountRepo.UpdateAccount(ctx, accountID, patch, userID, s.now()); err != nil {
			return "", err
		}
		return "Account updated successfully", nil
	})
}

func (s *accountService) DeleteAccount(ctx context.Context, accountID string) error {
	return s.runMutation(ctx, mutation{failure: "Failed to delete account", invalidate: []func(){s.invalidate}}, func(ctx context.Context) (string, error) {
		if err := s.accountRepo.DeleteAccount(ctx, accountID); err != nil {
			return "", err
		}
		return "Account deleted successfully", nil
	})
}

func (s *accountService) BulkDeleteAccounts(ctx context.Context, accountIDs []string) (int64, error) {
	var n int64
	err := s.runMutation(ctx, mutation{failure: "Failed to delete accounts", invalidate: []func(){s.invalidate}}, func(ctx context.Context) (string, error) {
		ids, err := uniqueIDs(accountIDs)
		if err != nil {
			return "", err
		}
		n, err = s.accountRepo.DeleteAccounts(ctx, ids)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%d account(s) deleted successfully", n), nil
	})
	return n, err
}

func (s *accountService) BulkUpdateAccountStatus(ctx context.Context, accountIDs []string, status domain.AccountStatus, userID string) (int64, error) {
	var n int64
	err := s.runMutation(ctx, mutation{failure: "Failed to update accounts", invalidate: []func(){s.invalidate}}, func(ctx context.Context) (string, error) {
		if !status.Valid() {
			return "", validationErr("unknown account status %q", status)
		}
		ids, err := uniqueIDs(accountIDs)
		if err != nil {
			return "", err
		}
		n, err = s.accountRepo.UpdateAccountsStatus(ctx, ids, status, userID, s.now())
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%d account(s) updated successfully", n), nil
	})
	return n, err
}
